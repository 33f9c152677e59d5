package quiz

import (
	"errors"

	"github.com/quizdeck/quizdeck/internal/trivia"
)

// User-facing messages for the error screen. The original error detail is
// never exposed to presentation.
const (
	MsgConnectivity = "Couldn't reach the trivia service. Check your connection and try again."
	MsgNoQuestions  = "No questions matched those settings. Try a different difficulty or category."
	MsgGeneric      = "Something went wrong while loading questions. Please try again."
)

// UserMessage maps a provider failure to one of the fixed error-screen
// strings.
func UserMessage(err error) string {
	switch {
	case trivia.IsConnectivity(err):
		return MsgConnectivity
	case errors.Is(err, trivia.ErrNoResults), errors.Is(err, trivia.ErrEmptyResults):
		return MsgNoQuestions
	default:
		return MsgGeneric
	}
}
