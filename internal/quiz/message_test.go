package quiz

import (
	"errors"
	"testing"

	"github.com/quizdeck/quizdeck/internal/trivia"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"timeout", trivia.ErrTimeout, MsgConnectivity},
		{"transport", &trivia.RequestError{Err: errors.New("connection refused")}, MsgConnectivity},
		{"no results", trivia.ErrNoResults, MsgNoQuestions},
		{"empty results", trivia.ErrEmptyResults, MsgNoQuestions},
		{"invalid parameter", trivia.ErrInvalidParameter, MsgGeneric},
		{"rate limited", trivia.ErrRateLimited, MsgGeneric},
		{"provider code", &trivia.ProviderError{Code: 3}, MsgGeneric},
		{"unknown", errors.New("boom"), MsgGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage = %q, want %q", got, tt.want)
			}
		})
	}
}
