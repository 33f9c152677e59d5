package game

import (
	"time"

	"github.com/quizdeck/quizdeck/internal/stats"
	"github.com/quizdeck/quizdeck/internal/trivia"
)

// tickMsg is sent once per elapsed second of the question countdown. It
// carries the run id so ticks from an abandoned run are dropped.
type tickMsg struct {
	RunID string
}

// timeUpMsg is sent after the "time's up" display delay to trigger the
// no-selection advance.
type timeUpMsg struct {
	RunID string
}

// questionsLoadedMsg is sent when the question fetch completes.
type questionsLoadedMsg struct {
	RunID     string
	Questions []trivia.Question
	Err       error
}

// categoriesLoadedMsg delivers the category list for the start form.
type categoriesLoadedMsg struct {
	Categories []trivia.Category
}

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time

// StatsUpdatedMsg notifies the app shell that the persisted stats
// changed, so the header can refresh.
type StatsUpdatedMsg struct {
	Stats stats.Stats
}
