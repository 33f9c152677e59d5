package quiz

import (
	"math"

	"github.com/quizdeck/quizdeck/internal/trivia"
)

// Phase identifies which of the five screens the controller is on.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseLoading
	PhaseQuiz
	PhaseResults
	PhaseError
)

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseLoading:
		return "loading"
	case PhaseQuiz:
		return "quiz"
	case PhaseResults:
		return "results"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// NoSelection is the sentinel for "no option chosen", used both for the
// in-progress selection and for answer records finalized by timeout.
const NoSelection = -1

// Answer is one finalized answer record. Immutable once appended.
type Answer struct {
	QuestionID   int
	QuestionText string
	Selected     int // option index, or NoSelection on timeout
	Correct      bool
	CorrectText  string
	ChosenText   string // "" when Selected == NoSelection
}

// State is an immutable snapshot of one quiz session. Transition methods
// return a new State; callers replace their copy with the result.
type State struct {
	Phase Phase

	// RunID identifies the current loading/quiz run. Timer ticks and
	// fetch completions carry it so stale events from an abandoned run
	// can be dropped.
	RunID string

	// Config is the configuration used to produce this run. Retained in
	// the error phase so retry can reuse it.
	Config Config

	Questions []trivia.Question
	Position  int
	Selected  int // NoSelection until the user picks an option
	Locked    bool
	TimeLeft  int // seconds remaining for the current question
	Score     int
	Answers   []Answer
	ErrMsg    string
}

// New returns the initial start-phase state.
func New() State {
	return State{
		Phase:    PhaseStart,
		Config:   DefaultConfig(),
		Selected: NoSelection,
	}
}

// StartLoading stores the configuration and moves to the loading phase.
func (s State) StartLoading(cfg Config, runID string) State {
	next := New()
	next.Phase = PhaseLoading
	next.Config = cfg
	next.RunID = runID
	return next
}

// BeginRun installs a fetched question list and resets all per-run
// counters for the quiz phase.
func (s State) BeginRun(questions []trivia.Question) State {
	s.Phase = PhaseQuiz
	s.Questions = questions
	s.Position = 0
	s.Selected = NoSelection
	s.Locked = false
	s.TimeLeft = QuestionSeconds
	s.Score = 0
	s.Answers = nil
	s.ErrMsg = ""
	return s
}

// FailRun moves to the error phase with a user-facing message derived
// from the error kind. The configuration is retained for retry.
func (s State) FailRun(err error) State {
	s.Phase = PhaseError
	s.Questions = nil
	s.ErrMsg = UserMessage(err)
	return s
}

// Select records the chosen option index. Ignored once the answer is
// locked or outside the quiz phase; out-of-range indexes are dropped.
func (s State) Select(i int) State {
	if s.Phase != PhaseQuiz || s.Locked {
		return s
	}
	q := s.Question()
	if q == nil || i < 0 || i >= len(q.Options) {
		return s
	}
	s.Selected = i
	return s
}

// Tick consumes one elapsed second of the countdown. The returned bool is
// true exactly when this tick exhausted the timer, which locks the question
// and discards any unsubmitted selection: a timed-out question is always
// recorded as unanswered. Ticks outside the quiz phase or after the lock
// are no-ops.
func (s State) Tick() (State, bool) {
	if s.Phase != PhaseQuiz || s.Locked {
		return s, false
	}
	s.TimeLeft--
	if s.TimeLeft > 0 {
		return s, false
	}
	s.TimeLeft = 0
	s.Locked = true
	s.Selected = NoSelection
	return s, true
}

// CanSubmit reports whether an explicit advance is currently allowed:
// quiz phase, unlocked, and a selection exists.
func (s State) CanSubmit() bool {
	return s.Phase == PhaseQuiz && !s.Locked && s.Selected != NoSelection
}

// Advance finalizes the current question into an answer record and either
// moves to the next question or, on the last one, to the results phase.
// A timed-out question (lock with no selection) always scores incorrect.
func (s State) Advance() State {
	if s.Phase != PhaseQuiz {
		return s
	}
	q := s.Question()
	if q == nil {
		return s
	}

	correct := s.Selected != NoSelection && s.Selected == q.CorrectIndex
	chosen := ""
	if s.Selected != NoSelection {
		chosen = q.Options[s.Selected]
	}

	record := Answer{
		QuestionID:   q.ID,
		QuestionText: q.Text,
		Selected:     s.Selected,
		Correct:      correct,
		CorrectText:  q.Options[q.CorrectIndex],
		ChosenText:   chosen,
	}

	// Clone so earlier snapshots never observe the append.
	answers := make([]Answer, len(s.Answers), len(s.Answers)+1)
	copy(answers, s.Answers)
	s.Answers = append(answers, record)

	if correct {
		s.Score++
	}

	if s.Position+1 < len(s.Questions) {
		s.Position++
		s.Selected = NoSelection
		s.Locked = false
		s.TimeLeft = QuestionSeconds
		return s
	}

	s.Phase = PhaseResults
	return s
}

// Reset discards all per-run state and returns to the start phase.
// Calling it from any phase yields the same state as from start.
func (s State) Reset() State {
	return New()
}

// Retry re-enters loading with the configuration of the failed or
// finished run.
func (s State) Retry(runID string) State {
	return s.StartLoading(s.Config, runID)
}

// Question returns the current question, or nil outside the quiz phase.
func (s State) Question() *trivia.Question {
	if s.Phase != PhaseQuiz || s.Position < 0 || s.Position >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Position]
}

// Percent returns the final score as a rounded percentage, clamped to
// 0-100 by construction.
func (s State) Percent() int {
	if len(s.Questions) == 0 {
		return 0
	}
	return int(math.Round(float64(s.Score) * 100 / float64(len(s.Questions))))
}

// Streak returns the trailing run of consecutive correct answers, bounded
// to the most recent StreakWindow records.
func (s State) Streak() int {
	return TrailingStreak(s.Answers)
}
