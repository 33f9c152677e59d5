package quiz

import "time"

// Difficulty is the provider difficulty filter.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the selectable difficulties in display order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Valid reports whether d is one of the fixed difficulty values.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

const (
	// QuestionSeconds is the per-question countdown duration.
	QuestionSeconds = 30

	// TimeUpDelay is how long the "time's up" indication stays on screen
	// before the run auto-advances.
	TimeUpDelay = 1500 * time.Millisecond

	// DefaultAmount is the default question count per quiz.
	DefaultAmount = 10
)

// AmountChoices lists the preset question counts offered on the start screen.
func AmountChoices() []int {
	return []int{5, 10, 15}
}

// Config is the quiz configuration used to produce one run.
type Config struct {
	Difficulty Difficulty
	Category   string // provider category id, "" for any
	Amount     int
}

// DefaultConfig returns the configuration the start screen opens with.
func DefaultConfig() Config {
	return Config{
		Difficulty: DifficultyEasy,
		Category:   "",
		Amount:     DefaultAmount,
	}
}
