package stats

import "context"

// Stats holds the three persisted scalars. Absent values default to zero.
type Stats struct {
	// BestScore is the best quiz score percentage ever achieved (0-100).
	BestScore int

	// TotalQuizzes is the number of quizzes taken.
	TotalQuizzes int

	// BestStreak is the best trailing answer streak ever achieved.
	BestStreak int
}

// Store is the persistence boundary for the three scalars, so the
// controller can be tested without a real backend. Writes take effect
// immediately; there is a single writer (the controller).
type Store interface {
	Load(ctx context.Context) (Stats, error)
	SetBestScore(ctx context.Context, pct int) error
	SetTotalQuizzes(ctx context.Context, n int) error
	SetBestStreak(ctx context.Context, n int) error
}
