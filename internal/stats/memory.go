package stats

import "context"

// MemoryStore is an in-memory Store for tests and for running without a
// writable data directory.
type MemoryStore struct {
	stats Stats
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(context.Context) (Stats, error) {
	return m.stats, nil
}

func (m *MemoryStore) SetBestScore(_ context.Context, pct int) error {
	m.stats.BestScore = pct
	return nil
}

func (m *MemoryStore) SetTotalQuizzes(_ context.Context, n int) error {
	m.stats.TotalQuizzes = n
	return nil
}

func (m *MemoryStore) SetBestStreak(_ context.Context, n int) error {
	m.stats.BestStreak = n
	return nil
}
