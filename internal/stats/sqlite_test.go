package stats

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quizdeck.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestLoad_EmptyDatabase(t *testing.T) {
	s, _ := openTestStore(t)

	st, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st != (Stats{}) {
		t.Errorf("Load = %+v, want all zeros", st)
	}
}

func TestSetAndLoad(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	if err := s.SetBestScore(ctx, 80); err != nil {
		t.Fatalf("SetBestScore: %v", err)
	}
	if err := s.SetTotalQuizzes(ctx, 7); err != nil {
		t.Fatalf("SetTotalQuizzes: %v", err)
	}
	if err := s.SetBestStreak(ctx, 4); err != nil {
		t.Fatalf("SetBestStreak: %v", err)
	}

	st, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Stats{BestScore: 80, TotalQuizzes: 7, BestStreak: 4}
	if st != want {
		t.Errorf("Load = %+v, want %+v", st, want)
	}
}

func TestSet_Overwrites(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	for _, v := range []int{10, 60, 90} {
		if err := s.SetBestScore(ctx, v); err != nil {
			t.Fatalf("SetBestScore(%d): %v", v, err)
		}
	}

	st, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.BestScore != 90 {
		t.Errorf("BestScore = %d, want 90", st.BestScore)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizdeck.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.SetTotalQuizzes(ctx, 12); err != nil {
		t.Fatalf("SetTotalQuizzes: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	st, err := s2.Load(ctx)
	if err != nil {
		t.Fatalf("Load after reopen: %v", err)
	}
	if st.TotalQuizzes != 12 {
		t.Errorf("TotalQuizzes = %d, want 12", st.TotalQuizzes)
	}
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	override := filepath.Join(t.TempDir(), "custom", "db.sqlite")
	t.Setenv("QUIZDECK_DB", override)

	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if p != override {
		t.Errorf("path = %q, want %q", p, override)
	}
}

func TestDefaultDBPath_XDGDataHome(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("QUIZDECK_DB", "")
	t.Setenv("XDG_DATA_HOME", dataHome)

	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	want := filepath.Join(dataHome, "quizdeck", "quizdeck.db")
	if p != want {
		t.Errorf("path = %q, want %q", p, want)
	}
}
