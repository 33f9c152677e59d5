package game

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/stats"
	"github.com/quizdeck/quizdeck/internal/trivia"
)

// mockProvider implements QuestionProvider for testing.
type mockProvider struct {
	questions []trivia.Question
	err       error
}

func (m *mockProvider) FetchQuestions(_ context.Context, r trivia.Request) ([]trivia.Question, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.questions, nil
}

func (m *mockProvider) Categories(_ context.Context) []trivia.Category {
	return trivia.DefaultCategories()
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions(n int) []trivia.Question {
	qs := make([]trivia.Question, n)
	for i := range qs {
		qs[i] = trivia.Question{
			ID:           i,
			Text:         fmt.Sprintf("question %d", i),
			Options:      []string{"w1", "right", "w2", "w3"},
			CorrectIndex: 1,
		}
	}
	return qs
}

func testGameScreen(n int) (*GameScreen, *stats.MemoryStore) {
	provider := &mockProvider{questions: testQuestions(n)}
	store := stats.NewMemoryStore()
	s := New(provider, store, nil, stats.Stats{}, quiz.DefaultConfig())
	return s, store
}

// startRun drives the screen from start into the quiz phase.
func startRun(t *testing.T, s *GameScreen) {
	t.Helper()
	scr, _ := s.Update(specialKey(tea.KeyEnter))
	gs := scr.(*GameScreen)
	if gs.state.Phase != quiz.PhaseLoading {
		t.Fatalf("Phase = %v after enter, want loading", gs.state.Phase)
	}
	_, _ = gs.Update(questionsLoadedMsg{
		RunID:     gs.state.RunID,
		Questions: testQuestions(2),
	})
	if gs.state.Phase != quiz.PhaseQuiz {
		t.Fatalf("Phase = %v after load, want quiz", gs.state.Phase)
	}
}

func TestGameScreen_StartToLoading(t *testing.T) {
	s, _ := testGameScreen(2)

	scr, cmd := s.Update(specialKey(tea.KeyEnter))
	gs := scr.(*GameScreen)

	if gs.state.Phase != quiz.PhaseLoading {
		t.Errorf("Phase = %v, want loading", gs.state.Phase)
	}
	if gs.state.RunID == "" {
		t.Error("expected a run id for the new run")
	}
	if cmd == nil {
		t.Error("expected fetch command")
	}
}

func TestGameScreen_QuestionsLoaded(t *testing.T) {
	s, store := testGameScreen(2)
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	gs := scr.(*GameScreen)

	scr, cmd := gs.Update(questionsLoadedMsg{RunID: gs.state.RunID, Questions: testQuestions(2)})
	gs = scr.(*GameScreen)

	if gs.state.Phase != quiz.PhaseQuiz {
		t.Fatalf("Phase = %v, want quiz", gs.state.Phase)
	}
	if cmd == nil {
		t.Error("expected the countdown to start")
	}

	st, _ := store.Load(context.Background())
	if st.TotalQuizzes != 1 {
		t.Errorf("TotalQuizzes = %d, want 1 after a successful fetch", st.TotalQuizzes)
	}
}

func TestGameScreen_StaleLoadIgnored(t *testing.T) {
	s, _ := testGameScreen(2)
	scr, _ := s.Update(specialKey(tea.KeyEnter))
	gs := scr.(*GameScreen)

	scr, _ = gs.Update(questionsLoadedMsg{RunID: "stale-run", Questions: testQuestions(2)})
	gs = scr.(*GameScreen)

	if gs.state.Phase != quiz.PhaseLoading {
		t.Errorf("Phase = %v, want loading untouched by a stale result", gs.state.Phase)
	}
}

func TestGameScreen_FetchError(t *testing.T) {
	s, _ := testGameScreen(0)
	scr, _ := s.Update(specialKey(tea.KeyEnter))
	gs := scr.(*GameScreen)

	scr, _ = gs.Update(questionsLoadedMsg{RunID: gs.state.RunID, Err: trivia.ErrTimeout})
	gs = scr.(*GameScreen)

	if gs.state.Phase != quiz.PhaseError {
		t.Fatalf("Phase = %v, want error", gs.state.Phase)
	}
	if gs.state.ErrMsg != quiz.MsgConnectivity {
		t.Errorf("ErrMsg = %q, want the connectivity message", gs.state.ErrMsg)
	}
	if len(gs.menu.Items) != 2 {
		t.Errorf("error menu has %d items, want 2", len(gs.menu.Items))
	}
}

func TestGameScreen_TickCountdown(t *testing.T) {
	s, _ := testGameScreen(2)
	startRun(t, s)

	scr, cmd := s.Update(tickMsg{RunID: s.state.RunID})
	gs := scr.(*GameScreen)

	if gs.state.TimeLeft != quiz.QuestionSeconds-1 {
		t.Errorf("TimeLeft = %d, want %d", gs.state.TimeLeft, quiz.QuestionSeconds-1)
	}
	if cmd == nil {
		t.Error("expected the next tick to be scheduled")
	}
}

func TestGameScreen_StaleTickIgnored(t *testing.T) {
	s, _ := testGameScreen(2)
	startRun(t, s)

	scr, cmd := s.Update(tickMsg{RunID: "stale-run"})
	gs := scr.(*GameScreen)

	if gs.state.TimeLeft != quiz.QuestionSeconds {
		t.Errorf("TimeLeft = %d, want untouched by a stale tick", gs.state.TimeLeft)
	}
	if cmd != nil {
		t.Error("stale tick must not reschedule")
	}
}

func TestGameScreen_TimeoutLocksAndAdvances(t *testing.T) {
	s, _ := testGameScreen(2)
	startRun(t, s)

	// Run the countdown to zero.
	var cmd tea.Cmd
	for i := 0; i < quiz.QuestionSeconds; i++ {
		_, cmd = s.Update(tickMsg{RunID: s.state.RunID})
	}
	if !s.state.Locked {
		t.Fatal("expected the answer to lock at expiry")
	}
	if cmd == nil {
		t.Fatal("expected the time-up advance to be scheduled")
	}

	// Selection after the lock is ignored.
	s.Update(keyPress('2'))
	if s.state.Selected != quiz.NoSelection {
		t.Error("selection after lock must be ignored")
	}

	s.Update(timeUpMsg{RunID: s.state.RunID})
	if s.state.Position != 1 {
		t.Fatalf("Position = %d, want 1 after the timed-out advance", s.state.Position)
	}
	rec := s.state.Answers[0]
	if rec.Correct || rec.Selected != quiz.NoSelection {
		t.Errorf("record = %+v, want timed-out incorrect", rec)
	}
	if s.state.TimeLeft != quiz.QuestionSeconds {
		t.Errorf("TimeLeft = %d, want a fresh countdown", s.state.TimeLeft)
	}
}

func TestGameScreen_TimeoutDropsUnsubmittedSelection(t *testing.T) {
	s, _ := testGameScreen(2)
	startRun(t, s)

	// Pick the correct option but never press enter.
	s.Update(keyPress('2'))
	if s.state.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", s.state.Selected)
	}

	for i := 0; i < quiz.QuestionSeconds; i++ {
		s.Update(tickMsg{RunID: s.state.RunID})
	}
	s.Update(timeUpMsg{RunID: s.state.RunID})

	if s.state.Score != 0 {
		t.Errorf("Score = %d, want 0 for the timed-out question", s.state.Score)
	}
	rec := s.state.Answers[0]
	if rec.Correct || rec.Selected != quiz.NoSelection {
		t.Errorf("record = %+v, want unanswered incorrect", rec)
	}
}

func TestGameScreen_AnswerByDigit(t *testing.T) {
	s, _ := testGameScreen(2)
	startRun(t, s)

	s.Update(keyPress('2'))
	if s.state.Selected != 1 {
		t.Fatalf("Selected = %d, want 1 after pressing 2", s.state.Selected)
	}

	s.Update(specialKey(tea.KeyEnter))
	if s.state.Score != 1 {
		t.Errorf("Score = %d, want 1", s.state.Score)
	}
	if s.state.Position != 1 {
		t.Errorf("Position = %d, want 1", s.state.Position)
	}
}

func TestGameScreen_AnswerByCursor(t *testing.T) {
	s, _ := testGameScreen(2)
	startRun(t, s)

	s.Update(keyPress('j'))
	s.Update(keyPress(' '))
	if s.state.Selected != 1 {
		t.Fatalf("Selected = %d, want 1 via cursor+space", s.state.Selected)
	}
}

func TestGameScreen_EnterWithoutSelection(t *testing.T) {
	s, _ := testGameScreen(2)
	startRun(t, s)

	s.Update(specialKey(tea.KeyEnter))
	if s.state.Position != 0 || len(s.state.Answers) != 0 {
		t.Error("enter without a selection must not advance")
	}
}

func TestGameScreen_FinalizePersistsBests(t *testing.T) {
	s, store := testGameScreen(2)
	startRun(t, s)

	total := len(s.state.Questions)
	for i := 0; i < total; i++ {
		s.Update(keyPress('2'))
		s.Update(specialKey(tea.KeyEnter))
	}

	if s.state.Phase != quiz.PhaseResults {
		t.Fatalf("Phase = %v, want results", s.state.Phase)
	}
	if !s.newHighScore {
		t.Error("expected a new high score on a perfect first run")
	}

	st, _ := store.Load(context.Background())
	if st.BestScore != 100 {
		t.Errorf("BestScore = %d, want 100", st.BestScore)
	}
	if st.BestStreak == 0 {
		t.Error("expected a persisted best streak")
	}
}

func TestGameScreen_WorseRunKeepsBests(t *testing.T) {
	provider := &mockProvider{questions: testQuestions(2)}
	store := stats.NewMemoryStore()
	_ = store.SetBestScore(context.Background(), 100)
	_ = store.SetBestStreak(context.Background(), 5)

	s := New(provider, store, nil, stats.Stats{BestScore: 100, BestStreak: 5}, quiz.DefaultConfig())
	startRun(t, s)

	total := len(s.state.Questions)
	for i := 0; i < total; i++ {
		s.Update(keyPress('1')) // always wrong
		s.Update(specialKey(tea.KeyEnter))
	}

	if s.newHighScore || s.newBestStreak {
		t.Error("a zero-score run must not claim new bests")
	}
	st, _ := store.Load(context.Background())
	if st.BestScore != 100 || st.BestStreak != 5 {
		t.Errorf("stats = %+v, want bests untouched", st)
	}
}

func TestGameScreen_RetryReusesConfig(t *testing.T) {
	s, _ := testGameScreen(0)
	scr, _ := s.Update(specialKey(tea.KeyEnter))
	gs := scr.(*GameScreen)
	cfg := gs.state.Config

	gs.Update(questionsLoadedMsg{RunID: gs.state.RunID, Err: errors.New("boom")})
	firstRun := gs.state.RunID

	scr, cmd := gs.Update(retryMsg{})
	gs = scr.(*GameScreen)

	if gs.state.Phase != quiz.PhaseLoading {
		t.Errorf("Phase = %v, want loading on retry", gs.state.Phase)
	}
	if gs.state.Config != cfg {
		t.Errorf("Config = %+v, want %+v reused", gs.state.Config, cfg)
	}
	if gs.state.RunID == firstRun {
		t.Error("retry must mint a fresh run id")
	}
	if cmd == nil {
		t.Error("expected a fetch command on retry")
	}
}

func TestGameScreen_ResetReturnsToStart(t *testing.T) {
	s, _ := testGameScreen(2)
	startRun(t, s)

	scr, _ := s.Update(resetMsg{})
	gs := scr.(*GameScreen)

	if gs.state.Phase != quiz.PhaseStart {
		t.Errorf("Phase = %v, want start", gs.state.Phase)
	}
	if len(gs.state.Answers) != 0 || gs.state.Score != 0 {
		t.Error("per-run state must clear on reset")
	}
}

func TestGameScreen_Title(t *testing.T) {
	s, _ := testGameScreen(2)
	if s.Title() != "New Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "New Quiz")
	}
	startRun(t, s)
	if s.Title() != "Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz")
	}
}

func TestGameScreen_ViewPerPhase(t *testing.T) {
	s, _ := testGameScreen(2)

	if s.View(80, 24) == "" {
		t.Error("empty start view")
	}

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	gs := scr.(*GameScreen)
	if gs.View(80, 24) == "" {
		t.Error("empty loading view")
	}

	gs.Update(questionsLoadedMsg{RunID: gs.state.RunID, Questions: testQuestions(2)})
	if gs.View(80, 24) == "" {
		t.Error("empty quiz view")
	}
}

func TestGameScreen_KeyHints(t *testing.T) {
	s, _ := testGameScreen(2)
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints on the start screen")
	}
	startRun(t, s)
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints during the quiz")
	}
}
