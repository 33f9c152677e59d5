package game

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/screens/review"
	"github.com/quizdeck/quizdeck/internal/stats"
	"github.com/quizdeck/quizdeck/internal/trivia"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
)

// QuestionProvider is the fetch boundary of the controller.
type QuestionProvider interface {
	FetchQuestions(ctx context.Context, r trivia.Request) ([]trivia.Question, error)
	Categories(ctx context.Context) []trivia.Category
}

// Internal intents emitted by the results/error menus.
type retryMsg struct{}
type resetMsg struct{}

// GameScreen is the quiz controller: it owns the session state machine,
// the per-question countdown and the stats updates, and renders whichever
// of the five screens the current phase calls for.
type GameScreen struct {
	provider QuestionProvider
	store    stats.Store
	logger   *zap.Logger
	defaults quiz.Config

	state quiz.State
	stats stats.Stats

	categories []trivia.Category
	form       startForm
	cursor     int // answer cursor in the quiz phase
	spinner    int
	menu       components.Menu // results/error actions

	newHighScore  bool
	newBestStreak bool
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)

// New creates the controller screen. st is the stats snapshot loaded at
// app start; defaults pre-fills the start form.
func New(provider QuestionProvider, store stats.Store, logger *zap.Logger, st stats.Stats, defaults quiz.Config) *GameScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &GameScreen{
		provider: provider,
		store:    store,
		logger:   logger,
		defaults: defaults,
		stats:    st,
	}
	s.state = quiz.New()
	s.state.Config = defaults
	s.form = newStartForm(defaults, nil)
	return s
}

func (s *GameScreen) Init() tea.Cmd {
	return s.loadCategories()
}

func (s *GameScreen) Title() string {
	switch s.state.Phase {
	case quiz.PhaseLoading:
		return "Fetching Questions"
	case quiz.PhaseQuiz:
		return "Quiz"
	case quiz.PhaseResults:
		return "Results"
	case quiz.PhaseError:
		return "Error"
	default:
		return "New Quiz"
	}
}

func (s *GameScreen) KeyHints() []layout.KeyHint {
	switch s.state.Phase {
	case quiz.PhaseStart:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Field"},
			{Key: "←→", Description: "Change"},
			{Key: "Enter", Description: "Start"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case quiz.PhaseQuiz:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Move"},
			{Key: "Space/1-4", Description: "Select"},
			{Key: "Enter", Description: "Next"},
		}
	case quiz.PhaseResults, quiz.PhaseError:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return nil
}

func (s *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		s.categories = msg.Categories
		s.form.syncCategory(s.state.Config.Category, s.categories)
		return s, nil

	case questionsLoadedMsg:
		return s.handleQuestionsLoaded(msg)

	case tickMsg:
		return s.handleTick(msg)

	case timeUpMsg:
		if msg.RunID != s.state.RunID || s.state.Phase != quiz.PhaseQuiz {
			return s, nil
		}
		return s.advance(true)

	case spinnerTickMsg:
		if s.state.Phase != quiz.PhaseLoading {
			return s, nil
		}
		s.spinner++
		return s, spinnerTick()

	case retryMsg:
		return s.startQuiz(s.state.Config)

	case resetMsg:
		s.reset()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.state.Phase {
	case quiz.PhaseStart:
		if msg.String() == "enter" {
			return s.startQuiz(s.form.Config(s.categories))
		}
		var cmd tea.Cmd
		s.form, cmd = s.form.Update(msg, s.categories)
		return s, cmd

	case quiz.PhaseQuiz:
		return s.handleQuizKey(msg)

	case quiz.PhaseResults, quiz.PhaseError:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *GameScreen) handleQuizKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	q := s.state.Question()
	if q == nil {
		return s, nil
	}

	switch key := msg.String(); key {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(q.Options)-1 {
			s.cursor++
		}
	case "space", " ":
		s.state = s.state.Select(s.cursor)
	case "1", "2", "3", "4":
		i := int(key[0] - '1')
		s.state = s.state.Select(i)
		if i < len(q.Options) && !s.state.Locked {
			s.cursor = i
		}
	case "a", "b", "c", "d":
		i := int(key[0] - 'a')
		s.state = s.state.Select(i)
		if i < len(q.Options) && !s.state.Locked {
			s.cursor = i
		}
	case "enter":
		if s.state.CanSubmit() {
			return s.advance(false)
		}
	}

	return s, nil
}

// startQuiz stores the configuration and kicks off the fetch.
func (s *GameScreen) startQuiz(cfg quiz.Config) (screen.Screen, tea.Cmd) {
	runID := uuid.New().String()
	s.state = s.state.StartLoading(cfg, runID)
	s.spinner = 0
	s.logger.Info("quiz starting",
		zap.String("run", runID),
		zap.String("difficulty", string(cfg.Difficulty)),
		zap.String("category", cfg.Category),
		zap.Int("amount", cfg.Amount),
	)
	return s, tea.Batch(s.fetchQuestions(runID, cfg), spinnerTick())
}

func (s *GameScreen) handleQuestionsLoaded(msg questionsLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.RunID != s.state.RunID || s.state.Phase != quiz.PhaseLoading {
		return s, nil
	}

	if msg.Err != nil {
		s.state = s.state.FailRun(msg.Err)
		s.menu = s.errorMenu()
		s.logger.Warn("question fetch failed", zap.Error(msg.Err))
		return s, nil
	}

	s.state = s.state.BeginRun(msg.Questions)
	s.cursor = 0

	// A quiz counts as taken once its questions arrive.
	s.stats.TotalQuizzes++
	if err := s.store.SetTotalQuizzes(context.Background(), s.stats.TotalQuizzes); err != nil {
		s.logger.Warn("persist total quizzes", zap.Error(err))
	}

	return s, tea.Batch(tickCmd(s.state.RunID), statsUpdated(s.stats))
}

func (s *GameScreen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	if msg.RunID != s.state.RunID || s.state.Phase != quiz.PhaseQuiz {
		return s, nil
	}

	var expired bool
	s.state, expired = s.state.Tick()
	if expired {
		// Leave the "time's up" indication on screen, then auto-advance.
		return s, timeUpCmd(s.state.RunID)
	}
	if s.state.Locked {
		return s, nil
	}
	return s, tickCmd(s.state.RunID)
}

// advance finalizes the current answer and moves on. restartTicker is set
// on the timeout path, where the tick loop stopped at expiry.
func (s *GameScreen) advance(restartTicker bool) (screen.Screen, tea.Cmd) {
	s.state = s.state.Advance()

	if s.state.Phase == quiz.PhaseResults {
		return s, s.finalize()
	}

	s.cursor = 0
	if restartTicker {
		return s, tickCmd(s.state.RunID)
	}
	return s, nil
}

// finalize computes the run's results and persists any improved bests.
func (s *GameScreen) finalize() tea.Cmd {
	pct := s.state.Percent()
	streak := s.state.Streak()

	s.newHighScore = pct > s.stats.BestScore
	s.newBestStreak = streak > s.stats.BestStreak

	ctx := context.Background()
	if s.newHighScore {
		s.stats.BestScore = pct
		if err := s.store.SetBestScore(ctx, pct); err != nil {
			s.logger.Warn("persist best score", zap.Error(err))
		}
	}
	if s.newBestStreak {
		s.stats.BestStreak = streak
		if err := s.store.SetBestStreak(ctx, streak); err != nil {
			s.logger.Warn("persist best streak", zap.Error(err))
		}
	}

	s.menu = s.resultsMenu()
	s.logger.Info("quiz finished",
		zap.Int("score", s.state.Score),
		zap.Int("total", len(s.state.Questions)),
		zap.Int("percent", pct),
		zap.Int("streak", streak),
	)

	return statsUpdated(s.stats)
}

// reset returns to the start screen with per-run state cleared and the
// form back on the configured defaults.
func (s *GameScreen) reset() {
	s.state = s.state.Reset()
	s.state.Config = s.defaults
	s.form = newStartForm(s.defaults, s.categories)
	s.cursor = 0
	s.newHighScore = false
	s.newBestStreak = false
}

func (s *GameScreen) resultsMenu() components.Menu {
	answers := s.state.Answers
	return components.NewMenu([]components.MenuItem{
		{Label: "Play again", Action: func() tea.Cmd {
			return func() tea.Msg { return retryMsg{} }
		}},
		{Label: "Review answers", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: review.New(answers)}
			}
		}},
		{Label: "Change settings", Action: func() tea.Cmd {
			return func() tea.Msg { return resetMsg{} }
		}},
	})
}

func (s *GameScreen) errorMenu() components.Menu {
	return components.NewMenu([]components.MenuItem{
		{Label: "Retry", Action: func() tea.Cmd {
			return func() tea.Msg { return retryMsg{} }
		}},
		{Label: "Back to start", Action: func() tea.Cmd {
			return func() tea.Msg { return resetMsg{} }
		}},
	})
}

// fetchQuestions performs the single outbound call of a run.
func (s *GameScreen) fetchQuestions(runID string, cfg quiz.Config) tea.Cmd {
	provider := s.provider
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), trivia.RequestTimeout)
		defer cancel()

		questions, err := provider.FetchQuestions(ctx, trivia.Request{
			Amount:     cfg.Amount,
			Difficulty: string(cfg.Difficulty),
			Category:   cfg.Category,
		})
		return questionsLoadedMsg{RunID: runID, Questions: questions, Err: err}
	}
}

func (s *GameScreen) loadCategories() tea.Cmd {
	provider := s.provider
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), trivia.RequestTimeout)
		defer cancel()
		return categoriesLoadedMsg{Categories: provider.Categories(ctx)}
	}
}

// tickCmd schedules the next one-second countdown tick for the given run.
func tickCmd(runID string) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{RunID: runID}
	})
}

// timeUpCmd schedules the post-timeout advance after the display delay.
func timeUpCmd(runID string) tea.Cmd {
	return tea.Tick(quiz.TimeUpDelay, func(time.Time) tea.Msg {
		return timeUpMsg{RunID: runID}
	})
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func statsUpdated(st stats.Stats) tea.Cmd {
	return func() tea.Msg {
		return StatsUpdatedMsg{Stats: st}
	}
}
