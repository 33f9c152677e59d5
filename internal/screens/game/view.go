package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *GameScreen) View(width, height int) string {
	switch s.state.Phase {
	case quiz.PhaseLoading:
		return s.renderLoading(width, height)
	case quiz.PhaseQuiz:
		return s.renderQuiz(width, height)
	case quiz.PhaseResults:
		return s.renderResults(width, height)
	case quiz.PhaseError:
		return s.renderError(width, height)
	default:
		return s.renderStart(width, height)
	}
}

func (s *GameScreen) renderStart(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Ready for trivia?"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
		field int
	}{
		{"Difficulty", s.form.difficultyLabel(), fieldDifficulty},
		{"Category", s.form.categoryLabel(s.categories), fieldCategory},
		{"Questions", s.form.amountLabel(), fieldAmount},
	}

	var form strings.Builder
	for _, row := range rows {
		cursor := "  "
		valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if s.form.field == row.field {
			cursor = "▸ "
			valueStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		}
		form.WriteString(fmt.Sprintf("%s%-12s ◂ %s ▸\n",
			cursor,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(row.label),
			valueStyle.Render(row.value),
		))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, form.String()))
	b.WriteString("\n")

	b.WriteString(theme.Subtitle.Width(width).Render("Press Enter to start"))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Best score: %d%%    Quizzes taken: %d    Best streak: %d",
		s.stats.BestScore, s.stats.TotalQuizzes, s.stats.BestStreak)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(statsLine))

	return b.String()
}

func (s *GameScreen) renderLoading(width, height int) string {
	frame := spinnerFrames[s.spinner%len(spinnerFrames)]
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n\n%s Fetching questions...", frame))
}

func (s *GameScreen) renderQuiz(width, height int) string {
	q := s.state.Question()
	if q == nil {
		return ""
	}

	var b strings.Builder

	// Info line: position left, score and countdown right.
	total := len(s.state.Questions)
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.state.Position+1, total))

	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if s.state.TimeLeft <= 5 {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("✓ %d  ", s.state.Score)) +
		timerStyle.Render(fmt.Sprintf("⏱ %2ds", s.state.TimeLeft))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	progress := components.NewProgressBar("", float64(s.state.Position)/float64(total), false, width-8)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, progress.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(q.Category))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	options := components.OptionList{
		Options:      q.Options,
		CorrectIndex: q.CorrectIndex,
		Cursor:       s.cursor,
		Selected:     s.state.Selected,
		Locked:       s.state.Locked,
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, options.View()))

	if s.state.Locked {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Bold(true).
			Render("Time's up!"))
	}

	return b.String()
}

func (s *GameScreen) renderResults(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Quiz complete!"))
	b.WriteString("\n\n")

	total := len(s.state.Questions)
	pct := s.state.Percent()
	scoreLine := fmt.Sprintf("Score: %d/%d    %d%%", s.state.Score, total, pct)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(scoreLine))
	b.WriteString("\n")

	if s.newHighScore {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("★ New high score!"))
		b.WriteString("\n")
	}
	if s.newBestStreak {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("⚡ New best streak: %d", s.state.Streak())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	statsLine := fmt.Sprintf("Best score: %d%%    Quizzes taken: %d    Best streak: %d",
		s.stats.BestScore, s.stats.TotalQuizzes, s.stats.BestStreak)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(statsLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	return b.String()
}

func (s *GameScreen) renderError(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("Couldn't start the quiz"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(s.state.ErrMsg))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	return b.String()
}
