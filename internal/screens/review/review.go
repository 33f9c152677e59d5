package review

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// ReviewScreen walks through the answer records of a finished quiz.
type ReviewScreen struct {
	answers  []quiz.Answer
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a ReviewScreen over a finished run's answer records.
func New(answers []quiz.Answer) *ReviewScreen {
	return &ReviewScreen{
		answers:  answers,
		expanded: make(map[int]bool),
	}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (s *ReviewScreen) Title() string {
	return "Review"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.answers)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

// truncate shortens text to at most max runes, ending in an ellipsis.
// Slicing on runes keeps decoded trivia text (accents, symbols) intact.
func truncate(text string, max int) string {
	if max <= 3 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-1]) + "…"
}

func (s *ReviewScreen) View(width, height int) string {
	if len(s.answers) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing to review yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.answers {
		mark := theme.Incorrect.Render("✗")
		if a.Correct {
			mark = theme.Correct.Render("✓")
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		text := truncate(a.QuestionText, width-14)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		line := fmt.Sprintf("%s%2d. %s  %s", prefix, i+1, mark, style.Render(text))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")

		if s.expanded[i] {
			if a.Selected == quiz.NoSelection {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.Warning).Italic(true).
						Render("    Ran out of time")))
				b.WriteString("\n")
			} else if !a.Correct {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.Error).
						Render(fmt.Sprintf("    Your answer: %s", a.ChosenText))))
				b.WriteString("\n")
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Success).
					Render(fmt.Sprintf("    Correct: %s", a.CorrectText))))
			b.WriteString("\n")
		}
	}

	return b.String()
}
