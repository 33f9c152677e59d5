package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// OptionList renders the answer choices of one question. Before the lock
// it highlights the cursor and the current selection; after the lock it
// reveals the correct option and marks a wrong pick.
type OptionList struct {
	Options      []string
	CorrectIndex int
	Cursor       int
	Selected     int // -1 when nothing is picked
	Locked       bool
}

// View renders the option rows.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		label := string(rune('A' + i))
		prefix := "  "
		if !o.Locked && i == o.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case o.Locked && i == o.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case o.Locked && i == o.Selected:
			s += theme.Incorrect.Render(line) + "\n"
		case o.Locked:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		case i == o.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
