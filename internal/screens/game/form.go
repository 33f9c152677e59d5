package game

import (
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/trivia"
	"github.com/quizdeck/quizdeck/internal/ui/components"
)

// Start form fields, in display order.
const (
	fieldDifficulty = iota
	fieldCategory
	fieldAmount
	fieldCount
)

// maxAmount is the largest question count the provider serves per request.
const maxAmount = 50

// startForm holds the start screen selections: difficulty, category and
// question count, with a free-typed count as the last amount choice.
type startForm struct {
	field      int
	difficulty int // index into quiz.Difficulties()
	category   int // 0 = any, otherwise 1-based index into the category list
	amount     int // index into quiz.AmountChoices(); len(choices) = custom
	custom     components.TextInput
}

func newStartForm(defaults quiz.Config, categories []trivia.Category) startForm {
	f := startForm{
		custom: components.NewTextInput("count", true, 2),
	}
	for i, d := range quiz.Difficulties() {
		if d == defaults.Difficulty {
			f.difficulty = i
		}
	}
	for i, choice := range quiz.AmountChoices() {
		if choice == defaults.Amount {
			f.amount = i
		}
	}
	f.syncCategory(defaults.Category, categories)
	return f
}

// syncCategory points the category selector at id, falling back to "any"
// when the id is not in the list.
func (f *startForm) syncCategory(id string, categories []trivia.Category) {
	f.category = 0
	if id == trivia.AnyCategory {
		return
	}
	for i, c := range categories {
		if strconv.Itoa(c.ID) == id {
			f.category = i + 1
			return
		}
	}
}

func (f startForm) customActive() bool {
	return f.field == fieldAmount && f.amount == len(quiz.AmountChoices())
}

// Update handles start form navigation.
func (f startForm) Update(msg tea.Msg, categories []trivia.Category) (startForm, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if f.field > 0 {
			f.field--
		}
		return f, nil
	case "down", "j":
		if f.field < fieldCount-1 {
			f.field++
		}
		return f, nil
	case "left", "h":
		return f.cycle(-1, categories), nil
	case "right", "l":
		return f.cycle(1, categories), nil
	}

	if f.customActive() {
		var cmd tea.Cmd
		f.custom, cmd = f.custom.Update(msg)
		return f, cmd
	}

	return f, nil
}

func (f startForm) cycle(dir int, categories []trivia.Category) startForm {
	switch f.field {
	case fieldDifficulty:
		n := len(quiz.Difficulties())
		f.difficulty = (f.difficulty + dir + n) % n
	case fieldCategory:
		n := len(categories) + 1 // plus the "any" sentinel
		f.category = (f.category + dir + n) % n
	case fieldAmount:
		n := len(quiz.AmountChoices()) + 1 // plus the custom entry
		f.amount = (f.amount + dir + n) % n
	}
	return f
}

// Config returns the quiz configuration the form currently describes.
// An unusable custom count falls back to the default.
func (f startForm) Config(categories []trivia.Category) quiz.Config {
	cfg := quiz.Config{
		Difficulty: quiz.Difficulties()[f.difficulty],
		Category:   trivia.AnyCategory,
		Amount:     quiz.DefaultAmount,
	}

	if f.category > 0 && f.category <= len(categories) {
		cfg.Category = strconv.Itoa(categories[f.category-1].ID)
	}

	choices := quiz.AmountChoices()
	if f.amount < len(choices) {
		cfg.Amount = choices[f.amount]
	} else if n, err := f.custom.NumericValue(); err == nil && n > 0 {
		cfg.Amount = min(n, maxAmount)
	}

	return cfg
}

// Labels for rendering.

func (f startForm) difficultyLabel() string {
	return string(quiz.Difficulties()[f.difficulty])
}

func (f startForm) categoryLabel(categories []trivia.Category) string {
	if f.category == 0 || f.category > len(categories) {
		return trivia.AnyCategoryLabel
	}
	return categories[f.category-1].Name
}

func (f startForm) amountLabel() string {
	choices := quiz.AmountChoices()
	if f.amount < len(choices) {
		return strconv.Itoa(choices[f.amount])
	}
	return "custom: " + f.custom.View()
}
