package review

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/router"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testAnswers() []quiz.Answer {
	return []quiz.Answer{
		{QuestionID: 0, QuestionText: "first question", Selected: 1, Correct: true, CorrectText: "right", ChosenText: "right"},
		{QuestionID: 1, QuestionText: "second question", Selected: 0, Correct: false, CorrectText: "right", ChosenText: "wrong"},
		{QuestionID: 2, QuestionText: "third question", Selected: quiz.NoSelection, Correct: false, CorrectText: "right"},
	}
}

func TestReviewScreen_Navigation(t *testing.T) {
	s := New(testAnswers())

	s.Update(keyPress('j'))
	s.Update(keyPress('j'))
	if s.selected != 2 {
		t.Errorf("selected = %d, want 2", s.selected)
	}

	// Bounded at the ends.
	s.Update(keyPress('j'))
	if s.selected != 2 {
		t.Errorf("selected = %d, want clamped at 2", s.selected)
	}
	s.Update(keyPress('k'))
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
}

func TestReviewScreen_ExpandDetails(t *testing.T) {
	s := New(testAnswers())

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !s.expanded[0] {
		t.Error("expected the first record to expand")
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.expanded[0] {
		t.Error("expected enter to collapse again")
	}
}

func TestReviewScreen_EscPops(t *testing.T) {
	s := New(testAnswers())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected esc to pop the screen")
	}
}

func TestReviewScreen_View(t *testing.T) {
	s := New(testAnswers())
	s.expanded[2] = true

	view := s.View(80, 24)
	if !strings.Contains(view, "first question") {
		t.Error("expected question text in the view")
	}
	if !strings.Contains(view, "Ran out of time") {
		t.Error("expected the timeout note for the unanswered record")
	}
}

func TestTruncate_RuneBoundaries(t *testing.T) {
	text := "Qué significa «ñandú» en español — and some padding to overflow"

	got := truncate(text, 20)
	if !utf8.ValidString(got) {
		t.Errorf("truncate produced invalid UTF-8: %q", got)
	}
	if want := string([]rune(text)[:19]) + "…"; got != want {
		t.Errorf("truncate = %q, want %q", got, want)
	}

	if got := truncate("short", 20); got != "short" {
		t.Errorf("truncate = %q, want unchanged", got)
	}
	if got := truncate("untouched when too narrow", 2); got != "untouched when too narrow" {
		t.Errorf("truncate = %q, want unchanged below the minimum width", got)
	}
}

func TestReviewScreen_Empty(t *testing.T) {
	s := New(nil)
	if s.View(80, 24) == "" {
		t.Error("expected a placeholder view for an empty record list")
	}
}
