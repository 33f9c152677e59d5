package trivia

import (
	"html"
	"math/rand/v2"
)

// Question is one normalized multiple-choice question. Created once per
// fetch, immutable thereafter.
type Question struct {
	// ID is the question's position in the fetched sequence.
	ID int

	// Text is the question text with HTML entities decoded.
	Text string

	// Options holds the shuffled answer choices.
	Options []string

	// CorrectIndex is the post-shuffle index of the correct option.
	// Always a valid index into Options.
	CorrectIndex int

	Difficulty string
	Category   string
}

// buildQuestion decodes entities, merges the correct answer with its
// alternatives and shuffles the combined list so every position is equally
// likely for the correct option.
func buildQuestion(id int, raw RawQuestion) Question {
	type choice struct {
		text    string
		correct bool
	}

	choices := make([]choice, 0, len(raw.IncorrectAnswers)+1)
	for _, text := range raw.IncorrectAnswers {
		choices = append(choices, choice{text: html.UnescapeString(text)})
	}
	choices = append(choices, choice{
		text:    html.UnescapeString(raw.CorrectAnswer),
		correct: true,
	})

	rand.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	options := make([]string, len(choices))
	correctIndex := 0
	for i, c := range choices {
		options[i] = c.text
		if c.correct {
			correctIndex = i
		}
	}

	return Question{
		ID:           id,
		Text:         html.UnescapeString(raw.Question),
		Options:      options,
		CorrectIndex: correctIndex,
		Difficulty:   raw.Difficulty,
		Category:     html.UnescapeString(raw.Category),
	}
}
