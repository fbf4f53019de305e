package game

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"

	"carshop/internal/model"
)

//go:embed questions.json
var questionData []byte

// Bank is the fixed question set, loaded once at startup and never mutated.
type Bank struct {
	questions []model.Question
}

// NewBank decodes the embedded question data
func NewBank() (*Bank, error) {
	var questions []model.Question
	if err := json.Unmarshal(questionData, &questions); err != nil {
		return nil, fmt.Errorf("failed to decode question data: %w", err)
	}
	if len(questions) == 0 {
		return nil, errors.New("question bank is empty")
	}
	return &Bank{questions: questions}, nil
}

// Random returns a uniformly random question from the full set
func (b *Bank) Random() model.Question {
	return b.questions[rand.IntN(len(b.questions))]
}

// ByID returns the question with the given id
func (b *Bank) ByID(id string) (model.Question, bool) {
	for _, q := range b.questions {
		if q.ID == id {
			return q, true
		}
	}
	return model.Question{}, false
}

// Len returns the number of questions in the bank
func (b *Bank) Len() int {
	return len(b.questions)
}
