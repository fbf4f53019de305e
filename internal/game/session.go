package game

import (
	"sync"

	"carshop/internal/model"

	"github.com/google/uuid"
)

// Topics published by the game session
const (
	TopicShowQuestion = "game/show_question"
	TopicAnswer       = "game/answer"
)

// Broadcaster publishes a payload to every subscriber of a topic
type Broadcaster interface {
	Publish(topic string, payload interface{})
}

// Session is the single authoritative game loop. At most one question is
// active at a time; the round advances only when an answer for the active
// question arrives, correct or not. All state changes happen under one lock
// so that concurrent submissions for the same round resolve to exactly one
// graded answer and exactly one new round.
type Session struct {
	id          string
	bank        *Bank
	broadcaster Broadcaster

	mu      sync.Mutex
	current *model.Question
}

// NewSession creates an idle game session over the given question bank
func NewSession(bank *Bank, broadcaster Broadcaster) *Session {
	return &Session{
		id:          uuid.New().String(),
		bank:        bank,
		broadcaster: broadcaster,
	}
}

// ID returns the session's identifier
func (s *Session) ID() string {
	return s.id
}

// Start begins a new round: a random question becomes current and is
// broadcast with the correct option withheld.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startLocked()
}

func (s *Session) startLocked() {
	q := s.bank.Random()
	s.current = &q
	s.broadcaster.Publish(TopicShowQuestion, q.View())
}

// SubmitAnswer grades a submission against the current question. Submissions
// for a superseded question are discarded with no broadcast and no state
// change. A graded submission is echoed to all subscribers and the next
// round starts immediately.
func (s *Session) SubmitAnswer(msg model.AnswerMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || msg.QuestionID != s.current.ID {
		return
	}

	if q, ok := s.bank.ByID(msg.QuestionID); ok {
		msg.IsCorrect = q.Correct == msg.Answer
	}
	s.broadcaster.Publish(TopicAnswer, msg)

	s.startLocked()
}

// Current returns the active question, if any
func (s *Session) Current() (model.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return model.Question{}, false
	}
	return *s.current, true
}
