// Package truefalse tracks answers to the true/false statements.
package truefalse

import (
	"github.com/abhisek/safetypro/internal/catalog"
	"github.com/abhisek/safetypro/internal/session"
)

// Board is the local state of the true/false widget.
type Board struct {
	questions []catalog.TrueFalseQuestion
	scorer    session.Scorer
	answers   map[string]bool
}

// New creates a board over questions.
func New(questions []catalog.TrueFalseQuestion, scorer session.Scorer) *Board {
	return &Board{
		questions: questions,
		scorer:    scorer,
		answers:   make(map[string]bool),
	}
}

// Questions returns the statements in display order.
func (b *Board) Questions() []catalog.TrueFalseQuestion { return b.questions }

func (b *Board) find(id string) (catalog.TrueFalseQuestion, bool) {
	for _, q := range b.questions {
		if q.ID == id {
			return q, true
		}
	}
	return catalog.TrueFalseQuestion{}, false
}

// Answer records the learner's judgement. The first answer is final; a
// correct one scores.
func (b *Board) Answer(id string, choice bool) bool {
	q, ok := b.find(id)
	if !ok {
		return false
	}
	if _, done := b.answers[id]; done {
		return false
	}
	b.answers[id] = choice
	if choice == q.IsTrue {
		b.scorer.RecordScore(id, session.PointsTrueFalse)
	}
	return true
}

// Answered returns the recorded choice.
func (b *Board) Answered(id string) (choice, ok bool) {
	choice, ok = b.answers[id]
	return choice, ok
}

// Correct reports whether the statement was answered correctly.
func (b *Board) Correct(id string) bool {
	q, ok := b.find(id)
	if !ok {
		return false
	}
	choice, answered := b.answers[id]
	return answered && choice == q.IsTrue
}

// ShowJustification reports whether the justification should be shown:
// once answered, for false statements and for wrong answers.
func (b *Board) ShowJustification(id string) bool {
	q, ok := b.find(id)
	if !ok {
		return false
	}
	choice, answered := b.answers[id]
	if !answered {
		return false
	}
	return !q.IsTrue || choice != q.IsTrue
}

// AnsweredCount returns how many statements have an answer.
func (b *Board) AnsweredCount() int { return len(b.answers) }

// Restart clears the answers. Points already awarded stay.
func (b *Board) Restart() {
	clear(b.answers)
}
