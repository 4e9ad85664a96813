// Package quiz drives the multiple-choice quiz: one question at a time,
// select then reveal, with an optional AI deep dive after the reveal.
package quiz

import (
	"fmt"

	"github.com/abhisek/safetypro/internal/catalog"
	"github.com/abhisek/safetypro/internal/session"
)

// OptionState is how an option renders.
type OptionState int

const (
	Neutral OptionState = iota
	Selected
	Correct
	WrongPick
)

// Insight is the deep dive panel for the current question.
type Insight struct {
	Text    string
	Loading bool
}

// Quiz is the local state of the quiz widget.
type Quiz struct {
	questions []catalog.QuizQuestion
	scorer    session.Scorer

	index    int
	instance int // bumped on every Next, keys deep dive results
	selected catalog.OptionKey
	revealed bool
	insight  *Insight
}

// New creates a quiz over questions.
func New(questions []catalog.QuizQuestion, scorer session.Scorer) *Quiz {
	return &Quiz{questions: questions, scorer: scorer}
}

// Empty reports whether there is nothing to ask.
func (q *Quiz) Empty() bool { return len(q.questions) == 0 }

// Current returns the question being asked.
func (q *Quiz) Current() (catalog.QuizQuestion, bool) {
	if q.Empty() {
		return catalog.QuizQuestion{}, false
	}
	return q.questions[q.index], true
}

// Index returns the current question index.
func (q *Quiz) Index() int { return q.index }

// Instance identifies the current question visit.
func (q *Quiz) Instance() int { return q.instance }

// Position returns "Question i of n".
func (q *Quiz) Position() string {
	if q.Empty() {
		return ""
	}
	return fmt.Sprintf("Question %d of %d", q.index+1, len(q.questions))
}

// Select picks an option. The choice can change until it is revealed.
func (q *Quiz) Select(key catalog.OptionKey) {
	if q.Empty() || q.revealed {
		return
	}
	if _, ok := q.questions[q.index].Options[key]; !ok {
		return
	}
	q.selected = key
}

// Selection returns the picked option, or "".
func (q *Quiz) Selection() catalog.OptionKey { return q.selected }

// Revealed reports whether the answer is shown.
func (q *Quiz) Revealed() bool { return q.revealed }

// Reveal shows the answer and scores a correct pick. It does nothing
// without a selection or when already revealed.
func (q *Quiz) Reveal() bool {
	if q.Empty() || q.selected == "" || q.revealed {
		return false
	}
	q.revealed = true
	cur := q.questions[q.index]
	if q.selected == cur.Correct {
		q.scorer.RecordScore(cur.ID, session.PointsQuiz)
	}
	return true
}

// AnsweredCorrectly reports whether the revealed pick was right.
func (q *Quiz) AnsweredCorrectly() bool {
	cur, ok := q.Current()
	return ok && q.revealed && q.selected == cur.Correct
}

// OptionState returns the render state for an option.
func (q *Quiz) OptionState(key catalog.OptionKey) OptionState {
	cur, ok := q.Current()
	if !ok {
		return Neutral
	}
	if !q.revealed {
		if key == q.selected {
			return Selected
		}
		return Neutral
	}
	switch {
	case key == cur.Correct:
		return Correct
	case key == q.selected:
		return WrongPick
	default:
		return Neutral
	}
}

// Next advances to the following question, wrapping at the end.
func (q *Quiz) Next() {
	if q.Empty() {
		return
	}
	q.index = (q.index + 1) % len(q.questions)
	q.instance++
	q.selected = ""
	q.revealed = false
	q.insight = nil
}

// RequestDeepDive opens the deep dive panel. It returns true when the
// caller should fetch; each question visit fetches at most once.
func (q *Quiz) RequestDeepDive() bool {
	if !q.revealed || q.insight != nil {
		return false
	}
	q.insight = &Insight{Loading: true}
	return true
}

// ResolveDeepDive stores the fetched text if it belongs to the current
// question visit.
func (q *Quiz) ResolveDeepDive(instance int, text string) bool {
	if instance != q.instance || q.insight == nil {
		return false
	}
	q.insight.Text = text
	q.insight.Loading = false
	return true
}

// Insight returns the deep dive panel, or nil.
func (q *Quiz) Insight() *Insight { return q.insight }
