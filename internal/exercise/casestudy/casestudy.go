// Package casestudy holds the free-text scenario answers and their AI
// feedback.
package casestudy

import (
	"strings"
	"unicode/utf8"

	"github.com/abhisek/safetypro/internal/catalog"
	"github.com/abhisek/safetypro/internal/session"
)

// MinAnswerLength is the shortest trimmed answer that can be submitted.
const MinAnswerLength = 5

// Entry is the per-scenario state.
type Entry struct {
	Input     string
	Feedback  string
	HasResult bool
	InFlight  bool
	ShowIdeal bool
}

// Board is the local state of the case study widget.
type Board struct {
	cases    []catalog.CaseStudy
	scorer   session.Scorer
	entries  map[string]*Entry
	expanded string
}

// New creates a board over cases.
func New(cases []catalog.CaseStudy, scorer session.Scorer) *Board {
	return &Board{
		cases:   cases,
		scorer:  scorer,
		entries: make(map[string]*Entry),
	}
}

// Cases returns the scenarios in display order.
func (b *Board) Cases() []catalog.CaseStudy { return b.cases }

// Case returns the scenario with the given id.
func (b *Board) Case(id string) (catalog.CaseStudy, bool) {
	for _, c := range b.cases {
		if c.ID == id {
			return c, true
		}
	}
	return catalog.CaseStudy{}, false
}

func (b *Board) entry(id string) *Entry {
	e, ok := b.entries[id]
	if !ok {
		e = &Entry{}
		b.entries[id] = e
	}
	return e
}

// Entry returns a copy of the state for id.
func (b *Board) Entry(id string) Entry {
	if e, ok := b.entries[id]; ok {
		return *e
	}
	return Entry{}
}

// ToggleExpand opens a scenario, closing any other. Toggling the open
// one closes it.
func (b *Board) ToggleExpand(id string) {
	if _, ok := b.Case(id); !ok {
		return
	}
	if b.expanded == id {
		b.expanded = ""
		return
	}
	b.expanded = id
}

// Expanded returns the open scenario id, or "".
func (b *Board) Expanded() string { return b.expanded }

// SetInput replaces the draft answer until feedback arrives.
func (b *Board) SetInput(id, text string) {
	if _, ok := b.Case(id); !ok {
		return
	}
	e := b.entry(id)
	if e.HasResult {
		return
	}
	e.Input = text
}

// CanSubmit reports whether Submit would accept the current draft.
func (b *Board) CanSubmit(id string) bool {
	if _, ok := b.Case(id); !ok {
		return false
	}
	e := b.Entry(id)
	return !e.InFlight && !e.HasResult &&
		utf8.RuneCountInString(strings.TrimSpace(e.Input)) >= MinAnswerLength
}

// Submit marks the answer in flight. It returns true when the caller
// should request the analysis; short drafts and repeats are refused.
func (b *Board) Submit(id string) bool {
	if !b.CanSubmit(id) {
		return false
	}
	b.entry(id).InFlight = true
	return true
}

// ResolveFeedback stores the analysis, awards the points and reveals the
// reference answer. Any text counts, including a fallback message.
func (b *Board) ResolveFeedback(id, text string) bool {
	e, ok := b.entries[id]
	if !ok || !e.InFlight {
		return false
	}
	e.InFlight = false
	e.Feedback = text
	e.HasResult = true
	e.ShowIdeal = true
	b.scorer.RecordScore(id, session.PointsCaseStudy)
	return true
}

// RevealIdeal shows the reference answer. It cannot be hidden again.
func (b *Board) RevealIdeal(id string) {
	if _, ok := b.Case(id); !ok {
		return
	}
	b.entry(id).ShowIdeal = true
}
