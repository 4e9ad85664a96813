// Package association is the term/definition matching game.
package association

import (
	"math/rand/v2"

	"github.com/abhisek/safetypro/internal/catalog"
	"github.com/abhisek/safetypro/internal/session"
)

// Side is a column of the board.
type Side int

const (
	Left  Side = iota // terms
	Right             // definitions
)

// Token is one card on the board. Both cards of a pair share its ID.
type Token struct {
	ID   string
	Text string
}

// Outcome is the result of a selection.
type Outcome int

const (
	Pending  Outcome = iota // fewer than two cards selected
	Matched                 // the two cards formed a pair
	Mismatch                // the two cards differ; clear after a delay
)

// Board is the local state of the association widget.
type Board struct {
	pairs  []catalog.AssociationPair
	scorer session.Scorer
	rng    *rand.Rand

	left, right []Token
	matched     map[string]bool
	selLeft     string
	selRight    string
	gen         uint64
}

// New creates a shuffled board. rng must not be nil.
func New(pairs []catalog.AssociationPair, scorer session.Scorer, rng *rand.Rand) *Board {
	b := &Board{pairs: pairs, scorer: scorer, rng: rng}
	b.Restart()
	return b
}

// Restart reshuffles both columns and clears all local state.
func (b *Board) Restart() {
	b.left = make([]Token, len(b.pairs))
	b.right = make([]Token, len(b.pairs))
	for i, p := range b.pairs {
		b.left[i] = Token{ID: p.ID, Text: p.Term}
		b.right[i] = Token{ID: p.ID, Text: p.Definition}
	}
	b.rng.Shuffle(len(b.left), func(i, j int) { b.left[i], b.left[j] = b.left[j], b.left[i] })
	b.rng.Shuffle(len(b.right), func(i, j int) { b.right[i], b.right[j] = b.right[j], b.right[i] })

	b.matched = make(map[string]bool)
	b.selLeft, b.selRight = "", ""
	b.gen++
}

// Column returns the cards of one side in display order.
func (b *Board) Column(side Side) []Token {
	if side == Left {
		return b.left
	}
	return b.right
}

// Selected returns the selected card id on a side, or "".
func (b *Board) Selected(side Side) string {
	if side == Left {
		return b.selLeft
	}
	return b.selRight
}

// Matched reports whether a pair is done.
func (b *Board) Matched(id string) bool { return b.matched[id] }

// MatchedCount returns the number of finished pairs.
func (b *Board) MatchedCount() int { return len(b.matched) }

// Complete reports whether every pair is matched.
func (b *Board) Complete() bool {
	return len(b.pairs) > 0 && len(b.matched) == len(b.pairs)
}

// Generation identifies the current selection state.
func (b *Board) Generation() uint64 { return b.gen }

// SelectLeft selects a term.
func (b *Board) SelectLeft(id string) (Outcome, uint64) {
	return b.selectToken(Left, id)
}

// SelectRight selects a definition.
func (b *Board) SelectRight(id string) (Outcome, uint64) {
	return b.selectToken(Right, id)
}

func (b *Board) selectToken(side Side, id string) (Outcome, uint64) {
	if b.matched[id] || !b.known(id) {
		return Pending, b.gen
	}

	slot := &b.selLeft
	if side == Right {
		slot = &b.selRight
	}
	if *slot == id {
		*slot = ""
	} else {
		*slot = id
	}
	b.gen++

	if b.selLeft == "" || b.selRight == "" {
		return Pending, b.gen
	}
	if b.selLeft == b.selRight {
		b.matched[id] = true
		b.selLeft, b.selRight = "", ""
		b.scorer.RecordScore(id, session.PointsAssociation)
		return Matched, b.gen
	}
	return Mismatch, b.gen
}

// ClearMismatch clears both selections if nothing changed since gen.
func (b *Board) ClearMismatch(gen uint64) bool {
	if gen != b.gen {
		return false
	}
	b.selLeft, b.selRight = "", ""
	b.gen++
	return true
}

func (b *Board) known(id string) bool {
	for _, p := range b.pairs {
		if p.ID == id {
			return true
		}
	}
	return false
}
