// Package checklist tracks the study topic checklist and its single AI
// explanation slot.
package checklist

import (
	"math"

	"github.com/abhisek/safetypro/internal/catalog"
	"github.com/abhisek/safetypro/internal/session"
)

// Explanation is the one open explanation panel.
type Explanation struct {
	ItemID  string
	Text    string
	Loading bool
}

// Checklist is the local state of the checklist widget.
type Checklist struct {
	items   []catalog.ChecklistItem
	scorer  session.Scorer
	checked map[string]bool
	explain *Explanation
}

// New creates a checklist over items.
func New(items []catalog.ChecklistItem, scorer session.Scorer) *Checklist {
	return &Checklist{
		items:   items,
		scorer:  scorer,
		checked: make(map[string]bool),
	}
}

// Items returns the topics in display order.
func (c *Checklist) Items() []catalog.ChecklistItem { return c.items }

// Len returns the number of topics.
func (c *Checklist) Len() int { return len(c.items) }

// Item returns the topic with the given id.
func (c *Checklist) Item(id string) (catalog.ChecklistItem, bool) {
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return catalog.ChecklistItem{}, false
}

// Toggle flips the mark on a topic. Checking awards points through the
// scorer, which ignores items it has already scored.
func (c *Checklist) Toggle(id string) {
	if _, ok := c.Item(id); !ok {
		return
	}
	if c.checked[id] {
		delete(c.checked, id)
		return
	}
	c.checked[id] = true
	c.scorer.RecordScore(id, session.PointsChecklist)
}

// Checked reports whether a topic is marked.
func (c *Checklist) Checked(id string) bool { return c.checked[id] }

// Progress returns the rounded percentage of checked topics.
func (c *Checklist) Progress() int {
	if len(c.items) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(len(c.checked)) / float64(len(c.items))))
}

// ToggleExplain opens or closes the explanation for a topic. It returns
// true when the caller should fetch the explanation text.
func (c *Checklist) ToggleExplain(id string) bool {
	if _, ok := c.Item(id); !ok {
		return false
	}
	if c.explain != nil && c.explain.ItemID == id {
		if c.explain.Loading {
			return false
		}
		c.explain = nil
		return false
	}
	c.explain = &Explanation{ItemID: id, Loading: true}
	return true
}

// ResolveExplain stores fetched text if id still owns the slot.
func (c *Checklist) ResolveExplain(id, text string) bool {
	if c.explain == nil || c.explain.ItemID != id {
		return false
	}
	c.explain.Text = text
	c.explain.Loading = false
	return true
}

// Explanation returns the open explanation, or nil.
func (c *Checklist) Explanation() *Explanation { return c.explain }
