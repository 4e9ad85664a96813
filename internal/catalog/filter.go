package catalog

import (
	"fmt"
	"slices"
)

// ModuleSelector picks which aula the exercise views show.
// The zero value is AllModules.
type ModuleSelector int

// AllModules passes every item through the filter.
const AllModules ModuleSelector = 0

// ForModule returns the selector for aula n.
func ForModule(n int) ModuleSelector {
	return ModuleSelector(n)
}

// All reports whether s is the AllModules sentinel.
func (s ModuleSelector) All() bool {
	return s == AllModules
}

// Next cycles All → first aula → ... → last aula → All.
func (s ModuleSelector) Next() ModuleSelector {
	if s.All() {
		return ForModule(modules[0].Number)
	}
	for i, m := range modules {
		if m.Number == int(s) && i+1 < len(modules) {
			return ForModule(modules[i+1].Number)
		}
	}
	return AllModules
}

func (s ModuleSelector) String() string {
	if s.All() {
		return "All Aulas"
	}
	if label := ModuleLabel(int(s)); label != "" {
		return fmt.Sprintf("Aula %d · %s", int(s), label)
	}
	return fmt.Sprintf("Aula %d", int(s))
}

// FilterByModule returns the items whose aula matches sel, in their
// original order. With AllModules it returns the full list. The result
// never shares a backing array with items.
func FilterByModule[T Moduled](items []T, sel ModuleSelector) []T {
	if sel.All() {
		return slices.Clone(items)
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.ModuleID() == int(sel) {
			out = append(out, it)
		}
	}
	return out
}
