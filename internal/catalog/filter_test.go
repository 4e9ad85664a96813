package catalog

import "testing"

func sampleChecklist() []ChecklistItem {
	return []ChecklistItem{
		{ID: "a", Module: 15, Topic: "a"},
		{ID: "b", Module: 16, Topic: "b"},
		{ID: "c", Module: 15, Topic: "c"},
		{ID: "d", Module: 16, Topic: "d"},
	}
}

func TestFilterByModuleAllReturnsEverything(t *testing.T) {
	items := sampleChecklist()
	got := FilterByModule(items, AllModules)

	if len(got) != len(items) {
		t.Fatalf("len = %d, want %d", len(got), len(items))
	}
	for i := range items {
		if got[i] != items[i] {
			t.Errorf("got[%d] = %+v, want %+v", i, got[i], items[i])
		}
	}
}

func TestFilterByModuleKeepsOrder(t *testing.T) {
	got := FilterByModule(sampleChecklist(), ForModule(16))

	want := []string{"b", "d"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("got[%d].ID = %q, want %q", i, got[i].ID, id)
		}
		if got[i].Module != 16 {
			t.Errorf("got[%d].Module = %d, want 16", i, got[i].Module)
		}
	}
}

func TestFilterByModuleNoMatches(t *testing.T) {
	got := FilterByModule(sampleChecklist(), ForModule(42))
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestFilterByModuleDoesNotAlias(t *testing.T) {
	items := sampleChecklist()

	all := FilterByModule(items, AllModules)
	all[0].Topic = "mutated"
	if items[0].Topic != "a" {
		t.Errorf("filter with AllModules aliased the input slice")
	}

	some := FilterByModule(items, ForModule(15))
	some[0].Topic = "mutated"
	if items[0].Topic != "a" {
		t.Errorf("filter with a module aliased the input slice")
	}
}

func TestFilterByModuleWorksForEveryItemType(t *testing.T) {
	c := MustLoad()

	if got := len(FilterByModule(c.Quiz, ForModule(15))); got != 2 {
		t.Errorf("quiz aula 15 = %d, want 2", got)
	}
	if got := len(FilterByModule(c.TrueFalse, ForModule(15))); got != 2 {
		t.Errorf("true/false aula 15 = %d, want 2", got)
	}
	if got := len(FilterByModule(c.CaseStudies, ForModule(16))); got != 2 {
		t.Errorf("case studies aula 16 = %d, want 2", got)
	}
	if got := len(FilterByModule(c.Checklist, ForModule(16))); got != 3 {
		t.Errorf("checklist aula 16 = %d, want 3", got)
	}
}

func TestModuleSelectorCycle(t *testing.T) {
	s := AllModules
	want := []ModuleSelector{ForModule(15), ForModule(16), AllModules}
	for i, w := range want {
		s = s.Next()
		if s != w {
			t.Errorf("step %d: Next = %v, want %v", i, s, w)
		}
	}
}

func TestModuleSelectorString(t *testing.T) {
	tests := []struct {
		sel  ModuleSelector
		want string
	}{
		{AllModules, "All Aulas"},
		{ForModule(15), "Aula 15 · Basics"},
		{ForModule(16), "Aula 16 · Risks"},
		{ForModule(7), "Aula 7"},
	}
	for _, tt := range tests {
		if got := tt.sel.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
