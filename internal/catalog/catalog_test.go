package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Len(t, c.Checklist, 6)
	assert.Len(t, c.Quiz, 3)
	assert.Len(t, c.TrueFalse, 3)
	assert.Len(t, c.CaseStudies, 3)
	assert.Len(t, c.Association, 5)
	assert.Len(t, c.Results, 7)

	assert.Equal(t, OptionC, c.Quiz[0].Correct)
	assert.Equal(t, "Do empregador.", c.Quiz[0].CorrectText())
	assert.False(t, c.TrueFalse[0].IsTrue)
	assert.True(t, c.TrueFalse[1].IsTrue)
	assert.Empty(t, c.TrueFalse[1].Justification)
	assert.Equal(t, "Ana Silva", c.Results[0].Name)
	assert.Equal(t, 450, c.Results[0].Score)
}

func TestMustLoadDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() { MustLoad() })
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	doc := `
checklist:
  - {id: X1, module: 15, topic: a}
case_studies:
  - {id: X1, module: 16, scenario: s, ideal_answer: i}
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate item id "X1"`)
}

func TestParseRejectsUnknownModule(t *testing.T) {
	doc := `
checklist:
  - {id: X1, module: 99, topic: a}
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
}

func TestParseRejectsBadQuizOptions(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing option", `
quiz:
  - id: Q1
    module: 15
    question: q
    options: {A: a, B: b, C: c}
    correct: A
`},
		{"unknown key", `
quiz:
  - id: Q1
    module: 15
    question: q
    options: {A: a, B: b, C: c, E: e}
    correct: A
`},
		{"bad correct key", `
quiz:
  - id: Q1
    module: 15
    question: q
    options: {A: a, B: b, C: c, D: d}
    correct: F
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParseRejectsBadResult(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"bad date", `{name: A, score: 1, elapsed: '01:00', completed_tasks: 1, date: '25/10/2023'}`},
		{"bad elapsed", `{name: A, score: 1, elapsed: '1:75', completed_tasks: 1, date: '2023-10-25'}`},
		{"negative score", `{name: A, score: -5, elapsed: '01:00', completed_tasks: 1, date: '2023-10-25'}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte("results:\n  - " + tt.row + "\n"))
			assert.Error(t, err)
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	doc := `
checklist:
  - {id: X1, module: 15, topic: a, aula: 15}
`
	_, err := Parse([]byte(doc))
	assert.Error(t, err)
}

func TestModules(t *testing.T) {
	mods := Modules()
	require.Len(t, mods, 2)
	assert.Equal(t, Module{Number: 15, Label: "Basics"}, mods[0])
	assert.Equal(t, Module{Number: 16, Label: "Risks"}, mods[1])

	mods[0].Label = "changed"
	assert.Equal(t, "Basics", ModuleLabel(15))
	assert.Equal(t, "", ModuleLabel(3))
}
