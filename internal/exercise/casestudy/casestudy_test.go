package casestudy

import (
	"testing"

	"github.com/abhisek/safetypro/internal/catalog"
	"github.com/abhisek/safetypro/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scorer map[string]int

func (s scorer) RecordScore(id string, points int) bool {
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = points
	return true
}

func testCases() []catalog.CaseStudy {
	return []catalog.CaseStudy{
		{ID: "E01", Module: 15, Scenario: "Piso molhado.", IdealAnswer: "Sinalizar."},
		{ID: "E02", Module: 16, Scenario: "Pallet quebrado.", IdealAnswer: "Segregar."},
	}
}

func TestExpandOneAtATime(t *testing.T) {
	b := New(testCases(), scorer{})
	b.ToggleExpand("E01")
	assert.Equal(t, "E01", b.Expanded())
	b.ToggleExpand("E02")
	assert.Equal(t, "E02", b.Expanded())
	b.ToggleExpand("E02")
	assert.Empty(t, b.Expanded())
}

func TestSubmitRejectsShortInput(t *testing.T) {
	b := New(testCases(), scorer{})

	b.SetInput("E01", "  abc   ")
	assert.False(t, b.Submit("E01"))

	b.SetInput("E01", " ação ")
	assert.False(t, b.Submit("E01"), "four runes is too short")

	b.SetInput("E01", "ações")
	assert.True(t, b.Submit("E01"))
}

func TestSubmitLifecycle(t *testing.T) {
	s := scorer{}
	b := New(testCases(), s)

	b.SetInput("E01", "Eu sinalizaria a área.")
	require.True(t, b.Submit("E01"))
	assert.False(t, b.Submit("E01"), "in flight")
	assert.True(t, b.Entry("E01").InFlight)

	require.True(t, b.ResolveFeedback("E01", "Error analyzing answer."))
	e := b.Entry("E01")
	assert.False(t, e.InFlight)
	assert.True(t, e.HasResult)
	assert.True(t, e.ShowIdeal)
	assert.Equal(t, "Error analyzing answer.", e.Feedback)
	assert.Equal(t, session.PointsCaseStudy, s["E01"])

	assert.False(t, b.Submit("E01"), "feedback exists")
	b.SetInput("E01", "changed")
	assert.Equal(t, "Eu sinalizaria a área.", b.Entry("E01").Input)
}

func TestResolveWithoutSubmitIgnored(t *testing.T) {
	s := scorer{}
	b := New(testCases(), s)
	assert.False(t, b.ResolveFeedback("E01", "x"))
	assert.Empty(t, s)
}

func TestRevealIdeal(t *testing.T) {
	b := New(testCases(), scorer{})
	b.RevealIdeal("E02")
	b.RevealIdeal("E02")
	assert.True(t, b.Entry("E02").ShowIdeal)
	assert.False(t, b.Entry("E01").ShowIdeal)
}
