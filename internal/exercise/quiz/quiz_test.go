package quiz

import (
	"testing"

	"github.com/abhisek/safetypro/internal/catalog"
	"github.com/abhisek/safetypro/internal/session"
)

type countingScorer map[string]int

func (c countingScorer) RecordScore(id string, points int) bool {
	if _, ok := c[id]; ok {
		return false
	}
	c[id] = points
	return true
}

func testQuestions() []catalog.QuizQuestion {
	opts := map[catalog.OptionKey]string{"A": "a", "B": "b", "C": "c", "D": "d"}
	return []catalog.QuizQuestion{
		{ID: "M01", Module: 15, Question: "Q1", Options: opts, Correct: catalog.OptionC},
		{ID: "M02", Module: 15, Question: "Q2", Options: opts, Correct: catalog.OptionB},
	}
}

func TestRevealCorrect(t *testing.T) {
	s := countingScorer{}
	q := New(testQuestions(), s)

	if q.Reveal() {
		t.Fatal("reveal without selection should be a no-op")
	}
	q.Select(catalog.OptionA)
	q.Select(catalog.OptionC)
	if q.Selection() != catalog.OptionC {
		t.Fatalf("selection = %q", q.Selection())
	}
	if !q.Reveal() {
		t.Fatal("reveal should succeed")
	}
	if s["M01"] != session.PointsQuiz {
		t.Fatalf("score = %d", s["M01"])
	}
	if !q.AnsweredCorrectly() {
		t.Fatal("expected correct")
	}

	q.Select(catalog.OptionA)
	if q.Selection() != catalog.OptionC {
		t.Fatal("selection must be frozen after reveal")
	}
}

func TestRevealWrong(t *testing.T) {
	s := countingScorer{}
	q := New(testQuestions(), s)
	q.Select(catalog.OptionA)
	q.Reveal()

	if len(s) != 0 {
		t.Fatalf("wrong answer scored: %v", s)
	}
	tests := map[catalog.OptionKey]OptionState{
		catalog.OptionA: WrongPick,
		catalog.OptionB: Neutral,
		catalog.OptionC: Correct,
		catalog.OptionD: Neutral,
	}
	for key, want := range tests {
		if got := q.OptionState(key); got != want {
			t.Errorf("OptionState(%s) = %d, want %d", key, got, want)
		}
	}
}

func TestNextWraps(t *testing.T) {
	q := New(testQuestions(), countingScorer{})
	if q.Position() != "Question 1 of 2" {
		t.Fatalf("Position = %q", q.Position())
	}
	q.Select(catalog.OptionC)
	q.Reveal()
	q.RequestDeepDive()

	q.Next()
	if q.Position() != "Question 2 of 2" {
		t.Fatalf("Position = %q", q.Position())
	}
	if q.Selection() != "" || q.Revealed() || q.Insight() != nil {
		t.Fatal("Next should clear per-question state")
	}

	q.Next()
	if q.Index() != 0 {
		t.Fatalf("Index = %d, want wrap to 0", q.Index())
	}
}

func TestDeepDive(t *testing.T) {
	q := New(testQuestions(), countingScorer{})
	if q.RequestDeepDive() {
		t.Fatal("deep dive before reveal should be refused")
	}
	q.Select(catalog.OptionB)
	q.Reveal()

	inst := q.Instance()
	if !q.RequestDeepDive() {
		t.Fatal("first request should fetch")
	}
	if q.RequestDeepDive() {
		t.Fatal("second request should not refetch")
	}
	if !q.ResolveDeepDive(inst, "Porque sim.") {
		t.Fatal("resolve should apply")
	}
	if q.Insight().Text != "Porque sim." || q.Insight().Loading {
		t.Fatalf("insight = %+v", q.Insight())
	}
}

func TestDeepDiveStaleDropped(t *testing.T) {
	q := New(testQuestions()[:1], countingScorer{})
	q.Select(catalog.OptionC)
	q.Reveal()
	inst := q.Instance()
	q.RequestDeepDive()

	// With one question Next lands on the same index; the visit differs.
	q.Next()
	if q.ResolveDeepDive(inst, "late") {
		t.Fatal("result from a previous visit should be dropped")
	}
}

func TestEmptyQuiz(t *testing.T) {
	q := New(nil, countingScorer{})
	q.Select(catalog.OptionA)
	q.Next()
	if q.Reveal() || q.Position() != "" {
		t.Fatal("empty quiz should be inert")
	}
	if _, ok := q.Current(); ok {
		t.Fatal("no current question expected")
	}
}
