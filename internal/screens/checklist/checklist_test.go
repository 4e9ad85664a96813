package checklist

import (
	"encoding/json"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/safetypro/internal/catalog"
	"github.com/abhisek/safetypro/internal/llm"
	"github.com/abhisek/safetypro/internal/tutor"
)

type scorer map[string]int

func (s scorer) RecordScore(id string, points int) bool {
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = points
	return true
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func items() []catalog.ChecklistItem {
	return []catalog.ChecklistItem{
		{ID: "C01", Module: 15, Topic: "Uso de EPIs"},
		{ID: "C02", Module: 16, Topic: "Empilhamento seguro"},
	}
}

func TestToggleWithKeys(t *testing.T) {
	sc := scorer{}
	s := New(items(), sc, tutor.New(nil, tutor.DefaultConfig(), nil))

	s.Update(keyPress('j'))
	s.Update(keyPress('x'))

	if sc["C02"] != 10 {
		t.Fatalf("expected C02 scored, got %v", sc)
	}
	if !strings.Contains(s.View(100, 30), "50%") {
		t.Error("view should show 50% progress")
	}
}

func TestExplainRoundTrip(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("EPIs evitam lesões.")})
	s := New(items(), scorer{}, tutor.New(mock, tutor.DefaultConfig(), nil))

	_, cmd := s.Update(keyPress('e'))
	if cmd == nil {
		t.Fatal("expected fetch command")
	}
	if !strings.Contains(s.View(100, 30), "Consultando") {
		t.Error("view should show loading state")
	}

	s.Update(cmd())
	if !strings.Contains(s.View(100, 30), "EPIs evitam lesões.") {
		t.Error("view should show explanation")
	}
}

func TestResultForOtherScreenIgnored(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("old")})
	old := New(items(), scorer{}, tutor.New(mock, tutor.DefaultConfig(), nil))
	_, cmd := old.Update(keyPress('e'))

	fresh := New(items(), scorer{}, tutor.New(nil, tutor.DefaultConfig(), nil))
	fresh.Update(keyPress('e'))
	fresh.Update(cmd())

	if strings.Contains(fresh.View(100, 30), "old") {
		t.Error("result from a discarded screen must be dropped")
	}
}

func TestEmptyFilter(t *testing.T) {
	s := New(nil, scorer{}, tutor.New(nil, tutor.DefaultConfig(), nil))
	s.Update(keyPress('x'))
	if !strings.Contains(s.View(80, 20), "Nenhum tópico") {
		t.Error("expected empty message")
	}
}
