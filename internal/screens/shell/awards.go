package shell

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/safetypro/internal/logger"
	"github.com/abhisek/safetypro/internal/session"
	"github.com/abhisek/safetypro/internal/store"
)

// tabScorer forwards awards to the controller and queues the ones that
// were applied so the shell can record them. It is bound to the session
// it was built in; awards arriving after sign-out are refused.
type tabScorer struct {
	shell     *ShellScreen
	kind      string
	sessionID string
}

var _ session.Scorer = (*tabScorer)(nil)

func (t *tabScorer) RecordScore(itemID string, points int) bool {
	ctrl := t.shell.deps.Controller
	if !ctrl.Active() || ctrl.ID() != t.sessionID {
		return false
	}
	if !ctrl.RecordScore(itemID, points) {
		return false
	}
	t.shell.pending = append(t.shell.pending, store.ScoreEventData{
		SessionID: ctrl.ID(),
		ItemID:    itemID,
		Kind:      t.kind,
		Points:    points,
		Total:     ctrl.Score(),
	})
	return true
}

// drainAwards logs queued awards and returns a command that stores them.
func (s *ShellScreen) drainAwards() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	awards := s.pending
	s.pending = nil

	for _, a := range awards {
		s.deps.Log.Info("score awarded",
			"session_id", a.SessionID, "item", a.ItemID, "kind", a.Kind,
			"points", a.Points, "total", a.Total)
	}

	repo, log := s.deps.Events, s.deps.Log
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		for _, a := range awards {
			if err := repo.AppendScore(context.Background(), a); err != nil {
				log.Error("record score event", "item", a.ItemID, "error", err)
			}
		}
		return nil
	}
}

// persistSession returns a command that stores a session event.
func persistSession(repo store.EventRepo, log *logger.Logger, data store.SessionEventData) tea.Cmd {
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		if err := repo.AppendSessionEvent(context.Background(), data); err != nil {
			log.Error("record session event", "action", data.Action, "error", err)
		}
		return nil
	}
}

func sessionEvent(action string, sum session.Summary) store.SessionEventData {
	return store.SessionEventData{
		SessionID:    sum.SessionID,
		Action:       action,
		Identity:     sum.Identity,
		Role:         sum.Role.String(),
		Score:        sum.Score,
		Completed:    sum.Completed,
		DurationSecs: int(sum.Duration.Seconds()),
	}
}
