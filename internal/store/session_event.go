package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

const (
	sessionTable = "session_events"
	scoreTable   = "score_events"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	err := r.appendEvent(ctx, sessionTable,
		[]string{"session_id", "action", "identity", "role", "score", "completed", "duration_secs"},
		[]any{data.SessionID, data.Action, data.Identity, data.Role, data.Score, data.Completed, data.DurationSecs},
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionEvent, error) {
	sel := builder().Select(
		"id", "sequence", "timestamp", "session_id", "action",
		"identity", "role", "score", "completed", "duration_secs",
	).
		From(entsql.Table(sessionTable)).
		Where(entsql.EQ("action", SessionEnd))
	query, args := applyOpts(sel, opts).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionEvent
	for rows.Next() {
		var (
			e  SessionEvent
			ts int64
		)
		err := rows.Scan(&e.ID, &e.Sequence, &ts, &e.SessionID, &e.Action,
			&e.Identity, &e.Role, &e.Score, &e.Completed, &e.DurationSecs)
		if err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		e.Timestamp = time.UnixMilli(ts)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}

func (r *eventRepo) AppendScore(ctx context.Context, data ScoreEventData) error {
	err := r.appendEvent(ctx, scoreTable,
		[]string{"session_id", "item_id", "kind", "points", "total"},
		[]any{data.SessionID, data.ItemID, data.Kind, data.Points, data.Total},
	)
	if err != nil {
		return fmt.Errorf("save score event: %w", err)
	}
	return nil
}

func (r *eventRepo) ScoreTotalsByKind(ctx context.Context) ([]KindTotal, error) {
	query, args := builder().Select(
		"kind",
		entsql.As(entsql.Count("*"), "awards"),
		entsql.As(entsql.Sum("points"), "points"),
	).
		From(entsql.Table(scoreTable)).
		GroupBy("kind").
		OrderBy("kind").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query score totals: %w", err)
	}
	defer rows.Close()

	var out []KindTotal
	for rows.Next() {
		var kt KindTotal
		if err := rows.Scan(&kt.Kind, &kt.Awards, &kt.Points); err != nil {
			return nil, fmt.Errorf("scan score total: %w", err)
		}
		out = append(out, kt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate score totals: %w", err)
	}
	return out, nil
}
