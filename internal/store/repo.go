package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token usage for one purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// Session event actions.
const (
	SessionStart = "start"
	SessionEnd   = "end"
)

// SessionEventData records a session starting or ending.
type SessionEventData struct {
	SessionID    string
	Action       string
	Identity     string
	Role         string
	Score        int
	Completed    int
	DurationSecs int
}

// SessionEvent is a stored session event.
type SessionEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// ScoreEventData records points awarded for one item.
type ScoreEventData struct {
	SessionID string
	ItemID    string
	Kind      string
	Points    int
	Total     int
}

// KindTotal sums awarded points for one exercise kind.
type KindTotal struct {
	Kind   string
	Awards int
	Points int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one LLM event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates LLM usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates LLM usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QuerySessions returns ended sessions, newest first.
	QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionEvent, error)

	// AppendScore records an awarded score.
	AppendScore(ctx context.Context, data ScoreEventData) error

	// ScoreTotalsByKind sums awarded points per exercise kind.
	ScoreTotalsByKind(ctx context.Context) ([]KindTotal, error)
}
