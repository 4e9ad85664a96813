package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InstructorIdentity is the reserved name that unlocks the instructor role.
const InstructorIdentity = "Professor"

// Role is the kind of user a session belongs to.
type Role int

const (
	RoleNone Role = iota
	RoleLearner
	RoleInstructor
)

func (r Role) String() string {
	switch r {
	case RoleLearner:
		return "Cadet"
	case RoleInstructor:
		return "Instructor"
	default:
		return ""
	}
}

// RoleFor returns the role a session started as identity would get.
func RoleFor(identity string) Role {
	if identity == "" {
		return RoleNone
	}
	if identity == InstructorIdentity {
		return RoleInstructor
	}
	return RoleLearner
}

// Scorer is the narrow handle exercise widgets use to award points.
// RecordScore reports whether the points were applied.
type Scorer interface {
	RecordScore(itemID string, points int) bool
}

// Controller owns the identity, cumulative score and completed-item set
// of the running session. It is driven from the UI loop and is not safe
// for concurrent use.
type Controller struct {
	id        string
	identity  string
	score     int
	startedAt time.Time
	completed map[string]struct{}
	epoch     int
	now       func() time.Time
}

var _ Scorer = (*Controller)(nil)

// NewController returns a controller with no active session.
func NewController() *Controller {
	return NewControllerWithClock(time.Now)
}

// NewControllerWithClock is like NewController with an injected clock.
func NewControllerWithClock(now func() time.Time) *Controller {
	return &Controller{
		completed: make(map[string]struct{}),
		now:       now,
	}
}

// Start begins a fresh session for identity. Score and completed items
// are cleared and the clock restarts.
func (c *Controller) Start(identity string) Role {
	c.id = uuid.New().String()
	c.identity = identity
	c.score = 0
	c.completed = make(map[string]struct{})
	c.startedAt = c.now()
	c.epoch++
	return RoleFor(identity)
}

// Reset ends the session. Timer ticks scheduled before the reset carry
// a stale epoch afterwards.
func (c *Controller) Reset() {
	c.id = ""
	c.identity = ""
	c.score = 0
	c.completed = make(map[string]struct{})
	c.startedAt = time.Time{}
	c.epoch++
}

// RecordScore adds points for itemID the first time it is scored.
// Repeated calls for the same ID are no-ops, as are calls without an
// active session.
func (c *Controller) RecordScore(itemID string, points int) bool {
	if !c.Active() {
		return false
	}
	if _, done := c.completed[itemID]; done {
		return false
	}
	c.completed[itemID] = struct{}{}
	c.score += points
	return true
}

// Active reports whether a session has been started.
func (c *Controller) Active() bool { return c.identity != "" }

func (c *Controller) ID() string           { return c.id }
func (c *Controller) Identity() string     { return c.identity }
func (c *Controller) Role() Role           { return RoleFor(c.identity) }
func (c *Controller) Score() int           { return c.score }
func (c *Controller) StartedAt() time.Time { return c.startedAt }
func (c *Controller) Epoch() int           { return c.epoch }
func (c *Controller) CompletedCount() int  { return len(c.completed) }

// Completed reports whether itemID has already paid out.
func (c *Controller) Completed(itemID string) bool {
	_, ok := c.completed[itemID]
	return ok
}

// Elapsed returns the time since Start, or zero without a session.
func (c *Controller) Elapsed() time.Duration {
	if !c.Active() {
		return 0
	}
	d := c.now().Sub(c.startedAt)
	if d < 0 {
		return 0
	}
	return d
}

// ElapsedText is Elapsed formatted by FormatElapsed.
func (c *Controller) ElapsedText() string {
	return FormatElapsed(c.Elapsed())
}

// FormatElapsed renders whole seconds as MM:SS. Minutes do not roll over
// into hours, so 2h5m7s is "125:07".
func FormatElapsed(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
