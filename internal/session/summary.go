package session

import "time"

// Points awarded per exercise type. Each item pays out once per session.
const (
	PointsChecklist   = 10
	PointsQuiz        = 50
	PointsTrueFalse   = 30
	PointsCaseStudy   = 100
	PointsAssociation = 20
)

// Summary is a point-in-time view of a session, used when the session
// ends and for the event log.
type Summary struct {
	SessionID string
	Identity  string
	Role      Role
	Score     int
	Completed int
	Duration  time.Duration
}

// Summary captures the current session state.
func (c *Controller) Summary() Summary {
	return Summary{
		SessionID: c.id,
		Identity:  c.identity,
		Role:      c.Role(),
		Score:     c.score,
		Completed: len(c.completed),
		Duration:  c.Elapsed(),
	}
}
