package session

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func newTestController(clk *fakeClock) *Controller {
	return NewControllerWithClock(clk.Now)
}

func TestStartResetsState(t *testing.T) {
	c := newTestController(newFakeClock())

	c.Start("Ana")
	c.RecordScore("C01", PointsChecklist)
	c.RecordScore("M01", PointsQuiz)

	c.Start("Ana")
	if c.Score() != 0 {
		t.Errorf("Score = %d, want 0", c.Score())
	}
	if c.CompletedCount() != 0 {
		t.Errorf("CompletedCount = %d, want 0", c.CompletedCount())
	}
	if !c.RecordScore("C01", PointsChecklist) {
		t.Error("expected C01 to score again after restart")
	}
}

func TestStartRoles(t *testing.T) {
	c := newTestController(newFakeClock())

	if got := c.Start("Ana"); got != RoleLearner {
		t.Errorf("Start(Ana) = %v, want %v", got, RoleLearner)
	}
	if got := c.Start(InstructorIdentity); got != RoleInstructor {
		t.Errorf("Start(Professor) = %v, want %v", got, RoleInstructor)
	}
	if got := c.Start("professor"); got != RoleLearner {
		t.Errorf("sentinel match must be exact, got %v", got)
	}
}

func TestRecordScoreIsIdempotentPerID(t *testing.T) {
	c := newTestController(newFakeClock())
	c.Start("Ana")

	calls := []struct {
		id     string
		points int
	}{
		{"C01", 10}, {"C01", 10}, {"M01", 50}, {"C01", 99}, {"M01", 50}, {"P01", 20},
	}
	for _, call := range calls {
		c.RecordScore(call.id, call.points)
	}

	if c.Score() != 80 {
		t.Errorf("Score = %d, want 80", c.Score())
	}
	if c.CompletedCount() != 3 {
		t.Errorf("CompletedCount = %d, want 3", c.CompletedCount())
	}
	if !c.Completed("P01") || c.Completed("V01") {
		t.Error("Completed reports wrong membership")
	}
}

func TestRecordScoreWithoutSession(t *testing.T) {
	c := newTestController(newFakeClock())
	if c.RecordScore("C01", 10) {
		t.Error("expected RecordScore to be a no-op before Start")
	}
	if c.Score() != 0 {
		t.Errorf("Score = %d, want 0", c.Score())
	}
}

func TestElapsedText(t *testing.T) {
	clk := newFakeClock()
	c := newTestController(clk)

	if got := c.ElapsedText(); got != "00:00" {
		t.Errorf("ElapsedText before start = %q, want 00:00", got)
	}

	c.Start("Ana")
	clk.Advance(65*time.Second + 900*time.Millisecond)
	if got := c.ElapsedText(); got != "01:05" {
		t.Errorf("ElapsedText = %q, want 01:05", got)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{999 * time.Millisecond, "00:00"},
		{59 * time.Second, "00:59"},
		{60 * time.Second, "01:00"},
		{2*time.Hour + 5*time.Minute + 7*time.Second, "125:07"},
		{-5 * time.Second, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatElapsed(tt.d); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestResetBumpsEpoch(t *testing.T) {
	c := newTestController(newFakeClock())

	c.Start("Ana")
	started := c.Epoch()
	firstID := c.ID()
	if firstID == "" {
		t.Fatal("expected a session id after Start")
	}

	c.Reset()
	if c.Epoch() == started {
		t.Error("expected Reset to change the epoch")
	}
	if c.Active() {
		t.Error("expected no active session after Reset")
	}
	if c.Role() != RoleNone {
		t.Errorf("Role = %v, want RoleNone", c.Role())
	}

	c.Start("Ana")
	if c.ID() == firstID {
		t.Error("expected a new session id on restart")
	}
}

func TestSummary(t *testing.T) {
	clk := newFakeClock()
	c := newTestController(clk)
	c.Start("Ana")
	c.RecordScore("E01", PointsCaseStudy)
	clk.Advance(90 * time.Second)

	s := c.Summary()
	if s.Identity != "Ana" || s.Role != RoleLearner {
		t.Errorf("Summary identity/role = %q/%v", s.Identity, s.Role)
	}
	if s.Score != 100 || s.Completed != 1 {
		t.Errorf("Summary score/completed = %d/%d, want 100/1", s.Score, s.Completed)
	}
	if s.Duration != 90*time.Second {
		t.Errorf("Summary duration = %v, want 90s", s.Duration)
	}
	if s.SessionID != c.ID() {
		t.Errorf("Summary session id = %q, want %q", s.SessionID, c.ID())
	}
}

func TestRoleString(t *testing.T) {
	if RoleLearner.String() != "Cadet" {
		t.Errorf("RoleLearner = %q", RoleLearner.String())
	}
	if RoleInstructor.String() != "Instructor" {
		t.Errorf("RoleInstructor = %q", RoleInstructor.String())
	}
}
