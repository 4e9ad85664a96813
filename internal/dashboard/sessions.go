package dashboard

import (
	"time"

	"github.com/abhisek/safetypro/internal/catalog"
	"github.com/abhisek/safetypro/internal/session"
	"github.com/abhisek/safetypro/internal/store"
)

// FromSessions turns recorded session ends into class results. Sessions
// of the instructor are skipped. Dates use the local time zone.
func FromSessions(events []store.SessionEvent) []catalog.StudentResult {
	var out []catalog.StudentResult
	for _, e := range events {
		if e.Role == session.RoleInstructor.String() {
			continue
		}
		out = append(out, catalog.StudentResult{
			Name:           e.Identity,
			Score:          e.Score,
			Elapsed:        session.FormatElapsed(time.Duration(e.DurationSecs) * time.Second),
			CompletedTasks: e.Completed,
			Date:           e.Timestamp.Local().Format(time.DateOnly),
		})
	}
	return out
}
