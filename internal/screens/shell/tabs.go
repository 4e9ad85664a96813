package shell

import "github.com/abhisek/safetypro/internal/session"

// Tab is one of the shell's exercise views.
type Tab int

const (
	TabChecklist Tab = iota
	TabQuiz
	TabTrueFalse
	TabCaseStudy
	TabAssociation
	TabDashboard
)

var tabLabels = map[Tab]string{
	TabChecklist:   "Checklist",
	TabQuiz:        "Quiz",
	TabTrueFalse:   "True / False",
	TabCaseStudy:   "Case Studies",
	TabAssociation: "Association",
	TabDashboard:   "Dashboard",
}

var tabKinds = map[Tab]string{
	TabChecklist:   "checklist",
	TabQuiz:        "quiz",
	TabTrueFalse:   "truefalse",
	TabCaseStudy:   "casestudy",
	TabAssociation: "association",
}

func (t Tab) String() string { return tabLabels[t] }

// Kind is the score event kind for awards made on this tab.
func (t Tab) Kind() string { return tabKinds[t] }

// Filtered reports whether the module filter applies to the tab.
func (t Tab) Filtered() bool {
	return t != TabAssociation && t != TabDashboard
}

// VisibleTabs returns the tabs a role may open, in display order.
// The dashboard is instructor-only and comes first for them.
func VisibleTabs(role session.Role) []Tab {
	tabs := []Tab{TabChecklist, TabQuiz, TabTrueFalse, TabCaseStudy, TabAssociation}
	if role == session.RoleInstructor {
		return append([]Tab{TabDashboard}, tabs...)
	}
	return tabs
}
