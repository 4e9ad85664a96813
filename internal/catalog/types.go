package catalog

// Module is a content grouping ("aula") used to filter exercises.
type Module struct {
	Number int
	Label  string
}

// modules is the fixed set of aulas the training content is split into.
var modules = []Module{
	{Number: 15, Label: "Basics"},
	{Number: 16, Label: "Risks"},
}

// OptionKey identifies one of the four fixed quiz answers.
type OptionKey string

const (
	OptionA OptionKey = "A"
	OptionB OptionKey = "B"
	OptionC OptionKey = "C"
	OptionD OptionKey = "D"
)

// OptionKeys lists the quiz answer keys in display order.
var OptionKeys = []OptionKey{OptionA, OptionB, OptionC, OptionD}

// Moduled is implemented by every exercise item that belongs to an aula.
type Moduled interface {
	ModuleID() int
}

// ChecklistItem is a study topic the learner ticks off.
type ChecklistItem struct {
	ID     string `yaml:"id" validate:"required"`
	Module int    `yaml:"module" validate:"module"`
	Topic  string `yaml:"topic" validate:"required"`
}

func (c ChecklistItem) ModuleID() int { return c.Module }

// QuizQuestion is a four-option multiple-choice question.
type QuizQuestion struct {
	ID       string               `yaml:"id" validate:"required"`
	Module   int                  `yaml:"module" validate:"module"`
	Question string               `yaml:"question" validate:"required"`
	Options  map[OptionKey]string `yaml:"options" validate:"len=4,dive,keys,oneof=A B C D,endkeys,required"`
	Correct  OptionKey            `yaml:"correct" validate:"required,oneof=A B C D"`
}

func (q QuizQuestion) ModuleID() int { return q.Module }

// CorrectText returns the text of the correct option.
func (q QuizQuestion) CorrectText() string {
	return q.Options[q.Correct]
}

// TrueFalseQuestion is a statement the learner judges true or false.
// Justification may be empty.
type TrueFalseQuestion struct {
	ID            string `yaml:"id" validate:"required"`
	Module        int    `yaml:"module" validate:"module"`
	Statement     string `yaml:"statement" validate:"required"`
	IsTrue        bool   `yaml:"is_true"`
	Justification string `yaml:"justification"`
}

func (t TrueFalseQuestion) ModuleID() int { return t.Module }

// CaseStudy is a workplace scenario answered in free text.
type CaseStudy struct {
	ID          string `yaml:"id" validate:"required"`
	Module      int    `yaml:"module" validate:"module"`
	Scenario    string `yaml:"scenario" validate:"required"`
	IdealAnswer string `yaml:"ideal_answer" validate:"required"`
}

func (c CaseStudy) ModuleID() int { return c.Module }

// AssociationPair is a term and its definition. Both sides are matchable
// tokens that share the pair's ID. Pairs are not grouped by aula.
type AssociationPair struct {
	ID         string `yaml:"id" validate:"required"`
	Term       string `yaml:"term" validate:"required"`
	Definition string `yaml:"definition" validate:"required"`
}

// StudentResult is one row of the instructor's class results.
type StudentResult struct {
	Name           string `yaml:"name" validate:"required"`
	Score          int    `yaml:"score" validate:"gte=0"`
	Elapsed        string `yaml:"elapsed" validate:"elapsed"`
	CompletedTasks int    `yaml:"completed_tasks" validate:"gte=0"`
	Date           string `yaml:"date" validate:"required,datetime=2006-01-02"`
}
