package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"regexp"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var embedded []byte

// Catalog holds the read-only training content and the mock class results.
type Catalog struct {
	Checklist   []ChecklistItem     `yaml:"checklist" validate:"dive"`
	Quiz        []QuizQuestion      `yaml:"quiz" validate:"dive"`
	TrueFalse   []TrueFalseQuestion `yaml:"true_false" validate:"dive"`
	CaseStudies []CaseStudy         `yaml:"case_studies" validate:"dive"`
	Association []AssociationPair   `yaml:"association" validate:"dive"`
	Results     []StudentResult     `yaml:"results" validate:"dive"`
}

var elapsedPattern = regexp.MustCompile(`^\d{2,}:[0-5]\d$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("module", func(fl validator.FieldLevel) bool {
		return IsKnownModule(int(fl.Field().Int()))
	})
	_ = v.RegisterValidation("elapsed", func(fl validator.FieldLevel) bool {
		return elapsedPattern.MatchString(fl.Field().String())
	})
	return v
}

// Load parses the catalog embedded in the binary.
func Load() (*Catalog, error) {
	return Parse(embedded)
}

// MustLoad is like Load but panics on error.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(fmt.Sprintf("safetypro: load embedded catalog: %v", err))
	}
	return c
}

// Parse decodes and validates a catalog document. Unknown fields are
// rejected, every item ID must be unique across all collections, and
// quiz options must be exactly A through D.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	if err := c.checkUniqueIDs(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) checkUniqueIDs() error {
	seen := make(map[string]string)
	add := func(kind, id string) error {
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("duplicate item id %q (%s and %s)", id, prev, kind)
		}
		seen[id] = kind
		return nil
	}

	for _, it := range c.Checklist {
		if err := add("checklist", it.ID); err != nil {
			return err
		}
	}
	for _, it := range c.Quiz {
		if err := add("quiz", it.ID); err != nil {
			return err
		}
	}
	for _, it := range c.TrueFalse {
		if err := add("true_false", it.ID); err != nil {
			return err
		}
	}
	for _, it := range c.CaseStudies {
		if err := add("case_studies", it.ID); err != nil {
			return err
		}
	}
	for _, it := range c.Association {
		if err := add("association", it.ID); err != nil {
			return err
		}
	}
	return nil
}

// Modules returns the known aulas in ascending order.
func Modules() []Module {
	return slices.Clone(modules)
}

// IsKnownModule reports whether n is one of the known aulas.
func IsKnownModule(n int) bool {
	for _, m := range modules {
		if m.Number == n {
			return true
		}
	}
	return false
}

// ModuleLabel returns the label for aula n, or "" if unknown.
func ModuleLabel(n int) string {
	for _, m := range modules {
		if m.Number == n {
			return m.Label
		}
	}
	return ""
}
