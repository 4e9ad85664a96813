package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/safetypro/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with SafetyPro styling.
type TextInput struct {
	Model    textinput.Model
	MaxChars int
	locked   bool
}

// NewTextInput creates a focused text input. maxChars of 0 means no limit.
func NewTextInput(placeholder string, maxChars int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxChars > 0 {
		ti.CharLimit = maxChars
	}

	return TextInput{
		Model:    ti,
		MaxChars: maxChars,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. A locked input ignores them.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.locked {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.locked {
		view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// TrimmedValue returns the value without surrounding whitespace.
func (t TextInput) TrimmedValue() string {
	return strings.TrimSpace(t.Model.Value())
}

// SetValue replaces the content.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Focus gives the input focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Lock freezes the input after it has been submitted.
func (t *TextInput) Lock() {
	t.locked = true
	t.Model.Blur()
}
