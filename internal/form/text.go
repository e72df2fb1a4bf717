package form

import (
	"strings"

	"github.com/atomicstack/keyword-editor/internal/focus"
	"github.com/atomicstack/keyword-editor/internal/theme"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Options describe a field.
type Options struct {
	Name        string
	Label       string
	Description string
	Placeholder string
	Required    bool
}

// Text is a single line input.
type Text struct {
	base
	input     textinput.Model
	listeners listeners
}

// NewText builds a single line field.
func NewText(opts Options) *Text {
	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	ti.Prompt = "> "
	return &Text{
		base:  base{name: opts.Name, label: opts.Label, description: opts.Description, required: opts.Required},
		input: ti,
	}
}

func (t *Text) Value() string { return t.input.Value() }

func (t *Text) SetValue(value string) {
	if t.input.Value() == value {
		return
	}
	t.input.SetValue(value)
	t.input.CursorEnd()
	t.listeners.notify(value)
}

func (t *Text) OnChange(fn func(string)) { t.listeners = append(t.listeners, fn) }
func (t *Text) Validate() error          { return t.validateValue(strings.TrimSpace(t.Value())) }
func (t *Text) Children() []focus.Node   { return nil }
func (t *Text) CanFocus() bool           { return true }
func (t *Text) Focused() bool            { return t.input.Focused() }

func (t *Text) SetFocused(focused bool) tea.Cmd {
	if focused {
		return t.input.Focus()
	}
	t.input.Blur()
	return nil
}

func (t *Text) Update(msg tea.Msg) tea.Cmd {
	before := t.input.Value()
	updated, cmd := t.input.Update(msg)
	t.input = updated
	if after := t.input.Value(); after != before {
		t.listeners.notify(after)
	}
	return cmd
}

func (t *Text) View(width int) string {
	if width > 4 {
		t.input.Width = width - 4
	}
	return renderField(t.label, t.description, t.input.View(), t.Focused())
}

// TextArea is a multi-line input.
type TextArea struct {
	base
	input     textarea.Model
	listeners listeners
}

// NewTextArea builds a multi-line field.
func NewTextArea(opts Options) *TextArea {
	ta := textarea.New()
	ta.Placeholder = opts.Placeholder
	ta.ShowLineNumbers = false
	ta.SetHeight(4)
	ta.Blur()
	return &TextArea{
		base:  base{name: opts.Name, label: opts.Label, description: opts.Description, required: opts.Required},
		input: ta,
	}
}

func (t *TextArea) Value() string { return t.input.Value() }

func (t *TextArea) SetValue(value string) {
	if t.input.Value() == value {
		return
	}
	t.input.SetValue(value)
	t.listeners.notify(value)
}

func (t *TextArea) OnChange(fn func(string)) { t.listeners = append(t.listeners, fn) }
func (t *TextArea) Validate() error          { return t.validateValue(strings.TrimSpace(t.Value())) }
func (t *TextArea) Children() []focus.Node   { return nil }
func (t *TextArea) CanFocus() bool           { return true }
func (t *TextArea) Focused() bool            { return t.input.Focused() }

func (t *TextArea) SetFocused(focused bool) tea.Cmd {
	if focused {
		return t.input.Focus()
	}
	t.input.Blur()
	return nil
}

func (t *TextArea) Update(msg tea.Msg) tea.Cmd {
	before := t.input.Value()
	updated, cmd := t.input.Update(msg)
	t.input = updated
	if after := t.input.Value(); after != before {
		t.listeners.notify(after)
	}
	return cmd
}

func (t *TextArea) View(width int) string {
	if width > 2 {
		t.input.SetWidth(width - 2)
	}
	return renderField(t.label, t.description, t.input.View(), t.Focused())
}

// Hidden stores a value that is persisted but never shown or focused.
type Hidden struct {
	base
	value     string
	listeners listeners
}

// NewHidden builds a hidden field.
func NewHidden(opts Options) *Hidden {
	return &Hidden{base: base{name: opts.Name, label: opts.Label, required: opts.Required}}
}

func (h *Hidden) Value() string { return h.value }

func (h *Hidden) SetValue(value string) {
	if h.value == value {
		return
	}
	h.value = value
	h.listeners.notify(value)
}

func (h *Hidden) OnChange(fn func(string)) { h.listeners = append(h.listeners, fn) }
func (h *Hidden) Validate() error          { return h.validateValue(h.value) }
func (h *Hidden) Children() []focus.Node   { return nil }
func (h *Hidden) CanFocus() bool           { return false }
func (h *Hidden) View(int) string          { return "" }

func renderField(label, description, input string, focused bool) string {
	styles := theme.Default()
	labelStyle := styles.Label
	if focused {
		labelStyle = styles.FocusedLabel
	}
	lines := []string{}
	if label != "" {
		lines = append(lines, theme.Render(labelStyle, label))
	}
	lines = append(lines, input)
	if description != "" {
		lines = append(lines, theme.Render(styles.Description, description))
	}
	return strings.Join(lines, "\n")
}
