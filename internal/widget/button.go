package widget

import (
	"strings"

	"github.com/atomicstack/keyword-editor/internal/focus"
	"github.com/atomicstack/keyword-editor/internal/form"
	"github.com/atomicstack/keyword-editor/internal/parse"
	"github.com/atomicstack/keyword-editor/internal/theme"
)

// Button runs a parse command over the value of its source field.
type Button struct {
	id     string
	label  string
	mode   parse.Mode
	source form.ValueField
	widget *Widget
	parent focus.Node
}

func (b *Button) ID() string              { return b.id }
func (b *Button) Label() string           { return b.label }
func (b *Button) Mode() parse.Mode        { return b.mode }
func (b *Button) Source() form.ValueField { return b.source }
func (b *Button) Widget() *Widget         { return b.widget }

// Request builds the parse job for the current source text. It reports false
// when the source is blank.
func (b *Button) Request() (parse.Request, bool) {
	text := strings.TrimSpace(b.source.Value())
	if text == "" {
		return parse.Request{}, false
	}
	return parse.Request{
		ID:       b.id,
		Mode:     b.mode,
		Text:     text,
		Language: b.widget.deps.Language(),
	}, true
}

func (b *Button) Parent() focus.Node          { return b.parent }
func (b *Button) SetParent(parent focus.Node) { b.parent = parent }
func (b *Button) Children() []focus.Node      { return nil }
func (b *Button) CanFocus() bool              { return true }
func (b *Button) Describe() string            { return "button:" + b.id }

func (b *Button) View(int) string {
	styles := theme.Default()
	style := styles.Button
	if b.widget.deps.Focus.Has(b) {
		style = styles.FocusedButton
	}
	return theme.Render(style, "[ "+b.label+" ]")
}
