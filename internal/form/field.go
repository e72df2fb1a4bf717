// Package form is a small form framework: named fields arranged in groups,
// addressed by path, loaded from a YAML schema and persisted as a YAML
// document.
package form

import (
	"errors"
	"fmt"

	"github.com/atomicstack/keyword-editor/internal/focus"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrRequired marks a required field left empty.
var ErrRequired = errors.New("value is required")

// ErrNoValue marks a field that exists but carries no value.
var ErrNoValue = errors.New("field holds no value")

// Element is anything that can sit inside a form.
type Element interface {
	focus.Node
	View(width int) string
}

// Field is a named element.
type Field interface {
	Element
	Name() string
	Label() string
	Validate() error
}

// ValueField is a field holding a string value.
type ValueField interface {
	Field
	Value() string
	SetValue(string)
	OnChange(func(string))
}

// Container holds child elements.
type Container interface {
	Element
	Append(...Element)
	InsertAfter(anchor, el Element) bool
	Remove(Element) bool
	Elements() []Element
}

// Inputter is implemented by elements that consume key messages while
// focused.
type Inputter interface {
	Update(tea.Msg) tea.Cmd
	SetFocused(bool) tea.Cmd
}

// Validator is implemented by elements that can veto submission.
type Validator interface {
	Validate() error
}

// AsValueField reports whether el carries a value.
func AsValueField(el focus.Node) (ValueField, bool) {
	vf, ok := el.(ValueField)
	return vf, ok
}

// AsContainer reports whether el holds children.
func AsContainer(el focus.Node) (Container, bool) {
	c, ok := el.(Container)
	return c, ok
}

// SetParent attaches el below parent when el supports it.
func SetParent(el Element, parent focus.Node) {
	if p, ok := el.(interface{ SetParent(focus.Node) }); ok {
		p.SetParent(parent)
	}
}

type base struct {
	name        string
	label       string
	description string
	required    bool
	parent      focus.Node
}

func (b *base) Name() string                { return b.name }
func (b *base) Label() string               { return b.label }
func (b *base) Description() string         { return b.description }
func (b *base) Required() bool              { return b.required }
func (b *base) Parent() focus.Node          { return b.parent }
func (b *base) SetParent(parent focus.Node) { b.parent = parent }
func (b *base) Describe() string            { return "field:" + b.name }

func (b *base) validateValue(value string) error {
	if b.required && value == "" {
		return fmt.Errorf("%s: %w", b.displayName(), ErrRequired)
	}
	return nil
}

func (b *base) displayName() string {
	if b.label != "" {
		return b.label
	}
	return b.name
}

type listeners []func(string)

func (l listeners) notify(value string) {
	for _, fn := range l {
		fn(value)
	}
}
