package form

import (
	"errors"
	"strings"

	"github.com/atomicstack/keyword-editor/internal/focus"
	"github.com/atomicstack/keyword-editor/internal/theme"
)

// Group is a named container of elements.
type Group struct {
	base
	elements []Element
}

// NewGroup builds an empty group.
func NewGroup(opts Options) *Group {
	return &Group{base: base{name: opts.Name, label: opts.Label, description: opts.Description}}
}

func (g *Group) Append(els ...Element) {
	for _, el := range els {
		SetParent(el, g)
		g.elements = append(g.elements, el)
	}
}

// InsertAfter places el directly after anchor. It reports false when anchor
// is not a direct child.
func (g *Group) InsertAfter(anchor, el Element) bool {
	idx := g.indexOf(anchor)
	if idx < 0 {
		return false
	}
	SetParent(el, g)
	g.elements = append(g.elements, nil)
	copy(g.elements[idx+2:], g.elements[idx+1:])
	g.elements[idx+1] = el
	return true
}

func (g *Group) Remove(el Element) bool {
	idx := g.indexOf(el)
	if idx < 0 {
		return false
	}
	g.elements = append(g.elements[:idx:idx], g.elements[idx+1:]...)
	SetParent(el, nil)
	return true
}

func (g *Group) Elements() []Element {
	dup := make([]Element, len(g.elements))
	copy(dup, g.elements)
	return dup
}

func (g *Group) Children() []focus.Node {
	out := make([]focus.Node, len(g.elements))
	for i, el := range g.elements {
		out[i] = el
	}
	return out
}

func (g *Group) CanFocus() bool { return false }

// Validate validates every child and joins the failures.
func (g *Group) Validate() error {
	var errs []error
	for _, el := range g.elements {
		if v, ok := el.(Validator); ok {
			if err := v.Validate(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (g *Group) View(width int) string {
	lines := []string{}
	if g.label != "" {
		lines = append(lines, theme.Render(theme.Default().Title, g.label))
	}
	for _, el := range g.elements {
		if view := el.View(width); view != "" {
			lines = append(lines, view, "")
		}
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func (g *Group) indexOf(el Element) int {
	for i, candidate := range g.elements {
		if candidate == el {
			return i
		}
	}
	return -1
}
