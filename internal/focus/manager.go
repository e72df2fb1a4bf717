package focus

import "github.com/atomicstack/keyword-editor/internal/logging/events"

// Manager tracks the node holding input focus. The zero value is ready to
// use and a nil *Manager ignores every call.
type Manager struct {
	current  Node
	onChange func(prev, next Node)
}

// NewManager returns an empty focus manager.
func NewManager() *Manager {
	return &Manager{}
}

// OnChange registers a callback fired whenever focus moves to a different node.
func (m *Manager) OnChange(fn func(prev, next Node)) {
	if m == nil {
		return
	}
	m.onChange = fn
}

// Focus gives input focus to n.
func (m *Manager) Focus(n Node) {
	if m == nil {
		return
	}
	prev := m.current
	m.current = n
	if prev == n {
		return
	}
	events.Focus.Move(describe(prev), describe(n))
	if m.onChange != nil {
		m.onChange(prev, n)
	}
}

// Blur drops input focus entirely.
func (m *Manager) Blur() {
	m.Focus(nil)
}

// Current returns the focused node, or nil.
func (m *Manager) Current() Node {
	if m == nil {
		return nil
	}
	return m.current
}

// Has reports whether n holds input focus.
func (m *Manager) Has(n Node) bool {
	if m == nil || n == nil {
		return false
	}
	return m.current == n
}

// Within reports whether focus is on n or one of its descendants.
func (m *Manager) Within(n Node) bool {
	if m == nil || m.current == nil {
		return false
	}
	return IsAncestor(n, m.current)
}

// Next moves focus to the focusable node following the current one inside
// root, wrapping around at the end. It returns the newly focused node.
func (m *Manager) Next(root Node) Node {
	return m.step(root, 1)
}

// Prev moves focus to the focusable node preceding the current one inside
// root, wrapping around at the start.
func (m *Manager) Prev(root Node) Node {
	return m.step(root, -1)
}

func (m *Manager) step(root Node, dir int) Node {
	if m == nil || root == nil {
		return nil
	}
	var all []Node
	for _, child := range root.Children() {
		Walk(child, func(n Node) bool {
			all = append(all, n)
			return true
		})
	}
	if len(all) == 0 {
		return m.current
	}
	pos := -1
	for i, n := range all {
		if n == m.current {
			pos = i
			break
		}
	}
	if pos < 0 && dir < 0 {
		pos = len(all)
	}
	for i := 1; i <= len(all); i++ {
		idx := ((pos+dir*i)%len(all) + len(all)) % len(all)
		if all[idx].CanFocus() {
			m.Focus(all[idx])
			return all[idx]
		}
	}
	return m.current
}

// Describer lets a node supply a readable name for trace output.
type Describer interface {
	Describe() string
}

func describe(n Node) string {
	if n == nil {
		return ""
	}
	if d, ok := n.(Describer); ok {
		return d.Describe()
	}
	return "node"
}
