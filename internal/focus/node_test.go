package focus

import "testing"

type testNode struct {
	name      string
	parent    *testNode
	children  []*testNode
	focusable bool
}

func (n *testNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *testNode) Children() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *testNode) CanFocus() bool   { return n.focusable }
func (n *testNode) Describe() string { return n.name }

func (n *testNode) add(name string, focusable bool) *testNode {
	child := &testNode{name: name, parent: n, focusable: focusable}
	n.children = append(n.children, child)
	return child
}

// buildTree returns:
//
//	root
//	├── title (focusable)
//	└── group
//	    ├── body (focusable)
//	    └── list
//	        ├── a (focusable)
//	        └── b
func buildTree() (root, title, group, body, list, a, b *testNode) {
	root = &testNode{name: "root"}
	title = root.add("title", true)
	group = root.add("group", false)
	body = group.add("body", true)
	list = group.add("list", false)
	a = list.add("a", true)
	b = list.add("b", false)
	return
}

func TestFocusablesDocumentOrder(t *testing.T) {
	root, title, _, body, _, a, _ := buildTree()
	got := Focusables(root)
	want := []Node{title, body, a}
	if len(got) != len(want) {
		t.Fatalf("expected %d focusables, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("focusable %d: expected %v, got %v", i, describe(want[i]), describe(got[i]))
		}
	}
}

func TestClosestBeforeSibling(t *testing.T) {
	_, _, _, body, list, _, _ := buildTree()
	if got := ClosestBefore(list); got != body {
		t.Fatalf("expected body, got %s", describe(got))
	}
}

func TestClosestBeforeWalksUp(t *testing.T) {
	_, title, _, body, _, _, _ := buildTree()
	if got := ClosestBefore(body); got != title {
		t.Fatalf("expected title, got %s", describe(got))
	}
}

func TestClosestBeforeSkipsOwnDescendants(t *testing.T) {
	_, _, _, body, list, _, _ := buildTree()
	list.focusable = true
	if got := ClosestBefore(list); got != body {
		t.Fatalf("expected body, got %s", describe(got))
	}
}

func TestClosestBeforeNone(t *testing.T) {
	root, title, _, _, _, _, _ := buildTree()
	if got := ClosestBefore(title); got != nil {
		t.Fatalf("expected nil, got %s", describe(got))
	}
	if got := ClosestBefore(root); got != nil {
		t.Fatalf("expected nil for root, got %s", describe(got))
	}
	if got := ClosestBefore(nil); got != nil {
		t.Fatalf("expected nil for nil node")
	}
}

func TestManagerWithin(t *testing.T) {
	_, _, group, _, list, a, _ := buildTree()
	m := NewManager()
	m.Focus(a)
	if !m.Has(a) {
		t.Fatalf("expected a focused")
	}
	if !m.Within(list) || !m.Within(group) {
		t.Fatalf("expected focus within list and group")
	}
	m.Blur()
	if m.Current() != nil || m.Within(list) {
		t.Fatalf("expected no focus after blur")
	}
}

func TestManagerNextPrevWraps(t *testing.T) {
	root, title, _, body, _, a, _ := buildTree()
	m := NewManager()
	if got := m.Next(root); got != title {
		t.Fatalf("expected title first, got %s", describe(got))
	}
	if got := m.Next(root); got != body {
		t.Fatalf("expected body, got %s", describe(got))
	}
	if got := m.Next(root); got != a {
		t.Fatalf("expected a, got %s", describe(got))
	}
	if got := m.Next(root); got != title {
		t.Fatalf("expected wrap to title, got %s", describe(got))
	}
	if got := m.Prev(root); got != a {
		t.Fatalf("expected wrap back to a, got %s", describe(got))
	}

	fresh := NewManager()
	if got := fresh.Prev(root); got != a {
		t.Fatalf("expected prev from nothing to land on last, got %s", describe(got))
	}
}

func TestManagerOnChange(t *testing.T) {
	_, title, _, body, _, _, _ := buildTree()
	m := NewManager()
	calls := 0
	m.OnChange(func(prev, next Node) {
		calls++
	})
	m.Focus(title)
	m.Focus(title)
	m.Focus(body)
	if calls != 2 {
		t.Fatalf("expected 2 change callbacks, got %d", calls)
	}
}

func TestNilManagerIsSafe(t *testing.T) {
	var m *Manager
	m.Focus(nil)
	m.Blur()
	if m.Current() != nil || m.Has(nil) || m.Within(nil) {
		t.Fatalf("expected nil manager to report nothing")
	}
}
