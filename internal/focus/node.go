// Package focus models keyboard focus over a tree of nodes: which node holds
// input focus, which nodes take part in sequential (tab) navigation, and how
// focus is handed to a neighbour when a node disappears.
package focus

// Node is an element of the focus tree. Parent returns nil for the root.
// CanFocus reports whether the node is reachable by sequential navigation.
type Node interface {
	Parent() Node
	Children() []Node
	CanFocus() bool
}

// Walk visits root and its descendants in document (pre-order) order until
// visit returns false. It reports whether the walk ran to completion.
func Walk(root Node, visit func(Node) bool) bool {
	if root == nil {
		return true
	}
	if !visit(root) {
		return false
	}
	for _, child := range root.Children() {
		if !Walk(child, visit) {
			return false
		}
	}
	return true
}

// Focusables returns the focusable descendants of root in document order.
// Root itself is not included.
func Focusables(root Node) []Node {
	if root == nil {
		return nil
	}
	var out []Node
	for _, child := range root.Children() {
		Walk(child, func(n Node) bool {
			if n.CanFocus() {
				out = append(out, n)
			}
			return true
		})
	}
	return out
}

// ClosestBefore finds the focusable node that precedes n in document order
// within n's parent, walking up the tree until one is found. Descendants of
// n are never returned. It returns nil when no such node exists.
func ClosestBefore(n Node) Node {
	if n == nil {
		return nil
	}
	parent := n.Parent()
	if parent == nil {
		return nil
	}
	var last Node
	for _, child := range parent.Children() {
		done := !Walk(child, func(candidate Node) bool {
			if candidate == n {
				return false
			}
			if candidate.CanFocus() {
				last = candidate
			}
			return true
		})
		if done {
			break
		}
	}
	if last != nil {
		return last
	}
	return ClosestBefore(parent)
}

// IsAncestor reports whether ancestor is n or one of n's ancestors.
func IsAncestor(ancestor, n Node) bool {
	if ancestor == nil {
		return false
	}
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur == ancestor {
			return true
		}
	}
	return false
}
