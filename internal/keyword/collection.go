package keyword

import (
	"sort"
	"strings"

	"github.com/atomicstack/keyword-editor/internal/focus"
	"github.com/atomicstack/keyword-editor/internal/logging/events"
	"github.com/atomicstack/keyword-editor/internal/theme"
)

// Separator joins labels in the serialized form. Labels containing it are
// not escaped and will split apart when the string is parsed again.
const Separator = ","

// Params configures a Collection.
type Params struct {
	// RemoveDescription is appended to every label to form the accessible
	// description of its removal control.
	RemoveDescription string
	// EmptyText is rendered while the collection holds no entries.
	EmptyText string
	Focus     *focus.Manager
	Parent    focus.Node
	// Keys overrides DefaultKeyMap when set.
	Keys *KeyMap
}

// Callbacks lets the host observe the collection.
type Callbacks struct {
	OnUpdated func()
}

// Collection owns the ordered, de-duplicated set of keyword items.
type Collection struct {
	params     Params
	callbacks  Callbacks
	keys       KeyMap
	items      []*ListItem
	focusIndex int
	expanded   bool
	tabbable   bool
}

// New builds an empty collection.
func New(params Params, callbacks Callbacks) *Collection {
	if callbacks.OnUpdated == nil {
		callbacks.OnUpdated = func() {}
	}
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}
	return &Collection{
		params:    params,
		callbacks: callbacks,
		keys:      keys,
	}
}

// AddKeywords inserts every candidate that is non-empty and not yet present,
// then re-sorts the whole list. OnUpdated fires once per call, even when the
// batch added nothing.
func (c *Collection) AddKeywords(candidates []string) {
	added := 0
	for _, candidate := range candidates {
		entry, ok := NewEntry(candidate, c.params.RemoveDescription)
		if !ok || c.indexOf(entry.Label()) >= 0 {
			continue
		}
		c.items = append(c.items, newListItem(entry, c, c.params.Focus, c.handleActivated))
		added++
	}
	c.sort()
	if len(c.items) > 0 {
		c.tabbable = true
	}
	c.syncTabbable()
	events.Keyword.Add(len(candidates), added, len(c.items))
	c.callbacks.OnUpdated()
}

// sort orders items by label. A non-zero focus index follows its item to the
// new position; index 0 stays at 0.
func (c *Collection) sort() {
	if len(c.items) == 0 {
		return
	}
	var focused *ListItem
	if c.focusIndex > 0 && c.focusIndex < len(c.items) {
		focused = c.items[c.focusIndex]
	}
	sort.SliceStable(c.items, func(i, j int) bool {
		return c.items[i].Label() < c.items[j].Label()
	})
	if focused != nil {
		c.focusIndex = c.indexOfItem(focused)
	}
}

// Remove deletes the entry labelled label. It reports whether one existed.
func (c *Collection) Remove(label string) bool {
	position := c.indexOf(label)
	if position < 0 {
		return false
	}
	c.removeAt(position, SourceProgram)
	return true
}

// ActivateAt activates the item at position as if it had been clicked or
// pressed. Out of range positions are ignored.
func (c *Collection) ActivateAt(position int, source Source) bool {
	if position < 0 || position >= len(c.items) {
		return false
	}
	c.items[position].Activate(source)
	return true
}

func (c *Collection) handleActivated(item *ListItem, source Source) {
	position := c.indexOfItem(item)
	if position < 0 {
		return
	}
	c.removeAt(position, source)
}

func (c *Collection) removeAt(position int, source Source) {
	item := c.items[position]
	hadFocus := c.params.Focus.Within(c)

	c.items = append(c.items[:position:position], c.items[position+1:]...)
	if position <= c.focusIndex {
		c.focusIndex--
	}
	if c.focusIndex < 0 {
		c.focusIndex = 0
	}
	if len(c.items) == 0 {
		c.focusIndex = 0
		c.expanded = false
		c.tabbable = false
	}
	c.syncTabbable()
	events.Keyword.Remove(item.Label(), position, source.String())
	c.callbacks.OnUpdated()

	switch {
	case len(c.items) == 0 && hadFocus:
		c.Focus(-1)
	case source == SourceKeyboard:
		c.Focus(position)
	}
	if c.params.Focus.Has(item) {
		if len(c.items) > 0 {
			c.params.Focus.Focus(c)
		} else {
			c.params.Focus.Blur()
		}
	}
}

// Keywords returns the labels in their current (sorted) order.
func (c *Collection) Keywords() []string {
	out := make([]string, len(c.items))
	for i, item := range c.items {
		out[i] = item.Label()
	}
	return out
}

// String joins the labels with Separator.
func (c *Collection) String() string {
	return strings.Join(c.Keywords(), Separator)
}

// SplitPersisted splits a stored value on Separator. An empty value yields no
// labels; blank pieces are left for AddKeywords to skip.
func SplitPersisted(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, Separator)
}

// Focus moves roving focus to min(position, Len()-1). With no entries left,
// focus is handed to the closest focusable node before the collection; when
// none exists nothing happens.
func (c *Collection) Focus(position int) {
	if position > len(c.items)-1 {
		position = len(c.items) - 1
	}
	if position < 0 && len(c.items) > 0 {
		position = 0
	}
	if position < 0 {
		target := focus.ClosestBefore(c)
		if target == nil {
			events.Keyword.Delegate("")
			return
		}
		events.Keyword.Delegate(describeNode(target))
		c.params.Focus.Focus(target)
		return
	}
	c.focusIndex = position
	c.expanded = true
	c.syncTabbable()
	c.items[position].Focus()
	events.Keyword.Focus(position)
}

// SetExpanded switches between the collapsed container and item navigation.
// An empty collection cannot be expanded.
func (c *Collection) SetExpanded(expanded bool) {
	if expanded && len(c.items) == 0 {
		return
	}
	if c.expanded == expanded {
		return
	}
	itemFocused := c.params.Focus.Within(c) && !c.params.Focus.Has(c)
	c.expanded = expanded
	c.syncTabbable()
	events.Keyword.Expanded(expanded)
	switch {
	case expanded && c.params.Focus.Has(c):
		c.Focus(c.focusIndex)
	case !expanded && itemFocused:
		c.params.Focus.Focus(c)
	}
}

// syncTabbable enforces the roving tabindex: while expanded only the item at
// focusIndex is tabbable, otherwise none is.
func (c *Collection) syncTabbable() {
	for i, item := range c.items {
		item.MakeTabbable(c.expanded && i == c.focusIndex)
	}
}

// FocusIndex returns the roving focus position; ok is false when empty.
func (c *Collection) FocusIndex() (int, bool) {
	if len(c.items) == 0 {
		return 0, false
	}
	return c.focusIndex, true
}

func (c *Collection) Expanded() bool { return c.expanded }
func (c *Collection) Len() int       { return len(c.items) }

// Items returns a copy of the item list in display order.
func (c *Collection) Items() []*ListItem {
	dup := make([]*ListItem, len(c.items))
	copy(dup, c.items)
	return dup
}

// Focused reports whether the container itself holds input focus.
func (c *Collection) Focused() bool {
	return c.params.Focus.Has(c)
}

// FocusedItem returns the item holding input focus, if any.
func (c *Collection) FocusedItem() (*ListItem, bool) {
	for _, item := range c.items {
		if item.Focused() {
			return item, true
		}
	}
	return nil, false
}

// Parent, Children and CanFocus make the collection a focus.Node. The
// container is a tab stop only while it holds entries.
func (c *Collection) Parent() focus.Node { return c.params.Parent }

func (c *Collection) Children() []focus.Node {
	out := make([]focus.Node, len(c.items))
	for i, item := range c.items {
		out[i] = item
	}
	return out
}

func (c *Collection) CanFocus() bool   { return c.tabbable }
func (c *Collection) Describe() string { return "keywords" }

// SetParent attaches the collection below parent in the focus tree.
func (c *Collection) SetParent(parent focus.Node) {
	c.params.Parent = parent
}

// View renders one item per line, or the empty text.
func (c *Collection) View(width int) string {
	if len(c.items) == 0 {
		return theme.Render(theme.Default().Placeholder, c.params.EmptyText)
	}
	lines := make([]string, len(c.items))
	for i, item := range c.items {
		lines[i] = item.View(width)
	}
	return strings.Join(lines, "\n")
}

func (c *Collection) indexOf(label string) int {
	for i, item := range c.items {
		if item.Label() == label {
			return i
		}
	}
	return -1
}

func (c *Collection) indexOfItem(target *ListItem) int {
	for i, item := range c.items {
		if item == target {
			return i
		}
	}
	return -1
}

func describeNode(n focus.Node) string {
	if d, ok := n.(focus.Describer); ok {
		return d.Describe()
	}
	return "node"
}
