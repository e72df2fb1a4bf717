package keyword

import (
	"github.com/atomicstack/keyword-editor/internal/focus"
	"github.com/atomicstack/keyword-editor/internal/theme"
	"github.com/mattn/go-runewidth"
)

// Source identifies what triggered an item activation.
type Source int

const (
	SourcePointer Source = iota
	SourceKeyboard
	SourceProgram
)

func (s Source) String() string {
	switch s {
	case SourcePointer:
		return "pointer"
	case SourceKeyboard:
		return "keyboard"
	default:
		return "program"
	}
}

const removeMarker = "✕ "

// ListItem renders one entry as a removable, focusable control.
type ListItem struct {
	entry       Entry
	parent      focus.Node
	focus       *focus.Manager
	tabbable    bool
	onActivated func(*ListItem, Source)
}

func newListItem(entry Entry, parent focus.Node, mgr *focus.Manager, onActivated func(*ListItem, Source)) *ListItem {
	return &ListItem{
		entry:       entry,
		parent:      parent,
		focus:       mgr,
		onActivated: onActivated,
	}
}

func (i *ListItem) Label() string       { return i.entry.Label() }
func (i *ListItem) Description() string { return i.entry.Description() }
func (i *ListItem) Entry() Entry        { return i.entry }

// Focus gives the item input focus.
func (i *ListItem) Focus() {
	i.focus.Focus(i)
}

// Focused reports whether the item holds input focus.
func (i *ListItem) Focused() bool {
	return i.focus.Has(i)
}

// MakeTabbable toggles whether the item takes part in sequential navigation.
func (i *ListItem) MakeTabbable(tabbable bool) {
	i.tabbable = tabbable
}

func (i *ListItem) Tabbable() bool { return i.tabbable }

// Activate fires the removal signal. The item itself changes nothing.
func (i *ListItem) Activate(source Source) {
	if i.onActivated != nil {
		i.onActivated(i, source)
	}
}

func (i *ListItem) Parent() focus.Node     { return i.parent }
func (i *ListItem) Children() []focus.Node { return nil }
func (i *ListItem) CanFocus() bool         { return i.tabbable }
func (i *ListItem) Describe() string       { return "keyword:" + i.Label() }

// View renders the item on a single line no wider than width (when > 0).
func (i *ListItem) View(width int) string {
	styles := theme.Default()
	text := removeMarker + i.Label()
	if width > 0 {
		text = runewidth.Truncate(text, width, "…")
	}
	style := styles.Keyword
	switch {
	case i.Focused():
		style = styles.FocusedKeyword
	case i.tabbable:
		style = styles.TabbableKeyword
	}
	return theme.Render(style, text)
}
