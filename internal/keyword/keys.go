package keyword

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap lists the bindings understood by the collection.
type KeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	Toggle   key.Binding
	Remove   key.Binding
	Collapse key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "up"),
			key.WithHelp("←/↑", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "down"),
			key.WithHelp("→/↓", "next"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open/remove"),
		),
		Remove: key.NewBinding(
			key.WithKeys("delete", "backspace"),
			key.WithHelp("del", "remove"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Toggle, k.Remove, k.Collapse}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.Toggle, k.Remove, k.Collapse},
	}
}

// Keys returns the bindings in use.
func (c *Collection) Keys() KeyMap {
	return c.keys
}

// HandleKey applies the keyboard contract while focus is on the container or
// one of its items. Arrow keys are always consumed there so the host never
// scrolls for them. It reports whether the key was handled.
func (c *Collection) HandleKey(msg tea.KeyMsg) bool {
	if !c.params.Focus.Within(c) {
		return false
	}
	onContainer := c.params.Focus.Has(c)
	switch {
	case key.Matches(msg, c.keys.Prev):
		if c.expanded {
			c.moveFocusBy(-1)
		}
		return true
	case key.Matches(msg, c.keys.Next):
		if c.expanded {
			c.moveFocusBy(1)
		}
		return true
	case key.Matches(msg, c.keys.First):
		if c.expanded {
			c.moveFocusHome()
		}
		return true
	case key.Matches(msg, c.keys.Last):
		if c.expanded {
			c.moveFocusEnd()
		}
		return true
	case key.Matches(msg, c.keys.Toggle):
		if onContainer {
			c.SetExpanded(!c.expanded)
			return true
		}
		return c.activateFocused()
	case key.Matches(msg, c.keys.Remove):
		if onContainer {
			return false
		}
		return c.activateFocused()
	case key.Matches(msg, c.keys.Collapse):
		if !c.expanded {
			return false
		}
		c.SetExpanded(false)
		return true
	}
	return false
}

func (c *Collection) activateFocused() bool {
	item, ok := c.FocusedItem()
	if !ok {
		return false
	}
	item.Activate(SourceKeyboard)
	return true
}
