package ui

import (
	"github.com/atomicstack/keyword-editor/internal/widget"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type globalKeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Run   key.Binding
	Save  key.Binding
	Quit  key.Binding
	Abort key.Binding
}

func defaultGlobalKeys() globalKeyMap {
	return globalKeyMap{
		Next:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("⇧tab", "prev")),
		Run:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "run")),
		Save:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^s", "save")),
		Quit:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "save & quit")),
		Abort: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("^c", "discard")),
	}
}

func (k globalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Run, k.Save, k.Quit, k.Abort}
}

func (k globalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Run}, {k.Save, k.Quit, k.Abort}}
}

// handleKeyMsg routes a key press: global shortcuts first, then the keyword
// collection while it holds focus, then the focus ring, command buttons and
// finally the focused text input.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Abort):
		m.discarded = true
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Save):
		m.saveNow()
		return nil
	}
	if m.widget != nil {
		if c := m.widget.Collection(); c != nil && c.HandleKey(keyMsg) {
			return nil
		}
	}
	switch {
	case key.Matches(keyMsg, m.keys.Next):
		m.focus.Next(m.root)
		return nil
	case key.Matches(keyMsg, m.keys.Prev):
		m.focus.Prev(m.root)
		return nil
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	}
	if button, ok := m.focus.Current().(*widget.Button); ok {
		if key.Matches(keyMsg, m.keys.Run) {
			return m.runButton(button)
		}
		return nil
	}
	m.syncInputFocus()
	return m.forwardToInput(keyMsg)
}
