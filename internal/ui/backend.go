package ui

import (
	"fmt"

	"github.com/atomicstack/keyword-editor/internal/backend"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	evt := eventMsg.event
	if evt.Err != nil {
		m.errMsg = fmt.Sprintf("watch %s: %v", evt.Kind, evt.Err)
	} else {
		m.errMsg = fmt.Sprintf("%s %s changed on disk; saving will overwrite it", evt.Kind, evt.Path)
	}
	if m.backend == nil {
		return nil
	}
	return waitForBackendEvent(m.backend)
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(backendDoneMsg); !ok {
		return nil
	}
	m.backend = nil
	return nil
}
