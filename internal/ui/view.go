package ui

import (
	"strings"

	"github.com/atomicstack/keyword-editor/internal/focus"
	"github.com/atomicstack/keyword-editor/internal/form"
	"github.com/atomicstack/keyword-editor/internal/keyword"
	"github.com/atomicstack/keyword-editor/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// block records where an element landed in the body so mouse clicks and
// scrolling can map lines back to elements.
type block struct {
	element form.Element
	start   int
	lines   int
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.width
	header := []styledLine{}
	if m.root != nil && m.root.Label() != "" {
		header = append(header, styledLine{text: m.root.Label(), style: styles.Title})
	}
	body := m.renderBody(width)
	bottom := m.bottomLines()

	if m.height > 0 {
		m.viewport.Width = width
		m.viewport.Height = m.bodyHeight(len(header), len(bottom))
		m.viewport.SetContent(body)
		m.scrollToFocus()
		body = m.viewport.View()
	}

	out := []string{}
	if len(header) > 0 {
		out = append(out, renderLines(applyWidth(header, width)))
	}
	out = append(out, body)
	if len(bottom) > 0 {
		out = append(out, renderLines(applyWidth(bottom, width)))
	}
	return strings.Join(out, "\n")
}

func (m *Model) bodyHeight(headerLines, bottomLines int) int {
	h := m.height - headerLines - bottomLines
	if h < 1 {
		return 1
	}
	return h
}

// renderBody lays out every visible element of the form, one blank line
// apart, recording each element's block.
func (m *Model) renderBody(width int) string {
	m.blocks = m.blocks[:0]
	if m.root == nil {
		return ""
	}
	lines := []styledLine{}
	var walk func(container form.Container)
	walk = func(container form.Container) {
		for _, el := range container.Elements() {
			if group, ok := el.(*form.Group); ok {
				if group.Label() != "" {
					lines = append(lines, styledLine{text: group.Label(), style: styles.Title})
				}
				walk(group)
				continue
			}
			view := el.View(width)
			if view == "" {
				continue
			}
			if len(lines) > 0 {
				lines = append(lines, styledLine{})
			}
			split := strings.Split(view, "\n")
			m.blocks = append(m.blocks, block{element: el, start: len(lines), lines: len(split)})
			for _, text := range split {
				lines = append(lines, styledLine{text: text, raw: true})
			}
		}
	}
	walk(m.root)
	return renderLines(applyWidth(lines, width))
}

func (m *Model) bottomLines() []styledLine {
	lines := []styledLine{}
	switch {
	case m.errMsg != "":
		lines = append(lines, styledLine{text: m.errMsg, style: styles.Error})
	case m.currentInfo() != "":
		lines = append(lines, styledLine{text: m.infoMsg, style: styles.Info})
	default:
		lines = append(lines, styledLine{text: m.focusStatus(), style: styles.Description})
	}
	if m.showFooter {
		lines = append(lines, styledLine{text: m.footerView(), raw: true})
	}
	return lines
}

// focusStatus describes the focused element; keyword items announce their
// removal description.
func (m *Model) focusStatus() string {
	switch n := m.focus.Current().(type) {
	case *keyword.ListItem:
		return n.Description()
	case *keyword.Collection:
		return n.String()
	case *widget.Button:
		return n.Label()
	case form.Field:
		if d, ok := n.(interface{ Description() string }); ok && d.Description() != "" {
			return d.Description()
		}
		return fieldTitle(n)
	}
	return ""
}

func (m *Model) footerView() string {
	m.help.Width = m.width
	if m.widget != nil {
		if c := m.widget.Collection(); c != nil && m.focus.Within(c) {
			return m.help.View(c.Keys())
		}
	}
	return m.help.View(m.keys)
}

// focusLine returns the body line of the focused element.
func (m *Model) focusLine() (int, bool) {
	current := m.focus.Current()
	if current == nil {
		return 0, false
	}
	for _, b := range m.blocks {
		if !focus.IsAncestor(b.element, current) {
			continue
		}
		if w, ok := b.element.(*widget.Widget); ok {
			if line, ok := w.FocusLine(); ok {
				return b.start + line, true
			}
		}
		return b.start, true
	}
	return 0, false
}

func (m *Model) scrollToFocus() {
	line, ok := m.focusLine()
	if !ok {
		return
	}
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

func (m *Model) headerLines() int {
	if m.root != nil && m.root.Label() != "" {
		return 1
	}
	return 0
}

// handleMouseMsg focuses what was clicked. A click on a keyword removes it,
// a click on a button runs its command.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.viewport.LineUp(3)
		return nil
	case tea.MouseButtonWheelDown:
		m.viewport.LineDown(3)
		return nil
	case tea.MouseButtonLeft:
		if ev.Action != tea.MouseActionPress {
			return nil
		}
	default:
		return nil
	}
	line := ev.Y - m.headerLines()
	if line < 0 {
		return nil
	}
	if m.height > 0 {
		line += m.viewport.YOffset
	}
	for _, b := range m.blocks {
		if line < b.start || line >= b.start+b.lines {
			continue
		}
		switch el := b.element.(type) {
		case *widget.Widget:
			el.Click(line - b.start)
		case *widget.Button:
			m.focus.Focus(el)
			return m.runButton(el)
		default:
			if el.CanFocus() {
				m.focus.Focus(el)
			}
		}
		return nil
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw || line.style == nil {
			out[i] = line.text
			continue
		}
		out[i] = line.style.Render(line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
