package ui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/atomicstack/keyword-editor/internal/backend"
	"github.com/atomicstack/keyword-editor/internal/focus"
	"github.com/atomicstack/keyword-editor/internal/form"
	"github.com/atomicstack/keyword-editor/internal/i18n"
	"github.com/atomicstack/keyword-editor/internal/parse"
	"github.com/atomicstack/keyword-editor/internal/theme"
	"github.com/atomicstack/keyword-editor/internal/ui/command"
	"github.com/atomicstack/keyword-editor/internal/widget"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// SaveFunc persists the form and returns the path written.
type SaveFunc func() (string, error)

// Options configure a Model.
type Options struct {
	Root       *form.Group
	Widget     *widget.Widget
	Focus      *focus.Manager
	T          i18n.Translator
	Parser     *parse.Parser
	Save       SaveFunc
	Watcher    *backend.Watcher
	Width      int
	Height     int
	ShowFooter bool
}

// Model implements the Bubble Tea model for the keyword form editor.
type Model struct {
	root        *form.Group
	widget      *widget.Widget
	focus       *focus.Manager
	t           i18n.Translator
	save        SaveFunc
	backend     *backend.Watcher
	bus         *command.Bus
	keys        globalKeyMap
	help        help.Model
	viewport    viewport.Model
	blocks      []block
	inputFocus  form.Inputter
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	pending     map[string]bool
	discarded   bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the form tree, widget and focus manager into a model and
// focuses the first focusable field.
func NewModel(opts Options) *Model {
	if opts.Focus == nil {
		opts.Focus = focus.NewManager()
	}
	if opts.T == nil {
		opts.T = i18n.NewCatalog().Translator(nil)
	}
	if opts.Parser == nil {
		opts.Parser = parse.New(nil)
	}
	m := &Model{
		root:       opts.Root,
		widget:     opts.Widget,
		focus:      opts.Focus,
		t:          opts.T,
		save:       opts.Save,
		backend:    opts.Watcher,
		bus:        command.New(opts.Parser.Run),
		keys:       defaultGlobalKeys(),
		help:       help.New(),
		viewport:   viewport.New(0, 0),
		showFooter: opts.ShowFooter,
		pending:    map[string]bool{},
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	if m.root != nil && m.focus.Current() == nil {
		m.focus.Next(m.root)
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.syncInputFocus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}
	if cmd := m.forwardToInput(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.ParsedMsg{}): m.handleParsedMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate keeps the text input that owns the cursor in step with the
// focus manager after every message.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if cmd := m.syncInputFocus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) syncInputFocus() tea.Cmd {
	next, _ := m.focus.Current().(form.Inputter)
	if next == m.inputFocus {
		return nil
	}
	if m.inputFocus != nil {
		m.inputFocus.SetFocused(false)
	}
	m.inputFocus = next
	if next == nil {
		return nil
	}
	return next.SetFocused(true)
}

// forwardToInput hands messages nobody else claimed (cursor blinks) to the
// focused input.
func (m *Model) forwardToInput(msg tea.Msg) tea.Cmd {
	if m.inputFocus == nil {
		return nil
	}
	return m.inputFocus.Update(msg)
}

func (m *Model) handleParsedMsg(msg tea.Msg) tea.Cmd {
	parsed, ok := msg.(command.ParsedMsg)
	if !ok {
		return nil
	}
	delete(m.pending, parsed.ID)
	if m.widget == nil {
		return nil
	}
	before := 0
	if c := m.widget.Collection(); c != nil {
		before = c.Len()
	}
	m.widget.Apply(parsed.Keywords)
	if c := m.widget.Collection(); c != nil {
		m.setInfo(fmt.Sprintf("%d new of %d parsed", c.Len()-before, len(parsed.Keywords)))
	}
	return nil
}

func (m *Model) runButton(button *widget.Button) tea.Cmd {
	req, ok := button.Request()
	if !ok {
		m.setInfo(m.t(i18n.KeyNothingToParse, map[string]string{"field": fieldTitle(button.Source())}))
		return nil
	}
	if m.pending[req.ID] {
		return nil
	}
	m.pending[req.ID] = true
	m.errMsg = ""
	return m.bus.Execute(req)
}

func (m *Model) saveNow() {
	if m.save == nil {
		return
	}
	path, err := m.save()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.backend.Sync(backend.KindDocument, path)
	m.errMsg = ""
	m.setInfo(m.t(i18n.KeySaved, map[string]string{"path": path}))
}

// Discarded reports whether the user quit without keeping changes.
func (m *Model) Discarded() bool {
	return m.discarded
}

// Focus exposes the focus manager driving the model.
func (m *Model) Focus() *focus.Manager {
	return m.focus
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func fieldTitle(field form.Field) string {
	if field == nil {
		return ""
	}
	if field.Label() != "" {
		return field.Label()
	}
	return field.Name()
}
