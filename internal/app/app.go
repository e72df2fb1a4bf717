package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/atomicstack/keyword-editor/internal/backend"
	"github.com/atomicstack/keyword-editor/internal/focus"
	"github.com/atomicstack/keyword-editor/internal/form"
	"github.com/atomicstack/keyword-editor/internal/format/table"
	"github.com/atomicstack/keyword-editor/internal/i18n"
	"github.com/atomicstack/keyword-editor/internal/logging/events"
	"github.com/atomicstack/keyword-editor/internal/parse"
	"github.com/atomicstack/keyword-editor/internal/ui"
	"github.com/atomicstack/keyword-editor/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Document   string
	SchemaPath string
	Target     string
	Commands   []widget.Binding
	Language   string
	Add        string
	List       bool
	Width      int
	Height     int
	ShowFooter bool
}

// Session holds a loaded document and the form built around it.
type Session struct {
	cfg      Config
	loaded   form.Document
	Root     *form.Group
	Widget   *widget.Widget
	Focus    *focus.Manager
	T        i18n.Translator
	Parser   *parse.Parser
	Language i18n.LanguageProvider
}

// Open builds the form from the configured schema, applies the document and
// attaches the keyword widget.
func Open(cfg Config) (*Session, error) {
	schema := form.DefaultSchema()
	if cfg.SchemaPath != "" {
		loaded, err := form.LoadSchema(cfg.SchemaPath)
		if err != nil {
			return nil, err
		}
		schema = loaded
	}
	root, err := form.Build(schema)
	if err != nil {
		return nil, err
	}
	doc, err := form.LoadDocument(cfg.Document)
	if err != nil {
		return nil, err
	}
	for _, path := range doc.Apply(root) {
		events.Form.Notice("document field without form field: " + path)
	}

	s := &Session{
		cfg:      cfg,
		loaded:   doc,
		Root:     root,
		Focus:    focus.NewManager(),
		Parser:   parse.New(nil),
		Language: i18n.StaticLanguage(cfg.Language),
	}
	s.T = i18n.NewCatalog().Translator(s.Language)
	s.Widget = widget.New(root, widget.Config{
		Target:   cfg.Target,
		Commands: cfg.Commands,
	}, widget.Deps{
		T:        s.T,
		Language: s.Language,
		Focus:    s.Focus,
		Parser:   s.Parser,
	})
	s.Widget.AppendTo(root)
	if cfg.Add != "" {
		s.Widget.Apply(parse.SplitComma(cfg.Add))
	}
	return s, nil
}

// Save writes the form values back to the document. Entries of the loaded
// document that no form field claims are kept.
func (s *Session) Save() (string, error) {
	out := form.Document{}
	for k, v := range s.loaded {
		out[k] = v
	}
	for k, v := range form.Collect(s.Root) {
		out[k] = v
	}
	if err := out.Save(s.cfg.Document); err != nil {
		return "", err
	}
	events.App.Save(s.cfg.Document, len(out))
	return s.cfg.Document, nil
}

// Print writes the keywords as a numbered table, followed by any notices.
func (s *Session) Print(w io.Writer) error {
	for _, notice := range s.Widget.Notices() {
		if _, err := fmt.Fprintln(w, notice); err != nil {
			return err
		}
	}
	c := s.Widget.Collection()
	if c == nil {
		return nil
	}
	rows := make([][]string, 0, c.Len())
	for i, item := range c.Items() {
		rows = append(rows, []string{strconv.Itoa(i + 1), item.Label()})
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Run bootstraps and executes the Bubble Tea program, saving the document
// unless the user discarded their changes.
func Run(cfg Config) (err error) {
	defer func() { events.App.Exit(err) }()
	session, err := Open(cfg)
	if err != nil {
		return err
	}
	if cfg.List {
		if cfg.Add != "" {
			if _, err := session.Save(); err != nil {
				return err
			}
		}
		return session.Print(os.Stdout)
	}
	watcher := backend.NewWatcher(time.Second, map[backend.Kind]string{
		backend.KindDocument: cfg.Document,
		backend.KindSchema:   cfg.SchemaPath,
	})
	defer watcher.Stop()
	model := ui.NewModel(ui.Options{
		Root:       session.Root,
		Widget:     session.Widget,
		Focus:      session.Focus,
		T:          session.T,
		Parser:     session.Parser,
		Save:       session.Save,
		Watcher:    watcher,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err != nil {
		return err
	}
	if model.Discarded() {
		return nil
	}
	_, err = session.Save()
	return err
}
