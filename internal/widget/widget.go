// Package widget attaches a keyword collection to a form. It reads and
// writes a persisted comma-separated field and adds command buttons next to
// configured source fields.
package widget

import (
	"strings"

	"github.com/atomicstack/keyword-editor/internal/focus"
	"github.com/atomicstack/keyword-editor/internal/form"
	"github.com/atomicstack/keyword-editor/internal/i18n"
	"github.com/atomicstack/keyword-editor/internal/keyword"
	"github.com/atomicstack/keyword-editor/internal/logging/events"
	"github.com/atomicstack/keyword-editor/internal/parse"
	"github.com/atomicstack/keyword-editor/internal/theme"
)

// Binding attaches a parse command to a source field.
type Binding struct {
	Field   string `yaml:"field"`
	Command string `yaml:"command"`
}

// Config selects the persisted field and the command buttons.
type Config struct {
	Target   string
	Commands []Binding
}

// Deps are injected by the host.
type Deps struct {
	T        i18n.Translator
	Language i18n.LanguageProvider
	Focus    *focus.Manager
	Parser   *parse.Parser
}

// Widget is the form element wrapping the keyword collection.
type Widget struct {
	host       *form.Group
	parent     focus.Node
	cfg        Config
	deps       Deps
	target     form.ValueField
	collection *keyword.Collection
	buttons    []*Button
	notices    []string
}

// New resolves the configured fields relative to host and builds the widget.
// Missing fields degrade to inline notices rather than errors.
func New(host *form.Group, cfg Config, deps Deps) *Widget {
	if deps.Language == nil {
		deps.Language = i18n.StaticLanguage(parse.DefaultLanguage)
	}
	if deps.T == nil {
		deps.T = i18n.NewCatalog().Translator(deps.Language)
	}
	if deps.Focus == nil {
		deps.Focus = focus.NewManager()
	}
	if deps.Parser == nil {
		deps.Parser = parse.New(nil)
	}
	w := &Widget{host: host, cfg: cfg, deps: deps}

	target, err := form.FindValue(cfg.Target, host)
	if err != nil {
		w.notice(i18n.KeyNoTargetField, map[string]string{"field": cfg.Target})
		return w
	}
	w.target = target
	w.collection = keyword.New(keyword.Params{
		RemoveDescription: deps.T(i18n.KeyRemoveKeyword, nil),
		EmptyText:         deps.T(i18n.KeyNoKeywords, nil),
		Focus:             deps.Focus,
		Parent:            w,
	}, keyword.Callbacks{OnUpdated: w.sync})

	if value := strings.TrimSpace(target.Value()); value != "" {
		w.collection.AddKeywords(keyword.SplitPersisted(value))
	}
	for _, binding := range cfg.Commands {
		w.attach(binding)
	}
	return w
}

func (w *Widget) attach(binding Binding) {
	vars := map[string]string{"field": binding.Field, "command": binding.Command}
	mode, ok := parse.ParseCommand(binding.Command)
	if !ok {
		w.notice(i18n.KeyUnknownCommand, vars)
		return
	}
	source, err := form.FindValue(binding.Field, w.host)
	if err != nil {
		w.notice(i18n.KeyNoSourceField, vars)
		return
	}
	container, ok := form.AsContainer(source.Parent())
	if !ok {
		w.notice(i18n.KeyNoSourceField, vars)
		return
	}
	labelVars := map[string]string{"field": fieldTitle(source)}
	labelKey := i18n.KeySplitOnComma
	if mode == parse.ModeExtract {
		labelKey = i18n.KeyExtractFromText
	}
	button := &Button{
		id:     binding.Field,
		label:  w.deps.T(labelKey, labelVars),
		mode:   mode,
		source: source,
		widget: w,
	}
	if !container.InsertAfter(source, button) {
		w.notice(i18n.KeyNoSourceField, vars)
		return
	}
	w.buttons = append(w.buttons, button)
}

func (w *Widget) notice(key string, vars map[string]string) {
	msg := w.deps.T(key, vars)
	w.notices = append(w.notices, msg)
	events.Form.Notice(msg)
}

// sync writes the serialized collection into the persisted field. SetValue
// dispatches the field's change listeners.
func (w *Widget) sync() {
	value := w.collection.String()
	w.target.SetValue(value)
	events.Form.Sync(w.cfg.Target, value)
}

// Apply feeds parsed candidates into the collection.
func (w *Widget) Apply(candidates []string) {
	if w.collection == nil {
		return
	}
	w.collection.AddKeywords(candidates)
}

// Run parses the source text of button synchronously and applies the
// result. It reports false when the source field was empty.
func (w *Widget) Run(button *Button) bool {
	req, ok := button.Request()
	if !ok {
		return false
	}
	w.Apply(w.deps.Parser.Run(req))
	return true
}

// AppendTo places the widget at the end of container.
func (w *Widget) AppendTo(container form.Container) {
	container.Append(w)
}

// Validate reports whether the host form is valid.
func (w *Widget) Validate() bool {
	return w.host.Validate() == nil
}

// Remove detaches the widget and its buttons from the form.
func (w *Widget) Remove() {
	if w.deps.Focus.Within(w) {
		w.deps.Focus.Blur()
	}
	for _, button := range w.buttons {
		if w.deps.Focus.Has(button) {
			w.deps.Focus.Blur()
		}
		if container, ok := form.AsContainer(button.parent); ok {
			container.Remove(button)
		}
	}
	w.buttons = nil
	if container, ok := form.AsContainer(w.parent); ok {
		container.Remove(w)
	}
}

// Collection returns the keyword collection, nil when the target field is
// missing.
func (w *Widget) Collection() *keyword.Collection { return w.collection }
func (w *Widget) Buttons() []*Button              { return append([]*Button(nil), w.buttons...) }
func (w *Widget) Notices() []string               { return append([]string(nil), w.notices...) }

func (w *Widget) Parent() focus.Node          { return w.parent }
func (w *Widget) SetParent(parent focus.Node) { w.parent = parent }
func (w *Widget) CanFocus() bool              { return false }
func (w *Widget) Describe() string            { return "keyword-widget" }

func (w *Widget) Children() []focus.Node {
	if w.collection == nil {
		return nil
	}
	return []focus.Node{w.collection}
}

// View renders the title, any notices and the collection.
func (w *Widget) View(width int) string {
	styles := theme.Default()
	titleStyle := styles.Container
	if w.collection != nil && w.collection.Focused() {
		titleStyle = styles.FocusedContainer
	}
	lines := []string{theme.Render(titleStyle, w.deps.T(i18n.KeyKeywords, nil))}
	for _, msg := range w.notices {
		lines = append(lines, theme.Render(styles.Notice, msg))
	}
	if w.collection != nil {
		lines = append(lines, w.collection.View(width))
	}
	return strings.Join(lines, "\n")
}

// ItemLine returns the line of View that renders the keyword at position.
func (w *Widget) ItemLine(position int) int {
	return 1 + len(w.notices) + position
}

// FocusLine returns the line of View holding input focus.
func (w *Widget) FocusLine() (int, bool) {
	if w.collection == nil || !w.deps.Focus.Within(w.collection) {
		return 0, false
	}
	if w.collection.Focused() {
		return 0, true
	}
	position, _ := w.collection.FocusIndex()
	return w.ItemLine(position), true
}

// Click activates the keyword rendered on line (relative to the top of
// View) as a pointer removal.
func (w *Widget) Click(line int) bool {
	if w.collection == nil {
		return false
	}
	return w.collection.ActivateAt(line-w.ItemLine(0), keyword.SourcePointer)
}

func fieldTitle(field form.Field) string {
	if field.Label() != "" {
		return field.Label()
	}
	return field.Name()
}
