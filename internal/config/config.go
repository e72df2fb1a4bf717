package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/keyword-editor/internal/app"
	"github.com/atomicstack/keyword-editor/internal/parse"
	"github.com/atomicstack/keyword-editor/internal/widget"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfig   = "KEYWORD_EDITOR_CONFIG"
	envDocument = "KEYWORD_EDITOR_DOCUMENT"
	envSchema   = "KEYWORD_EDITOR_SCHEMA"
	envTarget   = "KEYWORD_EDITOR_TARGET"
	envLanguage = "KEYWORD_EDITOR_LANGUAGE"
	envCommands = "KEYWORD_EDITOR_COMMANDS"
	envWidth    = "KEYWORD_EDITOR_WIDTH"
	envHeight   = "KEYWORD_EDITOR_HEIGHT"
	envFooter   = "KEYWORD_EDITOR_FOOTER"
	envTrace    = "KEYWORD_EDITOR_TRACE"
	envLogFile  = "KEYWORD_EDITOR_LOG_FILE"
)

const (
	defaultDocument = "keywords.yaml"
	defaultTarget   = "keywords"
)

// DefaultCommands attach extraction to the description and comma splitting
// to the keyword input of the default schema.
func DefaultCommands() []widget.Binding {
	return []widget.Binding{
		{Field: "description", Command: "extract-from-text"},
		{Field: "keywordInput", Command: "split-on-comma"},
	}
}

// fileConfig is the shape of the optional --config YAML file.
type fileConfig struct {
	Document string           `yaml:"document"`
	Schema   string           `yaml:"schema"`
	Target   string           `yaml:"target"`
	Language string           `yaml:"language"`
	Footer   *bool            `yaml:"footer"`
	Commands []widget.Binding `yaml:"commands"`
}

// bindingList collects repeated --command field=command flags.
type bindingList []widget.Binding

func (b *bindingList) String() string {
	parts := make([]string, len(*b))
	for i, binding := range *b {
		parts[i] = binding.Field + "=" + binding.Command
	}
	return strings.Join(parts, ";")
}

func (b *bindingList) Set(value string) error {
	binding, err := parseBinding(value)
	if err != nil {
		return err
	}
	*b = append(*b, binding)
	return nil
}

func parseBinding(value string) (widget.Binding, error) {
	field, command, ok := strings.Cut(value, "=")
	field, command = strings.TrimSpace(field), strings.TrimSpace(command)
	if !ok || field == "" || command == "" {
		return widget.Binding{}, fmt.Errorf("invalid command binding %q (want field=command)", value)
	}
	return widget.Binding{Field: field, Command: command}, nil
}

func parseBindings(value string) ([]widget.Binding, error) {
	var out []widget.Binding
	for _, part := range strings.Split(value, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		binding, err := parseBinding(part)
		if err != nil {
			return nil, err
		}
		out = append(out, binding)
	}
	return out, nil
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values resolve
// as flag, then environment, then config file, then default.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("keyword-editor", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configPath := fs.String("config", envOrDefault(env, envConfig, ""), "path to a YAML config file")
	document := fs.String("document", envOrDefault(env, envDocument, ""), "path to the YAML document to edit")
	schema := fs.String("schema", envOrDefault(env, envSchema, ""), "path to a YAML form schema (built-in schema when empty)")
	target := fs.String("target", envOrDefault(env, envTarget, ""), "path of the field keywords are persisted in")
	language := fs.String("language", envOrDefault(env, envLanguage, ""), "content language used for keyword extraction")
	add := fs.String("add", "", "comma-separated keywords to add before starting")
	list := fs.Bool("list", false, "print the keywords and exit instead of starting the editor")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, true), "show the key help footer")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	var commands bindingList
	fs.Var(&commands, "command", "attach a command to a field as field=command (repeatable)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 1 {
		return Config{}, fmt.Errorf("expected at most one document argument, got %d", fs.NArg())
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	file := fileConfig{}
	if *configPath != "" {
		loaded, err := loadFile(*configPath)
		if err != nil {
			return Config{}, err
		}
		file = loaded
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	fromEnv := func(name, key string) bool {
		_, ok := env[key]
		return set[name] || ok
	}

	if fs.NArg() == 1 {
		*document = fs.Arg(0)
	} else if !fromEnv("document", envDocument) {
		*document = firstNonEmpty(file.Document, defaultDocument)
	}
	if !fromEnv("schema", envSchema) {
		*schema = file.Schema
	}
	if !fromEnv("target", envTarget) {
		*target = firstNonEmpty(file.Target, defaultTarget)
	}
	if !fromEnv("language", envLanguage) {
		*language = firstNonEmpty(file.Language, parse.DefaultLanguage)
	}
	if !fromEnv("footer", envFooter) && file.Footer != nil {
		*footer = *file.Footer
	}

	bindings := []widget.Binding(commands)
	if len(bindings) == 0 {
		if raw, ok := env[envCommands]; ok {
			parsed, err := parseBindings(raw)
			if err != nil {
				return Config{}, err
			}
			bindings = parsed
		} else if len(file.Commands) > 0 {
			bindings = file.Commands
		} else {
			bindings = DefaultCommands()
		}
	}

	cfg := Config{
		App: app.Config{
			Document:   *document,
			SchemaPath: *schema,
			Target:     *target,
			Commands:   bindings,
			Language:   *language,
			Add:        *add,
			List:       *list,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"config":   *configPath,
			"document": *document,
			"schema":   *schema,
			"target":   *target,
			"language": *language,
			"commands": (*bindingList)(&bindings).String(),
			"add":      *add,
			"list":     strconv.FormatBool(*list),
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func loadFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config: %w", err)
	}
	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return file, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the document, target and commands are usable.
func Validate(cfg Config) error {
	var errs []error
	if strings.TrimSpace(cfg.App.Document) == "" {
		errs = append(errs, errors.New("document path is required"))
	}
	if strings.TrimSpace(cfg.App.Target) == "" {
		errs = append(errs, errors.New("target field is required"))
	}
	for _, binding := range cfg.App.Commands {
		if strings.TrimSpace(binding.Field) == "" {
			errs = append(errs, fmt.Errorf("command %q has no field", binding.Command))
		}
		if _, ok := parse.ParseCommand(binding.Command); !ok {
			errs = append(errs, fmt.Errorf("unknown command %q for field %q", binding.Command, binding.Field))
		}
	}
	return errors.Join(errs...)
}
