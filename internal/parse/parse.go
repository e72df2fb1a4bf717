// Package parse turns free text into keyword candidates.
package parse

import (
	"strings"

	"github.com/atomicstack/keyword-editor/internal/logging/events"
)

// Mode selects a parsing strategy.
type Mode string

const (
	ModeCommaSeparated Mode = "comma-separated"
	ModeExtract        Mode = "extract"
)

// Options tune keyword extraction.
type Options struct {
	Language         string
	ChangeCase       bool
	RemoveDigits     bool
	RemoveDuplicates bool
}

// DefaultOptions returns the options used by Parse in extract mode.
func DefaultOptions(language string) Options {
	return Options{
		Language:         language,
		ChangeCase:       true,
		RemoveDigits:     true,
		RemoveDuplicates: true,
	}
}

// Extractor pulls significant words out of prose.
type Extractor interface {
	Extract(text string, opts Options) []string
}

// Request is one parse job: the text of a source field and the strategy to
// run over it.
type Request struct {
	ID       string
	Mode     Mode
	Text     string
	Language string
}

// Parser runs a strategy against an input string.
type Parser struct {
	engine Extractor
}

// New returns a parser that uses engine for extract mode. A nil engine
// falls back to StopwordEngine.
func New(engine Extractor) *Parser {
	if engine == nil {
		engine = StopwordEngine{}
	}
	return &Parser{engine: engine}
}

var defaultParser = New(nil)

// Parse runs text through the default parser.
func Parse(text string, mode Mode, language string) []string {
	return defaultParser.Parse(text, mode, language)
}

// Parse returns the candidates for text. Unknown modes yield nothing. The
// result is not checked against any collection.
func (p *Parser) Parse(text string, mode Mode, language string) []string {
	var out []string
	switch mode {
	case ModeCommaSeparated:
		out = SplitComma(text)
	case ModeExtract:
		out = p.engine.Extract(text, DefaultOptions(ResolveLanguage(language)))
	default:
		events.Parse.Run(string(mode), language, 0)
		return []string{}
	}
	if out == nil {
		out = []string{}
	}
	events.Parse.Run(string(mode), language, len(out))
	return out
}

// Run parses the text of req.
func (p *Parser) Run(req Request) []string {
	return p.Parse(req.Text, req.Mode, req.Language)
}

// SplitComma splits text on commas, trimming pieces and dropping empty ones.
func SplitComma(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// ParseCommand maps a configured command name to its mode.
func ParseCommand(name string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "extract-from-text", string(ModeExtract):
		return ModeExtract, true
	case "split-on-comma", string(ModeCommaSeparated):
		return ModeCommaSeparated, true
	}
	return "", false
}
