package keyword

import (
	"fmt"
	"strings"
)

// Entry is one immutable keyword label plus its accessible description.
type Entry struct {
	label       string
	description string
}

// NewEntry trims label and derives the description announced for removal.
// It reports false when nothing but whitespace remains.
func NewEntry(label, removeDescription string) (Entry, bool) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return Entry{}, false
	}
	description := trimmed
	if removeDescription != "" {
		description = fmt.Sprintf("%s. %s", trimmed, removeDescription)
	}
	return Entry{label: trimmed, description: description}, true
}

func (e Entry) Label() string       { return e.label }
func (e Entry) Description() string { return e.description }
