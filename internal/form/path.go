package form

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/atomicstack/keyword-editor/internal/logging/events"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrNotFound is wrapped by every failed lookup.
var ErrNotFound = errors.New("field not found")

// LookupError describes a failed path lookup.
type LookupError struct {
	Path       string
	Segment    string
	Suggestion string
}

func (e *LookupError) Error() string {
	msg := fmt.Sprintf("form: no field %q in path %q", e.Segment, e.Path)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *LookupError) Unwrap() error { return ErrNotFound }

// Find resolves path relative to from. Segments are separated by "/", ".."
// climbs to the parent and a leading "/" starts at the root of the tree.
func Find(path string, from Element) (Field, error) {
	field, err := find(path, from)
	events.Form.Lookup(path, err == nil)
	return field, err
}

func find(path string, from Element) (Field, error) {
	current := from
	if strings.HasPrefix(path, "/") {
		current = root(from)
	}
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for _, segment := range segments {
		switch segment {
		case "", ".":
			continue
		case "..":
			parent, ok := current.Parent().(Element)
			if !ok || parent == nil {
				return nil, &LookupError{Path: path, Segment: segment}
			}
			current = parent
			continue
		}
		container, ok := AsContainer(current)
		if !ok {
			return nil, &LookupError{Path: path, Segment: segment}
		}
		next, names := child(container, segment)
		if next == nil {
			return nil, &LookupError{Path: path, Segment: segment, Suggestion: suggest(segment, names)}
		}
		current = next
	}
	field, ok := current.(Field)
	if !ok {
		return nil, &LookupError{Path: path, Segment: path}
	}
	return field, nil
}

func child(container Container, name string) (Field, []string) {
	var names []string
	for _, el := range container.Elements() {
		field, ok := el.(Field)
		if !ok {
			continue
		}
		if field.Name() == name {
			return field, nil
		}
		if field.Name() != "" {
			names = append(names, field.Name())
		}
	}
	return nil, names
}

func suggest(segment string, names []string) string {
	if len(names) == 0 {
		return ""
	}
	if ranks := fuzzy.RankFindFold(segment, names); len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}
	best, bestDistance := "", -1
	for _, name := range names {
		distance := fuzzy.LevenshteinDistance(strings.ToLower(segment), strings.ToLower(name))
		if bestDistance < 0 || distance < bestDistance {
			best, bestDistance = name, distance
		}
	}
	if bestDistance > len(segment)/2+1 {
		return ""
	}
	return best
}

func root(el Element) Element {
	current := el
	for {
		parent, ok := current.Parent().(Element)
		if !ok || parent == nil {
			return current
		}
		current = parent
	}
}

// FindValue resolves path like Find and requires the field to hold a value.
func FindValue(path string, from Element) (ValueField, error) {
	field, err := Find(path, from)
	if err != nil {
		return nil, err
	}
	vf, ok := AsValueField(field)
	if !ok {
		return nil, fmt.Errorf("form: %q: %w", path, ErrNoValue)
	}
	return vf, nil
}
