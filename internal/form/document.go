package form

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/atomicstack/keyword-editor/internal/logging/events"
	"gopkg.in/yaml.v3"
)

// Document maps field paths to persisted values.
type Document map[string]string

// LoadDocument reads a document. A missing file yields an empty document.
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	doc := Document{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document %s: %w", path, err)
	}
	return doc, nil
}

// Save writes the document as YAML, creating parent directories.
func (d Document) Save(path string) error {
	data, err := yaml.Marshal(map[string]string(d))
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create document dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// Apply copies values into the matching value fields of root. Paths with no
// matching field are returned sorted.
func (d Document) Apply(root *Group) []string {
	var missing []string
	for path, value := range d {
		field, err := Find(path, root)
		if err != nil {
			missing = append(missing, path)
			continue
		}
		vf, ok := AsValueField(field)
		if !ok {
			missing = append(missing, path)
			continue
		}
		vf.SetValue(value)
		events.Form.Sync(path, value)
	}
	sort.Strings(missing)
	return missing
}

// Collect reads every value field below root into a document.
func Collect(root *Group) Document {
	doc := Document{}
	collectInto(doc, root, "")
	return doc
}

func collectInto(doc Document, container Container, prefix string) {
	for _, el := range container.Elements() {
		field, ok := el.(Field)
		if !ok || field.Name() == "" {
			continue
		}
		path := prefix + field.Name()
		if vf, ok := AsValueField(field); ok {
			doc[path] = vf.Value()
			continue
		}
		if child, ok := AsContainer(field); ok {
			collectInto(doc, child, path+"/")
		}
	}
}
