package form

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Field types understood by Build.
const (
	TypeText     = "text"
	TypeTextArea = "textarea"
	TypeHidden   = "hidden"
	TypeGroup    = "group"
)

// FieldSpec describes one field of a schema.
type FieldSpec struct {
	Name        string      `yaml:"name"`
	Type        string      `yaml:"type"`
	Label       string      `yaml:"label,omitempty"`
	Description string      `yaml:"description,omitempty"`
	Placeholder string      `yaml:"placeholder,omitempty"`
	Required    bool        `yaml:"required,omitempty"`
	Fields      []FieldSpec `yaml:"fields,omitempty"`
}

// Schema describes a whole form.
type Schema struct {
	Title  string      `yaml:"title"`
	Fields []FieldSpec `yaml:"fields"`
}

// DefaultSchema is the form used when none is configured: a title, a
// description to extract keywords from, a comma-separated input and the
// hidden field keywords are persisted in.
func DefaultSchema() Schema {
	return Schema{
		Title: "Keywords",
		Fields: []FieldSpec{
			{Name: "title", Type: TypeText, Label: "Title", Required: true},
			{Name: "description", Type: TypeTextArea, Label: "Description", Placeholder: "Describe the item"},
			{Name: "keywordInput", Type: TypeText, Label: "Keyword list", Placeholder: "comma, separated, words"},
			{Name: "keywords", Type: TypeHidden, Label: "Keywords"},
		},
	}
}

// LoadSchema reads a YAML schema from path.
func LoadSchema(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("read schema: %w", err)
	}
	return ParseSchema(data)
}

// ParseSchema decodes a YAML schema.
func ParseSchema(data []byte) (Schema, error) {
	var schema Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return Schema{}, fmt.Errorf("parse schema: %w", err)
	}
	if len(schema.Fields) == 0 {
		return Schema{}, fmt.Errorf("parse schema: no fields defined")
	}
	return schema, nil
}

// Build turns a schema into a field tree rooted at an unnamed group.
func Build(schema Schema) (*Group, error) {
	root := NewGroup(Options{Label: schema.Title})
	if err := buildInto(root, schema.Fields, ""); err != nil {
		return nil, err
	}
	return root, nil
}

func buildInto(group *Group, specs []FieldSpec, prefix string) error {
	seen := map[string]bool{}
	for _, spec := range specs {
		if spec.Name == "" {
			return fmt.Errorf("build form: field under %q has no name", prefix+"/")
		}
		path := prefix + spec.Name
		if seen[spec.Name] {
			return fmt.Errorf("build form: duplicate field %q", path)
		}
		seen[spec.Name] = true
		opts := Options{
			Name:        spec.Name,
			Label:       spec.Label,
			Description: spec.Description,
			Placeholder: spec.Placeholder,
			Required:    spec.Required,
		}
		switch spec.Type {
		case TypeText, "":
			group.Append(NewText(opts))
		case TypeTextArea:
			group.Append(NewTextArea(opts))
		case TypeHidden:
			group.Append(NewHidden(opts))
		case TypeGroup:
			child := NewGroup(opts)
			if err := buildInto(child, spec.Fields, path+"/"); err != nil {
				return err
			}
			group.Append(child)
		default:
			return fmt.Errorf("build form: field %q has unknown type %q", path, spec.Type)
		}
	}
	return nil
}
