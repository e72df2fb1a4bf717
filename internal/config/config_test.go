package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/keyword-editor/internal/widget"
	"github.com/google/go-cmp/cmp"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Document != defaultDocument || cfg.App.Target != defaultTarget || cfg.App.Language != "en" {
		t.Fatalf("unexpected defaults %+v", cfg.App)
	}
	if diff := cmp.Diff(DefaultCommands(), cfg.App.Commands); diff != "" {
		t.Fatalf("commands mismatch (-want +got):\n%s", diff)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer on by default")
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	body := `
document: from-file.yaml
target: meta/tags
language: de
footer: false
commands:
  - field: body
    command: extract-from-text
`
	if err := os.WriteFile(file, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadArgs(
		[]string{"--config", file, "--language", "fr"},
		[]string{envTarget + "=env/target"},
	)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Language != "fr" {
		t.Fatalf("expected flag language, got %q", cfg.App.Language)
	}
	if cfg.App.Target != "env/target" {
		t.Fatalf("expected env target, got %q", cfg.App.Target)
	}
	if cfg.App.Document != "from-file.yaml" {
		t.Fatalf("expected file document, got %q", cfg.App.Document)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected footer disabled by file")
	}
	want := []widget.Binding{{Field: "body", Command: "extract-from-text"}}
	if diff := cmp.Diff(want, cfg.App.Commands); diff != "" {
		t.Fatalf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadArgsPositionalDocumentAndCommands(t *testing.T) {
	cfg, err := LoadArgs(
		[]string{"--command", "a=split-on-comma", "--command", "b = extract", "post.yaml"},
		[]string{envCommands + "=ignored=split-on-comma"},
	)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Document != "post.yaml" {
		t.Fatalf("expected positional document, got %q", cfg.App.Document)
	}
	want := []widget.Binding{{Field: "a", Command: "split-on-comma"}, {Field: "b", Command: "extract"}}
	if diff := cmp.Diff(want, cfg.App.Commands); diff != "" {
		t.Fatalf("commands mismatch (-want +got):\n%s", diff)
	}
	if cfg.Flags["commands"] != "a=split-on-comma;b=extract" {
		t.Fatalf("unexpected commands flag %q", cfg.Flags["commands"])
	}
}

func TestLoadArgsEnvCommands(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envCommands + "=x=split-on-comma; y=extract-from-text"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []widget.Binding{{Field: "x", Command: "split-on-comma"}, {Field: "y", Command: "extract-from-text"}}
	if diff := cmp.Diff(want, cfg.App.Commands); diff != "" {
		t.Fatalf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadArgsErrors(t *testing.T) {
	cases := [][]string{
		{"--width", "-1"},
		{"--height", "-5"},
		{"--command", "missing-separator"},
		{"a.yaml", "b.yaml"},
		{"--config", filepath.Join(t.TempDir(), "absent.yaml")},
	}
	for _, args := range cases {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestValidateRejectsUnknownCommands(t *testing.T) {
	cfg, err := LoadArgs([]string{"--command", "body=shout", "--target", ""}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	err = Validate(cfg)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{`unknown command "shout"`, "target field is required"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}
