package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/keyword-editor/internal/form"
	"github.com/atomicstack/keyword-editor/internal/testutil"
	"github.com/atomicstack/keyword-editor/internal/widget"
	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func testConfig(doc string) Config {
	return Config{
		Document: doc,
		Target:   "keywords",
		Language: "en",
		Commands: []widget.Binding{
			{Field: "description", Command: "extract-from-text"},
			{Field: "keywordInput", Command: "split-on-comma"},
		},
	}
}

func TestOpenAddSaveKeepsUnknownEntries(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.yaml")
	writeFile(t, doc, "title: Hello\nkeywords: zebra,apple\nlegacy: keep me\n")

	cfg := testConfig(doc)
	cfg.Add = "mango, apple"
	s, err := Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	saved, err := form.LoadDocument(doc)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	want := form.Document{
		"title":        "Hello",
		"description":  "",
		"keywordInput": "",
		"keywords":     "apple,mango,zebra",
		"legacy":       "keep me",
	}
	if diff := cmp.Diff(want, saved); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintListsKeywords(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.yaml")
	writeFile(t, doc, "keywords: b,a,c,d,e,f,g,h,i,j\n")
	s, err := Open(testConfig(doc))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	var buf bytes.Buffer
	if err := s.Print(&buf); err != nil {
		t.Fatalf("print: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 10 || lines[0] != " 1  a" || lines[9] != "10  j" {
		t.Fatalf("unexpected listing:\n%s", buf.String())
	}
}

func TestOpenWithSchemaFile(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "schema.yaml")
	writeFile(t, schema, `
title: Post
fields:
  - name: meta
    type: group
    fields:
      - name: tags
        type: hidden
  - name: body
    type: textarea
`)
	cfg := Config{
		Document:   filepath.Join(dir, "missing.yaml"),
		SchemaPath: schema,
		Target:     "meta/tags",
		Commands:   []widget.Binding{{Field: "body", Command: "split-on-comma"}, {Field: "nope", Command: "split-on-comma"}},
		Add:        "x,y",
	}
	s, err := Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got := s.Widget.Collection().String(); got != "x,y" {
		t.Fatalf("unexpected keywords %q", got)
	}
	var buf bytes.Buffer
	if err := s.Print(&buf); err != nil {
		t.Fatalf("print: %v", err)
	}
	if !strings.Contains(buf.String(), "Source field nope could not be found.") {
		t.Fatalf("expected notice in listing:\n%s", buf.String())
	}
}

func TestOpenRejectsBrokenSchema(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "schema.yaml")
	writeFile(t, schema, "fields:\n  - name: a\n    type: checkbox\n")
	cfg := testConfig(filepath.Join(dir, "doc.yaml"))
	cfg.SchemaPath = schema
	if _, err := Open(cfg); err == nil {
		t.Fatalf("expected schema error")
	}
}

func TestPrintMatchesGolden(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.yaml")
	writeFile(t, doc, "keywords: beta,gamma,alpha\n")
	cfg := testConfig(doc)
	cfg.Commands = append(cfg.Commands, widget.Binding{Field: "summary", Command: "split-on-comma"})
	s, err := Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	var buf bytes.Buffer
	if err := s.Print(&buf); err != nil {
		t.Fatalf("print: %v", err)
	}
	testutil.AssertGolden(t, "list.golden", buf.String())
}
