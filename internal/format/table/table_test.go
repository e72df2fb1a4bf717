package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"1", "apple", "fruit"},
		{"10", "kiwi", "x"},
	}
	got := Format(rows, []Alignment{AlignRight, AlignLeft, AlignLeft})
	want := []string{
		" 1  apple  fruit",
		"10  kiwi   x",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("format mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatMeasuresWideRunes(t *testing.T) {
	rows := [][]string{
		{"日本", "a"},
		{"ab", "b"},
	}
	got := Format(rows, nil)
	want := []string{
		"日本  a",
		"ab    b",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("format mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
