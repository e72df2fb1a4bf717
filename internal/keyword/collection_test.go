package keyword

import (
	"testing"

	"github.com/atomicstack/keyword-editor/internal/focus"
	"github.com/google/go-cmp/cmp"
)

// stubNode is a plain focus tree node used to host a collection in tests.
type stubNode struct {
	name      string
	parent    focus.Node
	children  []focus.Node
	focusable bool
}

func (n *stubNode) Parent() focus.Node     { return n.parent }
func (n *stubNode) Children() []focus.Node { return n.children }
func (n *stubNode) CanFocus() bool         { return n.focusable }
func (n *stubNode) Describe() string       { return n.name }

type fixture struct {
	mgr     *focus.Manager
	root    *stubNode
	input   *stubNode
	list    *Collection
	updates int
}

// newFixture builds root → [input, collection] with the input focusable.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{mgr: focus.NewManager()}
	f.root = &stubNode{name: "root"}
	f.input = &stubNode{name: "input", parent: f.root, focusable: true}
	f.list = New(Params{
		RemoveDescription: "Remove keyword",
		EmptyText:         "(none)",
		Focus:             f.mgr,
		Parent:            f.root,
	}, Callbacks{OnUpdated: func() { f.updates++ }})
	f.root.children = []focus.Node{f.input, f.list}
	return f
}

func assertKeywords(t *testing.T, c *Collection, want ...string) {
	t.Helper()
	if want == nil {
		want = []string{}
	}
	if diff := cmp.Diff(want, c.Keywords()); diff != "" {
		t.Fatalf("keywords mismatch (-want +got):\n%s", diff)
	}
}

func assertFocusIndex(t *testing.T, c *Collection, want int) {
	t.Helper()
	got, ok := c.FocusIndex()
	if !ok {
		t.Fatalf("expected focus index %d, collection is empty", want)
	}
	if got != want {
		t.Fatalf("expected focus index %d, got %d", want, got)
	}
}

func TestAddKeywordsSortsAndDeduplicates(t *testing.T) {
	f := newFixture(t)
	f.list.AddKeywords([]string{"pear", "apple", "pear", " fig ", "", "   "})
	assertKeywords(t, f.list, "apple", "fig", "pear")
	f.list.AddKeywords([]string{"apple", "banana"})
	assertKeywords(t, f.list, "apple", "banana", "fig", "pear")
	if f.updates != 2 {
		t.Fatalf("expected one update per batch, got %d", f.updates)
	}
}

func TestAddKeywordsIsCaseSensitive(t *testing.T) {
	f := newFixture(t)
	f.list.AddKeywords([]string{"go", "Go", "GO"})
	assertKeywords(t, f.list, "GO", "Go", "go")
}

func TestAddKeywordsIdempotentReAdd(t *testing.T) {
	f := newFixture(t)
	f.list.AddKeywords([]string{"x"})
	f.list.AddKeywords([]string{"x"})
	assertKeywords(t, f.list, "x")
	if f.updates != 2 {
		t.Fatalf("expected update even when nothing was added, got %d", f.updates)
	}
}

func TestAddKeywordsEmptyBatchStillNotifies(t *testing.T) {
	f := newFixture(t)
	f.list.AddKeywords(nil)
	if f.updates != 1 {
		t.Fatalf("expected 1 update, got %d", f.updates)
	}
	if f.list.CanFocus() {
		t.Fatalf("expected empty container to stay out of the tab order")
	}
}

func TestStringRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.list.AddKeywords([]string{"b", "a", "c"})
	if got := f.list.String(); got != "a,b,c" {
		t.Fatalf("expected a,b,c, got %q", got)
	}
}

func TestUniquenessAndOrderAcrossBatches(t *testing.T) {
	f := newFixture(t)
	batches := [][]string{
		{"delta", "alpha", "delta"},
		{"charlie", "alpha", "bravo"},
		{"Zulu", "echo", "bravo", "echo"},
		{},
	}
	for _, batch := range batches {
		f.list.AddKeywords(batch)
		got := f.list.Keywords()
		seen := map[string]bool{}
		for i, label := range got {
			if seen[label] {
				t.Fatalf("duplicate label %q in %v", label, got)
			}
			seen[label] = true
			if i > 0 && got[i-1] > label {
				t.Fatalf("labels out of order: %v", got)
			}
		}
	}
	assertKeywords(t, f.list, "Zulu", "alpha", "bravo", "charlie", "delta", "echo")
}

func TestEntryDescription(t *testing.T) {
	f := newFixture(t)
	f.list.AddKeywords([]string{"apple"})
	item := f.list.Items()[0]
	if got := item.Description(); got != "apple. Remove keyword" {
		t.Fatalf("unexpected description %q", got)
	}
}

func TestRemoveBeforeFocusShiftsIndex(t *testing.T) {
	f := newFixture(t)
	f.list.AddKeywords([]string{"a", "b", "c"})
	f.list.Focus(1)
	if !f.list.Remove("a") {
		t.Fatalf("expected a to be removed")
	}
	assertKeywords(t, f.list, "b", "c")
	assertFocusIndex(t, f.list, 0)
	if item := f.list.Items()[0]; !item.Focused() || !item.Tabbable() {
		t.Fatalf("expected b to keep focus and be tabbable")
	}
}

func TestRemoveAfterFocusKeepsIndex(t *testing.T) {
	f := newFixture(t)
	f.list.AddKeywords([]string{"a", "b", "c"})
	f.list.Focus(1)
	f.list.Remove("c")
	assertKeywords(t, f.list, "a", "b")
	assertFocusIndex(t, f.list, 1)
	if item := f.list.Items()[1]; item.Label() != "b" || !item.Focused() {
		t.Fatalf("expected b to stay focused")
	}
}

func TestRemoveUnknownLabel(t *testing.T) {
	f := newFixture(t)
	f.list.AddKeywords([]string{"a"})
	before := f.updates
	if f.list.Remove("zzz") {
		t.Fatalf("expected unknown label to report false")
	}
	if f.updates != before {
		t.Fatalf("expected no update for unknown label")
	}
}

func TestKeyboardRemovalRefocusesSamePosition(t *testing.T) {
	f := newFixture(t)
	f.list.AddKeywords([]string{"a", "b", "c"})
	f.list.Focus(1)
	f.list.ActivateAt(1, SourceKeyboard)
	assertKeywords(t, f.list, "a", "c")
	assertFocusIndex(t, f.list, 1)
	if item, ok := f.list.FocusedItem(); !ok || item.Label() != "c" {
		t.Fatalf("expected c focused after keyboard removal")
	}

	f.list.ActivateAt(1, SourceKeyboard)
	assertKeywords(t, f.list, "a")
	if item, ok := f.list.FocusedItem(); !ok || item.Label() != "a" {
		t.Fatalf("expected a focused after removing the last item")
	}
}

func TestPointerRemovalMovesFocusToContainer(t *testing.T) {
	f := newFixture(t)
	f.list.AddKeywords([]string{"a", "b"})
	f.list.Focus(0)
	f.list.ActivateAt(0, SourcePointer)
	assertKeywords(t, f.list, "b")
	if !f.list.Focused() {
		t.Fatalf("expected container focused after the focused item was clicked away")
	}
}

func TestRemovingLastEntryDelegatesFocus(t *testing.T) {
	f := newFixture(t)
	f.list.AddKeywords([]string{"only"})
	f.list.Focus(0)
	f.list.ActivateAt(0, SourceKeyboard)
	if f.list.Len() != 0 {
		t.Fatalf("expected empty collection")
	}
	if !f.mgr.Has(f.input) {
		t.Fatalf("expected focus delegated to the input before the collection")
	}
	if f.list.CanFocus() || f.list.Expanded() {
		t.Fatalf("expected collapsed container out of the tab order")
	}
	if _, ok := f.list.FocusIndex(); ok {
		t.Fatalf("expected no focus index when empty")
	}

	f.list.AddKeywords([]string{"again"})
	if !f.list.CanFocus() {
		t.Fatalf("expected container back in the tab order after adding")
	}
}

func TestRemovingLastEntryWithoutFocusableNeighbour(t *testing.T) {
	f := newFixture(t)
	f.input.focusable = false
	f.list.AddKeywords([]string{"only"})
	f.list.Focus(0)
	f.list.ActivateAt(0, SourceKeyboard)
	if f.mgr.Current() != nil {
		t.Fatalf("expected focus dropped, got %v", f.mgr.Current())
	}
}

func TestFocusClampsAndMarksOneTabbable(t *testing.T) {
	f := newFixture(t)
	f.list.AddKeywords([]string{"a", "b", "c"})
	f.list.Focus(10)
	assertFocusIndex(t, f.list, 2)
	tabbable := 0
	for _, item := range f.list.Items() {
		if item.Tabbable() {
			tabbable++
		}
	}
	if tabbable != 1 {
		t.Fatalf("expected exactly one tabbable item, got %d", tabbable)
	}
	if !f.list.Items()[2].Focused() {
		t.Fatalf("expected c focused")
	}
}

func TestFocusOnEmptyDelegates(t *testing.T) {
	f := newFixture(t)
	f.list.Focus(0)
	if !f.mgr.Has(f.input) {
		t.Fatalf("expected delegation to input")
	}
}

func TestSortKeepsFocusedEntryWhenNotFirst(t *testing.T) {
	f := newFixture(t)
	f.list.AddKeywords([]string{"b", "d"})
	f.list.Focus(1)
	f.list.AddKeywords([]string{"c", "a"})
	assertKeywords(t, f.list, "a", "b", "c", "d")
	assertFocusIndex(t, f.list, 3)
	if !f.list.Items()[3].Tabbable() {
		t.Fatalf("expected d to remain the tabbable item")
	}
}

func TestSortKeepsPositionZeroSticky(t *testing.T) {
	f := newFixture(t)
	f.list.AddKeywords([]string{"b", "d"})
	f.list.Focus(0)
	f.list.AddKeywords([]string{"a"})
	assertKeywords(t, f.list, "a", "b", "d")
	assertFocusIndex(t, f.list, 0)
	if !f.list.Items()[0].Tabbable() {
		t.Fatalf("expected the new first item to be tabbable")
	}
}

func TestScenarioPersistedAddRemove(t *testing.T) {
	f := newFixture(t)
	f.list.AddKeywords(SplitPersisted("zebra,apple"))
	assertKeywords(t, f.list, "apple", "zebra")
	f.list.AddKeywords([]string{"mango"})
	assertKeywords(t, f.list, "apple", "mango", "zebra")
	f.list.Remove("apple")
	assertKeywords(t, f.list, "mango", "zebra")
	if f.updates != 3 {
		t.Fatalf("expected 3 updates, got %d", f.updates)
	}
}

func TestViewRendersEmptyText(t *testing.T) {
	f := newFixture(t)
	if got := f.list.View(40); got == "" {
		t.Fatalf("expected empty text rendered")
	}
}
