// Package keyword owns the canonical keyword collection behind the keyword
// widget: a de-duplicated set of labels kept in ascending ordinal order and
// rendered as a list of removable, focusable items.
//
// State ownership:
//   - Collection holds the entries and every piece of derived state (focus
//     index, expanded flag, container tab stop). The rendered list is a pure
//     projection of that state; nothing is ever read back from a view.
//   - ListItem only reports activation. Removing the entry, moving focus and
//     notifying the host are the collection's job.
//
// Focus follows the roving tabindex pattern: the collection container is a
// single tab stop while it holds entries, and when expanded exactly one item
// is tabbable at a time. Arrow keys move that item; when the last entry goes
// away focus is handed to the closest focusable node before the collection.
//
// Every add batch and every removal fires Callbacks.OnUpdated exactly once,
// after the collection has settled, so the host can serialize String() into
// its persisted field.
package keyword
