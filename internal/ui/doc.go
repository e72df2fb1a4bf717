// Package ui contains the Bubble Tea program that edits a keyword form.
// The Model type focuses on message orchestration while the form, widget and
// keyword packages own their own state.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, mouse clicks, resizes, parse results).
//   - Key presses go to global shortcuts first, then to the keyword collection
//     while focus is inside it, then to the tab ring, command buttons and the
//     focused text input.
//   - Command buttons hand their parse request to the command bus
//     (internal/ui/command). The request runs as a tea.Cmd and its ParsedMsg
//     is applied to the widget back on the update loop.
//
// Focus ownership:
//   - A single focus.Manager decides which node holds focus. finishUpdate
//     mirrors that decision into the bubbles text inputs after every message
//     so exactly one input shows a cursor.
//
// Rendering walks the form tree, recording where each element lands so mouse
// clicks and viewport scrolling can be mapped back to elements.
package ui
