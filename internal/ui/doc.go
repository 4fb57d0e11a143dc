// Package ui contains the Bubble Tea program that demonstrates the menu
// navigator. The Model never mutates navigation state itself: every key press
// maps to one of the handler's operations (Back, Forward, Next, Previous) and
// the model then mirrors the handler's position into display state.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Key presses are routed by mode: menu mode feeds the navigation
//     operations (internal/ui/navigation.go), search mode feeds the
//     textinput until the query is submitted.
//   - After every operation the model rebuilds its display level from the
//     handler's path: sibling items, cursor, breadcrumb, and viewport.
//
// Activation is detected by the position staying put on a Forward or Back:
// the returned text (callback result or label fallback) is surfaced in the
// info row, lookup errors in the error row.
//
// The search jump never touches the path directly; it cycles the handler
// with repeated Next() calls until the cursor lands on the best fuzzy match,
// so the state machine remains the single source of movement.
package ui
