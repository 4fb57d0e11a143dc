package menu

import (
	"fmt"

	"github.com/stepmenu/stepmenu/internal/logging/events"
)

// Handler tracks a single user's navigation through an immutable Menu. The
// position is a path of sibling indices from the root; the path is the only
// mutable state, so one Handler per session may share a Menu freely.
//
// Moving onto a node and activating it are distinct: a node's callback fires
// only when a movement re-enters a node that cannot be descended or ascended
// further, i.e. Forward on a leaf or Back at the root boundary.
type Handler struct {
	menu      *Menu
	callbacks map[string]Callback
	path      []int
}

// NewHandler builds a navigator positioned on the first top-level section.
// The callbacks map may be nil when the menu declares no callback identifiers.
func NewHandler(m *Menu, callbacks map[string]Callback) (*Handler, error) {
	if m == nil || len(m.Sections) == 0 {
		return nil, fmt.Errorf("menu handler requires a menu with at least one section")
	}
	return &Handler{
		menu:      m,
		callbacks: callbacks,
		path:      []int{0},
	}, nil
}

// Path returns a copy of the current index path.
func (h *Handler) Path() []int {
	return append([]int(nil), h.path...)
}

// Depth returns the current navigation depth (path length).
func (h *Handler) Depth() int {
	return len(h.path)
}

// Back moves one level up. At the root boundary the position is unchanged and
// the current node is activated instead: a second Back on a top-level section
// fires its callback (or the menu's, when the section has none).
func (h *Handler) Back() (string, bool, error) {
	useCallback := false
	if len(h.path) > 1 {
		h.path = h.path[:len(h.path)-1]
	} else {
		useCallback = true
	}
	events.Nav.Back(h.path, useCallback)
	return h.CurrentLocation(useCallback)
}

// Forward descends into the first child of the current section. On a leaf the
// position is unchanged and the leaf is activated instead: a second Forward
// on a leaf fires its callback.
func (h *Handler) Forward() (string, bool, error) {
	useCallback := false
	if sec := h.locate(); sec.Leaf() {
		useCallback = true
	} else {
		h.path = append(h.path, 0)
	}
	events.Nav.Forward(h.path, useCallback)
	return h.CurrentLocation(useCallback)
}

// Next moves to the following sibling, wrapping past the last one. Sibling
// cycling never activates.
func (h *Handler) Next() (string, bool, error) {
	siblings := h.siblings()
	last := len(h.path) - 1
	h.path[last] = (h.path[last] + 1) % len(siblings)
	events.Nav.Next(h.path)
	return h.CurrentLocation(false)
}

// Previous moves to the preceding sibling, wrapping before the first one.
func (h *Handler) Previous() (string, bool, error) {
	siblings := h.siblings()
	last := len(h.path) - 1
	h.path[last] = (h.path[last] + len(siblings) - 1) % len(siblings)
	events.Nav.Previous(h.path)
	return h.CurrentLocation(false)
}

// CurrentLocation resolves the node at the current path. Without useCallback
// it returns the node's label-or-name. With useCallback it invokes the node's
// callback and returns the result verbatim, including the no-result signal;
// at the root boundary the top-level section's callback takes precedence and
// the menu's callback is the fallback when the section declares none. A
// declared identifier missing from the registry is a lookup error.
func (h *Handler) CurrentLocation(useCallback bool) (string, bool, error) {
	sec := h.locate()
	if useCallback {
		id := sec.Callback
		if len(h.path) == 1 && id == "" {
			id = h.menu.Callback
		}
		if id != "" {
			return h.invoke(sec.Name, id)
		}
	}
	return sec.Display(), true, nil
}

func (h *Handler) invoke(name, id string) (string, bool, error) {
	cb, ok := h.callbacks[id]
	if !ok {
		return "", false, fmt.Errorf("no callback registered for %q", id)
	}
	events.Nav.Activate(name, id)
	text, ok := cb()
	return text, ok, nil
}

// locate performs the array-indexed descent to the section addressed by the
// current path. Indices are always in range by construction: Forward only
// appends 0 and Next/Previous stay within the sibling count.
func (h *Handler) locate() *Section {
	return SectionAt(h.menu, h.path)
}

// siblings returns the sibling group containing the current section: the
// top-level sections at depth one, otherwise the enclosing section's children.
func (h *Handler) siblings() []*Section {
	sections := h.menu.Sections
	for _, idx := range h.path[:len(h.path)-1] {
		sections = sections[idx].Sections
	}
	return sections
}
