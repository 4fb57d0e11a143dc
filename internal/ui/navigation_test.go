package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stepmenu/stepmenu/internal/menu"
)

func demoMenu() *menu.Menu {
	return &menu.Menu{
		Sections: []*menu.Section{
			{Name: "A", Sections: []*menu.Section{
				{Name: "a", Label: "Alpha", Callback: "cb.a"},
				{Name: "b"},
			}},
			{Name: "B", Sections: []*menu.Section{
				{Name: "Ba", Sections: []*menu.Section{
					{Name: "Baa"},
				}},
			}},
		},
	}
}

func newTestModel(t *testing.T, callbacks map[string]menu.Callback) *Model {
	t.Helper()
	m := demoMenu()
	handler, err := menu.NewHandler(m, callbacks)
	if err != nil {
		t.Fatalf("NewHandler failed: %v", err)
	}
	return NewModel(m, handler, 80, 24, false, false)
}

func keyMsg(key tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: key}
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelStartsOnFirstSection(t *testing.T) {
	m := newTestModel(t, nil)
	if m.level == nil || len(m.level.Items) != 2 {
		t.Fatalf("expected two top-level items")
	}
	if m.level.Cursor != 0 || m.level.Items[0].Name != "A" {
		t.Fatalf("expected cursor on A, got %d/%v", m.level.Cursor, m.level.Items)
	}
}

func TestModelCyclesSiblingsOnArrowKeys(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(keyMsg(tea.KeyDown))
	if m.level.Cursor != 1 {
		t.Fatalf("expected cursor on B, got %d", m.level.Cursor)
	}
	m.Update(keyMsg(tea.KeyDown))
	if m.level.Cursor != 0 {
		t.Fatalf("expected wrap back to A, got %d", m.level.Cursor)
	}
	m.Update(keyMsg(tea.KeyUp))
	if m.level.Cursor != 1 {
		t.Fatalf("expected wrap to B on up, got %d", m.level.Cursor)
	}
}

func TestModelForwardDescendsAndUpdatesBreadcrumb(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(keyMsg(tea.KeyRight))
	if got := m.handler.Depth(); got != 2 {
		t.Fatalf("expected depth 2, got %d", got)
	}
	if m.level.Items[0].Label != "Alpha" {
		t.Fatalf("expected Alpha at cursor, got %v", m.level.Items)
	}
	if m.level.Title != "menu → A" {
		t.Fatalf("unexpected breadcrumb %q", m.level.Title)
	}
	m.Update(keyMsg(tea.KeyLeft))
	if got := m.handler.Depth(); got != 1 {
		t.Fatalf("expected return to depth 1, got %d", got)
	}
}

func TestModelShowsActivationResult(t *testing.T) {
	callbacks := map[string]menu.Callback{
		"cb.a": func() (string, bool) { return "tick", true },
	}
	m := newTestModel(t, callbacks)
	m.Update(keyMsg(tea.KeyRight)) // descend to Alpha
	m.Update(keyMsg(tea.KeyRight)) // leaf: activates
	if m.infoMsg != "tick" {
		t.Fatalf("expected activation result in info row, got %q", m.infoMsg)
	}
	if m.errMsg != "" {
		t.Fatalf("expected no error, got %q", m.errMsg)
	}
}

func TestModelShowsLookupErrors(t *testing.T) {
	m := newTestModel(t, map[string]menu.Callback{})
	m.Update(keyMsg(tea.KeyRight))
	m.Update(keyMsg(tea.KeyRight))
	if m.errMsg == "" {
		t.Fatalf("expected lookup error surfaced in error row")
	}
}

func TestModelSearchJumpsToBestMatch(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(runeMsg('/'))
	if m.mode != ModeSearch {
		t.Fatalf("expected search mode")
	}
	m.Update(runeMsg('B'))
	m.Update(keyMsg(tea.KeyEnter))
	if m.mode != ModeMenu {
		t.Fatalf("expected return to menu mode")
	}
	if path := m.handler.Path(); len(path) != 1 || path[0] != 1 {
		t.Fatalf("expected jump to B, path %v", path)
	}
	if m.level.Cursor != 1 {
		t.Fatalf("expected cursor on B, got %d", m.level.Cursor)
	}
}

func TestModelSearchEscapeCancels(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(runeMsg('/'))
	m.Update(keyMsg(tea.KeyEsc))
	if m.mode != ModeMenu {
		t.Fatalf("expected menu mode after escape")
	}
	if path := m.handler.Path(); path[0] != 0 {
		t.Fatalf("expected position unchanged, path %v", path)
	}
}

func TestModelEscapeGoesBack(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(keyMsg(tea.KeyRight))
	m.Update(keyMsg(tea.KeyEsc))
	if got := m.handler.Depth(); got != 1 {
		t.Fatalf("expected escape to return to depth 1, got %d", got)
	}
}

func TestModelQuitKeys(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := m.Update(runeMsg('q'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}
