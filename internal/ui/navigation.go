package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stepmenu/stepmenu/internal/ui/state"
)

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "up":
		m.step(m.handler.Previous, false)
	case "down":
		m.step(m.handler.Next, false)
	case "right", "enter":
		m.step(m.handler.Forward, true)
	case "left", "esc", "backspace":
		m.step(m.handler.Back, true)
	case "/":
		m.mode = ModeSearch
		m.search.Reset()
		m.search.Focus()
		return textinput.Blink
	}
	return nil
}

// step runs one navigation operation, detecting activation by the position
// staying put on an operation that can hit a terminal point, and mirrors the
// outcome into the display state.
func (m *Model) step(op func() (string, bool, error), canActivate bool) {
	before := m.handler.Path()
	text, ok, err := op()
	if err != nil {
		m.errMsg = err.Error()
		m.syncLevel()
		return
	}
	m.errMsg = ""
	after := m.handler.Path()
	switch {
	case canActivate && pathsEqual(before, after):
		// terminal input repeated: the node was activated
		if ok {
			m.infoMsg = text
		} else {
			m.infoMsg = ""
		}
	case m.verbose && ok:
		m.infoMsg = text
	default:
		m.infoMsg = ""
	}
	m.syncLevel()
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.mode = ModeMenu
		m.search.Blur()
		return nil
	case "enter":
		query := m.search.Value()
		m.mode = ModeMenu
		m.search.Blur()
		m.jumpTo(query)
		return nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return cmd
}

// jumpTo cycles the current sibling group onto the best match for the query.
// The jump is expressed as repeated Next() calls so every move still flows
// through the navigation state machine.
func (m *Model) jumpTo(query string) {
	if m.level == nil || len(m.level.Items) == 0 {
		return
	}
	target := state.BestMatchIndex(m.level.Items, query)
	if target < 0 {
		m.infoMsg = "no match for " + query
		return
	}
	path := m.handler.Path()
	current := path[len(path)-1]
	n := len(m.level.Items)
	steps := (target - current + n) % n
	for i := 0; i < steps; i++ {
		if _, _, err := m.handler.Next(); err != nil {
			m.errMsg = err.Error()
			break
		}
	}
	m.infoMsg = ""
	m.syncLevel()
}

func pathsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
