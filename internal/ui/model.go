package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stepmenu/stepmenu/internal/menu"
	"github.com/stepmenu/stepmenu/internal/theme"
	"github.com/stepmenu/stepmenu/internal/ui/state"
)

type level = state.Level

type Mode int

const (
	ModeMenu Mode = iota
	ModeSearch
)

const menuHeaderSeparator = "→"

var styles = theme.Default()

// Model implements the Bubble Tea model for the menu navigator demo. All
// movement goes through the menu.Handler; the model only mirrors the
// handler's position into display state.
type Model struct {
	menu        *menu.Menu
	handler     *menu.Handler
	level       *level
	mode        Mode
	search      textinput.Model
	errMsg      string
	infoMsg     string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
}

// NewModel initialises the UI state over a built menu and its handler.
func NewModel(m *menu.Menu, handler *menu.Handler, width, height int, showFooter, verbose bool) *Model {
	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search"
	mdl := &Model{
		menu:       m,
		handler:    handler,
		search:     search,
		mode:       ModeMenu,
		showFooter: showFooter,
		verbose:    verbose,
	}
	if width > 0 {
		mdl.width = width
		mdl.fixedWidth = true
	}
	if height > 0 {
		mdl.height = height
		mdl.fixedHeight = true
	}
	mdl.syncLevel()
	return mdl
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.fixedWidth {
			m.width = msg.Width
		}
		if !m.fixedHeight {
			m.height = msg.Height
		}
		m.syncViewport()
		return m, nil
	case tea.KeyMsg:
		if m.mode == ModeSearch {
			return m, m.handleSearchKey(msg)
		}
		return m, m.handleMenuKey(msg)
	}
	return m, nil
}

// syncLevel rebuilds the display level from the handler's position.
func (m *Model) syncLevel() {
	path := m.handler.Path()
	items := menu.SiblingsAt(m.menu, path)
	cursor := path[len(path)-1]
	title := m.breadcrumb(path)
	m.level = state.NewLevel(title, items, cursor)
	m.syncViewport()
}

func (m *Model) syncViewport() {
	if m.level != nil {
		m.level.EnsureCursorVisible(m.maxVisibleItems())
	}
}

// breadcrumb renders the ancestor trail for the header, ending on the group
// that contains the current position.
func (m *Model) breadcrumb(path []int) string {
	title := "menu"
	sections := m.menu.Sections
	for _, idx := range path[:len(path)-1] {
		sec := sections[idx]
		title += " " + menuHeaderSeparator + " " + sec.Display()
		sections = sec.Sections
	}
	return title
}
