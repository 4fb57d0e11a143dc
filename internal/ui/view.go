package ui

import (
	"strings"

	"github.com/muesli/reflow/truncate"
)

const (
	itemIndicator         = "  "
	selectedItemIndicator = "> "
	branchMarker          = " ▸"
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderLine(styles.Header.Render(m.headerText())))
	b.WriteString("\n")

	if m.mode == ModeSearch {
		b.WriteString(m.renderLine(styles.SearchPrompt.Render(m.search.View())))
		b.WriteString("\n")
	}

	for _, line := range m.renderItems() {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.infoMsg != "" {
		b.WriteString(m.renderLine(styles.Info.Render(m.infoMsg)))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(m.renderLine(styles.Error.Render(m.errMsg)))
		b.WriteString("\n")
	}
	if m.showFooter {
		b.WriteString(m.renderLine(styles.Footer.Render(footerHint)))
		b.WriteString("\n")
	}
	return b.String()
}

const footerHint = "↑/↓ cycle · →/enter forward · ← back · / search · q quit"

func (m *Model) headerText() string {
	if m.level == nil {
		return "menu"
	}
	return m.level.Title
}

func (m *Model) renderItems() []string {
	if m.level == nil || len(m.level.Items) == 0 {
		return []string{m.renderLine(styles.Info.Render("No entries found."))}
	}
	maxVisible := m.maxVisibleItems()
	start := m.level.ViewportOffset
	end := len(m.level.Items)
	if maxVisible > 0 && start+maxVisible < end {
		end = start + maxVisible
	}
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		item := m.level.Items[i]
		var line string
		if i == m.level.Cursor {
			line = styles.SelectedItemIndicator.Render(selectedItemIndicator) + styles.SelectedItem.Render(item.Label)
		} else {
			line = styles.ItemIndicator.Render(itemIndicator) + styles.Item.Render(item.Label)
		}
		if item.Branch {
			line += styles.BranchMarker.Render(branchMarker)
		}
		lines = append(lines, m.renderLine(line))
	}
	return lines
}

// renderLine truncates a styled line to the viewport width, ANSI-aware.
func (m *Model) renderLine(line string) string {
	if m.width <= 0 {
		return line
	}
	return truncate.String(line, uint(m.width))
}

// maxVisibleItems reports how many item rows fit under the header and above
// the info/error/footer rows.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return 0
	}
	chrome := 1 // header
	if m.mode == ModeSearch {
		chrome++
	}
	if m.infoMsg != "" {
		chrome++
	}
	if m.errMsg != "" {
		chrome++
	}
	if m.showFooter {
		chrome++
	}
	visible := m.height - chrome
	if visible < 1 {
		visible = 1
	}
	return visible
}
