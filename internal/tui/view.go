package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current view (Bubble Tea interface).
func (m *PageListModel) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}

	v := NewListView(m.Page(), m.Meta())
	v.Focus = m.focus
	v.Footer = m.renderFooter(len(v.Items))
	v.Width = m.width

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderStyled(v),
		SubtleStyle.MaxWidth(m.width).Render(helpText),
	)
}

// renderFooter displays the paginator when the page is in range, and the raw
// page number otherwise. Nothing is shown until the collection is counted.
func (m *PageListModel) renderFooter(visible int) string {
	if !m.mounted {
		return ""
	}
	meta := m.Meta()
	showing := FormatShowing(meta, visible)

	if meta.TotalPages > 0 && meta.CurrentPage >= 1 && meta.CurrentPage <= meta.TotalPages {
		return fmt.Sprintf("Page %s · %s", m.paginator.View(), showing)
	}
	return fmt.Sprintf("Page %s/%s · %s", FormatCount(meta.CurrentPage), FormatCount(meta.TotalPages), showing)
}
