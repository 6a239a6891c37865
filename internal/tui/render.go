package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/pagelist/internal/pagination"
)

// listTitle is the heading rendered above the list.
const listTitle = "Pagination"

// Button labels.
const (
	labelPrevious = "Previous"
	labelNext     = "Next"
)

// msgEmptyPage is shown when the current page has no items.
const msgEmptyPage = "No items on this page."

// ListView is everything needed to draw one page of the list.
type ListView struct {
	Title       string
	Items       []string
	HasPrevious bool
	HasNext     bool
	// Focus is labelPrevious, labelNext, or "" for no focused button.
	Focus  string
	Footer string
	// Width truncates every rendered line when positive.
	Width int
}

// NewListView builds a ListView for a page and its metadata.
func NewListView(page pagination.Page[string], meta pagination.Meta) ListView {
	return ListView{
		Title:       listTitle,
		Items:       page.Items,
		HasPrevious: page.HasPrevious,
		HasNext:     page.HasNext,
		Footer:      pageFooter(meta, len(page.Items)),
	}
}

// pageFooter renders "Page 2/5 · Showing 6-10 of 25".
func pageFooter(meta pagination.Meta, visible int) string {
	return fmt.Sprintf("Page %s/%s · %s",
		FormatCount(meta.CurrentPage), FormatCount(meta.TotalPages), FormatShowing(meta, visible))
}

// RenderStyled draws v with Lip Gloss styles.
func RenderStyled(v ListView) string {
	sections := []string{HeaderStyle.Render(v.Title)}

	if len(v.Items) == 0 {
		sections = append(sections, InfoStyle.Render(msgEmptyPage))
	} else {
		lines := make([]string, len(v.Items))
		for i, item := range v.Items {
			lines[i] = ItemStyle.Render("• " + item)
		}
		sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		renderButton(labelPrevious, v.HasPrevious, v.Focus == labelPrevious),
		buttonGap,
		renderButton(labelNext, v.HasNext, v.Focus == labelNext),
	)
	sections = append(sections, buttons)

	if v.Footer != "" {
		sections = append(sections, SubtleStyle.Render(v.Footer))
	}

	return lipgloss.NewStyle().MaxWidth(v.Width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func renderButton(label string, enabled, focused bool) string {
	switch {
	case !enabled:
		return ButtonDisabledStyle.Render(label)
	case focused:
		return ButtonFocusedStyle.Render(label)
	default:
		return ButtonStyle.Render(label)
	}
}

// RenderPlain draws v as unstyled text.
func RenderPlain(v ListView) string {
	var b strings.Builder

	b.WriteString(v.Title)
	b.WriteString("\n\n")

	if len(v.Items) == 0 {
		b.WriteString(msgEmptyPage)
		b.WriteString("\n")
	}
	for _, item := range v.Items {
		b.WriteString("  - ")
		b.WriteString(item)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(plainButton(labelPrevious, v.HasPrevious))
	b.WriteString(" ")
	b.WriteString(plainButton(labelNext, v.HasNext))
	b.WriteString("\n")

	if v.Footer != "" {
		b.WriteString(v.Footer)
		b.WriteString("\n")
	}
	return b.String()
}

func plainButton(label string, enabled bool) string {
	if enabled {
		return "[" + label + "]"
	}
	return "[" + label + ": disabled]"
}
