package tui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/pagelist/internal/pagination"
)

// printer is the locale-aware message printer for counts.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatCount formats n with thousand separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatShowing describes which items of the collection are on screen,
// e.g. "Showing 6-10 of 25". visible is the number of items on the page.
func FormatShowing(meta pagination.Meta, visible int) string {
	total := FormatCount(meta.TotalItems)
	if visible == 0 {
		return "Showing 0 of " + total
	}
	first := FormatCount(meta.StartIndex + 1)
	last := FormatCount(meta.StartIndex + visible)
	return "Showing " + first + "-" + last + " of " + total
}
