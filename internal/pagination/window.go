package pagination

import "math"

// Window is the half-open index range [StartIndex, LastIndex) of one page.
// LastIndex may exceed the collection length; slicing truncates.
type Window struct {
	StartIndex int `json:"start_index" yaml:"start_index"`
	LastIndex  int `json:"last_index"  yaml:"last_index"`
}

// Page is the visible part of a collection for a given state.
type Page[T any] struct {
	Items       []T
	Window      Window
	HasPrevious bool
	HasNext     bool
}

// WindowFor returns the index range of page for the given page size.
// Indices saturate at the int bounds, so a huge page lies past the end of
// any collection instead of wrapping around.
func WindowFor(page, pageSize int) Window {
	start := mulSat(addSat(page, -1), pageSize)
	return Window{
		StartIndex: start,
		LastIndex:  addSat(start, pageSize),
	}
}

// Slice returns items[w.StartIndex:w.LastIndex] with both bounds clamped to
// [0, len(items)]. A window starting at or past the end yields an empty slice.
func Slice[T any](items []T, w Window) []T {
	start := clamp(w.StartIndex, 0, len(items))
	end := clamp(w.LastIndex, 0, len(items))
	if start >= end {
		return []T{}
	}
	return items[start:end]
}

// CanGoPrevious reports whether the Previous control is enabled.
// It is disabled only on page 1.
func CanGoPrevious(currentPage int) bool {
	return currentPage != DefaultPage
}

// CanGoNext reports whether the Next control is enabled for a window over a
// collection of length n.
func CanGoNext(w Window, n int) bool {
	return w.LastIndex < n
}

// Paginate derives the visible page of items for state.
// Next availability is computed against len(items), not state.TotalItems.
func Paginate[T any](items []T, state State, pageSize int) Page[T] {
	w := WindowFor(state.CurrentPage, pageSize)
	return Page[T]{
		Items:       Slice(items, w),
		Window:      w,
		HasPrevious: CanGoPrevious(state.CurrentPage),
		HasNext:     CanGoNext(w, len(items)),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func addSat(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	}
	return a + b
}

func mulSat(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		if (a > 0) == (b > 0) {
			return math.MaxInt
		}
		return math.MinInt
	}
	return c
}
