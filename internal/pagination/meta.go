package pagination

// Meta contains metadata about a rendered page.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	StartIndex  int  `json:"start_index"  yaml:"start_index"`
	LastIndex   int  `json:"last_index"   yaml:"last_index"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta builds metadata for state over a collection of length n.
// TotalItems reports the cached count held in state.
func NewMeta(state State, pageSize, n int) Meta {
	w := WindowFor(state.CurrentPage, pageSize)
	return Meta{
		CurrentPage: state.CurrentPage,
		PageSize:    pageSize,
		TotalPages:  TotalPages(state.TotalItems, pageSize),
		TotalItems:  state.TotalItems,
		StartIndex:  w.StartIndex,
		LastIndex:   w.LastIndex,
		HasPrevious: CanGoPrevious(state.CurrentPage),
		HasNext:     CanGoNext(w, n),
	}
}

// TotalPages returns ceil(total / pageSize), or 0 when either is non-positive.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	pages := total / pageSize
	if total%pageSize > 0 {
		pages++
	}
	return pages
}
