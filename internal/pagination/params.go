package pagination

import (
	"errors"
	"fmt"
)

// Defaults and validation limits.
const (
	DefaultPage      = 1
	MinPage          = 1
	DefaultPageSize  = 5
	MinPageSize      = 1
	MaxPageSize      = 1000
	DefaultItemCount = 25
	MinItemCount     = 0
	MaxItemCount     = 100000
)

// Common validation errors.
var (
	ErrInvalidPage      = errors.New("page must be >= 1")
	ErrInvalidPageSize  = errors.New("page-size must be between 1 and 1000")
	ErrInvalidItemCount = errors.New("items must be between 0 and 100000")
)

// Params holds the list flags supplied on the command line.
type Params struct {
	// Page is the 1-based page to open on.
	Page int

	// PageSize is the number of items shown per page.
	PageSize int

	// ItemCount is the length of the generated collection.
	ItemCount int
}

// NewParams creates Params with default values.
func NewParams() *Params {
	return &Params{
		Page:      DefaultPage,
		PageSize:  DefaultPageSize,
		ItemCount: DefaultItemCount,
	}
}

// Validate checks the parameters are within bounds.
// A page past the last one is valid and renders as an empty page.
func (p Params) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	if p.ItemCount < MinItemCount || p.ItemCount > MaxItemCount {
		return fmt.Errorf("%w: got %d", ErrInvalidItemCount, p.ItemCount)
	}
	return nil
}
