package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagelist/internal/pagination"
)

// TestNewParams verifies defaults reproduce 25 items at 5 per page.
func TestNewParams(t *testing.T) {
	p := pagination.NewParams()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 5, p.PageSize)
	assert.Equal(t, 25, p.ItemCount)
	require.NoError(t, p.Validate())
}

// TestParams_Validate covers each bound.
func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  pagination.Params
		wantErr error
	}{
		{name: "valid defaults", params: pagination.Params{Page: 1, PageSize: 5, ItemCount: 25}},
		{name: "page past the end is valid", params: pagination.Params{Page: 40, PageSize: 5, ItemCount: 25}},
		{name: "empty collection is valid", params: pagination.Params{Page: 1, PageSize: 5, ItemCount: 0}},
		{name: "max page size", params: pagination.Params{Page: 1, PageSize: 1000, ItemCount: 25}},
		{
			name:    "page zero",
			params:  pagination.Params{Page: 0, PageSize: 5, ItemCount: 25},
			wantErr: pagination.ErrInvalidPage,
		},
		{
			name:    "negative page",
			params:  pagination.Params{Page: -1, PageSize: 5, ItemCount: 25},
			wantErr: pagination.ErrInvalidPage,
		},
		{
			name:    "page size zero",
			params:  pagination.Params{Page: 1, PageSize: 0, ItemCount: 25},
			wantErr: pagination.ErrInvalidPageSize,
		},
		{
			name:    "page size too large",
			params:  pagination.Params{Page: 1, PageSize: 1001, ItemCount: 25},
			wantErr: pagination.ErrInvalidPageSize,
		},
		{
			name:    "negative item count",
			params:  pagination.Params{Page: 1, PageSize: 5, ItemCount: -1},
			wantErr: pagination.ErrInvalidItemCount,
		},
		{
			name:    "item count too large",
			params:  pagination.Params{Page: 1, PageSize: 5, ItemCount: 100001},
			wantErr: pagination.ErrInvalidItemCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
