package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/pagelist/internal/pagination"
)

// TestNewState verifies the state a view starts with.
func TestNewState(t *testing.T) {
	s := pagination.NewState()
	assert.Equal(t, 1, s.CurrentPage)
	assert.Equal(t, 0, s.TotalItems)
}

// TestReduce covers every known action plus the identity case.
func TestReduce(t *testing.T) {
	start := pagination.State{CurrentPage: 2, TotalItems: 25}

	tests := []struct {
		name   string
		action pagination.Action
		want   pagination.State
	}{
		{
			name:   "set current page",
			action: pagination.SetCurrentPage(3),
			want:   pagination.State{CurrentPage: 3, TotalItems: 25},
		},
		{
			name:   "set total items",
			action: pagination.SetTotalItems(40),
			want:   pagination.State{CurrentPage: 2, TotalItems: 40},
		},
		{
			name:   "current page is not validated",
			action: pagination.SetCurrentPage(-7),
			want:   pagination.State{CurrentPage: -7, TotalItems: 25},
		},
		{
			name:   "page past the end is accepted",
			action: pagination.SetCurrentPage(99),
			want:   pagination.State{CurrentPage: 99, TotalItems: 25},
		},
		{
			name:   "unknown action is identity",
			action: pagination.Action{Type: "RESET_EVERYTHING", Payload: 1},
			want:   start,
		},
		{
			name:   "zero action is identity",
			action: pagination.Action{},
			want:   start,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pagination.Reduce(start, tt.action)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestReduce_DoesNotMutateInput verifies Reduce returns a new value.
func TestReduce_DoesNotMutateInput(t *testing.T) {
	s := pagination.State{CurrentPage: 1, TotalItems: 0}
	_ = pagination.Reduce(s, pagination.SetCurrentPage(4))
	_ = pagination.Reduce(s, pagination.SetTotalItems(25))
	assert.Equal(t, pagination.State{CurrentPage: 1, TotalItems: 0}, s)
}

// TestReduce_UnknownActionIdentity checks the identity law over a range of states.
func TestReduce_UnknownActionIdentity(t *testing.T) {
	unknown := pagination.Action{Type: "NOPE", Payload: 42}
	for page := -2; page <= 8; page++ {
		for _, total := range []int{0, 1, 25, 1000} {
			s := pagination.State{CurrentPage: page, TotalItems: total}
			assert.Equal(t, s, pagination.Reduce(s, unknown))
		}
	}
}
