package pagination

import (
	"context"

	"github.com/rshade/pagelist/internal/logging"
)

// Listener is notified with the new state after every dispatch.
type Listener func(State)

// Store holds the state of one view and applies actions through Reduce.
//
// A Store is owned by a single event loop (the Bubble Tea Update goroutine,
// or a straight-line render) and is not safe for concurrent use.
type Store struct {
	ctx       context.Context
	state     State
	listeners []Listener
}

// NewStore creates a store seeded with initial.
// The context carries the logger used to trace dispatches.
func NewStore(ctx context.Context, initial State) *Store {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Store{
		ctx:   ctx,
		state: initial,
	}
}

// State returns the current state.
func (s *Store) State() State {
	return s.state
}

// Dispatch applies action, notifies listeners, and returns the new state.
func (s *Store) Dispatch(action Action) State {
	prev := s.state
	s.state = Reduce(s.state, action)

	logger := logging.FromContext(s.ctx)
	logger.Debug().Ctx(s.ctx).
		Str("component", "pagination").
		Str("action", string(action.Type)).
		Int("payload", action.Payload).
		Int("prev_page", prev.CurrentPage).
		Int("page", s.state.CurrentPage).
		Int("total_items", s.state.TotalItems).
		Msg("dispatch")

	for _, fn := range s.listeners {
		fn(s.state)
	}
	return s.state
}

// Subscribe registers fn to run after every dispatch.
func (s *Store) Subscribe(fn Listener) {
	if fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}
