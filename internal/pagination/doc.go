// Package pagination holds the page state, its reducer, and the window math
// used to slice a collection into pages.
//
// This package contains:
//   - State and Reduce: a pure transition function over (state, action)
//   - Store: a single-loop holder that applies actions and notifies subscribers
//   - Paginate: derives the visible window and Previous/Next availability
//   - Params: CLI flag validation for page, page size, and item count
//   - Meta: page metadata for structured output
//
// The reducer never validates payloads. Keeping the current page in range is
// the caller's job, done by disabling the control that would leave it.
package pagination
