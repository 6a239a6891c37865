// Package tui renders the paginated list, either as an interactive Bubble Tea
// program or as a one-shot styled or plain text block.
//
// The interactive model keeps its page state in a pagination.Store. Mounting
// the model (Init) reports the collection length, which is stored with
// SET_TOTAL_ITEMS. The Previous and Next buttons dispatch SET_CURRENT_PAGE and
// are disabled at the first page and once the page reaches the end of the
// collection.
package tui
