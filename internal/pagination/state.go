package pagination

// ActionType names a state transition.
type ActionType string

// Known action types.
const (
	ActionSetCurrentPage ActionType = "SET_CURRENT_PAGE"
	ActionSetTotalItems  ActionType = "SET_TOTAL_ITEMS"
)

// State is the pagination state of a single list view.
type State struct {
	// CurrentPage is the 1-based page being displayed.
	CurrentPage int `json:"current_page" yaml:"current_page"`

	// TotalItems is the cached length of the source collection.
	TotalItems int `json:"total_items" yaml:"total_items"`
}

// Action describes a requested state transition.
type Action struct {
	Type    ActionType
	Payload int
}

// NewState returns the state a view starts with before its collection is known.
func NewState() State {
	return State{
		CurrentPage: DefaultPage,
		TotalItems:  0,
	}
}

// SetCurrentPage builds an action that replaces the current page.
func SetCurrentPage(page int) Action {
	return Action{Type: ActionSetCurrentPage, Payload: page}
}

// SetTotalItems builds an action that replaces the cached item count.
func SetTotalItems(total int) Action {
	return Action{Type: ActionSetTotalItems, Payload: total}
}

// Reduce applies action to state and returns the resulting state.
// Payloads are taken as-is. Unknown action types return state unchanged.
func Reduce(state State, action Action) State {
	switch action.Type {
	case ActionSetCurrentPage:
		state.CurrentPage = action.Payload
		return state
	case ActionSetTotalItems:
		state.TotalItems = action.Payload
		return state
	default:
		return state
	}
}
