package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/pagelist/internal/catalog"
	"github.com/rshade/pagelist/internal/logging"
	"github.com/rshade/pagelist/internal/pagination"
)

// ViewState represents the current state of the list TUI.
type ViewState int

const (
	// ViewStateList shows the list and its controls.
	ViewStateList ViewState = iota
	// ViewStateQuitting indicates the program is exiting.
	ViewStateQuitting
)

// CollectionLoadedMsg reports the collection length once the model is mounted.
type CollectionLoadedMsg struct {
	Total int
}

// defaultWidth is used until the terminal reports its size.
const defaultWidth = 80

// PageListModel is the Bubble Tea model for the paginated list.
type PageListModel struct {
	ctx context.Context

	// Source data
	items    catalog.Collection
	pageSize int

	// Pagination state
	store     *pagination.Store
	paginator paginator.Model
	mounted   bool
	startPage int

	// Interaction
	focus string
	state ViewState

	// Display width; 0 disables truncation.
	width int
}

// NewPageListModel creates the list model over items, pageSize items per page.
// The page state starts at page 1 with no items counted; Init reports the
// collection length.
func NewPageListModel(ctx context.Context, items catalog.Collection, pageSize int) *PageListModel {
	if ctx == nil {
		ctx = context.Background()
	}
	if pageSize < pagination.MinPageSize {
		pageSize = pagination.DefaultPageSize
	}

	p := paginator.New()
	p.Type = paginator.Arabic
	p.PerPage = pageSize
	p.KeyMap = paginator.KeyMap{}

	m := &PageListModel{
		ctx:       ctx,
		items:     items,
		pageSize:  pageSize,
		store:     pagination.NewStore(ctx, pagination.NewState()),
		paginator: p,
		startPage: pagination.DefaultPage,
		focus:     labelNext,
		state:     ViewStateList,
		width:     defaultWidth,
	}
	m.store.Subscribe(m.syncPaginator)
	return m
}

// Init mounts the model. The returned command reports the collection length.
func (m *PageListModel) Init() tea.Cmd {
	total := m.items.Len()
	return func() tea.Msg {
		return CollectionLoadedMsg{Total: total}
	}
}

// Update handles messages and updates the model state.
func (m *PageListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case CollectionLoadedMsg:
		m.handleCollectionLoaded(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleCollectionLoaded stores the collection length. It runs once per mount
// unless the reported length changes.
func (m *PageListModel) handleCollectionLoaded(msg CollectionLoadedMsg) {
	if m.mounted && m.store.State().TotalItems == msg.Total {
		return
	}
	first := !m.mounted
	m.mounted = true
	m.store.Dispatch(pagination.SetTotalItems(msg.Total))

	if first && m.startPage != pagination.DefaultPage {
		m.store.Dispatch(pagination.SetCurrentPage(m.startPage))
	}
}

// handleKeyMsg processes keyboard input.
func (m *PageListModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyLeft, keyH, keyP:
		m.Previous()
	case keyRight, keyL, keyN:
		m.Next()
	case keyTab, keyShiftTab:
		m.toggleFocus()
	case keyEnter, keySpace, keySpaceAlt:
		m.activateFocused()
	}
	return m, nil
}

// Previous activates the Previous button. It reports whether a page change
// was dispatched; a disabled button dispatches nothing.
func (m *PageListModel) Previous() bool {
	if !m.CanGoPrevious() {
		m.logIgnored(labelPrevious)
		return false
	}
	m.store.Dispatch(pagination.SetCurrentPage(m.CurrentPage() - 1))
	return true
}

// Next activates the Next button. It reports whether a page change was
// dispatched; a disabled button dispatches nothing.
func (m *PageListModel) Next() bool {
	if !m.CanGoNext() {
		m.logIgnored(labelNext)
		return false
	}
	m.store.Dispatch(pagination.SetCurrentPage(m.CurrentPage() + 1))
	return true
}

// SetStartPage picks the page shown once the model is mounted. The page is
// dispatched after the collection length, without bounds checks.
func (m *PageListModel) SetStartPage(page int) {
	m.startPage = page
}

func (m *PageListModel) toggleFocus() {
	if m.focus == labelPrevious {
		m.focus = labelNext
	} else {
		m.focus = labelPrevious
	}
}

func (m *PageListModel) activateFocused() {
	if m.focus == labelPrevious {
		m.Previous()
		return
	}
	m.Next()
}

func (m *PageListModel) logIgnored(control string) {
	logger := logging.FromContext(m.ctx)
	logger.Debug().Ctx(m.ctx).
		Str("component", "tui").
		Str("control", control).
		Int("page", m.CurrentPage()).
		Msg("control disabled, activation ignored")
}

// syncPaginator mirrors the store state onto the footer paginator.
func (m *PageListModel) syncPaginator(s pagination.State) {
	m.paginator.SetTotalPages(s.TotalItems)
	if s.CurrentPage >= 1 && s.CurrentPage <= m.paginator.TotalPages {
		m.paginator.Page = s.CurrentPage - 1
	}
}

// State returns the current pagination state.
func (m *PageListModel) State() pagination.State {
	return m.store.State()
}

// CurrentPage returns the 1-based page being displayed.
func (m *PageListModel) CurrentPage() int {
	return m.store.State().CurrentPage
}

// Page returns the visible page derived from the current state.
func (m *PageListModel) Page() pagination.Page[string] {
	return pagination.Paginate([]string(m.items), m.store.State(), m.pageSize)
}

// Meta returns the page metadata for the current state.
func (m *PageListModel) Meta() pagination.Meta {
	return pagination.NewMeta(m.store.State(), m.pageSize, m.items.Len())
}

// VisibleItems returns the items on the current page.
func (m *PageListModel) VisibleItems() []string {
	return m.Page().Items
}

// CanGoPrevious reports whether the Previous button is enabled.
func (m *PageListModel) CanGoPrevious() bool {
	return m.Page().HasPrevious
}

// CanGoNext reports whether the Next button is enabled.
func (m *PageListModel) CanGoNext() bool {
	return m.Page().HasNext
}

// Focused returns the label of the focused button.
func (m *PageListModel) Focused() string {
	return m.focus
}

// Mounted reports whether the collection length has been stored.
func (m *PageListModel) Mounted() bool {
	return m.mounted
}
