package listing

// State is the pagination state of a filtered listing. From and To are the 1-based
// bounds of the rows on the current page, both 0 when the page is empty.
type State struct {
	CurrentPage  int
	ItemsPerPage int
	TotalCount   int
	TotalPages   int
	From         int
	To           int
	HasPrevious  bool
	HasNext      bool
	ShowControls bool
	Window       []int
}

type Page[T any] struct {
	Items []T
	State State
}

// NewPage clamps requestedPage into range and slices the current page out of matches.
func NewPage[T any](matches []T, requestedPage, itemsPerPage int) Page[T] {
	totalPages := TotalPages(len(matches), itemsPerPage)
	current := ClampPage(requestedPage, totalPages)
	items, _ := Paginate(matches, current, itemsPerPage)

	state := State{
		CurrentPage:  current,
		ItemsPerPage: itemsPerPage,
		TotalCount:   len(matches),
		TotalPages:   totalPages,
		HasPrevious:  current > 1,
		HasNext:      current < totalPages,
		ShowControls: totalPages > 1,
		Window:       VisiblePageWindow(current, totalPages, DefaultWindowSize),
	}
	if len(items) > 0 {
		state.From = (current-1)*itemsPerPage + 1
		state.To = state.From + len(items) - 1
	}

	return Page[T]{Items: items, State: state}
}
