package pagination

// PageRequest selects one window of a cursored feed. At most one cursor may
// be set; a zero Limit falls back to the caller's default.
type PageRequest struct {
	BeforeCursor *string
	AfterCursor  *string
	Limit        int
}

// Page is the selected window together with the cursors bounding it. Start
// and end cursors are nil for an empty page.
type Page[T any] struct {
	Count           int
	Items           []T
	StartCursor     *string
	EndCursor       *string
	HasNextPage     bool
	HasPreviousPage bool
}
