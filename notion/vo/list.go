package vo

// List is the envelope of every paginated endpoint.
type List[T any] struct {
	Object     string  `json:"object"`
	Results    []T     `json:"results"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
	Type       string  `json:"type,omitempty"`
}

// Cursor returns the cursor of the next page, empty when there is none.
func (l List[T]) Cursor() string {
	if l.NextCursor == nil {
		return ""
	}
	return *l.NextCursor
}

// Continues reports whether another page should be requested.
func (l List[T]) Continues() bool {
	return l.HasMore && l.Cursor() != ""
}
