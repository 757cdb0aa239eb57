package response

// ListResponse wraps list endpoints so the client always gets a JSON array
// plus a total, never a bare null.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewListResponse builds a ListResponse, normalizing a nil slice.
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return ListResponse[T]{
		Items: items,
		Total: len(items),
	}
}
