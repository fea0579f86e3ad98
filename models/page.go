package models

// Page is the paginated list envelope every list endpoint responds with.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// HasNext mirrors the frontend convention of paging while next is non-null.
func (p Page[T]) HasNext() bool {
	return p.Next != nil
}

func (p Page[T]) HasPrevious() bool {
	return p.Previous != nil
}
