package models

// Page is one page of a paginated listing
type Page[T any] struct {
	Docs       []T   `json:"docs"`
	TotalDocs  int64 `json:"totalDocs"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalPages int   `json:"totalPages"`
}

// NewPage assembles a page and derives the page count
func NewPage[T any](docs []T, total int64, page, size int) *Page[T] {
	if docs == nil {
		docs = []T{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return &Page[T]{
		Docs:       docs,
		TotalDocs:  total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	}
}
