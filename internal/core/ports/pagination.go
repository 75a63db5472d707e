// internal/core/ports/pagination.go
package ports

// DefaultPageSize matches the page size the HTTP layer falls back to.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageRequest is a 1-based page selector shared by repositories and
// services.
type PageRequest struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// Normalize clamps the request into valid bounds.
func (r PageRequest) Normalize() PageRequest {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Size < 1 {
		r.Size = DefaultPageSize
	}
	if r.Size > MaxPageSize {
		r.Size = MaxPageSize
	}
	return r
}

// Offset returns the row offset for the normalized request.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.Size
}

// Page is one page of results plus paging metadata.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

// NewPage assembles a Page from a repository result.
func NewPage[T any](items []T, req PageRequest, total int64) *Page[T] {
	totalPages := int(total) / req.Size
	if int(total)%req.Size > 0 {
		totalPages++
	}
	return &Page[T]{
		Items:      items,
		Page:       req.Page,
		Size:       req.Size,
		TotalCount: total,
		TotalPages: totalPages,
	}
}
