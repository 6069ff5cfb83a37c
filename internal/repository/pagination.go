package repository

const DefaultPageSize = 10

// PageRequest is a 1-based offset page.
type PageRequest struct {
	Page     int
	PageSize int
}

func NewPageRequest(page, pageSize int) PageRequest {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return PageRequest{Page: page, PageSize: pageSize}
}

func (p PageRequest) Offset() int {
	return (p.normalized().Page - 1) * p.normalized().PageSize
}

func (p PageRequest) Limit() int {
	return p.normalized().PageSize
}

func (p PageRequest) normalized() PageRequest {
	return NewPageRequest(p.Page, p.PageSize)
}

type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

func NewPage[T any](items []T, total int64, req PageRequest) *Page[T] {
	req = req.normalized()
	totalPages := int((total + int64(req.PageSize) - 1) / int64(req.PageSize))
	return &Page[T]{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}
}

func (p *Page[T]) HasNext() bool {
	return p.Page < p.TotalPages
}

func (p *Page[T]) HasPrev() bool {
	return p.Page > 1
}
