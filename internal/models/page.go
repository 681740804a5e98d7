package models

// PageMeta carries pagination metadata alongside a page of results.
// Pages are 1-based; page numbers below 1 are clamped to 1 before querying.
type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}

// NewPageMeta computes page metadata for the given totals.
func NewPageMeta(page, pageSize int, totalItems int64) PageMeta {
	if page < 1 {
		page = 1
	}
	totalPages := int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	return PageMeta{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
	}
}
