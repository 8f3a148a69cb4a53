package pagination

// OffsetResult represents traditional offset-based pagination
type OffsetResult[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalPages int   `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

// NewOffsetResult creates a new offset-based result
func NewOffsetResult[T any](items []T, total int64, page int, size int) *OffsetResult[T] {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	hasMore := page >= 1 && page < totalPages

	return &OffsetResult[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
		HasMore:    hasMore,
	}
}

// Paginate slices the page [ (page-1)*size, page*size ) out of all.
// A page past the end yields no items and HasMore=false.
func Paginate[T any](all []T, req OffsetRequest) *OffsetResult[T] {
	total := len(all)
	start := min(req.Offset(), total)
	end := start + max(min(req.Size, total-start), 0)

	items := make([]T, end-start)
	copy(items, all[start:end])

	return NewOffsetResult(items, int64(total), req.Page, req.Size)
}
