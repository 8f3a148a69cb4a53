package pagination

import "math"

// OffsetRequest represents a 1-indexed page request
type OffsetRequest struct {
	Page int `json:"page" query:"page" validate:"min=1"`
	Size int `json:"size" query:"size" validate:"min=1,max=100"`
}

// Normalize clamps page to at least 1 and size into (0, PageMaxSize],
// using defaultSize when size is unset
func (r *OffsetRequest) Normalize(defaultSize int) {
	if defaultSize <= 0 || defaultSize > PageMaxSize {
		defaultSize = PageDefaultSize
	}
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = defaultSize
	}
	if r.Size > PageMaxSize {
		r.Size = PageMaxSize
	}
}

// Offset is the index of the first item of the page. It saturates at
// math.MaxInt instead of overflowing for very large pages.
func (r OffsetRequest) Offset() int {
	if r.Page <= 1 || r.Size <= 0 {
		return 0
	}
	if r.Page-1 > math.MaxInt/r.Size {
		return math.MaxInt
	}
	return (r.Page - 1) * r.Size
}
