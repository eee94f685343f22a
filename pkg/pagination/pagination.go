// Package pagination slices ordered result sets into fixed-size pages.
package pagination

// DefaultPageSize matches the page size rendered by the feed views.
const DefaultPageSize = 10

// Page describes one page of an ordered result set. Offset/Limit are ready
// to hand to the store; the rest is display metadata.
type Page struct {
	Number     int   `json:"number"`
	Size       int   `json:"size"`
	Offset     int   `json:"-"`
	Limit      int   `json:"-"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

// Paginate is a pure function of (total, page, size). Out-of-range page
// numbers clamp to the nearest valid page: below 1 becomes 1, beyond the
// last becomes the last. An empty set still has one (empty) page.
func Paginate(total int64, page, size int) Page {
	if size < 1 {
		size = DefaultPageSize
	}
	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return Page{
		Number:     page,
		Size:       size,
		Offset:     (page - 1) * size,
		Limit:      size,
		TotalItems: total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}
