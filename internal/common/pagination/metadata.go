package pagination

import (
	"net/http"
	"strconv"
)

// Response headers carrying page metadata. The body of a list response stays
// a bare JSON array.
const (
	HeaderTotalCount = "X-Total-Count"
	HeaderTotalPages = "X-Total-Pages"
	HeaderPage       = "X-Page"
	HeaderPerPage    = "X-Per-Page"
)

// Metadata contains pagination metadata for a list response.
type Metadata struct {
	Total      int64 // Total number of items matching the filter
	Page       int   // Current page number (1-based)
	Limit      int   // Items per page
	TotalPages int   // Calculated total number of pages
}

// NewMetadata builds Metadata for params and a total count.
func NewMetadata(params Params, total int64) Metadata {
	return Metadata{
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: CalculateTotalPages(total, params.Limit),
	}
}

// WriteHeaders sets the pagination headers on h.
func (m Metadata) WriteHeaders(h http.Header) {
	h.Set(HeaderTotalCount, strconv.FormatInt(m.Total, 10))
	h.Set(HeaderTotalPages, strconv.Itoa(m.TotalPages))
	h.Set(HeaderPage, strconv.Itoa(m.Page))
	h.Set(HeaderPerPage, strconv.Itoa(m.Limit))
}
