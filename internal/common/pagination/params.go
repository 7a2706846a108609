package pagination

import (
	"net/http"
	"strconv"
)

// Order is the sort direction for publication dates.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Params represents list query parameters from an HTTP request.
type Params struct {
	Page  int    // 1-based page number
	Limit int    // Items per page
	Order Order  // Sort direction
	Title string // Case-insensitive title substring, empty for no filter
}

// ParseQueryParams parses list parameters from the request query string.
// Parsing never fails: a missing, non-numeric or non-positive page falls
// back to config.DefaultPage, and any order other than "asc" or "desc"
// falls back to descending.
//
// Query parameters:
//   - page: Page number
//   - order: asc | desc
//   - title: title substring filter
func ParseQueryParams(r *http.Request, config Config) Params {
	q := r.URL.Query()

	params := Params{
		Page:  config.DefaultPage,
		Limit: config.PageSize,
		Order: ParseOrder(q.Get("order")),
		Title: q.Get("title"),
	}

	if page, ok := parsePage(q.Get("page")); ok {
		params.Page = page
	}

	return params
}

// parsePage accepts plain decimal digits only: no sign, no spaces.
func parsePage(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, false
		}
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

// ParseOrder returns OrderAsc for exactly "asc" and OrderDesc otherwise.
func ParseOrder(raw string) Order {
	if Order(raw) == OrderAsc {
		return OrderAsc
	}
	return OrderDesc
}
