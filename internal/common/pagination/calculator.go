package pagination

import "math"

// CalculateOffset calculates the database OFFSET value based on page number and limit.
// Page numbers are 1-based, so page 1 has offset 0. Pages so large that the
// offset would overflow are clamped to the largest representable offset.
//
// Examples:
//   - Page 1, Limit 10 -> Offset 0
//   - Page 2, Limit 10 -> Offset 10
//   - Page 3, Limit 10 -> Offset 20
func CalculateOffset(page, limit int) int {
	if page <= 1 || limit <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt / limit * limit
	}
	return (page - 1) * limit
}

// CalculateTotalPages calculates the total number of pages based on total items and limit.
// Uses ceiling division; an empty result set still has one page.
//
// Examples:
//   - Total 0, Limit 10 -> 1 page
//   - Total 10, Limit 10 -> 1 page
//   - Total 15, Limit 10 -> 2 pages
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 || limit <= 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
