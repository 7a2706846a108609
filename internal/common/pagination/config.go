// Package pagination parses list query parameters and computes offsets and
// page metadata for offset-based pagination.
package pagination

// Config holds pagination configuration settings.
type Config struct {
	DefaultPage int // Page used when the query omits or garbles "page"
	PageSize    int // Fixed number of items per page
}

// DefaultConfig returns the default pagination configuration: page 1, 10 items per page.
func DefaultConfig() Config {
	return Config{
		DefaultPage: 1,
		PageSize:    10,
	}
}
