package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns lists the dynamic routes. Any single segment under /news/ is
// folded into the template, valid id or not, so malformed ids cannot grow
// label cardinality either.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/news/[^/]+$`), Template: "/news/:id"},
	{Pattern: regexp.MustCompile(`^/swagger/.+$`), Template: "/swagger/*"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
//
// Examples:
//
//	NormalizePath("/news/123")      // "/news/:id"
//	NormalizePath("/news/abc")      // "/news/:id"
//	NormalizePath("/news")          // "/news" (unchanged)
//	NormalizePath("/news/123/")     // "/news/:id"
//	NormalizePath("/health")        // "/health" (unchanged)
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}
