// Package pathutil parses record ids out of request paths and normalizes
// paths for use as metric labels.
package pathutil

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ExtractID extracts and parses a positive base-10 integer ID from a URL path.
// It removes the specified prefix and parses the remainder as an int64.
// Signs, whitespace and values <= 0 are rejected with ErrInvalidID.
//
// Example:
//
//	id, err := ExtractID("/news/123", "/news/")
//	// Returns: 123, nil
func ExtractID(path, prefix string) (int64, error) {
	return ParseID(strings.TrimPrefix(path, prefix))
}

// ParseID parses a raw path segment as a positive base-10 int64.
func ParseID(raw string) (int64, error) {
	if raw == "" || raw[0] == '+' || raw[0] == '-' {
		return 0, ErrInvalidID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
