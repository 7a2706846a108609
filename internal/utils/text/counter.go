// Package text holds small string helpers shared by the business rules.
package text

import "unicode/utf8"

// CountRunes counts Unicode code points, so "héllo" and "こんにちは" are both 5.
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}

// HasMinRunes reports whether s has at least n code points. It stops
// scanning as soon as the answer is known.
func HasMinRunes(s string, n int) bool {
	if n <= 0 {
		return true
	}
	// every rune takes at least one byte
	if len(s) < n {
		return false
	}
	// and at most utf8.UTFMax
	if len(s) >= n*utf8.UTFMax {
		return true
	}
	count := 0
	for range s {
		count++
		if count >= n {
			return true
		}
	}
	return false
}
