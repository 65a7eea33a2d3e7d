// Package wordmatch implements whole-token phrase matching over normalized
// strings (uppercase alphanumeric tokens joined by single spaces).
//
// On such strings a word-boundary regex degenerates to token-aligned
// substring search, which this package performs without allocating.
package wordmatch

import "strings"

// Contains reports whether phrase occurs in s aligned to token boundaries.
// Both s and phrase must already be in normalized form; a phrase may span
// multiple tokens ("TP LINK"). The empty phrase never matches.
func Contains(s, phrase string) bool {
	if phrase == "" || len(phrase) > len(s) {
		return false
	}
	for start := 0; ; start++ {
		i := strings.Index(s[start:], phrase)
		if i < 0 {
			return false
		}
		start += i
		end := start + len(phrase)
		if (start == 0 || s[start-1] == ' ') && (end == len(s) || s[end] == ' ') {
			return true
		}
	}
}
