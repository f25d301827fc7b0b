package domain

import "strings"

// MatchSubstring reports whether input equals, ignoring case, any contiguous
// non-empty run of characters taken from label. The whole input must match
// (anchored), so "own" matches "ownership" while "owner ship" does not.
//
// Single characters count: "o" matches "ownership".
func MatchSubstring(label, input string) bool {
	runes := []rune(label)
	for i := 0; i < len(runes); i++ {
		for j := i + 1; j <= len(runes); j++ {
			if strings.EqualFold(string(runes[i:j]), input) {
				return true
			}
		}
	}
	return false
}

// Resolve maps raw user input to a menu action. Surrounding whitespace is
// trimmed, then labels are tried in MenuOrder and the first match wins.
// Input that matches nothing, including empty input, resolves to MenuInvalid.
func Resolve(input string) MenuAction {
	input = strings.TrimSpace(input)
	for _, a := range MenuOrder {
		if MatchSubstring(a.Label(), input) {
			return a
		}
	}
	return MenuInvalid
}
