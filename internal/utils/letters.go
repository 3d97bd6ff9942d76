package utils

import (
	"strings"
	"unicode"
)

// LetterMask computes a bitmask over 'a'..'z' for the given string.
// Bit i is set when the letter ('a'+i) occurs at least once.
// Returns false when s is empty or contains anything outside a-z
// after lowercasing.
func LetterMask(s string) (uint32, bool) {
	if s == "" {
		return 0, false
	}
	var mask uint32
	for _, r := range strings.ToLower(s) {
		if r < 'a' || r > 'z' {
			return 0, false
		}
		mask |= 1 << uint(r-'a')
	}
	return mask, true
}

// AlphabetMask builds a letter mask from a set of single-character strings.
// Non a-z entries are skipped rather than rejected: they can never match
// a dictionary word, so dropping them is equivalent to keeping them.
// Duplicates collapse into the same bit.
func AlphabetMask(letters []string) uint32 {
	var mask uint32
	for _, l := range letters {
		for _, r := range strings.ToLower(l) {
			if r >= 'a' && r <= 'z' {
				mask |= 1 << uint(r-'a')
			}
		}
	}
	return mask
}

// ParseLetters splits a raw letters argument into single lowercase letters.
// Accepts both comma-separated ("a,c,e") and contiguous ("ace") forms.
// Duplicates are removed, first occurrence order kept.
func ParseLetters(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	seen := make(map[rune]bool)
	var letters []string
	for _, part := range strings.Split(s, ",") {
		for _, r := range strings.ToLower(strings.TrimSpace(part)) {
			if !unicode.IsLetter(r) || seen[r] {
				continue
			}
			seen[r] = true
			letters = append(letters, string(r))
		}
	}
	return letters
}

// NormalizeWord lowercases and trims a dictionary entry.
func NormalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
