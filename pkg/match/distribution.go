package match

import "sort"

// Distribution returns a histogram of word lengths for a result set.
func Distribution(words []string) map[int]int {
	dist := make(map[int]int, 8)
	for _, w := range words {
		dist[len(w)]++
	}
	return dist
}

// MaxLength returns the longest word length in the result set, 0 when empty.
func MaxLength(words []string) int {
	max := 0
	for _, w := range words {
		if len(w) > max {
			max = len(w)
		}
	}
	return max
}

// WordsOfLength returns the words of exactly the given length, sorted
// alphabetically. Used to report facts like "there is exactly one word of
// the maximum length", which is a forced win for the player to move.
func WordsOfLength(words []string, length int) []string {
	var out []string
	for _, w := range words {
		if len(w) == length {
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out
}
