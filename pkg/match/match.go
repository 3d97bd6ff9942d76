/*
Package match implements the word-matching engine: given an alphabet of
allowed letters, find every corpus word constructible from it.

A word is constructible when every one of its characters is a member of the
alphabet. Letter availability is unlimited, the alphabet is a set, not a
tile count. Words shorter than the minimum playable length (4 by default)
are excluded even when otherwise constructible.

The engine is a pure filter over an immutable corpus: no locking, safe for
any number of concurrent callers. Each query is a single pass over the
precomputed per-word letter masks with one AND-NOT per word.
*/
package match

import (
	"sort"

	"github.com/wordhive/wordhive/internal/utils"
	"github.com/wordhive/wordhive/pkg/corpus"
)

// DefaultMinWordLen is the minimum playable word length. It applies
// uniformly on every path: served queries, local fallback, and the CLI.
const DefaultMinWordLen = 4

// Alphabet is the set of allowed letters for one round, as a bitmask
// over 'a'..'z'.
type Alphabet uint32

// NewAlphabet builds an alphabet from single-character strings. Input is
// lowercased; duplicates collapse; non a-z characters are dropped since
// they can never match a corpus word.
func NewAlphabet(letters []string) Alphabet {
	return Alphabet(utils.AlphabetMask(letters))
}

// AlphabetFromString builds an alphabet from a contiguous or
// comma-separated letters string.
func AlphabetFromString(s string) Alphabet {
	return NewAlphabet(utils.ParseLetters(s))
}

// Covers reports whether every letter in mask is a member of the alphabet.
func (a Alphabet) Covers(mask uint32) bool {
	return mask&^uint32(a) == 0
}

// Empty reports whether the alphabet has no letters.
func (a Alphabet) Empty() bool {
	return a == 0
}

// Engine filters a corpus by alphabet.
type Engine struct {
	corpus *corpus.Corpus
	minLen int
}

// NewEngine creates an engine over the given corpus with the default
// minimum word length.
func NewEngine(c *corpus.Corpus) *Engine {
	return &Engine{corpus: c, minLen: DefaultMinWordLen}
}

// NewEngineWithMinLen creates an engine with a custom minimum word length.
// Values below 1 fall back to the default.
func NewEngineWithMinLen(c *corpus.Corpus, minLen int) *Engine {
	if minLen < 1 {
		minLen = DefaultMinWordLen
	}
	return &Engine{corpus: c, minLen: minLen}
}

// Corpus returns the engine's corpus.
func (e *Engine) Corpus() *corpus.Corpus {
	return e.corpus
}

// Match returns every corpus word constructible from the alphabet with
// length >= the engine minimum. An empty result is a normal answer, never
// an error. Result order follows corpus order; callers needing a specific
// order sort explicitly, see SortByLengthDesc.
func (e *Engine) Match(alphabet Alphabet) []string {
	if alphabet.Empty() {
		return nil
	}
	var words []string
	for _, entry := range e.corpus.Entries() {
		if len(entry.Word) < e.minLen {
			continue
		}
		if alphabet.Covers(entry.Mask) {
			words = append(words, entry.Word)
		}
	}
	return words
}

// SortByLengthDesc sorts words longest first, alphabetically within a
// length. This is the ordering used for every user-facing summary.
func SortByLengthDesc(words []string) {
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
}
