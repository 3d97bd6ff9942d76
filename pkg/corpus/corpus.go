/*
Package corpus loads and indexes the word lists the matching engine filters
against.

Two corpora exist in a running system: the primary list read from disk at
startup and served by the network frontend, and a smaller embedded list used
by the client when the remote service cannot be reached. Both go through the
same normalization: entries are lowercased, deduplicated, and anything that
is not purely a-z is dropped. A per-word letter mask is computed once here so
queries never re-scan characters.

A corpus is immutable after construction and safe for concurrent readers.
*/
package corpus

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/wordhive/wordhive/internal/utils"
)

// Entry is a single indexed word with its precomputed letter mask.
// Bit i of Mask is set when letter 'a'+i occurs in Word.
type Entry struct {
	Word string
	Mask uint32
}

// Corpus is an immutable word collection.
type Corpus struct {
	entries []Entry
	trie    *patricia.Trie
	source  string
}

// New builds a corpus from raw words. Entries are normalized to lowercase,
// duplicates collapse, and words containing anything outside a-z are skipped.
// The source label is informational only, used in logs.
func New(words []string, source string) *Corpus {
	c := &Corpus{
		entries: make([]Entry, 0, len(words)),
		trie:    patricia.NewTrie(),
		source:  source,
	}

	seen := make(map[string]bool, len(words))
	skipped := 0
	for _, raw := range words {
		word := utils.NormalizeWord(raw)
		if word == "" || seen[word] {
			continue
		}
		mask, ok := utils.LetterMask(word)
		if !ok {
			skipped++
			continue
		}
		seen[word] = true
		c.entries = append(c.entries, Entry{Word: word, Mask: mask})
		c.trie.Insert(patricia.Prefix(word), len(c.entries)-1)
	}

	if skipped > 0 {
		log.Debugf("corpus %q: skipped %d non-alphabetic entries", source, skipped)
	}
	log.Debugf("corpus %q: indexed %d words", source, len(c.entries))
	return c
}

// Entries returns the indexed words. The slice is shared, callers must not
// modify it.
func (c *Corpus) Entries() []Entry {
	return c.entries
}

// Len returns the number of indexed words.
func (c *Corpus) Len() int {
	return len(c.entries)
}

// Source returns the informational source label.
func (c *Corpus) Source() string {
	return c.source
}

// Contains reports whether the exact word is in the corpus.
// Lookup is case-insensitive, matching load-time normalization.
func (c *Corpus) Contains(word string) bool {
	word = utils.NormalizeWord(word)
	if word == "" {
		return false
	}
	return c.trie.Match(patricia.Prefix(word))
}

// WordsWithPrefix returns up to limit corpus words starting with prefix,
// sorted alphabetically. limit <= 0 means no limit.
func (c *Corpus) WordsWithPrefix(prefix string, limit int) []string {
	prefix = utils.NormalizeWord(prefix)
	var words []string
	err := c.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		words = append(words, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("corpus %q: visiting subtree for %q: %v", c.source, prefix, err)
		return nil
	}
	sort.Strings(words)
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}
