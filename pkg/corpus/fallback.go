package corpus

import (
	_ "embed"
	"strings"
	"sync"
)

// The embedded list keeps the client usable when the frontend is down.
// It is a small general-purpose vocabulary, intentionally independent of
// whatever curated list the server was started with.
//
//go:embed fallback_words.txt
var fallbackWords string

var (
	fallbackOnce sync.Once
	fallback     *Corpus
)

// Fallback returns the embedded secondary corpus, built once on first use.
func Fallback() *Corpus {
	fallbackOnce.Do(func() {
		fallback = New(strings.Split(fallbackWords, "\n"), "embedded")
	})
	return fallback
}
