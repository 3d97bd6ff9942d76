// Package cli handles cmd line input for DBG and testing the matching engine
package cli

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/wordhive/wordhive/internal/utils"
	"github.com/wordhive/wordhive/pkg/match"
)

var wordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

// InputHandler reads letter sets from stdin and prints the words the
// engine can build from them, grouped by length.
type InputHandler struct {
	engine       *match.Engine
	wordsPerTier int
	showDist     bool
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(engine *match.Engine, wordsPerTier int, showDist bool) *InputHandler {
	if wordsPerTier < 1 {
		wordsPerTier = 10
	}
	return &InputHandler{
		engine:       engine,
		wordsPerTier: wordsPerTier,
		showDist:     showDist,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("WordHive CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("enter allowed letters (e.g. 'aceist' or 'a,c,e,i,s,t'), or /prefix to browse the word list (Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput processes a single letter set and prints the result set.
// Input starting with '/' is a prefix lookup against the corpus instead.
func (h *InputHandler) handleInput(input string) {
	h.requestCount++

	if strings.HasPrefix(input, "/") {
		h.handlePrefix(strings.TrimPrefix(input, "/"))
		return
	}

	letters := utils.ParseLetters(input)
	if len(letters) == 0 {
		log.Errorf("No usable letters in input: %q", input)
		return
	}

	start := time.Now()
	words := h.engine.Match(match.NewAlphabet(letters))
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for letters %v", elapsed, letters)

	if len(words) == 0 {
		log.Warnf("No words can be formed from: %s", strings.Join(letters, ""))
		return
	}

	log.Printf("Found %d words for letters '%s':", len(words), strings.Join(letters, ""))

	dist := match.Distribution(words)
	lengths := make([]int, 0, len(dist))
	for l := range dist {
		lengths = append(lengths, l)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	for _, l := range lengths {
		tier := match.WordsOfLength(words, l)
		shown := tier
		if len(shown) > h.wordsPerTier {
			shown = shown[:h.wordsPerTier]
		}
		styled := make([]string, len(shown))
		for i, w := range shown {
			styled[i] = wordStyle.Render(w)
		}
		suffix := ""
		if rest := len(tier) - len(shown); rest > 0 {
			suffix = fmt.Sprintf(" (and %d more)", rest)
		}
		log.Printf("%2d letters: %s%s", l, strings.Join(styled, ", "), suffix)
	}

	if h.showDist {
		maxLen := match.MaxLength(words)
		log.Printf("max length: %d (%d word(s) at max)", maxLen, dist[maxLen])
	}
}

// handlePrefix lists corpus words starting with the given prefix.
func (h *InputHandler) handlePrefix(prefix string) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		log.Error("prefix lookup needs at least one letter, e.g. /tea")
		return
	}

	words := h.engine.Corpus().WordsWithPrefix(prefix, h.wordsPerTier)
	if len(words) == 0 {
		log.Warnf("No words start with %q", prefix)
		return
	}

	styled := make([]string, len(words))
	for i, w := range words {
		styled[i] = wordStyle.Render(w)
	}
	log.Printf("words starting with %q: %s", prefix, strings.Join(styled, ", "))
}
