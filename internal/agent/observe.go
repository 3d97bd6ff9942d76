package agent

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/wordhive/wordhive/pkg/match"
)

var (
	lettersRe = regexp.MustCompile(`(?i)Allowed Letters:\s*([a-zA-Z]+)`)
	moveRe    = regexp.MustCompile(`\[([a-zA-Z]+)\]`)
)

// wordsPerTier caps how many words of one length are spelled out in the
// prompt; the rest collapse into a count.
const wordsPerTier = 10

// ExtractLetters pulls the allowed letters out of a game observation,
// lowercased, one letter per entry. Nil when the observation carries no
// "Allowed Letters:" marker.
func ExtractLetters(observation string) []string {
	m := lettersRe.FindStringSubmatch(observation)
	if m == nil {
		return nil
	}
	letters := make([]string, 0, len(m[1]))
	for _, r := range strings.ToLower(m[1]) {
		letters = append(letters, string(r))
	}
	return letters
}

// ExtractMove finds the first bracket-delimited word in a model response
// and returns it bracketed, the way the environment expects an action.
func ExtractMove(response string) (string, bool) {
	m := moveRe.FindStringSubmatch(response)
	if m == nil {
		return "", false
	}
	return "[" + m[1] + "]", true
}

// IsFirstMove reports whether the observation is the opening position:
// the player banner is present but no move has been logged yet.
func IsFirstMove(observation string) bool {
	return strings.Contains(observation, "You are Player") &&
		!strings.Contains(observation, "[Player")
}

// EnhanceObservation appends the matched words to an observation, grouped
// by length with the longest first. Unchanged when there are no words.
func EnhanceObservation(observation string, words []string) string {
	if len(words) == 0 {
		return observation
	}

	dist := match.Distribution(words)
	lengths := make([]int, 0, len(dist))
	for l := range dist {
		lengths = append(lengths, l)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	var b strings.Builder
	b.WriteString(observation)
	b.WriteString("\n\nHere are some possible words you can form with the available letters:\n")
	for _, l := range lengths {
		tier := match.WordsOfLength(words, l)
		shown := tier
		if len(shown) > wordsPerTier {
			shown = shown[:wordsPerTier]
		}
		fmt.Fprintf(&b, "\n%d-letter words: %s", l, strings.Join(shown, ", "))
		if rest := len(tier) - len(shown); rest > 0 {
			fmt.Fprintf(&b, " (and %d more)", rest)
		}
	}
	return b.String()
}

// StrategicAnalysis renders the length distribution plus the derived
// maximum-length facts as prompt text. The facts are informational only,
// the move decision stays with the model: a single word of maximum length
// is an immediate forced win for the side to move, exactly two admit a
// forcing line.
func StrategicAnalysis(words []string) string {
	if len(words) == 0 {
		return ""
	}

	dist := match.Distribution(words)
	maxLen := match.MaxLength(words)

	lengths := make([]int, 0, len(dist))
	for l := range dist {
		lengths = append(lengths, l)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	var b strings.Builder
	b.WriteString("\n\n# Strategic Analysis\n\n")
	b.WriteString("## Word Length Distribution\n")
	for _, l := range lengths {
		fmt.Fprintf(&b, "- %d-letter words: %d words\n", l, dist[l])
	}

	b.WriteString("\n## Strategic Insights\n")
	switch dist[maxLen] {
	case 1:
		fmt.Fprintf(&b, "- There is only one word of maximum length (%d). Playing it immediately would force a win.\n", maxLen)
	case 2:
		fmt.Fprintf(&b, "- There are only two words of maximum length (%d). Making the opponent play one of them leaves the other as a winning reply.\n", maxLen)
	default:
		b.WriteString("- Playing shorter words first forces the opponent to spend the longer ones.\n")
	}
	return b.String()
}
