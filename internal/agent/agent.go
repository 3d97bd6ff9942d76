// Package agent contains the glue between the word finder and a
// language-model player: extracting the allowed letters from a game
// observation, enhancing the prompt with the matched words, and turning
// the model response back into a playable action.
package agent

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
)

// Generator produces a model response for a prompt. Model selection and
// credentials live behind this interface; the agent only formats text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Environment is the turn-based game environment the agent plays against.
// The agent consumes it but does not manage its connection.
type Environment interface {
	// Observe yields the current textual observation.
	Observe() (string, error)
	// Step submits an action and reports whether the game is over.
	Step(action string) (done bool, err error)
}

// WordFinder answers "which words can be built from these letters" and
// whether a single word is in the dictionary at all. Satisfied by
// client.Finder.
type WordFinder interface {
	FindWords(ctx context.Context, letters []string) []string
	IsWord(word string) bool
}

// Player runs one agent over an environment. Letters, once extracted from
// an observation, persist across turns since later observations may omit
// the header line.
type Player struct {
	env     Environment
	gen     Generator
	finder  WordFinder
	letters []string
}

// NewPlayer wires an environment, a generator and a word finder.
func NewPlayer(env Environment, gen Generator, finder WordFinder) *Player {
	return &Player{env: env, gen: gen, finder: finder}
}

// TakeTurn observes, enhances the observation with matched words and
// strategy facts, asks the model, and submits the extracted move. A move
// that is not a dictionary word is replaced with one from the result set
// before it reaches the environment.
func (p *Player) TakeTurn(ctx context.Context) (bool, error) {
	obs, err := p.env.Observe()
	if err != nil {
		return false, err
	}

	if letters := ExtractLetters(obs); len(letters) > 0 {
		log.Debugf("extracted letters: %v", letters)
		p.letters = letters
	}

	var words []string
	if len(p.letters) > 0 {
		words = p.finder.FindWords(ctx, p.letters)
		if IsFirstMove(obs) {
			obs += StrategicAnalysis(words)
		}
		obs = EnhanceObservation(obs, words)
	} else {
		log.Debug("no letters extracted yet, passing observation through unchanged")
	}

	resp, err := p.gen.Generate(ctx, obs)
	if err != nil {
		return false, err
	}

	action, ok := ExtractMove(resp)
	if !ok {
		log.Warnf("no bracketed move in model response, submitting raw response")
		return p.env.Step(resp)
	}
	return p.env.Step(p.validateMove(action, words))
}

// validateMove checks a bracketed move against the dictionary. When the
// model proposed something that is not a word and the result set has real
// candidates, the longest known word is played instead.
func (p *Player) validateMove(action string, words []string) string {
	word := strings.Trim(action, "[]")
	if p.finder.IsWord(word) {
		return action
	}
	if len(words) == 0 {
		log.Warnf("model proposed unknown word %q, no candidates to substitute", word)
		return action
	}
	// FindWords orders longest first
	log.Warnf("model proposed unknown word %q, playing %q instead", word, words[0])
	return "[" + words[0] + "]"
}
