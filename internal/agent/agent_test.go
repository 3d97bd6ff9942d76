package agent

import (
	"context"
	"strings"
	"testing"
)

type stubEnv struct {
	obs      string
	stepped  string
	obsErr   error
	stepDone bool
}

func (e *stubEnv) Observe() (string, error) { return e.obs, e.obsErr }
func (e *stubEnv) Step(action string) (bool, error) {
	e.stepped = action
	return e.stepDone, nil
}

type stubGen struct {
	prompt   string
	response string
}

func (g *stubGen) Generate(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.response, nil
}

type stubFinder struct{ words []string }

func (f *stubFinder) FindWords(_ context.Context, _ []string) []string { return f.words }

func (f *stubFinder) IsWord(word string) bool {
	for _, w := range f.words {
		if w == word {
			return true
		}
	}
	return false
}

func TestPlayerTakeTurn(t *testing.T) {
	env := &stubEnv{
		obs:      "You are Player 0.\nAllowed Letters: acehist\nPlay a word.",
		stepDone: true,
	}
	gen := &stubGen{response: "I will play [achiest] now."}
	finder := &stubFinder{words: []string{"achiest", "chaise", "heat"}}

	player := NewPlayer(env, gen, finder)
	done, err := player.TakeTurn(context.Background())
	if err != nil {
		t.Fatalf("TakeTurn: %v", err)
	}
	if !done {
		t.Error("done = false, want true")
	}
	if env.stepped != "[achiest]" {
		t.Errorf("submitted action = %q, want [achiest]", env.stepped)
	}

	// the model saw the enhanced prompt with words and opening analysis
	if !strings.Contains(gen.prompt, "7-letter words: achiest") {
		t.Errorf("prompt missing word suggestions:\n%s", gen.prompt)
	}
	if !strings.Contains(gen.prompt, "Strategic Analysis") {
		t.Errorf("prompt missing opening analysis:\n%s", gen.prompt)
	}
}

func TestPlayerKeepsLettersAcrossTurns(t *testing.T) {
	env := &stubEnv{obs: "You are Player 0.\nAllowed Letters: acehist\n"}
	gen := &stubGen{response: "[heat]"}
	finder := &stubFinder{words: []string{"heat"}}

	player := NewPlayer(env, gen, finder)
	if _, err := player.TakeTurn(context.Background()); err != nil {
		t.Fatal(err)
	}

	// later observations omit the letters header
	env.obs = "[Player 1] played [that]. Your move."
	if _, err := player.TakeTurn(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gen.prompt, "4-letter words: heat") {
		t.Errorf("letters not retained across turns, prompt:\n%s", gen.prompt)
	}
}

func TestPlayerWithoutLetters(t *testing.T) {
	env := &stubEnv{obs: "waiting for game to start"}
	gen := &stubGen{response: "ok"}
	finder := &stubFinder{words: []string{"never"}}

	player := NewPlayer(env, gen, finder)
	if _, err := player.TakeTurn(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gen.prompt != env.obs {
		t.Errorf("observation should pass through unchanged, got:\n%s", gen.prompt)
	}
	// no bracketed word in the response, raw response is submitted
	if env.stepped != "ok" {
		t.Errorf("submitted action = %q, want raw response", env.stepped)
	}
}

func TestPlayerReplacesUnknownWord(t *testing.T) {
	env := &stubEnv{obs: "You are Player 0.\nAllowed Letters: acehist\n"}
	gen := &stubGen{response: "I confidently play [hasties]."}
	finder := &stubFinder{words: []string{"achiest", "chaise", "heat"}}

	player := NewPlayer(env, gen, finder)
	if _, err := player.TakeTurn(context.Background()); err != nil {
		t.Fatal(err)
	}
	// hasties is not in the dictionary, the longest real candidate is played
	if env.stepped != "[achiest]" {
		t.Errorf("submitted action = %q, want [achiest]", env.stepped)
	}
}

func TestPlayerKeepsUnknownWordWithoutCandidates(t *testing.T) {
	env := &stubEnv{obs: "You are Player 0.\nAllowed Letters: xyz\n"}
	gen := &stubGen{response: "[xyzzy]"}
	finder := &stubFinder{}

	player := NewPlayer(env, gen, finder)
	if _, err := player.TakeTurn(context.Background()); err != nil {
		t.Fatal(err)
	}
	// nothing to substitute, the move goes through as proposed
	if env.stepped != "[xyzzy]" {
		t.Errorf("submitted action = %q, want [xyzzy]", env.stepped)
	}
}
