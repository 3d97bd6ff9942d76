/*
Package main implements hiveplay, a one-turn harness for the word-game
agent.

hiveplay reads a game observation from stdin (or a file), asks the word
finder for every playable word, enhances the observation with the word
list and strategy facts, sends it to the language model, and prints the
extracted move to stdout. The remote wordhive frontend is preferred for
the lookup; when it is unreachable the embedded fallback corpus answers
instead, so a turn always completes.

The model API key is read from GEMINI_API_KEY, optionally via a .env
file in the working directory.

	wordhive -data data/words.txt &
	hiveplay -model gemini-2.0-flash < observation.txt
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/wordhive/wordhive/internal/agent"
	"github.com/wordhive/wordhive/pkg/client"
	"github.com/wordhive/wordhive/pkg/config"
)

// stdioEnv adapts stdin/stdout to the agent's Environment interface: the
// observation is whatever arrives on the reader, the action goes to the
// writer. One observation, one step.
type stdioEnv struct {
	in  io.Reader
	out io.Writer
}

func (e *stdioEnv) Observe() (string, error) {
	data, err := io.ReadAll(e.in)
	if err != nil {
		return "", fmt.Errorf("reading observation: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty observation")
	}
	return string(data), nil
}

func (e *stdioEnv) Step(action string) (bool, error) {
	fmt.Fprintln(e.out, action)
	return true, nil
}

func main() {
	obsFile := flag.String("obs", "", "Read the observation from a file instead of stdin")
	model := flag.String("model", "", "Model name (default: "+agent.DefaultModel+")")
	configPath := flag.String("config", "", "Path to a custom config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	flag.Parse()

	if *debugMode {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY is not set")
	}

	appConfig, _, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	gen, err := agent.NewGenaiGenerator(ctx, apiKey, *model)
	if err != nil {
		log.Fatalf("Failed to create generator: %v", err)
	}

	var in io.Reader = os.Stdin
	if *obsFile != "" {
		f, err := os.Open(*obsFile)
		if err != nil {
			log.Fatalf("Failed to open observation file: %v", err)
		}
		defer f.Close()
		in = f
	}

	finder := client.NewFinder(appConfig.Client)
	player := agent.NewPlayer(&stdioEnv{in: in, out: os.Stdout}, gen, finder)

	if _, err := player.TakeTurn(ctx); err != nil {
		log.Fatalf("Turn failed: %v", err)
	}
}
