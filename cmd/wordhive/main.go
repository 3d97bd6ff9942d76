// Copyright 2025 The WordHive Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the WordHive word-matching service and CLI.

WordHive answers one question fast: which dictionary words can be built
from a given set of allowed letters? A word qualifies when every one of
its characters is in the letter set (letters may repeat) and it is at
least 4 characters long. The service loads its word list once at startup
and serves queries from an immutable in-memory index.

# Usage

Start the serving frontend with a word list:

	wordhive -data data/words.txt

Enable debug logging and custom ports:

	wordhive -data data/words.txt -d -mcp-addr :8000 -http-addr :8080

Run in CLI mode for interactive testing:

	wordhive -data data/words.txt -c

# Serving

The frontend exposes the same engine on two independent listeners:

  - an MCP tool server (streamable HTTP, endpoint /mcp) with a single
    find_words tool taking a `letters` array;
  - a plain HTTP endpoint, GET /find_words?letters=a,c,e returning the
    matched words as a JSON array.

Both listeners serve concurrent queries without cross-request
interference; the corpus is read-only after load, so no locking is
involved anywhere on the query path.

# Configuration

Runtime configuration is managed through a TOML file, created with
defaults on first run:

	[server]
	mcp_addr = ":8000"
	http_addr = ":8080"
	min_word_len = 4

	[dict]
	path = "data/words.txt"
	snapshot = true

	[client]
	transport = "mcp"
	mcp_url = "http://localhost:8000/mcp"
	timeout_seconds = 5

With snapshot enabled, a msgpack snapshot of the normalized corpus is
written next to the word list and preferred on later startups.

# CLI Mode

CLI mode reads a letter set per line from stdin and prints every word the
engine can build, grouped by length with the longest tier first. It is
intended for testing and debugging; new behavior should be checked here
before being exercised over the network.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/wordhive/wordhive/internal/cli"
	"github.com/wordhive/wordhive/internal/utils"
	"github.com/wordhive/wordhive/pkg/config"
	"github.com/wordhive/wordhive/pkg/corpus"
	"github.com/wordhive/wordhive/pkg/match"
	"github.com/wordhive/wordhive/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "wordhive"
	gh      = "https://github.com/wordhive/wordhive"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the frontend or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dataPath := flag.String("data", "", "Path to the word list file (one word per line)")
	configPath := flag.String("config", "", "Path to a custom config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	mcpAddr := flag.String("mcp-addr", "", "Tool listener address (overrides config)")
	httpAddr := flag.String("http-addr", "", "Query listener address (overrides config)")

	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ WordHive ] Finds every word your letters can build!")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	appConfig, activeConfigPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", activeConfigPath)

	if *mcpAddr != "" {
		appConfig.Server.MCPAddr = *mcpAddr
	}
	if *httpAddr != "" {
		appConfig.Server.HTTPAddr = *httpAddr
	}
	if *dataPath != "" {
		appConfig.Dict.Path = *dataPath
	}

	resolvedData := appConfig.Dict.Path
	if resolver, err := utils.NewPathResolver(); err == nil {
		if p, err := resolver.ResolveDataFile(appConfig.Dict.Path); err == nil {
			resolvedData = p
		}
	}
	log.Debugf("Using word list at: %s", resolvedData)

	var c *corpus.Corpus
	if appConfig.Dict.Snapshot {
		c, err = corpus.LoadWithSnapshot(resolvedData)
	} else {
		c, err = corpus.Load(resolvedData)
	}
	if err != nil {
		// The service cannot start without its primary corpus.
		log.Fatalf("Failed to load corpus: %v", err)
	}

	engine := match.NewEngineWithMinLen(c, appConfig.Server.MinWordLen)

	if *cliMode {
		log.SetReportTimestamp(false)
		handler := cli.NewInputHandler(engine, appConfig.CLI.WordsPerTier, appConfig.CLI.ShowDistribution)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	frontend := server.NewFrontend(engine, appConfig.Server, Version)
	if err := frontend.Start(); err != nil {
		log.Fatalf("Failed to start frontend: %v", err)
	}

	showStartupInfo(resolvedData, c.Len())

	if err := <-frontend.Err(); err != nil {
		log.Fatalf("Frontend failed: %v", err)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dataPath string, wordCount int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("==========")
	println(" WordHive ")
	println("==========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("word list: ( %s )", dataPath)
	log.Infof("words indexed: %d", wordCount)
	log.Info("status: ready")
	println("==========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
