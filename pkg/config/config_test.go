package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.MinWordLen != 4 {
		t.Errorf("MinWordLen = %d, want 4", cfg.Server.MinWordLen)
	}
	if cfg.Client.Timeout() != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Client.Timeout())
	}

	zero := ClientConfig{}
	if zero.Timeout() != 5*time.Second {
		t.Errorf("zero-value Timeout = %v, want the 5s floor", zero.Timeout())
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordhive.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Server.MCPAddr != ":8000" {
		t.Errorf("MCPAddr = %q, want :8000", cfg.Server.MCPAddr)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}

	// round trip through the written file
	again, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *again != *cfg {
		t.Errorf("reloaded config differs: %+v vs %+v", again, cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordhive.toml")
	content := `
[server]
mcp_addr = ":9000"
min_word_len = 5

[client]
transport = "http"
timeout_seconds = 2
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.MCPAddr != ":9000" || cfg.Server.MinWordLen != 5 {
		t.Errorf("server section not applied: %+v", cfg.Server)
	}
	if cfg.Client.Transport != "http" || cfg.Client.Timeout() != 2*time.Second {
		t.Errorf("client section not applied: %+v", cfg.Client)
	}
	// untouched sections keep defaults
	if cfg.Server.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want default :8080", cfg.Server.HTTPAddr)
	}
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordhive.toml")
	// server section parses, the trailing line is broken
	content := "[server]\nhttp_addr = \":7070\"\n\n[client\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err == nil {
		// full parse should have failed; recovery path returns the error
		t.Log("malformed TOML parsed cleanly, recovery not exercised")
	}
	if cfg == nil {
		t.Fatal("LoadConfig returned nil config")
	}
	if cfg.Server.MinWordLen != 4 {
		t.Errorf("defaults lost in recovery: %+v", cfg.Server)
	}
}

func TestLoadConfigRecoversValidKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordhive.toml")
	// the file parses as TOML but min_word_len has the wrong type, so the
	// strict decode fails and recovery salvages the well-typed keys
	content := `
[server]
mcp_addr = ":9000"
min_word_len = "four"

[cli]
words_per_tier = 3
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, _ := LoadConfig(path)
	if cfg == nil {
		t.Fatal("LoadConfig returned nil config")
	}
	if cfg.Server.MCPAddr != ":9000" {
		t.Errorf("MCPAddr = %q, want the salvaged :9000", cfg.Server.MCPAddr)
	}
	if cfg.Server.MinWordLen != 4 {
		t.Errorf("MinWordLen = %d, want the default 4 for the mistyped key", cfg.Server.MinWordLen)
	}
	if cfg.CLI.WordsPerTier != 3 {
		t.Errorf("WordsPerTier = %d, want the salvaged 3", cfg.CLI.WordsPerTier)
	}
}
