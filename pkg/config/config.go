/*
Package config manages TOML config for WordHive services.
*/
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/wordhive/wordhive/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	Dict   DictConfig   `toml:"dict"`
	Client ClientConfig `toml:"client"`
	CLI    CliConfig    `toml:"cli"`
}

// ServerConfig has frontend listener options.
type ServerConfig struct {
	MCPAddr    string `toml:"mcp_addr"`
	HTTPAddr   string `toml:"http_addr"`
	MinWordLen int    `toml:"min_word_len"`
}

// DictConfig holds word list options.
type DictConfig struct {
	Path     string `toml:"path"`
	Snapshot bool   `toml:"snapshot"`
}

// ClientConfig holds remote lookup options for the fallback client.
type ClientConfig struct {
	Transport      string `toml:"transport"` // "mcp" or "http"
	MCPURL         string `toml:"mcp_url"`
	HTTPURL        string `toml:"http_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Timeout returns the bounded wait for one remote attempt.
func (c ClientConfig) Timeout() time.Duration {
	secs := c.TimeoutSeconds
	if secs < 1 {
		secs = 5
	}
	return time.Duration(secs) * time.Second
}

// CliConfig holds interactive mode options.
type CliConfig struct {
	WordsPerTier     int  `toml:"words_per_tier"`
	ShowDistribution bool `toml:"show_distribution"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MCPAddr:    ":8000",
			HTTPAddr:   ":8080",
			MinWordLen: 4,
		},
		Dict: DictConfig{
			Path:     "data/words.txt",
			Snapshot: true,
		},
		Client: ClientConfig{
			Transport:      "mcp",
			MCPURL:         "http://localhost:8000/mcp",
			HTTPURL:        "http://localhost:8080/find_words",
			TimeoutSeconds: 5,
		},
		CLI: CliConfig{
			WordsPerTier:     10,
			ShowDistribution: true,
		},
	}
}

// LoadConfig loads a config file, falling back to partial recovery when the
// TOML is malformed: whatever sections still parse are applied over defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		log.Warnf("TOML parsing error in config file %s: %v. Attempting partial recovery...", configPath, err)
		return loadConfigWithRecovery(configPath)
	}
	return config, nil
}

// InitConfig loads the config at path, creating it with defaults first when
// it does not exist.
func InitConfig(configPath string) (*Config, error) {
	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Could not create config file at %s: %v. Using builtin defaults...", configPath, err)
			return config, nil
		}
		log.Debugf("Created default config at %s", configPath)
		return config, nil
	}
	return LoadConfig(configPath)
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path inside the platform config dir
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	resolver, err := utils.NewPathResolver()
	if err != nil {
		log.Warnf("Failed to initialize path resolver: %v. Using builtin defaults...", err)
		return DefaultConfig(), "", nil
	}
	defaultPath, err := resolver.GetConfigPath("wordhive.toml")
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using builtin defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// loadConfigWithRecovery salvages valid sections from a partly broken file.
func loadConfigWithRecovery(configPath string) (*Config, error) {
	config := DefaultConfig()
	raw, err := decodeLoose(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v", configPath, err)
		return config, err
	}
	if s, ok := section(raw, "server"); ok {
		recoverServer(s, &config.Server)
	}
	if s, ok := section(raw, "dict"); ok {
		recoverDict(s, &config.Dict)
	}
	if s, ok := section(raw, "client"); ok {
		recoverClient(s, &config.Client)
	}
	if s, ok := section(raw, "cli"); ok {
		recoverCLI(s, &config.CLI)
	}
	return config, nil
}

func recoverServer(s map[string]any, server *ServerConfig) {
	if val, ok := strValue(s, "mcp_addr"); ok {
		server.MCPAddr = val
	}
	if val, ok := strValue(s, "http_addr"); ok {
		server.HTTPAddr = val
	}
	if val, ok := intValue(s, "min_word_len"); ok {
		server.MinWordLen = val
	}
}

func recoverDict(s map[string]any, dict *DictConfig) {
	if val, ok := strValue(s, "path"); ok {
		dict.Path = val
	}
	if val, ok := boolValue(s, "snapshot"); ok {
		dict.Snapshot = val
	}
}

func recoverClient(s map[string]any, client *ClientConfig) {
	if val, ok := strValue(s, "transport"); ok {
		client.Transport = val
	}
	if val, ok := strValue(s, "mcp_url"); ok {
		client.MCPURL = val
	}
	if val, ok := strValue(s, "http_url"); ok {
		client.HTTPURL = val
	}
	if val, ok := intValue(s, "timeout_seconds"); ok {
		client.TimeoutSeconds = val
	}
}

func recoverCLI(s map[string]any, cli *CliConfig) {
	if val, ok := intValue(s, "words_per_tier"); ok {
		cli.WordsPerTier = val
	}
	if val, ok := boolValue(s, "show_distribution"); ok {
		cli.ShowDistribution = val
	}
}
