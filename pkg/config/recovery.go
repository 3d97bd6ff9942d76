package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// decodeLoose re-parses a config file into a raw section map. Used when
// strict decoding failed: whatever TOML still parses comes back and the
// recovery path picks the wordhive sections out of it.
func decodeLoose(configPath string) (map[string]any, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	raw := make(map[string]any)
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// section pulls one named table out of loosely parsed TOML.
func section(raw map[string]any, name string) (map[string]any, bool) {
	s, ok := raw[name].(map[string]any)
	return s, ok
}

// strValue reads a string key from a raw section.
func strValue(s map[string]any, key string) (string, bool) {
	v, ok := s[key].(string)
	return v, ok
}

// intValue reads an integer key from a raw section. TOML integers decode
// as int64, config fields are plain int.
func intValue(s map[string]any, key string) (int, bool) {
	v, ok := s[key].(int64)
	return int(v), ok
}

// boolValue reads a boolean key from a raw section.
func boolValue(s map[string]any, key string) (bool, bool) {
	v, ok := s[key].(bool)
	return v, ok
}
