package corpus

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Load reads a plain-text word list, one word per line, and builds a corpus.
// A missing or unreadable file is an error: the service cannot start without
// its primary corpus, so callers treat this as fatal.
func Load(path string) (*Corpus, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list %s: %w", path, err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list %s: %w", path, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list %s is empty", path)
	}

	return New(words, filepath.Base(path)), nil
}

// LoadWithSnapshot loads a word list, preferring a binary snapshot written
// next to it when the snapshot is at least as fresh as the source. A stale,
// missing, or corrupt snapshot silently falls back to the text list and a
// new snapshot is written best-effort.
func LoadWithSnapshot(path string) (*Corpus, error) {
	snapPath := SnapshotPath(path)

	if srcInfo, err := os.Stat(path); err == nil {
		if snapInfo, err := os.Stat(snapPath); err == nil && !snapInfo.ModTime().Before(srcInfo.ModTime()) {
			c, err := LoadSnapshot(snapPath)
			if err == nil {
				log.Debugf("loaded corpus snapshot %s (%d words)", snapPath, c.Len())
				return c, nil
			}
			log.Warnf("corpus snapshot %s unusable, reloading text list: %v", snapPath, err)
		}
	}

	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := c.SaveSnapshot(snapPath); err != nil {
		log.Warnf("could not write corpus snapshot %s: %v", snapPath, err)
	}
	return c, nil
}
