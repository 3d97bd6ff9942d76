package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewNormalization(t *testing.T) {
	c := New([]string{"Heat", "HEAT", "heat", " chaise ", "don't", "café", "", "x1y"}, "test")

	// heat and chaise survive; case variants collapse, entries with
	// apostrophes, accents, or digits are dropped
	if c.Len() != 2 {
		t.Fatalf("indexed %d words, want 2: %v", c.Len(), c.Entries())
	}
	for _, probe := range []string{"heat", "chaise", "HEAT", "Chaise"} {
		if !c.Contains(probe) {
			t.Errorf("Contains(%q) = false, want true", probe)
		}
	}
	for _, probe := range []string{"don't", "café", "x1y", ""} {
		if c.Contains(probe) {
			t.Errorf("Contains(%q) = true, want false", probe)
		}
	}
}

func TestEntryMasks(t *testing.T) {
	c := New([]string{"abca"}, "test")
	if c.Len() != 1 {
		t.Fatalf("indexed %d words, want 1", c.Len())
	}
	// bits for a, b, c only; repeat letters set no extra bits
	want := uint32(1<<0 | 1<<1 | 1<<2)
	if got := c.Entries()[0].Mask; got != want {
		t.Errorf("mask = %b, want %b", got, want)
	}
}

func TestWordsWithPrefix(t *testing.T) {
	c := New([]string{"teach", "team", "tear", "chalk", "tea"}, "test")

	got := c.WordsWithPrefix("tea", 0)
	want := []string{"tea", "teach", "team", "tear"}
	if len(got) != len(want) {
		t.Fatalf("WordsWithPrefix = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("WordsWithPrefix = %v, want %v", got, want)
		}
	}

	if got := c.WordsWithPrefix("tea", 2); len(got) != 2 {
		t.Errorf("limited WordsWithPrefix = %v, want 2 entries", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("chaise\nace\ncat\nachiest\n"), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 4 {
		t.Errorf("loaded %d words, want 4", c.Len())
	}

	if _, err := Load(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("Load of missing file succeeded, want error")
	}

	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(empty); err == nil {
		t.Error("Load of empty file succeeded, want error")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()
	orig := New([]string{"chaise", "achiest", "teach"}, "test")

	snapPath := filepath.Join(dir, "words.txt.whs")
	if err := orig.SaveSnapshot(snapPath); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	loaded, err := LoadSnapshot(snapPath)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if loaded.Len() != orig.Len() {
		t.Fatalf("snapshot has %d words, want %d", loaded.Len(), orig.Len())
	}
	for i, e := range orig.Entries() {
		le := loaded.Entries()[i]
		if le.Word != e.Word || le.Mask != e.Mask {
			t.Errorf("entry %d: got %+v, want %+v", i, le, e)
		}
	}
	if !loaded.Contains("teach") {
		t.Error("trie not rebuilt from snapshot")
	}
}

func TestLoadWithSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("chaise\nteach\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// first load builds and writes the snapshot
	c1, err := LoadWithSnapshot(path)
	if err != nil {
		t.Fatalf("LoadWithSnapshot: %v", err)
	}
	if _, err := os.Stat(SnapshotPath(path)); err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}

	// second load prefers the snapshot and must agree
	c2, err := LoadWithSnapshot(path)
	if err != nil {
		t.Fatalf("second LoadWithSnapshot: %v", err)
	}
	if c2.Len() != c1.Len() {
		t.Errorf("snapshot load has %d words, want %d", c2.Len(), c1.Len())
	}

	// corrupt snapshot falls back to the text list
	if err := os.WriteFile(SnapshotPath(path), []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}
	// keep the snapshot newer than the source so it is actually tried
	c3, err := LoadWithSnapshot(path)
	if err != nil {
		t.Fatalf("LoadWithSnapshot with corrupt snapshot: %v", err)
	}
	if c3.Len() != c1.Len() {
		t.Errorf("fallback load has %d words, want %d", c3.Len(), c1.Len())
	}
}

func TestFallback(t *testing.T) {
	c := Fallback()
	if c.Len() == 0 {
		t.Fatal("embedded fallback corpus is empty")
	}
	// a few everyday words the embedded list is expected to carry
	for _, w := range []string{"each", "that", "heat", "teach"} {
		if !c.Contains(w) {
			t.Errorf("fallback corpus missing %q", w)
		}
	}
	if c != Fallback() {
		t.Error("Fallback built the corpus twice")
	}
}
