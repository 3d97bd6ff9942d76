package corpus

import (
	"fmt"
	"os"

	"github.com/tchap/go-patricia/v2/patricia"
	"github.com/vmihailenco/msgpack/v5"
)

// snapshotVersion guards against reading snapshots written by an
// incompatible layout. Bump on any field change.
const snapshotVersion = 1

// snapshot is the msgpack layout of a serialized corpus. Masks are stored
// alongside words so a snapshot load skips per-character scanning entirely.
type snapshot struct {
	Version int      `msgpack:"v"`
	Source  string   `msgpack:"src"`
	Words   []string `msgpack:"w"`
	Masks   []uint32 `msgpack:"m"`
}

// SnapshotPath returns the snapshot filename for a given word list path.
func SnapshotPath(listPath string) string {
	return listPath + ".whs"
}

// SaveSnapshot writes the corpus as a msgpack snapshot.
func (c *Corpus) SaveSnapshot(path string) error {
	snap := snapshot{
		Version: snapshotVersion,
		Source:  c.source,
		Words:   make([]string, len(c.entries)),
		Masks:   make([]uint32, len(c.entries)),
	}
	for i, e := range c.entries {
		snap.Words[i] = e.Word
		snap.Masks[i] = e.Mask
	}

	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("encoding corpus snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing corpus snapshot %s: %w", path, err)
	}
	return nil
}

// LoadSnapshot reads a msgpack corpus snapshot. Entries are trusted to be
// already normalized, only the trie is rebuilt.
func LoadSnapshot(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus snapshot %s: %w", path, err)
	}

	var snap snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding corpus snapshot %s: %w", path, err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("corpus snapshot %s has version %d, want %d", path, snap.Version, snapshotVersion)
	}
	if len(snap.Words) != len(snap.Masks) {
		return nil, fmt.Errorf("corpus snapshot %s is inconsistent: %d words, %d masks", path, len(snap.Words), len(snap.Masks))
	}

	c := &Corpus{
		entries: make([]Entry, len(snap.Words)),
		trie:    patricia.NewTrie(),
		source:  snap.Source,
	}
	for i, word := range snap.Words {
		c.entries[i] = Entry{Word: word, Mask: snap.Masks[i]}
		c.trie.Insert(patricia.Prefix(word), i)
	}
	return c, nil
}
