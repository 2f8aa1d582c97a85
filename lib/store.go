package lib

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	c "github.com/udhaar-dev/udhaar/constants"

	"gopkg.in/yaml.v3"
)

// Store persists record sets as yaml documents under a single directory.
// There are exactly two slots: the active records and the archive. Each
// slot is an independent file, so a corrupt archive cannot take the active
// records down with it.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory this store reads and writes.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(slot string) string {
	return filepath.Join(s.dir, slot)
}

// Load reads one slot. Any failure degrades to an empty set: a slot that
// was never written is simply empty, and a slot that no longer parses is
// logged and treated as empty rather than wedging the whole app at
// startup. Callers never see an error from this.
func (s *Store) Load(slot string) RecordSet {
	rs := RecordSet{}

	b, err := os.ReadFile(s.path(slot))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("failed to read records", "slot", slot, "err", err)
		}

		return rs
	}

	err = yaml.Unmarshal(b, &rs)
	if err != nil {
		slog.Warn("failed to parse records, starting empty", "slot", slot, "err", err)

		return RecordSet{}
	}

	return rs
}

// Save writes one slot, creating the storage directory on first use.
func (s *Store) Save(slot string, rs RecordSet) error {
	err := os.MkdirAll(s.dir, 0o755)
	if err != nil {
		return fmt.Errorf("failed to make storage dir %v: %w", s.dir, err)
	}

	b, err := yaml.Marshal(rs)
	if err != nil {
		return fmt.Errorf("failed to marshal records for %v: %w", slot, err)
	}

	//nolint:gosec
	err = os.WriteFile(s.path(slot), b, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write %v: %w", s.path(slot), err)
	}

	return nil
}

func (s *Store) LoadActive() RecordSet {
	return s.Load(c.ActiveSlot)
}

func (s *Store) SaveActive(rs RecordSet) error {
	return s.Save(c.ActiveSlot, rs)
}

func (s *Store) LoadArchive() RecordSet {
	return s.Load(c.ArchiveSlot)
}

func (s *Store) SaveArchive(rs RecordSet) error {
	return s.Save(c.ArchiveSlot, rs)
}
