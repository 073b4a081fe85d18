// Package cache persists run metadata between extractions: content hashes of
// the input token files, and a snapshot of the last run's resolved tokens for
// change reporting.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/ivanyeors/solar-design-system/fs"
	"github.com/ivanyeors/solar-design-system/token"
)

const (
	// InfoFile holds the hashes and counts of the previous run.
	InfoFile = "token_cache.json"

	// SnapshotFile holds the previous run's resolved tokens.
	SnapshotFile = "tokens_backup.json"
)

// Info is the persisted record of one extraction run.
type Info struct {
	LastRun    time.Time `json:"lastRun"`
	TokenCount int       `json:"tokenCount"`

	// Files maps each input file path to the SHA-256 hex digest of its
	// contents at the time of the run.
	Files map[string]string `json:"files"`

	// OutputFiles lists the paths written by the run.
	OutputFiles []string `json:"outputFiles,omitempty"`
}

// Entry is one token in a snapshot.
type Entry struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

// Snapshot maps dotted token paths to their resolved values. Paths are
// qualified by scope so the same token in two brands stays distinct.
type Snapshot map[string]Entry

// TableSnapshot collects the resolved tokens of the given tables into a
// snapshot keyed by "<scope>:<path>".
func TableSnapshot(tables ...*token.Table) Snapshot {
	snap := make(Snapshot)
	for _, table := range tables {
		scope := table.Scope().String()
		for _, tok := range table.Tokens() {
			snap[scope+":"+tok.DotPath()] = Entry{
				Value: tok.Value(),
				Type:  string(tok.Type),
			}
		}
	}
	return snap
}

// Store reads and writes cache files under one directory.
type Store struct {
	fs  fs.FileSystem
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(filesystem fs.FileSystem, dir string) *Store {
	return &Store{fs: filesystem, dir: dir}
}

func (s *Store) infoPath() string {
	return filepath.Join(s.dir, InfoFile)
}

func (s *Store) snapshotPath() string {
	return filepath.Join(s.dir, SnapshotFile)
}

// Load reads the previous run's info. A missing cache file is not an error;
// the second return value reports whether one existed.
func (s *Store) Load() (Info, bool, error) {
	if !s.fs.Exists(s.infoPath()) {
		return Info{}, false, nil
	}
	data, err := s.fs.ReadFile(s.infoPath())
	if err != nil {
		return Info{}, false, fmt.Errorf("reading cache: %w", err)
	}
	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return Info{}, false, fmt.Errorf("parsing cache: %w", err)
	}
	return info, true, nil
}

// Save writes the run info, creating the cache directory if needed.
func (s *Store) Save(info Info) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	return s.fs.WriteFile(s.infoPath(), data, 0o644)
}

// HashFile returns the SHA-256 hex digest of a file's contents.
func (s *Store) HashFile(path string) (string, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Hashes digests every path, for recording in Info.Files.
func (s *Store) Hashes(paths []string) (map[string]string, error) {
	out := make(map[string]string, len(paths))
	for _, path := range paths {
		h, err := s.HashFile(path)
		if err != nil {
			return nil, err
		}
		out[path] = h
	}
	return out, nil
}

// Changed reports whether the input files differ from the previous run, with
// a human-readable reason. Unreadable inputs and a missing or corrupt cache
// both count as changed.
func (s *Store) Changed(paths []string) (bool, string) {
	info, ok, err := s.Load()
	if err != nil || !ok || len(info.Files) == 0 {
		return true, "no previous run information found"
	}

	if len(paths) != len(info.Files) {
		return true, "input file set changed since last run"
	}
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)
	for _, path := range sorted {
		cached, ok := info.Files[path]
		if !ok {
			return true, fmt.Sprintf("%s was not part of the last run", path)
		}
		current, err := s.HashFile(path)
		if err != nil {
			return true, fmt.Sprintf("%s could not be read", path)
		}
		if current != cached {
			return true, fmt.Sprintf("%s has been modified since last run", path)
		}
	}
	return false, fmt.Sprintf("token files unchanged since last run at %s", info.LastRun.Format(time.RFC3339))
}

// LoadSnapshot reads the previous run's token snapshot. A missing snapshot
// returns nil without error.
func (s *Store) LoadSnapshot() (Snapshot, error) {
	if !s.fs.Exists(s.snapshotPath()) {
		return nil, nil
	}
	data, err := s.fs.ReadFile(s.snapshotPath())
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return snap, nil
}

// SaveSnapshot writes the current run's tokens for the next run's report.
func (s *Store) SaveSnapshot(snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	return s.fs.WriteFile(s.snapshotPath(), data, 0o644)
}
