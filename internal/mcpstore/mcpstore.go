package mcpstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/protocollar/mcpm/internal/flock"
)

// Kind selects how a record is launched by claude.
type Kind string

const (
	KindNpx Kind = "npx"
	KindEnv Kind = "env"
)

// Record is one configured MCP server.
type Record struct {
	Name    string `json:"name"`
	Kind    Kind   `json:"type"`
	Path    string `json:"path"`
	Options string `json:"options"`
}

// Document is the root object persisted to the config file.
type Document struct {
	Mcps []Record `json:"mcps"`
}

var (
	ErrNotFound      = errors.New("mcp not found")
	ErrInvalidImport = errors.New("import file is not valid JSON")
	ErrImportMissing = errors.New("import file not found")
)

// ParseError reports a config file that exists but cannot be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// EnvConfig overrides the default config path when set.
const EnvConfig = "MCPM_CONFIG"

// DefaultPath returns the config path: $MCPM_CONFIG, or ~/.config/mcpm/mcps.json.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "mcpm", "mcps.json"), nil
}

// Store reads and writes the MCP list at a fixed path. Every operation
// re-reads the file; nothing is cached between calls.
type Store struct {
	path string
}

// New returns a store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// EnsureExists creates the config file with an empty list if it is absent.
func (s *Store) EnsureExists() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking config: %w", err)
	}
	return s.write(&Document{Mcps: []Record{}})
}

// Load returns every record in document order.
func (s *Store) Load() ([]Record, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Mcps, nil
}

// Find returns the first record named name.
func (s *Store) Find(name string) (*Record, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Name == name {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Append adds r to the end of the list. Names are not checked for collisions.
func (s *Store) Append(r Record) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Mcps = append(doc.Mcps, r)
	return s.write(doc)
}

// Remove deletes every record named name and returns how many were dropped.
// The file is left untouched when nothing matches.
func (s *Store) Remove(name string) (int, error) {
	doc, err := s.read()
	if err != nil {
		return 0, err
	}
	kept := make([]Record, 0, len(doc.Mcps))
	for _, r := range doc.Mcps {
		if r.Name != name {
			kept = append(kept, r)
		}
	}
	removed := len(doc.Mcps) - len(kept)
	if removed == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	doc.Mcps = kept
	return removed, s.write(doc)
}

// Replace overwrites the whole list.
func (s *Store) Replace(records []Record) error {
	if records == nil {
		records = []Record{}
	}
	return s.write(&Document{Mcps: records})
}

// ExportName returns the default export file name for t.
func ExportName(t time.Time) string {
	return "mcp_export_" + t.Format("20060102_150405") + ".json"
}

// Export copies the config file byte for byte to dst. An empty dst uses
// ExportName in the working directory. The written path is returned.
func (s *Store) Export(dst string) (string, error) {
	if dst == "" {
		dst = ExportName(time.Now())
	}
	if err := s.EnsureExists(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("reading config: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return dst, nil
}

// BackupPath is where Import saves the previous config.
func (s *Store) BackupPath() string {
	return s.path + ".backup"
}

// Import replaces the config with the contents of src. The source must be
// valid JSON; the current config, if any, is copied to BackupPath first.
// Returns whether a backup was written.
func (s *Store) Import(src string) (bool, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		if os.IsNotExist(err) {
			return false, fmt.Errorf("%w: %s", ErrImportMissing, src)
		}
		return false, fmt.Errorf("reading import: %w", err)
	}
	if !json.Valid(data) {
		return false, fmt.Errorf("%w: %s", ErrInvalidImport, src)
	}

	backedUp := false
	if cur, err := os.ReadFile(s.path); err == nil {
		if err := writeAtomic(s.BackupPath(), cur); err != nil {
			return false, fmt.Errorf("writing backup: %w", err)
		}
		backedUp = true
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("reading config: %w", err)
	}

	if err := s.writeBytes(data); err != nil {
		return backedUp, err
	}
	return backedUp, nil
}

func (s *Store) read() (*Document, error) {
	if err := s.EnsureExists(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: s.path, Err: err}
	}
	if doc.Mcps == nil {
		doc.Mcps = []Record{}
	}
	return &doc, nil
}

func (s *Store) write(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return s.writeBytes(append(data, '\n'))
}

// writeBytes replaces the config file under the advisory lock.
func (s *Store) writeBytes(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return flock.WithLock(s.path+".lock", func() error {
		return writeAtomic(s.path, data)
	})
}

// writeAtomic writes data to a temp file next to path and renames it over path.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Names returns the names of records in order.
func Names(records []Record) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names
}

// trim is used by BuildRecord so whitespace-only answers count as missing.
func trim(s string) string {
	return strings.TrimSpace(s)
}
