// Package store writes raw ESPN API payloads to disk so they can be
// inspected offline or replayed against the parsers. It is a debugging aid,
// not a cache: the analysis tools always fetch live.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SnapshotStore drops one timestamped directory of payloads per run under
// Root, e.g. data/snapshots/2026-01-15T19-30-00/mTeam.json.
type SnapshotStore struct {
	Root string
	dir  string
}

func NewSnapshotStore(root string, now time.Time) *SnapshotStore {
	return &SnapshotStore{
		Root: root,
		dir:  now.UTC().Format("2006-01-02T15-04-05"),
	}
}

// Path returns the absolute location a named payload would be written to.
func (s *SnapshotStore) Path(name string) string {
	return filepath.Join(s.Root, s.dir, name+".json")
}

// Write saves one payload, pretty-printing it when it parses as JSON.
// Payloads that don't parse are written verbatim so a broken response can
// still be inspected.
func (s *SnapshotStore) Write(name string, body []byte) error {
	path := s.Path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(body, &v); err == nil {
		buf := &bytes.Buffer{}
		enc := json.NewEncoder(buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("snapshot %s: %w", name, err)
		}
		body = buf.Bytes()
	}

	return os.WriteFile(path, body, 0o644)
}

// Read loads a previously written payload.
func (s *SnapshotStore) Read(name string) ([]byte, error) {
	return os.ReadFile(s.Path(name))
}
