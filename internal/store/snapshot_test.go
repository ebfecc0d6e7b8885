package store

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestSnapshotStore_WriteAndRead(t *testing.T) {
	s := NewSnapshotStore(t.TempDir(), time.Date(2026, 1, 15, 19, 30, 0, 0, time.UTC))

	if err := s.Write("mTeam", []byte(`{"teams":[{"id":1}]}`)); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := s.Read("mTeam")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	// Valid JSON is pretty-printed on the way in.
	if !strings.Contains(string(got), "\n  \"teams\"") {
		t.Errorf("payload not indented: %q", got)
	}
	if !strings.Contains(s.Path("mTeam"), "2026-01-15T19-30-00") {
		t.Errorf("path %q missing run timestamp", s.Path("mTeam"))
	}
}

func TestSnapshotStore_NonJSONWrittenVerbatim(t *testing.T) {
	s := NewSnapshotStore(t.TempDir(), time.Now())

	body := []byte("<html>not json</html>")
	if err := s.Write("broken", body); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := os.ReadFile(s.Path("broken"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != string(body) {
		t.Errorf("payload = %q, want verbatim %q", got, body)
	}
}

func TestSnapshotStore_ReadMissing(t *testing.T) {
	s := NewSnapshotStore(t.TempDir(), time.Now())
	if _, err := s.Read("nope"); err == nil {
		t.Error("Read of missing snapshot succeeded")
	}
}
