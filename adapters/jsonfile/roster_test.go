package jsonfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"scoreboard/core"
)

func writeRoster(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write roster: %v", err)
	}
	return path
}

func TestLoadRoster(t *testing.T) {
	path := writeRoster(t, `[{"name": " Erin ", "score": 50}, {"name": "Carter", "score": 1000}]`)

	recs, err := LoadRoster(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []core.Record{core.NewRecord("Erin", 50), core.NewRecord("Carter", 1000)}
	if len(recs) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(recs))
	}
	for i := range want {
		if recs[i] != want[i] {
			t.Fatalf("record %d: want %v got %v", i, want[i], recs[i])
		}
	}
}

func TestLoadRosterBlankName(t *testing.T) {
	path := writeRoster(t, `[{"name": "ok", "score": 1}, {"name": "  ", "score": 2}]`)
	if _, err := LoadRoster(path); !errors.Is(err, core.ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestLoadRosterErrors(t *testing.T) {
	if _, err := LoadRoster(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, err := LoadRoster(writeRoster(t, `{"name": "not a list"}`)); err == nil {
		t.Fatal("expected parse error")
	}
}
