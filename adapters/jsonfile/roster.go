// Package jsonfile reads seed rosters for a board from JSON files.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"

	"scoreboard/core"
)

// LoadRoster reads a JSON array of {"name", "score"} objects. Names are
// normalized; a blank name fails the whole roster.
func LoadRoster(path string) ([]core.Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	var raw []core.Record
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", path, err)
	}
	out := make([]core.Record, 0, len(raw))
	for i, r := range raw {
		name, err := core.NormalizeName(r.Name)
		if err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", i, err)
		}
		out = append(out, core.NewRecord(name, r.Score))
	}
	return out, nil
}
