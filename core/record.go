package core

import (
	"strconv"
	"strings"
)

// Record is one participant's result on the scoreboard.
// Two records are equal when both name and score match.
type Record struct {
	Name  string `json:"name"`
	Score int64  `json:"score"`
}

func NewRecord(name string, score int64) Record {
	return Record{Name: name, Score: score}
}

// Equal reports whether r and other hold the same name and score.
func (r Record) Equal(other Record) bool {
	return r.Name == other.Name && r.Score == other.Score
}

func (r Record) String() string {
	return "(" + r.Name + ", " + strconv.FormatInt(r.Score, 10) + ")"
}

// NormalizeName trims surrounding whitespace from a participant name.
// Case is preserved since names are displayed as given.
func NormalizeName(name string) (string, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return "", ErrEmptyName
	}
	return s, nil
}
