package core

import "time"

// EventType enumerates board events.
type EventType string

const (
	EventScoreInserted EventType = "score_inserted"
	EventScoreDeleted  EventType = "score_deleted"
)

// Event represents an immutable board event.
// Rank is the 1-based position the record held when the event fired.
type Event struct {
	Type   EventType `json:"type"`
	Time   time.Time `json:"time"`
	Record Record    `json:"record"`
	Rank   int       `json:"rank,omitempty"`
	Size   int       `json:"size"`
}

func NewScoreInserted(r Record, rank, size int) Event {
	return Event{Type: EventScoreInserted, Time: time.Now().UTC(), Record: r, Rank: rank, Size: size}
}

func NewScoreDeleted(r Record, rank, size int) Event {
	return Event{Type: EventScoreDeleted, Time: time.Now().UTC(), Record: r, Rank: rank, Size: size}
}
