package core

import "errors"

var (
	// ErrNotFound indicates that no record on the board matches.
	ErrNotFound = errors.New("scoreboard: record not found")
	// ErrEmptyBoard indicates that the board holds no records.
	ErrEmptyBoard = errors.New("scoreboard: board is empty")
	// ErrEmptyName indicates a blank participant name.
	ErrEmptyName = errors.New("scoreboard: empty name")
)
