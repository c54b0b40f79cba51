package game

import "errors"

var (
	ErrSlotNotFound   = errors.New("component slot not found")
	ErrSlotMismatch   = errors.New("the game component names do not match")
	ErrIllegalMove    = errors.New("illegal move")
	ErrNotStarted     = errors.New("game has not started")
	ErrAlreadyStarted = errors.New("game has already started")
)

// Event types published on the game bus.
const (
	EventComponentAdded = "component.added"
	EventGameLoaded     = "game.loaded"
	EventMoveApplied    = "move.applied"
)
