package fivecarddraw

import "errors"

// errors the engine can return from a seat's turn.
// None of them may leave the pot or another seat's stack in a bad state
var (
	// ErrInvalidAction is an error when a betting action is malformed or not allowed.
	// The seat is re-prompted; the round continues
	ErrInvalidAction = errors.New("invalid action")

	// ErrInsufficientFunds is an error when a bet or raise exceeds the player's stack
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrIndexOutOfRange is an error when an exchange references a card slot outside 0-4
	ErrIndexOutOfRange = errors.New("card index must be between 0 and 4")

	// ErrNoDrawPending is an error when a draw resolution is requested without a pending draw
	ErrNoDrawPending = errors.New("no draw is pending")

	// ErrDrawPending is an error when a new round is started while a draw awaits resolution
	ErrDrawPending = errors.New("a draw is awaiting resolution")
)
