package game

import "errors"

// Rejection reasons surfaced to callers. The session layer maps these to
// transport-level responses; none of them leaves partial state behind.
var (
	ErrPlayerNotFound      = errors.New("player not found")
	ErrGameFull            = errors.New("game is full")
	ErrGameStarted         = errors.New("game has already started")
	ErrWrongPhase          = errors.New("wrong game phase")
	ErrPlayerCount         = errors.New("player count must be between 2 and 6")
	ErrGameInProgress      = errors.New("game is currently being played")
	ErrGameOver            = errors.New("game is over")
	ErrNotYourTurn         = errors.New("not your turn")
	ErrInert               = errors.New("no legal moves remain for this player")
	ErrRoleRestricted      = errors.New("move is restricted to the fugitive")
	ErrDoubleInProgress    = errors.New("double move already in progress")
	ErrInsufficientTickets = errors.New("insufficient tickets")
	ErrNoRoute             = errors.New("no such route exists")
	ErrNodeOccupied        = errors.New("destination occupied by an active tracker")
	ErrUnknownTicket       = errors.New("unknown ticket type")
)
