package game

import "manhunt/internal/board"

// Role is a player's side. Roles are assigned at game start; in the lobby a
// player has no role yet.
type Role string

const (
	RoleFugitive Role = "fugitive"
	RoleTracker  Role = "tracker"
)

// Player is one seat in the game. Seat order is turn order; the fugitive
// always holds seat 0. Inert players had no legal move on their turn and are
// skipped for the rest of the game.
type Player struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Role    Role         `json:"role,omitempty"`
	Seat    int          `json:"seat"`
	Creator bool         `json:"creator,omitempty"`
	Color   string       `json:"color,omitempty"`
	Tickets Ledger       `json:"tickets"`
	Node    board.NodeID `json:"node"`
	Inert   bool         `json:"inert,omitempty"`
}

var trackerColors = []string{"#ef4444", "#3b82f6", "#22c55e", "#eab308", "#8b5cf6"}

const fugitiveColor = "#000000"

// Starting ticket allotments per role.
var (
	fugitiveAllotment = Ledger{
		TicketAuto:     7,
		TicketBus:      5,
		TicketMetro:    4,
		TicketFerry:    2,
		TicketWildcard: 5,
		TicketDouble:   1,
	}
	trackerAllotment = Ledger{
		TicketAuto:  10,
		TicketBus:   6,
		TicketMetro: 5,
	}
)

func allotment(r Role) Ledger {
	src := trackerAllotment
	if r == RoleFugitive {
		src = fugitiveAllotment
	}
	l := make(Ledger, len(src))
	for t, n := range src {
		l[t] = n
	}
	return l
}
