package game

import (
	"fmt"

	"manhunt/internal/board"
)

// Ticket is a travel ticket type. The four base tickets match the board
// conveyances one to one. Wildcard and double are fugitive-only specials:
// wildcard rides any edge without recording the conveyance, double grants a
// second move in the same turn.
type Ticket string

const (
	TicketAuto     Ticket = "auto"
	TicketBus      Ticket = "bus"
	TicketMetro    Ticket = "metro"
	TicketFerry    Ticket = "ferry"
	TicketWildcard Ticket = "wildcard"
	TicketDouble   Ticket = "double"
)

// TicketFor returns the ticket that rides the given conveyance.
func TicketFor(via board.Conveyance) Ticket {
	return Ticket(via)
}

// Conveyance returns the board conveyance a base ticket rides, or false for
// the special tickets.
func (t Ticket) Conveyance() (board.Conveyance, bool) {
	switch t {
	case TicketAuto, TicketBus, TicketMetro, TicketFerry:
		return board.Conveyance(t), true
	}
	return "", false
}

// Ledger tracks a player's remaining tickets per type. Counts never go
// negative; debits happen only inside an already-validated move application.
type Ledger map[Ticket]int

// Has reports whether at least one ticket of the given type remains.
func (l Ledger) Has(t Ticket) bool {
	return l[t] > 0
}

// Debit removes one ticket of the given type.
func (l Ledger) Debit(t Ticket) error {
	if l[t] <= 0 {
		return fmt.Errorf("%s: %w", t, ErrInsufficientTickets)
	}
	l[t]--
	return nil
}

// Credit adds one ticket of the given type.
func (l Ledger) Credit(t Ticket) {
	l[t]++
}
