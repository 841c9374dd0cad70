package game

import (
	"fmt"

	"manhunt/internal/board"
)

type moveKind int

const (
	moveNormal moveKind = iota
	moveDoubleStart
	moveDoubleLeg
)

// resolvedMove is the outcome of validation: which player moves, what kind
// of move it is, and which ticket to debit (empty for the free second leg of
// a double move). Validation never mutates state, so a storage-level retry
// can safely re-run it against a fresh read.
type resolvedMove struct {
	player *Player
	kind   moveKind
	debit  Ticket
}

// validateMove checks a proposed move against the full rule set and returns
// the resolved move to apply, or the rejection reason.
func (s *State) validateMove(g *board.Graph, actorID string, to board.NodeID, t Ticket) (resolvedMove, error) {
	if s.Phase == PhaseFinished {
		return resolvedMove{}, ErrGameOver
	}
	if s.Phase != PhasePlaying {
		return resolvedMove{}, ErrWrongPhase
	}
	p := s.playerByID(actorID)
	if p == nil {
		return resolvedMove{}, ErrPlayerNotFound
	}
	if p.Seat != s.TurnSeat {
		return resolvedMove{}, ErrNotYourTurn
	}
	if p.Inert {
		return resolvedMove{}, ErrInert
	}

	if t == TicketDouble {
		if p.Role != RoleFugitive {
			return resolvedMove{}, ErrRoleRestricted
		}
		if s.FugitiveDouble {
			return resolvedMove{}, ErrDoubleInProgress
		}
		if !p.Tickets.Has(TicketDouble) {
			return resolvedMove{}, fmt.Errorf("%s: %w", TicketDouble, ErrInsufficientTickets)
		}
		if !g.HasEdge(p.Node, to) {
			return resolvedMove{}, ErrNoRoute
		}
		return resolvedMove{player: p, kind: moveDoubleStart, debit: TicketDouble}, nil
	}

	if t == TicketWildcard && p.Role != RoleFugitive {
		return resolvedMove{}, ErrRoleRestricted
	}

	// Second leg of a double move: any edge is legal, no ticket is consumed,
	// but the declared ticket still has to be a real one for the move log.
	if s.FugitiveDouble && p.Role == RoleFugitive {
		switch t {
		case TicketAuto, TicketBus, TicketMetro, TicketFerry, TicketWildcard:
		default:
			return resolvedMove{}, fmt.Errorf("%q: %w", t, ErrUnknownTicket)
		}
		if !g.HasEdge(p.Node, to) {
			return resolvedMove{}, ErrNoRoute
		}
		return resolvedMove{player: p, kind: moveDoubleLeg}, nil
	}

	switch t {
	case TicketWildcard:
		if !g.HasEdge(p.Node, to) {
			return resolvedMove{}, ErrNoRoute
		}
	case TicketAuto, TicketBus, TicketMetro, TicketFerry:
		via, _ := t.Conveyance()
		if !g.HasEdgeVia(p.Node, to, via) {
			return resolvedMove{}, ErrNoRoute
		}
	default:
		return resolvedMove{}, fmt.Errorf("%q: %w", t, ErrUnknownTicket)
	}
	if !p.Tickets.Has(t) {
		return resolvedMove{}, fmt.Errorf("%s: %w", t, ErrInsufficientTickets)
	}

	if p.Role == RoleTracker && s.occupiedByActiveTracker(to, p.ID) {
		return resolvedMove{}, ErrNodeOccupied
	}

	return resolvedMove{player: p, kind: moveNormal, debit: t}, nil
}
