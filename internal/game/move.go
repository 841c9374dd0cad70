package game

import (
	"math/rand"

	"manhunt/internal/board"
)

// Move is a destination plus the ticket declared for the trip.
type Move struct {
	To     board.NodeID `json:"to"`
	Ticket Ticket       `json:"ticket"`
}

// ApplyMove validates and applies one move for the given actor: relocation,
// ticket accounting, history, win evaluation, and turn advancement. The
// first leg of a double move does not advance the turn; the same seat acts
// again immediately. On rejection the state is untouched.
func (s *State) ApplyMove(m *board.Map, actorID string, to board.NodeID, t Ticket) error {
	rm, err := s.validateMove(m.Graph, actorID, to, t)
	if err != nil {
		return err
	}
	p := rm.player
	p.Node = to

	switch rm.kind {
	case moveDoubleStart:
		p.Tickets.Debit(TicketDouble)
		s.FugitiveDouble = true
		s.appendHistory(TicketDouble, to)
		// The fugitive can step onto a tracker's node mid-double.
		s.checkCapture()
		return nil

	case moveDoubleLeg:
		s.FugitiveDouble = false
		s.appendHistory(t, to)

	case moveNormal:
		p.Tickets.Debit(rm.debit)
		if p.Role == RoleTracker {
			// Used tracker tickets pass to the fugitive.
			s.Fugitive().Tickets.Credit(rm.debit)
		} else {
			s.appendHistory(t, to)
		}
	}

	if s.checkCapture() {
		return nil
	}
	s.advanceTurn(m.Graph)
	s.evaluateEndgame()
	return nil
}

// LegalMoves enumerates every move the player could make right now,
// ignoring turn ownership. Base-ticket moves come first; if the player is
// the fugitive and holds wildcards, destinations not already reachable are
// added as wildcard moves. Mid-double the second leg rides any edge without
// a ticket, so every hop is offered regardless of holdings. The double
// ticket grants no mobility on its own and is not offered here.
func (s *State) LegalMoves(g *board.Graph, playerID string) []Move {
	p := s.playerByID(playerID)
	if p == nil || p.Inert || s.Phase != PhasePlaying {
		return nil
	}
	if s.FugitiveDouble && p.Role == RoleFugitive {
		var moves []Move
		for _, h := range g.EdgesFrom(p.Node) {
			moves = append(moves, Move{To: h.To, Ticket: TicketFor(h.Via)})
		}
		return moves
	}
	var moves []Move
	for _, h := range g.EdgesFrom(p.Node) {
		if !p.Tickets.Has(TicketFor(h.Via)) {
			continue
		}
		if p.Role == RoleTracker && s.occupiedByActiveTracker(h.To, p.ID) {
			continue
		}
		moves = append(moves, Move{To: h.To, Ticket: TicketFor(h.Via)})
	}
	if p.Role == RoleFugitive && p.Tickets.Has(TicketWildcard) {
		for _, h := range g.EdgesFrom(p.Node) {
			covered := false
			for _, m := range moves {
				if m.To == h.To {
					covered = true
					break
				}
			}
			if !covered {
				moves = append(moves, Move{To: h.To, Ticket: TicketWildcard})
			}
		}
	}
	return moves
}

// RandomMove picks a uniformly random legal move for the player. It reports
// false when no legal move exists.
func (s *State) RandomMove(g *board.Graph, rng *rand.Rand, playerID string) (Move, bool) {
	moves := s.LegalMoves(g, playerID)
	if len(moves) == 0 {
		return Move{}, false
	}
	return moves[rng.Intn(len(moves))], true
}
