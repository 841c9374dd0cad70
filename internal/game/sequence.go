package game

import "manhunt/internal/board"

// hasLegalMove reports whether the player could move at all: some outgoing
// edge with a matching ticket (or a fugitive wildcard) whose destination is
// not blocked by an active tracker. Turn ownership and double-move state are
// deliberately ignored; this is the sequencer's legality class.
func (s *State) hasLegalMove(g *board.Graph, p *Player) bool {
	for _, h := range g.EdgesFrom(p.Node) {
		if !p.Tickets.Has(TicketFor(h.Via)) &&
			!(p.Role == RoleFugitive && p.Tickets.Has(TicketWildcard)) {
			continue
		}
		if p.Role == RoleTracker && s.occupiedByActiveTracker(h.To, p.ID) {
			continue
		}
		return true
	}
	return false
}

// advanceTurn moves ownership to the next seat that can act, marking seats
// with no legal move inert along the way. Already-inert seats are skipped
// without re-checking: inert is permanent. The round counter increments each
// time the scan wraps past seat 0. The loop is bounded by the player count;
// if every seat is inert the endgame evaluation that follows settles the
// winner.
func (s *State) advanceTurn(g *board.Graph) {
	n := len(s.Players)
	seat := s.TurnSeat
	for i := 0; i < n; i++ {
		seat = (seat + 1) % n
		if seat == 0 {
			s.Round++
		}
		p := s.playerBySeat(seat)
		if p.Inert {
			continue
		}
		if !s.hasLegalMove(g, p) {
			p.Inert = true
			continue
		}
		s.TurnSeat = seat
		return
	}
	s.TurnSeat = seat
}
