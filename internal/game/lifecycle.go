package game

import (
	"math/rand"

	"golang.org/x/exp/slices"

	"manhunt/internal/board"
)

const (
	minPlayers = 2
	maxPlayers = 6
)

// Join adds a player to the lobby. Joining twice is a no-op.
func (s *State) Join(playerID, name string) error {
	if s.playerByID(playerID) != nil {
		return nil
	}
	if s.Phase != PhaseLobby {
		return ErrGameStarted
	}
	if len(s.Players) >= maxPlayers {
		return ErrGameFull
	}
	s.Players = append(s.Players, Player{
		ID:      playerID,
		Name:    name,
		Seat:    len(s.Players),
		Tickets: Ledger{},
	})
	return nil
}

// Leave removes a player from the lobby. It reports whether the roster is
// now empty, in which case the caller should delete the game. Leaving a game
// one is not in is a no-op.
func (s *State) Leave(playerID string) (empty bool, err error) {
	if s.Phase != PhaseLobby {
		return false, ErrGameStarted
	}
	leaving := s.playerByID(playerID)
	if leaving == nil {
		return false, nil
	}
	wasCreator := leaving.Creator

	remaining := make([]Player, 0, len(s.Players)-1)
	for _, p := range s.Players {
		if p.ID != playerID {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == 0 {
		s.Players = nil
		return true, nil
	}

	slices.SortFunc(remaining, func(a, b Player) int { return a.Seat - b.Seat })
	if wasCreator {
		remaining[0].Creator = true
	}
	for i := range remaining {
		remaining[i].Seat = i
	}
	s.Players = remaining
	return false, nil
}

// Start transitions the lobby to play: one player becomes the fugitive at
// seat 0, the rest become trackers in shuffled order, ticket allotments are
// dealt, and start nodes are drawn without replacement from each role's
// pool. The fugitive's start node is removed from the tracker pool so the
// roles never overlap on round one.
func (s *State) Start(m *board.Map, rng *rand.Rand) error {
	if s.Phase != PhaseLobby {
		return ErrWrongPhase
	}
	if len(s.Players) < minPlayers || len(s.Players) > maxPlayers {
		return ErrPlayerCount
	}

	roster := slices.Clone(s.Players)
	fi := rng.Intn(len(roster))
	fugitive := roster[fi]
	roster = slices.Delete(roster, fi, fi+1)
	rng.Shuffle(len(roster), func(i, j int) {
		roster[i], roster[j] = roster[j], roster[i]
	})
	roster = append([]Player{fugitive}, roster...)

	trackerPool := slices.Clone(m.TrackerStarts)
	fugitivePool := slices.Clone(m.FugitiveStarts)

	for i := range roster {
		p := &roster[i]
		p.Seat = i
		p.Inert = false
		if i == 0 {
			p.Role = RoleFugitive
			p.Color = fugitiveColor
			p.Tickets = allotment(RoleFugitive)

			pick := rng.Intn(len(fugitivePool))
			p.Node = fugitivePool[pick]
			fugitivePool = slices.Delete(fugitivePool, pick, pick+1)
			if j := slices.Index(trackerPool, p.Node); j >= 0 {
				trackerPool = slices.Delete(trackerPool, j, j+1)
			}
		} else {
			p.Role = RoleTracker
			p.Color = trackerColors[(i-1)%len(trackerColors)]
			p.Tickets = allotment(RoleTracker)

			pick := rng.Intn(len(trackerPool))
			p.Node = trackerPool[pick]
			trackerPool = slices.Delete(trackerPool, pick, pick+1)
		}
	}

	s.Players = roster
	s.MapID = m.ID
	s.RevealRounds = slices.Clone(m.RevealRounds)
	s.RoundLimit = m.RoundLimit
	s.Phase = PhasePlaying
	s.Round = 1
	s.TurnSeat = 0
	s.History = nil
	s.LastDisclosed = nil
	s.FugitiveDouble = false
	s.Winner = ""
	return nil
}

// Reset returns a finished (or still-lobby) game to the lobby, preserving
// the roster but clearing all play state. The initiating player becomes the
// creator and takes seat 0.
func (s *State) Reset(initiatorID string) error {
	if s.Phase == PhasePlaying {
		return ErrGameInProgress
	}
	if s.playerByID(initiatorID) == nil {
		return ErrPlayerNotFound
	}

	slices.SortFunc(s.Players, func(a, b Player) int {
		switch {
		case a.ID == initiatorID:
			return -1
		case b.ID == initiatorID:
			return 1
		default:
			return a.Seat - b.Seat
		}
	})
	for i := range s.Players {
		p := &s.Players[i]
		p.Seat = i
		p.Creator = p.ID == initiatorID
		p.Role = ""
		p.Color = ""
		p.Tickets = Ledger{}
		p.Node = 0
		p.Inert = false
	}

	s.Phase = PhaseLobby
	s.Round = 0
	s.TurnSeat = 0
	s.History = nil
	s.LastDisclosed = nil
	s.FugitiveDouble = false
	s.Winner = ""
	return nil
}
