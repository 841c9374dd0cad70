package game

import (
	"golang.org/x/exp/slices"

	"manhunt/internal/board"
)

// Phase is the game lifecycle phase.
type Phase string

const (
	PhaseLobby    Phase = "lobby"
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)

// Winner identifies the winning side of a finished game.
type Winner string

const (
	WinnerFugitive Winner = "fugitive"
	WinnerTrackers Winner = "trackers"
)

// MoveRecord is one append-only entry in the fugitive's move log. When
// Disclosed is false the destination is hidden from trackers and only the
// ticket type is visible to them.
type MoveRecord struct {
	Round     int          `json:"round"`
	Ticket    Ticket       `json:"ticket"`
	To        board.NodeID `json:"to"`
	Disclosed bool         `json:"disclosed"`
}

// State is the complete game document: the single source of truth for one
// game instance. The session layer decodes a fresh copy from storage for
// every mutation attempt, applies one transform, and commits the whole
// document back atomically, so methods here may edit the receiver in place
// without ever aliasing a committed snapshot.
type State struct {
	ID             string        `json:"id"`
	Phase          Phase         `json:"phase"`
	MapID          string        `json:"mapId"`
	Round          int           `json:"round"`
	TurnSeat       int           `json:"turnSeat"`
	RevealRounds   []int         `json:"revealRounds,omitempty"`
	RoundLimit     int           `json:"roundLimit,omitempty"`
	Players        []Player      `json:"players"`
	History        []MoveRecord  `json:"history,omitempty"`
	LastDisclosed  *board.NodeID `json:"lastDisclosed,omitempty"`
	FugitiveDouble bool          `json:"fugitiveDouble,omitempty"`
	Winner         Winner        `json:"winner,omitempty"`
}

// New creates a lobby-phase game containing only the creating player.
func New(id, mapID, creatorID, creatorName string) *State {
	return &State{
		ID:    id,
		Phase: PhaseLobby,
		MapID: mapID,
		Players: []Player{{
			ID:      creatorID,
			Name:    creatorName,
			Seat:    0,
			Creator: true,
			Tickets: Ledger{},
		}},
	}
}

func (s *State) playerByID(id string) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

func (s *State) playerBySeat(seat int) *Player {
	for i := range s.Players {
		if s.Players[i].Seat == seat {
			return &s.Players[i]
		}
	}
	return nil
}

// PlayerByID returns the player with the given id, or nil.
func (s *State) PlayerByID(id string) *Player {
	return s.playerByID(id)
}

// ActingPlayer returns the player whose turn it is, or nil outside play.
func (s *State) ActingPlayer() *Player {
	if s.Phase != PhasePlaying {
		return nil
	}
	return s.playerBySeat(s.TurnSeat)
}

// Fugitive returns the fugitive player, or nil before roles are assigned.
func (s *State) Fugitive() *Player {
	for i := range s.Players {
		if s.Players[i].Role == RoleFugitive {
			return &s.Players[i]
		}
	}
	return nil
}

// occupiedByActiveTracker reports whether a different non-inert tracker
// stands on the node. Nodes vacated by inert trackers do not block.
func (s *State) occupiedByActiveTracker(node board.NodeID, exceptID string) bool {
	for i := range s.Players {
		p := &s.Players[i]
		if p.ID != exceptID && p.Role == RoleTracker && !p.Inert && p.Node == node {
			return true
		}
	}
	return false
}

// disclosedRound reports whether the fugitive's position is disclosed on the
// given round.
func (s *State) disclosedRound(round int) bool {
	return slices.Contains(s.RevealRounds, round)
}

// appendHistory records a fugitive move, stamping it with the current
// round's disclosure flag and updating the last-disclosed position when the
// round is a reveal round.
func (s *State) appendHistory(t Ticket, to board.NodeID) {
	disclosed := s.disclosedRound(s.Round)
	s.History = append(s.History, MoveRecord{
		Round:     s.Round,
		Ticket:    t,
		To:        to,
		Disclosed: disclosed,
	})
	if disclosed {
		node := to
		s.LastDisclosed = &node
	}
}
