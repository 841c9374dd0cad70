package game

import "manhunt/internal/board"

// PlayerView is a player as seen by one viewer. The fugitive's live node is
// zeroed for everyone else until the game ends; trackers work from
// LastDisclosed and the move log instead.
type PlayerView struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Role    Role         `json:"role,omitempty"`
	Seat    int          `json:"seat"`
	Creator bool         `json:"creator,omitempty"`
	Color   string       `json:"color,omitempty"`
	Tickets Ledger       `json:"tickets"`
	Node    board.NodeID `json:"node,omitempty"`
	Inert   bool         `json:"inert,omitempty"`
}

// MoveRecordView is a move-log entry as seen by one viewer. The destination
// is omitted for undisclosed entries; the ticket type is always visible.
type MoveRecordView struct {
	Round     int           `json:"round"`
	Ticket    Ticket        `json:"ticket"`
	To        *board.NodeID `json:"to,omitempty"`
	Disclosed bool          `json:"disclosed"`
}

// View is the per-viewer projection of a game pushed to clients after every
// committed mutation.
type View struct {
	ID             string           `json:"id"`
	Phase          Phase            `json:"phase"`
	MapID          string           `json:"mapId"`
	Round          int              `json:"round"`
	TurnSeat       int              `json:"turnSeat"`
	RevealRounds   []int            `json:"revealRounds,omitempty"`
	RoundLimit     int              `json:"roundLimit,omitempty"`
	Players        []PlayerView     `json:"players"`
	History        []MoveRecordView `json:"history,omitempty"`
	LastDisclosed  *board.NodeID    `json:"lastDisclosed,omitempty"`
	FugitiveDouble bool             `json:"fugitiveDouble,omitempty"`
	Winner         Winner           `json:"winner,omitempty"`
	You            string           `json:"you,omitempty"`
}

// View projects the state for one viewer, hiding exactly the fugitive's
// undisclosed information. The fugitive (and everyone, once the game is
// finished) sees the full state.
func (s *State) View(viewerID string) View {
	viewer := s.playerByID(viewerID)
	full := s.Phase == PhaseFinished ||
		(viewer != nil && viewer.Role == RoleFugitive) ||
		s.Phase == PhaseLobby

	v := View{
		ID:             s.ID,
		Phase:          s.Phase,
		MapID:          s.MapID,
		Round:          s.Round,
		TurnSeat:       s.TurnSeat,
		RevealRounds:   s.RevealRounds,
		RoundLimit:     s.RoundLimit,
		LastDisclosed:  s.LastDisclosed,
		FugitiveDouble: s.FugitiveDouble,
		Winner:         s.Winner,
		You:            viewerID,
	}

	v.Players = make([]PlayerView, len(s.Players))
	for i, p := range s.Players {
		pv := PlayerView{
			ID:      p.ID,
			Name:    p.Name,
			Role:    p.Role,
			Seat:    p.Seat,
			Creator: p.Creator,
			Color:   p.Color,
			Tickets: p.Tickets,
			Node:    p.Node,
			Inert:   p.Inert,
		}
		if !full && p.Role == RoleFugitive {
			pv.Node = 0
		}
		v.Players[i] = pv
	}

	v.History = make([]MoveRecordView, len(s.History))
	for i, r := range s.History {
		rv := MoveRecordView{Round: r.Round, Ticket: r.Ticket, Disclosed: r.Disclosed}
		if full || r.Disclosed {
			node := r.To
			rv.To = &node
		}
		v.History[i] = rv
	}
	return v
}
