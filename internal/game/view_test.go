package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manhunt/internal/board"
)

func hiddenState(t *testing.T) *State {
	t.Helper()
	m := testMap(t)
	st := playing(m,
		fugitiveAt(1, Ledger{TicketAuto: 5, TicketWildcard: 2}),
		trackerAt("hound", 1, 4, Ledger{TicketMetro: 5}),
	)
	st.RevealRounds = []int{2}
	require.NoError(t, st.ApplyMove(m, "fox", 2, TicketAuto))
	require.NoError(t, st.ApplyMove(m, "hound", 3, TicketMetro))
	require.NoError(t, st.ApplyMove(m, "fox", 1, TicketWildcard)) // round 2, disclosed
	return st
}

func TestViewHidesFugitiveFromTrackers(t *testing.T) {
	st := hiddenState(t)
	v := st.View("hound")

	var fugitive *PlayerView
	for i := range v.Players {
		if v.Players[i].Role == RoleFugitive {
			fugitive = &v.Players[i]
		}
	}
	require.NotNil(t, fugitive)
	assert.Zero(t, fugitive.Node, "live fugitive position must be hidden")
	assert.NotEmpty(t, fugitive.Tickets, "ticket counts are public")

	require.Len(t, v.History, 2)
	assert.Nil(t, v.History[0].To, "undisclosed destination is hidden")
	assert.Equal(t, TicketAuto, v.History[0].Ticket, "the ticket type is always logged")
	require.NotNil(t, v.History[1].To)
	assert.Equal(t, board.NodeID(1), *v.History[1].To)

	require.NotNil(t, v.LastDisclosed)
	assert.Equal(t, board.NodeID(1), *v.LastDisclosed)
}

func TestViewShowsEverythingToFugitive(t *testing.T) {
	st := hiddenState(t)
	v := st.View("fox")

	assert.Equal(t, board.NodeID(1), v.Players[0].Node)
	require.Len(t, v.History, 2)
	require.NotNil(t, v.History[0].To)
	assert.Equal(t, board.NodeID(2), *v.History[0].To)
}

func TestViewShowsEverythingWhenFinished(t *testing.T) {
	st := hiddenState(t)
	st.Phase = PhaseFinished
	st.Winner = WinnerTrackers

	v := st.View("hound")
	assert.Equal(t, board.NodeID(1), v.Players[0].Node)
	require.NotNil(t, v.History[0].To)
}
