package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manhunt/internal/board"
)

// testMap is a small cross-shaped board:
//
//	1 --auto-- 2 --auto-- 3 --metro-- 4 --ferry-- 5
//	1 --bus--- 3
func testMap(t *testing.T) *board.Map {
	t.Helper()
	g, err := board.NewGraph(
		[]board.Node{
			{ID: 1, Name: "Harbor"},
			{ID: 2, Name: "Market"},
			{ID: 3, Name: "Station"},
			{ID: 4, Name: "Bridge"},
			{ID: 5, Name: "Island"},
		},
		[]board.Edge{
			{From: 1, To: 2, Via: board.Auto},
			{From: 2, To: 3, Via: board.Auto},
			{From: 1, To: 3, Via: board.Bus},
			{From: 3, To: 4, Via: board.Metro},
			{From: 4, To: 5, Via: board.Ferry},
		},
	)
	require.NoError(t, err)
	return &board.Map{
		ID:             "cross",
		Graph:          g,
		FugitiveStarts: []board.NodeID{1},
		TrackerStarts:  []board.NodeID{2, 3, 4, 5},
		RevealRounds:   []int{2},
		RoundLimit:     4,
	}
}

func fugitiveAt(node board.NodeID, tickets Ledger) Player {
	return Player{ID: "fox", Name: "fox", Role: RoleFugitive, Seat: 0, Tickets: tickets, Node: node}
}

func trackerAt(id string, seat int, node board.NodeID, tickets Ledger) Player {
	return Player{ID: id, Name: id, Role: RoleTracker, Seat: seat, Tickets: tickets, Node: node}
}

func playing(m *board.Map, players ...Player) *State {
	return &State{
		ID:           "g1",
		Phase:        PhasePlaying,
		MapID:        m.ID,
		Round:        1,
		TurnSeat:     0,
		RevealRounds: m.RevealRounds,
		RoundLimit:   m.RoundLimit,
		Players:      players,
	}
}

func TestFugitiveMoveDebitsAndLogs(t *testing.T) {
	m := testMap(t)
	st := playing(m,
		fugitiveAt(1, Ledger{TicketAuto: 2}),
		trackerAt("hound", 1, 4, Ledger{TicketMetro: 1}),
	)

	require.NoError(t, st.ApplyMove(m, "fox", 2, TicketAuto))

	fox := st.PlayerByID("fox")
	assert.Equal(t, board.NodeID(2), fox.Node)
	assert.Equal(t, 1, fox.Tickets[TicketAuto])
	require.Len(t, st.History, 1)
	assert.Equal(t, MoveRecord{Round: 1, Ticket: TicketAuto, To: 2, Disclosed: false}, st.History[0])
	assert.Nil(t, st.LastDisclosed)
	assert.Equal(t, 1, st.TurnSeat)
	assert.Equal(t, 1, st.Round)
}

func TestTrackerTicketPassesToFugitive(t *testing.T) {
	m := testMap(t)
	st := playing(m,
		fugitiveAt(5, Ledger{TicketAuto: 1, TicketFerry: 1}),
		trackerAt("hound", 1, 3, Ledger{TicketMetro: 2}),
	)
	st.TurnSeat = 1

	require.NoError(t, st.ApplyMove(m, "hound", 4, TicketMetro))

	assert.Equal(t, 1, st.PlayerByID("hound").Tickets[TicketMetro])
	assert.Equal(t, 1, st.Fugitive().Tickets[TicketMetro])
	assert.Empty(t, st.History, "tracker moves are not logged")
}

func TestCaptureFinishesGameAndDiscloses(t *testing.T) {
	m := testMap(t)
	st := playing(m,
		fugitiveAt(1, Ledger{TicketWildcard: 5}),
		trackerAt("hound", 1, 2, Ledger{TicketAuto: 1}),
	)
	st.TurnSeat = 1

	require.NoError(t, st.ApplyMove(m, "hound", 1, TicketAuto))

	assert.Equal(t, PhaseFinished, st.Phase)
	assert.Equal(t, WinnerTrackers, st.Winner)
	require.NotNil(t, st.LastDisclosed)
	assert.Equal(t, board.NodeID(1), *st.LastDisclosed)

	err := st.ApplyMove(m, "fox", 2, TicketWildcard)
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestWildcardRidesAnyEdgeWithoutRecordingIt(t *testing.T) {
	m := testMap(t)
	// Node 5 has a single ferry edge; the fugitive holds no ferry tickets.
	st := playing(m,
		fugitiveAt(5, Ledger{TicketWildcard: 1}),
		trackerAt("hound", 1, 2, Ledger{TicketAuto: 1}),
	)

	err := st.ApplyMove(m, "fox", 4, TicketFerry)
	assert.ErrorIs(t, err, ErrInsufficientTickets)
	assert.Equal(t, board.NodeID(5), st.Fugitive().Node, "rejection must not move the player")

	require.NoError(t, st.ApplyMove(m, "fox", 4, TicketWildcard))
	assert.Equal(t, 0, st.Fugitive().Tickets[TicketWildcard])
	require.Len(t, st.History, 1)
	assert.Equal(t, TicketWildcard, st.History[0].Ticket, "the true conveyance stays hidden")
}

func TestWildcardIsFugitiveOnly(t *testing.T) {
	m := testMap(t)
	st := playing(m,
		fugitiveAt(5, Ledger{TicketWildcard: 1}),
		trackerAt("hound", 1, 2, Ledger{TicketWildcard: 1}),
	)
	st.TurnSeat = 1

	err := st.ApplyMove(m, "hound", 1, TicketWildcard)
	assert.ErrorIs(t, err, ErrRoleRestricted)
}

func TestDoubleMoveKeepsTheTurn(t *testing.T) {
	m := testMap(t)
	st := playing(m,
		fugitiveAt(1, Ledger{TicketAuto: 3, TicketDouble: 1}),
		trackerAt("hound", 1, 5, Ledger{TicketFerry: 1}),
	)

	require.NoError(t, st.ApplyMove(m, "fox", 2, TicketDouble))

	fox := st.Fugitive()
	assert.True(t, st.FugitiveDouble)
	assert.Equal(t, 0, fox.Tickets[TicketDouble])
	assert.Equal(t, 0, st.TurnSeat, "first leg must not yield the turn")
	require.Len(t, st.History, 1)
	assert.Equal(t, TicketDouble, st.History[0].Ticket)

	// Second leg rides any edge for free.
	require.NoError(t, st.ApplyMove(m, "fox", 3, TicketAuto))
	assert.False(t, st.FugitiveDouble)
	assert.Equal(t, 3, fox.Tickets[TicketAuto], "second leg is free of ticket cost")
	assert.Equal(t, 1, st.TurnSeat)
	assert.Len(t, st.History, 2)
}

func TestDoubleMoveRestrictions(t *testing.T) {
	m := testMap(t)
	st := playing(m,
		fugitiveAt(1, Ledger{TicketAuto: 1, TicketDouble: 1}),
		trackerAt("hound", 1, 5, Ledger{TicketFerry: 1, TicketDouble: 1}),
	)

	require.NoError(t, st.ApplyMove(m, "fox", 2, TicketDouble))
	err := st.ApplyMove(m, "fox", 3, TicketDouble)
	assert.ErrorIs(t, err, ErrDoubleInProgress)

	require.NoError(t, st.ApplyMove(m, "fox", 3, TicketAuto))
	st.TurnSeat = 1
	err = st.ApplyMove(m, "hound", 4, TicketDouble)
	assert.ErrorIs(t, err, ErrRoleRestricted)
}

func TestTrackersCannotShareANode(t *testing.T) {
	m := testMap(t)
	st := playing(m,
		fugitiveAt(1, Ledger{TicketAuto: 1}),
		trackerAt("h1", 1, 2, Ledger{TicketAuto: 2}),
		trackerAt("h2", 2, 3, Ledger{TicketAuto: 2}),
	)
	st.TurnSeat = 1

	err := st.ApplyMove(m, "h1", 3, TicketAuto)
	assert.ErrorIs(t, err, ErrNodeOccupied)

	// A node held by an inert tracker does not block.
	st.PlayerByID("h2").Inert = true
	require.NoError(t, st.ApplyMove(m, "h1", 3, TicketAuto))
}

func TestTurnOwnershipEnforced(t *testing.T) {
	m := testMap(t)
	st := playing(m,
		fugitiveAt(1, Ledger{TicketAuto: 1}),
		trackerAt("hound", 1, 4, Ledger{TicketMetro: 1}),
	)

	err := st.ApplyMove(m, "hound", 3, TicketMetro)
	assert.ErrorIs(t, err, ErrNotYourTurn)
}

func TestStuckTrackerIsSkippedForever(t *testing.T) {
	m := testMap(t)
	st := playing(m,
		fugitiveAt(1, Ledger{TicketAuto: 5, TicketBus: 5}),
		trackerAt("h1", 1, 4, Ledger{TicketMetro: 3, TicketFerry: 3}),
		trackerAt("h2", 2, 5, Ledger{}), // no tickets at all
	)

	require.NoError(t, st.ApplyMove(m, "fox", 2, TicketAuto))
	assert.Equal(t, 1, st.TurnSeat)

	// Advancing past h2 marks it inert and wraps to the fugitive.
	require.NoError(t, st.ApplyMove(m, "h1", 3, TicketMetro))
	assert.True(t, st.PlayerByID("h2").Inert)
	assert.Equal(t, 0, st.TurnSeat)
	assert.Equal(t, 2, st.Round, "wrap past seat 0 increments the round")

	err := st.ApplyMove(m, "h2", 4, TicketFerry)
	assert.ErrorIs(t, err, ErrNotYourTurn)

	// h1 vacates node 3, freeing an edge next to h2's node; h2 stays inert.
	require.NoError(t, st.ApplyMove(m, "fox", 1, TicketAuto))
	require.NoError(t, st.ApplyMove(m, "h1", 4, TicketMetro))
	assert.True(t, st.PlayerByID("h2").Inert)
	assert.Equal(t, 0, st.TurnSeat)
}

func TestAllTrackersInertEndsGame(t *testing.T) {
	m := testMap(t)
	st := playing(m,
		fugitiveAt(1, Ledger{TicketAuto: 5}),
		trackerAt("hound", 1, 5, Ledger{}),
	)

	require.NoError(t, st.ApplyMove(m, "fox", 2, TicketAuto))

	assert.Equal(t, PhaseFinished, st.Phase)
	assert.Equal(t, WinnerFugitive, st.Winner)
	assert.True(t, st.PlayerByID("hound").Inert)
}

func TestEvasionByRoundLimit(t *testing.T) {
	m := testMap(t)
	m.RoundLimit = 1
	st := playing(m,
		fugitiveAt(1, Ledger{TicketAuto: 9, TicketBus: 9}),
		trackerAt("hound", 1, 4, Ledger{TicketMetro: 9, TicketFerry: 9}),
	)
	st.RoundLimit = 1

	require.NoError(t, st.ApplyMove(m, "fox", 2, TicketAuto))
	require.NoError(t, st.ApplyMove(m, "hound", 3, TicketMetro))

	assert.Equal(t, 2, st.Round)
	assert.Equal(t, PhaseFinished, st.Phase)
	assert.Equal(t, WinnerFugitive, st.Winner)
}

func TestRevealRoundDiscloses(t *testing.T) {
	m := testMap(t)
	st := playing(m,
		fugitiveAt(1, Ledger{TicketAuto: 9}),
		trackerAt("hound", 1, 4, Ledger{TicketMetro: 9}),
	)
	st.RevealRounds = []int{2}

	require.NoError(t, st.ApplyMove(m, "fox", 2, TicketAuto))
	require.NoError(t, st.ApplyMove(m, "hound", 3, TicketMetro))
	require.Equal(t, 2, st.Round)

	require.NoError(t, st.ApplyMove(m, "fox", 1, TicketAuto))

	require.Len(t, st.History, 2)
	assert.False(t, st.History[0].Disclosed)
	assert.True(t, st.History[1].Disclosed)
	require.NotNil(t, st.LastDisclosed)
	assert.Equal(t, board.NodeID(1), *st.LastDisclosed)
}

func TestNoRouteRejected(t *testing.T) {
	m := testMap(t)
	st := playing(m,
		fugitiveAt(1, Ledger{TicketAuto: 1, TicketMetro: 1}),
		trackerAt("hound", 1, 4, Ledger{TicketMetro: 1}),
	)

	// No edge 1-4 at all.
	assert.ErrorIs(t, st.ApplyMove(m, "fox", 4, TicketAuto), ErrNoRoute)
	// Edge 1-2 exists but not by metro.
	assert.ErrorIs(t, st.ApplyMove(m, "fox", 2, TicketMetro), ErrNoRoute)
	assert.ErrorIs(t, st.ApplyMove(m, "fox", 2, Ticket("zeppelin")), ErrUnknownTicket)
}

func TestLegalMovesIncludeWildcardFallback(t *testing.T) {
	m := testMap(t)
	st := playing(m,
		fugitiveAt(1, Ledger{TicketAuto: 1, TicketWildcard: 1}),
		trackerAt("hound", 1, 4, Ledger{TicketMetro: 1}),
	)

	moves := st.LegalMoves(m.Graph, "fox")
	// auto to 2, wildcard to 3 (no bus ticket held).
	assert.ElementsMatch(t, []Move{
		{To: 2, Ticket: TicketAuto},
		{To: 3, Ticket: TicketWildcard},
	}, moves)

	moves = st.LegalMoves(m.Graph, "hound")
	assert.ElementsMatch(t, []Move{{To: 3, Ticket: TicketMetro}}, moves)
}

func TestLegalMovesOfferFreeSecondDoubleLeg(t *testing.T) {
	m := testMap(t)
	// The double ticket is the fugitive's last one; the second leg must
	// still be offered because it rides free.
	st := playing(m,
		fugitiveAt(1, Ledger{TicketDouble: 1}),
		trackerAt("hound", 1, 4, Ledger{TicketMetro: 1}),
	)
	require.NoError(t, st.ApplyMove(m, "fox", 2, TicketDouble))

	moves := st.LegalMoves(m.Graph, "fox")
	assert.ElementsMatch(t, []Move{
		{To: 1, Ticket: TicketAuto},
		{To: 3, Ticket: TicketAuto},
	}, moves)

	require.NoError(t, st.ApplyMove(m, "fox", moves[0].To, moves[0].Ticket))
	assert.False(t, st.FugitiveDouble)
	assert.Equal(t, 1, st.TurnSeat)
}

func TestTicketsNeverGoNegative(t *testing.T) {
	m := testMap(t)
	st := playing(m,
		fugitiveAt(1, Ledger{TicketAuto: 1}),
		trackerAt("hound", 1, 4, Ledger{TicketMetro: 1, TicketFerry: 1}),
	)

	for st.Phase == PhasePlaying {
		actor := st.ActingPlayer()
		moves := st.LegalMoves(m.Graph, actor.ID)
		if len(moves) == 0 {
			break
		}
		require.NoError(t, st.ApplyMove(m, actor.ID, moves[0].To, moves[0].Ticket))
		for _, p := range st.Players {
			for ticket, n := range p.Tickets {
				assert.GreaterOrEqual(t, n, 0, "player %s ticket %s", p.ID, ticket)
			}
		}
	}
}
