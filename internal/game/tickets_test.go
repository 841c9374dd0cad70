package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manhunt/internal/board"
)

func TestLedgerDebitCredit(t *testing.T) {
	l := Ledger{TicketAuto: 1}

	assert.True(t, l.Has(TicketAuto))
	require.NoError(t, l.Debit(TicketAuto))
	assert.False(t, l.Has(TicketAuto))

	err := l.Debit(TicketAuto)
	assert.ErrorIs(t, err, ErrInsufficientTickets)
	assert.Equal(t, 0, l[TicketAuto], "a failed debit must not go negative")

	l.Credit(TicketBus)
	assert.Equal(t, 1, l[TicketBus])
}

func TestTicketConveyanceMapping(t *testing.T) {
	for _, via := range board.Conveyances {
		tk := TicketFor(via)
		got, ok := tk.Conveyance()
		require.True(t, ok)
		assert.Equal(t, via, got)
	}
	for _, special := range []Ticket{TicketWildcard, TicketDouble} {
		_, ok := special.Conveyance()
		assert.False(t, ok)
	}
}
