package game

import (
	"testing"

	"followthequeen-server/pkg/deck"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable(t *testing.T, variant Variant, opts Options, names ...string) *Table {
	t.Helper()

	tbl, err := NewTable(logrus.StandardLogger(), variant, opts)
	require.NoError(t, err)

	for i, name := range names {
		_, err := tbl.AddPlayer(int64(i+1), name)
		require.NoError(t, err)
	}

	return tbl
}

func stackedDeck(cards string) *deck.Deck {
	d := deck.New()
	d.Cards = deck.CardsFromString(cards)

	return d
}

// first hand: the button lands on seat 0 and dealing starts at seat 1
const holdemThreeHanded = "14s,13s,12s,14d,13d,12d,2c,3h,4c,5d,2d,9s,2h,11h"

func TestTable_AddPlayer(t *testing.T) {
	a := assert.New(t)

	tbl := testTable(t, NewHoldem(), DefaultOptions())

	seat, err := tbl.AddPlayer(1, "alice")
	a.NoError(err)
	a.Equal(0, seat)

	seat, err = tbl.AddPlayer(2, "bob")
	a.NoError(err)
	a.Equal(1, seat)

	_, err = tbl.AddPlayer(1, "alice again")
	a.Equal(ErrAlreadySeated, err)

	for i := int64(3); i <= 7; i++ {
		_, err = tbl.AddPlayer(i, "player")
		a.NoError(err)
	}

	_, err = tbl.AddPlayer(8, "too many")
	a.Equal(ErrTableFull, err)
}

func TestTable_AddPlayer_locked(t *testing.T) {
	a := assert.New(t)

	tbl := testTable(t, NewHoldem(), DefaultOptions(), "alice", "bob")
	a.NoError(tbl.NewHand())

	_, err := tbl.AddPlayer(3, "carol")
	a.Equal(ErrTableLocked, err)
}

func TestTable_NewHand_notEnoughPlayers(t *testing.T) {
	a := assert.New(t)

	tbl := testTable(t, NewHoldem(), DefaultOptions(), "alice")
	a.Equal(ErrNotEnoughPlayers, tbl.NewHand())
}

func TestTable_NewHand(t *testing.T) {
	a := assert.New(t)

	tbl := testTable(t, NewHoldem(), DefaultOptions(), "alice", "bob", "carol")
	a.NoError(tbl.newHand(stackedDeck(holdemThreeHanded)))

	a.Equal(PhasePreFlop, tbl.Phase())
	a.Equal(15, tbl.Pot())
	a.Equal(0, tbl.CurrentBet())
	a.True(tbl.IsLocked())
	a.Equal(int64(1), tbl.DealerID())

	// seat 1 leads pre-flop
	a.Equal(int64(2), tbl.CurrentTurn().ID)

	for _, p := range tbl.Players() {
		a.Equal(995, p.Chips)
		a.Equal(2, len(p.Cards().(*CommunityStyle).Hole))
	}
}

func TestTable_NewHand_removesBustedPlayers(t *testing.T) {
	a := assert.New(t)

	tbl := testTable(t, NewHoldem(), DefaultOptions(), "alice", "bob", "carol")
	tbl.players[1].Chips = 0

	a.NoError(tbl.NewHand())
	a.Equal(2, len(tbl.Players()))
	a.Equal(int64(1), tbl.Players()[0].ID)
	a.Equal(int64(3), tbl.Players()[1].ID)
}

func TestTable_verifyIntegrity(t *testing.T) {
	a := assert.New(t)

	tbl := testTable(t, NewHoldem(), DefaultOptions(), "alice", "bob")
	a.NoError(tbl.NewHand())

	tbl.players[0].Chips += 100
	err := tbl.verifyIntegrity()

	a.Error(err)
	a.IsType(StructuralError(""), err)
	a.True(tbl.aborted)
	a.False(tbl.IsLocked())

	// the aborted hand rejects everything
	a.Equal(errHandAborted, tbl.ApplyAction(1, ActionCheck, 0))
	_, err = tbl.DetermineWinners()
	a.Equal(errHandAborted, err)
}

func TestNewTable_validatesOptions(t *testing.T) {
	a := assert.New(t)

	_, err := NewTable(logrus.StandardLogger(), NewHoldem(), Options{})
	a.Error(err)

	_, err = NewTable(logrus.StandardLogger(), nil, DefaultOptions())
	a.Error(err)
}
