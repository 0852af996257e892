package game

import (
	"testing"

	"followthequeen-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

// third street three-handed: seat 1 is dealt first
func ftqDeck(upCards string, more ...string) *deck.Deck {
	cards := "2c,3c,4c,2d,3d,4d," + upCards
	for _, m := range more {
		cards += "," + m
	}

	return stackedDeck(cards)
}

func TestFollowTheQueen_queenFollowedByNine(t *testing.T) {
	a := assert.New(t)

	fq := NewFollowTheQueen()
	tbl := testTable(t, fq, DefaultOptions(), "alice", "bob", "carol")

	// bob shows the queen, carol's nine follows it
	a.NoError(tbl.newHand(ftqDeck("12h,9d,7c")))

	a.Equal([]int{9, deck.Queen}, fq.WildRanks().Ranks())

	events := fq.WildEvents()
	a.Equal(1, len(events))
	a.Equal(PhaseThirdStreet, events[0].Phase)
	a.Equal(9, events[0].WildRank)
	a.Equal(int64(3), events[0].PlayerID)
	a.Equal("9d", deck.CardToString(events[0].Card))
}

func TestFollowTheQueen_queenWithoutFollowerReverts(t *testing.T) {
	a := assert.New(t)

	fq := NewFollowTheQueen()
	tbl := testTable(t, fq, DefaultOptions(), "alice", "bob", "carol")

	// alice is dealt last and shows the queen; nothing follows it
	a.NoError(tbl.newHand(ftqDeck("7c,9d,12h", "12d,5h,6h")))

	a.Equal([]int{deck.Queen}, fq.WildRanks().Ranks())

	events := fq.WildEvents()
	a.Equal(1, len(events))
	a.Equal(deck.Queen, events[0].WildRank)

	// bob shows the lowest card and brings it in
	a.Equal(int64(2), tbl.CurrentTurn().ID)
	a.NoError(tbl.ApplyAction(2, ActionCheck, 0))
	a.NoError(tbl.ApplyAction(3, ActionCall, 0))
	a.NoError(tbl.ApplyAction(1, ActionCall, 0))
	a.True(tbl.IsRoundComplete())

	// fourth street: bob's queen is followed by carol's five
	done, err := tbl.AdvancePhase()
	a.NoError(err)
	a.False(done)
	a.Equal(PhaseFourthStreet, tbl.Phase())
	a.Equal([]int{5, deck.Queen}, fq.WildRanks().Ranks())

	events = fq.WildEvents()
	a.Equal(2, len(events))
	a.Equal(PhaseFourthStreet, events[1].Phase)
	a.Equal(5, events[1].WildRank)
}

func TestFollowTheQueen_bringIn(t *testing.T) {
	a := assert.New(t)

	fq := NewFollowTheQueen()
	tbl := testTable(t, fq, DefaultOptions(), "alice", "bob", "carol")
	a.NoError(tbl.newHand(ftqDeck("12h,9d,7c")))

	// alice shows the seven and brings it in
	a.Equal(int64(1), tbl.CurrentTurn().ID)
	a.Equal(10, tbl.CurrentBet())
	a.Equal(25, tbl.Pot())
	a.Equal(985, tbl.players[0].Chips)
}

func TestFollowTheQueen_bringInSuitTiebreak(t *testing.T) {
	a := assert.New(t)

	fq := NewFollowTheQueen()
	tbl := testTable(t, fq, DefaultOptions(), "alice", "bob", "carol")
	a.NoError(tbl.newHand(ftqDeck("2d,2c,5h")))

	// clubs rank below diamonds, so carol's deuce brings it in
	a.Equal(int64(3), tbl.CurrentTurn().ID)
}

func TestFollowTheQueen_playToShowdown(t *testing.T) {
	a := assert.New(t)

	fq := NewFollowTheQueen()
	opts := DefaultOptions()
	tbl := testTable(t, fq, opts, "alice", "bob", "carol")

	// streets: fourth 5s,6s,8c / fifth 5c,6c,8d / sixth 5d,6d,8h /
	// seventh (down) 13s,13d,13h
	a.NoError(tbl.newHand(ftqDeck("12h,9d,7c",
		"5s,6s,8c", "5c,6c,8d", "5d,6d,8h", "13s,13d,13h")))

	// nines are wild from third street on
	a.Equal([]int{9, deck.Queen}, fq.WildRanks().Ranks())

	// alice brings it in and the others call
	a.NoError(tbl.ApplyAction(1, ActionCheck, 0))
	a.NoError(tbl.ApplyAction(2, ActionCall, 0))
	a.NoError(tbl.ApplyAction(3, ActionCall, 0))
	a.True(tbl.IsRoundComplete())

	for _, phase := range []Phase{PhaseFourthStreet, PhaseFifthStreet, PhaseSixthStreet, PhaseSeventhStreet} {
		done, err := tbl.AdvancePhase()
		a.NoError(err)
		a.False(done)
		a.Equal(phase, tbl.Phase())

		checkAround(t, tbl, 2, 3, 1)
	}

	done, err := tbl.AdvancePhase()
	a.NoError(err)
	a.True(done)

	for _, p := range tbl.Players() {
		a.Equal(7, len(p.Cards().(*StudStyle).All()))
		a.NotNil(p.HandResult())
	}

	// carol's wild nine completes four sixes, edging bob's four fives
	carol := tbl.players[2]
	a.Equal("Four of a Kind", carol.HandResult().Name())

	winners, err := tbl.DetermineWinners()
	a.NoError(err)
	a.Equal(1, len(winners))
	a.Equal(int64(3), winners[0].Player.ID)
	a.Equal(45, winners[0].Amount)
	a.Equal(1030, carol.Chips)
}

func TestFollowTheQueen_snapshotShowsUpCardsOnly(t *testing.T) {
	a := assert.New(t)

	fq := NewFollowTheQueen()
	tbl := testTable(t, fq, DefaultOptions(), "alice", "bob", "carol")
	a.NoError(tbl.newHand(ftqDeck("12h,9d,7c")))

	state := tbl.Snapshot(1)
	a.Equal([]int{9, deck.Queen}, state.WildRanks)
	a.Equal(1, len(state.WildEvents))

	for _, ps := range state.Players {
		a.Equal(1, len(ps.Up))
		a.NotNil(ps.Up[0])
		a.Equal(2, len(ps.Down))

		if ps.ID == 1 {
			a.Equal("4c,4d", ps.Down.String())
		} else {
			a.Nil(ps.Down[0])
			a.Nil(ps.Down[1])
		}
	}
}
