package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♡", (&Card{Rank: 2, Suit: Hearts}).String())
	assert.Equal(t, "J♣", (&Card{Rank: 11, Suit: Clubs}).String())
	assert.Equal(t, "Q♢", (&Card{Rank: 12, Suit: Diamonds}).String())
	assert.Equal(t, "K♠", (&Card{Rank: 13, Suit: Spades}).String())
	assert.Equal(t, "A♠", (&Card{Rank: 14, Suit: Spades}).String())
}

func TestCard_AceLowRank(t *testing.T) {
	assert.Equal(t, 1, CardFromString("14c").AceLowRank())
	assert.Equal(t, 13, CardFromString("13c").AceLowRank())
	assert.Equal(t, 2, CardFromString("2s").AceLowRank())
}

func TestCard_SuitOrder(t *testing.T) {
	assert.Equal(t, 0, CardFromString("2c").SuitOrder())
	assert.Equal(t, 1, CardFromString("2d").SuitOrder())
	assert.Equal(t, 2, CardFromString("2h").SuitOrder())
	assert.Equal(t, 3, CardFromString("2s").SuitOrder())
}

func TestCardFromString(t *testing.T) {
	card := CardFromString("14s")
	assert.Equal(t, Ace, card.Rank)
	assert.Equal(t, Spades, card.Suit)

	card = CardFromString("2d")
	assert.Equal(t, 2, card.Rank)
	assert.Equal(t, Diamonds, card.Suit)

	assert.Nil(t, CardFromString(""))
	assert.PanicsWithValue(t, "could not parse card: 15s", func() {
		CardFromString("15s")
	})
}

func TestCardsToString(t *testing.T) {
	cards := CardsFromString("2c,13h,14s")
	assert.Equal(t, "2c,13h,14s", CardsToString(cards))
	assert.Equal(t, "", CardsToString(nil))
}

func TestHand_CountRank(t *testing.T) {
	hand := Hand(CardsFromString("7c,7d,12s,2h"))
	assert.Equal(t, 2, hand.CountRank(7))
	assert.Equal(t, 1, hand.CountRank(12))
	assert.Equal(t, 0, hand.CountRank(14))
}
