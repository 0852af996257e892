package poker

import (
	"fmt"
	"testing"

	"followthequeen-server/pkg/deck"

	oracle "github.com/chehsunliu/poker"
	"github.com/stretchr/testify/assert"
)

// cross-check the natural (no-wild) ranking against an independent evaluator
func TestBest_againstOracle(t *testing.T) {
	for trial := 0; trial < 50; trial++ {
		d := deck.New()
		d.Shuffle(int64(trial + 1))

		a := drawPool(t, d, 7)
		b := drawPool(t, d, 7)

		ours := Best(a).Compare(Best(b))

		// the oracle scores lower for stronger hands
		oracleA := oracle.Evaluate(toOracleCards(a))
		oracleB := oracle.Evaluate(toOracleCards(b))

		switch {
		case oracleA < oracleB:
			assert.True(t, ours > 0, "trial %d: %s should beat %s", trial, a, b)
		case oracleA > oracleB:
			assert.True(t, ours < 0, "trial %d: %s should lose to %s", trial, a, b)
		default:
			assert.Equal(t, 0, ours, "trial %d: %s should tie %s", trial, a, b)
		}
	}
}

func drawPool(t *testing.T, d *deck.Deck, n int) deck.Hand {
	t.Helper()

	pool := make(deck.Hand, 0, n)
	for i := 0; i < n; i++ {
		card, err := d.Draw()
		assert.NoError(t, err)
		pool.AddCard(card)
	}

	return pool
}

func toOracleCards(hand deck.Hand) []oracle.Card {
	cards := make([]oracle.Card, len(hand))
	for i, card := range hand {
		cards[i] = oracle.NewCard(oracleCardString(card))
	}

	return cards
}

func oracleCardString(card *deck.Card) string {
	var rank string
	switch card.Rank {
	case 10:
		rank = "T"
	case deck.Jack:
		rank = "J"
	case deck.Queen:
		rank = "Q"
	case deck.King:
		rank = "K"
	case deck.Ace:
		rank = "A"
	default:
		rank = fmt.Sprintf("%d", card.Rank)
	}

	var suit string
	switch card.Suit {
	case deck.Clubs:
		suit = "c"
	case deck.Diamonds:
		suit = "d"
	case deck.Hearts:
		suit = "h"
	case deck.Spades:
		suit = "s"
	}

	return rank + suit
}
