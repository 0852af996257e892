package poker

import (
	"testing"

	"followthequeen-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func TestBestWithWilds_noWilds(t *testing.T) {
	pool := deck.CardsFromString("2c,9d,9h,9s,5c,9c,3d")

	want := Best(pool)
	got := BestWithWilds(pool, nil)
	assert.Equal(t, want.Category, got.Category)
	assert.Equal(t, want.Tiebreakers, got.Tiebreakers)

	// a wild rank that isn't in the pool changes nothing
	got = BestWithWilds(pool, Wilds(deck.Queen))
	assert.Equal(t, want.Category, got.Category)
	assert.Equal(t, want.Tiebreakers, got.Tiebreakers)
}

func TestBestWithWilds_fiveAcesScarcity(t *testing.T) {
	// all four physical aces plus a wild queen must still rank as five aces,
	// even though no fifth ace exists to substitute
	pool := deck.CardsFromString("14s,14h,14d,14c,12h,2c,3d")

	result := BestWithWilds(pool, Wilds(deck.Queen))
	assert.Equal(t, FiveOfAKind, result.Category)
	assert.Equal(t, []int{deck.Ace}, result.Tiebreakers)
}

func TestBestWithWilds_substitution(t *testing.T) {
	a := assert.New(t)

	// a wild queen completes the royal flush
	pool := deck.CardsFromString("10s,11s,12h,13s,14s,2c,3d")
	result := BestWithWilds(pool, Wilds(deck.Queen))
	a.Equal(RoyalFlush, result.Category)

	// two wild ranks: the queen and the seven both substitute
	pool = deck.CardsFromString("10s,11s,12h,7c,14s,2c,3d")
	result = BestWithWilds(pool, Wilds(deck.Queen, 7))
	a.Equal(RoyalFlush, result.Category)

	// one wild upgrades trips to quads
	pool = deck.CardsFromString("9c,9d,9h,12s,5c,2c,3d")
	result = BestWithWilds(pool, Wilds(deck.Queen))
	a.Equal(FourOfAKind, result.Category)
	a.Equal(9, result.Tiebreakers[0])
}

func TestBestWithWilds_neverWorseThanNatural(t *testing.T) {
	d := deck.New()
	d.Shuffle(7)

	for trial := 0; trial < 10; trial++ {
		if !d.CanDraw(7) {
			d.Shuffle(int64(trial + 100))
		}

		pool := make(deck.Hand, 0, 7)
		for i := 0; i < 7; i++ {
			card, err := d.Draw()
			assert.NoError(t, err)
			pool.AddCard(card)
		}

		natural := Best(pool)
		wild := BestWithWilds(pool, Wilds(deck.Queen))
		assert.True(t, wild.Compare(natural) >= 0, "pool %s ranked worse with wilds", pool)
	}
}

func TestSubstitutions_iterator(t *testing.T) {
	a := assert.New(t)

	// one wild slot, 47 cards remain outside the hand
	combo := deck.Hand(deck.CardsFromString("12c,9d,9h,5c,2s"))
	iter := newSubstitutions(combo, Wilds(deck.Queen), maxWildExpansions)

	count := 0
	for {
		hand, ok := iter.next()
		if !ok {
			break
		}

		a.Equal(5, len(hand))
		count++
	}
	a.Equal(48, count)

	// the limit caps enumeration
	iter = newSubstitutions(combo, Wilds(deck.Queen), 10)
	count = 0
	for {
		if _, ok := iter.next(); !ok {
			break
		}
		count++
	}
	a.Equal(10, count)

	// no wilds in the combo means nothing to enumerate
	iter = newSubstitutions(combo, Wilds(4), maxWildExpansions)
	_, ok := iter.next()
	a.False(ok)
}

func TestWilds(t *testing.T) {
	w := Wilds(deck.Queen, 9)
	assert.True(t, w.Contains(deck.Queen))
	assert.True(t, w.Contains(9))
	assert.False(t, w.Contains(7))
	assert.Equal(t, []int{9, deck.Queen}, w.Ranks())
	assert.Equal(t, "9,Q", w.String())
}
