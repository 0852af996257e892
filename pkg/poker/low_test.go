package poker

import (
	"testing"

	"followthequeen-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateLow(t *testing.T) {
	a := assert.New(t)

	// the wheel qualifies even though it is also a straight
	result := evaluateLow(deck.CardsFromString("14c,2d,3h,4s,5c"))
	a.True(result.Qualifies)
	a.Equal([]int{5, 4, 3, 2, 1}, result.Values)
	a.Equal("The Wheel (A-2-3-4-5)", result.Name())

	// a suited low still qualifies; flushes don't count against a low
	result = evaluateLow(deck.CardsFromString("14h,2h,4h,6h,8h"))
	a.True(result.Qualifies)
	a.Equal([]int{8, 6, 4, 2, 1}, result.Values)
	a.Equal("Eight Low (8-6-4-2-A)", result.Name())

	// a pair never qualifies
	result = evaluateLow(deck.CardsFromString("2c,2d,3h,4s,5c"))
	a.False(result.Qualifies)
	a.Equal("No Low", result.Name())

	// a nine or higher never qualifies
	result = evaluateLow(deck.CardsFromString("2c,3d,4h,5s,9c"))
	a.False(result.Qualifies)
}

func TestLowResult_Compare(t *testing.T) {
	a := assert.New(t)

	wheel := evaluateLow(deck.CardsFromString("14c,2d,3h,4s,5c"))
	sixFour := evaluateLow(deck.CardsFromString("14c,2d,3h,4s,6c"))
	eight := evaluateLow(deck.CardsFromString("14c,2d,3h,4s,8c"))
	none := evaluateLow(deck.CardsFromString("2c,3d,4h,5s,9c"))

	a.True(wheel.Compare(sixFour) > 0)
	a.True(sixFour.Compare(eight) > 0)
	a.True(eight.Compare(none) > 0)
	a.Equal(0, wheel.Compare(wheel))
	a.Equal(0, none.Compare(none))

	a.Equal("Six-Four Low", sixFour.Name())
}

func TestBestLow(t *testing.T) {
	a := assert.New(t)

	// picks the wheel out of a seven-card pool
	result := BestLow(deck.CardsFromString("14c,2d,3h,4s,5c,13d,13h"))
	a.True(result.Qualifies)
	a.Equal([]int{5, 4, 3, 2, 1}, result.Values)

	// prefers the lower eight-card hand
	result = BestLow(deck.CardsFromString("8c,7d,3h,4s,5c,6d,2h"))
	a.True(result.Qualifies)
	a.Equal([]int{6, 5, 4, 3, 2}, result.Values)

	// no qualifier in a high-card pool
	result = BestLow(deck.CardsFromString("9c,10d,11h,12s,13c,14d,9h"))
	a.False(result.Qualifies)
}

func TestBestLowWithWilds(t *testing.T) {
	a := assert.New(t)

	// a wild queen takes the lowest unused rank (the ace)
	result := BestLowWithWilds(deck.CardsFromString("12c,2d,3h,4s,5c,13d,13h"), Wilds(deck.Queen))
	a.True(result.Qualifies)
	a.Equal([]int{5, 4, 3, 2, 1}, result.Values)

	// two wilds fill in the two lowest unused ranks
	result = BestLowWithWilds(deck.CardsFromString("12c,12d,3h,4s,5c,13d,13h"), Wilds(deck.Queen))
	a.True(result.Qualifies)
	a.Equal([]int{5, 4, 3, 2, 1}, result.Values)

	// non-wild cards that pair still disqualify the combo
	result = BestLowWithWilds(deck.CardsFromString("12c,9d,9h,10s,11c,13d,13h"), Wilds(deck.Queen))
	a.False(result.Qualifies)

	// no wild ranks falls through to the natural search
	result = BestLowWithWilds(deck.CardsFromString("14c,2d,3h,4s,5c,13d,13h"), nil)
	a.True(result.Qualifies)
	a.Equal([]int{5, 4, 3, 2, 1}, result.Values)
}
