package poker

import (
	"fmt"
	"sort"
	"strings"

	"followthequeen-server/pkg/deck"
)

// lowQualifier is the highest ace-low rank allowed in a qualifying low hand
const lowQualifier = 8

// LowResult is the outcome of ranking a hand for low (eight-or-better).
// Values holds the five ace-low ranks sorted descending; a smaller tuple is a
// better low. Straights and flushes do not disqualify a low hand.
type LowResult struct {
	Qualifies bool      `json:"qualifies"`
	Values    []int     `json:"values"`
	BestFive  deck.Hand `json:"bestFive"`
}

// Compare returns >0 if l is a better low than o, <0 if o is better, 0 on a tie.
// A qualifying hand always beats a non-qualifying hand.
func (l LowResult) Compare(o LowResult) int {
	if l.Qualifies != o.Qualifies {
		if l.Qualifies {
			return 1
		}

		return -1
	}

	if !l.Qualifies {
		return 0
	}

	for i := 0; i < len(l.Values) && i < len(o.Values); i++ {
		if l.Values[i] != o.Values[i] {
			if l.Values[i] < o.Values[i] {
				return 1
			}

			return -1
		}
	}

	return 0
}

// Name returns the display name of the low hand (i.e., "Eight Low (8-6-4-3-A)")
func (l LowResult) Name() string {
	if !l.Qualifies {
		return "No Low"
	}

	names := make([]string, len(l.Values))
	for i, v := range l.Values {
		if v == 1 {
			names[i] = "A"
		} else {
			names[i] = fmt.Sprintf("%d", v)
		}
	}
	display := strings.Join(names, "-")

	switch {
	case equalValues(l.Values, []int{5, 4, 3, 2, 1}):
		return "The Wheel (A-2-3-4-5)"
	case equalValues(l.Values, []int{6, 4, 3, 2, 1}):
		return "Six-Four Low"
	case l.Values[0] == 6:
		return fmt.Sprintf("Six Low (%s)", display)
	case l.Values[0] == 7:
		return fmt.Sprintf("Seven Low (%s)", display)
	case l.Values[0] == 8:
		return fmt.Sprintf("Eight Low (%s)", display)
	}

	return fmt.Sprintf("%s Low", display)
}

// evaluateLow ranks an exact five-card hand for low. A hand qualifies only if
// all five ranks are eight or lower (ace plays as one) and all five ranks are
// distinct.
func evaluateLow(cards deck.Hand) LowResult {
	if len(cards) != 5 {
		panic(fmt.Sprintf("evaluateLow requires exactly five cards, got %d", len(cards)))
	}

	values := make([]int, 5)
	ranks := make(map[int]bool)
	for i, card := range cards {
		values[i] = card.AceLowRank()
		ranks[card.Rank] = true
	}

	if len(ranks) != 5 {
		return LowResult{}
	}

	for _, v := range values {
		if v > lowQualifier {
			return LowResult{}
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(values)))
	return LowResult{
		Qualifies: true,
		Values:    values,
		BestFive:  cards.Clone(),
	}
}

// BestLow finds the best qualifying low hand in a five to seven card pool.
// If no subset qualifies, the returned result has Qualifies set to false and
// the caller must route the entire pot to the high hand.
func BestLow(pool deck.Hand) LowResult {
	if len(pool) < 5 || len(pool) > 7 {
		panic(fmt.Sprintf("BestLow requires a pool of five to seven cards, got %d", len(pool)))
	}

	var best LowResult
	eachCombination(len(pool), 5, func(indexes []int) bool {
		result := evaluateLow(pickCards(pool, indexes))
		if result.Qualifies && result.Compare(best) > 0 {
			best = result
		}

		return true
	})

	return best
}

// BestLowWithWilds finds the best qualifying low hand where wild cards take
// the lowest unused ranks in A..8
func BestLowWithWilds(pool deck.Hand, wildRanks WildRanks) LowResult {
	if len(wildRanks) == 0 {
		return BestLow(pool)
	}

	if len(pool) < 5 || len(pool) > 7 {
		panic(fmt.Sprintf("BestLowWithWilds requires a pool of five to seven cards, got %d", len(pool)))
	}

	var best LowResult
	eachCombination(len(pool), 5, func(indexes []int) bool {
		combo := pickCards(pool, indexes)

		wildCount := 0
		usedRanks := make(map[int]bool)
		values := make([]int, 0, 5)
		disqualified := false
		for _, card := range combo {
			if wildRanks.Contains(card.Rank) {
				wildCount++
				continue
			}

			if card.AceLowRank() > lowQualifier || usedRanks[card.Rank] {
				disqualified = true
				break
			}

			usedRanks[card.Rank] = true
			values = append(values, card.AceLowRank())
		}

		// the non-wild cards alone already break the low
		if disqualified {
			return true
		}

		if wildCount == 0 {
			result := evaluateLow(combo)
			if result.Qualifies && result.Compare(best) > 0 {
				best = result
			}

			return true
		}

		// assign the wilds the lowest unused low ranks
		for low := 1; low <= lowQualifier && wildCount > 0; low++ {
			rank := low
			if low == 1 {
				rank = deck.Ace
			}

			if !usedRanks[rank] {
				usedRanks[rank] = true
				values = append(values, low)
				wildCount--
			}
		}

		// not enough distinct low ranks left for every wild
		if wildCount > 0 {
			return true
		}

		sort.Sort(sort.Reverse(sort.IntSlice(values)))
		result := LowResult{
			Qualifies: true,
			Values:    values,
			BestFive:  combo.Clone(),
		}
		if result.Compare(best) > 0 {
			best = result
		}

		return true
	})

	return best
}

func equalValues(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
