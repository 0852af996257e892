package poker

import (
	"fmt"
	"sort"

	"followthequeen-server/pkg/deck"
)

// RankFive ranks an exact five-card hand.
// The result does not depend on the order of the input cards.
func RankFive(cards deck.Hand) HandResult {
	if len(cards) != 5 {
		panic(fmt.Sprintf("RankFive requires exactly five cards, got %d", len(cards)))
	}

	rankCounts := make(map[int]int)
	suits := make(map[deck.Suit]bool)
	for _, card := range cards {
		rankCounts[card.Rank]++
		suits[card.Suit] = true
	}

	isFlush := len(suits) == 1
	isStraight, straightHigh := checkStraight(rankCounts)
	tiebreakers := tiebreakersByCount(rankCounts)

	best := func(category Category, tiebreakers []int) HandResult {
		return HandResult{
			Category:    category,
			Tiebreakers: tiebreakers,
			BestFive:    cards.Clone(),
		}
	}

	counts := sortedCounts(rankCounts)

	switch {
	case counts[0] == 5:
		// only reachable through wild substitution
		return best(FiveOfAKind, tiebreakers)
	case isFlush && isStraight && straightHigh == deck.Ace:
		return best(RoyalFlush, []int{deck.Ace})
	case isFlush && isStraight:
		return best(StraightFlush, []int{straightHigh})
	case counts[0] == 4:
		return best(FourOfAKind, tiebreakers)
	case counts[0] == 3 && counts[1] == 2:
		return best(FullHouse, tiebreakers)
	case isFlush:
		return best(Flush, ranksDescending(cards))
	case isStraight:
		return best(Straight, []int{straightHigh})
	case counts[0] == 3:
		return best(ThreeOfAKind, tiebreakers)
	case counts[0] == 2 && counts[1] == 2:
		return best(TwoPair, tiebreakers)
	case counts[0] == 2:
		return best(OnePair, tiebreakers)
	}

	return best(HighCard, ranksDescending(cards))
}

// Best evaluates every five-card subset of a five to seven card pool and
// returns the maximum under HandResult ordering.
func Best(pool deck.Hand) HandResult {
	if len(pool) < 5 || len(pool) > 7 {
		panic(fmt.Sprintf("Best requires a pool of five to seven cards, got %d", len(pool)))
	}

	var best HandResult
	eachCombination(len(pool), 5, func(indexes []int) bool {
		result := RankFive(pickCards(pool, indexes))
		if best.Category == 0 || result.Beats(best) {
			best = result
		}

		return true
	})

	return best
}

// checkStraight reports whether the ranks form a straight and, if so, the
// rank of the high card. The wheel (A-2-3-4-5) counts as a five-high straight.
func checkStraight(rankCounts map[int]int) (bool, int) {
	if len(rankCounts) != 5 {
		return false, 0
	}

	low, high := deck.Ace+1, 0
	for rank := range rankCounts {
		if rank < low {
			low = rank
		}
		if rank > high {
			high = rank
		}
	}

	if high-low == 4 {
		return true, high
	}

	// the wheel: 2,3,4,5,A plays as a five-high straight
	if high == deck.Ace && low == 2 {
		isWheel := true
		for rank := 2; rank <= 5; rank++ {
			if rankCounts[rank] == 0 {
				isWheel = false
				break
			}
		}

		if isWheel {
			return true, 5
		}
	}

	return false, 0
}

// tiebreakersByCount returns the hand's ranks ordered by how often they
// appear (descending), then by rank (descending)
func tiebreakersByCount(rankCounts map[int]int) []int {
	ranks := make([]int, 0, len(rankCounts))
	for rank := range rankCounts {
		ranks = append(ranks, rank)
	}

	sort.Slice(ranks, func(i, j int) bool {
		if rankCounts[ranks[i]] != rankCounts[ranks[j]] {
			return rankCounts[ranks[i]] > rankCounts[ranks[j]]
		}

		return ranks[i] > ranks[j]
	})

	return ranks
}

func ranksDescending(cards deck.Hand) []int {
	ranks := make([]int, len(cards))
	for i, card := range cards {
		ranks[i] = card.Rank
	}

	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	return ranks
}

func sortedCounts(rankCounts map[int]int) []int {
	counts := make([]int, 0, len(rankCounts))
	for _, count := range rankCounts {
		counts = append(counts, count)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(counts)))
	return counts
}

func pickCards(pool deck.Hand, indexes []int) deck.Hand {
	cards := make(deck.Hand, len(indexes))
	for i, index := range indexes {
		cards[i] = pool[index]
	}

	return cards
}

// eachCombination calls fn with the indexes of every k-subset of n items.
// Iteration stops early if fn returns false.
func eachCombination(n, k int, fn func(indexes []int) bool) {
	indexes := make([]int, k)
	for i := range indexes {
		indexes[i] = i
	}

	for {
		if !fn(indexes) {
			return
		}

		// advance the right-most index that still has room
		i := k - 1
		for i >= 0 && indexes[i] == n-k+i {
			i--
		}

		if i < 0 {
			return
		}

		indexes[i]++
		for j := i + 1; j < k; j++ {
			indexes[j] = indexes[j-1] + 1
		}
	}
}
