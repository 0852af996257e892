package poker

import (
	"fmt"

	"followthequeen-server/pkg/deck"
)

// maxWildExpansions bounds how many concrete substitutions a single five-card
// combination may generate. The shipped variants never have more than two wild
// ranks at once, so the bound is never hit in practice; with three or more
// wild ranks the truncated enumeration could return a suboptimal hand. That is
// a documented limitation, not an error.
const maxWildExpansions = 10000

// WildRanks is the set of card ranks that play as wild
type WildRanks map[int]bool

// Wilds builds a WildRanks set from the given ranks
func Wilds(ranks ...int) WildRanks {
	w := make(WildRanks, len(ranks))
	for _, rank := range ranks {
		w[rank] = true
	}

	return w
}

// Contains returns true if the rank is wild
func (w WildRanks) Contains(rank int) bool {
	return w[rank]
}

// Ranks returns the wild ranks in ascending order
func (w WildRanks) Ranks() []int {
	ranks := make([]int, 0, len(w))
	for rank := 2; rank <= deck.Ace; rank++ {
		if w[rank] {
			ranks = append(ranks, rank)
		}
	}

	return ranks
}

func (w WildRanks) String() string {
	names := ""
	for i, rank := range w.Ranks() {
		if i > 0 {
			names += ","
		}
		names += deck.RankName(rank)
	}

	return names
}

// BestWithWilds finds the best five-card hand in the pool where every card
// whose rank is in wildRanks may substitute for any card not already present
// in the candidate hand.
func BestWithWilds(pool deck.Hand, wildRanks WildRanks) HandResult {
	if len(wildRanks) == 0 {
		return Best(pool)
	}

	if len(pool) < 5 || len(pool) > 7 {
		panic(fmt.Sprintf("BestWithWilds requires a pool of five to seven cards, got %d", len(pool)))
	}

	var best HandResult
	consider := func(result HandResult) {
		if best.Category == 0 || result.Beats(best) {
			best = result
		}
	}

	var fiveOfAKind *HandResult
	eachCombination(len(pool), 5, func(indexes []int) bool {
		combo := pickCards(pool, indexes)

		wildCount := 0
		nonWildCounts := make(map[int]int)
		for _, card := range combo {
			if wildRanks.Contains(card.Rank) {
				wildCount++
			} else {
				nonWildCounts[card.Rank]++
			}
		}

		if wildCount == 0 {
			consider(RankFive(combo))
			return true
		}

		// A wild card cannot literally become a fifth ace when all four
		// physical aces are already in the combo, so check for five of a kind
		// before substituting.
		if rank, count := mostFrequentRank(nonWildCounts); count > 0 && count+wildCount >= 5 {
			result := HandResult{
				Category:    FiveOfAKind,
				Tiebreakers: []int{rank},
				BestFive:    combo.Clone(),
			}
			consider(result)

			if best.Category == FiveOfAKind {
				fiveOfAKind = &best
				return false
			}

			return true
		}

		iter := newSubstitutions(combo, wildRanks, maxWildExpansions)
		for {
			hand, ok := iter.next()
			if !ok {
				break
			}

			result := RankFive(hand)
			// report the physical cards, not the substitution
			result.BestFive = combo.Clone()
			consider(result)

			if best.Category == FiveOfAKind {
				fiveOfAKind = &best
				return false
			}
		}

		return true
	})

	if fiveOfAKind != nil {
		return *fiveOfAKind
	}

	return best
}

func mostFrequentRank(rankCounts map[int]int) (rank, count int) {
	for r, c := range rankCounts {
		if c > count || (c == count && r > rank) {
			rank, count = r, c
		}
	}

	return rank, count
}

// substitutions enumerates the concrete hands a wild-carrying combination can
// become. Each wild slot may take any card not already used in the candidate
// hand. The iterator owns all of its state; limit caps how many hands it will
// ever produce.
type substitutions struct {
	base       deck.Hand
	wildSlots  []int
	candidates deck.Hand
	choice     []int
	limit      int
	produced   int
	done       bool
}

func newSubstitutions(cards deck.Hand, wildRanks WildRanks, limit int) *substitutions {
	wildSlots := make([]int, 0, len(cards))
	used := make(map[deck.Card]bool)
	for i, card := range cards {
		if wildRanks.Contains(card.Rank) {
			wildSlots = append(wildSlots, i)
		} else {
			used[*card] = true
		}
	}

	// every card not already locked into the hand is a candidate
	candidates := make(deck.Hand, 0, 52-len(used))
	for _, suit := range deck.Suits {
		for rank := 2; rank <= deck.Ace; rank++ {
			card := &deck.Card{Rank: rank, Suit: suit}
			if !used[*card] {
				candidates = append(candidates, card)
			}
		}
	}

	return &substitutions{
		base:       cards.Clone(),
		wildSlots:  wildSlots,
		candidates: candidates,
		choice:     make([]int, len(wildSlots)),
		limit:      limit,
		done:       len(wildSlots) == 0,
	}
}

// next returns the next substituted hand, or false when the enumeration is
// exhausted or the limit has been reached
func (s *substitutions) next() (deck.Hand, bool) {
	for !s.done && s.produced < s.limit {
		valid := s.distinctChoice()

		var hand deck.Hand
		if valid {
			hand = s.base.Clone()
			for k, slot := range s.wildSlots {
				hand[slot] = s.candidates[s.choice[k]]
			}
		}

		s.advance()

		if valid {
			s.produced++
			return hand, true
		}
	}

	return nil, false
}

// distinctChoice reports whether the current choice assigns a different
// candidate card to every wild slot
func (s *substitutions) distinctChoice() bool {
	for i := 0; i < len(s.choice); i++ {
		for j := i + 1; j < len(s.choice); j++ {
			if s.choice[i] == s.choice[j] {
				return false
			}
		}
	}

	return true
}

func (s *substitutions) advance() {
	for i := len(s.choice) - 1; i >= 0; i-- {
		s.choice[i]++
		if s.choice[i] < len(s.candidates) {
			return
		}

		s.choice[i] = 0
	}

	s.done = true
}
