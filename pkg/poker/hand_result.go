package poker

import (
	"followthequeen-server/pkg/deck"
)

// HandResult is the outcome of ranking a hand.
// Two results are ordered by Category first, then by the element-wise
// comparison of their tiebreakers. That single rule is used everywhere two
// hands are compared.
type HandResult struct {
	Category    Category  `json:"category"`
	Tiebreakers []int     `json:"tiebreakers"`
	BestFive    deck.Hand `json:"bestFive"`
}

// Name returns the display name of the hand (i.e., "Full House")
func (r HandResult) Name() string {
	return r.Category.String()
}

// Compare returns >0 if r beats o, <0 if o beats r, and 0 on a tie
func (r HandResult) Compare(o HandResult) int {
	if r.Category != o.Category {
		if r.Category > o.Category {
			return 1
		}

		return -1
	}

	n := len(r.Tiebreakers)
	if len(o.Tiebreakers) < n {
		n = len(o.Tiebreakers)
	}

	for i := 0; i < n; i++ {
		if r.Tiebreakers[i] != o.Tiebreakers[i] {
			if r.Tiebreakers[i] > o.Tiebreakers[i] {
				return 1
			}

			return -1
		}
	}

	return 0
}

// Beats returns true if r strictly beats o
func (r HandResult) Beats(o HandResult) bool {
	return r.Compare(o) > 0
}
