package game

import (
	"followthequeen-server/pkg/deck"
	"followthequeen-server/pkg/poker"
)

// Variant is a poker variant pluggable into a Table. The Table owns the
// betting machinery; the variant decides what gets dealt, when, and how the
// showdown hands are ranked.
type Variant interface {
	// Name is the display name of the variant
	Name() string

	// Phases is the ordered list of betting phases, not including the
	// showdown
	Phases() []Phase

	// StartHand posts forced bets, deals the opening cards, and opens the
	// first betting round
	StartHand(t *Table) error

	// DealPhase deals the cards for the phase the table just entered
	DealPhase(t *Table) error

	// EvaluateHands ranks every non-folded player's hand for the showdown
	EvaluateHands(t *Table) error
}

// communityHolder is implemented by variants with a shared board
type communityHolder interface {
	Community() deck.Hand
}

// wildHolder is implemented by variants with wild ranks
type wildHolder interface {
	WildRanks() poker.WildRanks
}

// postAntes collects the ante from every player. A player who cannot cover
// the ante goes all-in for what they have.
func postAntes(t *Table) {
	for _, p := range t.players {
		t.addToPot(p, t.options.Ante)
	}

	// antes are dead money, not street bets
	for _, p := range t.players {
		p.CurrentBet = 0
	}

	t.logMessage(0, "Antes of %d collected", t.options.Ante)
}

// evaluateShowdown computes and stores every active player's best high hand
// (and low hand when the table plays hi-lo) from their card pool.
func evaluateShowdown(t *Table, pool func(p *Player) deck.Hand, wilds poker.WildRanks) {
	for _, p := range t.activePlayers() {
		cards := pool(p)

		result := poker.BestWithWilds(cards, wilds)
		p.handResult = &result

		if t.options.HiLo {
			low := poker.BestLowWithWilds(cards, wilds)
			p.lowResult = &low
		}
	}
}
