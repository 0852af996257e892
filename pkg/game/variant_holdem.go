package game

import (
	"fmt"

	"followthequeen-server/pkg/deck"
)

// Holdem is a community-card variant: two private hole cards per player and
// a five-card shared board dealt across the flop, turn, and river.
type Holdem struct {
	community deck.Hand
}

// NewHoldem returns the community-card variant
func NewHoldem() *Holdem {
	return &Holdem{}
}

// Name returns the display name
func (h *Holdem) Name() string {
	return "Hold'em"
}

// Phases returns the betting phases in order
func (h *Holdem) Phases() []Phase {
	return []Phase{PhasePreFlop, PhaseFlop, PhaseTurn, PhaseRiver}
}

// Community returns the shared board dealt so far
func (h *Holdem) Community() deck.Hand {
	return h.community
}

// StartHand antes every player, deals two hole cards each, and opens
// pre-flop betting
func (h *Holdem) StartHand(t *Table) error {
	h.community = nil
	postAntes(t)

	for _, p := range t.players {
		p.cards = &CommunityStyle{}
	}

	// two passes, one card at a time, starting left of the dealer
	for pass := 0; pass < 2; pass++ {
		for i := range t.players {
			p := t.players[(t.dealerIndex+1+i)%len(t.players)]

			card, err := t.deck.Draw()
			if err != nil {
				return err
			}

			p.cards.(*CommunityStyle).Hole.AddCard(card)
		}
	}

	t.startBettingRound()
	return nil
}

// DealPhase burns a card and deals the board tranche for the phase
func (h *Holdem) DealPhase(t *Table) error {
	var n int
	switch t.phase {
	case PhaseFlop:
		n = 3
	case PhaseTurn, PhaseRiver:
		n = 1
	default:
		return fmt.Errorf("no cards are dealt during %s", t.phase)
	}

	if _, err := t.deck.Draw(); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		card, err := t.deck.Draw()
		if err != nil {
			return err
		}

		h.community.AddCard(card)
	}

	t.logMessage(0, "The board is now %s", h.community)
	return nil
}

// EvaluateHands ranks each remaining player's best five from their hole
// cards and the board
func (h *Holdem) EvaluateHands(t *Table) error {
	evaluateShowdown(t, func(p *Player) deck.Hand {
		pool := make(deck.Hand, 0, 7)
		pool = append(pool, p.cards.(*CommunityStyle).Hole...)
		pool = append(pool, h.community...)

		return pool
	}, nil)

	return nil
}
