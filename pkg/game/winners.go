package game

import (
	"strings"

	"followthequeen-server/pkg/deck"
)

// Winner records one payout line from a finished hand
type Winner struct {
	Player  *Player
	Amount  int
	Hand    string
	LowHand string

	// Category explains the win: "fold", "high", "low", "scoop", or
	// "two natural sevens"
	Category string
}

// DetermineWinners pays out the pot at the showdown and unlocks the table.
// The pot always empties: shares that do not divide evenly are topped up one
// chip at a time in seat order.
func (t *Table) DetermineWinners() ([]*Winner, error) {
	if t.aborted {
		return nil, errHandAborted
	}

	if t.phase != PhaseShowdown {
		return nil, InvalidActionError("the hand is not at the showdown")
	}

	active := t.activePlayers()
	if len(active) == 0 {
		return nil, StructuralError("no players remain in the hand")
	}

	var winners []*Winner

	if len(active) == 1 {
		// everyone else folded; the survivor takes the pot without a
		// showdown
		p := active[0]
		p.Chips += t.pot
		p.LastWin = t.pot
		winners = []*Winner{{Player: p, Amount: t.pot, Category: "fold"}}
		t.logMessage(p.ID, "{} won %d after everyone else folded", t.pot)
	} else if sevens := t.naturalSevensWinners(active); len(sevens) > 0 {
		winners = t.payout(sevens, t.pot, "two natural sevens")
	} else if t.options.HiLo {
		winners = t.payoutHiLo(active)
	} else {
		winners = t.payout(bestHighHands(active), t.pot, "high")
	}

	t.pot = 0
	t.locked = false

	return winners, t.verifyIntegrity()
}

// payoutHiLo splits the pot between the best high hand and the best
// qualifying eight-or-better low. The low half absorbs the odd chip. If no
// low qualifies, the high hand scoops.
func (t *Table) payoutHiLo(active []*Player) []*Winner {
	high := bestHighHands(active)
	low := bestLowHands(active)

	if len(low) == 0 {
		return t.payout(high, t.pot, "high")
	}

	highPot := t.pot / 2
	lowPot := t.pot - highPot

	winners := t.payout(high, highPot, "high")
	winners = append(winners, t.payout(low, lowPot, "low")...)

	return mergeScoops(winners)
}

// payout splits amount evenly among the winners, with remainder chips going
// to the earliest seats
func (t *Table) payout(players []*Player, amount int, category string) []*Winner {
	share := amount / len(players)
	rem := amount % len(players)

	winners := make([]*Winner, len(players))
	for i, p := range players {
		won := share
		if i < rem {
			won++
		}

		p.Chips += won
		p.LastWin += won

		w := &Winner{Player: p, Amount: won, Category: category}
		if category == "low" {
			if lr := p.LowResult(); lr != nil {
				w.LowHand = lr.Name()
			}
		} else if hr := p.HandResult(); hr != nil {
			w.Hand = hr.Name()
		}

		winners[i] = w
	}

	t.logMessage(0, "%s won %d (%s)", describeWinners(winners), amount, category)
	return winners
}

// naturalSevensWinners returns the players holding two natural sevens when
// that table option is enabled. Sevens are not natural if they are the
// table's wild rank.
func (t *Table) naturalSevensWinners(active []*Player) []*Player {
	if !t.options.TwoNaturalSevensWin {
		return nil
	}

	if wh, ok := t.variant.(wildHolder); ok && wh.WildRanks().Contains(7) {
		return nil
	}

	var out []*Player
	for _, p := range active {
		sevens := 0
		for _, c := range playerAllCards(p) {
			if c.Rank == 7 {
				sevens++
			}
		}

		if sevens >= 2 {
			out = append(out, p)
		}
	}

	return out
}

// playerAllCards returns every card the player personally holds
func playerAllCards(p *Player) deck.Hand {
	switch c := p.Cards().(type) {
	case *CommunityStyle:
		return c.Hole
	case *StudStyle:
		return c.All()
	}

	return nil
}

// bestHighHands returns the players whose high hands tie for best
func bestHighHands(active []*Player) []*Player {
	var best []*Player
	for _, p := range active {
		if p.HandResult() == nil {
			continue
		}

		if len(best) == 0 {
			best = []*Player{p}
			continue
		}

		cmp := p.HandResult().Compare(*best[0].HandResult())
		if cmp > 0 {
			best = []*Player{p}
		} else if cmp == 0 {
			best = append(best, p)
		}
	}

	return best
}

// bestLowHands returns the players whose qualifying lows tie for best, or
// nothing if no hand qualifies
func bestLowHands(active []*Player) []*Player {
	var best []*Player
	for _, p := range active {
		lr := p.LowResult()
		if lr == nil || !lr.Qualifies {
			continue
		}

		if len(best) == 0 {
			best = []*Player{p}
			continue
		}

		cmp := lr.Compare(*best[0].LowResult())
		if cmp > 0 {
			best = []*Player{p}
		} else if cmp == 0 {
			best = append(best, p)
		}
	}

	return best
}

// mergeScoops collapses a player's high and low wins into a single scoop
// entry
func mergeScoops(winners []*Winner) []*Winner {
	merged := make([]*Winner, 0, len(winners))
	byPlayer := make(map[int64]*Winner)

	for _, w := range winners {
		if prev, ok := byPlayer[w.Player.ID]; ok {
			prev.Amount += w.Amount
			prev.Category = "scoop"
			if prev.LowHand == "" {
				prev.LowHand = w.LowHand
			}
			if prev.Hand == "" {
				prev.Hand = w.Hand
			}
			continue
		}

		byPlayer[w.Player.ID] = w
		merged = append(merged, w)
	}

	return merged
}

func describeWinners(winners []*Winner) string {
	parts := make([]string, len(winners))
	for i, w := range winners {
		parts[i] = w.Player.Name
	}

	return strings.Join(parts, ", ")
}
