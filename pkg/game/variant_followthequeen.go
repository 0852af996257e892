package game

import (
	"fmt"

	"followthequeen-server/pkg/deck"
	"followthequeen-server/pkg/poker"
)

// WildEvent records a change to the wild rank during a hand of Follow the
// Queen. The history is append-only and survives to the showdown so clients
// can replay how the wild rank moved.
type WildEvent struct {
	Phase    Phase      `json:"phase"`
	Card     *deck.Card `json:"card"`
	WildRank int        `json:"wildRank"`
	PlayerID int64      `json:"playerId"`
}

// FollowTheQueen is seven-card stud where queens are always wild and the
// rank dealt face-up immediately after a face-up queen becomes wild too.
// A face-up queen with no follower reverts the wilds to queens only.
type FollowTheQueen struct {
	// wildRank is the rank following the most recent face-up queen, or
	// zero when queens alone are wild
	wildRank     int
	queenPending bool
	events       []*WildEvent
}

// NewFollowTheQueen returns the stud variant
func NewFollowTheQueen() *FollowTheQueen {
	return &FollowTheQueen{}
}

// Name returns the display name
func (f *FollowTheQueen) Name() string {
	return "Follow the Queen"
}

// Phases returns the betting streets in order
func (f *FollowTheQueen) Phases() []Phase {
	return []Phase{
		PhaseThirdStreet,
		PhaseFourthStreet,
		PhaseFifthStreet,
		PhaseSixthStreet,
		PhaseSeventhStreet,
	}
}

// WildRanks returns the current wild ranks. Queens are always wild.
func (f *FollowTheQueen) WildRanks() poker.WildRanks {
	if f.wildRank == 0 || f.wildRank == deck.Queen {
		return poker.Wilds(deck.Queen)
	}

	return poker.Wilds(deck.Queen, f.wildRank)
}

// WildEvents returns the hand's wild-rank history in order
func (f *FollowTheQueen) WildEvents() []*WildEvent {
	return f.events
}

// StartHand antes every player, deals two down cards and one up card each,
// and opens third-street betting with the bring-in
func (f *FollowTheQueen) StartHand(t *Table) error {
	f.wildRank = 0
	f.queenPending = false
	f.events = nil

	postAntes(t)

	for _, p := range t.players {
		p.cards = &StudStyle{}
	}

	for pass := 0; pass < 2; pass++ {
		if err := f.dealPass(t, false); err != nil {
			return err
		}
	}

	if err := f.dealPass(t, true); err != nil {
		return err
	}

	return f.postBringIn(t)
}

// DealPhase deals one card to each remaining player: face-up on fourth
// through sixth streets, face-down on seventh
func (f *FollowTheQueen) DealPhase(t *Table) error {
	switch t.phase {
	case PhaseFourthStreet, PhaseFifthStreet, PhaseSixthStreet:
		return f.dealPass(t, true)
	case PhaseSeventhStreet:
		return f.dealPass(t, false)
	}

	return fmt.Errorf("no cards are dealt during %s", t.phase)
}

// EvaluateHands ranks each remaining player's best five from their seven
// cards, with the current wild ranks in play
func (f *FollowTheQueen) EvaluateHands(t *Table) error {
	evaluateShowdown(t, func(p *Player) deck.Hand {
		return p.cards.(*StudStyle).All()
	}, f.WildRanks())

	return nil
}

// dealPass deals one card to every non-folded player, starting left of the
// dealer. Face-up passes feed the queen-following rule.
func (f *FollowTheQueen) dealPass(t *Table, faceUp bool) error {
	for i := range t.players {
		p := t.players[(t.dealerIndex+1+i)%len(t.players)]
		if p.Folded {
			continue
		}

		card, err := t.deck.Draw()
		if err != nil {
			return err
		}

		stud := p.cards.(*StudStyle)
		if faceUp {
			stud.Up.AddCard(card)
			f.followQueen(t, p, card)
		} else {
			stud.Down.AddCard(card)
		}
	}

	if faceUp && f.queenPending {
		// the queen was the last card of the pass, so there is no
		// follower and the wilds fall back to queens only
		f.queenPending = false
		f.wildRank = 0
		f.events = append(f.events, &WildEvent{
			Phase:    t.phase,
			WildRank: deck.Queen,
		})
		t.logMessage(0, "The queen had no follower; only queens are wild")
	}

	return nil
}

// followQueen applies the queen-following rule to a freshly dealt up card
func (f *FollowTheQueen) followQueen(t *Table, p *Player, card *deck.Card) {
	if f.queenPending {
		f.queenPending = false
		f.wildRank = card.Rank
		f.events = append(f.events, &WildEvent{
			Phase:    t.phase,
			Card:     card,
			WildRank: card.Rank,
			PlayerID: p.ID,
		})
		t.logMessage(p.ID, "{} was dealt the %s; %ss are now wild", card, card.RankName())
	}

	if card.Rank == deck.Queen {
		f.queenPending = true
	}
}

// postBringIn finds the lowest visible card, collects the forced bring-in
// from its holder, and opens third-street action on that player
func (f *FollowTheQueen) postBringIn(t *Table) error {
	bringInIndex := -1
	var lowest *deck.Card

	for i, p := range t.players {
		up := p.cards.(*StudStyle).Up.FirstCard()
		if up == nil {
			continue
		}

		if lowest == nil || up.Rank < lowest.Rank ||
			(up.Rank == lowest.Rank && up.SuitOrder() < lowest.SuitOrder()) {
			lowest = up
			bringInIndex = i
		}
	}

	if bringInIndex < 0 {
		return StructuralError("no up cards were dealt")
	}

	p := t.players[bringInIndex]
	paid := t.addToPot(p, t.options.BringIn)
	if paid > t.currentBet {
		t.currentBet = paid
	}

	t.logMessage(p.ID, "{} posts the bring-in of %d with the %s showing", paid, lowest)

	t.roundComplete = false
	t.currentIndex = bringInIndex
	t.skipUnableToAct()
	t.lastRaiserIndex = t.currentIndex

	if len(t.playersToAct()) <= 1 {
		t.roundComplete = true
	}

	return nil
}
