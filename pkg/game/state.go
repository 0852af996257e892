package game

import (
	"followthequeen-server/pkg/deck"
)

// State is a point-in-time view of a table rendered for one viewer. Cards
// the viewer is not entitled to see are present as nil entries so clients
// can still draw face-down cards in place.
type State struct {
	Variant       string         `json:"variant"`
	Phase         Phase          `json:"phase"`
	Pot           int            `json:"pot"`
	CurrentBet    int            `json:"currentBet"`
	Ante          int            `json:"ante"`
	DealerID      int64          `json:"dealerId"`
	CurrentTurnID int64          `json:"currentTurnId"`
	Community     deck.Hand      `json:"community,omitempty"`
	WildRanks     []int          `json:"wildRanks,omitempty"`
	WildEvents    []*WildEvent   `json:"wildEvents,omitempty"`
	Players       []*PlayerState `json:"players"`
}

// PlayerState is one player's public view within a State
type PlayerState struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Chips      int    `json:"chips"`
	CurrentBet int    `json:"currentBet"`
	Folded     bool   `json:"folded"`
	AllIn      bool   `json:"allIn"`
	LastWin    int    `json:"lastWin"`

	// exactly one of Hole or Down/Up is set, depending on the variant
	Hole deck.Hand `json:"hole,omitempty"`
	Down deck.Hand `json:"down,omitempty"`
	Up   deck.Hand `json:"up,omitempty"`

	Hand    string `json:"hand,omitempty"`
	LowHand string `json:"lowHand,omitempty"`
}

// Snapshot renders the table for the given viewer. Pass zero for a
// spectator's view.
func (t *Table) Snapshot(viewerID int64) *State {
	s := &State{
		Variant:    t.variant.Name(),
		Phase:      t.phase,
		Pot:        t.pot,
		CurrentBet: t.currentBet,
		Ante:       t.options.Ante,
		DealerID:   t.DealerID(),
		Players:    make([]*PlayerState, len(t.players)),
	}

	if turn := t.CurrentTurn(); turn != nil {
		s.CurrentTurnID = turn.ID
	}

	if ch, ok := t.variant.(communityHolder); ok {
		s.Community = ch.Community()
	}

	if wh, ok := t.variant.(wildHolder); ok {
		s.WildRanks = wh.WildRanks().Ranks()
	}

	if fq, ok := t.variant.(*FollowTheQueen); ok {
		s.WildEvents = fq.WildEvents()
	}

	showdown := t.phase == PhaseShowdown
	for i, p := range t.players {
		ps := &PlayerState{
			ID:         p.ID,
			Name:       p.Name,
			Chips:      p.Chips,
			CurrentBet: p.CurrentBet,
			Folded:     p.Folded,
			AllIn:      p.AllIn,
			LastWin:    p.LastWin,
		}

		visible := p.ID == viewerID || p.Revealed || (showdown && !p.Folded)

		switch c := p.Cards().(type) {
		case *CommunityStyle:
			ps.Hole = maskHand(c.Hole, visible)
		case *StudStyle:
			ps.Down = maskHand(c.Down, visible)
			ps.Up = c.Up.Clone()
		}

		if showdown && (visible || p.ID == viewerID) {
			if hr := p.HandResult(); hr != nil {
				ps.Hand = hr.Name()
			}

			if lr := p.LowResult(); lr != nil && lr.Qualifies {
				ps.LowHand = lr.Name()
			}
		}

		s.Players[i] = ps
	}

	return s
}

// RevealCards lets a player show their hidden cards after the hand is over
func (t *Table) RevealCards(playerID int64) error {
	if t.phase != PhaseShowdown {
		return InvalidActionError("cards can only be revealed at the showdown")
	}

	p := t.getPlayer(playerID)
	if p == nil {
		return InvalidActionError("player is not at the table")
	}

	p.Revealed = true
	t.logMessage(p.ID, "{} showed their cards")

	return nil
}

// maskHand clones the hand, replacing every card with nil when the viewer
// may not see them
func maskHand(h deck.Hand, visible bool) deck.Hand {
	if visible {
		return h.Clone()
	}

	masked := make(deck.Hand, len(h))
	return masked
}
