package game

import (
	"followthequeen-server/pkg/deck"
	"followthequeen-server/pkg/poker"
)

// Player is a seated player. Players are exclusively owned by the Table and
// are only mutated by action application and payout. A player persists across
// hands (chips carry over) and is removed when their chips reach zero at the
// start of the next hand.
type Player struct {
	ID         int64
	Name       string
	Chips      int
	CurrentBet int
	Folded     bool
	AllIn      bool

	// Revealed is set when a stud player chooses to show their down cards
	Revealed bool
	LastWin  int

	cards      PlayerCards
	handResult *poker.HandResult
	lowResult  *poker.LowResult
}

func newPlayer(id int64, name string, chips int) *Player {
	return &Player{
		ID:    id,
		Name:  name,
		Chips: chips,
	}
}

// resetForNewHand clears all per-hand state. Chips carry over.
func (p *Player) resetForNewHand() {
	p.CurrentBet = 0
	p.Folded = false
	p.AllIn = false
	p.Revealed = false
	p.LastWin = 0
	p.cards = nil
	p.handResult = nil
	p.lowResult = nil
}

// canAct returns true if the player may check, call, bet, raise, or fold
func (p *Player) canAct() bool {
	return !p.Folded && !p.AllIn
}

// HandResult returns the player's showdown result, if evaluated
func (p *Player) HandResult() *poker.HandResult {
	return p.handResult
}

// LowResult returns the player's low showdown result, if evaluated
func (p *Player) LowResult() *poker.LowResult {
	return p.lowResult
}

// Cards returns the player's variant-specific cards
func (p *Player) Cards() PlayerCards {
	return p.cards
}

// PlayerCards is the variant-specific card layout for a player
type PlayerCards interface {
	isPlayerCards()
}

// CommunityStyle is the layout for community-card games: private hole cards
// combined with a shared board at ranking time
type CommunityStyle struct {
	Hole deck.Hand
}

func (c *CommunityStyle) isPlayerCards() {}

// StudStyle is the layout for stud games: face-down cards only the owner can
// see and face-up cards visible to the whole table
type StudStyle struct {
	Down deck.Hand
	Up   deck.Hand
}

func (s *StudStyle) isPlayerCards() {}

// All returns the player's full pool for ranking
func (s *StudStyle) All() deck.Hand {
	all := make(deck.Hand, 0, len(s.Down)+len(s.Up))
	all = append(all, s.Down...)
	all = append(all, s.Up...)

	return all
}
