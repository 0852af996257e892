package game

import (
	"fmt"

	"followthequeen-server/pkg/deck"

	"github.com/sirupsen/logrus"
)

// Table drives a single game of poker through its variant's phase sequence.
// A Table owns its players and all of its state; nothing is shared across
// tables and callers are expected to serialize access (see pkg/room).
type Table struct {
	logger  logrus.FieldLogger
	variant Variant
	options Options

	deck       *deck.Deck
	phase      Phase
	pot        int
	currentBet int
	players    []*Player

	dealerIndex     int
	currentIndex    int
	lastRaiserIndex int
	roundComplete   bool

	// locked prevents seat joins while a hand is in progress
	locked  bool
	aborted bool

	// bankroll is pot + the sum of all chips at the start of the hand; it
	// must stay constant outside of payout
	bankroll int

	pendingLogs []*LogMessage
}

// NewTable returns a table for a variant. The table starts unlocked with no
// seated players.
func NewTable(logger logrus.FieldLogger, variant Variant, options Options) (*Table, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	if variant == nil {
		return nil, fmt.Errorf("a variant must be specified")
	}

	return &Table{
		logger:          logger,
		variant:         variant,
		options:         options,
		phase:           variant.Phases()[0],
		dealerIndex:     -1,
		lastRaiserIndex: -1,
	}, nil
}

// AddPlayer seats a new player and returns their seat index.
// The join is rejected without mutation if the table is full, locked, or the
// player is already seated.
func (t *Table) AddPlayer(id int64, name string) (int, error) {
	if t.locked {
		return 0, ErrTableLocked
	}

	if len(t.players) >= maxPlayers {
		return 0, ErrTableFull
	}

	for _, p := range t.players {
		if p.ID == id {
			return 0, ErrAlreadySeated
		}
	}

	seat := len(t.players)
	t.players = append(t.players, newPlayer(id, name, t.options.StartingChips))
	t.logMessage(id, "{} sat down at seat %d", seat)

	return seat, nil
}

// NewHand starts a new hand: busted players leave the table, the dealer
// button moves, the deck is reshuffled, and the variant posts forced bets and
// deals the opening cards.
func (t *Table) NewHand() error {
	d := deck.New()
	d.Shuffle(0)

	return t.newHand(d)
}

// newHand lets tests supply a stacked deck
func (t *Table) newHand(d *deck.Deck) error {
	remaining := make([]*Player, 0, len(t.players))
	for _, p := range t.players {
		if p.Chips > 0 {
			remaining = append(remaining, p)
		} else {
			t.logMessage(p.ID, "{} busted and left the table")
		}
	}
	t.players = remaining

	if len(t.players) < 2 {
		return ErrNotEnoughPlayers
	}

	t.deck = d

	t.pot = 0
	t.currentBet = 0
	t.phase = t.variant.Phases()[0]
	t.lastRaiserIndex = -1
	t.roundComplete = false
	t.aborted = false
	t.locked = true

	for _, p := range t.players {
		p.resetForNewHand()
	}

	t.dealerIndex = (t.dealerIndex + 1) % len(t.players)

	if err := t.variant.StartHand(t); err != nil {
		return err
	}

	t.bankroll = t.pot
	for _, p := range t.players {
		t.bankroll += p.Chips
	}

	t.logMessage(0, "New hand of %s (ante: %d)", t.variant.Name(), t.options.Ante)
	return t.verifyIntegrity()
}

// AdvancePhase moves the game into the next phase once the current betting
// round is settled. It returns true if the table reached the showdown.
func (t *Table) AdvancePhase() (bool, error) {
	if t.aborted {
		return false, errHandAborted
	}

	if !t.roundComplete {
		return false, InvalidActionError("the betting round is still open")
	}

	if t.phase == PhaseShowdown {
		return true, nil
	}

	t.currentBet = 0
	for _, p := range t.players {
		p.CurrentBet = 0
	}

	phases := t.variant.Phases()
	next := -1
	for i, ph := range phases {
		if ph == t.phase {
			next = i + 1
			break
		}
	}

	if next < 0 || next >= len(phases) {
		t.phase = PhaseShowdown
	} else {
		t.phase = phases[next]
	}

	if t.phase == PhaseShowdown {
		if err := t.variant.EvaluateHands(t); err != nil {
			return false, err
		}

		return true, nil
	}

	if err := t.variant.DealPhase(t); err != nil {
		return false, err
	}

	t.startBettingRound()
	return false, t.verifyIntegrity()
}

// startBettingRound opens the street: the first seat left of the dealer who
// can act leads, and is treated as the raiser so a check-around terminates
// when the turn comes back to them.
func (t *Table) startBettingRound() {
	t.roundComplete = false
	t.currentIndex = (t.dealerIndex + 1) % len(t.players)
	t.skipUnableToAct()
	t.lastRaiserIndex = t.currentIndex

	if len(t.playersToAct()) <= 1 {
		// no betting is possible; run the street out
		t.roundComplete = true
	}
}

// Phase returns the current phase
func (t *Table) Phase() Phase {
	return t.phase
}

// Pot returns the current pot
func (t *Table) Pot() int {
	return t.pot
}

// CurrentBet returns the table's active bet for the street
func (t *Table) CurrentBet() int {
	return t.currentBet
}

// Players returns the seated players in seat order
func (t *Table) Players() []*Player {
	return t.players
}

// Options returns the table options
func (t *Table) Options() Options {
	return t.options
}

// DealerID returns the ID of the player on the button
func (t *Table) DealerID() int64 {
	if t.dealerIndex < 0 || t.dealerIndex >= len(t.players) {
		return 0
	}

	return t.players[t.dealerIndex].ID
}

// CurrentTurn returns the player to act, or nil if no one can act
func (t *Table) CurrentTurn() *Player {
	if t.phase == PhaseShowdown || t.roundComplete || len(t.players) == 0 {
		return nil
	}

	p := t.players[t.currentIndex]
	if !p.canAct() {
		return nil
	}

	return p
}

// IsRoundComplete returns true once the current betting round is settled
func (t *Table) IsRoundComplete() bool {
	return t.roundComplete
}

// IsLocked returns true while a hand is in progress
func (t *Table) IsLocked() bool {
	return t.locked
}

// getPlayer returns the player with the given ID, or nil
func (t *Table) getPlayer(id int64) *Player {
	for _, p := range t.players {
		if p.ID == id {
			return p
		}
	}

	return nil
}

// activePlayers returns the players still in the hand
func (t *Table) activePlayers() []*Player {
	active := make([]*Player, 0, len(t.players))
	for _, p := range t.players {
		if !p.Folded {
			active = append(active, p)
		}
	}

	return active
}

// playersToAct returns the players who can still make a decision
func (t *Table) playersToAct() []*Player {
	toAct := make([]*Player, 0, len(t.players))
	for _, p := range t.players {
		if p.canAct() {
			toAct = append(toAct, p)
		}
	}

	return toAct
}

// skipUnableToAct moves the turn forward past folded and all-in players
func (t *Table) skipUnableToAct() {
	for attempts := 0; attempts < len(t.players); attempts++ {
		if t.players[t.currentIndex].canAct() {
			return
		}

		t.currentIndex = (t.currentIndex + 1) % len(t.players)
	}
}

// addToPot moves up to amount chips from the player into the pot, marking the
// player all-in when their stack empties. Returns the amount actually moved.
func (t *Table) addToPot(p *Player, amount int) int {
	if amount > p.Chips {
		amount = p.Chips
	}

	p.Chips -= amount
	p.CurrentBet += amount
	t.pot += amount

	if p.Chips == 0 {
		p.AllIn = true
	}

	return amount
}

// verifyIntegrity checks the table's structural invariants. A violation is
// fatal: the hand is aborted and a StructuralError returned.
func (t *Table) verifyIntegrity() error {
	total := t.pot
	for _, p := range t.players {
		if p.Chips < 0 {
			t.abortHand()
			return StructuralError(fmt.Sprintf("player %d has negative chips (%d)", p.ID, p.Chips))
		}

		total += p.Chips
	}

	if total != t.bankroll {
		t.abortHand()
		return StructuralError(fmt.Sprintf("pot and chips total %d, expected %d", total, t.bankroll))
	}

	return nil
}

func (t *Table) abortHand() {
	t.aborted = true
	t.locked = false
	t.logMessage(0, "The hand was aborted after an integrity failure")

	if t.logger != nil {
		t.logger.WithFields(logrus.Fields{
			"phase": t.phase,
			"pot":   t.pot,
		}).Error("hand aborted")
	}
}

// Seed returns the seed used to shuffle the current hand's deck
func (t *Table) Seed() int64 {
	if t.deck == nil {
		return 0
	}

	return t.deck.GetSeed()
}
