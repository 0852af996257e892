package game

import (
	"fmt"
)

// ActionType is a betting action a player may take on their turn
type ActionType string

// the betting actions
const (
	ActionFold  ActionType = "fold"
	ActionCheck ActionType = "check"
	ActionCall  ActionType = "call"
	ActionRaise ActionType = "raise"
	ActionAllIn ActionType = "all-in"
)

// ActionFromString parses a client-supplied action name
func ActionFromString(s string) (ActionType, error) {
	switch ActionType(s) {
	case ActionFold, ActionCheck, ActionCall, ActionRaise, ActionAllIn:
		return ActionType(s), nil
	}

	return "", fmt.Errorf("unknown action: %s", s)
}

// ApplyAction executes a betting action for the player. Amount is only
// meaningful for raises, where it is the total street bet the player is
// raising to. The action is rejected without mutation if it is not the
// player's turn or the action is illegal in the current state.
func (t *Table) ApplyAction(playerID int64, action ActionType, amount int) error {
	if t.aborted {
		return errHandAborted
	}

	if t.phase == PhaseShowdown {
		return InvalidActionError("the hand is over")
	}

	if t.roundComplete {
		return errRoundOver
	}

	p := t.getPlayer(playerID)
	if p == nil {
		return InvalidActionError("player is not at the table")
	}

	if t.players[t.currentIndex] != p {
		return errNotPlayersTurn
	}

	if !p.canAct() {
		return InvalidActionError("player cannot act")
	}

	switch action {
	case ActionFold:
		p.Folded = true
		t.logMessage(p.ID, "{} folded")
	case ActionCheck:
		if p.CurrentBet != t.currentBet {
			return InvalidActionError("cannot check when facing a bet")
		}

		t.logMessage(p.ID, "{} checked")
	case ActionCall:
		owed := t.currentBet - p.CurrentBet
		if owed <= 0 {
			return InvalidActionError("there is no bet to call")
		}

		paid := t.addToPot(p, owed)
		if p.AllIn {
			t.logMessage(p.ID, "{} called %d and is all-in", paid)
		} else {
			t.logMessage(p.ID, "{} called %d", paid)
		}
	case ActionRaise:
		if amount <= 0 {
			return InvalidActionError("raise amount must be positive")
		}

		if amount < t.currentBet*2 && amount != p.Chips+p.CurrentBet {
			return InvalidActionError("raise must be at least double the current bet")
		}

		if amount-p.CurrentBet > p.Chips {
			return InvalidActionError("raise exceeds the player's chips")
		}

		t.addToPot(p, amount-p.CurrentBet)
		if p.CurrentBet > t.currentBet {
			t.currentBet = p.CurrentBet
			t.lastRaiserIndex = t.currentIndex
		}

		if p.AllIn {
			t.logMessage(p.ID, "{} raised to %d and is all-in", p.CurrentBet)
		} else {
			t.logMessage(p.ID, "{} raised to %d", p.CurrentBet)
		}
	case ActionAllIn:
		t.addToPot(p, p.Chips)
		if p.CurrentBet > t.currentBet {
			t.currentBet = p.CurrentBet
			t.lastRaiserIndex = t.currentIndex
		}

		t.logMessage(p.ID, "{} went all-in for %d", p.CurrentBet)
	default:
		return InvalidActionError(fmt.Sprintf("unknown action: %s", action))
	}

	reachedRaiser := t.advanceTurn()
	t.checkRoundComplete(reachedRaiser)

	return t.verifyIntegrity()
}

// advanceTurn moves the turn to the next player who can act. It returns true
// if the turn landed on or passed over the last raiser, which covers a raiser
// who is all-in or folded and can no longer be landed on directly.
func (t *Table) advanceTurn() bool {
	reached := false
	for i := 0; i < len(t.players); i++ {
		t.currentIndex = (t.currentIndex + 1) % len(t.players)
		if t.currentIndex == t.lastRaiserIndex {
			reached = true
		}

		if t.players[t.currentIndex].canAct() {
			break
		}
	}

	return reached
}

// checkRoundComplete settles the betting round when no further decisions are
// possible, and ends the hand outright when only one player remains.
func (t *Table) checkRoundComplete(reachedRaiser bool) {
	if len(t.activePlayers()) == 1 {
		// everyone else folded; jump straight to the showdown so the
		// survivor can collect
		t.roundComplete = true
		t.phase = PhaseShowdown
		return
	}

	if len(t.playersToAct()) == 0 {
		t.roundComplete = true
		return
	}

	for _, p := range t.activePlayers() {
		if !p.AllIn && p.CurrentBet != t.currentBet {
			return
		}
	}

	if t.lastRaiserIndex >= 0 && reachedRaiser {
		t.roundComplete = true
	}
}
