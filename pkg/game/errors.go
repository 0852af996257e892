package game

import "errors"

// InvalidActionError is returned when a player attempts an action the rules
// do not allow. The action is rejected and the table state is unchanged.
type InvalidActionError string

func (e InvalidActionError) Error() string {
	return string(e)
}

// StructuralError is a fatal integrity failure (negative chips, pot and chip
// totals out of balance). The hand is aborted rather than allowed to continue
// since any subsequent payout would be provably wrong.
type StructuralError string

func (e StructuralError) Error() string {
	return string(e)
}

// errors returned on an illegal seat join; the table is not mutated
var (
	ErrTableFull        = errors.New("the table is full")
	ErrAlreadySeated    = errors.New("you are already seated at the table")
	ErrTableLocked      = errors.New("a hand is in progress; wait for the next hand")
	ErrNotEnoughPlayers = errors.New("you must have at least two players")
)

// errNotPlayersTurn is returned when a player acts out of turn
var errNotPlayersTurn = errors.New("it is not your turn")

// errHandAborted is returned after a structural invariant failure ended the hand
var errHandAborted = errors.New("the hand was aborted")

// errRoundOver is returned when an action arrives after the betting round ended
var errRoundOver = errors.New("betting round is over")
