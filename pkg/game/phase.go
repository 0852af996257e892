package game

// Phase is a single stage in a variant's ordered phase sequence.
// Every variant's sequence ends in PhaseShowdown.
type Phase string

// phases shared by every variant
const (
	PhaseShowdown Phase = "showdown"
)

// hold'em phases
const (
	PhasePreFlop Phase = "pre-flop"
	PhaseFlop    Phase = "flop"
	PhaseTurn    Phase = "turn"
	PhaseRiver   Phase = "river"
)

// seven-card stud phases
const (
	PhaseThirdStreet   Phase = "third-street"
	PhaseFourthStreet  Phase = "fourth-street"
	PhaseFifthStreet   Phase = "fifth-street"
	PhaseSixthStreet   Phase = "sixth-street"
	PhaseSeventhStreet Phase = "seventh-street"
)
