package game

import "errors"

const maxPlayers = 7

// Options configures a table
type Options struct {
	StartingChips int  `json:"startingChips"`
	Ante          int  `json:"ante"`
	BringIn       int  `json:"bringIn"`
	HiLo          bool `json:"hiLo"`

	// TwoNaturalSevensWin awards the whole pot at showdown to a player
	// holding two non-wild sevens
	TwoNaturalSevensWin bool `json:"twoNaturalSevensWin"`
}

// DefaultOptions returns the default table options
func DefaultOptions() Options {
	return Options{
		StartingChips: 1000,
		Ante:          5,
		BringIn:       10,
	}
}

// Validate will verify the options are valid. Nil is returned on success
func (o *Options) Validate() error {
	if o.StartingChips <= 0 {
		return errors.New("starting chips must be greater than zero")
	}

	if o.Ante <= 0 {
		return errors.New("ante must be greater than zero")
	}

	if o.Ante > o.StartingChips {
		return errors.New("ante cannot exceed the starting chips")
	}

	if o.BringIn < 0 {
		return errors.New("bring-in cannot be negative")
	}

	return nil
}
