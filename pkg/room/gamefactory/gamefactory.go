package gamefactory

import (
	"fmt"

	"followthequeen-server/pkg/game"

	"github.com/sirupsen/logrus"
)

var factories = map[string]GameFactory{
	"holdem":           holdemFactory{},
	"follow-the-queen": followTheQueenFactory{},
}

// AdditionalData is the untyped options payload from the client
type AdditionalData interface {
	GetString(key string) (string, bool)
	GetInt(key string) (int, bool)
	GetBool(key string) (bool, bool)
}

// GameFactory builds a game table for one of the supported variants
type GameFactory interface {
	// CreateTable returns a fresh table configured from the client's
	// additional data. Players are seated by the caller.
	CreateTable(logger logrus.FieldLogger, additionalData AdditionalData) (*game.Table, error)

	// Details returns the display name and ante without building a table
	Details(additionalData AdditionalData) (name string, ante int, err error)
}

// Get returns a factory by the given name
func Get(name string) (GameFactory, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("no factory with name: %s", name)
	}

	return factory, nil
}

func optionsFromData(additionalData AdditionalData) game.Options {
	opts := game.DefaultOptions()

	if chips, ok := additionalData.GetInt("startingChips"); ok && chips > 0 {
		opts.StartingChips = chips
	}

	if ante, ok := additionalData.GetInt("ante"); ok && ante > 0 {
		opts.Ante = ante
	}

	if hiLo, ok := additionalData.GetBool("hiLo"); ok {
		opts.HiLo = hiLo
	}

	return opts
}
