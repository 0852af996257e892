package gamefactory

import (
	"fmt"

	"followthequeen-server/pkg/game"

	"github.com/sirupsen/logrus"
)

type followTheQueenFactory struct{}

func (f followTheQueenFactory) CreateTable(logger logrus.FieldLogger, additionalData AdditionalData) (*game.Table, error) {
	return game.NewTable(logger, game.NewFollowTheQueen(), f.options(additionalData))
}

func (f followTheQueenFactory) Details(additionalData AdditionalData) (string, int, error) {
	opts := f.options(additionalData)

	name := "Follow the Queen"
	if opts.HiLo {
		name = "Follow the Queen Hi-Lo"
	}

	return fmt.Sprintf("%s (ante: %d)", name, opts.Ante), opts.Ante, nil
}

func (f followTheQueenFactory) options(additionalData AdditionalData) game.Options {
	opts := optionsFromData(additionalData)

	if bringIn, ok := additionalData.GetInt("bringIn"); ok && bringIn > 0 {
		opts.BringIn = bringIn
	}

	if sevens, ok := additionalData.GetBool("twoNaturalSevensWin"); ok {
		opts.TwoNaturalSevensWin = sevens
	}

	return opts
}
