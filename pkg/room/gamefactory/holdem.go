package gamefactory

import (
	"fmt"

	"followthequeen-server/pkg/game"

	"github.com/sirupsen/logrus"
)

type holdemFactory struct{}

func (h holdemFactory) CreateTable(logger logrus.FieldLogger, additionalData AdditionalData) (*game.Table, error) {
	return game.NewTable(logger, game.NewHoldem(), optionsFromData(additionalData))
}

func (h holdemFactory) Details(additionalData AdditionalData) (string, int, error) {
	opts := optionsFromData(additionalData)

	name := "Hold'em"
	if opts.HiLo {
		name = "Hold'em Hi-Lo"
	}

	return fmt.Sprintf("%s (ante: %d)", name, opts.Ante), opts.Ante, nil
}
