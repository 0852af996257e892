package room

import (
	"followthequeen-server/internal/config"
	"followthequeen-server/pkg/room/gamefactory"
	"time"
)

const defaultSecondsUntilStart = time.Second * 10

type pendingGame struct {
	Name     string    `json:"name"`
	Ante     int       `json:"ante"`
	Start    time.Time `json:"start"`
	PlayerID int64     `json:"playerId"`
	client   *Client
	message  *PayloadIn
	timer    *time.Timer
}

func newPendingGame(c *Client, msg *PayloadIn) (*pendingGame, error) {
	factory, err := gamefactory.Get(msg.Subject)
	if err != nil {
		return nil, err
	}

	name, ante, err := factory.Details(msg.AdditionalData)
	if err != nil {
		return nil, err
	}

	start := time.Now().Add(getSecondsUntilStart())
	timer := time.NewTimer(time.Until(start))

	return &pendingGame{
		client:   c,
		message:  msg,
		Name:     name,
		Ante:     ante,
		Start:    start,
		PlayerID: c.player.ID,
		timer:    timer,
	}, nil
}

func getSecondsUntilStart() time.Duration {
	if delay := config.Instance().StartHandDelay; delay > 0 {
		return time.Second * time.Duration(delay)
	}

	return defaultSecondsUntilStart
}
