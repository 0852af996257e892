package bot

import (
	"followthequeen-server/internal/rng"
	"followthequeen-server/pkg/game"
)

// Bot is a computer-controlled player. Bots are seated alongside human
// players and use negative IDs so they never collide with account records.
type Bot struct {
	ID   int64
	Name string

	random rng.Generator
}

// New returns a new bot
func New(id int64, name string, random rng.Generator) *Bot {
	return &Bot{
		ID:     id,
		Name:   name,
		random: random,
	}
}

// Decide picks the bot's next action. The table must be on the bot's turn.
func (b *Bot) Decide(t *game.Table) (game.ActionType, int) {
	var player *game.Player
	for _, p := range t.Players() {
		if p.ID == b.ID {
			player = p
			break
		}
	}

	if player == nil {
		return game.ActionFold, 0
	}

	owed := t.CurrentBet() - player.CurrentBet
	if owed <= 0 {
		// one in five chance we open for twice the ante
		if bet := t.Options().Ante * 2; bet > 0 && bet <= player.Chips && b.random.Intn(5) == 0 {
			return game.ActionRaise, t.CurrentBet() + bet
		}

		return game.ActionCheck, 0
	}

	if owed >= player.Chips {
		// calling for the rest of our stack. flip a coin
		if b.random.Intn(2) == 0 {
			return game.ActionFold, 0
		}

		return game.ActionAllIn, 0
	}

	// fold more often when the price is steep relative to the pot
	potOdds := float64(owed) / float64(t.Pot()+owed)
	if potOdds > 0.5 && b.random.Intn(3) == 0 {
		return game.ActionFold, 0
	}

	if raise := t.CurrentBet() * 2; raise-player.CurrentBet <= player.Chips && b.random.Intn(8) == 0 {
		return game.ActionRaise, raise
	}

	return game.ActionCall, 0
}
