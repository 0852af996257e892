package util

import (
	"fmt"
	"math/rand"
	"time"
)

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

var adjectives = []string{
	"Lucky", "Bold", "Patient", "Reckless", "Crafty", "Steady", "Bluffing", "Daring", "Quiet", "Loose",
	"Tight", "Wild", "Cool", "Sharp", "Slick", "Brave", "Cagey", "Grinning", "Stoic", "Restless",
	"Sly", "Fearless", "Cunning", "Swift", "Shrewd", "Gutsy", "Chipper", "Stubborn", "Breezy", "Frosty",
}

var nouns = []string{
	"Ace", "Deuce", "Trey", "Jack", "Queen", "King", "Joker", "Dealer", "Shark", "Fish",
	"Whale", "Rock", "Maniac", "Railbird", "Grinder", "Hustler", "Gambler", "Kicker", "Blind", "Button",
	"Wheel", "Boat", "Flush", "Straight", "Gutshot", "Cowboy", "Rounder", "Stack", "Maverick", "Nit",
}

// GetRandomName returns a random name by combining an adjective with a
// poker noun
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	nounsIndex := random.Intn(len(nouns))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], nouns[nounsIndex])
}
