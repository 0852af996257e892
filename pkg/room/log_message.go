package room

import (
	"followthequeen-server/pkg/game"
)

const logMessageLimit = 25

// addLogMessages buffers the most recent game log messages
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages []*game.LogMessage) {
	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}
