package game

import (
	"fmt"
	"time"

	"followthequeen-server/pkg/deck"

	"github.com/google/uuid"
)

// LogMessage is a game event intended for the table log.
// If PlayerIDs is empty, the message is a general statement; otherwise the
// message is rendered as "{player} did X"
type LogMessage struct {
	UUID      string       `json:"uuid"`
	PlayerIDs []int64      `json:"playerIds"`
	Cards     []*deck.Card `json:"cards"`
	Message   string       `json:"message"`
	Time      time.Time    `json:"time"`
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(playerID int64, format string, a ...interface{}) *LogMessage {
	var playerIDs []int64
	if playerID > 0 {
		playerIDs = []int64{playerID}
	}

	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

func (t *Table) logMessage(playerID int64, format string, a ...interface{}) {
	t.pendingLogs = append(t.pendingLogs, SimpleLogMessage(playerID, format, a...))
}

// FlushLogs returns the pending log messages and clears the buffer
func (t *Table) FlushLogs() []*LogMessage {
	logs := t.pendingLogs
	t.pendingLogs = nil

	return logs
}
