package account

import (
	"context"
	"database/sql"
	"encoding/json"
	"followthequeen-server/pkg/db"
	"time"

	"github.com/sirupsen/logrus"
)

// Hand is a record in the `hands` table. One row is written per hand dealt,
// and the showdown results are attached when the hand ends.
type Hand struct {
	ID       int64
	RoomUUID string
	Variant  string
	Seed     int64
	data     interface{}
	Created  time.Time
	Ended    time.Time
}

const handColumns = `id, room_uuid, variant, seed, data, created, ended`

// HandByID returns a hand by its ID
func HandByID(ctx context.Context, id int64) (*Hand, error) {
	const query = `
SELECT ` + handColumns + `
FROM hands
WHERE id = $1`
	row := db.Instance().QueryRowContext(ctx, query, id)
	return handByRow(row)
}

func handByRow(row *sql.Row) (*Hand, error) {
	var h Hand
	var data []byte
	var ended sql.NullTime

	if err := row.Scan(&h.ID, &h.RoomUUID, &h.Variant, &h.Seed, &data, &h.Created, &ended); err != nil {
		return nil, err
	}

	if data != nil {
		if err := json.Unmarshal(data, &h.data); err != nil {
			return nil, err
		}
	}

	h.Ended = ended.Time

	return &h, nil
}

// EndHand records the showdown results and settles each member's ledger
// balance in a single transaction
func (h *Hand) EndHand(ctx context.Context, data interface{}, balanceAdjustments map[int64]int) error {
	room, err := GetRoomByUUID(ctx, h.RoomUUID)
	if err != nil {
		return err
	}

	members, err := room.GetMembers(ctx)
	if err != nil {
		return err
	}

	tx, err := db.Instance().BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	commit := false
	defer func() {
		if !commit {
			if err := tx.Rollback(); err != nil {
				logrus.WithError(err).Error("could not rollback transaction")
			}

			return
		}

		if err := tx.Commit(); err != nil {
			logrus.WithError(err).Error("could not commit transaction")
		}
	}()

	h.data = data
	const query = `
UPDATE hands
SET data = $1, ended = NOW() AT TIME ZONE 'UTC'
WHERE id = $2
RETURNING ended`

	b, err := json.Marshal(data)
	if err != nil {
		return err
	}

	row := tx.QueryRowContext(ctx, query, b, h.ID)
	var ended time.Time
	if err := row.Scan(&ended); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, "SELECT adjust_balance($1, $2, $3, $4, $5)")
	if err != nil {
		return err
	}

	for _, member := range members {
		change, found := balanceAdjustments[member.PlayerID]
		if !found {
			continue
		}

		_, err := stmt.ExecContext(ctx, member.ID, member.Balance, change, h.ID, "hand ended")
		if err != nil {
			return err
		}
	}

	commit = true
	h.Ended = ended
	return nil
}
