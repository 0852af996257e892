package account

import (
	"context"
	"followthequeen-server/pkg/db"
	"time"
)

const roomMemberColumns = `
room_members.id,
room_members.player_id,
room_members.room_uuid,
room_members.is_room_admin,
room_members.can_start,
room_members.can_terminate,
room_members.balance,
room_members.active,
room_members.created,
room_members.updated`

// RoomMember represents a row in the room_members table
type RoomMember struct {
	Player       *Player   `json:"player"`
	PlayerID     int64     `json:"playerId"`
	RoomUUID     string    `json:"roomUuid"`
	ID           int64     `json:"id"`
	IsRoomAdmin  bool      `json:"isRoomAdmin"`
	CanStart     bool      `json:"canStart"`
	CanTerminate bool      `json:"canTerminate"`
	Balance      int       `json:"balance"`
	Active       bool      `json:"active"`
	Created      time.Time `json:"created"`
	Updated      time.Time `json:"updated"`
}

func getRoomMemberByRow(row db.Scanner) (*RoomMember, error) {
	var p Player
	var rm RoomMember

	if err := row.Scan(&p.ID, &p.Email, &p.DisplayName, &p.IsSiteAdmin, &p.Verified, &p.passwordHash, &p.Created, &p.Updated,
		&rm.ID, &rm.PlayerID, &rm.RoomUUID, &rm.IsRoomAdmin, &rm.CanStart, &rm.CanTerminate,
		&rm.Balance, &rm.Active, &rm.Created, &rm.Updated); err != nil {
		return nil, err
	}

	rm.Player = &p

	return &rm, nil
}

// AdjustBalance will adjust the member's balance in the room ledger
func (rm *RoomMember) AdjustBalance(ctx context.Context, byAmount int, reason string, hand *Hand) error {
	const query = `SELECT adjust_balance($1, $2, $3, $4, $5)`
	var handID *int64
	if hand != nil {
		handID = &hand.ID
	}

	_, err := db.Instance().ExecContext(ctx, query, rm.ID, rm.Balance, byAmount, handID, reason)
	if err != nil {
		return err
	}

	rm.Balance += byAmount

	return nil
}

// SetActive sets the active state for the room member in the database
func (rm *RoomMember) SetActive(ctx context.Context, active bool) error {
	const query = `
UPDATE room_members
SET active = $1, updated = (NOW() AT TIME ZONE 'UTC')
WHERE id = $2`
	execContext, err := db.Instance().ExecContext(ctx, query, active, rm.ID)
	if err != nil {
		return err
	}

	if ra, _ := execContext.RowsAffected(); ra > 0 {
		rm.Active = active
	}

	return nil
}

// Save will save non-balance values
func (rm *RoomMember) Save(ctx context.Context) error {
	const query = `
UPDATE room_members
SET is_room_admin = $1, can_start = $2, can_terminate = $3, updated = (NOW() AT TIME ZONE 'utc')
WHERE id = $4`

	_, err := db.Instance().ExecContext(ctx, query, rm.IsRoomAdmin, rm.CanStart, rm.CanTerminate, rm.ID)
	return err
}
