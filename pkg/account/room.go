package account

import (
	"context"
	"database/sql"
	"errors"
	"followthequeen-server/pkg/db"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// roomCreationCoolDown is how long non-admins must wait before creating another room
const roomCreationCoolDown = time.Minute

const roomColumns = `
rooms.uuid,
rooms.name,
rooms.variant,
rooms.player_id,
rooms.created`

// Room is a record in the `rooms` table.
// A room has many members and plays many hands of its configured variant.
type Room struct {
	UUID    string `json:"uuid"`
	Name    string `json:"name"`
	Variant string `json:"variant"`
	// PlayerID is who created the room
	PlayerID int64     `json:"playerId"`
	Created  time.Time `json:"created"`
}

// ErrPlayerNotInRoom happens when user is not a member of the room
var ErrPlayerNotInRoom = errors.New("player is not a member of the room")

// CreateRoom creates a new room playing the named variant
func (p *Player) CreateRoom(ctx context.Context, name, variant string) (*Room, error) {
	if err := p.canCreateRoom(ctx); err != nil {
		return nil, err
	}

	tx, err := db.Instance().BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	u := uuid.New().String()
	const query = `
INSERT INTO rooms (uuid, name, variant, player_id)
VALUES ($1, $2, $3, $4)
RETURNING created
`
	var created time.Time
	row := tx.QueryRowContext(ctx, query, u, name, variant, p.ID)
	if err := row.Scan(&created); err != nil {
		rollback(tx)
		return nil, err
	}

	const query2 = `
INSERT INTO room_members (player_id, room_uuid, is_room_admin)
VALUES ($1, $2, true)`
	if _, err = tx.ExecContext(ctx, query2, p.ID, u); err != nil {
		rollback(tx)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &Room{
		UUID:     u,
		Name:     name,
		Variant:  variant,
		Created:  created,
		PlayerID: p.ID,
	}, nil
}

// canCreateRoom will see if the user is allowed to create a room
// returns nil if the user can create a room
func (p *Player) canCreateRoom(ctx context.Context) error {
	// site admins can always create a room
	if p.IsSiteAdmin {
		return nil
	}

	const query = `
SELECT COUNT(*)
FROM rooms
WHERE player_id = $1
  AND created >= $2 AT TIME ZONE 'UTC'`

	row := db.Instance().QueryRowContext(ctx, query, p.ID, time.Now().In(time.UTC).Add(roomCreationCoolDown*-1))
	var count int
	if err := row.Scan(&count); err != nil {
		return err
	}

	if count > 0 {
		return UserError("you must wait before you create another room")
	}

	return nil
}

func getRoomByRow(row db.Scanner, additionalColumns ...interface{}) (*Room, error) {
	var r Room
	columns := []interface{}{
		&r.UUID,
		&r.Name,
		&r.Variant,
		&r.PlayerID,
		&r.Created,
	}

	if len(additionalColumns) > 0 {
		columns = append(columns, additionalColumns...)
	}

	if err := row.Scan(columns...); err != nil {
		return nil, err
	}

	return &r, nil
}

// GetRoomByUUID returns a room by its UUID
func GetRoomByUUID(ctx context.Context, uuid string) (*Room, error) {
	const query = `
SELECT ` + roomColumns + `
FROM rooms
WHERE uuid = $1`

	row := db.Instance().QueryRowContext(ctx, query, uuid)
	return getRoomByRow(row)
}

// Reload will refresh the data from the database
func (r *Room) Reload(ctx context.Context) error {
	room, err := GetRoomByUUID(ctx, r.UUID)
	if err != nil {
		return err
	}

	*r = *room
	return nil
}

// GetActiveMembersShifted returns the active members with the seats rotated
// by the number of hands played, so the deal moves around the room between
// sessions
func (r *Room) GetActiveMembersShifted(ctx context.Context) ([]*RoomMember, error) {
	members, err := r.GetMembers(ctx)
	if err != nil {
		return nil, err
	}

	activeMembers := make([]*RoomMember, 0, len(members))
	for _, member := range members {
		if member.Active {
			activeMembers = append(activeMembers, member)
		}
	}

	if len(activeMembers) == 0 {
		return []*RoomMember{}, nil
	}

	count, err := r.GetHandsCount(ctx)
	if err != nil {
		return nil, err
	}

	offset := int(count % int64(len(activeMembers)))
	if offset == 0 {
		return activeMembers, nil
	}

	tail := activeMembers[offset:]
	head := activeMembers[:offset]
	return append(tail, head...), nil
}

// GetMembers returns all members of the room
func (r *Room) GetMembers(ctx context.Context) ([]*RoomMember, error) {
	const query = `
SELECT ` + playerColumns + `, ` + roomMemberColumns + `
FROM room_members
INNER JOIN players ON room_members.player_id = players.id
WHERE room_members.room_uuid = $1
ORDER BY room_members.id`

	rows, err := db.Instance().QueryContext(ctx, query, r.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*RoomMember, 0)
	for rows.Next() {
		m, err := getRoomMemberByRow(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, m)
	}

	return records, nil
}

// CreateHand will record a new hand for the room
func (r *Room) CreateHand(ctx context.Context, variant string, seed int64) (*Hand, error) {
	const query = `
INSERT INTO hands (room_uuid, variant, seed)
VALUES ($1, $2, $3)
RETURNING ` + handColumns

	row := db.Instance().QueryRowContext(ctx, query, r.UUID, variant, seed)
	return handByRow(row)
}

// GetHandsCount returns the number of hands played in the room
func (r *Room) GetHandsCount(ctx context.Context) (int64, error) {
	const query = `
SELECT COUNT(id)
FROM hands
WHERE room_uuid = $1`

	var count int64
	if err := db.Instance().QueryRowContext(ctx, query, r.UUID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		logrus.WithError(err).Error("could not rollback transaction")
	}
}

// RoomWithCreatorEmail extends Room to include the creating player's email
type RoomWithCreatorEmail struct {
	*Room
	Email string `json:"email"`
}

// GetRooms returns a page of all rooms, newest first
func GetRooms(ctx context.Context, offset int64, limit int) ([]*RoomWithCreatorEmail, error) {
	const query = `
SELECT ` + roomColumns + `, players.email
FROM rooms
INNER JOIN players ON rooms.player_id = players.id
ORDER BY rooms.created DESC
OFFSET $1 LIMIT $2`

	rows, err := db.Instance().QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*RoomWithCreatorEmail, 0)
	for rows.Next() {
		var email string
		room, err := getRoomByRow(rows, &email)
		if err != nil {
			return nil, err
		}

		records = append(records, &RoomWithCreatorEmail{Room: room, Email: email})
	}

	return records, nil
}
