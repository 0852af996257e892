package account

import (
	"context"
	"database/sql"
	"fmt"
	"followthequeen-server/internal/util"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var cbg = context.Background()

func player() *Player {
	p, err := CreatePlayer(cbg, util.RandomEmail(), "test-player", "password", "127.0.0.1:1000")
	if err != nil {
		panic(err)
	}

	if err := p.setVerified(); err != nil {
		panic(err)
	}

	return p
}

func (p *Player) setVerified() error {
	p.Verified = true
	return p.Save(cbg)
}

func TestCreatePlayer(t *testing.T) {
	remoteAddr := fmt.Sprintf("127.0.0.1:%d", time.Now().UnixNano())

	at, err := LastPlayerCreatedAt(cbg, remoteAddr)
	assert.NoError(t, err)
	assert.True(t, at.IsZero())

	before := time.Now()

	email := util.RandomEmail()
	player, err := CreatePlayer(cbg, email, "test-player", "password", remoteAddr)
	assert.NoError(t, err)
	assert.NotNil(t, player)
	assert.Greater(t, player.ID, int64(0))
	assert.NoError(t, player.setVerified())

	at, err = LastPlayerCreatedAt(cbg, remoteAddr)
	assert.NoError(t, err)
	assert.True(t, at.After(before))

	player2, err := CreatePlayer(cbg, email, "test-player", "password", remoteAddr)
	assert.Equal(t, err, ErrDuplicateKey)
	assert.Nil(t, player2)

	player2, err = GetPlayerByEmailAndPassword(cbg, email, "bad-password")
	assert.Equal(t, ErrInvalidEmailOrPassword, err)
	assert.Nil(t, player2)

	player2, err = GetPlayerByEmailAndPassword(cbg, email+"-not-found", "password")
	assert.Equal(t, ErrInvalidEmailOrPassword, err)
	assert.Nil(t, player2)

	player2, err = GetPlayerByEmailAndPassword(cbg, email, "password")
	assert.NoError(t, err)
	assert.NotNil(t, player2)

	// test case-insensitive email
	player2, err = GetPlayerByEmailAndPassword(cbg, strings.ToUpper(email), "password")
	assert.NoError(t, err)
	assert.NotNil(t, player2)

	// ensure you can't create a duplicate player with a case-insensitive email
	_, err = CreatePlayer(cbg, strings.ToUpper(email), "Display", "password", "[::1]")
	assert.Equal(t, ErrDuplicateKey, err)
}

func TestGetPlayerByID(t *testing.T) {
	p := player()
	player, err := GetPlayerByID(cbg, p.ID)
	assert.NoError(t, err)
	assert.Equal(t, p.ID, player.ID)

	player, err = GetPlayerByID(cbg, 0)
	assert.Equal(t, sql.ErrNoRows, err)
	assert.Nil(t, player)
}

func TestGetPlayerByEmailAndPassword_unverified(t *testing.T) {
	email := util.RandomEmail()
	_, err := CreatePlayer(cbg, email, "test-player", "password", "127.0.0.1:1000")
	assert.NoError(t, err)

	_, err = GetPlayerByEmailAndPassword(cbg, email, "password")
	assert.Equal(t, ErrAccountNotVerified, err)
}

func TestPlayer_CreateRoom(t *testing.T) {
	player := player()
	room, err := player.CreateRoom(cbg, "my room", "follow-the-queen")
	assert.NoError(t, err)
	assert.NotNil(t, room)
	assert.NotEmpty(t, room.UUID)
	assert.Equal(t, "follow-the-queen", room.Variant)

	// non-admins are rate limited
	room2, err := player.CreateRoom(cbg, "my room", "holdem")
	assert.IsType(t, UserError(""), err)
	assert.Nil(t, room2)

	assert.NoError(t, player.SetIsSiteAdmin(cbg, true))
	room2, err = player.CreateRoom(cbg, "my room", "holdem")
	assert.NoError(t, err)
	assert.NotEqual(t, room2.UUID, room.UUID)
}

func TestPlayer_Join(t *testing.T) {
	p1 := player()
	room, _ := p1.CreateRoom(cbg, "my room", "holdem")

	before := time.Now()
	p2 := player()
	member, err := p2.Join(cbg, room)
	assert.NoError(t, err)
	assert.NotNil(t, member)
	assert.Greater(t, member.ID, int64(0))
	assert.True(t, member.Created.After(before))

	member, err = p2.Join(cbg, room)
	assert.Equal(t, ErrDuplicateKey, err)
	assert.Nil(t, member)
}

func TestPlayer_SetIsSiteAdmin(t *testing.T) {
	p := player()
	assert.False(t, p.IsSiteAdmin)
	assert.NoError(t, p.SetIsSiteAdmin(cbg, true))
	assert.True(t, p.IsSiteAdmin)
	assert.True(t, p.Updated.After(p.Created))

	// no-op when the value is unchanged
	updated := p.Updated
	assert.NoError(t, p.SetIsSiteAdmin(cbg, true))
	assert.Equal(t, updated, p.Updated)
}

func TestPlayer_passwordReset(t *testing.T) {
	p := player()

	resetToken, err := p.CreatePasswordResetRequest(cbg)
	assert.NoError(t, err)
	assert.Equal(t, 20, len(resetToken))

	assert.NoError(t, IsPasswordResetTokenValid(cbg, resetToken))
	assert.Equal(t, ErrTokenExpired, IsPasswordResetTokenValid(cbg, "no-such-token"))

	// a new request expires the old token
	resetToken2, err := p.CreatePasswordResetRequest(cbg)
	assert.NoError(t, err)
	assert.Equal(t, ErrTokenExpired, IsPasswordResetTokenValid(cbg, resetToken))

	assert.NoError(t, p.ResetPassword(cbg, "new-password", resetToken2))

	_, err = GetPlayerByEmailAndPassword(cbg, p.Email, "new-password")
	assert.NoError(t, err)
}
