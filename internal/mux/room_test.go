package mux

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"followthequeen-server/pkg/account"

	"github.com/stretchr/testify/assert"
)

func Test_getRoom(t *testing.T) {
	setupJWT()
	ts := httptest.NewServer(newTestMux(""))
	defer ts.Close()

	p, j := player()

	// site admins bypass the room creation cool down
	assert.NoError(t, p.SetIsSiteAdmin(cbg, true))

	room1, _ := p.CreateRoom(cbg, "Room 1", "holdem")
	room2, _ := p.CreateRoom(cbg, "Room 2", "follow-the-queen")
	room3, _ := p.CreateRoom(cbg, "Room 3", "holdem")

	p2, j2 := player()
	_, _ = p2.Join(cbg, room2)

	var rooms []*account.WithBalance
	assertGet(t, ts, "/room", &rooms, 200, j)
	assert.Equal(t, 3, len(rooms))
	assert.Equal(t, room3.UUID, rooms[0].UUID)
	assert.Equal(t, room2.UUID, rooms[1].UUID)
	assert.Equal(t, room1.UUID, rooms[2].UUID)

	assertGet(t, ts, "/room?start=1&rows=1", &rooms, 200, j)
	assert.Equal(t, 1, len(rooms))
	assert.Equal(t, room2.UUID, rooms[0].UUID)

	assertGet(t, ts, "/room", &rooms, 200, j2)
	assert.Equal(t, 1, len(rooms))
	assert.Equal(t, room2.UUID, rooms[0].UUID)

	// bad pagination
	var err errorResponse
	assertGet(t, ts, "/room?start=-1", &err, 400, j2)
	assert.Equal(t, "start cannot be less than zero", err.Message)
}

func Test_postRoom(t *testing.T) {
	setupJWT()
	_, j := player()

	ts := httptest.NewServer(newTestMux(""))
	defer ts.Close()

	var rm *account.Room
	assertPost(t, ts, "/room", postRoomPayload{Name: "Test", Variant: "follow-the-queen"}, &rm, 201, j)
	assert.Equal(t, "Test", rm.Name)
	assert.Equal(t, "follow-the-queen", rm.Variant)
	assert.NotEmpty(t, rm.UUID)

	// require valid name
	var err errorResponse
	assertPost(t, ts, "/room", postRoomPayload{Name: "Te", Variant: "holdem"}, &err, 400, j)
	assert.Equal(t, "name must be 3-40 characters", err.Message)

	err = errorResponse{}
	assertPost(t, ts, "/room", postRoomPayload{Name: strings.Repeat("A", 41), Variant: "holdem"}, &err, 400, j)
	assert.Equal(t, "name must be 3-40 characters", err.Message)

	// require a known variant
	err = errorResponse{}
	assertPost(t, ts, "/room", postRoomPayload{Name: "Test", Variant: "omaha"}, &err, 400, j)
	assert.NotEmpty(t, err.Message)

	// non-admins must wait between room creations
	err = errorResponse{}
	assertPost(t, ts, "/room", postRoomPayload{Name: "Again", Variant: "holdem"}, &err, 400, j)
	assert.Equal(t, "you must wait before you create another room", err.Message)
}

func Test_postRoomUUIDSeat(t *testing.T) {
	setupJWT()
	ts := httptest.NewServer(newTestMux(""))
	defer ts.Close()

	p, j := player()
	rm, err := p.CreateRoom(cbg, "My Room", "follow-the-queen")
	assert.NoError(t, err)

	path := fmt.Sprintf("/room/%s/seat", rm.UUID)
	var errObj errorResponse
	assertPost(t, ts, path, nil, &errObj, 400, j)
	assert.Equal(t, "player is already in the room", errObj.Message)

	_, j2 := player()
	var member *account.RoomMember
	assertPost(t, ts, path, nil, &member, 201, j2)
	assert.Equal(t, 0, member.Balance)
	assert.True(t, member.Active)
}

func Test_getRoomUUID(t *testing.T) {
	setupJWT()
	ts := httptest.NewServer(newTestMux(""))
	defer ts.Close()

	p1, j := player()
	p2, _ := player()

	rm, err := p1.CreateRoom(cbg, "My Room", "holdem")
	assert.NoError(t, err)
	_, _ = p2.Join(cbg, rm)

	path := fmt.Sprintf("/room/%s", rm.UUID)
	var respObj getRoomUUIDResponse
	assertGet(t, ts, path, &respObj, 200, j)

	assert.Equal(t, rm.UUID, respObj.Room.UUID)
	assert.Equal(t, "holdem", respObj.Room.Variant)
	assert.Equal(t, 2, len(respObj.Members))
}
