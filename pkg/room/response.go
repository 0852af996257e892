package room

import (
	"followthequeen-server/pkg/account"
)

type clientStateMember struct {
	*account.RoomMember
	IsConnected bool `json:"isConnected"`
	IsSeated    bool `json:"isSeated"`
}

func newErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
