package room

import (
	"errors"

	"github.com/itaross/rikiki-be/pkg/protocol"
	"github.com/itaross/rikiki-be/pkg/rikiki"
	"github.com/sirupsen/logrus"
)

// user-facing messages that are not game rule violations
const (
	errNotInRoom      = "not in a room, send join_room first"
	errAlreadyInRoom  = "already in a room"
	errRoomNotFound   = "room not found"
	errInternalServer = "internal server error"
)

// closeSeatTakenOver is the close reason sent to a connection replaced by a newer one
const closeSeatTakenOver = "seat taken over by another connection"

// JoinedMessage is the data of a joined response
type JoinedMessage struct {
	RoomCode string `json:"room_code"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// newErrorResponse converts an error to a message for the originating client
// Only rule violations and payload problems are shown verbatim.
func newErrorResponse(log logrus.FieldLogger, err error) *protocol.Response {
	var ruleErr rikiki.Error
	switch {
	case errors.As(err, &ruleErr),
		errors.Is(err, protocol.ErrInvalidPayload),
		errors.Is(err, protocol.ErrUnknownAction),
		errors.Is(err, ErrTooManyRooms):
		return protocol.NewErrorResponse(err)
	}

	log.WithError(err).Error("could not perform action")
	return protocol.NewErrorMessageResponse(errInternalServer)
}

type delivery struct {
	client *Client
	msg    interface{}
}

// outbox collects messages inside the run loop so they can be sent after it
type outbox []delivery

func (o *outbox) add(client *Client, msg interface{}) {
	if client == nil {
		return
	}

	*o = append(*o, delivery{client: client, msg: msg})
}

func (o outbox) deliver() {
	for _, d := range o {
		d.client.Send(d.msg)
	}
}
