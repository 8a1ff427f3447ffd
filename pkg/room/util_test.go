package room

import (
	"testing"

	"github.com/itaross/rikiki-be/internal/rng"
	"github.com/itaross/rikiki-be/pkg/archive"
	"github.com/itaross/rikiki-be/pkg/protocol"
	"github.com/stretchr/testify/require"
)

func newTestPitBoss(t *testing.T) (*PitBoss, *archive.Memory) {
	t.Helper()

	recorder := archive.NewMemory()
	p := NewPitBoss(DefaultOptions(), recorder)
	p.rng = &rng.Sequence{Values: []int{0, 1, 2, 3, 4}}
	t.Cleanup(p.EndShift)

	return p, recorder
}

// drain returns every message waiting for the client
func drain(c *Client) []*protocol.Response {
	msgs := make([]*protocol.Response, 0)
	for {
		select {
		case msg := <-c.SendChan():
			msgs = append(msgs, msg.(*protocol.Response))
		default:
			return msgs
		}
	}
}

func messageTypes(msgs []*protocol.Response) []string {
	types := make([]string, len(msgs))
	for i, msg := range msgs {
		types[i] = msg.Type
	}

	return types
}

func send(c *Client, action string, payload protocol.AdditionalData) {
	c.ReceivedMessage(&protocol.PayloadIn{
		Action:  action,
		Payload: payload,
	})
}

// joinRoom joins the client and returns the joined message
func joinRoom(t *testing.T, c *Client, payload protocol.AdditionalData) *JoinedMessage {
	t.Helper()

	send(c, protocol.ActionJoinRoom, payload)
	msgs := drain(c)
	require.NotEmpty(t, msgs)
	require.Equal(t, protocol.TypeJoined, msgs[0].Type, "%v", msgs[0].Data)

	return msgs[0].Data.(*JoinedMessage)
}

func errorMessage(t *testing.T, msgs []*protocol.Response) string {
	t.Helper()

	require.Len(t, msgs, 1)
	require.Equal(t, protocol.TypeError, msgs[0].Type)
	return msgs[0].Data.(*protocol.ErrorMessage).Message
}
