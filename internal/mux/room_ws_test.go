package mux

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/itaross/rikiki-be/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wsMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type wsPublicState struct {
	Phase           string `json:"phase"`
	CurrentPlayerID string `json:"current_player_id"`
	Players         []struct {
		ID        string `json:"id"`
		Connected bool   `json:"connected"`
	} `json:"players"`
}

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}

func writeAction(t *testing.T, conn *websocket.Conn, action string, payload protocol.AdditionalData) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(&protocol.PayloadIn{Action: action, Payload: payload}))
}

// readUntil reads messages until one of the type satisfies match
func readUntil(t *testing.T, conn *websocket.Conn, typ string, match func(data json.RawMessage) bool) json.RawMessage {
	t.Helper()

	_ = conn.SetReadDeadline(time.Now().Add(time.Second * 5))
	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("waiting for %s: %v", typ, err)
		}

		if msg.Type == typ && (match == nil || match(msg.Data)) {
			return msg.Data
		}
	}
}

func joinWS(t *testing.T, conn *websocket.Conn, payload protocol.AdditionalData) (code, playerID string) {
	t.Helper()

	writeAction(t, conn, protocol.ActionJoinRoom, payload)
	var joined struct {
		RoomCode string `json:"room_code"`
		PlayerID string `json:"player_id"`
	}

	require.NoError(t, json.Unmarshal(readUntil(t, conn, protocol.TypeJoined, nil), &joined))
	return joined.RoomCode, joined.PlayerID
}

func TestWS_Game(t *testing.T) {
	a := assert.New(t)
	ts := httptest.NewServer(newTestMux(t))
	defer ts.Close()

	c1 := dialWS(t, ts)
	code, p1 := joinWS(t, c1, protocol.AdditionalData{"name": "Alice", "seed": 42})
	a.Len(code, 4)

	c2 := dialWS(t, ts)
	_, p2 := joinWS(t, c2, protocol.AdditionalData{"name": "Bob", "room_code": strings.ToLower(code)})

	writeAction(t, c1, protocol.ActionStartGame, nil)
	var private struct {
		ID   string        `json:"id"`
		Hand []interface{} `json:"hand"`
	}
	a.NoError(json.Unmarshal(readUntil(t, c1, protocol.TypePrivateStateUpdate, nil), &private))
	a.Equal(p1, private.ID)
	a.Len(private.Hand, 4)

	writeAction(t, c1, protocol.ActionDrawCard, nil)
	var drawn struct {
		Action string                 `json:"action"`
		Card   map[string]interface{} `json:"card"`
	}
	a.NoError(json.Unmarshal(readUntil(t, c1, protocol.TypeActionResult, nil), &drawn))
	a.Equal(protocol.ActionDrawCard, drawn.Action)
	a.NotEmpty(drawn.Card["id"])

	writeAction(t, c1, protocol.ActionKeepCard, nil)
	readUntil(t, c2, protocol.TypeGameStatePublic, func(data json.RawMessage) bool {
		var state wsPublicState
		_ = json.Unmarshal(data, &state)
		return state.CurrentPlayerID == p2
	})

	// out of turn
	writeAction(t, c1, protocol.ActionDrawCard, nil)
	var errMsg protocol.ErrorMessage
	a.NoError(json.Unmarshal(readUntil(t, c1, protocol.TypeError, nil), &errMsg))
	a.Equal("not your turn", errMsg.Message)

	// malformed messages do not drop the connection
	a.NoError(c1.WriteMessage(websocket.TextMessage, []byte("hello")))
	a.NoError(json.Unmarshal(readUntil(t, c1, protocol.TypeError, nil), &errMsg))
	a.Equal("invalid payload", errMsg.Message)

	// disconnect
	_ = c2.Close()
	readUntil(t, c1, protocol.TypeGameStatePublic, func(data json.RawMessage) bool {
		var state wsPublicState
		_ = json.Unmarshal(data, &state)
		return len(state.Players) == 2 && !state.Players[1].Connected
	})
}

func TestWS_NotInRoom(t *testing.T) {
	ts := httptest.NewServer(newTestMux(t))
	defer ts.Close()

	conn := dialWS(t, ts)
	writeAction(t, conn, protocol.ActionDrawCard, nil)

	var errMsg protocol.ErrorMessage
	assert.NoError(t, json.Unmarshal(readUntil(t, conn, protocol.TypeError, nil), &errMsg))
	assert.Equal(t, "not in a room, send join_room first", errMsg.Message)
}
