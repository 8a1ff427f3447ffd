package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidPayload is returned when a required payload key is missing or has the wrong type
var ErrInvalidPayload = errors.New("invalid payload")

// ErrUnknownAction is returned when the action is not recognized
var ErrUnknownAction = errors.New("unknown action")

// client intents
const (
	ActionJoinRoom       = "join_room"
	ActionStartGame      = "start_game"
	ActionDrawCard       = "draw_card"
	ActionAttemptDiscard = "attempt_discard"
	ActionReplaceCard    = "replace_card"
	ActionKeepCard       = "keep_card"
	ActionUseJack        = "use_jack"
	ActionUseQueen       = "use_queen"
	ActionUseKingPeek    = "use_king_peek"
	ActionUseKingSwap    = "use_king_swap"
	ActionCallRikiki     = "call_rikiki"
)

// server message types
const (
	TypeJoined             = "joined"
	TypeGameStatePublic    = "game_state_public"
	TypePrivateStateUpdate = "private_state_update"
	TypeActionResult       = "action_result"
	TypeError              = "error"
	TypeGameEnd            = "game_end"
)

// PayloadIn is the format we expect from the client
type PayloadIn struct {
	Action  string         `json:"action"`
	Payload AdditionalData `json:"payload"`
}

// Response is the format of every message sent to a client
type Response struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// NewResponse returns a response of the type
func NewResponse(typ string, data interface{}) *Response {
	return &Response{
		Type: typ,
		Data: data,
	}
}

// ErrorMessage is the data of an error response
type ErrorMessage struct {
	Message string `json:"message"`
}

// NewErrorResponse returns an error response with the error's message
func NewErrorResponse(err error) *Response {
	return NewErrorMessageResponse(err.Error())
}

// NewErrorMessageResponse returns an error response with the message
func NewErrorMessageResponse(message string) *Response {
	return NewResponse(TypeError, &ErrorMessage{Message: message})
}

// NewActionResult returns an action_result response
// The result's fields are flattened next to an "action" key.
func NewActionResult(action string, result interface{}) (*Response, error) {
	data := make(map[string]interface{})
	if result != nil {
		b, err := json.Marshal(result)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal(b, &data); err != nil {
			return nil, fmt.Errorf("action result must be an object: %w", err)
		}
	}

	data["action"] = action
	return NewResponse(TypeActionResult, data), nil
}
