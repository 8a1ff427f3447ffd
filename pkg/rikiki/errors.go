package rikiki

// Error is a game rule violation
// It is always safe to return the message to the player who caused it.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrRoomFull is returned when a player joins a room that has no free seat
const ErrRoomFull Error = "room is full"

// ErrInvalidState is returned when the action is not allowed in the current phase
const ErrInvalidState Error = "action not allowed right now"

// ErrInsufficientPlayers is returned when a game is started with fewer than two players
const ErrInsufficientPlayers Error = "need at least 2 players"

// ErrNoCardsLeft is returned when both the deck and the discard pile are empty
const ErrNoCardsLeft Error = "no cards left"

// ErrInvalidPosition is returned when a position does not address a hand slot
const ErrInvalidPosition Error = "invalid position"

// ErrEmptySlot is returned when a position addresses an empty hand slot
const ErrEmptySlot Error = "no card at position"

// ErrNoPendingAction is returned when there is no drawn card, or the drawn card cannot be used that way
const ErrNoPendingAction Error = "no matching card drawn"

// ErrPlayerNotFound is returned when the acting player is not in the room
const ErrPlayerNotFound Error = "player not found"

// ErrTargetNotFound is returned when a targeted player is not in the room
const ErrTargetNotFound Error = "target player not found"

// ErrNotYourTurn is returned when a player acts out of turn
const ErrNotYourTurn Error = "not your turn"

// ErrSameTargetNotAllowed is returned when a swap names the same player twice
const ErrSameTargetNotAllowed Error = "must swap between different players"
