package util

import (
	"github.com/google/uuid"
)

// PlayerIDLength is the length of generated player IDs
const PlayerIDLength = 8

// NewPlayerID returns a short random ID for a player that did not bring one
func NewPlayerID() string {
	return uuid.New().String()[:PlayerIDLength]
}
