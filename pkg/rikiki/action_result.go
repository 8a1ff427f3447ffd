package rikiki

import "github.com/itaross/rikiki-be/pkg/deck"

// NextActionKeepOrReplace tells the player to resolve the drawn card after a failed discard
const NextActionKeepOrReplace = "keep_or_replace"

// DrawResult is the response to drawing a card
// The card is only shown to the player who drew it.
type DrawResult struct {
	Card      *deck.Card `json:"card"`
	IsSpecial bool       `json:"is_special"`
	Rank      string     `json:"rank"`
}

// DiscardResult is the response to attempting a discard
type DiscardResult struct {
	Success bool `json:"success"`
	// Discarded is populated on a match
	Discarded []*deck.Card `json:"discarded,omitempty"`
	// Drawn and NextActionRequired are populated on a miss
	Drawn              *deck.Card `json:"drawn,omitempty"`
	NextActionRequired string     `json:"next_action_required,omitempty"`
}

// ReplaceResult is the response to replacing a card in hand with the drawn card
type ReplaceResult struct {
	Replaced bool       `json:"replaced"`
	Position int        `json:"position"`
	NewCard  *deck.Card `json:"new_card"`
}

// KeepResult is the response to keeping the hand and discarding the drawn card
type KeepResult struct {
	Kept        *deck.Card `json:"kept"`
	AddedToHand bool       `json:"added_to_hand"`
}

// PeekResult is the response to a jack or a king peek
// Peeked is nil when the slot is empty.
type PeekResult struct {
	Peeked         *deck.Card `json:"peeked"`
	TargetPlayerID string     `json:"target_player_id"`
	Position       int        `json:"position"`
}

// SwapResult is the response to a queen or king swap
type SwapResult struct {
	Swapped bool `json:"swapped"`
}

// CallResult is the response to calling rikiki
type CallResult struct {
	Called       bool     `json:"called"`
	LastRoundFor []string `json:"last_round_for"`
}
