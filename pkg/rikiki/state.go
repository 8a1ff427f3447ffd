package rikiki

import (
	"github.com/itaross/rikiki-be/pkg/deck"
)

// GameState is the overall room state
// This is safe for all players to see
type GameState struct {
	RoomCode           string          `json:"room_code"`
	Phase              Phase           `json:"phase"`
	TurnIndex          int             `json:"turn_index"`
	CurrentPlayerID    string          `json:"current_player_id"`
	RikikiCalledBy     string          `json:"rikiki_called_by"`
	DeckCount          int             `json:"deck_count"`
	DiscardCount       int             `json:"discard_count"`
	DiscardTop         *deck.Card      `json:"discard_top"`
	Players            []*PublicPlayer `json:"players"`
	PendingAction      PendingKind     `json:"pending_action"`
	LastRoundRemaining []string        `json:"last_round_remaining"`
	// RevealUntil is a unix timestamp in seconds until which clients show the dealt cards
	RevealUntil float64 `json:"reveal_until"`
}

// PublicPlayer is the state of an individual player
// This is safe for all players to see
type PublicPlayer struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Connected    bool          `json:"connected"`
	CalledRikiki bool          `json:"called_rikiki"`
	CardCount    int           `json:"card_count"`
	HandPublic   []*PublicSlot `json:"hand_public"`
}

// PublicSlot identifies the card in a slot without revealing it
// An empty slot is nil.
type PublicSlot struct {
	ID string `json:"id"`
}

// PrivateState is a player's own hand
// This must only be sent to the player it belongs to
type PrivateState struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Hand deck.Hand `json:"hand"`
}

// PublicState returns a snapshot of the room for broadcasting
func (g *Game) PublicState() *GameState {
	players := make([]*PublicPlayer, len(g.players))
	for i, player := range g.players {
		slots := make([]*PublicSlot, len(player.hand))
		for pos, card := range player.hand {
			if card != nil {
				slots[pos] = &PublicSlot{ID: card.ID}
			}
		}

		players[i] = &PublicPlayer{
			ID:           player.ID,
			Name:         player.Name,
			Connected:    player.connected,
			CalledRikiki: player.calledRikiki,
			CardCount:    player.hand.CardCount(),
			HandPublic:   slots,
		}
	}

	var currentPlayerID string
	if current := g.CurrentPlayer(); current != nil {
		currentPlayerID = current.ID
	}

	var discardTop *deck.Card
	if n := len(g.discards); n > 0 {
		discardTop = g.discards[n-1]
	}

	var revealUntil float64
	if !g.revealUntil.IsZero() {
		revealUntil = float64(g.revealUntil.Unix()) + float64(g.revealUntil.Nanosecond())/1e9
	}

	return &GameState{
		RoomCode:           g.roomCode,
		Phase:              g.phase,
		TurnIndex:          g.turnIndex,
		CurrentPlayerID:    currentPlayerID,
		RikikiCalledBy:     g.rikikiCallerID,
		DeckCount:          g.DeckCount(),
		DiscardCount:       len(g.discards),
		DiscardTop:         discardTop,
		Players:            players,
		PendingAction:      pendingKind(g.pending),
		LastRoundRemaining: g.LastRoundRemaining(),
		RevealUntil:        revealUntil,
	}
}

// PrivateState returns the player's own hand
func (g *Game) PrivateState(playerID string) (*PrivateState, error) {
	player, ok := g.idToPlayer[playerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	return &PrivateState{
		ID:   player.ID,
		Name: player.Name,
		Hand: player.Hand(),
	}, nil
}
