package rikiki

import (
	"github.com/itaross/rikiki-be/pkg/deck"
)

// Player is a seat in the room
type Player struct {
	ID           string
	Name         string
	hand         deck.Hand
	connected    bool
	calledRikiki bool
}

// NewPlayer returns a new, connected player with no cards
func NewPlayer(id, name string) *Player {
	return &Player{
		ID:        id,
		Name:      name,
		hand:      deck.NewHand(0),
		connected: true,
	}
}

// Hand returns a shallow clone of the player's hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// Score returns the sum of the player's cards
func (p *Player) Score() int {
	return p.hand.Score()
}

// IsConnected returns true if the player has a live connection
func (p *Player) IsConnected() bool {
	return p.connected
}

// CalledRikiki returns true if the player called rikiki this game
func (p *Player) CalledRikiki() bool {
	return p.calledRikiki
}

// newGame resets the per-game state and deals a fresh set of empty slots
func (p *Player) newGame() {
	p.hand = deck.NewHand(HandSize)
	p.calledRikiki = false
}
