package rikiki

import (
	"fmt"

	"github.com/itaross/rikiki-be/pkg/deck"
)

// UseJack lets the player look at any one slot
// The jack is discarded and the turn advances. The slot is not changed.
func (g *Game) UseJack(playerID, targetPlayerID string, position int) (*PeekResult, error) {
	player, err := g.validateTurn(playerID)
	if err != nil {
		return nil, err
	}

	drawn, err := g.pendingDrawnRank(deck.Jack)
	if err != nil {
		return nil, err
	}

	target, err := g.target(targetPlayerID, position)
	if err != nil {
		return nil, err
	}

	peeked := target.hand[position]
	g.discard(drawn.card)
	g.pending = nil

	g.log.Append(player.ID, ActionUseJack, Details{"target": target.ID, "position": position})
	g.logger.WithField("playerID", player.ID).WithField("target", target.ID).Debug("jack")
	g.advanceTurn()

	return &PeekResult{
		Peeked:         peeked,
		TargetPlayerID: target.ID,
		Position:       position,
	}, nil
}

// UseQueen blindly swaps two slots that belong to two different players
// Neither player has to be the one holding the queen.
func (g *Game) UseQueen(playerID, playerAID string, posA int, playerBID string, posB int) (*SwapResult, error) {
	player, err := g.validateTurn(playerID)
	if err != nil {
		return nil, err
	}

	drawn, err := g.pendingDrawnRank(deck.Queen)
	if err != nil {
		return nil, err
	}

	if playerAID == playerBID {
		return nil, ErrSameTargetNotAllowed
	}

	a, err := g.target(playerAID, posA)
	if err != nil {
		return nil, err
	}

	b, err := g.target(playerBID, posB)
	if err != nil {
		return nil, err
	}

	a.hand[posA], b.hand[posB] = b.hand[posB], a.hand[posA]
	g.discard(drawn.card)
	g.pending = nil

	g.log.Append(player.ID, ActionUseQueen, Details{
		"player_a": a.ID,
		"pos_a":    posA,
		"player_b": b.ID,
		"pos_b":    posB,
	})
	g.logger.WithField("playerID", player.ID).Debug("queen")
	g.advanceTurn()

	return &SwapResult{Swapped: true}, nil
}

// UseKingPeek is the first half of a king: look at any slot
// The player must follow up with UseKingSwap. The turn does not advance.
func (g *Game) UseKingPeek(playerID, targetPlayerID string, position int) (*PeekResult, error) {
	player, err := g.validateTurn(playerID)
	if err != nil {
		return nil, err
	}

	drawn, err := g.pendingDrawnRank(deck.King)
	if err != nil {
		return nil, err
	}

	target, err := g.target(targetPlayerID, position)
	if err != nil {
		return nil, err
	}

	peeked := target.hand[position]
	g.pending = &KingPeek{
		PlayerID:       player.ID,
		PeekedPlayerID: target.ID,
		PeekedPosition: position,
		card:           drawn.card,
	}

	g.log.Append(player.ID, ActionKingPeek, Details{"target": target.ID, "position": position})
	g.logger.WithField("playerID", player.ID).WithField("target", target.ID).Debug("king peek")

	return &PeekResult{
		Peeked:         peeked,
		TargetPlayerID: target.ID,
		Position:       position,
	}, nil
}

// UseKingSwap is the second half of a king
// The peeked slot is swapped with a slot of a different player, whatever the ranks.
func (g *Game) UseKingSwap(playerID, otherPlayerID string, otherPosition int) (*SwapResult, error) {
	player, err := g.validateTurn(playerID)
	if err != nil {
		return nil, err
	}

	peek, ok := g.pending.(*KingPeek)
	if !ok || peek.PlayerID != player.ID {
		return nil, fmt.Errorf("%w: must peek with a king first", ErrNoPendingAction)
	}

	other, ok := g.idToPlayer[otherPlayerID]
	if !ok {
		return nil, ErrTargetNotFound
	}

	if other.ID == peek.PeekedPlayerID {
		return nil, ErrSameTargetNotAllowed
	}

	if !other.hand.IsValid(otherPosition) {
		return nil, ErrInvalidPosition
	}

	peeked := g.idToPlayer[peek.PeekedPlayerID]
	pos := peek.PeekedPosition
	peeked.hand[pos], other.hand[otherPosition] = other.hand[otherPosition], peeked.hand[pos]

	g.discard(peek.card)
	g.pending = nil

	g.log.Append(player.ID, ActionKingSwap, Details{
		"from_player": peeked.ID,
		"from_pos":    pos,
		"to_player":   other.ID,
		"to_pos":      otherPosition,
	})
	g.logger.WithField("playerID", player.ID).Debug("king swap")
	g.advanceTurn()

	return &SwapResult{Swapped: true}, nil
}
