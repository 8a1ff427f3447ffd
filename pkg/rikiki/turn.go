package rikiki

import (
	"fmt"

	"github.com/itaross/rikiki-be/pkg/deck"
)

// Draw takes the next card from the deck and holds it as the pending action
// The discard pile is reshuffled into the deck when the deck runs out.
// The turn does not advance.
func (g *Game) Draw(playerID string) (*DrawResult, error) {
	player, err := g.validateTurn(playerID)
	if err != nil {
		return nil, err
	}

	if g.pending != nil {
		return nil, fmt.Errorf("%w: a card has already been drawn", ErrInvalidState)
	}

	if !g.deck.CanDraw(1) {
		if len(g.discards) == 0 {
			return nil, ErrNoCardsLeft
		}

		g.deck.ShuffleDiscards(g.discards)
		g.discards = make([]*deck.Card, 0, deck.Size)
		g.logger.WithField("cards", g.deck.CardsLeft()).Debug("discard pile reshuffled")
	}

	card, err := g.deck.Draw()
	if err != nil {
		return nil, err
	}

	g.pending = &Drawn{
		PlayerID: player.ID,
		card:     card,
	}

	g.log.Append(player.ID, ActionDrawCard, Details{"card_id": card.ID})
	g.logger.WithField("playerID", player.ID).WithField("card", card).Debug("draw")

	return &DrawResult{
		Card:      card,
		IsSpecial: card.IsSpecial(),
		Rank:      card.RankSymbol(),
	}, nil
}

// AttemptDiscard tries to pair the drawn card with the card at position
// On a rank match both cards are discarded, the slot becomes empty and the turn advances.
// On a miss nothing changes; the player must still replace, keep or use the drawn card.
func (g *Game) AttemptDiscard(playerID string, position int) (*DiscardResult, error) {
	player, err := g.validateTurn(playerID)
	if err != nil {
		return nil, err
	}

	drawn, err := g.pendingDrawn()
	if err != nil {
		return nil, err
	}

	handCard, err := occupiedSlot(player, position)
	if err != nil {
		return nil, err
	}

	log := g.logger.WithField("playerID", player.ID).WithField("position", position)

	if drawn.card.Rank != handCard.Rank {
		g.log.Append(player.ID, ActionDiscardFail, Details{"position": position})
		log.Debug("discard missed")

		return &DiscardResult{
			Success:            false,
			Drawn:              drawn.card,
			NextActionRequired: NextActionKeepOrReplace,
		}, nil
	}

	g.discard(drawn.card, handCard)
	player.hand[position] = nil
	g.pending = nil

	g.log.Append(player.ID, ActionDiscardSuccess, Details{"position": position})
	log.Debug("discard matched")
	g.advanceTurn()

	return &DiscardResult{
		Success:   true,
		Discarded: []*deck.Card{drawn.card, handCard},
	}, nil
}

// Replace puts the drawn card into the slot at position and discards the card that was there
func (g *Game) Replace(playerID string, position int) (*ReplaceResult, error) {
	player, err := g.validateTurn(playerID)
	if err != nil {
		return nil, err
	}

	drawn, err := g.pendingDrawn()
	if err != nil {
		return nil, err
	}

	displaced, err := occupiedSlot(player, position)
	if err != nil {
		return nil, err
	}

	player.hand[position] = drawn.card
	g.discard(displaced)
	g.pending = nil

	g.log.Append(player.ID, ActionReplaceCard, Details{"position": position})
	g.logger.WithField("playerID", player.ID).WithField("position", position).Debug("replace")
	g.advanceTurn()

	return &ReplaceResult{
		Replaced: true,
		Position: position,
		NewCard:  drawn.card,
	}, nil
}

// Keep discards the drawn card and leaves the hand untouched
func (g *Game) Keep(playerID string) (*KeepResult, error) {
	player, err := g.validateTurn(playerID)
	if err != nil {
		return nil, err
	}

	drawn, err := g.pendingDrawn()
	if err != nil {
		return nil, err
	}

	g.discard(drawn.card)
	g.pending = nil

	g.log.Append(player.ID, ActionKeepCard, Details{"added_to_hand": false})
	g.logger.WithField("playerID", player.ID).Debug("keep")
	g.advanceTurn()

	return &KeepResult{
		Kept:        drawn.card,
		AddedToHand: false,
	}, nil
}

// pendingDrawn returns the pending action if it is a drawn card that has not been used yet
func (g *Game) pendingDrawn() (*Drawn, error) {
	drawn, ok := g.pending.(*Drawn)
	if !ok {
		return nil, ErrNoPendingAction
	}

	return drawn, nil
}

// pendingDrawnRank returns the pending drawn card if it has the rank
func (g *Game) pendingDrawnRank(rank int) (*Drawn, error) {
	drawn, err := g.pendingDrawn()
	if err != nil {
		return nil, err
	}

	if drawn.card.Rank != rank {
		return nil, fmt.Errorf("%w: drawn card is not a %s", ErrNoPendingAction, rankName(rank))
	}

	return drawn, nil
}

func rankName(rank int) string {
	switch rank {
	case deck.Jack:
		return "jack"
	case deck.Queen:
		return "queen"
	case deck.King:
		return "king"
	default:
		return fmt.Sprintf("%d", rank)
	}
}
