package rikiki

import "github.com/itaross/rikiki-be/pkg/deck"

// PendingKind names the active pending action
type PendingKind string

// pending action kinds
const (
	PendingNone     PendingKind = "none"
	PendingDrawn    PendingKind = "drawn"
	PendingKingPeek PendingKind = "king_peek"
)

// PendingAction is a card in flight between a draw and the action that resolves it
// A nil PendingAction means nothing is in flight. The only implementations are
// *Drawn and *KingPeek.
type PendingAction interface {
	Kind() PendingKind
	// Card returns the card that was drawn
	Card() *deck.Card
	pendingAction()
}

// Drawn is a card that was drawn and not yet resolved
type Drawn struct {
	PlayerID string
	card     *deck.Card
}

// Kind returns PendingDrawn
func (d *Drawn) Kind() PendingKind {
	return PendingDrawn
}

// Card returns the drawn card
func (d *Drawn) Card() *deck.Card {
	return d.card
}

func (d *Drawn) pendingAction() {}

// KingPeek is a drawn king whose holder has peeked and must now swap
type KingPeek struct {
	PlayerID       string
	PeekedPlayerID string
	PeekedPosition int
	card           *deck.Card
}

// Kind returns PendingKingPeek
func (k *KingPeek) Kind() PendingKind {
	return PendingKingPeek
}

// Card returns the king
func (k *KingPeek) Card() *deck.Card {
	return k.card
}

func (k *KingPeek) pendingAction() {}

func pendingKind(p PendingAction) PendingKind {
	if p == nil {
		return PendingNone
	}

	return p.Kind()
}
