package rikiki

import (
	"testing"

	"github.com/itaross/rikiki-be/pkg/deck"
	"github.com/stretchr/testify/assert"
)

func TestGame_Draw(t *testing.T) {
	a := assert.New(t)
	g := setupGame(t, "5h,6h,7h,8h", "5d,6d,7d,8d")
	stackDeck(g, "2c,11c")

	res, err := g.Draw("p1")
	a.NoError(err)
	a.Equal("11c", res.Card.ID)
	a.True(res.IsSpecial)
	a.Equal("J", res.Rank)

	a.Equal(PendingDrawn, g.Pending().Kind())
	a.Equal("11c", g.Pending().Card().ID)
	a.Equal(0, g.TurnIndex(), "a draw does not end the turn")
	a.Equal(1, g.DeckCount())

	_, err = g.Draw("p1")
	a.ErrorIs(err, ErrInvalidState)
	a.Equal(1, g.DeckCount())
}

func TestGame_Draw_ReshufflesDiscards(t *testing.T) {
	a := assert.New(t)
	g := setupGame(t, "5h,6h,7h,8h", "5d,6d,7d,8d")
	stackDeck(g, "")
	g.discards = deck.CardsFromString("1c,2c,3c")

	_, err := g.Draw("p1")
	a.NoError(err)
	a.Equal(2, g.DeckCount())
	a.Empty(g.DiscardPile())
}

func TestGame_Draw_NoCardsLeft(t *testing.T) {
	a := assert.New(t)
	g := setupGame(t, "5h,6h,7h,8h", "5d,6d,7d,8d")
	stackDeck(g, "")

	_, err := g.Draw("p1")
	a.Equal(ErrNoCardsLeft, err)
	a.Nil(g.Pending())
	a.Equal(0, g.TurnIndex())
}

func TestGame_AttemptDiscard_Match(t *testing.T) {
	a := assert.New(t)
	g := setupGame(t, "5h,2c,3c,4c", "6d,6d,6d,6d")
	stackDeck(g, "5c")

	_, err := g.Draw("p1")
	a.NoError(err)

	res, err := g.AttemptDiscard("p1", 0)
	a.NoError(err)
	a.True(res.Success)
	a.Len(res.Discarded, 2)
	a.Equal("", res.NextActionRequired)

	a.Equal(",2c,3c,4c", handString(g, "p1"))
	a.Equal(3, g.Player("p1").Hand().CardCount())
	a.Equal(4, g.Player("p1").Hand().Len(), "slots are never removed")
	a.Nil(g.Pending())
	a.Equal(1, g.TurnIndex())
	a.Len(g.DiscardPile(), 2)
	a.Equal("5h", discardTop(g))
	a.Equal(ActionDiscardSuccess, g.log.Last().Action)
}

func TestGame_AttemptDiscard_MissThenReplace(t *testing.T) {
	a := assert.New(t)
	g := setupGame(t, "5h,2c,3c,4c", "6d,6d,6d,6d")
	stackDeck(g, "7c")

	_, err := g.Draw("p1")
	a.NoError(err)

	res, err := g.AttemptDiscard("p1", 0)
	a.NoError(err)
	a.False(res.Success)
	a.Equal("7c", res.Drawn.ID)
	a.Equal(NextActionKeepOrReplace, res.NextActionRequired)

	a.Equal("5h,2c,3c,4c", handString(g, "p1"))
	a.Equal(PendingDrawn, g.Pending().Kind())
	a.Equal(0, g.TurnIndex())
	a.Empty(g.DiscardPile())
	a.Equal(ActionDiscardFail, g.log.Last().Action)

	// the drawn card is still usable
	replaced, err := g.Replace("p1", 0)
	a.NoError(err)
	a.True(replaced.Replaced)
	a.Equal(0, replaced.Position)
	a.Equal("7c", replaced.NewCard.ID)

	a.Equal("7c,2c,3c,4c", handString(g, "p1"))
	a.Equal("5h", discardTop(g))
	a.Nil(g.Pending())
	a.Equal(1, g.TurnIndex())
}

func TestGame_AttemptDiscard_Errors(t *testing.T) {
	a := assert.New(t)
	g := setupGame(t, "5h,,3c,4c", "6d,6d,6d,6d")

	_, err := g.AttemptDiscard("p1", 0)
	a.Equal(ErrNoPendingAction, err)

	stackDeck(g, "5c")
	_, _ = g.Draw("p1")

	_, err = g.AttemptDiscard("p1", 4)
	a.Equal(ErrInvalidPosition, err)

	_, err = g.AttemptDiscard("p1", -1)
	a.Equal(ErrInvalidPosition, err)

	_, err = g.AttemptDiscard("p1", 1)
	a.Equal(ErrEmptySlot, err)

	_, err = g.AttemptDiscard("p2", 0)
	a.Equal(ErrNotYourTurn, err)

	a.Equal(PendingDrawn, g.Pending().Kind())
}

func TestGame_Replace_Errors(t *testing.T) {
	a := assert.New(t)
	g := setupGame(t, "5h,,3c,4c", "6d,6d,6d,6d")

	_, err := g.Replace("p1", 0)
	a.Equal(ErrNoPendingAction, err)

	stackDeck(g, "9c")
	_, _ = g.Draw("p1")

	_, err = g.Replace("p1", 1)
	a.Equal(ErrEmptySlot, err)

	_, err = g.Replace("p1", 9)
	a.Equal(ErrInvalidPosition, err)
	a.Equal("5h,,3c,4c", handString(g, "p1"))
}

func TestGame_Keep(t *testing.T) {
	a := assert.New(t)
	g := setupGame(t, "5h,6h,7h,8h", "5d,6d,7d,8d")
	stackDeck(g, "13s")

	_, err := g.Keep("p1")
	a.Equal(ErrNoPendingAction, err)

	_, _ = g.Draw("p1")
	res, err := g.Keep("p1")
	a.NoError(err)
	a.Equal("13s", res.Kept.ID)
	a.False(res.AddedToHand)

	a.Equal("5h,6h,7h,8h", handString(g, "p1"))
	a.Equal("13s", discardTop(g))
	a.Nil(g.Pending())
	a.Equal("p2", g.CurrentPlayer().ID)
}
