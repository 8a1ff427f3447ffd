package rikiki

import (
	"fmt"
	"testing"
	"time"

	"github.com/itaross/rikiki-be/pkg/deck"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func seed(s int64) *int64 {
	return &s
}

func newTestGame() *Game {
	g := NewGame(logrus.StandardLogger(), "TEST", Options{
		Seed:           seed(0),
		RevealDuration: time.Second * 5,
	})
	g.now = func() time.Time {
		return testTime
	}

	return g
}

// setupGame starts a game with one player per hand, named p1, p2, ...
// Hands are in the format of 5h,,7c,8d where a blank entry is an empty slot.
func setupGame(t *testing.T, hands ...string) *Game {
	t.Helper()

	g := newTestGame()
	for i := range hands {
		_, err := g.AddPlayer(fmt.Sprintf("p%d", i+1), fmt.Sprintf("Player %d", i+1))
		require.NoError(t, err)
	}

	require.NoError(t, g.Start())

	for i, hand := range hands {
		g.players[i].hand = deck.Hand(deck.CardsFromString(hand))
	}

	return g
}

// stackDeck replaces the deck. The last card is drawn first.
func stackDeck(g *Game, cards string) {
	g.deck.Cards = deck.CardsFromString(cards)
}

func handString(g *Game, playerID string) string {
	return g.Player(playerID).hand.String()
}

func discardTop(g *Game) string {
	if len(g.discards) == 0 {
		return ""
	}

	return deck.CardToString(g.discards[len(g.discards)-1])
}

// playKeep draws and keeps for the player
func playKeep(t *testing.T, g *Game, playerID string) {
	t.Helper()

	_, err := g.Draw(playerID)
	require.NoError(t, err)
	_, err = g.Keep(playerID)
	require.NoError(t, err)
}
