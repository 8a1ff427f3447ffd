package rikiki

import "fmt"

// CallRikiki ends normal play
// Every other seat, starting with the one after the caller, gets one final turn.
// The game ends on its own once the last of them has played.
func (g *Game) CallRikiki(playerID string) (*CallResult, error) {
	player, err := g.validateTurn(playerID)
	if err != nil {
		return nil, err
	}

	if g.phase != PhasePlaying {
		return nil, fmt.Errorf("%w: rikiki has already been called", ErrInvalidState)
	}

	if g.pending != nil {
		return nil, fmt.Errorf("%w: resolve the drawn card first", ErrInvalidState)
	}

	n := len(g.players)
	seat := g.turnIndex % n
	remaining := make([]string, 0, n-1)
	for i := 1; i < n; i++ {
		remaining = append(remaining, g.players[(seat+i)%n].ID)
	}

	g.rikikiCallerID = player.ID
	player.calledRikiki = true
	g.phase = PhaseLastRound
	g.lastRoundRemaining = remaining

	g.log.Append(player.ID, ActionCallRikiki, Details{})
	g.logger.WithField("playerID", player.ID).Debug("rikiki called")

	lastRoundFor := append([]string{}, remaining...)
	g.advanceTurn()

	return &CallResult{
		Called:       true,
		LastRoundFor: lastRoundFor,
	}, nil
}
