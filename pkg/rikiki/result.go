package rikiki

import "github.com/itaross/rikiki-be/pkg/deck"

// PlayerScore is a player's final hand and score
type PlayerScore struct {
	PlayerID     string    `json:"player_id"`
	Name         string    `json:"name"`
	Score        int       `json:"score"`
	Hand         deck.Hand `json:"hand"`
	CalledRikiki bool      `json:"called_rikiki"`
}

// Result contains the results from a completed game
type Result struct {
	Scores []*PlayerScore `json:"scores"`
	// WinnerID is empty only when the room has no players
	WinnerID       string `json:"winner_id,omitempty"`
	CallerID       string `json:"caller_id,omitempty"`
	CallerAutoLose bool   `json:"caller_auto_lose"`
}

// Score returns the score for the player, or nil
func (r *Result) Score(playerID string) *PlayerScore {
	for _, score := range r.Scores {
		if score.PlayerID == playerID {
			return score
		}
	}

	return nil
}

// endGame scores every hand and picks the winner
// The lowest score wins, earliest seat on a tie. A caller scoring over
// CallerAutoLoseScore cannot win.
func (g *Game) endGame() *Result {
	g.phase = PhaseEnded
	g.lastRoundRemaining = nil
	g.pending = nil

	scores := make([]*PlayerScore, len(g.players))
	for i, player := range g.players {
		scores[i] = &PlayerScore{
			PlayerID:     player.ID,
			Name:         player.Name,
			Score:        player.Score(),
			Hand:         player.Hand(),
			CalledRikiki: player.calledRikiki,
		}
	}

	callerAutoLose := false
	if caller, ok := g.idToPlayer[g.rikikiCallerID]; ok {
		callerAutoLose = caller.Score() > CallerAutoLoseScore
	}

	var winner *PlayerScore
	for _, score := range scores {
		if callerAutoLose && score.PlayerID == g.rikikiCallerID {
			continue
		}

		if winner == nil || score.Score < winner.Score {
			winner = score
		}
	}

	result := &Result{
		Scores:         scores,
		CallerID:       g.rikikiCallerID,
		CallerAutoLose: callerAutoLose,
	}

	if winner != nil {
		result.WinnerID = winner.PlayerID
	}

	g.result = result
	g.log.Append(SystemPlayerID, ActionGameEnded, result)
	g.logger.WithField("winner", result.WinnerID).WithField("callerAutoLose", callerAutoLose).Info("game ended")

	return result
}
