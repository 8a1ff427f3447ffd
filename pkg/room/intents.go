package room

import (
	"github.com/itaross/rikiki-be/pkg/protocol"
	"github.com/itaross/rikiki-be/pkg/rikiki"
)

// intentHandler performs one client intent against the game
// It returns the action result and the IDs of the players whose hands may
// have changed.
type intentHandler func(g *rikiki.Game, playerID string, payload protocol.AdditionalData) (interface{}, []string, error)

// StartResult is the action result of start_game
type StartResult struct {
	Started bool `json:"started"`
}

// intents routes every game intent to its operation
// join_room is handled by the PitBoss before a client has a room.
var intents = map[string]intentHandler{
	protocol.ActionStartGame:      startGame,
	protocol.ActionDrawCard:       drawCard,
	protocol.ActionAttemptDiscard: attemptDiscard,
	protocol.ActionReplaceCard:    replaceCard,
	protocol.ActionKeepCard:       keepCard,
	protocol.ActionUseJack:        useJack,
	protocol.ActionUseQueen:       useQueen,
	protocol.ActionUseKingPeek:    useKingPeek,
	protocol.ActionUseKingSwap:    useKingSwap,
	protocol.ActionCallRikiki:     callRikiki,
}

func startGame(g *rikiki.Game, playerID string, _ protocol.AdditionalData) (interface{}, []string, error) {
	if g.Player(playerID) == nil {
		return nil, nil, rikiki.ErrPlayerNotFound
	}

	if err := g.Start(); err != nil {
		return nil, nil, err
	}

	players := g.Players()
	ids := make([]string, len(players))
	for i, player := range players {
		ids[i] = player.ID
	}

	return &StartResult{Started: true}, ids, nil
}

func drawCard(g *rikiki.Game, playerID string, _ protocol.AdditionalData) (interface{}, []string, error) {
	res, err := g.Draw(playerID)
	return res, nil, err
}

func attemptDiscard(g *rikiki.Game, playerID string, payload protocol.AdditionalData) (interface{}, []string, error) {
	position, err := payload.RequireInt("position")
	if err != nil {
		return nil, nil, err
	}

	res, err := g.AttemptDiscard(playerID, position)
	return res, []string{playerID}, err
}

func replaceCard(g *rikiki.Game, playerID string, payload protocol.AdditionalData) (interface{}, []string, error) {
	position, err := payload.RequireInt("position")
	if err != nil {
		return nil, nil, err
	}

	res, err := g.Replace(playerID, position)
	return res, []string{playerID}, err
}

func keepCard(g *rikiki.Game, playerID string, _ protocol.AdditionalData) (interface{}, []string, error) {
	res, err := g.Keep(playerID)
	return res, []string{playerID}, err
}

func useJack(g *rikiki.Game, playerID string, payload protocol.AdditionalData) (interface{}, []string, error) {
	target, err := payload.RequireString("target_player_id")
	if err != nil {
		return nil, nil, err
	}

	position, err := payload.RequireInt("position")
	if err != nil {
		return nil, nil, err
	}

	res, err := g.UseJack(playerID, target, position)
	return res, []string{playerID}, err
}

func useQueen(g *rikiki.Game, playerID string, payload protocol.AdditionalData) (interface{}, []string, error) {
	playerA, err := payload.RequireString("player_a_id")
	if err != nil {
		return nil, nil, err
	}

	posA, err := payload.RequireInt("pos_a")
	if err != nil {
		return nil, nil, err
	}

	playerB, err := payload.RequireString("player_b_id")
	if err != nil {
		return nil, nil, err
	}

	posB, err := payload.RequireInt("pos_b")
	if err != nil {
		return nil, nil, err
	}

	res, err := g.UseQueen(playerID, playerA, posA, playerB, posB)
	return res, []string{playerA, playerB}, err
}

func useKingPeek(g *rikiki.Game, playerID string, payload protocol.AdditionalData) (interface{}, []string, error) {
	target, err := payload.RequireString("target_player_id")
	if err != nil {
		return nil, nil, err
	}

	position, err := payload.RequireInt("position")
	if err != nil {
		return nil, nil, err
	}

	res, err := g.UseKingPeek(playerID, target, position)
	return res, nil, err
}

func useKingSwap(g *rikiki.Game, playerID string, payload protocol.AdditionalData) (interface{}, []string, error) {
	other, err := payload.RequireString("other_player_id")
	if err != nil {
		return nil, nil, err
	}

	otherPosition, err := payload.RequireInt("other_position")
	if err != nil {
		return nil, nil, err
	}

	affected := []string{other}
	if peek, ok := g.Pending().(*rikiki.KingPeek); ok {
		affected = append(affected, peek.PeekedPlayerID)
	}

	res, err := g.UseKingSwap(playerID, other, otherPosition)
	return res, affected, err
}

func callRikiki(g *rikiki.Game, playerID string, _ protocol.AdditionalData) (interface{}, []string, error) {
	res, err := g.CallRikiki(playerID)
	return res, nil, err
}
