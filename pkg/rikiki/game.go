package rikiki

import (
	"fmt"
	"time"

	"github.com/itaross/rikiki-be/pkg/deck"
	"github.com/sirupsen/logrus"
)

// Phase is the lifecycle stage of a room
type Phase string

// phases
const (
	PhaseLobby     Phase = "lobby"
	PhasePlaying   Phase = "playing"
	PhaseLastRound Phase = "last_round"
	PhaseEnded     Phase = "ended"
)

// Game is the authoritative state of one room
// Game is not safe for concurrent use. Every call for a room must be serialised
// by the caller (see room.Dealer).
type Game struct {
	roomCode string
	options  Options

	// players are in join order, which is also turn order
	players    []*Player
	idToPlayer map[string]*Player

	deck     *deck.Deck
	discards []*deck.Card

	phase     Phase
	turnIndex int

	rikikiCallerID string
	// lastRoundRemaining are the seats still owed a turn after a rikiki call
	lastRoundRemaining []string

	pending PendingAction
	log     *ActionLog
	result  *Result

	revealUntil time.Time

	logger logrus.FieldLogger
	now    func() time.Time
}

// NewGame returns an empty room in the lobby
func NewGame(logger logrus.FieldLogger, roomCode string, opts Options) *Game {
	return &Game{
		roomCode:   roomCode,
		options:    opts,
		players:    make([]*Player, 0, MaxPlayers),
		idToPlayer: make(map[string]*Player),
		phase:      PhaseLobby,
		log:        newActionLog(time.Now),
		logger:     logger.WithField("room", roomCode),
		now:        time.Now,
	}
}

// AddPlayer seats a new player, or reconnects an existing one
// New players may only join in the lobby. An existing player may rejoin at any
// time and is marked connected, unless the game has already ended.
func (g *Game) AddPlayer(id, name string) (*Player, error) {
	if player, ok := g.idToPlayer[id]; ok {
		if g.phase != PhaseEnded {
			player.connected = true
		}

		g.logger.WithField("playerID", id).Debug("player rejoined")
		return player, nil
	}

	if g.phase != PhaseLobby {
		return nil, fmt.Errorf("%w: game already started", ErrInvalidState)
	}

	if len(g.players) >= MaxPlayers {
		return nil, ErrRoomFull
	}

	player := NewPlayer(id, name)
	g.players = append(g.players, player)
	g.idToPlayer[id] = player
	g.log.Append(id, ActionPlayerJoined, Details{"name": name})
	g.logger.WithField("playerID", id).Debug("player joined")

	return player, nil
}

// SetConnected flips the player's connectivity flag
// Nothing changes once the game has ended.
func (g *Game) SetConnected(id string, connected bool) error {
	player, ok := g.idToPlayer[id]
	if !ok {
		return ErrPlayerNotFound
	}

	if g.phase == PhaseEnded {
		return nil
	}

	player.connected = connected
	return nil
}

// Start builds the deck, deals to every player and hands the turn to the first seat
func (g *Game) Start() error {
	if g.phase != PhaseLobby {
		return fmt.Errorf("%w: game already started", ErrInvalidState)
	}

	if len(g.players) < MinPlayers {
		return ErrInsufficientPlayers
	}

	g.deck = deck.New(g.options.Seed)
	g.discards = make([]*deck.Card, 0, deck.Size)

	for _, player := range g.players {
		player.newGame()
		for i := 0; i < HandSize; i++ {
			// a short deck leaves the slot empty
			if card, err := g.deck.Draw(); err == nil {
				player.hand[i] = card
			}
		}
	}

	g.phase = PhasePlaying
	g.turnIndex = 0
	g.rikikiCallerID = ""
	g.lastRoundRemaining = nil
	g.pending = nil
	g.result = nil
	g.revealUntil = g.now().Add(g.options.RevealDuration)

	g.log.Append(g.players[0].ID, ActionGameStarted, Details{"seed": g.options.Seed})
	g.logger.WithField("seed", g.deck.Seed()).Debug("game started")

	return nil
}

// RoomCode returns the code of the room
func (g *Game) RoomCode() string {
	return g.roomCode
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.phase
}

// TurnIndex returns the seat whose turn it is
func (g *Game) TurnIndex() int {
	return g.turnIndex
}

// Pending returns the pending action, or nil if no card is in flight
func (g *Game) Pending() PendingAction {
	return g.pending
}

// RikikiCallerID returns the ID of the player who called, or an empty string
func (g *Game) RikikiCallerID() string {
	return g.rikikiCallerID
}

// LastRoundRemaining returns the IDs still owed a final turn, in turn order
func (g *Game) LastRoundRemaining() []string {
	return append([]string{}, g.lastRoundRemaining...)
}

// Player returns the player with the ID, or nil
func (g *Game) Player(id string) *Player {
	return g.idToPlayer[id]
}

// Players returns the players in seat order
func (g *Game) Players() []*Player {
	return append([]*Player{}, g.players...)
}

// CurrentPlayer returns the player whose turn it is, or nil if the room is empty
func (g *Game) CurrentPlayer() *Player {
	if len(g.players) == 0 {
		return nil
	}

	return g.players[g.turnIndex%len(g.players)]
}

// DiscardPile returns a copy of the discard pile, top card last
func (g *Game) DiscardPile() []*deck.Card {
	return append([]*deck.Card{}, g.discards...)
}

// DeckCount returns how many cards are left to draw
func (g *Game) DeckCount() int {
	if g.deck == nil {
		return 0
	}

	return g.deck.CardsLeft()
}

// Log returns every accepted action, oldest first
func (g *Game) Log() []*LogEntry {
	return g.log.Entries()
}

// Result returns the final result, or nil if the game has not ended
func (g *Game) Result() *Result {
	return g.result
}

// Seed returns the seed the room was created with, if any
func (g *Game) Seed() *int64 {
	return g.options.Seed
}

// RevealUntil returns when clients should hide the initial cards
func (g *Game) RevealUntil() time.Time {
	return g.revealUntil
}

// validateTurn returns the acting player if they are allowed to act now
func (g *Game) validateTurn(playerID string) (*Player, error) {
	player, ok := g.idToPlayer[playerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	if g.phase != PhasePlaying && g.phase != PhaseLastRound {
		return nil, fmt.Errorf("%w: game is not in progress", ErrInvalidState)
	}

	if g.CurrentPlayer() != player {
		return nil, ErrNotYourTurn
	}

	return player, nil
}

// advanceTurn is called after every action that ends a turn
// During the last round it may end the game instead.
func (g *Game) advanceTurn() {
	n := len(g.players)
	if n == 0 {
		return
	}

	if g.phase == PhaseLastRound {
		if g.finishLastTurn(g.CurrentPlayer().ID) {
			g.endGame()
			return
		}
	}

	for step := 1; step <= n; step++ {
		index := (g.turnIndex + step) % n
		player := g.players[index]
		if player.connected {
			g.turnIndex = index
			return
		}

		// a disconnected seat forfeits its final turn
		if g.phase == PhaseLastRound && g.finishLastTurn(player.ID) {
			g.endGame()
			return
		}
	}

	// nobody is connected; the turn stays where it is
}

// finishLastTurn removes the player from the last round
// Returns true if nobody is left to play.
func (g *Game) finishLastTurn(playerID string) bool {
	remaining := g.lastRoundRemaining[:0]
	for _, id := range g.lastRoundRemaining {
		if id != playerID {
			remaining = append(remaining, id)
		}
	}

	g.lastRoundRemaining = remaining
	return len(remaining) == 0
}

// occupiedSlot returns the card in the player's slot
func occupiedSlot(player *Player, position int) (*deck.Card, error) {
	if !player.hand.IsValid(position) {
		return nil, ErrInvalidPosition
	}

	card := player.hand[position]
	if card == nil {
		return nil, ErrEmptySlot
	}

	return card, nil
}

// target returns the targeted player, validating the position is in bounds
func (g *Game) target(playerID string, position int) (*Player, error) {
	player, ok := g.idToPlayer[playerID]
	if !ok {
		return nil, ErrTargetNotFound
	}

	if !player.hand.IsValid(position) {
		return nil, ErrInvalidPosition
	}

	return player, nil
}

// discard puts cards on top of the discard pile
func (g *Game) discard(cards ...*deck.Card) {
	g.discards = append(g.discards, cards...)
}
