package room

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/itaross/rikiki-be/pkg/archive"
	"github.com/itaross/rikiki-be/pkg/protocol"
	"github.com/itaross/rikiki-be/pkg/rikiki"
	"github.com/sirupsen/logrus"
)

// ErrDealerClosed is returned when work is sent to a room that has been evicted
var ErrDealerClosed = errors.New("room is closed")

// errPanic is returned by exec when the function panicked
var errPanic = errors.New("recovered from panic")

const archiveTimeout = time.Second * 10

// Dealer owns one room
// Every read and write of the game happens inside the dealer's run loop, one
// function at a time. Messages are delivered after the function returns.
type Dealer struct {
	code     string
	game     *rikiki.Game
	recorder archive.Recorder
	logger   logrus.FieldLogger

	// clients maps a player ID to the connection currently holding the seat
	// NOTE: must only be accessed from the run loop
	clients      map[string]*Client
	lastActivity time.Time
	archived     bool

	execInRunLoop chan func()
	close         chan bool
	closeOnce     sync.Once
	now           func() time.Time
}

// NewDealer creates a new dealer object
func NewDealer(code string, opts rikiki.Options, recorder archive.Recorder) *Dealer {
	logger := logrus.WithField("room", code)

	return &Dealer{
		code:          code,
		game:          rikiki.NewGame(logger, code, opts),
		recorder:      recorder,
		logger:        logger,
		clients:       make(map[string]*Client),
		lastActivity:  time.Now(),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
		now:           time.Now,
	}
}

// Code returns the room code
func (d *Dealer) Code() string {
	return d.code
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)
	})
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// exec runs fn in the run loop and waits for it to finish
// Anything fn writes must not be read if exec returns ErrDealerClosed.
func (d *Dealer) exec(fn func()) error {
	done := make(chan bool)
	var panicked bool

	wrapped := func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				panicked = true
				d.logger.WithField("panic", r).Error("recovered from panic in run loop")
			}
		}()

		fn()
	}

	select {
	case <-d.close:
		return ErrDealerClosed
	default:
	}

	select {
	case d.execInRunLoop <- wrapped:
	case <-d.close:
		return ErrDealerClosed
	}

	select {
	case <-done:
	case <-d.close:
		return ErrDealerClosed
	}

	if panicked {
		return errPanic
	}

	return nil
}

// Join seats the client, or reconnects it to its existing seat
func (d *Dealer) Join(c *Client, playerID, name string) error {
	var out outbox
	var joinErr error

	err := d.exec(func() {
		player, err := d.game.AddPlayer(playerID, name)
		if err != nil {
			joinErr = err
			return
		}

		if old, ok := d.clients[playerID]; ok && old != c {
			d.logger.WithField("client", old.String()).Debug("seat taken over by a new connection")
			old.setSeat(nil, "")
			old.closeWithReason(closeSeatTakenOver)
		}

		d.clients[playerID] = c
		d.lastActivity = d.now()
		c.setSeat(d, playerID)

		out.add(c, protocol.NewResponse(protocol.TypeJoined, &JoinedMessage{
			RoomCode: d.code,
			PlayerID: player.ID,
			Name:     player.Name,
		}))

		d.broadcastPublicState(&out)

		if d.game.Phase() != rikiki.PhaseLobby {
			d.addPrivateState(&out, playerID)
		}

		if result := d.game.Result(); result != nil {
			out.add(c, protocol.NewResponse(protocol.TypeGameEnd, result))
		}
	})

	if err != nil {
		if !errors.Is(err, ErrDealerClosed) {
			c.Send(newErrorResponse(d.logger, err))
		}

		return err
	}

	if joinErr != nil {
		c.Send(newErrorResponse(d.logger, joinErr))
		return joinErr
	}

	out.deliver()
	return nil
}

// RemoveClient marks the client's seat as disconnected
// Nothing happens if another connection has taken over the seat since.
func (d *Dealer) RemoveClient(c *Client) {
	var out outbox
	playerID := c.PlayerID()

	err := d.exec(func() {
		if d.clients[playerID] != c {
			return
		}

		delete(d.clients, playerID)
		d.lastActivity = d.now()
		if err := d.game.SetConnected(playerID, false); err != nil {
			d.logger.WithError(err).WithField("playerID", playerID).Error("could not disconnect player")
			return
		}

		d.broadcastPublicState(&out)
	})

	if err != nil {
		if !errors.Is(err, ErrDealerClosed) {
			d.logger.WithError(err).Error("could not remove client")
		}

		return
	}

	out.deliver()
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *protocol.PayloadIn) {
	handler, ok := intents[msg.Action]
	if !ok {
		c.Send(protocol.NewErrorResponse(fmt.Errorf("%w: %s", protocol.ErrUnknownAction, msg.Action)))
		return
	}

	log := d.logger.WithField("client", c.String()).WithField("action", msg.Action)

	var out outbox
	var record *archive.Record
	err := d.exec(func() {
		record = d.handle(&out, c, msg.Action, handler, msg.Payload)
	})

	if err != nil {
		if errors.Is(err, ErrDealerClosed) {
			c.Send(protocol.NewErrorMessageResponse(errRoomNotFound))
			return
		}

		c.Send(newErrorResponse(log, err))
		return
	}

	out.deliver()

	if record != nil {
		go d.recordGame(record)
	}
}

// handle performs the intent and queues the resulting messages
// Returns a record to archive if this intent ended the game.
// NOTE: must only be called from the run loop
func (d *Dealer) handle(out *outbox, c *Client, action string, handler intentHandler, payload protocol.AdditionalData) *archive.Record {
	playerID := c.PlayerID()
	log := d.logger.WithField("playerID", playerID).WithField("action", action)
	d.lastActivity = d.now()

	result, affected, err := handler(d.game, playerID, payload)
	if err != nil {
		log.WithError(err).Debug("action rejected")
		out.add(c, newErrorResponse(log, err))
		return nil
	}

	res, err := protocol.NewActionResult(action, result)
	if err != nil {
		// the game has already changed, so everyone still gets the new state
		out.add(c, newErrorResponse(log, err))
	} else {
		out.add(c, res)
	}

	seen := make(map[string]bool)
	for _, id := range affected {
		if !seen[id] {
			seen[id] = true
			d.addPrivateState(out, id)
		}
	}

	d.broadcastPublicState(out)

	if d.game.Phase() != rikiki.PhaseEnded || d.archived {
		return nil
	}

	d.archived = true
	d.broadcast(out, protocol.NewResponse(protocol.TypeGameEnd, d.game.Result()))

	record, err := archive.NewRecord(d.game, d.now())
	if err != nil {
		log.WithError(err).Error("could not create archive record")
		return nil
	}

	return record
}

// PublicState returns the room's public state
func (d *Dealer) PublicState() (*rikiki.GameState, error) {
	var state *rikiki.GameState
	if err := d.exec(func() {
		state = d.game.PublicState()
	}); err != nil {
		return nil, err
	}

	return state, nil
}

// idle returns how many seats are connected and when the room was last used
func (d *Dealer) idle() (int, time.Time, error) {
	var connected int
	var lastActivity time.Time
	if err := d.exec(func() {
		connected = len(d.clients)
		lastActivity = d.lastActivity
	}); err != nil {
		return 0, time.Time{}, err
	}

	return connected, lastActivity, nil
}

func (d *Dealer) recordGame(record *archive.Record) {
	if d.recorder == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
	defer cancel()

	if err := d.recorder.RecordGame(ctx, record); err != nil {
		d.logger.WithError(err).Error("could not archive game")
		return
	}

	d.logger.WithField("gameID", record.ID).Info("game archived")
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcast(out *outbox, msg interface{}) {
	for _, client := range d.clients {
		out.add(client, msg)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcastPublicState(out *outbox) {
	d.broadcast(out, protocol.NewResponse(protocol.TypeGameStatePublic, d.game.PublicState()))
}

// NOTE: must only be called from the run loop
func (d *Dealer) addPrivateState(out *outbox, playerID string) {
	client, ok := d.clients[playerID]
	if !ok {
		return
	}

	state, err := d.game.PrivateState(playerID)
	if err != nil {
		d.logger.WithError(err).WithField("playerID", playerID).Error("could not get private state")
		return
	}

	out.add(client, protocol.NewResponse(protocol.TypePrivateStateUpdate, state))
}
