package room

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/itaross/rikiki-be/internal/rng"
	"github.com/itaross/rikiki-be/internal/util"
	"github.com/itaross/rikiki-be/pkg/archive"
	"github.com/itaross/rikiki-be/pkg/protocol"
	"github.com/itaross/rikiki-be/pkg/rikiki"
	"github.com/sirupsen/logrus"
)

// ErrTooManyRooms is returned when the registry is at capacity
var ErrTooManyRooms = errors.New("too many rooms, try again later")

// errNoUniqueCode is returned when no free room code could be found
var errNoUniqueCode = errors.New("could not generate a unique room code")

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// maxCodeAttempts bounds the search for an unused room code
const maxCodeAttempts = 100

// Options configure the PitBoss
type Options struct {
	// CodeLength is the number of letters in a room code
	CodeLength int
	// IdleTimeout is how long a room with nobody connected is kept
	IdleTimeout time.Duration
	// SweepInterval is how often idle rooms are looked for
	SweepInterval time.Duration
	// MaxRooms is the number of live rooms allowed, 0 for no limit
	MaxRooms int
	// RevealDuration is passed to every new game
	RevealDuration time.Duration
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		CodeLength:     4,
		IdleTimeout:    time.Minute * 30,
		SweepInterval:  time.Minute,
		MaxRooms:       1000,
		RevealDuration: time.Second * 5,
	}
}

// PitBoss is the registry of live rooms
type PitBoss struct {
	options  Options
	recorder archive.Recorder
	rng      rng.Generator

	dealers map[string]*Dealer
	lock    sync.RWMutex

	close     chan bool
	closeOnce sync.Once
	now       func() time.Time
}

// NewPitBoss returns a new registry
// recorder may be nil if finished games should not be archived.
func NewPitBoss(opts Options, recorder archive.Recorder) *PitBoss {
	return &PitBoss{
		options:  opts,
		recorder: recorder,
		rng:      rng.Crypto{},
		dealers:  make(map[string]*Dealer),
		close:    make(chan bool),
		now:      time.Now,
	}
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

// EndShift stops the run loop and every dealer
func (p *PitBoss) EndShift() {
	p.closeOnce.Do(func() {
		close(p.close)
	})

	p.lock.Lock()
	defer p.lock.Unlock()

	for code, dealer := range p.dealers {
		dealer.EndShift()
		delete(p.dealers, code)
	}
}

func (p *PitBoss) runLoop() {
	interval := p.options.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.evictIdle()
		case <-p.close:
			return
		}
	}
}

// evictIdle removes rooms nobody is connected to that have not been used within the idle timeout
func (p *PitBoss) evictIdle() {
	if p.options.IdleTimeout <= 0 {
		return
	}

	p.lock.RLock()
	dealers := make([]*Dealer, 0, len(p.dealers))
	for _, dealer := range p.dealers {
		dealers = append(dealers, dealer)
	}
	p.lock.RUnlock()

	now := p.now()
	for _, dealer := range dealers {
		connected, lastActivity, err := dealer.idle()
		if err != nil {
			continue
		}

		if connected == 0 && now.Sub(lastActivity) > p.options.IdleTimeout {
			logrus.WithField("room", dealer.Code()).Info("evicting idle room")
			p.Evict(dealer.Code())
		}
	}
}

// Create makes a new room with a fresh code
func (p *PitBoss) Create(seed *int64) (*Dealer, error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.options.MaxRooms > 0 && len(p.dealers) >= p.options.MaxRooms {
		return nil, ErrTooManyRooms
	}

	code, err := p.newCode()
	if err != nil {
		return nil, err
	}

	dealer := NewDealer(code, rikiki.Options{
		Seed:           seed,
		RevealDuration: p.options.RevealDuration,
	}, p.recorder)
	dealer.StartShift()
	p.dealers[code] = dealer

	logrus.WithField("room", code).WithField("rooms", len(p.dealers)).Info("room created")
	return dealer, nil
}

// NOTE: p.lock must be held
func (p *PitBoss) newCode() (string, error) {
	length := p.options.CodeLength
	if length <= 0 {
		length = DefaultOptions().CodeLength
	}

	for i := 0; i < maxCodeAttempts; i++ {
		code := rng.Letters(p.rng, codeAlphabet, length)
		if _, found := p.dealers[code]; !found {
			return code, nil
		}
	}

	return "", errNoUniqueCode
}

// Lookup returns the room with the code
// The code is not case-sensitive.
func (p *PitBoss) Lookup(code string) (*Dealer, bool) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	dealer, found := p.dealers[normalizeCode(code)]
	return dealer, found
}

// Evict stops the room and forgets it
// Returns false if there was no such room.
func (p *PitBoss) Evict(code string) bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	code = normalizeCode(code)
	dealer, found := p.dealers[code]
	if !found {
		return false
	}

	dealer.EndShift()
	delete(p.dealers, code)
	return true
}

// Len returns the number of live rooms
func (p *PitBoss) Len() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return len(p.dealers)
}

// Join handles a join_room intent
// An empty room_code creates a room. Missing player_id or name are generated.
func (p *PitBoss) Join(c *Client, payload protocol.AdditionalData) {
	log := logrus.WithField("client", c.String())

	if c.Dealer() != nil {
		c.Send(protocol.NewErrorMessageResponse(errAlreadyInRoom))
		return
	}

	seed, err := payload.GetOptionalInt64("seed")
	if err != nil {
		c.Send(newErrorResponse(log, err))
		return
	}

	code, _ := payload.GetString("room_code")
	var dealer *Dealer
	if normalizeCode(code) == "" {
		dealer, err = p.Create(seed)
		if err != nil {
			c.Send(newErrorResponse(log, err))
			return
		}
	} else {
		var found bool
		if dealer, found = p.Lookup(code); !found {
			c.Send(protocol.NewErrorMessageResponse(errRoomNotFound))
			return
		}
	}

	playerID, _ := payload.GetString("player_id")
	if playerID = strings.TrimSpace(playerID); playerID == "" {
		playerID = util.NewPlayerID()
	}

	name, _ := payload.GetString("name")
	if name = strings.TrimSpace(name); name == "" {
		name = util.GetRandomName()
	}

	if err := dealer.Join(c, playerID, name); err != nil {
		if errors.Is(err, ErrDealerClosed) {
			c.Send(protocol.NewErrorMessageResponse(errRoomNotFound))
			return
		}

		// rule violations were already sent by the dealer
		log.WithError(err).Debug("could not join room")
		return
	}

	log.WithField("room", dealer.Code()).WithField("playerID", playerID).Debug("client joined")
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	logrus.WithField("client", client.String()).Debug("client disconnected")

	dealer := client.Dealer()
	if dealer == nil {
		return
	}

	dealer.RemoveClient(client)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
