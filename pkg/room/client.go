package room

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/itaross/rikiki-be/pkg/protocol"
	"github.com/sirupsen/logrus"
)

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	id      string
	pitBoss *PitBoss

	lock     sync.RWMutex
	dealer   *Dealer
	playerID string
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, pitBoss *PitBoss) *Client {
	return &Client{
		send:    make(chan interface{}, 256),
		Close:   make(chan string, 1),
		Conn:    conn,
		id:      uuid.New().String()[:8],
		pitBoss: pitBoss,
	}
}

// Send send a message to the web client
// Returns false if the client's buffer is full and the message was dropped.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		logrus.WithField("client", c.String()).Warn("send buffer full, dropping message")
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the connection and its seat
func (c *Client) String() string {
	dealer, playerID := c.seat()
	if dealer == nil {
		return c.id
	}

	return fmt.Sprintf("%s:%s:%s", c.id, dealer.Code(), playerID)
}

// PlayerID returns the seat the client joined, or an empty string
func (c *Client) PlayerID() string {
	_, playerID := c.seat()
	return playerID
}

// Dealer returns the room the client joined, or nil
func (c *Client) Dealer() *Dealer {
	dealer, _ := c.seat()
	return dealer
}

func (c *Client) seat() (*Dealer, string) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.dealer, c.playerID
}

func (c *Client) setSeat(dealer *Dealer, playerID string) {
	c.lock.Lock()
	c.dealer = dealer
	c.playerID = playerID
	c.lock.Unlock()
}

// closeWithReason asks the write loop to close the connection
func (c *Client) closeWithReason(reason string) {
	select {
	case c.Close <- reason:
	default:
	}
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *protocol.PayloadIn) {
	if msg.Action == protocol.ActionJoinRoom {
		c.pitBoss.Join(c, msg.Payload)
		return
	}

	dealer := c.Dealer()
	if dealer == nil {
		c.Send(protocol.NewErrorMessageResponse(errNotInRoom))
		return
	}

	dealer.ReceivedMessage(c, msg)
}
