package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a front end connected to a table via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	table *Table
}

// NewClient returns a new client for the given table
func NewClient(conn *websocket.Conn, table *Table) *Client {
	return &Client{
		send:  make(chan interface{}, 256),
		Close: make(chan string),
		Conn:  conn,
		table: table,
	}
}

// Send sends a message to the web client.
// Returns false if the client's buffer is full
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of outgoing messages
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the connection and table
func (c *Client) String() string {
	if c.Conn == nil {
		return fmt.Sprintf("-:%s", c.table.UUID)
	}

	return fmt.Sprintf("%s:%s", c.Conn.RemoteAddr(), c.table.UUID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if c.table == nil {
		logrus.WithField("msg", msg).Warn("received message, but table not found")
		return
	}

	c.table.ReceivedMessage(c, msg)
}
