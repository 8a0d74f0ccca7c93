package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/lox/pokerhands/internal/evaluator"
	"github.com/lox/pokerhands/internal/game"
	"github.com/lox/pokerhands/internal/randutil"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

var (
	ErrConnectionClosed = websocket.ErrCloseSent
)

// Connection represents a WebSocket connection to a client
type Connection struct {
	conn      *websocket.Conn
	send      chan *Message
	server    *Server
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection creates a new connection wrapper
func NewConnection(conn *websocket.Conn, server *Server) *Connection {
	ctx, cancel := context.WithCancel(server.ctx)

	return &Connection{
		conn:   conn,
		send:   make(chan *Message, 16),
		server: server,
		logger: server.logger.WithPrefix("conn").With("remote", conn.RemoteAddr().String()),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Done is closed once the connection has shut down
func (c *Connection) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		err = c.conn.Close()
	})
	return err
}

// SendMessage queues a message for the client
func (c *Connection) SendMessage(msg *Message) error {
	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return ErrConnectionClosed
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close() // Ignore close errors
		return ErrConnectionClosed
	}
}

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }() // Ignore close errors during cleanup

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
				c.sendError(msg.RequestID, ErrCodeInvalidMessage, "Malformed JSON")
				continue
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			return
		}

		c.handleMessage(&msg)
	}
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Close() // Ignore close errors during cleanup
	}()

	for {
		select {
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// handleMessage processes incoming messages from the client
func (c *Connection) handleMessage(msg *Message) {
	c.logger.Debug("Received message", "type", msg.Type, "requestId", msg.RequestID)

	switch msg.Type {
	case MessageTypeDeal:
		var data DealData
		if len(msg.Data) > 0 {
			if err := json.Unmarshal(msg.Data, &data); err != nil {
				c.sendError(msg.RequestID, ErrCodeInvalidMessage, "Failed to parse deal data")
				return
			}
		}
		c.handleDeal(msg.RequestID, data)

	case MessageTypeClassify:
		var data ClassifyData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(msg.RequestID, ErrCodeInvalidMessage, "Failed to parse classify data")
			return
		}
		c.handleClassify(msg.RequestID, data)

	case MessageTypeSelfTest:
		hands, err := evaluator.SelfTest()
		if err != nil {
			c.sendError(msg.RequestID, ErrCodeInternal, err.Error())
			return
		}
		c.sendClassification(msg.RequestID, hands)

	default:
		c.sendError(msg.RequestID, ErrCodeUnknownType, "Unknown message type: "+msg.Type.String())
	}
}

func (c *Connection) handleDeal(requestID string, data DealData) {
	defaults := c.server.config
	if data.CardsPerHand == 0 {
		data.CardsPerHand = defaults.CardsPerHand
	}
	if data.Players == 0 {
		data.Players = defaults.Players
	}
	seed := randutil.Seed(c.server.clock, data.Seed)

	round, err := game.Play(randutil.New(seed), data.CardsPerHand, data.Players,
		game.WithSeed(seed), game.WithLogger(c.logger))
	if err != nil {
		code := ErrCodeInternal
		if errors.Is(err, game.ErrInvalidInput) {
			code = ErrCodeInvalidInput
		}
		c.sendError(requestID, code, err.Error())
		return
	}

	c.reply(requestID, MessageTypeRound, RoundData{Round: round})
}

func (c *Connection) handleClassify(requestID string, data ClassifyData) {
	if len(data.Hands) == 0 {
		c.sendError(requestID, ErrCodeInvalidInput, "No hands given")
		return
	}

	hands := make([]evaluator.Hand, len(data.Hands))
	for i, s := range data.Hands {
		h, err := evaluator.ParseHand(s)
		if err != nil {
			c.sendError(requestID, ErrCodeInvalidInput, err.Error())
			return
		}
		hands[i] = h
	}
	if err := evaluator.ClassifyConcurrent(c.ctx, hands, 0); err != nil {
		c.sendError(requestID, ErrCodeInternal, err.Error())
		return
	}
	c.sendClassification(requestID, hands)
}

func (c *Connection) sendClassification(requestID string, hands []evaluator.Hand) {
	c.reply(requestID, MessageTypeClassification, ClassificationData{
		Hands:   hands,
		Best:    evaluator.Best(hands),
		Winners: evaluator.Winners(hands),
	})
}

// sendError sends an error message to the client
func (c *Connection) sendError(requestID, code, message string) {
	c.logger.Debug("Rejecting request", "code", code, "message", message)
	c.reply(requestID, MessageTypeError, ErrorData{Code: code, Message: message})
}

func (c *Connection) reply(requestID string, messageType MessageType, data any) {
	msg, err := NewMessage(messageType, data, c.server.clock.Now())
	if err != nil {
		c.logger.Error("Failed to create message", "type", messageType, "error", err)
		return
	}
	msg.RequestID = requestID
	if err := c.SendMessage(msg); err != nil {
		c.logger.Debug("Dropped message", "type", messageType, "error", err)
	}
}
