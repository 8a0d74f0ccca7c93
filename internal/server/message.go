package server

import (
	"encoding/json"
	"time"

	"github.com/lox/pokerhands/internal/evaluator"
	"github.com/lox/pokerhands/internal/game"
)

// MessageType identifies the payload carried by a Message
type MessageType string

// Client → Server
const (
	MessageTypeDeal     MessageType = "deal"
	MessageTypeClassify MessageType = "classify"
	MessageTypeSelfTest MessageType = "selftest"
)

// Server → Client
const (
	MessageTypeRound          MessageType = "round"
	MessageTypeClassification MessageType = "classification"
	MessageTypeError          MessageType = "error"
)

func (t MessageType) String() string {
	return string(t)
}

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a new message stamped with now
func NewMessage(messageType MessageType, data any, now time.Time) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: now,
	}, nil
}

// DealData requests one round. Zero values fall back to the server defaults;
// a zero seed draws one from the clock.
type DealData struct {
	CardsPerHand int   `json:"cardsPerHand,omitempty"`
	Players      int   `json:"players,omitempty"`
	Seed         int64 `json:"seed,omitempty"`
}

// ClassifyData requests classification of hands in card notation
type ClassifyData struct {
	Hands []string `json:"hands"`
}

// RoundData is the reply to a deal request
type RoundData struct {
	Round *game.Round `json:"round"`
}

// ClassificationData is the reply to classify and selftest requests
type ClassificationData struct {
	Hands   []evaluator.Hand   `json:"hands"`
	Best    evaluator.Category `json:"best"`
	Winners []int              `json:"winners"`
}

// ErrorData describes a rejected request
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes
const (
	ErrCodeInvalidMessage = "invalid_message"
	ErrCodeInvalidInput   = "invalid_input"
	ErrCodeUnknownType    = "unknown_message_type"
	ErrCodeInternal       = "internal_error"
)
