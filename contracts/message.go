package contracts

import (
	"time"

	"github.com/google/uuid"
)

// Request marks a message that expects a response of type Resp. It is a
// phantom marker: any type satisfies it, and its only job is to bind the
// response type into the dispatch call's signature so the compiler checks
// the request/response pairing at the call site.
type Request[Resp any] interface{}

// Notification marks a message that expects no response. Any type
// satisfies it.
type Notification interface{}

// Shape identifies the execution shape a handler was registered under.
// Registration and resolution both key on (message type, shape), so a
// handler registered for one shape is invisible to dispatches of another.
type Shape int

const (
	// ShapeSync handlers block the caller until they return.
	ShapeSync Shape = iota
	// ShapeAsync handlers return a Future and may complete later.
	ShapeAsync
	// ShapeContext handlers take a context.Context and observe its
	// cancellation cooperatively.
	ShapeContext
	// ShapeStream handlers produce a sequence of values on a channel.
	ShapeStream
)

// String returns the shape name used in errors and log records.
func (s Shape) String() string {
	switch s {
	case ShapeSync:
		return "sync"
	case ShapeAsync:
		return "async"
	case ShapeContext:
		return "context"
	case ShapeStream:
		return "stream"
	default:
		return "unknown"
	}
}

// Message is optional metadata a request or notification may carry. The
// engine and the logging behavior surface the ID and correlation ID of
// messages that implement it; plain structs dispatch identically without.
type Message interface {
	GetID() string
	GetTimestamp() time.Time
	GetCorrelationID() string
	SetCorrelationID(correlationID string)
}

// BaseMessage provides common metadata fields for messages that want them.
type BaseMessage struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	CorrelationID string    `json:"correlationId,omitempty"`
}

// NewBaseMessage creates message metadata with a generated ID and the
// current timestamp.
func NewBaseMessage() BaseMessage {
	return BaseMessage{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC(),
	}
}

// GetID returns the message ID.
func (m BaseMessage) GetID() string {
	return m.ID
}

// GetTimestamp returns the message timestamp.
func (m BaseMessage) GetTimestamp() time.Time {
	return m.Timestamp
}

// GetCorrelationID returns the correlation ID.
func (m BaseMessage) GetCorrelationID() string {
	return m.CorrelationID
}

// SetCorrelationID sets the correlation ID.
func (m *BaseMessage) SetCorrelationID(correlationID string) {
	m.CorrelationID = correlationID
}

// BaseRequest is an embeddable base for request messages that carry
// metadata.
type BaseRequest struct {
	BaseMessage
}

// NewBaseRequest creates request metadata with a generated ID.
func NewBaseRequest() BaseRequest {
	return BaseRequest{BaseMessage: NewBaseMessage()}
}

// BaseNotification is an embeddable base for notification messages that
// carry metadata.
type BaseNotification struct {
	BaseMessage
}

// NewBaseNotification creates notification metadata with a generated ID.
func NewBaseNotification() BaseNotification {
	return BaseNotification{BaseMessage: NewBaseMessage()}
}
