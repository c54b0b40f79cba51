package bus

import "time"

// AnyType subscribes a handler to every event type.
const AnyType = "*"

// EventBus is an in-process pub/sub bus for table events.
//
// Delivery is synchronous in the publisher's goroutine, in subscription order.
// Handler errors are joined and returned from Publish; every handler runs
// regardless of earlier failures.
type EventBus interface {
	// Publish delivers event to the subscribers of event.Type() and of AnyType.
	Publish(event Event) error
	// PublishWithFilters drops event silently when any filter rejects it.
	PublishWithFilters(event Event, filters ...EventFilter) error
	// PublishBatch publishes events in order and joins their errors.
	PublishBatch(events ...Event) error

	// Subscribe registers handler for eventType, or for everything with AnyType.
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	// Unsubscribe cancels sub. It is safe to call with nil.
	Unsubscribe(sub Subscription) error

	GetMetrics() Metrics
}

// Event is an immutable notification about the table.
type Event interface {
	Type() string
	Source() string
	Timestamp() time.Time
	Data() any
}

type (
	EventHandler func(event Event) error
	EventFilter  func(event Event) bool
)

// Subscription is a registered handler. Cancel stops delivery; repeated calls are safe.
type Subscription interface {
	ID() string
	EventType() string
	IsActive() bool
	Cancel() error
}

// Metrics are plain counters since the bus was created.
type Metrics struct {
	Published         uint64
	DeliveredHandlers uint64
	Errors            uint64
	DroppedByFilters  uint64
	SubscribersActive uint64
}
