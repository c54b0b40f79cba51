package bus

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

type simpleEvent struct {
	typeStr string
	source  string
	ts      time.Time
	data    any
}

func (e simpleEvent) Type() string         { return e.typeStr }
func (e simpleEvent) Source() string       { return e.source }
func (e simpleEvent) Timestamp() time.Time { return e.ts }
func (e simpleEvent) Data() any            { return e.data }

// NewEvent creates an Event stamped with the current time.
func NewEvent(typ, src string, data any) Event {
	return simpleEvent{typeStr: typ, source: src, ts: time.Now(), data: data}
}

type subscription struct {
	id        string
	eventType string
	handler   EventHandler
	// guards active; shared with the owning bus
	mu     *sync.Mutex
	active bool
	cancel func()
}

func (s *subscription) ID() string        { return s.id }
func (s *subscription) EventType() string { return s.eventType }
func (s *subscription) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *subscription) Cancel() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

var _ EventBus = (*inMemoryBus)(nil)

type inMemoryBus struct {
	mu sync.Mutex
	// eventType -> subscriptions in registration order
	handlers map[string][]*subscription
	metrics  Metrics
}

// New creates an empty bus.
func New() EventBus {
	return &inMemoryBus{handlers: make(map[string][]*subscription)}
}

func (b *inMemoryBus) Publish(event Event) error {
	b.mu.Lock()
	subs := make([]*subscription, 0, len(b.handlers[event.Type()])+len(b.handlers[AnyType]))
	subs = append(subs, b.handlers[event.Type()]...)
	if event.Type() != AnyType {
		subs = append(subs, b.handlers[AnyType]...)
	}
	b.metrics.Published++
	b.mu.Unlock()

	var all error
	delivered := uint64(0)
	for _, s := range subs {
		// a handler earlier in the list may have cancelled s
		if !s.IsActive() {
			continue
		}
		delivered++
		if err := s.handler(event); err != nil {
			all = errors.Join(all, err)
		}
	}

	b.mu.Lock()
	b.metrics.DeliveredHandlers += delivered
	if all != nil {
		b.metrics.Errors++
	}
	b.mu.Unlock()
	return all
}

func (b *inMemoryBus) PublishWithFilters(event Event, filters ...EventFilter) error {
	for _, f := range filters {
		if !f(event) {
			b.mu.Lock()
			b.metrics.DroppedByFilters++
			b.mu.Unlock()
			return nil
		}
	}
	return b.Publish(event)
}

func (b *inMemoryBus) PublishBatch(events ...Event) error {
	var all error
	for _, e := range events {
		if err := b.Publish(e); err != nil {
			all = errors.Join(all, err)
		}
	}
	return all
}

func (b *inMemoryBus) Subscribe(eventType string, handler EventHandler) (Subscription, error) {
	if handler == nil {
		return nil, errors.New("nil event handler")
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	s := &subscription{id: uuid.NewString(), eventType: eventType, handler: handler, mu: &b.mu, active: true}
	s.cancel = func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if !s.active {
			return
		}
		s.active = false
		list := b.handlers[eventType]
		for i, other := range list {
			if other == s {
				b.handlers[eventType] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
		b.metrics.SubscribersActive--
	}
	b.handlers[eventType] = append(b.handlers[eventType], s)
	b.metrics.SubscribersActive++
	return s, nil
}

func (b *inMemoryBus) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return nil
	}
	return sub.Cancel()
}

func (b *inMemoryBus) GetMetrics() Metrics {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.metrics
}
