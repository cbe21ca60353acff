package eventbus

import (
	"log/slog"
	"runtime/debug"
	"sync"

	"statustable/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventStatusChanged    = domain.EventStatusChanged
	EventSelectionChanged = domain.EventSelectionChanged
	EventFindingsLoaded   = domain.EventFindingsLoaded
	EventError            = domain.EventError
)

// Re-export domain event types
type StatusChangedEvent = domain.StatusChangedEvent
type SelectionChangedEvent = domain.SelectionChangedEvent
type FindingsLoadedEvent = domain.FindingsLoadedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	logger    *slog.Logger
}

// New creates a new event bus
func New(logger *slog.Logger) EventBus {
	if logger == nil {
		logger = slog.Default()
	}
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
		logger:    logger,
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers. Events are dropped when the
// queue is full or the bus is closed.
func (b *bus) Publish(event DomainEvent) {
	b.logger.Debug("publishing event", "type", event.Type())

	select {
	case <-b.quit:
		b.logger.Warn("event bus closed, dropping event", "type", event.Type())
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		b.logger.Warn("event bus channel full, dropping event", "type", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops dispatching and waits for the dispatcher to exit.
// Queued events that were not delivered yet are discarded.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			// copy so handlers run without the lock
			handlers := make([]EventHandler, len(subs))
			for i, s := range subs {
				handlers[i] = s.handler
			}
			b.mu.RUnlock()

			for _, handler := range handlers {
				b.invoke(handler, event)
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

// invoke runs a handler, recovering from panics so one bad subscriber
// does not stop delivery
func (b *bus) invoke(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panic",
				"type", event.Type(),
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	h(event)
}
