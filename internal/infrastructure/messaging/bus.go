// Package messaging delivers cross-window messages from popup windows to
// the listeners waiting on them.
package messaging

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/oneuniverse/onboard/internal/application/port"
)

// Bus is the process-wide cross-window message channel. Every message is
// delivered to every registered listener; filtering by origin and state is
// the listener's job.
type Bus struct {
	logger    zerolog.Logger
	mu        sync.RWMutex
	listeners map[uint64]port.MessageHandler
	nextID    uint64
}

// NewBus creates an empty bus.
func NewBus(logger zerolog.Logger) *Bus {
	return &Bus{
		logger:    logger.With().Str("component", "message-bus").Logger(),
		listeners: make(map[uint64]port.MessageHandler),
	}
}

// Listen registers a handler and returns the func that removes it.
// The remove func is idempotent.
func (b *Bus) Listen(handler port.MessageHandler) (remove func()) {
	if handler == nil {
		return func() {}
	}

	id := atomic.AddUint64(&b.nextID, 1)

	b.mu.Lock()
	b.listeners[id] = handler
	active := len(b.listeners)
	b.mu.Unlock()

	b.logger.Debug().Uint64("listener", id).Int("active", active).Msg("message listener added")

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.listeners, id)
			active := len(b.listeners)
			b.mu.Unlock()

			b.logger.Debug().Uint64("listener", id).Int("active", active).Msg("message listener removed")
		})
	}
}

// Post delivers msg to every listener registered at the time of the call.
// Handlers run on the caller's goroutine, outside the bus lock, so a handler
// may remove itself.
func (b *Bus) Post(msg port.Message) int {
	b.mu.RLock()
	handlers := make([]port.MessageHandler, 0, len(b.listeners))
	for _, h := range b.listeners {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	b.logger.Debug().
		Str("origin", msg.Origin).
		Str("type", string(msg.Type)).
		Int("listeners", len(handlers)).
		Msg("posting message")

	for _, h := range handlers {
		h(msg)
	}
	return len(handlers)
}

// ActiveListeners returns the number of registered listeners.
func (b *Bus) ActiveListeners() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners)
}

// Shutdown removes every listener.
func (b *Bus) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.listeners)
}
