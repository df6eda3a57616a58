package event

import (
	"context"
	"sync"

	"jobboard-backend/internal/logger"
)

// Handler receives every published event. A handler that returns an error gets
// the error logged; it never reaches the publisher.
type Handler interface {
	Name() string
	Handle(ctx context.Context, evt Event) error
}

// Bus is a synchronous in-process fan-out. Publish runs handlers inline so a
// handler's durable side effects (notification rows) land before the HTTP
// response, but their failures stay on the side channel.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string]Handler)}
}

func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[h.Name()] = h
	logger.Info("Event handler subscribed", "handler", h.Name())
}

func (b *Bus) Unsubscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.handlers, h.Name())
}

func (b *Bus) Publish(ctx context.Context, evt Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		if err := h.Handle(ctx, evt); err != nil {
			logger.Error("Event handler failed", "handler", h.Name(), "event", evt.Name(), "error", err)
		}
	}
}
