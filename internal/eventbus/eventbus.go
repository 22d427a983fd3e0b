package eventbus

import (
	"context"
	"reflect"
	"sync"
)

// Handler processes events of type T.
type Handler[T any] func(context.Context, T)

// Bus is a simple in-process event dispatcher. A nil *Bus drops every event.
type Bus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[reflect.Type][]subscription
}

type subscription struct {
	id uint64
	fn func(context.Context, any)
}

// New creates a new Bus.
func New() *Bus { return &Bus{handlers: make(map[reflect.Type][]subscription)} }

func (b *Bus) subscribe(t reflect.Type, fn func(context.Context, any)) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.handlers[t] = append(b.handlers[t], subscription{id: id, fn: fn})
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		hs := b.handlers[t]
		for i, s := range hs {
			if s.id == id {
				hs = append(hs[:i:i], hs[i+1:]...)
				break
			}
		}
		if len(hs) == 0 {
			delete(b.handlers, t)
		} else {
			b.handlers[t] = hs
		}
	}
}

// emit dispatches e to all handlers of its dynamic type, in subscription order.
func (b *Bus) emit(ctx context.Context, t reflect.Type, e any) {
	b.mu.RLock()
	hs := b.handlers[t]
	if len(hs) == 0 {
		b.mu.RUnlock()
		return
	}
	copied := append([]subscription(nil), hs...)
	b.mu.RUnlock()
	for _, s := range copied {
		s.fn(ctx, e)
	}
}

// Subscribe registers h for events of type T on b.
func Subscribe[T any](b *Bus, h Handler[T]) (unsubscribe func()) {
	if b == nil {
		return func() {}
	}
	t := reflect.TypeOf((*T)(nil)).Elem()
	return b.subscribe(t, func(ctx context.Context, v any) { h(ctx, v.(T)) })
}

// Publish sends e to the handlers subscribed to T on b.
func Publish[T any](ctx context.Context, b *Bus, e T) {
	if b == nil {
		return
	}
	b.emit(ctx, reflect.TypeOf((*T)(nil)).Elem(), e)
}
