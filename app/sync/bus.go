// Package sync carries the change-notification bus. Every successful
// mutation publishes a table-change event; other open dashboard tabs
// listen on an SSE stream and reload their tables when anything
// arrives. Delivery is best-effort and eventually consistent: no
// ordering across tabs, last writer to the store wins.
package sync

import (
	"bufio"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// keepaliveInterval paces the SSE comment pings that detect dead
// connections between events.
const keepaliveInterval = 15 * time.Second

// Event identifies a mutated table and the action applied to it.
type Event struct {
	Table  string `json:"table"`
	Action string `json:"action"`
}

// Bus is an in-process publish/subscribe hub.
type Bus struct {
	mu          sync.Mutex
	subscribers map[chan Event]struct{}
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{subscribers: make(map[chan Event]struct{})}
}

// Subscribe registers a listener channel. The caller must
// Unsubscribe when done.
func (b *Bus) Subscribe() chan Event {
	ch := make(chan Event, 16)
	b.mu.Lock()
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a listener and closes its channel.
func (b *Bus) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	if _, ok := b.subscribers[ch]; ok {
		delete(b.subscribers, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish fans the event out to every subscriber. Subscribers with a
// full buffer are skipped rather than blocked on; a tab that misses
// an event catches up on its next full reload.
func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// StreamHandler exposes the bus as a server-sent-events endpoint.
func StreamHandler(bus *Bus) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Content-Type", "text/event-stream")
		c.Set("Cache-Control", "no-cache")
		c.Set("Connection", "keep-alive")

		ch := bus.Subscribe()
		c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
			defer bus.Unsubscribe(ch)
			streamEvents(w, ch, keepaliveInterval)
		}))
		return nil
	}
}

// streamEvents writes bus events to one SSE connection until the
// channel closes or a write fails. Idle connections get a periodic
// comment ping; a client that went away fails the ping write, so its
// goroutine and subscription do not linger until the next mutation.
func streamEvents(w *bufio.Writer, ch chan Event, keepalive time.Duration) {
	ticker := time.NewTicker(keepalive)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				return
			}
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	}
}
