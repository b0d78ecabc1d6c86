package sync

import (
	"bufio"
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type deadConn struct{}

func (deadConn) Write(p []byte) (int, error) { return 0, errors.New("connection reset") }

func TestBusDeliversToAllSubscribers(t *testing.T) {
	bus := NewBus()
	a := bus.Subscribe()
	b := bus.Subscribe()
	defer bus.Unsubscribe(a)
	defer bus.Unsubscribe(b)

	bus.Publish(Event{Table: "teachers", Action: "update"})

	for _, ch := range []chan Event{a, b} {
		select {
		case got := <-ch:
			assert.Equal(t, "teachers", got.Table)
			assert.Equal(t, "update", got.Action)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestBusSkipsSlowSubscriber(t *testing.T) {
	bus := NewBus()
	slow := bus.Subscribe()
	defer bus.Unsubscribe(slow)

	// Overflow the buffer; Publish must not block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			bus.Publish(Event{Table: "schedules", Action: "create"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}
}

func TestBusUnsubscribeClosesChannel(t *testing.T) {
	bus := NewBus()
	ch := bus.Subscribe()
	bus.Unsubscribe(ch)

	_, open := <-ch
	assert.False(t, open)

	// Double unsubscribe and publishing afterwards must be safe.
	bus.Unsubscribe(ch)
	bus.Publish(Event{Table: "students", Action: "delete"})
}

func TestStreamEventsWritesEventFrames(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	ch := make(chan Event, 1)
	ch <- Event{Table: "teachers", Action: "create"}
	close(ch)

	streamEvents(w, ch, time.Hour)

	assert.Contains(t, buf.String(), `data: {"table":"teachers","action":"create"}`+"\n\n")
}

func TestStreamEventsEndsOnDeadIdleConnection(t *testing.T) {
	bus := NewBus()
	ch := bus.Subscribe()

	// No events are ever published; the keepalive ping must hit the
	// dead connection and end the stream anyway.
	done := make(chan struct{})
	go func() {
		streamEvents(bufio.NewWriter(deadConn{}), ch, time.Millisecond)
		bus.Unsubscribe(ch)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stream did not end after keepalive write failure")
	}
}
