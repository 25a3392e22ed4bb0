package infra

import (
	"sync"

	"github.com/cloudcopper/fixturegen/ports"
	"github.com/cskr/pubsub/v2"
)

type EventBus struct {
	bus *pubsub.PubSub[ports.Topic, ports.Event]
	mu  sync.Mutex
	chs map[chan ports.Event]chan ports.Event
}

func NewEventBus() *EventBus {
	bus := &EventBus{
		bus: pubsub.New[ports.Topic, ports.Event](1),
		chs: make(map[chan ports.Event]chan ports.Event),
	}
	return bus
}

func (e *EventBus) Shutdown() {
	e.bus.Shutdown()
}

func (e *EventBus) Pub(topic ports.Topic, event ports.Event) {
	e.bus.Pub(event, topic)
}

// Unsub unsubscribes channel returned by Sub.
// The channel is closed once all events published before are delivered.
func (e *EventBus) Unsub(ch chan ports.Event) {
	e.mu.Lock()
	inp, ok := e.chs[ch]
	delete(e.chs, ch)
	e.mu.Unlock()
	if !ok {
		return
	}
	e.bus.Unsub(inp)
}

// Sub returns elastic channel subscribed to topic.
// The cskr/pubsub/v2 might suffer deadlocks,
// when subscribers are not reading out events fast enough.
func (e *EventBus) Sub(topic ports.Topic) chan ports.Event {
	inp := e.bus.Sub(topic)
	out := elastic(inp)
	e.mu.Lock()
	e.chs[out] = inp
	e.mu.Unlock()
	return out
}

// elastic forwards events from inp to returned channel
// through unbounded fifo, so writer to inp never waits for reader.
func elastic(inp chan ports.Event) chan ports.Event {
	out := make(chan ports.Event, 1)
	cond := sync.NewCond(&sync.Mutex{})
	fifo := []ports.Event{}
	abort := false

	go func() {
		for event := range inp {
			cond.L.Lock()
			fifo = append(fifo, event)
			cond.Signal()
			cond.L.Unlock()
		}

		cond.L.Lock()
		abort = true
		cond.Signal()
		cond.L.Unlock()
	}()
	go func() {
		cond.L.Lock()
		defer cond.L.Unlock()
		defer close(out)
		for {
			for len(fifo) > 0 {
				e := fifo[0]
				fifo = fifo[1:]
				cond.L.Unlock()
				out <- e
				cond.L.Lock()
			}
			if abort {
				return
			}
			cond.Wait()
		}
	}()

	return out
}
