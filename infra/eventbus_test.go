package infra

import (
	"strconv"
	"testing"

	"github.com/cloudcopper/fixturegen/ports"
	"github.com/stretchr/testify/require"
)

func TestEventBus(t *testing.T) {
	assert := require.New(t)
	bus := NewEventBus()
	defer bus.Shutdown()
	ch := bus.Sub("topic1")
	other := bus.Sub("topic2")
	done := make(chan []ports.Event)
	go func() {
		events := []ports.Event{}
		for e := range ch {
			events = append(events, e)
		}
		done <- events
	}()

	// reader is slow, publisher must not block
	for x := 0; x < 100; x++ {
		bus.Pub("topic1", ports.Event{strconv.Itoa(x)})
	}
	bus.Pub("topic2", ports.Event{"other"})
	bus.Unsub(ch)

	events := <-done
	assert.Len(events, 100)
	for x, e := range events {
		assert.Equal(ports.Event{strconv.Itoa(x)}, e)
	}

	assert.Equal(ports.Event{"other"}, <-other)
	bus.Unsub(other)
	// unknown channel is ignored
	bus.Unsub(make(chan ports.Event))
}
