package services

import (
	"log"
	"time"
)

const (
	EventMenuApproved  = "menu.approved"
	EventMenuRejected  = "menu.rejected"
	EventOrderCreated  = "order.created"
	EventOrderServed   = "order.served"
	EventOrderRejected = "order.rejected"
)

type Event struct {
	Type string    `json:"type"`
	At   time.Time `json:"at"`
	Data any       `json:"data"`
}

// EventSink receives events; the ws hub implements it.
type EventSink interface {
	Deliver(Event) error
}

// EventBus decouples notification delivery from the request path. Publishers
// enqueue after their transaction commits; a single worker delivers with
// bounded retry. Delivery failures are logged, never surfaced to callers.
type EventBus struct {
	sink EventSink
	ch   chan Event
	done chan struct{}
}

const (
	eventBufferSize   = 256
	deliveryAttempts  = 3
	deliveryRetryWait = 200 * time.Millisecond
)

func NewEventBus(sink EventSink) *EventBus {
	return &EventBus{
		sink: sink,
		ch:   make(chan Event, eventBufferSize),
		done: make(chan struct{}),
	}
}

func (b *EventBus) Start() {
	go func() {
		defer close(b.done)
		for ev := range b.ch {
			b.deliver(ev)
		}
	}()
}

func (b *EventBus) deliver(ev Event) {
	var err error
	for attempt := 1; attempt <= deliveryAttempts; attempt++ {
		if err = b.sink.Deliver(ev); err == nil {
			return
		}
		log.Printf("event %s delivery attempt %d failed: %v", ev.Type, attempt, err)
		time.Sleep(deliveryRetryWait)
	}
	log.Printf("event %s dropped after %d attempts: %v", ev.Type, deliveryAttempts, err)
}

// Publish never blocks the caller; a full buffer is logged and the event is
// dropped rather than stalling the response.
func (b *EventBus) Publish(evType string, data any) {
	if b == nil {
		return
	}
	ev := Event{Type: evType, At: time.Now(), Data: data}
	select {
	case b.ch <- ev:
	default:
		log.Printf("event buffer full, dropping %s", evType)
	}
}

// Stop drains pending events, then returns.
func (b *EventBus) Stop() {
	close(b.ch)
	<-b.done
}
