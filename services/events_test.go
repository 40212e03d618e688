package services

import (
	"errors"
	"sync"
	"testing"
)

// flakySink fails the first failures deliveries, then succeeds.
type flakySink struct {
	mu       sync.Mutex
	failures int
	got      []Event
}

func (s *flakySink) Deliver(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failures > 0 {
		s.failures--
		return errors.New("sink unavailable")
	}
	s.got = append(s.got, ev)
	return nil
}

func (s *flakySink) delivered() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.got...)
}

func TestEventBusDelivers(t *testing.T) {
	sink := &flakySink{}
	bus := NewEventBus(sink)
	bus.Start()

	bus.Publish(EventOrderCreated, map[string]any{"orderId": uint(1)})
	bus.Publish(EventOrderServed, map[string]any{"orderId": uint(1)})
	bus.Stop()

	got := sink.delivered()
	if len(got) != 2 {
		t.Fatalf("delivered = %d, want 2", len(got))
	}
	if got[0].Type != EventOrderCreated || got[1].Type != EventOrderServed {
		t.Errorf("order of delivery: %s, %s", got[0].Type, got[1].Type)
	}
	if got[0].At.IsZero() {
		t.Error("event timestamp not set")
	}
}

func TestEventBusRetries(t *testing.T) {
	sink := &flakySink{failures: 2}
	bus := NewEventBus(sink)
	bus.Start()

	bus.Publish(EventMenuApproved, nil)
	bus.Stop()

	if got := sink.delivered(); len(got) != 1 {
		t.Fatalf("delivered = %d, want 1 after retries", len(got))
	}
}

func TestEventBusGivesUp(t *testing.T) {
	sink := &flakySink{failures: 10}
	bus := NewEventBus(sink)
	bus.Start()

	bus.Publish(EventMenuRejected, nil)
	bus.Stop()

	if got := sink.delivered(); len(got) != 0 {
		t.Fatalf("delivered = %d, want 0 after exhausting retries", len(got))
	}
}

func TestNilBusPublishIsSafe(t *testing.T) {
	var bus *EventBus
	bus.Publish(EventOrderCreated, nil) // must not panic
}
