package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var received []Event
	dispatcher.Subscribe(EventRouteCreated, func(_ context.Context, event Event) error {
		received = append(received, event)
		return nil
	})

	event := Event{ID: "e1", Type: EventRouteCreated, RouteID: "r1"}
	if err := dispatcher.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if len(received) != 1 || received[0].RouteID != "r1" {
		t.Fatalf("received = %v, want the published event", received)
	}

	// Unsubscribed types are ignored.
	if err := dispatcher.Publish(context.Background(), Event{Type: EventCommentAdded}); err != nil {
		t.Fatalf("Publish unsubscribed type: %v", err)
	}
	if len(received) != 1 {
		t.Fatalf("handler invoked for unsubscribed type")
	}
}

func TestDispatcherContinuesPastFailingHandler(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	failErr := errors.New("handler failed")
	dispatcher.Subscribe(EventCommentAdded, func(context.Context, Event) error {
		return failErr
	})

	var called bool
	dispatcher.Subscribe(EventCommentAdded, func(context.Context, Event) error {
		called = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventCommentAdded})
	if !errors.Is(err, failErr) {
		t.Fatalf("error = %v, want first handler error", err)
	}
	if !called {
		t.Fatal("second handler skipped after first failed")
	}
}
