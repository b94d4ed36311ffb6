package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func waitEvent[T any](t *testing.T, ch <-chan Event[T]) Event[T] {
	t.Helper()
	select {
	case event := <-ch:
		return event
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timed out waiting for event")
		return Event[T]{}
	}
}

func TestBroker_PublishReachesSubscriber(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ch := broker.Subscribe(context.Background())
	broker.Publish(CreatedEvent, "[ERROR] [store] save failed")

	event := waitEvent(t, ch)
	require.Equal(t, CreatedEvent, event.Type)
	require.Equal(t, "[ERROR] [store] save failed", event.Payload)
	require.False(t, event.Timestamp.IsZero())
}

func TestBroker_FanOut(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	ctx := context.Background()
	chans := []<-chan Event[int]{
		broker.Subscribe(ctx),
		broker.Subscribe(ctx),
		broker.Subscribe(ctx),
	}
	require.Equal(t, 3, broker.SubscriberCount())

	broker.Publish(UpdatedEvent, 7)

	for _, ch := range chans {
		require.Equal(t, 7, waitEvent(t, ch).Payload)
	}
}

func TestBroker_ContextCancelUnsubscribes(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := broker.Subscribe(ctx)
	require.Equal(t, 1, broker.SubscriberCount())

	cancel()
	require.Eventually(t, func() bool {
		return broker.SubscriberCount() == 0
	}, time.Second, 5*time.Millisecond)

	_, open := <-ch
	require.False(t, open, "cancelled subscription should close its channel")
}

func TestBroker_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	broker := NewBrokerWithBuffer[int](1)
	defer broker.Close()

	ch := broker.Subscribe(context.Background())

	broker.Publish(UpdatedEvent, 1)

	done := make(chan struct{})
	go func() {
		broker.Publish(UpdatedEvent, 2)
		broker.Publish(UpdatedEvent, 3)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("Publish blocked on a full subscriber")
	}

	require.Equal(t, 1, waitEvent(t, ch).Payload, "overflow events should be dropped")
}

func TestBroker_Close(t *testing.T) {
	broker := NewBroker[string]()

	ctx := context.Background()
	ch1 := broker.Subscribe(ctx)
	ch2 := broker.Subscribe(ctx)

	broker.Close()

	_, open := <-ch1
	require.False(t, open)
	_, open = <-ch2
	require.False(t, open)
	require.Zero(t, broker.SubscriberCount())

	late := broker.Subscribe(ctx)
	_, open = <-late
	require.False(t, open, "subscribing after Close should yield a closed channel")

	broker.Publish(UpdatedEvent, "dropped")
	broker.Close()
}
