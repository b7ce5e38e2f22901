package parfill

import (
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"
)

// subscriberBuffer is the channel capacity of each subscriber.
//
// A fill emits three events, so a subscriber can lag two full calls behind
// before events are dropped.
const subscriberBuffer = 8

// eventSubscriber is a helper for managing fill event subscriptions.
type eventSubscriber struct {
	ch     chan FillEvent
	mu     sync.Mutex
	closed bool
}

// trySend sends an event to the subscriber's channel without blocking.
//
// It reports false if the event was dropped because the channel was full.
func (s *eventSubscriber) trySend(ev FillEvent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return true
	}

	select {
	case s.ch <- ev:
		return true
	default:
		return false
	}
}

// close safely closes the subscriber's channel.
func (s *eventSubscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}

// broadcaster fans fill events out to every subscriber.
type broadcaster struct {
	nextID      atomic.Uint64
	dropped     atomic.Uint64
	subscribers *xsync.Map[uint64, *eventSubscriber]
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subscribers: xsync.NewMap[uint64, *eventSubscriber]()}
}

func (b *broadcaster) subscribe() (<-chan FillEvent, func()) {
	id := b.nextID.Add(1)
	sub := &eventSubscriber{ch: make(chan FillEvent, subscriberBuffer)}
	b.subscribers.Store(id, sub)

	unsubscribe := func() {
		if s, ok := b.subscribers.LoadAndDelete(id); ok {
			s.close()
		}
	}

	return sub.ch, unsubscribe
}

func (b *broadcaster) publish(ev FillEvent) {
	b.subscribers.Range(func(_ uint64, sub *eventSubscriber) bool {
		if !sub.trySend(ev) {
			// Subscriber is slow; it will get the next event.
			b.dropped.Add(1)
		}

		return true
	})
}
