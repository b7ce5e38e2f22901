package parfill

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEventSubscriber_TrySend(t *testing.T) {
	sub := &eventSubscriber{ch: make(chan FillEvent, 1)}

	require.True(t, sub.trySend(FillEvent{State: FillDispatching}))
	require.False(t, sub.trySend(FillEvent{State: FillAwaitingAll}), "full channel drops")

	sub.close()
	sub.close() // idempotent
	require.True(t, sub.trySend(FillEvent{State: FillDone}), "closed subscriber ignores sends")

	ev, ok := <-sub.ch
	require.True(t, ok)
	require.Equal(t, FillDispatching, ev.State)
	_, ok = <-sub.ch
	require.False(t, ok)
}

func TestBroadcaster(t *testing.T) {
	b := newBroadcaster()

	ch1, unsub1 := b.subscribe()
	ch2, unsub2 := b.subscribe()
	defer unsub2()

	b.publish(FillEvent{RunID: "a", State: FillDone})
	require.Equal(t, "a", (<-ch1).RunID)
	require.Equal(t, "a", (<-ch2).RunID)

	unsub1()
	b.publish(FillEvent{RunID: "b"})
	_, ok := <-ch1
	require.False(t, ok)
	require.Equal(t, "b", (<-ch2).RunID)

	t.Run("concurrent publish and unsubscribe", func(t *testing.T) {
		var wg sync.WaitGroup
		for range 8 {
			ch, unsub := b.subscribe()
			wg.Add(2)
			go func() {
				defer wg.Done()
				for range 100 {
					b.publish(FillEvent{})
				}
			}()
			go func() {
				defer wg.Done()
				unsub()
				for range ch {
				}
			}()
		}
		wg.Wait()
	})
}
