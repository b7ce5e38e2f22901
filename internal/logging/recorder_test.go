package logging

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	logger := NewNop()

	require.NotPanics(t, func() {
		logger.Debug("test message", "key", "value")
		logger.Info("test message", "key", "value")
		logger.Warn("test message", "key", "value")
		logger.Error("test message", "key", "value")
		logger.Fatal("test message", "key", "value") // Should NOT exit
	})
}

func TestRecorder(t *testing.T) {
	t.Run("records messages with fields", func(t *testing.T) {
		rec := NewRecorder(t)

		rec.Info("fill completed", "length", 16, "workers", 4)
		rec.Warn("odd", "dangling")

		entries := rec.Entries()
		require.Len(t, entries, 2)
		require.Equal(t, Entry{Level: "INFO", Msg: "fill completed", Fields: map[string]any{"length": 16, "workers": 4}}, entries[0])
		require.Equal(t, "<missing>", entries[1].Fields["dangling"])

		require.True(t, rec.Has("INFO", "fill completed"))
		require.False(t, rec.Has("ERROR", "fill completed"))
	})

	t.Run("works without a test handle", func(t *testing.T) {
		rec := NewRecorder(nil)
		rec.Fatal("fatal without exit")
		require.True(t, rec.Has("FATAL", "fatal without exit"))
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		rec := NewRecorder(nil)

		var wg sync.WaitGroup
		for i := range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec.Debug("task", "id", i)
			}()
		}
		wg.Wait()

		require.Len(t, rec.Entries(), 8)
	})
}
