package strategy

import (
	"testing"

	"github.com/arloliu/parfill/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBalanced_Split(t *testing.T) {
	t.Run("splits 16 indices into four equal partitions", func(t *testing.T) {
		parts, err := NewBalanced().Split(16, 4)
		require.NoError(t, err)

		want := []types.Partition{
			{Start: 0, End: 4},
			{Start: 4, End: 8},
			{Start: 8, End: 12},
			{Start: 12, End: 16},
		}
		if diff := cmp.Diff(want, parts); diff != "" {
			t.Fatalf("partitions mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("spreads the remainder over the first partitions", func(t *testing.T) {
		parts, err := NewBalanced().Split(10, 4)
		require.NoError(t, err)

		want := []types.Partition{
			{Start: 0, End: 3},
			{Start: 3, End: 6},
			{Start: 6, End: 8},
			{Start: 8, End: 10},
		}
		if diff := cmp.Diff(want, parts); diff != "" {
			t.Fatalf("partitions mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("drops idle workers when length is below worker count", func(t *testing.T) {
		parts, err := NewBalanced().Split(3, 8)
		require.NoError(t, err)
		require.Len(t, parts, 3)
		for _, p := range parts {
			require.Equal(t, 1, p.Len())
		}
	})

	t.Run("returns no partitions for an empty buffer", func(t *testing.T) {
		parts, err := NewBalanced().Split(0, 4)
		require.NoError(t, err)
		require.Empty(t, parts)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := NewBalanced().Split(10, 0)
		require.ErrorIs(t, err, ErrInvalidWorkerCount)

		_, err = NewBalanced().Split(-1, 2)
		require.ErrorIs(t, err, ErrInvalidLength)
	})

	t.Run("honors minimum partition size", func(t *testing.T) {
		strat := NewBalanced(WithMinPartitionSize(100))

		parts, err := strat.Split(250, 8)
		require.NoError(t, err)
		require.Len(t, parts, 2)
		require.NoError(t, Verify(parts, 250))

		parts, err = strat.Split(50, 8)
		require.NoError(t, err)
		require.Equal(t, []types.Partition{{Start: 0, End: 50}}, parts)
	})

	t.Run("ignores non-positive minimum partition size", func(t *testing.T) {
		parts, err := NewBalanced(WithMinPartitionSize(0)).Split(8, 8)
		require.NoError(t, err)
		require.Len(t, parts, 8)
	})
}

func TestBalanced_Invariants(t *testing.T) {
	strat := NewBalanced()

	for length := 0; length <= 130; length++ {
		for workers := 1; workers <= 17; workers++ {
			parts, err := strat.Split(length, workers)
			require.NoError(t, err)
			require.NoError(t, Verify(parts, length), "length=%d workers=%d", length, workers)
			require.Len(t, parts, min(length, workers))

			if len(parts) == 0 {
				continue
			}
			lo, hi := parts[0].Len(), parts[0].Len()
			for _, p := range parts {
				lo = min(lo, p.Len())
				hi = max(hi, p.Len())
			}
			require.LessOrEqual(t, hi-lo, 1, "length=%d workers=%d", length, workers)
		}
	}
}

func TestBalanced_Deterministic(t *testing.T) {
	strat := NewBalanced()

	first, err := strat.Split(1<<20, 7)
	require.NoError(t, err)
	second, err := strat.Split(1<<20, 7)
	require.NoError(t, err)

	require.Equal(t, first, second)
}
