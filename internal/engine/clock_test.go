package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockStartsAtZero(t *testing.T) {
	c := NewClock()
	assert.Equal(t, int64(0), c.Current())
	assert.Equal(t, int64(1), c.Next(), "first stamp is seq 1")
}

func TestClockStrictlyIncreases(t *testing.T) {
	c := NewClock()

	var prev int64
	for i := 0; i < 50; i++ {
		seq := c.Next()
		require.Greater(t, seq, prev)
		prev = seq
	}
	assert.Equal(t, prev, c.Current(), "Current reflects the last stamp")
	assert.Equal(t, prev, c.Current(), "Current never advances on its own")
}

func TestClockResumesFromRecordedSeq(t *testing.T) {
	// Continuing a recorded trace picks up after its last seq.
	c := NewClockAt(42)
	assert.Equal(t, int64(42), c.Current())
	assert.Equal(t, int64(43), c.Next())
}

func TestClockConcurrentStampsAreUnique(t *testing.T) {
	c := NewClock()
	const workers = 8
	const stampsPerWorker = 500

	seqs := make(chan int64, workers*stampsPerWorker)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < stampsPerWorker; j++ {
				seqs <- c.Next()
			}
		}()
	}
	wg.Wait()
	close(seqs)

	seen := make(map[int64]struct{}, workers*stampsPerWorker)
	for seq := range seqs {
		_, dup := seen[seq]
		require.False(t, dup, "seq %d stamped twice", seq)
		seen[seq] = struct{}{}
	}
	assert.Len(t, seen, workers*stampsPerWorker)
	assert.Equal(t, int64(workers*stampsPerWorker), c.Current())
}
