package stage

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryFiresRepeatedly(t *testing.T) {
	s := newTestStage(t)

	var ticks atomic.Int32
	task := s.Every(5*time.Millisecond, func() {
		ticks.Add(1)
	})
	defer task.Cancel()

	require.Eventually(t, func() bool {
		return ticks.Load() >= 3
	}, 2*time.Second, time.Millisecond)
}

func TestCancelStopsFutureTicks(t *testing.T) {
	s := newTestStage(t)

	var ticks atomic.Int32
	task := s.Every(5*time.Millisecond, func() {
		ticks.Add(1)
	})

	require.Eventually(t, func() bool {
		return ticks.Load() >= 1
	}, 2*time.Second, time.Millisecond)

	task.Cancel()
	barrier(t, s)
	seen := ticks.Load()

	time.Sleep(50 * time.Millisecond)
	barrier(t, s)
	assert.Equal(t, seen, ticks.Load())
}

func TestCancelFromInsideTick(t *testing.T) {
	s := newTestStage(t)

	var ticks atomic.Int32
	taskCh := make(chan Task, 1)
	done := make(chan struct{})
	taskCh <- s.Every(5*time.Millisecond, func() {
		if ticks.Add(1) == 1 {
			task := <-taskCh
			task.Cancel()
			close(done)
		}
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("tick never fired")
	}

	time.Sleep(50 * time.Millisecond)
	barrier(t, s)
	assert.Equal(t, int32(1), ticks.Load())
}

func TestCancelIsIdempotent(t *testing.T) {
	s := newTestStage(t)
	task := s.Every(time.Hour, func() {})
	task.Cancel()
	task.Cancel()
}
