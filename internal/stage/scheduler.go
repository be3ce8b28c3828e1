package stage

import (
	"sync"
	"time"
)

// Task is a cancellable recurring action registration.
type Task interface {
	// Cancel stops future ticks. Safe to call from within the tick body and
	// safe to call more than once.
	Cancel()
}

type periodicTask struct {
	stop chan struct{}
	once sync.Once
}

func (task *periodicTask) Cancel() {
	task.once.Do(func() {
		close(task.stop)
	})
}

func (task *periodicTask) cancelled() bool {
	select {
	case <-task.stop:
		return true
	default:
		return false
	}
}

// Every invokes fn at the given period on the dispatch goroutine until the
// returned task is cancelled or the stage closes. Ticks that were already
// queued when Cancel ran are dropped, so a cancelled task never fires again.
func (s *Stage) Every(period time.Duration, fn func()) Task {
	task := &periodicTask{stop: make(chan struct{})}

	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-task.stop:
				return
			case <-s.done:
				return
			case <-ticker.C:
				s.Do(func() {
					if task.cancelled() {
						return
					}
					fn()
				})
			}
		}
	}()

	return task
}
