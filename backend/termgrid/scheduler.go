package termgrid

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// task is deferred engine work carried by a tcell.EventInterrupt.
type task struct {
	fn       func()
	canceled atomic.Bool
}

// Scheduler defers engine work to the screen's event loop: each task is
// posted as an interrupt and runs when the loop hands it to RunTask. This
// keeps the engine on the goroutine that polls events.
type Scheduler struct {
	screen tcell.Screen
}

func NewScheduler(screen tcell.Screen) *Scheduler {
	return &Scheduler{screen: screen}
}

// Schedule implements virtual.Scheduler. A task whose interrupt cannot be
// queued runs immediately.
func (s *Scheduler) Schedule(fn func()) func() {
	t := &task{fn: fn}
	if err := s.screen.PostEvent(tcell.NewEventInterrupt(t)); err != nil {
		logger.Warn("event queue full, running task inline", "err", err)
		fn()
		t.canceled.Store(true)
	}
	return func() { t.canceled.Store(true) }
}

// RunTask runs the task carried by ev. It reports whether ev was a task,
// canceled or not.
func RunTask(ev tcell.Event) bool {
	in, ok := ev.(*tcell.EventInterrupt)
	if !ok {
		return false
	}
	t, ok := in.Data().(*task)
	if !ok {
		return false
	}
	if t.canceled.CompareAndSwap(false, true) {
		t.fn()
	}
	return true
}
