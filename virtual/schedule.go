package virtual

import (
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler defers work to a later tick. The returned cancel func prevents fn
// from running if it has not run yet; calling it more than once is safe.
type Scheduler interface {
	Schedule(fn func()) (cancel func())
}

type frameTask struct {
	fn       func()
	canceled bool
}

// FrameScheduler runs deferred work when the host calls Flush, normally once
// per rendered frame. Work scheduled while a Flush is running waits for the
// next Flush. Schedule may be called from any goroutine; Flush runs tasks on
// the caller's goroutine.
type FrameScheduler struct {
	mu    sync.Mutex
	queue []*frameTask
}

// NewFrameScheduler returns an empty scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

func (s *FrameScheduler) Schedule(fn func()) func() {
	t := &frameTask{fn: fn}
	s.mu.Lock()
	s.queue = append(s.queue, t)
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		t.canceled = true
		s.mu.Unlock()
	}
}

// Pending returns the number of queued tasks that have not been canceled.
func (s *FrameScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.queue {
		if !t.canceled {
			n++
		}
	}
	return n
}

// Flush runs every task queued before the call, in order, and returns how
// many ran.
func (s *FrameScheduler) Flush() int {
	s.mu.Lock()
	batch := s.queue
	s.queue = nil
	s.mu.Unlock()

	ran := 0
	for _, t := range batch {
		s.mu.Lock()
		skip := t.canceled
		t.canceled = true
		s.mu.Unlock()
		if skip {
			continue
		}
		t.fn()
		ran++
	}
	return ran
}

// TimerScheduler runs work after a fixed delay. The timer fires on its own
// goroutine, so the callback is handed to post, which must deliver it to the
// host's UI goroutine (for example by queueing it on a FrameScheduler or
// posting a terminal event). A task canceled before post delivers it never runs.
type TimerScheduler struct {
	Delay time.Duration
	post  func(func())
}

// NewTimerScheduler returns a scheduler that waits delay and then posts.
func NewTimerScheduler(delay time.Duration, post func(func())) *TimerScheduler {
	return &TimerScheduler{Delay: delay, post: post}
}

func (s *TimerScheduler) Schedule(fn func()) func() {
	var canceled atomic.Bool
	timer := time.AfterFunc(s.Delay, func() {
		if canceled.Load() {
			return
		}
		s.post(func() {
			if !canceled.Load() {
				fn()
			}
		})
	})
	return func() {
		canceled.Store(true)
		timer.Stop()
	}
}
