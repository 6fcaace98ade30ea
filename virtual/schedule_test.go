package virtual

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameScheduler(t *testing.T) {
	s := NewFrameScheduler()
	var order []int
	s.Schedule(func() { order = append(order, 1) })
	cancel := s.Schedule(func() { order = append(order, 2) })
	s.Schedule(func() {
		order = append(order, 3)
		s.Schedule(func() { order = append(order, 4) })
	})
	cancel()
	cancel()

	assert.Equal(t, 2, s.Pending())
	assert.Equal(t, 2, s.Flush())
	assert.Equal(t, []int{1, 3}, order, "work queued during a flush waits")
	assert.Equal(t, 1, s.Flush())
	assert.Equal(t, []int{1, 3, 4}, order)
}

func TestTimerSchedulerPostsToLoop(t *testing.T) {
	loop := NewFrameScheduler()
	ts := NewTimerScheduler(time.Millisecond, func(fn func()) { loop.Schedule(fn) })

	ran := make(chan struct{}, 1)
	ts.Schedule(func() { ran <- struct{}{} })
	assert.Eventually(t, func() bool { return loop.Pending() == 1 }, time.Second, time.Millisecond)
	assert.Empty(t, ran, "nothing runs until the loop flushes")
	loop.Flush()
	assert.Len(t, ran, 1)
}

func TestTimerSchedulerCancelAfterPost(t *testing.T) {
	loop := NewFrameScheduler()
	ts := NewTimerScheduler(time.Millisecond, func(fn func()) { loop.Schedule(fn) })

	ran := false
	cancel := ts.Schedule(func() { ran = true })
	assert.Eventually(t, func() bool { return loop.Pending() == 1 }, time.Second, time.Millisecond)
	cancel()
	loop.Flush()
	assert.False(t, ran)
}
