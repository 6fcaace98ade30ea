package virtual

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow counts global listener attachments.
type fakeWindow struct {
	attached int
	detached int
	onMove   func(float32)
	onUp     func()
}

func (w *fakeWindow) Listen(onMove func(float32), onUp func()) func() {
	w.attached++
	w.onMove, w.onUp = onMove, onUp
	return func() {
		w.detached++
		w.onMove, w.onUp = nil, nil
	}
}

func (w *fakeWindow) move(pos float32) {
	if w.onMove != nil {
		w.onMove(pos)
	}
}

func (w *fakeWindow) up() {
	if w.onUp != nil {
		w.onUp()
	}
}

func TestThumbSize(t *testing.T) {
	cfg := DefaultScrollbarConfig()
	tests := []struct {
		name        string
		ratio, size float32
		want        float32
	}{
		{"fits", 100, 300, HiddenThumb},
		{"more than fits", 250, 300, HiddenThumb},
		{"half", 50, 300, 150},
		{"large ratio", 80, 300, 240},
		{"ceiling", 40, 300, 100},
		{"scaled", 20, 300, 60},
		{"floor", 1, 300, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ThumbSize(tt.ratio, tt.size, cfg)
			if math.IsInf(float64(tt.want), 1) {
				assert.True(t, math.IsInf(float64(got), 1), "got %v", got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScrollbarHiddenIgnoresInput(t *testing.T) {
	calls := 0
	win := &fakeWindow{}
	sb := NewScrollbar(AxisRow, DefaultScrollbarConfig(), win, func(float32, float32) { calls++ })
	sb.SetLayout(0, 300, 100)

	assert.False(t, sb.Visible())
	assert.False(t, sb.BeginDrag(10))
	sb.PointerMove(100)
	sb.TrackClick(200)
	assert.Zero(t, calls)
	assert.Zero(t, win.attached)
}

func TestScrollbarDragScenario(t *testing.T) {
	var distance, steps float32
	win := &fakeWindow{}
	cfg := DefaultScrollbarConfig()
	cfg.EndGap = 6
	sb := NewScrollbar(AxisRow, cfg, win, func(d, s float32) { distance, steps = d, s })
	sb.SetLayout(0, 300, 64)
	require.Equal(t, float32(192), sb.ThumbSize())
	require.Equal(t, float32(100), sb.TotalSteps())

	// Grab the thumb 10px into it and drag 50px down.
	require.True(t, sb.BeginDrag(10))
	assert.True(t, sb.State().IsDragging)
	assert.Equal(t, float32(10), sb.State().Anchor)
	win.move(60)
	assert.Equal(t, float32(50), distance)
	assert.Equal(t, float32(100), steps)

	estimatedTotal, viewport := float32(1000), float32(100)
	assert.Equal(t, 50/float32(100)*(estimatedTotal-viewport), OffsetFromTravel(distance, steps, estimatedTotal, viewport))

	win.up()
	assert.False(t, sb.State().IsDragging)
	assert.Equal(t, 1, win.attached)
	assert.Equal(t, 1, win.detached)
}

func TestScrollbarDragClamps(t *testing.T) {
	var distance float32
	sb := NewScrollbar(AxisColumn, DefaultScrollbarConfig(), &fakeWindow{}, func(d, _ float32) { distance = d })
	sb.SetLayout(100, 300, 20) // thumb 60, steps 236

	require.True(t, sb.BeginDrag(110))
	sb.PointerMove(-500)
	assert.Equal(t, float32(2), distance, "clamped to the start gap")
	sb.PointerMove(5000)
	assert.Equal(t, sb.TotalSteps(), distance)
	sb.Close()
}

func TestScrollbarListenersOncePerSession(t *testing.T) {
	win := &fakeWindow{}
	sb := NewScrollbar(AxisRow, DefaultScrollbarConfig(), win, nil)
	sb.SetLayout(0, 300, 20)

	sb.BeginDrag(5)
	sb.BeginDrag(6)
	assert.Equal(t, 1, win.attached)
	assert.True(t, sb.Listening())
	sb.PointerUp()
	sb.PointerUp()
	assert.Equal(t, 1, win.detached)
	assert.False(t, sb.Listening())

	// Unmount in the middle of a drag detaches too.
	sb.BeginDrag(5)
	sb.Close()
	assert.Equal(t, 2, win.attached)
	assert.Equal(t, 2, win.detached)
	assert.False(t, sb.State().IsDragging)
}

func TestScrollbarTrackClick(t *testing.T) {
	var distance float32
	calls := 0
	sb := NewScrollbar(AxisRow, DefaultScrollbarConfig(), &fakeWindow{}, func(d, _ float32) { distance = d; calls++ })
	sb.SetLayout(0, 300, 20) // thumb 60

	sb.TrackClick(30) // on the thumb
	assert.Zero(t, calls)

	sb.TrackClick(200)
	assert.Equal(t, 1, calls)
	assert.Equal(t, float32(170), distance, "thumb centered on the click")
	start, length := sb.Thumb()
	assert.Equal(t, float32(200), start+length/2)
}

func TestScrollbarSyncSuppressedWhileDragging(t *testing.T) {
	sb := NewScrollbar(AxisRow, DefaultScrollbarConfig(), &fakeWindow{}, nil)
	sb.SetLayout(0, 300, 20)

	sb.SyncFrom(0.5)
	assert.Equal(t, float32(118), sb.State().Traveled)

	sb.BeginDrag(130)
	sb.SyncFrom(0)
	assert.Equal(t, float32(118), sb.State().Traveled)

	sb.PointerUp()
	sb.SyncFrom(0.25)
	assert.Equal(t, float32(59), sb.State().Traveled)
}

func TestScrollbarTopEdgeBases(t *testing.T) {
	var distance float32
	sb := NewScrollbar(AxisRow, DefaultScrollbarConfig(), &fakeWindow{}, func(d, _ float32) { distance = d })
	sb.SetLayout(0, 300, 20) // thumb 60, steps 236

	sb.SyncFrom(0)
	start, _ := sb.Thumb()
	assert.Zero(t, start, "synced offset zero rests at travel zero")

	require.True(t, sb.BeginDrag(10))
	sb.PointerMove(10)
	assert.Equal(t, float32(2), distance, "a drag that has not moved is already at the gap floor")
	assert.Equal(t, float32(2), sb.State().Traveled)
	assert.Equal(t, 2/float32(236)*(5000-200), OffsetFromTravel(distance, sb.TotalSteps(), 5000, 200))
	sb.PointerUp()

	sb.SyncFrom(0)
	assert.Zero(t, sb.State().Traveled)
}
