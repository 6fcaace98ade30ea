package virtual

import "math"

// HiddenThumb is the thumb size reported when the content fits the viewport.
var HiddenThumb = float32(math.Inf(1))

// ScrollbarConfig tunes thumb sizing and the track gaps.
type ScrollbarConfig struct {
	MinThumb        float32 // floor for small ratios, keeps the thumb grabbable
	CeilingFraction float32 // ceiling for small ratios, as a fraction of the track
	StartGap        float32
	EndGap          float32
}

// DefaultScrollbarConfig returns a 20px minimum thumb, a one third ceiling
// and 2px gaps at both ends.
func DefaultScrollbarConfig() ScrollbarConfig {
	return ScrollbarConfig{
		MinThumb:        20,
		CeilingFraction: 1.0 / 3,
		StartGap:        2,
		EndGap:          2,
	}
}

// ThumbSize maps a visible-to-total ratio (a percentage) onto a thumb length.
// Ratios of 100 or more return HiddenThumb. Ratios of 50 or more scale the
// track directly; smaller ratios are clamped to [min, clientSize*ceiling].
func ThumbSize(ratio, clientSize float32, cfg ScrollbarConfig) float32 {
	if ratio >= 100 {
		return HiddenThumb
	}
	if ratio >= 50 {
		return ratio * clientSize / 100
	}
	thumb := max(ratio*clientSize/100, cfg.MinThumb)
	return float32(math.Floor(float64(min(thumb, clientSize*cfg.CeilingFraction))))
}

// OffsetFromTravel converts a thumb travel distance back into a content offset.
func OffsetFromTravel(distance, totalSteps, totalSize, viewport float32) float32 {
	if totalSteps <= 0 {
		return 0
	}
	return distance / totalSteps * max(0, totalSize-viewport)
}

// PointerTarget is the window-level event source a drag session listens to.
// Listen attaches both handlers and returns the function that detaches them.
type PointerTarget interface {
	Listen(onMove func(pos float32), onUp func()) (unlisten func())
}

// ScrollbarState is the drag state of one scrollbar.
type ScrollbarState struct {
	IsDragging bool
	Traveled   float32 // thumb position within the track
	Anchor     float32 // pointer position inside the thumb when the drag began
}

// Scrollbar is the model of a synthetic scrollbar for one axis. It owns no
// scroll position: outside a drag it follows SyncFrom, and during a drag it
// is authoritative and reports travel through onScroll.
//
// Pointer positions are absolute along the scrollbar's axis; SetLayout
// places the track.
type Scrollbar struct {
	Axis Axis

	cfg        ScrollbarConfig
	trackStart float32
	clientSize float32
	ratio      float32
	state      ScrollbarState
	target     PointerTarget
	unlisten   func()
	onScroll   func(distance, totalSteps float32)
}

// NewScrollbar returns a scrollbar that listens on target while dragging.
func NewScrollbar(axis Axis, cfg ScrollbarConfig, target PointerTarget, onScroll func(distance, totalSteps float32)) *Scrollbar {
	return &Scrollbar{Axis: axis, cfg: cfg, target: target, onScroll: onScroll}
}

// SetLayout positions the track and sets the visible-to-total ratio.
func (s *Scrollbar) SetLayout(trackStart, clientSize, ratio float32) {
	s.trackStart, s.clientSize, s.ratio = trackStart, clientSize, ratio
	if s.state.Traveled > s.TotalSteps() {
		s.state.Traveled = max(0, s.TotalSteps())
	}
}

func (s *Scrollbar) State() ScrollbarState   { return s.state }
func (s *Scrollbar) Config() ScrollbarConfig { return s.cfg }

// Visible reports whether the content overflows and a thumb is drawn.
func (s *Scrollbar) Visible() bool { return !math.IsInf(float64(s.ThumbSize()), 1) }

func (s *Scrollbar) ThumbSize() float32 { return ThumbSize(s.ratio, s.clientSize, s.cfg) }

// TotalSteps is the distance the thumb can travel.
func (s *Scrollbar) TotalSteps() float32 {
	if !s.Visible() {
		return 0
	}
	return float32(math.Floor(float64(s.clientSize - s.ThumbSize() - s.cfg.StartGap - s.cfg.EndGap)))
}

// Thumb returns the thumb's absolute start and length along the axis.
func (s *Scrollbar) Thumb() (start, length float32) {
	return s.trackStart + s.state.Traveled, s.ThumbSize()
}

// HitThumb reports whether pos lies on the thumb.
func (s *Scrollbar) HitThumb(pos float32) bool {
	if !s.Visible() {
		return false
	}
	start, length := s.Thumb()
	return pos >= start && pos < start+length
}

// SyncFrom follows the owner's scroll position, a fraction in [0, 1].
// It is ignored while dragging. Offset zero rests the thumb at travel zero,
// below the StartGap floor that drags and track clicks are clamped to, so a
// drag ending at the top edge reports StartGap and a small non-zero offset.
func (s *Scrollbar) SyncFrom(scrollFrom float32) {
	if s.state.IsDragging {
		return
	}
	s.state.Traveled = float32(math.Ceil(float64(scrollFrom * s.TotalSteps())))
}

// BeginDrag grabs the thumb at pos and attaches the global listeners. It
// reports false when there is nothing to drag.
func (s *Scrollbar) BeginDrag(pos float32) bool {
	if !s.Visible() {
		return false
	}
	s.state.IsDragging = true
	s.state.Anchor = pos - (s.trackStart + s.state.Traveled)
	if s.unlisten == nil && s.target != nil {
		s.unlisten = s.target.Listen(s.PointerMove, s.PointerUp)
	}
	return true
}

// PointerMove moves the thumb to follow the pointer while dragging.
func (s *Scrollbar) PointerMove(pos float32) {
	if !s.state.IsDragging {
		return
	}
	s.travel(pos - s.trackStart - s.state.Anchor)
}

// PointerUp ends the drag session.
func (s *Scrollbar) PointerUp() {
	s.state.IsDragging = false
	s.state.Anchor = 0
	s.detach()
}

// TrackClick centers the thumb on pos. Clicks on the thumb itself are ignored.
func (s *Scrollbar) TrackClick(pos float32) {
	if !s.Visible() || s.HitThumb(pos) {
		return
	}
	s.travel(pos - s.trackStart - s.ThumbSize()/2)
}

// Close ends any drag in progress. Call it when the owner goes away.
func (s *Scrollbar) Close() {
	s.state.IsDragging = false
	s.detach()
}

// Listening reports whether global listeners are attached.
func (s *Scrollbar) Listening() bool { return s.unlisten != nil }

// travel clamps pointer driven travel to [StartGap, TotalSteps].
func (s *Scrollbar) travel(distance float32) {
	steps := s.TotalSteps()
	s.state.Traveled = max(s.cfg.StartGap, min(distance, steps))
	if s.onScroll != nil {
		s.onScroll(s.state.Traveled, steps)
	}
}

func (s *Scrollbar) detach() {
	if s.unlisten != nil {
		s.unlisten()
		s.unlisten = nil
	}
}
