package virtual

import (
	"log/slog"
	"math"
	"reflect"
	"sort"
)

// ItemMetrics is the position of one item along an axis.
type ItemMetrics struct {
	Offset float32 // leading edge, from the start of the axis
	Size   float32
}

// End returns the trailing edge of the item.
func (m ItemMetrics) End() float32 { return m.Offset + m.Size }

// SizeModel answers geometry questions for one axis.
//
// Implementations are Fixed and Dynamic. Everything that does windowing
// (CalcVisibleRange, OffsetForAlignment, StyleCache) is written against this
// interface only.
type SizeModel interface {
	Count() int
	SetCount(n int)
	// Metrics returns the offset and size of the item at index.
	Metrics(index int) ItemMetrics
	EstimatedTotalSize() float32
	// StartIndexForOffset returns the first item whose trailing edge is past offset.
	StartIndexForOffset(offset float32) int
	// StopIndexForStartIndex returns the last item whose leading edge is
	// before offset+viewport, scanning from start.
	StopIndexForStartIndex(start int, offset, viewport float32) int
	// ResetAfterIndex drops cached geometry for index and everything after it.
	ResetAfterIndex(index int)
	// Revision changes whenever previously returned metrics may be stale.
	Revision() uint64
}

// SizeFunc resolves the pixel size of the item at index.
type SizeFunc func(index int) float32

// DefaultEstimatedSize is used for unmeasured dynamic items when no estimate is configured.
const DefaultEstimatedSize = 50

// SizeSource configures the size strategy of one axis: either a constant
// size or a resolver function with an estimate for unmeasured items.
type SizeSource struct {
	Fixed     float32
	Func      SizeFunc
	Estimated float32
	// Revision is bumped by the host when Func starts returning different
	// sizes without being a different function.
	Revision uint64
}

// FixedSize gives every item on the axis the same size.
func FixedSize(px float32) SizeSource { return SizeSource{Fixed: px} }

// DynamicSize resolves sizes per index. estimated is used for the total size
// of items that were never measured; zero selects DefaultEstimatedSize.
func DynamicSize(fn SizeFunc, estimated float32) SizeSource {
	return SizeSource{Func: fn, Estimated: estimated}
}

// IsDynamic reports whether the axis uses a resolver function.
func (s SizeSource) IsDynamic() bool { return s.Func != nil }

// IsZero reports whether the source was never configured.
func (s SizeSource) IsZero() bool { return s.Func == nil && s.Fixed == 0 }

// Same reports whether s and o produce the same sizes. Resolvers compare by
// code pointer, so a closure rebuilt every frame at one call site stays the
// same source until its Revision changes.
func (s SizeSource) Same(o SizeSource) bool {
	if s.Fixed != o.Fixed || s.Estimated != o.Estimated || s.Revision != o.Revision {
		return false
	}
	if s.Func == nil || o.Func == nil {
		return s.Func == nil && o.Func == nil
	}
	return reflect.ValueOf(s.Func).Pointer() == reflect.ValueOf(o.Func).Pointer()
}

func (s SizeSource) validate(field string, count int) error {
	switch {
	case s.IsZero():
		return fieldErr(field, ErrMissingSize)
	case s.Func == nil && s.Fixed <= 0:
		return fieldErr(field, ErrInvalidSize)
	case s.Func != nil && s.Estimated < 0:
		return fieldErr(field+".Estimated", ErrInvalidSize)
	case s.Func != nil && count > 0:
		if first := s.Func(0); first < 0 || isNaN(first) {
			return fieldErr(field, ErrInvalidSize)
		}
	}
	return nil
}

// Model builds the SizeModel for count items.
func (s SizeSource) Model(count int, logger *slog.Logger) SizeModel {
	if s.Func != nil {
		return NewDynamic(count, s.Func, s.Estimated, logger)
	}
	return NewFixed(count, s.Fixed)
}

// Fixed is the constant-size strategy: offset = index * size.
type Fixed struct {
	count int
	size  float32
	rev   uint64
}

// NewFixed returns a model of count items of size px each.
func NewFixed(count int, px float32) *Fixed {
	return &Fixed{count: max(count, 0), size: px}
}

func (f *Fixed) Count() int       { return f.count }
func (f *Fixed) SetCount(n int)   { f.count = max(n, 0) }
func (f *Fixed) Size() float32    { return f.size }
func (f *Fixed) Revision() uint64 { return f.rev }

// SetSize changes the item size. Cached styles keyed on this model go stale.
func (f *Fixed) SetSize(px float32) {
	if px == f.size {
		return
	}
	f.size = px
	f.rev++
}

func (f *Fixed) Metrics(index int) ItemMetrics {
	return ItemMetrics{Offset: float32(index) * f.size, Size: f.size}
}

func (f *Fixed) EstimatedTotalSize() float32 { return float32(f.count) * f.size }

func (f *Fixed) StartIndexForOffset(offset float32) int {
	if f.count == 0 || f.size <= 0 {
		return 0
	}
	return clampIndex(int(math.Floor(float64(offset/f.size))), f.count)
}

func (f *Fixed) StopIndexForStartIndex(start int, offset, viewport float32) int {
	if f.count == 0 || f.size <= 0 {
		return 0
	}
	startOffset := float32(start) * f.size
	visible := int(math.Ceil(float64((viewport + offset - startOffset) / f.size)))
	return clampIndex(max(start+visible-1, start), f.count)
}

// ResetAfterIndex is a no-op beyond bumping the revision; fixed geometry is never cached.
func (f *Fixed) ResetAfterIndex(int) { f.rev++ }

// Dynamic is the variable-size strategy. Offsets are accumulated lazily into
// a measured prefix: items[i].Offset == items[i-1].Offset + items[i-1].Size.
// The prefix only grows, except when ResetAfterIndex truncates it.
type Dynamic struct {
	count     int
	sizeOf    SizeFunc
	estimated float32
	items     []ItemMetrics
	overrides map[int]float32
	rev       uint64
	logger    *slog.Logger
}

// NewDynamic returns a model of count items sized by fn.
func NewDynamic(count int, fn SizeFunc, estimated float32, logger *slog.Logger) *Dynamic {
	if estimated <= 0 {
		estimated = DefaultEstimatedSize
	}
	return &Dynamic{
		count:     max(count, 0),
		sizeOf:    fn,
		estimated: estimated,
		logger:    loggerOr(logger),
	}
}

func (d *Dynamic) Count() int       { return d.count }
func (d *Dynamic) Revision() uint64 { return d.rev }

// LastMeasuredIndex is the watermark: the highest index whose geometry is
// cached, or -1 when nothing is.
func (d *Dynamic) LastMeasuredIndex() int { return len(d.items) - 1 }

func (d *Dynamic) SetCount(n int) {
	d.count = max(n, 0)
	if len(d.items) > d.count {
		d.items = d.items[:d.count]
		d.rev++
	}
}

// SetSizeFunc swaps the resolver. All cached geometry is dropped.
func (d *Dynamic) SetSizeFunc(fn SizeFunc) {
	d.sizeOf = fn
	d.ResetAfterIndex(0)
}

// Override pins the size of one item. Geometry below index stays cached.
func (d *Dynamic) Override(index int, px float32) {
	if d.overrides == nil {
		d.overrides = make(map[int]float32)
	}
	d.overrides[index] = px
	d.ResetAfterIndex(index)
}

// ClearOverride returns index to the resolver's size.
func (d *Dynamic) ClearOverride(index int) {
	if _, ok := d.overrides[index]; !ok {
		return
	}
	delete(d.overrides, index)
	d.ResetAfterIndex(index)
}

func (d *Dynamic) ResetAfterIndex(index int) {
	index = max(index, 0)
	if index < len(d.items) {
		d.items = d.items[:index]
	}
	d.rev++
}

func (d *Dynamic) resolve(index int) float32 {
	if px, ok := d.overrides[index]; ok {
		return px
	}
	px := d.sizeOf(index)
	if px < 0 || isNaN(px) {
		d.logger.Warn("size resolver returned invalid size, using 0", "index", index, "size", px)
		return 0
	}
	return px
}

// Metrics walks forward from the watermark when index has not been measured yet.
func (d *Dynamic) Metrics(index int) ItemMetrics {
	if index < 0 {
		index = 0
	}
	if index < len(d.items) {
		return d.items[index]
	}
	var offset float32
	if n := len(d.items); n > 0 {
		offset = d.items[n-1].End()
	}
	for i := len(d.items); i <= index; i++ {
		px := d.resolve(i)
		d.items = append(d.items, ItemMetrics{Offset: offset, Size: px})
		offset += px
	}
	return d.items[index]
}

func (d *Dynamic) EstimatedTotalSize() float32 {
	measured := min(len(d.items), d.count)
	var total float32
	if measured > 0 {
		total = d.items[measured-1].End()
	}
	return total + float32(d.count-measured)*d.estimated
}

// StartIndexForOffset binary searches the measured prefix when it already
// reaches offset, and otherwise searches exponentially past the watermark.
func (d *Dynamic) StartIndexForOffset(offset float32) int {
	if d.count == 0 || offset <= 0 {
		return 0
	}
	last := min(len(d.items), d.count) - 1
	if last >= 0 && d.items[last].End() > offset {
		return sort.Search(last+1, func(i int) bool { return d.items[i].End() > offset })
	}
	return d.exponentialSearch(max(last, 0), offset)
}

func (d *Dynamic) exponentialSearch(from int, offset float32) int {
	lo, hi, step := from, from, 1
	for hi < d.count && d.Metrics(hi).End() <= offset {
		lo = hi
		hi += step
		step *= 2
	}
	hi = min(hi, d.count-1)
	i := lo + sort.Search(hi-lo+1, func(i int) bool { return d.Metrics(lo+i).End() > offset })
	return min(i, d.count-1)
}

func (d *Dynamic) StopIndexForStartIndex(start int, offset, viewport float32) int {
	if d.count == 0 {
		return 0
	}
	start = clampIndex(start, d.count)
	limit := offset + viewport
	stop := start
	next := d.Metrics(start).End()
	for stop < d.count-1 && next < limit {
		stop++
		next += d.Metrics(stop).Size
	}
	return stop
}

func clampIndex(i, count int) int {
	if i < 0 || count <= 0 {
		return 0
	}
	if i > count-1 {
		return count - 1
	}
	return i
}

func isNaN(f float32) bool { return f != f }
