package vgui

import "github.com/go-theft-auto/vgui/virtual"

// Option configures a widget call.
type Option func(*options)

type options struct {
	values map[string]any
}

// OptKey is a typed option key with a default value. Widgets outside this
// package define their own keys the same way:
//
//	var OptRowLabel = vgui.NewOptKey("rowLabel", "")
//	ctx.VirtualList("files", cfg, draw, vgui.WithOpt(OptRowLabel, "file"))
type OptKey[T any] struct {
	name string
	def  T
}

func NewOptKey[T any](name string, def T) OptKey[T] {
	return OptKey[T]{name: name, def: def}
}

func (k OptKey[T]) Name() string { return k.name }
func (k OptKey[T]) Default() T   { return k.def }

// WithOpt sets key to value.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.values == nil {
			o.values = make(map[string]any)
		}
		o.values[key.name] = value
	}
}

// GetOpt returns the value of key, or its default when unset or of the wrong type.
func GetOpt[T any](o options, key OptKey[T]) T {
	if v, ok := o.values[key.name].(T); ok {
		return v
	}
	return key.def
}

// HasOpt reports whether key was set explicitly.
func HasOpt[T any](o options, key OptKey[T]) bool {
	_, ok := o.values[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies opts and returns the value of key.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ScrollbarVisibility controls when a virtual widget draws its scrollbars.
type ScrollbarVisibility int

const (
	ScrollbarAuto   ScrollbarVisibility = iota // only on overflow
	ScrollbarAlways                            // reserve the track even without overflow
	ScrollbarNever
)

var (
	OptID     = NewOptKey("id", "")
	OptWidth  = NewOptKey[float32]("width", 0)
	OptHeight = NewOptKey[float32]("height", 0)
)

// Virtual widget options.
var (
	OptScrollbarVisibility = NewOptKey("scrollbarVisibility", ScrollbarAuto)
	OptScrollbar           = NewOptKey("scrollbar", virtual.DefaultScrollbarConfig())
	OptKeyboardNav         = NewOptKey("keyboardNav", true)
	OptStriped             = NewOptKey("striped", true)
	OptSelected            = NewOptKey("selected", -1) // list index or grid row to highlight
	OptWheelStep           = NewOptKey[float32]("wheelStep", 0)
	// OptScrollToItem is applied once, on the frame the widget mounts.
	OptScrollToItem = NewOptKey("scrollToItem", ScrollTarget{Index: -1})
)

// ScrollTarget names an item and an alignment for OptScrollToItem.
type ScrollTarget struct {
	Index  int
	Column int
	Align  virtual.Alignment
}
