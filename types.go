package vgui

import "github.com/go-theft-auto/vgui/virtual"

// Vec2 is a screen position or size.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Along returns the component of v on the scroll axis: Y for rows, X for columns.
func (v Vec2) Along(axis virtual.Axis) float32 {
	if axis == virtual.AxisColumn {
		return v.X
	}
	return v.Y
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y float32 // top-left
	W, H float32
}

// Contains reports whether p is inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects reports whether r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Start and Length return r's extent on the scroll axis.
func (r Rect) Start(axis virtual.Axis) float32 {
	if axis == virtual.AxisColumn {
		return r.X
	}
	return r.Y
}

func (r Rect) Length(axis virtual.Axis) float32 {
	if axis == virtual.AxisColumn {
		return r.W
	}
	return r.H
}

// Vertex matches the OpenGL attribute layout used by the renderer.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32 // packed 0xAABBGGRR
}

// DrawCmd is one batch of indices sharing a texture and clip rectangle.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32 // x1, y1, x2, y2
	TextureID    uint32     // 0 = untextured
	VertexOffset uint32
	IndexOffset  uint32
}

// Colors are packed as 0xAABBGGRR.
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorYellow      uint32 = 0xFF00FFFF
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorLightGray   uint32 = 0xFFC0C0C0
	ColorTransparent uint32 = 0x00000000
)

// RGBA packs 8-bit components.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA splits a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
