package vgui

import "sync"

// noClip is the clip rectangle of an empty clip stack.
var noClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList takes a cleared DrawList from the pool.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns dl to the pool.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates the primitives of one frame, batched into commands
// that share a texture and a clip rectangle.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack [][4]float32
	clip      [4]float32
	texture   uint32
	vtxStart  uint32 // first vertex of the open command
	idxStart  uint32 // first index of the open command
}

// Clear empties the list and keeps its capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.clip = noClip
	dl.texture = 0
	dl.vtxStart = 0
	dl.idxStart = 0
}

// PushClipRect restricts subsequent primitives to (x1, y1)-(x2, y2).
// Nested clips are intersected with the enclosing one.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.clip)
	outer := dl.clip
	dl.clip = [4]float32{
		max(x1, outer[0]), max(y1, outer[1]),
		min(x2, outer[2]), min(y2, outer[3]),
	}
	dl.openCommand()
}

// PopClipRect restores the enclosing clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.clip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.openCommand()
}

// ClipRect returns the active clip rectangle.
func (dl *DrawList) ClipRect() [4]float32 { return dl.clip }

// SetTexture switches the texture of subsequent primitives.
func (dl *DrawList) SetTexture(id uint32) {
	if dl.texture == id {
		return
	}
	dl.texture = id
	dl.openCommand()
}

// openCommand closes the current command and starts one with the active
// texture and clip.
func (dl *DrawList) openCommand() {
	dl.closeCommand()
	dl.vtxStart = uint32(len(dl.VtxBuffer))
	dl.idxStart = uint32(len(dl.IdxBuffer))
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.clip,
		TextureID:    dl.texture,
		VertexOffset: dl.vtxStart,
		IndexOffset:  dl.idxStart,
	})
}

func (dl *DrawList) closeCommand() {
	if n := len(dl.CmdBuffer); n > 0 {
		dl.CmdBuffer[n-1].ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxStart
	}
}

// quad appends two triangles. Indices are relative to the open command.
func (dl *DrawList) quad(x0, y0, x1, y1, u0, v0, u1, v1 float32, color uint32) {
	if len(dl.CmdBuffer) == 0 {
		dl.openCommand()
	}
	base := uint16(uint32(len(dl.VtxBuffer)) - dl.vtxStart)
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{u0, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{u1, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{u1, v1}, Color: color},
		Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{u0, v1}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, base, base+1, base+2, base, base+2, base+3)
}

func transparent(color uint32) bool { return color&0xFF000000 == 0 }

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if transparent(color) || w <= 0 || h <= 0 {
		return
	}
	dl.quad(x, y, x+w, y+h, 0, 0, 0, 0, color)
}

// AddRectOutline draws the border of a rectangle.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if transparent(color) {
		return
	}
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddText draws text with the built-in bitmap font: a 16x6 grid of 8x8
// glyphs covering ASCII 32-127 in a 128x48 texture. The caller selects the
// font texture with SetTexture.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, scale, charWidth, charHeight float32) {
	if transparent(color) || text == "" {
		return
	}
	cw, ch := charWidth*scale, charHeight*scale
	col := 0
	for _, r := range text {
		if r < 32 || r > 127 {
			r = '?'
		}
		g := int(r - 32)
		gx, gy := float32(g%16), float32(g/16)
		px := x + float32(col)*cw
		dl.quad(px, y, px+cw, y+ch, gx*8/128, gy*8/48, (gx+1)*8/128, (gy+1)*8/48, color)
		col++
	}
}

// Finalize closes the last command and drops empty ones.
func (dl *DrawList) Finalize() {
	dl.closeCommand()
	kept := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			kept = append(kept, cmd)
		}
	}
	dl.CmdBuffer = kept
}
