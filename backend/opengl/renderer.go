// Package opengl draws vgui frames with OpenGL 4.1 and feeds it GLFW input.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/vgui"
)

// Renderer implements vgui.Renderer.
type Renderer struct {
	program   uint32
	vao       uint32
	vbo, ebo  uint32
	fontTex   uint32
	projLoc   int32
	texLoc    int32
	useTexLoc int32

	width, height int
}

var _ vgui.Renderer = (*Renderer)(nil)

const vertexStride = int32(unsafe.Sizeof(vgui.Vertex{}))

// NewRenderer compiles the shaders and uploads the font atlas. A GL context
// must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{width: width, height: height}

	var err error
	if r.program, err = linkProgram(vertexShaderSource, fragmentShaderSource); err != nil {
		return nil, fmt.Errorf("opengl: %w", err)
	}
	r.projLoc = gl.GetUniformLocation(r.program, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.program, gl.Str("atlas\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.program, gl.Str("useTexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, vertexStride, unsafe.Offsetof(vgui.Vertex{}.Pos))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, vertexStride, unsafe.Offsetof(vgui.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)
	// packed 0xAABBGGRR reads as RGBA bytes on little endian
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, vertexStride, unsafe.Offsetof(vgui.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	r.fontTex = uploadAtlas(fontAtlas())
	return r, nil
}

func (r *Renderer) FontTextureID() uint32 { return r.fontTex }

// Resize sets the framebuffer size used for projection and scissoring.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// Render draws a finalized draw list. GL state touched here is restored
// before returning.
func (r *Renderer) Render(dl *vgui.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	saved := saveState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.program)
	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(vertexStride), gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2, gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}
		x, y, w, h, ok := scissorRect(cmd.ClipRect, r.width, r.height)
		if !ok {
			continue
		}
		gl.Scissor(x, y, w, h)
		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.useTexLoc, 1)
		} else {
			gl.Uniform1i(r.useTexLoc, 0)
		}
		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElemCount), gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2, int32(cmd.VertexOffset))
	}
	gl.BindVertexArray(0)
	return nil
}

// Delete releases the GL objects.
func (r *Renderer) Delete() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// scissorRect converts a top-left clip rectangle (x1, y1, x2, y2) into GL's
// bottom-left scissor box, cut to the framebuffer. ok is false when nothing
// of the clip is on screen.
func scissorRect(clip [4]float32, width, height int) (x, y, w, h int32, ok bool) {
	x1 := max(clip[0], 0)
	y1 := max(clip[1], 0)
	x2 := min(clip[2], float32(width))
	y2 := min(clip[3], float32(height))
	if x2 <= x1 || y2 <= y1 {
		return 0, 0, 0, 0, false
	}
	return int32(x1), int32(float32(height) - y2), int32(x2 - x1), int32(y2 - y1), true
}

type glState struct {
	program            int32
	blendSrc, blendDst int32
	scissor            [4]int32
	enabled            map[uint32]bool
}

var toggledCaps = []uint32{gl.BLEND, gl.DEPTH_TEST, gl.CULL_FACE, gl.SCISSOR_TEST}

func saveState() glState {
	s := glState{enabled: make(map[uint32]bool, len(toggledCaps))}
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissor[0])
	for _, c := range toggledCaps {
		s.enabled[c] = gl.IsEnabled(c)
	}
	return s
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.BlendFunc(uint32(s.blendSrc), uint32(s.blendDst))
	for c, on := range s.enabled {
		if on {
			gl.Enable(c)
		} else {
			gl.Disable(c)
		}
	}
	gl.Scissor(s.scissor[0], s.scissor[1], s.scissor[2], s.scissor[3])
}

func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
