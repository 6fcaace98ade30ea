package vgui_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/vgui"
	"github.com/go-theft-auto/vgui/virtual"
)

// mockRenderer records what it was asked to draw.
type mockRenderer struct {
	renderCalls int
	lastCmds    int
	lastVerts   int
	err         error
}

func (m *mockRenderer) Render(dl *vgui.DrawList) error {
	m.renderCalls++
	m.lastCmds = len(dl.CmdBuffer)
	m.lastVerts = len(dl.VtxBuffer)
	return m.err
}

func (m *mockRenderer) FontTextureID() uint32 { return 1 }
func (m *mockRenderer) Resize(int, int)       {}

var display = vgui.Vec2{X: 800, Y: 600}

func TestGUIFrame(t *testing.T) {
	renderer := &mockRenderer{}
	ui := vgui.New(renderer, vgui.WithStyle(vgui.GTAStyle()))
	input := vgui.NewInputState()

	ctx := ui.Begin(input, display, 0.016)
	require.NotNil(t, ctx)
	assert.Equal(t, float32(1.5), ctx.Style().FontScale)
	ctx.Text("Hello")
	require.NoError(t, ui.End())

	assert.Equal(t, 1, renderer.renderCalls)
	assert.Equal(t, 1, renderer.lastCmds)
	assert.Equal(t, 5*4, renderer.lastVerts)
	assert.Nil(t, ctx.DrawList)
}

func TestGUIEndFlushesSchedulerOnRenderError(t *testing.T) {
	renderer := &mockRenderer{err: errors.New("lost context")}
	ui := vgui.New(renderer)
	ctx := ui.Begin(vgui.NewInputState(), display, 0.016)

	ran := false
	ctx.Scheduler().Schedule(func() { ran = true })
	assert.EqualError(t, ui.End(), "lost context")
	assert.True(t, ran)
}

func TestEndWithoutBegin(t *testing.T) {
	ui := vgui.New(&mockRenderer{})
	assert.NoError(t, ui.End())
}

type fakeSource struct{ asked []virtual.Axis }

func (f *fakeSource) PointerTarget(axis virtual.Axis) virtual.PointerTarget {
	f.asked = append(f.asked, axis)
	return (&vgui.PointerHub{}).PointerTarget(axis)
}

func TestWithPointerSource(t *testing.T) {
	src := &fakeSource{}
	ui := vgui.New(&mockRenderer{}, vgui.WithPointerSource(src))
	ctx := ui.Begin(vgui.NewInputState(), display, 0.016)
	_, err := ctx.VirtualList(t.Name(), virtual.ListConfig{
		Total:    10,
		ItemSize: virtual.FixedSize(20),
		Width:    100,
		Height:   100,
	}, nil)
	require.NoError(t, err)
	require.NoError(t, ui.End())
	assert.Equal(t, []virtual.Axis{virtual.AxisRow}, src.asked)
}

func TestStableIDIgnoresCallOrder(t *testing.T) {
	ui := vgui.New(&mockRenderer{})
	ctx := ui.Begin(vgui.NewInputState(), display, 0.016)
	a := ctx.StableID("grid")
	_ = ctx.GetID("other")
	assert.Equal(t, a, ctx.StableID("grid"))
	assert.NotEqual(t, ctx.GetID("grid"), ctx.GetID("grid"))

	ctx.PushID("panel")
	assert.NotEqual(t, a, ctx.StableID("grid"))
	ctx.PopID()
	assert.Equal(t, vgui.ID(0), ctx.CurrentID())
	require.NoError(t, ui.End())
}
