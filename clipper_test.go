package vgui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/vgui"
)

func TestListClipper(t *testing.T) {
	c := vgui.NewListClipper(100, 20, 100, 45)
	assert.Equal(t, 1, c.StartIdx)
	assert.Equal(t, 9, c.EndIdx)
	assert.Equal(t, 8, c.VisibleCount())
	assert.True(t, c.ShouldRender(8))
	assert.False(t, c.ShouldRender(9))
	assert.Equal(t, 2, c.Range().Start)
	assert.Equal(t, 7, c.Range().Stop)
	assert.Equal(t, float32(2000), c.ContentHeight())
	assert.Equal(t, float32(1900), c.MaxScroll(100))
	assert.Equal(t, float32(15), c.ItemY(3, 0, 45))
}

func TestListClipperScrollToItem(t *testing.T) {
	c := vgui.NewListClipper(100, 20, 100, 0)
	assert.Equal(t, float32(320), c.ScrollToItem(20, 0, 100))
	assert.Equal(t, float32(40), c.ScrollToItem(3, 40, 100), "already visible")
	assert.Equal(t, float32(60), c.ScrollToItem(3, 80, 100))
	assert.Equal(t, float32(80), c.ScrollToItem(-1, 80, 100))
}

func TestListClipperEmpty(t *testing.T) {
	c := vgui.NewListClipper(0, 20, 100, 0)
	assert.Zero(t, c.VisibleCount())
	assert.Zero(t, c.MaxScroll(100))
}
