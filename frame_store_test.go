package vgui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/vgui"
)

func TestFrameStoreEviction(t *testing.T) {
	var evicted []vgui.ID
	store := vgui.NewFrameStoreWithEvict(func(id vgui.ID, v *int) {
		evicted = append(evicted, id)
	})

	v, created := store.GetOrInit(7, func() int { return 42 })
	require.True(t, created)
	assert.Equal(t, 42, *v)
	_, created = store.GetOrInit(7, func() int { return 0 })
	assert.False(t, created)

	vgui.NextFrame()
	assert.NotNil(t, store.GetIfExists(7), "used in the previous frame")
	assert.Empty(t, evicted)

	vgui.NextFrame()
	assert.Nil(t, store.GetIfExists(7))
	assert.Equal(t, []vgui.ID{7}, evicted)
}

func TestFrameStoreTouchKeepsEntry(t *testing.T) {
	store := vgui.NewFrameStore[string]()
	store.Set(1, "a")
	for i := 0; i < 3; i++ {
		vgui.NextFrame()
		store.Get(1, "")
	}
	assert.Equal(t, "a", *store.GetIfExists(1))
	assert.Equal(t, 1, store.Len())
}

func TestFrameStoreDeleteAndClear(t *testing.T) {
	n := 0
	store := vgui.NewFrameStoreWithEvict(func(vgui.ID, *int) { n++ })
	store.Set(1, 1)
	store.Set(2, 2)
	store.Delete(1)
	store.Delete(99)
	assert.Equal(t, 1, n)
	store.Clear()
	assert.Equal(t, 2, n)
	assert.Zero(t, store.Len())
}
