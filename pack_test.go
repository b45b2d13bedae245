package atlasc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rectsOverlap(a, b packRect) bool {
	return a.x < b.x+b.w && b.x < a.x+a.w && a.y < b.y+b.h && b.y < a.y+a.h
}

func TestPackRects_NonOverlapping(t *testing.T) {
	assert := assert.New(t)

	rects := []packRect{
		{index: 0, w: 38, h: 38},
		{index: 1, w: 38, h: 38},
	}
	placed, err := packRects(rects, 256, 256)
	assert.NoError(err)
	assert.True(placed[0].placed)
	assert.True(placed[1].placed)
	assert.False(rectsOverlap(placed[0], placed[1]))
}

func TestPackRects_Overflow(t *testing.T) {
	assert := assert.New(t)

	rects := make([]packRect, 4)
	for i := range rects {
		rects[i] = packRect{index: i, w: 600, h: 600}
	}
	_, err := packRects(rects, 1024, 1024)
	assert.Error(err)

	var pipeErr *Error
	assert.ErrorAs(err, &pipeErr)
	assert.Equal(PackOverflow, pipeErr.Kind)
}

func TestPackRects_PreservesOriginalOrder(t *testing.T) {
	assert := assert.New(t)

	rects := []packRect{
		{index: 0, w: 10, h: 10},
		{index: 1, w: 40, h: 40},
		{index: 2, w: 20, h: 20},
	}
	placed, err := packRects(rects, 256, 256)
	assert.NoError(err)
	assert.Equal(10, placed[0].w)
	assert.Equal(40, placed[1].w)
	assert.Equal(20, placed[2].w)
}
