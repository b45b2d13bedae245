package atlasc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepairOutline_ClearsEveryEdge(t *testing.T) {
	assert := assert.New(t)

	m := filledRectMask(40, 40, 10, 10, 30, 30)
	// A coarse diamond that cuts straight across the filled square; its
	// edges must get pushed out until none crosses an opaque M pixel.
	o := &OutlinePath{Points: []Point{
		{X: 20, Y: 8}, {X: 32, Y: 20}, {X: 20, Y: 32}, {X: 8, Y: 20},
	}}

	repaired := repairOutline(o, m)

	for i := 0; i < repaired.Len(); i++ {
		a := repaired.At(i)
		b := repaired.At(i + 1)
		assert.False(segmentHitsMask(a, b, m), "edge %v-%v still crosses M", a, b)
	}
}

func TestRepairOutline_TooShortPathIsUnchanged(t *testing.T) {
	assert := assert.New(t)

	m := NewAlphaMask(10, 10)
	o := &OutlinePath{Points: []Point{{X: 1, Y: 1}, {X: 2, Y: 2}}}
	repaired := repairOutline(o, m)
	assert.Equal(o.Points, repaired.Points)
}

func TestBresenham_VisitsEndpoints(t *testing.T) {
	assert := assert.New(t)

	var visited []Point
	bresenham(Point{X: 0, Y: 0}, Point{X: 3, Y: 0}, func(x, y int) bool {
		visited = append(visited, Point{X: x, Y: y})
		return true
	})
	assert.Equal(Point{X: 0, Y: 0}, visited[0])
	assert.Equal(Point{X: 3, Y: 0}, visited[len(visited)-1])
	assert.Len(visited, 4)
}
