package atlasc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func starOutline(n int, rOuter, rInner float64) *OutlinePath {
	pts := make([]Point, 0, n*2)
	for i := 0; i < n*2; i++ {
		angle := float64(i) * math.Pi / float64(n)
		r := rOuter
		if i%2 == 1 {
			r = rInner
		}
		x := int(100 + r*math.Cos(angle))
		y := int(100 + r*math.Sin(angle))
		pts = append(pts, Point{X: x, Y: y})
	}
	return &OutlinePath{Points: pts}
}

func TestSimplifyOutline_RespectsVertexBudget(t *testing.T) {
	assert := assert.New(t)

	o := starOutline(100, 50, 20)
	simplified := simplifyOutline(o, 12)
	assert.LessOrEqual(simplified.Len(), 12)
	assert.GreaterOrEqual(simplified.Len(), 3)
}

func TestSimplifyOutline_CollinearPointsRemoved(t *testing.T) {
	assert := assert.New(t)

	o := &OutlinePath{Points: []Point{
		{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0},
		{X: 10, Y: 10}, {X: 0, Y: 10},
	}}
	simplified := simplifyOutline(o, 25)
	assert.Equal(4, simplified.Len())
}

func TestSimplifyOutline_NeverBelowTriangle(t *testing.T) {
	assert := assert.New(t)

	o := starOutline(50, 50, 48)
	simplified := simplifyOutline(o, 3)
	assert.GreaterOrEqual(simplified.Len(), 3)
}
