package atlasc

import (
	"math"

	"github.com/septag/atlasc/utils"
)

// repairEps is the cross-product epsilon distinguishing convex/concave from
// collinear corners.
const repairEps = 1e-5

// repairStep is the fixed per-iteration outward offset, in pixel units.
const repairStep = 2.0

// maxRepairIterationsPerEdge bounds the per-edge "push until clear" loop —
// termination is otherwise guaranteed by the stuck-vertex check, this is a
// defensive backstop.
const maxRepairIterationsPerEdge = 256

// repairOutline pushes vertex pairs outward until no edge of the closed
// polyline crosses an opaque pixel of the pre-dilate threshold mask m.
// Repair runs in floating point; the result is rounded back to the integer
// lattice after every move. Edges are visited once, in order; once neither
// vertex of an edge can move (both clamped to the mask bounds), that edge is
// left as it is and may still cross m.
func repairOutline(o *OutlinePath, m *AlphaMask) *OutlinePath {
	pts := make([]Point, len(o.Points))
	copy(pts, o.Points)
	n := len(pts)
	if n < 3 {
		return &OutlinePath{Points: pts}
	}

	for i := 0; i < n; i++ {
		i2 := (i + 1) % n
		for iter := 0; iter < maxRepairIterationsPerEdge; iter++ {
			if !segmentHitsMask(pts[i], pts[i2], m) {
				break
			}
			np1 := offsetVertex(pts, i, m.W, m.H)
			np2 := offsetVertex(pts, i2, m.W, m.H)
			moved := np1 != pts[i] || np2 != pts[i2]
			pts[i], pts[i2] = np1, np2
			if !moved {
				break
			}
		}
	}
	return &OutlinePath{Points: pts}
}

// offsetVertex computes the new position of pts[idx] after one outward
// repair step, given its two fixed neighbors, clamped to [0,w]×[0,h].
func offsetVertex(pts []Point, idx, w, h int) Point {
	n := len(pts)
	prev := pts[(idx-1+n)%n]
	cur := pts[idx]
	next := pts[(idx+1)%n]

	ePrev := unit(sub(cur, prev))
	eNext := unit(sub(next, cur))
	crossZ := ePrev.X*eNext.Y - ePrev.Y*eNext.X

	var dir vec2
	sign := 1.0
	switch {
	case crossZ > repairEps:
		dir, sign = bisector(ePrev, eNext), 1
	case crossZ < -repairEps:
		dir, sign = bisector(ePrev, eNext), -1
	default:
		dir, sign = leftPerp(ePrev), 1
	}
	if dir.X == 0 && dir.Y == 0 {
		dir = leftPerp(ePrev)
	}

	nx := float64(cur.X) + sign*dir.X*repairStep
	ny := float64(cur.Y) + sign*dir.Y*repairStep
	nx = clampFloat(nx, 0, float64(w))
	ny = clampFloat(ny, 0, float64(h))

	return Point{X: int(math.Round(nx)), Y: int(math.Round(ny))}
}

type vec2 struct{ X, Y float64 }

func sub(a, b Point) vec2 {
	return vec2{X: float64(a.X - b.X), Y: float64(a.Y - b.Y)}
}

func unit(v vec2) vec2 {
	l := math.Hypot(v.X, v.Y)
	if l < 1e-12 {
		return vec2{}
	}
	return vec2{X: v.X / l, Y: v.Y / l}
}

// bisector returns the unit vector perpendicular to the sum of two unit edge
// directions (the normalized difference a-b). On a clockwise-wound polyline
// it points outward at a convex corner and inward at a concave one, hence
// the -1 sign offsetVertex applies to concave corners.
func bisector(a, b vec2) vec2 {
	return unit(vec2{X: a.X - b.X, Y: a.Y - b.Y})
}

// leftPerp rotates v so it points to the left of travel, which is outward
// for a clockwise-wound (screen convention) polyline: interior lies to the
// right of the direction of travel, so outward is the left side.
func leftPerp(v vec2) vec2 {
	return vec2{X: v.Y, Y: -v.X}
}

func clampFloat(v, lo, hi float64) float64 {
	return utils.Min(utils.Max(v, lo), hi)
}

// segmentHitsMask reports whether the Bresenham rasterization of (a,b)
// visits any cell where mask is opaque.
func segmentHitsMask(a, b Point, mask *AlphaMask) bool {
	hit := false
	bresenham(a, b, func(x, y int) bool {
		if mask.Opaque(x, y) {
			hit = true
			return false
		}
		return true
	})
	return hit
}

// bresenham walks the integer rasterization of the segment (a,b), calling
// visit for every cell. Iteration stops early if visit returns false.
func bresenham(a, b Point, visit func(x, y int) bool) {
	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y

	dx := utils.Abs(x1 - x0)
	dy := -utils.Abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		if !visit(x, y) {
			return
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}
