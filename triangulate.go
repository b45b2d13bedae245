package atlasc

import "math"

// maxMeshIndex is the largest index/count the wire format's 16-bit fields
// can represent (T<65535, P<65535).
const maxMeshIndex = 65535

// tri holds indices into a shared float64 point array.
type tri struct {
	a, b, c int
}

// triangulate runs an unconstrained 2-D Delaunay triangulation (Bowyer-Watson
// incremental insertion) over pts. Degenerate-area triangles are dropped.
// Returns an error if the result would not fit in 16 bits.
func triangulate(pts []Point) (*Mesh, error) {
	n := len(pts)
	if n < 3 {
		return &Mesh{Points: append([]Point(nil), pts...)}, nil
	}

	fpts := make([]vec2, n, n+3)
	for i, p := range pts {
		fpts[i] = vec2{X: float64(p.X), Y: float64(p.Y)}
	}

	minX, minY := fpts[0].X, fpts[0].Y
	maxX, maxY := fpts[0].X, fpts[0].Y
	for _, p := range fpts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	dx, dy := maxX-minX, maxY-minY
	deltaMax := math.Max(dx, dy)
	if deltaMax < 1 {
		deltaMax = 1
	}
	midX, midY := (minX+maxX)/2, (minY+maxY)/2

	// Super-triangle vertices, appended after the real points.
	superA := len(fpts)
	fpts = append(fpts,
		vec2{X: midX - 20*deltaMax, Y: midY - deltaMax},
		vec2{X: midX, Y: midY + 20*deltaMax},
		vec2{X: midX + 20*deltaMax, Y: midY - deltaMax},
	)
	superB, superC := superA+1, superA+2

	tris := []tri{{superA, superB, superC}}

	for pi := 0; pi < n; pi++ {
		p := fpts[pi]

		var bad []int
		for ti, t := range tris {
			if inCircumcircle(p, fpts[t.a], fpts[t.b], fpts[t.c]) {
				bad = append(bad, ti)
			}
		}

		type edge struct{ u, v int }
		edgeCount := map[edge]int{}
		normEdge := func(u, v int) edge {
			if u > v {
				u, v = v, u
			}
			return edge{u, v}
		}
		for _, ti := range bad {
			t := tris[ti]
			edgeCount[normEdge(t.a, t.b)]++
			edgeCount[normEdge(t.b, t.c)]++
			edgeCount[normEdge(t.c, t.a)]++
		}

		badSet := make(map[int]bool, len(bad))
		for _, ti := range bad {
			badSet[ti] = true
		}
		kept := tris[:0:0]
		for ti, t := range tris {
			if !badSet[ti] {
				kept = append(kept, t)
			}
		}
		tris = kept

		for e, count := range edgeCount {
			if count == 1 {
				tris = append(tris, tri{e.u, e.v, pi})
			}
		}
	}

	out := make([][3]int, 0, len(tris))
	for _, t := range tris {
		if t.a >= superA || t.b >= superA || t.c >= superA {
			continue
		}
		if math.Abs(triangleArea(fpts[t.a], fpts[t.b], fpts[t.c])) <= 1e-9 {
			continue
		}
		out = append(out, [3]int{t.a, t.b, t.c})
	}

	if len(out) >= maxMeshIndex || n >= maxMeshIndex {
		return nil, newErrorf(OutOfMemory, "", "mesh exceeds 16-bit index space: %d triangles, %d points", len(out), n)
	}

	return &Mesh{Points: append([]Point(nil), pts...), Triangles: out}, nil
}

// inCircumcircle reports whether p lies strictly inside the circumcircle of
// triangle (a,b,c).
func inCircumcircle(p, a, b, c vec2) bool {
	ax, ay := a.X-p.X, a.Y-p.Y
	bx, by := b.X-p.X, b.Y-p.Y
	cx, cy := c.X-p.X, c.Y-p.Y

	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)

	if triangleArea(a, b, c) > 0 {
		return det > 0
	}
	return det < 0
}

// triangleArea returns twice the signed area of triangle (a,b,c).
func triangleArea(a, b, c vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}
