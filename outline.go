package atlasc

// moore8 lists the 8 neighbor offsets in clockwise order (screen convention,
// y increasing downward), starting East: E, SE, S, SW, W, NW, N, NE.
var moore8 = [8]Point{
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
	{X: -1, Y: -1},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
}

// component is one 8-connected opaque region of a mask, identified during a
// single raster-order flood fill pass.
type component struct {
	area  int
	start Point // topmost-leftmost pixel, by construction of the raster scan
}

// findComponents labels the 8-connected opaque regions of d via flood fill,
// returning one component per region in the order their start pixel is
// first encountered during a top-to-bottom, left-to-right scan. That scan
// order guarantees each component's start pixel is already its
// topmost-leftmost pixel.
func findComponents(d *AlphaMask) []component {
	visited := make([]bool, d.W*d.H)
	var comps []component

	var stack []Point
	for y := 0; y < d.H; y++ {
		for x := 0; x < d.W; x++ {
			idx := y*d.W + x
			if visited[idx] || !d.Opaque(x, y) {
				continue
			}
			c := component{start: Point{X: x, Y: y}}
			stack = stack[:0]
			stack = append(stack, Point{X: x, Y: y})
			visited[idx] = true
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				c.area++
				for _, o := range moore8 {
					nx, ny := p.X+o.X, p.Y+o.Y
					if nx < 0 || ny < 0 || nx >= d.W || ny >= d.H {
						continue
					}
					nidx := ny*d.W + nx
					if visited[nidx] || !d.Opaque(nx, ny) {
						continue
					}
					visited[nidx] = true
					stack = append(stack, Point{X: nx, Y: ny})
				}
			}
			comps = append(comps, c)
		}
	}
	return comps
}

// largestComponent selects the winning region: largest area, ties broken by
// smallest ymin then xmin. Components are supplied in
// raster-scan discovery order, so on an area tie the first one already has
// the smaller (ymin,xmin) start and must be kept.
func largestComponent(comps []component) (component, bool) {
	if len(comps) == 0 {
		return component{}, false
	}
	best := comps[0]
	for _, c := range comps[1:] {
		if c.area > best.area {
			best = c
		}
	}
	return best, true
}

// traceOutline produces the OutlinePath for the largest connected opaque
// region of the dilated mask d. It fails with EmptySprite if d has no
// opaque pixel.
//
// The trace uses canonical 8-direction Moore-neighbor boundary following,
// starting at the region's topmost-leftmost pixel, and closes when it is
// back at that start pixel and about to repeat its first move.
func traceOutline(d *AlphaMask) (*OutlinePath, error) {
	comps := findComponents(d)
	win, ok := largestComponent(comps)
	if !ok {
		return nil, newErrorf(EmptySprite, "", "no opaque pixel found")
	}

	start := win.start
	// The start pixel was found scanning left-to-right, so the pixel to its
	// west is guaranteed background; that fixes the initial backtrack
	// direction used by the Moore-neighbor algorithm.
	const west = 4

	path := &OutlinePath{Points: []Point{start}}

	cur := start
	entry := west
	firstMove := -1
	for {
		found := -1
		for k := 1; k <= 8; k++ {
			dir := (entry + k) % 8
			o := moore8[dir]
			nx, ny := cur.X+o.X, cur.Y+o.Y
			if nx < 0 || ny < 0 || nx >= d.W || ny >= d.H {
				continue
			}
			if d.Opaque(nx, ny) {
				found = dir
				break
			}
		}
		if found == -1 {
			// Isolated single opaque pixel: the region is just the start.
			break
		}
		if cur == start && found == firstMove {
			break
		}
		if firstMove == -1 {
			firstMove = found
		}
		next := Point{X: cur.X + moore8[found].X, Y: cur.Y + moore8[found].Y}
		backtrack := (found + 4) % 8

		if next != start {
			path.Points = append(path.Points, next)
		}
		cur = next
		entry = backtrack

		if len(path.Points) > 4*(win.area+1) {
			// Safety valve: a correctly traced boundary of an N-pixel region
			// visits at most a small multiple of N edges. Bail rather than
			// loop forever on a malformed mask.
			break
		}
	}

	if path.Len() < 3 {
		return nil, newErrorf(EmptySprite, "", "traced outline degenerates to %d vertices", path.Len())
	}
	return path, nil
}
