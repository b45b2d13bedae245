package atlasc

import "sort"

// packRect is one rectangle to place, carrying the index of the sprite it
// belongs to so results can be mapped back after an internal sort.
type packRect struct {
	index  int
	w, h   int
	placed bool
	x, y   int
}

// skylineNode is one segment of the packer's top contour.
type skylineNode struct {
	x, y, width int
}

// skylinePacker implements bottom-left skyline bin packing.
type skylinePacker struct {
	maxW, maxH int
	nodeBudget int
	skyline    []skylineNode
}

func newSkylinePacker(maxW, maxH int) *skylinePacker {
	return &skylinePacker{
		maxW:       maxW,
		maxH:       maxH,
		nodeBudget: maxW + maxH,
		skyline:    []skylineNode{{x: 0, y: 0, width: maxW}},
	}
}

// packRects places every rect, or reports PackOverflow if at least one
// rectangle did not fit. Rects are tried largest-height-first for packing
// quality, then results are returned indexed by the caller's original order.
func packRects(rects []packRect, maxW, maxH int) ([]packRect, error) {
	order := make([]int, len(rects))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return rects[order[i]].h > rects[order[j]].h
	})

	p := newSkylinePacker(maxW, maxH)
	out := make([]packRect, len(rects))
	copy(out, rects)

	for _, idx := range order {
		r := out[idx]
		x, y, nodeIdx, ok := p.findPosition(r.w, r.h)
		if !ok {
			return nil, newErrorf(PackOverflow, "", "rectangle %dx%d does not fit in %dx%d sheet", r.w, r.h, maxW, maxH)
		}
		p.place(nodeIdx, x, y, r.w, r.h)
		if len(p.skyline) > p.nodeBudget {
			return nil, newErrorf(PackOverflow, "", "skyline exceeded node budget %d", p.nodeBudget)
		}
		out[idx].x, out[idx].y, out[idx].placed = x, y, true
	}
	return out, nil
}

// findPosition returns the bottom-left-most position fitting a w×h rect,
// and the skyline node index the rect would start at.
func (p *skylinePacker) findPosition(w, h int) (x, y, nodeIdx int, ok bool) {
	bestY := -1
	bestX := -1
	bestIdx := -1

	for i := range p.skyline {
		cx := p.skyline[i].x
		if cx+w > p.maxW {
			continue
		}
		cy, fits := p.heightUnder(i, cx, w)
		if !fits {
			continue
		}
		if cy+h > p.maxH {
			continue
		}
		if bestY == -1 || cy < bestY || (cy == bestY && cx < bestX) {
			bestY, bestX, bestIdx = cy, cx, i
		}
	}
	if bestIdx == -1 {
		return 0, 0, 0, false
	}
	return bestX, bestY, bestIdx, true
}

// heightUnder returns the highest skyline y under [x, x+w), starting the
// scan at node startIdx, and whether the span is fully covered by contiguous
// nodes within the bin width.
func (p *skylinePacker) heightUnder(startIdx, x, w int) (int, bool) {
	right := x + w
	maxY := 0
	cursor := x
	for i := startIdx; i < len(p.skyline); i++ {
		n := p.skyline[i]
		if n.x > cursor {
			return 0, false
		}
		if n.y > maxY {
			maxY = n.y
		}
		cursor = n.x + n.width
		if cursor >= right {
			return maxY, true
		}
	}
	return 0, false
}

// place inserts a w×h rect at (x,y) into the skyline, splitting/merging
// nodes so the contour stays a minimal, sorted-by-x sequence.
func (p *skylinePacker) place(nodeIdx, x, y, w, h int) {
	newNode := skylineNode{x: x, y: y + h, width: w}

	var rebuilt []skylineNode
	right := x + w
	for _, n := range p.skyline {
		nRight := n.x + n.width
		switch {
		case nRight <= x || n.x >= right:
			rebuilt = append(rebuilt, n)
		case n.x < x && nRight > right:
			rebuilt = append(rebuilt, skylineNode{x: n.x, y: n.y, width: x - n.x})
			rebuilt = append(rebuilt, newNode)
			rebuilt = append(rebuilt, skylineNode{x: right, y: n.y, width: nRight - right})
			newNode.width = 0
		case n.x < x:
			rebuilt = append(rebuilt, skylineNode{x: n.x, y: n.y, width: x - n.x})
		case nRight > right:
			rebuilt = append(rebuilt, skylineNode{x: right, y: n.y, width: nRight - right})
		default:
			// fully covered, dropped
		}
	}
	if newNode.width > 0 {
		inserted := false
		final := make([]skylineNode, 0, len(rebuilt)+1)
		for _, n := range rebuilt {
			if !inserted && n.x >= newNode.x {
				final = append(final, newNode)
				inserted = true
			}
			final = append(final, n)
		}
		if !inserted {
			final = append(final, newNode)
		}
		rebuilt = final
	}
	sort.Slice(rebuilt, func(i, j int) bool { return rebuilt[i].x < rebuilt[j].x })
	p.skyline = mergeSkyline(rebuilt)
	_ = nodeIdx
}

// mergeSkyline coalesces adjacent nodes of equal height to keep the contour
// compact, bounding it well under the max_w+max_h node budget.
func mergeSkyline(nodes []skylineNode) []skylineNode {
	if len(nodes) == 0 {
		return nodes
	}
	out := nodes[:1]
	for _, n := range nodes[1:] {
		last := &out[len(out)-1]
		if last.y == n.y && last.x+last.width == n.x {
			last.width += n.width
		} else {
			out = append(out, n)
		}
	}
	return out
}
