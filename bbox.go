package atlasc

import "github.com/septag/atlasc/utils"

// boundingBox computes the tight integer AABB of an outline path. It fails
// with DegenerateSprite if the result has zero width or height.
func boundingBox(o *OutlinePath) (Rect, error) {
	if o.Len() == 0 {
		return Rect{}, newErrorf(DegenerateSprite, "", "empty outline")
	}

	r := Rect{XMin: o.Points[0].X, YMin: o.Points[0].Y, XMax: o.Points[0].X, YMax: o.Points[0].Y}
	for _, p := range o.Points[1:] {
		r.XMin = utils.Min(r.XMin, p.X)
		r.YMin = utils.Min(r.YMin, p.Y)
		r.XMax = utils.Max(r.XMax, p.X)
		r.YMax = utils.Max(r.YMax, p.Y)
	}
	// Half-open on max: the AABB of a point set must extend one past the
	// largest coordinate to contain it under half-open semantics.
	r.XMax++
	r.YMax++

	if r.Empty() {
		return r, newErrorf(DegenerateSprite, "", "zero-area sprite rect %v", r)
	}
	return r, nil
}
