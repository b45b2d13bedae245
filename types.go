package atlasc

import "image"

// AlphaMask is a W×H byte matrix where each cell is 0 (transparent) or 255
// (opaque). M is the thresholded mask, D its single-pass 8-connected dilation.
type AlphaMask struct {
	W, H int
	Pix  []uint8
}

// NewAlphaMask allocates a cleared W×H mask.
func NewAlphaMask(w, h int) *AlphaMask {
	return &AlphaMask{W: w, H: h, Pix: make([]uint8, w*h)}
}

// At reports the mask value at (x,y), treating out-of-bounds as 0.
func (m *AlphaMask) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return 0
	}
	return m.Pix[y*m.W+x]
}

// Set writes the mask value at (x,y).
func (m *AlphaMask) Set(x, y int, v uint8) {
	m.Pix[y*m.W+x] = v
}

// Opaque reports whether the cell at (x,y) is opaque (255).
func (m *AlphaMask) Opaque(x, y int) bool {
	return m.At(x, y) == 255
}

// Point is an integer 2-D lattice coordinate.
type Point struct {
	X, Y int
}

// OutlinePath is a finite, ordered, closed sequence of lattice points tracing
// the exterior of a connected opaque region. The implicit edge (pₙ₋₁,p₀)
// closes the loop; Points does not repeat the first point at the end.
type OutlinePath struct {
	Points []Point
}

// Len returns the number of vertices in the path.
func (o *OutlinePath) Len() int { return len(o.Points) }

// At returns vertex i modulo the path length, supporting wraparound indexing.
func (o *OutlinePath) At(i int) Point {
	n := len(o.Points)
	i %= n
	if i < 0 {
		i += n
	}
	return o.Points[i]
}

// Rect is an integer axis-aligned rectangle, half-open on Max.
type Rect struct {
	XMin, YMin, XMax, YMax int
}

// Width returns XMax-XMin.
func (r Rect) Width() int { return r.XMax - r.XMin }

// Height returns YMax-YMin.
func (r Rect) Height() int { return r.YMax - r.YMin }

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Slice returns the rectangle as a 4-tuple [xmin,ymin,xmax,ymax], matching
// the descriptor document's wire shape.
func (r Rect) Slice() [4]int { return [4]int{r.XMin, r.YMin, r.XMax, r.YMax} }

// ToImageRect converts to the standard library's image.Rectangle.
func (r Rect) ToImageRect() image.Rectangle {
	return image.Rect(r.XMin, r.YMin, r.XMax, r.YMax)
}

// Mesh is a simplified triangular mesh hugging a sprite's opaque silhouette.
// Positions are in the sprite's local pixel coordinate system; UVs, if
// present, are sheet-space pixel coordinates for the same vertex indices.
type Mesh struct {
	Points    []Point
	Triangles [][3]int
	UVs       []Point
}

// NumVertices returns the number of mesh points.
func (m *Mesh) NumVertices() int {
	if m == nil {
		return 0
	}
	return len(m.Points)
}

// NumTriangles returns the number of mesh triangles.
func (m *Mesh) NumTriangles() int {
	if m == nil {
		return 0
	}
	return len(m.Triangles)
}

// Placement is a packed rectangle on the sheet before the border is
// subtracted back out.
type Placement struct {
	X, Y, W, H int
}

// Sprite ties together one input image's geometry through the pipeline.
// It is owned exclusively by the Pipeline Driver.
type Sprite struct {
	Path string

	SrcW, SrcH int

	SpriteRect Rect
	SheetRect  Rect
	Placement  Placement

	Outline *OutlinePath
	Mesh    *Mesh
}
