package atlasc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeUVs_FormulaExact(t *testing.T) {
	assert := assert.New(t)

	mesh := &Mesh{Points: []Point{{X: 5, Y: 5}, {X: 9, Y: 5}, {X: 9, Y: 9}}}
	spriteRect := Rect{XMin: 4, YMin: 4, XMax: 10, YMax: 10}
	// SheetRect.min already sits at placement.min+border (22,32 here); the UV
	// origin must match that, not placement.min alone.
	sheetRect := Rect{XMin: 22, YMin: 32, XMax: 30, YMax: 40}
	padding := 1

	uvs := computeUVs(mesh, spriteRect, sheetRect, padding)
	assert.Len(uvs, 3)
	for i, v := range mesh.Points {
		want := Point{
			X: v.X - spriteRect.XMin + sheetRect.XMin + padding,
			Y: v.Y - spriteRect.YMin + sheetRect.YMin + padding,
		}
		assert.Equal(want, uvs[i])
	}
}

func TestComputeUVs_MatchesBlitTargetTopLeft(t *testing.T) {
	assert := assert.New(t)

	// border=2, padding=1: the blit target (sheet.go's dstX/dstY) sits at
	// placement.min+border+padding. A vertex at sprite_rect.min must map to
	// exactly that point, not placement.min+padding.
	border, padding := 2, 1
	placement := Placement{X: 20, Y: 30, W: 16, H: 16}
	sheetRect := Rect{
		XMin: placement.X + border, YMin: placement.Y + border,
		XMax: placement.X + placement.W - border, YMax: placement.Y + placement.H - border,
	}
	spriteRect := Rect{XMin: 4, YMin: 4, XMax: 14, YMax: 14}
	mesh := &Mesh{Points: []Point{{X: 4, Y: 4}}}

	uvs := computeUVs(mesh, spriteRect, sheetRect, padding)
	assert.Equal(Point{X: placement.X + border + padding, Y: placement.Y + border + padding}, uvs[0])
}

func TestComputeUVs_NilMeshReturnsNil(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(computeUVs(nil, Rect{}, Rect{}, 0))
}
