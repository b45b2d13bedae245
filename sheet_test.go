package atlasc

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeSheet_BlitsSourcePixelsVerbatim(t *testing.T) {
	assert := assert.New(t)

	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	sp := &Sprite{
		SpriteRect: Rect{XMin: 2, YMin: 2, XMax: 6, YMax: 6},
		Placement:  Placement{X: 0, Y: 0, W: 8, H: 8},
	}
	border, padding := 1, 1

	sheet, err := composeSheet(16, 16, []*Sprite{sp}, []*image.NRGBA{src}, border, padding)
	assert.NoError(err)

	inset := border + padding
	got := sheet.NRGBAAt(inset, inset)
	assert.Equal(color.NRGBA{R: 200, G: 100, B: 50, A: 255}, got)

	outside := sheet.NRGBAAt(0, 0)
	assert.Equal(color.NRGBA{}, outside)
}

func TestComposeSheet_RejectsOutOfBoundsTarget(t *testing.T) {
	assert := assert.New(t)

	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	sp := &Sprite{
		SpriteRect: Rect{XMin: 0, YMin: 0, XMax: 10, YMax: 10},
		Placement:  Placement{X: 0, Y: 0, W: 10, H: 10},
	}

	_, err := composeSheet(4, 4, []*Sprite{sp}, []*image.NRGBA{src}, 0, 0)
	assert.Error(err)
}
