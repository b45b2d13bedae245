package atlasc

import (
	"image"

	"github.com/septag/atlasc/internal/imop"
)

// composeSheet allocates the RGBA sheet and blits every sprite's SpriteRect
// pixels into its padded-in placement target. src[i] must be the decoded
// SourceImage for sprites[i]; both slices share index order.
func composeSheet(sheetW, sheetH int, sprites []*Sprite, src []*image.NRGBA, border, padding int) (*image.NRGBA, error) {
	bmp := imop.NewBitmap(image.Rect(0, 0, sheetW, sheetH))

	for i, sp := range sprites {
		inset := border + padding
		dstX := sp.Placement.X + inset
		dstY := sp.Placement.Y + inset

		srcRect := sp.SpriteRect.ToImageRect()
		if !srcRect.In(src[i].Bounds()) {
			return nil, newErrorf(OutOfMemory, sp.Path, "blit source rect %v escapes source image bounds %v", srcRect, src[i].Bounds())
		}
		if dstX < 0 || dstY < 0 || dstX+srcRect.Dx() > sheetW || dstY+srcRect.Dy() > sheetH {
			return nil, newErrorf(PackOverflow, sp.Path, "blit target escapes sheet bounds")
		}

		imop.Blit(bmp, dstX, dstY, src[i], srcRect)
	}

	return bmp.Img, nil
}
