// Package imop implements the pixel-level compositing operation the sheet
// composer needs: a single raw "copy" operation. An atlas sheet never
// blends, so this is a straight per-row byte copy instead of a per-channel
// float composite.
package imop

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Bitmap is a destination canvas for a Blit.
type Bitmap struct {
	Img *image.NRGBA
}

// NewBitmap allocates a bitmap of the given size, cleared to transparent black.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{Img: imaging.New(rect.Dx(), rect.Dy(), color.Transparent)}
}

// Blit copies the src rectangle srcRect verbatim into bitmap at (dstX,dstY),
// one row at a time. No resampling, no alpha blending: every byte, including
// alpha, is copied as-is.
func Blit(bitmap *Bitmap, dstX, dstY int, src *image.NRGBA, srcRect image.Rectangle) {
	w := srcRect.Dx()
	if w <= 0 || srcRect.Dy() <= 0 {
		return
	}
	dst := bitmap.Img
	for row := 0; row < srcRect.Dy(); row++ {
		srcY := srcRect.Min.Y + row
		dstY2 := dstY + row
		srcOff := src.PixOffset(srcRect.Min.X, srcY)
		dstOff := dst.PixOffset(dstX, dstY2)
		copy(dst.Pix[dstOff:dstOff+w*4], src.Pix[srcOff:srcOff+w*4])
	}
}
