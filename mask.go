package atlasc

import "image"

// buildAlphaMask reduces an RGBA image to a thresholded binary alpha mask M
// and its single-pass 8-connected dilation D.
//
// M[x,y] is 255 when the source alpha at (x,y) is >= threshold, else 0. D
// expands every opaque cell of M into its 8-neighborhood exactly once; cells
// outside the image bounds are treated as 0 during dilation.
func buildAlphaMask(img *image.NRGBA, threshold int) (m, d *AlphaMask) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	m = NewAlphaMask(w, h)
	for y := 0; y < h; y++ {
		row := img.Pix[(y)*img.Stride : (y+1)*img.Stride]
		for x := 0; x < w; x++ {
			a := row[x*4+3]
			if int(a) >= threshold {
				m.Set(x, y, 255)
			}
		}
	}

	d = dilate8(m)
	return m, d
}

// dilate8 expands every opaque cell of m into its 8-neighborhood once.
func dilate8(m *AlphaMask) *AlphaMask {
	d := NewAlphaMask(m.W, m.H)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.Opaque(x, y) {
				d.Set(x, y, 255)
				continue
			}
			opaque := false
			for dy := -1; dy <= 1 && !opaque; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if m.Opaque(x+dx, y+dy) {
						opaque = true
						break
					}
				}
			}
			if opaque {
				d.Set(x, y, 255)
			}
		}
	}
	return d
}
