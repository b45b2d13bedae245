package atlasc

import (
	"image"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
)

// decodeSprite opens and decodes one input image into NRGBA, accepting any
// format the registered codecs support, at minimum PNG with 8-bit RGBA.
// Grounded on esimov-caire's image.go decodeImg/bmp wiring: image/jpeg and
// golang.org/x/image/bmp are imported for their
// image.RegisterFormat side effect alongside stdlib image/png, so
// image.Decode accepts any of the three; imaging.Clone then gives Pipeline
// the editable *image.NRGBA buffer it needs.
func decodeSprite(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newError(FileNotFound, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, newError(ImageDecodeFailed, path, err)
	}
	return imaging.Clone(img), nil
}

// WriteSheet writes the composed sheet as a single PNG to path.
func WriteSheet(path string, sheet *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return newError(ImageEncodeFailed, path, err)
	}
	defer f.Close()

	if err := png.Encode(f, sheet); err != nil {
		return newError(ImageEncodeFailed, path, err)
	}
	return nil
}
