package atlasc

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeSprite_MissingFile(t *testing.T) {
	assert := assert.New(t)

	_, err := decodeSprite(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(err)

	var pipeErr *Error
	assert.ErrorAs(err, &pipeErr)
	assert.Equal(FileNotFound, pipeErr.Kind)
}

func TestDecodeSprite_DecodesPNG(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "sprite.png")

	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	f, err := os.Create(path)
	assert.NoError(err)
	assert.NoError(png.Encode(f, src))
	assert.NoError(f.Close())

	img, err := decodeSprite(path)
	assert.NoError(err)
	assert.Equal(4, img.Bounds().Dx())
	assert.Equal(color.NRGBA{R: 10, G: 20, B: 30, A: 255}, img.NRGBAAt(1, 1))
}

func TestWriteSheet_RoundTrips(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	sheet := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	assert.NoError(WriteSheet(path, sheet))

	f, err := os.Open(path)
	assert.NoError(err)
	defer f.Close()
	decoded, err := png.Decode(f)
	assert.NoError(err)
	assert.Equal(8, decoded.Bounds().Dx())
}
