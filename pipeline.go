package atlasc

import (
	"image"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/septag/atlasc/utils"
)

// Options configures a Pipeline run: the CLI's packing and meshing knobs. It
// mirrors esimov-caire's Processor struct: a flat options value, built from
// parsed flags or defaults, passed by value into the driver.
type Options struct {
	MaxWidth, MaxHeight int
	Border, Padding     int
	POT                 bool
	Mesh                bool
	MaxVerts            int
	AlphaThreshold      int

	// SheetName is the basename recorded in the descriptor's "image" field.
	SheetName string
}

// DefaultOptions returns the CLI's documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxWidth:       2048,
		MaxHeight:      2048,
		Border:         2,
		Padding:        1,
		MaxVerts:       defaultMaxVerts,
		AlphaThreshold: 20,
		SheetName:      "sheet.png",
	}
}

// Pipeline drives the per-sprite mask/outline/mesh stages followed by
// packing and composition: it iterates sprites in input order, halts on the
// first fatal error, and emits the sheet image and descriptor document only
// after every sprite has succeeded.
type Pipeline struct {
	Options Options
}

// Run compiles inputs, in the given order, into one sheet and descriptor.
// On any fatal error no partial sheet or descriptor is returned.
func (p *Pipeline) Run(inputs []string) (*Descriptor, *image.NRGBA, error) {
	opts := p.Options

	sprites := make([]*Sprite, len(inputs))
	srcImages := make([]*image.NRGBA, len(inputs))

	for i, path := range inputs {
		img, err := decodeSprite(path)
		if err != nil {
			return nil, nil, err
		}
		bounds := img.Bounds()
		w, h := bounds.Dx(), bounds.Dy()

		m, d := buildAlphaMask(img, opts.AlphaThreshold)

		outline, err := traceOutline(d)
		if err != nil {
			return nil, nil, errors.WithMessage(err, path)
		}

		simplified := simplifyOutline(outline, opts.MaxVerts)
		repaired := repairOutline(simplified, m)

		// sprite_rect is the AABB of the repaired outline, not the raw trace:
		// repair pushes vertices outward past the traced boundary to clear
		// opaque pixels a simplified edge cut across, so the tight box around
		// the final geometry can only be known after repair runs. Repair
		// clamps vertices to [0,w]×[0,h], so the half-open box is clipped to
		// the image to keep the blit source inside it.
		spriteRect, err := boundingBox(repaired)
		if err != nil {
			return nil, nil, errors.WithMessage(err, path)
		}
		spriteRect.XMin = utils.Max(spriteRect.XMin, 0)
		spriteRect.YMin = utils.Max(spriteRect.YMin, 0)
		spriteRect.XMax = utils.Min(spriteRect.XMax, w)
		spriteRect.YMax = utils.Min(spriteRect.YMax, h)

		sp := &Sprite{
			Path:       path,
			SrcW:       w,
			SrcH:       h,
			SpriteRect: spriteRect,
			Outline:    repaired,
		}

		if opts.Mesh {
			mesh, err := triangulate(repaired.Points)
			if err != nil {
				return nil, nil, errors.WithMessage(err, path)
			}
			if err := validateMesh(mesh, spriteRect); err != nil {
				return nil, nil, errors.WithMessage(err, path)
			}
			sp.Mesh = mesh
		}

		sprites[i] = sp
		srcImages[i] = img
	}

	rects := make([]packRect, len(sprites))
	for i, sp := range sprites {
		inset := 2 * (opts.Border + opts.Padding)
		rects[i] = packRect{
			index: i,
			w:     sp.SpriteRect.Width() + inset,
			h:     sp.SpriteRect.Height() + inset,
		}
	}

	placed, err := packRects(rects, opts.MaxWidth, opts.MaxHeight)
	if err != nil {
		return nil, nil, err
	}

	sheetW, sheetH := 0, 0
	for _, r := range placed {
		sheetW = utils.Max(sheetW, r.x+r.w)
		sheetH = utils.Max(sheetH, r.y+r.h)
	}
	sheetW = roundUp(sheetW, 4)
	sheetH = roundUp(sheetH, 4)
	if opts.POT {
		sheetW = nextPowerOfTwo(sheetW)
		sheetH = nextPowerOfTwo(sheetH)
	}

	for i, sp := range sprites {
		r := placed[i]
		sp.Placement = Placement{X: r.x, Y: r.y, W: r.w, H: r.h}
		sp.SheetRect = Rect{
			XMin: r.x + opts.Border,
			YMin: r.y + opts.Border,
			XMax: r.x + r.w - opts.Border,
			YMax: r.y + r.h - opts.Border,
		}
		if err := validateSheetRect(sp.SheetRect, sheetW, sheetH); err != nil {
			return nil, nil, errors.WithMessage(err, sp.Path)
		}
	}

	sheet, err := composeSheet(sheetW, sheetH, sprites, srcImages, opts.Border, opts.Padding)
	if err != nil {
		return nil, nil, err
	}

	desc := &Descriptor{
		Image:       opts.SheetName,
		ImageWidth:  sheetW,
		ImageHeight: sheetH,
		Sprites:     make([]SpriteDoc, len(sprites)),
	}

	for i, sp := range sprites {
		var uvs []Point
		if sp.Mesh != nil {
			uvs = computeUVs(sp.Mesh, sp.SpriteRect, sp.SheetRect, opts.Padding)
			if err := validateUVs(uvs, sp.SheetRect); err != nil {
				return nil, nil, errors.WithMessage(err, sp.Path)
			}
		}
		name := filepath.ToSlash(sp.Path)
		desc.Sprites[i] = buildSpriteDoc(name, sp, uvs)
	}

	return desc, sheet, nil
}

// validateMesh enforces that every mesh vertex lies within the sprite's
// local AABB and every index is in range.
func validateMesh(mesh *Mesh, spriteRect Rect) error {
	if mesh == nil {
		return nil
	}
	n := len(mesh.Points)
	for _, p := range mesh.Points {
		if p.X < spriteRect.XMin || p.X > spriteRect.XMax || p.Y < spriteRect.YMin || p.Y > spriteRect.YMax {
			return newErrorf(DegenerateSprite, "", "mesh vertex %v escapes sprite_rect %v", p, spriteRect)
		}
	}
	for _, t := range mesh.Triangles {
		for _, idx := range t {
			if idx < 0 || idx >= n {
				return newErrorf(DegenerateSprite, "", "mesh index %d out of range [0,%d)", idx, n)
			}
		}
	}
	return nil
}

// validateSheetRect enforces that every produced SheetRect lies within
// [0,sheetW)×[0,sheetH).
func validateSheetRect(r Rect, sheetW, sheetH int) error {
	if r.XMin < 0 || r.YMin < 0 || r.XMax > sheetW || r.YMax > sheetH {
		return newErrorf(PackOverflow, "", "sheet_rect %v escapes sheet bounds %dx%d", r, sheetW, sheetH)
	}
	return nil
}

// validateUVs enforces that every UV coordinate lies within sheetRect.
func validateUVs(uvs []Point, sheetRect Rect) error {
	for _, uv := range uvs {
		if uv.X < sheetRect.XMin || uv.X > sheetRect.XMax || uv.Y < sheetRect.YMin || uv.Y > sheetRect.YMax {
			return newErrorf(DegenerateSprite, "", "uv %v escapes sheet_rect %v", uv, sheetRect)
		}
	}
	return nil
}

func roundUp(v, multiple int) int {
	if v <= 0 {
		return multiple
	}
	if rem := v % multiple; rem != 0 {
		v += multiple - rem
	}
	return v
}

func nextPowerOfTwo(v int) int {
	if v <= 1 {
		return 1
	}
	p := 1
	for p < v {
		p <<= 1
	}
	return p
}
