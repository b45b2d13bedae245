/*
Package atlasc compiles a set of sprite images into a single packed texture
sheet and a sidecar JSON descriptor locating each sprite on the sheet.

Given RGBA images with sprites on a transparent background, it extracts each
sprite's opaque silhouette, simplifies and repairs the resulting outline,
optionally triangulates it into a texture-mapped mesh, packs the sprites'
bounding boxes onto one sheet, and blits the cropped pixels into place.

The package provides a command line interface. To check the supported
commands type:

	$ atlasc --help

To integrate the pipeline directly:

	package main

	import "github.com/septag/atlasc"

	func main() {
		p := &atlasc.Pipeline{
			Options: atlasc.DefaultOptions(),
		}
		desc, sheet, err := p.Run([]string{"sprite1.png", "sprite2.png"})
		if err != nil {
			// handle err
		}
		_ = desc
		_ = sheet
	}
*/
package atlasc
