package atlasc

import (
	"encoding/json"
	"os"
)

// Descriptor is the sidecar JSON document locating every sprite on the
// sheet.
type Descriptor struct {
	Image       string      `json:"image"`
	ImageWidth  int         `json:"image_width"`
	ImageHeight int         `json:"image_height"`
	Sprites     []SpriteDoc `json:"sprites"`
}

// SpriteDoc is one sprite's entry in the descriptor.
type SpriteDoc struct {
	Name       string   `json:"name"`
	Size       [2]int   `json:"size"`
	SpriteRect [4]int   `json:"sprite_rect"`
	SheetRect  [4]int   `json:"sheet_rect"`
	Mesh       *MeshDoc `json:"mesh,omitempty"`
}

// MeshDoc is a sprite's optional triangulated mesh and UVs.
type MeshDoc struct {
	NumTris     int      `json:"num_tris"`
	NumVertices int      `json:"num_vertices"`
	Indices     []int    `json:"indices"`
	Positions   [][2]int `json:"positions"`
	UVs         [][2]int `json:"uvs"`
}

// buildSpriteDoc assembles one sprite's descriptor entry from its final
// pipeline state. name must already be forward-slash-normalized.
func buildSpriteDoc(name string, sp *Sprite, uvs []Point) SpriteDoc {
	doc := SpriteDoc{
		Name:       name,
		Size:       [2]int{sp.SrcW, sp.SrcH},
		SpriteRect: sp.SpriteRect.Slice(),
		SheetRect:  sp.SheetRect.Slice(),
	}
	if sp.Mesh != nil {
		indices := make([]int, 0, len(sp.Mesh.Triangles)*3)
		for _, t := range sp.Mesh.Triangles {
			indices = append(indices, t[0], t[1], t[2])
		}
		positions := make([][2]int, len(sp.Mesh.Points))
		for i, p := range sp.Mesh.Points {
			positions[i] = [2]int{p.X, p.Y}
		}
		uvPairs := make([][2]int, len(uvs))
		for i, uv := range uvs {
			uvPairs[i] = [2]int{uv.X, uv.Y}
		}
		doc.Mesh = &MeshDoc{
			NumTris:     len(sp.Mesh.Triangles),
			NumVertices: len(sp.Mesh.Points),
			Indices:     indices,
			Positions:   positions,
			UVs:         uvPairs,
		}
	}
	return doc
}

// marshalDescriptor renders d as indented JSON.
func marshalDescriptor(d *Descriptor) ([]byte, error) {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, newError(DescriptorWriteFailed, "", err)
	}
	return b, nil
}

// WriteDescriptor marshals and writes the descriptor to path.
func WriteDescriptor(path string, d *Descriptor) error {
	b, err := marshalDescriptor(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return newError(DescriptorWriteFailed, path, err)
	}
	return nil
}
