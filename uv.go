package atlasc

// computeUVs translates mesh-local vertex coordinates into sheet-space texel
// coordinates: uv = v - sprite_rect.min + sheet_target.min, where
// sheet_target.min is the blit target's top-left corner, sheetRect.min
// offset by padding (sheetRect.min already sits at placement.min+border).
func computeUVs(mesh *Mesh, spriteRect Rect, sheetRect Rect, padding int) []Point {
	if mesh == nil || len(mesh.Points) == 0 {
		return nil
	}
	targetX := sheetRect.XMin + padding
	targetY := sheetRect.YMin + padding

	uvs := make([]Point, len(mesh.Points))
	for i, v := range mesh.Points {
		uvs[i] = Point{
			X: v.X - spriteRect.XMin + targetX,
			Y: v.Y - spriteRect.YMin + targetY,
		}
	}
	return uvs
}
