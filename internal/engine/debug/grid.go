package debug

import "github.com/Faultbox/trailkit/pkg/math"

// GenerateGroundGrid generates line vertices for a square grid on the plane
// y = height, centred on center and snapped to spacing. Lines through the
// world axes use ColorGridAxis.
func GenerateGroundGrid(center math.Vec2, halfExtent, spacing, height float32) []ColorVertex {
	if spacing <= 0 || halfExtent <= 0 {
		return nil
	}

	cells := int(halfExtent / spacing)
	originX := float32(int(center.X/spacing)) * spacing
	originZ := float32(int(center.Y/spacing)) * spacing
	extent := float32(cells) * spacing

	var vertices []ColorVertex
	for i := -cells; i <= cells; i++ {
		offset := float32(i) * spacing

		x := originX + offset
		color := ColorGrid
		if x == 0 {
			color = ColorGridAxis
		}
		vertices = append(vertices,
			vertex(math.Vec3{X: x, Y: height, Z: originZ - extent}, color),
			vertex(math.Vec3{X: x, Y: height, Z: originZ + extent}, color),
		)

		z := originZ + offset
		color = ColorGrid
		if z == 0 {
			color = ColorGridAxis
		}
		vertices = append(vertices,
			vertex(math.Vec3{X: originX - extent, Y: height, Z: z}, color),
			vertex(math.Vec3{X: originX + extent, Y: height, Z: z}, color),
		)
	}

	return vertices
}
