package debug

import "github.com/Faultbox/trailkit/pkg/math"

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// DefaultBBoxPadding is the default padding around outlined geometry.
const DefaultBBoxPadding = 0.05

// GenerateBBoxWireframe creates line vertices for the box spanning minCorner..maxCorner,
// expanded by padding on every side. Returns BBoxWireframeVertexCount vertices.
func GenerateBBoxWireframe(minCorner, maxCorner math.Vec3, padding float32, color Color) []ColorVertex {
	// Handle swapped corners
	lo := minCorner.Min(maxCorner).Sub(math.Vec3One.Scale(padding))
	hi := minCorner.Max(maxCorner).Add(math.Vec3One.Scale(padding))

	corner := func(x, y, z bool) math.Vec3 {
		c := lo
		if x {
			c.X = hi.X
		}
		if y {
			c.Y = hi.Y
		}
		if z {
			c.Z = hi.Z
		}
		return c
	}

	edges := [12][2]math.Vec3{
		// Bottom face (4 edges)
		{corner(false, false, false), corner(true, false, false)},
		{corner(true, false, false), corner(true, false, true)},
		{corner(true, false, true), corner(false, false, true)},
		{corner(false, false, true), corner(false, false, false)},
		// Top face (4 edges)
		{corner(false, true, false), corner(true, true, false)},
		{corner(true, true, false), corner(true, true, true)},
		{corner(true, true, true), corner(false, true, true)},
		{corner(false, true, true), corner(false, true, false)},
		// Vertical edges (4 edges)
		{corner(false, false, false), corner(false, true, false)},
		{corner(true, false, false), corner(true, true, false)},
		{corner(true, false, true), corner(true, true, true)},
		{corner(false, false, true), corner(false, true, true)},
	}

	verts := make([]ColorVertex, 0, BBoxWireframeVertexCount)
	for _, e := range edges {
		verts = append(verts, vertex(e[0], color), vertex(e[1], color))
	}
	return verts
}
