// Package debug generates vertex data for debug overlays: 2D shapes on the
// ground plane, bounding boxes, a reference grid and screenshots.
package debug

import "github.com/Faultbox/trailkit/pkg/math"

// ColorVertex is a position with an RGBA color.
type ColorVertex struct {
	X, Y, Z    float32
	R, G, B, A float32
}

// ColorVertexFloats is the number of float32 values per ColorVertex.
const ColorVertexFloats = 7

func vertex(p math.Vec3, c Color) ColorVertex {
	return ColorVertex{p.X, p.Y, p.Z, c.R, c.G, c.B, c.A}
}

// Flatten packs vertices into [x, y, z, r, g, b, a, ...] for GPU upload.
func Flatten(verts []ColorVertex) []float32 {
	out := make([]float32, 0, len(verts)*ColorVertexFloats)
	for _, v := range verts {
		out = append(out, v.X, v.Y, v.Z, v.R, v.G, v.B, v.A)
	}
	return out
}
