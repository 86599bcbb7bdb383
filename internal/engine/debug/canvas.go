package debug

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/trailkit/pkg/math"
)

// DefaultCircleSegments is the circle tessellation used by NewVertexCanvas.
const DefaultCircleSegments = 24

// VertexCanvas tessellates 2D draw calls into triangles on the horizontal
// plane y = Height. Canvas X maps to world X and canvas Y to world Z.
type VertexCanvas struct {
	Height   float32
	Segments int

	vertices []ColorVertex
}

// NewVertexCanvas creates a canvas drawing at the given height.
func NewVertexCanvas(height float32) *VertexCanvas {
	return &VertexCanvas{Height: height, Segments: DefaultCircleSegments}
}

// DrawCircle adds a triangle fan for the circle.
func (vc *VertexCanvas) DrawCircle(center math.Vec2, radius float32, color Color) {
	segments := max(vc.Segments, 3)
	c := center.XZ(vc.Height)
	for i := 0; i < segments; i++ {
		s0, c0 := math32.Sincos(float32(i) * 2 * math32.Pi / float32(segments))
		s1, c1 := math32.Sincos(float32(i+1) * 2 * math32.Pi / float32(segments))
		p0 := center.Add(math.Vec2{X: c0, Y: s0}.Scale(radius))
		p1 := center.Add(math.Vec2{X: c1, Y: s1}.Scale(radius))
		vc.vertices = append(vc.vertices,
			vertex(c, color),
			vertex(p0.XZ(vc.Height), color),
			vertex(p1.XZ(vc.Height), color),
		)
	}
}

// DrawRect adds two triangles covering the rectangle.
func (vc *VertexCanvas) DrawRect(rect Rect, color Color) {
	x0, z0 := rect.Position.X, rect.Position.Y
	x1, z1 := x0+rect.Size.X, z0+rect.Size.Y
	y := vc.Height

	// Triangle 1
	vc.vertices = append(vc.vertices,
		vertex(math.Vec3{X: x0, Y: y, Z: z0}, color),
		vertex(math.Vec3{X: x1, Y: y, Z: z0}, color),
		vertex(math.Vec3{X: x1, Y: y, Z: z1}, color),
	)
	// Triangle 2
	vc.vertices = append(vc.vertices,
		vertex(math.Vec3{X: x0, Y: y, Z: z0}, color),
		vertex(math.Vec3{X: x1, Y: y, Z: z1}, color),
		vertex(math.Vec3{X: x0, Y: y, Z: z1}, color),
	)
}

// Vertices returns the accumulated triangle vertices.
func (vc *VertexCanvas) Vertices() []ColorVertex {
	return vc.vertices
}

// Reset clears accumulated vertices, keeping capacity for the next frame.
func (vc *VertexCanvas) Reset() {
	vc.vertices = vc.vertices[:0]
}
