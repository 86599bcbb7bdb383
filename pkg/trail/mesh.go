package trail

import "github.com/Faultbox/trailkit/pkg/math"

// Triangle is three vertex positions. Front faces wind clockwise when seen
// from outside the tube.
type Triangle [3]math.Vec3

// Normal returns the unit front-face normal, or zero for a degenerate triangle.
func (t Triangle) Normal() math.Vec3 {
	return t[2].Sub(t[0]).Cross(t[1].Sub(t[0])).Normalize()
}

// Mesh is an unindexed triangle list rebuilt every tick.
type Mesh struct {
	Triangles []Triangle
	// Rings is the number of cross-sections accepted while building.
	Rings int
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Empty reports whether the mesh has no triangles.
func (m Mesh) Empty() bool {
	return len(m.Triangles) == 0
}

// VertexCount returns the number of vertices (three per triangle).
func (m Mesh) VertexCount() int {
	return len(m.Triangles) * 3
}

// Bounds returns the bounding box of all vertices. An empty mesh has zero bounds.
func (m Mesh) Bounds() Bounds {
	if m.Empty() {
		return Bounds{}
	}
	b := Bounds{Min: m.Triangles[0][0], Max: m.Triangles[0][0]}
	for _, tri := range m.Triangles {
		for _, v := range tri {
			b.Min = b.Min.Min(v)
			b.Max = b.Max.Max(v)
		}
	}
	return b
}

// Translate returns a copy of the mesh moved by offset, e.g. from emitter
// space back to world space.
func (m Mesh) Translate(offset math.Vec3) Mesh {
	out := Mesh{Rings: m.Rings, Triangles: make([]Triangle, len(m.Triangles))}
	for i, tri := range m.Triangles {
		out.Triangles[i] = Triangle{tri[0].Add(offset), tri[1].Add(offset), tri[2].Add(offset)}
	}
	return out
}

// Positions returns vertex positions as a flat [x, y, z, ...] slice.
func (m Mesh) Positions() []float32 {
	out := make([]float32, 0, m.VertexCount()*3)
	for _, tri := range m.Triangles {
		for _, v := range tri {
			out = append(out, v.X, v.Y, v.Z)
		}
	}
	return out
}

// Interleaved returns [x, y, z, nx, ny, nz] per vertex using flat face
// normals, ready for a GPU vertex buffer.
func (m Mesh) Interleaved() []float32 {
	out := make([]float32, 0, m.VertexCount()*6)
	for _, tri := range m.Triangles {
		n := tri.Normal()
		for _, v := range tri {
			out = append(out, v.X, v.Y, v.Z, n.X, n.Y, n.Z)
		}
	}
	return out
}
