package formats

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/udhos/gwob"

	"github.com/Faultbox/trailkit/pkg/math"
	"github.com/Faultbox/trailkit/pkg/trail"
)

// OBJ format errors.
var (
	ErrInvalidOBJFace   = errors.New("invalid OBJ face")
	ErrInvalidOBJVertex = errors.New("invalid OBJ vertex")
	ErrOBJIndexRange    = errors.New("OBJ index out of range")
)

const floatSize = 4

// Interleaved layout written by OBJFromMesh: position then normal.
const (
	meshStride         = 6 * floatSize
	meshOffsetPosition = 0
	meshOffsetNormal   = 3 * floatSize
)

// OBJ is a triangle-only Wavefront OBJ mesh backed by a gwob object.
// Faces wind counter-clockwise, as OBJ readers expect.
type OBJ struct {
	Name string
	data *gwob.Obj
}

// OBJFromMesh converts a trail mesh to OBJ with one normal per face.
// Corners with the same position and normal share a vertex. Winding is
// flipped from the mesh's clockwise fronts to OBJ's counter-clockwise.
func OBJFromMesh(name string, m trail.Mesh) *OBJ {
	type corner struct{ pos, normal math.Vec3 }

	data := &gwob.Obj{
		Indices:              make([]int, 0, 3*len(m.Triangles)),
		NormCoordFound:       true,
		StrideSize:           meshStride,
		StrideOffsetPosition: meshOffsetPosition,
		StrideOffsetNormal:   meshOffsetNormal,
	}
	index := make(map[corner]int)

	vertexIndex := func(c corner) int {
		if i, ok := index[c]; ok {
			return i
		}
		i := len(data.Coord) * floatSize / meshStride
		data.Coord = append(data.Coord,
			c.pos.X, c.pos.Y, c.pos.Z,
			c.normal.X, c.normal.Y, c.normal.Z)
		index[c] = i
		return i
	}

	for _, tri := range m.Triangles {
		n := tri.Normal()
		data.Indices = append(data.Indices,
			vertexIndex(corner{tri[0], n}),
			vertexIndex(corner{tri[2], n}),
			vertexIndex(corner{tri[1], n}))
	}

	data.Groups = []*gwob.Group{{
		Name:       name,
		IndexBegin: 0,
		IndexCount: len(data.Indices),
	}}
	return &OBJ{Name: name, data: data}
}

// newOBJ validates a decoded gwob object.
func newOBJ(data *gwob.Obj) (*OBJ, error) {
	if data.StrideSize <= 0 || data.StrideSize%floatSize != 0 {
		return nil, fmt.Errorf("%w: stride %d", ErrInvalidOBJVertex, data.StrideSize)
	}
	if len(data.Coord)*floatSize%data.StrideSize != 0 {
		return nil, fmt.Errorf("%w: %d coordinates do not fill stride %d",
			ErrInvalidOBJVertex, len(data.Coord), data.StrideSize)
	}
	if len(data.Indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d indices do not form triangles", ErrInvalidOBJFace, len(data.Indices))
	}

	obj := &OBJ{data: data}
	count := obj.VertexCount()
	for _, i := range data.Indices {
		if i < 0 || i >= count {
			return nil, fmt.Errorf("%w: %d of %d", ErrOBJIndexRange, i, count)
		}
	}
	for _, g := range data.Groups {
		if g.Name != "" {
			obj.Name = g.Name
			break
		}
	}
	return obj, nil
}

// VertexCount returns the number of distinct vertices.
func (o *OBJ) VertexCount() int {
	return len(o.data.Coord) * floatSize / o.data.StrideSize
}

// TriangleCount returns the number of faces.
func (o *OBJ) TriangleCount() int {
	return len(o.data.Indices) / 3
}

// WriteTo encodes the mesh as OBJ text.
func (o *OBJ) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := o.data.ToWriter(cw)
	return cw.n, err
}

// WriteFile writes the OBJ to disk.
func (o *OBJ) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating OBJ file: %w", err)
	}
	if _, err := o.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing OBJ file: %w", err)
	}
	return f.Close()
}

// ParseOBJ parses OBJ text. Polygons are triangulated by the decoder.
func ParseOBJ(data []byte) (*OBJ, error) {
	decoded, err := gwob.NewObjFromBuf("trail", data, &gwob.ObjParserOptions{})
	if err != nil {
		return nil, fmt.Errorf("decoding OBJ: %w", err)
	}
	return newOBJ(decoded)
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return ParseOBJ(data)
}

// Mesh converts the OBJ back to a trail mesh with clockwise fronts.
func (o *OBJ) Mesh() trail.Mesh {
	m := trail.Mesh{Triangles: make([]trail.Triangle, 0, o.TriangleCount())}
	idx := o.data.Indices
	for i := 0; i+2 < len(idx); i += 3 {
		m.Triangles = append(m.Triangles, trail.Triangle{
			o.position(idx[i]),
			o.position(idx[i+2]),
			o.position(idx[i+1]),
		})
	}
	return m
}

func (o *OBJ) position(i int) math.Vec3 {
	base := (i*o.data.StrideSize + o.data.StrideOffsetPosition) / floatSize
	c := o.data.Coord
	return math.Vec3{X: c[base], Y: c[base+1], Z: c[base+2]}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
