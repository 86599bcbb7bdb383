package trail

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/trailkit/pkg/math"
)

// TailStep is the maximum distance chain point 0 may lag behind the emitter.
const TailStep = 0.05

// seedAngle is the rotation used to derive the first ring's perpendicular axis.
const seedAngle = 0.3

// TubeConfig configures a Tube.
type TubeConfig struct {
	Length            float32 `yaml:"length" toml:"length"`
	MaxRadius         float32 `yaml:"max_radius" toml:"max_radius"`
	DensityLengthwise int     `yaml:"density_lengthwise" toml:"density_lengthwise"`
	DensityAround     int     `yaml:"density_around" toml:"density_around"`
	Shape             float32 `yaml:"shape" toml:"shape"`
}

// DefaultTubeConfig returns the default tube settings.
func DefaultTubeConfig() TubeConfig {
	return TubeConfig{
		Length:            10,
		MaxRadius:         0.5,
		DensityLengthwise: 25,
		DensityAround:     5,
		Shape:             0,
	}
}

// clamped returns cfg with out-of-range values replaced.
func (cfg TubeConfig) clamped() TubeConfig {
	if cfg.Length <= 0 {
		cfg.Length = 2
	}
	if cfg.DensityAround < 3 {
		cfg.DensityAround = 3
	}
	if cfg.DensityLengthwise < 2 {
		cfg.DensityLengthwise = 2
	}
	return cfg
}

// SegmentLength returns the maximum distance between consecutive chain points.
func (cfg TubeConfig) SegmentLength() float32 {
	return cfg.Length / float32(cfg.DensityLengthwise)
}

// Tube is a 3D tube trail. Create with NewTube, call Initialize once, then
// Tick (or Relax followed by BuildMesh) once per frame.
type Tube struct {
	cfg           TubeConfig
	segmentLength float32
	points        []math.Vec3
}

// NewTube creates a tube with a clamped copy of cfg.
func NewTube(cfg TubeConfig) *Tube {
	cfg = cfg.clamped()
	return &Tube{
		cfg:           cfg,
		segmentLength: cfg.SegmentLength(),
		points:        make([]math.Vec3, cfg.DensityLengthwise),
	}
}

// Config returns the clamped configuration.
func (t *Tube) Config() TubeConfig {
	return t.cfg
}

// SegmentLength returns the maximum spacing between chain points 1..n.
func (t *Tube) SegmentLength() float32 {
	return t.segmentLength
}

// Points returns a copy of the chain. Index 0 is the point attached to the emitter.
func (t *Tube) Points() []math.Vec3 {
	out := make([]math.Vec3, len(t.points))
	copy(out, t.points)
	return out
}

// Initialize collapses every chain point onto pos.
func (t *Tube) Initialize(pos math.Vec3) {
	for i := range t.points {
		t.points[i] = pos
	}
}

// Relax pulls the chain toward the emitter. Point 0 follows the emitter
// within TailStep and every later point follows its predecessor within
// SegmentLength. Points already close enough do not move.
func (t *Tube) Relax(emitter math.Vec3) {
	ref := emitter
	for i, p := range t.points {
		step := t.segmentLength
		if i == 0 {
			step = TailStep
		}
		p = p.MoveToward(ref, step)
		t.points[i] = p
		ref = p
	}
}

// Tick runs one frame: Relax then BuildMesh.
func (t *Tube) Tick(emitter math.Vec3) Mesh {
	t.Relax(emitter)
	return t.BuildMesh(emitter)
}

// BuildMesh triangulates the chain into a tube around it. Vertices are
// relative to emitter. Coincident consecutive points are skipped; with fewer
// than two rings the mesh has no triangles.
func (t *Tube) BuildMesh(emitter math.Vec3) Mesh {
	around := t.cfg.DensityAround
	rings := make([][]math.Vec3, 0, len(t.points))

	var prev, prevOffset math.Vec3
	for _, world := range t.points {
		p := world.Sub(emitter)
		if p == prev {
			continue
		}

		forward := prev.Sub(p).Normalize()
		var perp math.Vec3
		if len(rings) > 0 {
			// Project the previous ring's first offset onto this ring's plane
			// so consecutive rings keep the same rotation.
			perp = forward.Cross(prevOffset).Cross(forward).Normalize()
		}
		if perp.IsZero() {
			perp = seedPerpendicular(forward)
		}

		radius := t.ringRadius(len(rings))
		ring := make([]math.Vec3, around)
		for i := range ring {
			angle := float32(i) * 2 * math32.Pi / float32(around)
			ring[i] = p.Add(perp.Rotated(forward, angle).Normalize().Scale(radius))
		}
		prevOffset = ring[0].Sub(p)
		if prevOffset.IsZero() {
			// Zero radius: keep propagating the axis itself.
			prevOffset = perp
		}

		rings = append(rings, ring)
		prev = p
	}

	return triangulate(rings, prev)
}

// ringRadius returns the tube radius for ring index i.
func (t *Tube) ringRadius(i int) float32 {
	if t.cfg.Shape == 0 {
		return t.cfg.MaxRadius
	}
	s := float32(i+1) / float32(t.cfg.DensityLengthwise)
	return (1 - math.Ease(s, t.cfg.Shape)) * t.cfg.MaxRadius
}

// seedPerpendicular returns a unit vector perpendicular to the unit vector forward.
func seedPerpendicular(forward math.Vec3) math.Vec3 {
	perp := forward.Cross(forward.Rotated(math.Vec3Right, seedAngle)).Normalize()
	if perp.IsZero() {
		// forward lies on the X axis, which the Right rotation leaves fixed.
		perp = forward.Cross(forward.Rotated(math.Vec3Up, seedAngle)).Normalize()
	}
	return perp
}

// triangulate stitches adjacent rings into quads and caps both ends.
// The first ring closes onto the local origin (the emitter) and the last
// ring onto tail, the last accepted chain point.
func triangulate(rings [][]math.Vec3, tail math.Vec3) Mesh {
	mesh := Mesh{Rings: len(rings)}
	if len(rings) < 2 {
		return mesh
	}
	around := len(rings[0])
	mesh.Triangles = make([]Triangle, 0, TriangleCount(len(rings), around))

	for j := 0; j < len(rings)-1; j++ {
		cur, nxt := rings[j], rings[j+1]
		for i := 0; i < around; i++ {
			n := (i + 1) % around
			mesh.Triangles = append(mesh.Triangles,
				Triangle{cur[i], cur[n], nxt[i]},
				Triangle{cur[n], nxt[n], nxt[i]},
			)
		}
	}

	first, last := rings[0], rings[len(rings)-1]
	for i := 0; i < around; i++ {
		n := (i + 1) % around
		mesh.Triangles = append(mesh.Triangles, Triangle{first[i], math.Vec3{}, first[n]})
	}
	for i := 0; i < around; i++ {
		n := (i + 1) % around
		mesh.Triangles = append(mesh.Triangles, Triangle{last[i], last[n], tail})
	}
	return mesh
}

// TriangleCount returns the number of triangles BuildMesh emits for the given
// ring count and ring resolution.
func TriangleCount(rings, around int) int {
	if rings < 2 {
		return 0
	}
	return 2*around*(rings-1) + 2*around
}
