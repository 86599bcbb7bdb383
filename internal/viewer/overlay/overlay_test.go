package overlay

import (
	"testing"

	"github.com/Faultbox/trailkit/internal/config"
	"github.com/Faultbox/trailkit/internal/engine/debug"
	"github.com/Faultbox/trailkit/internal/sim"
	"github.com/Faultbox/trailkit/pkg/math"
	"github.com/Faultbox/trailkit/pkg/trail"
)

func testFrame() sim.Frame {
	return sim.Frame{
		Tick:    1,
		Emitter: math.Vec3{X: 1, Y: 2, Z: 3},
		Mesh: trail.Mesh{
			Rings: 2,
			Triangles: []trail.Triangle{
				{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 0, Z: 0}},
			},
		},
		LinePoints: []math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 3}},
		LineColors: []trail.Color{{R: 1, G: 1, B: 1, A: 0}, {R: 1, G: 1, B: 1, A: 1}},
	}
}

func allOn() config.DebugConfig {
	return config.DebugConfig{
		ShowBounds:     true,
		ShowGrid:       true,
		ShowFootprint:  true,
		FootprintShape: config.ShapeCircle,
		FootprintSize:  0.5,
	}
}

func TestFootprintShape(t *testing.T) {
	tests := []struct {
		kind string
		want debug.Shape
	}{
		{config.ShapeCircle, debug.CircleShape{Radius: 2}},
		{config.ShapeRectangle, debug.RectangleShape{Extents: math.Vec2{X: 2, Y: 2}}},
		{config.ShapeCapsule, debug.CapsuleShape{Radius: 1, Height: 4}},
		{"hexagon", nil},
	}
	for _, tt := range tests {
		if got := footprintShape(tt.kind, 2); got != tt.want {
			t.Errorf("footprintShape(%q) = %#v, want %#v", tt.kind, got, tt.want)
		}
	}
}

func TestBuildAllLayers(t *testing.T) {
	o := New(allOn())
	f := testFrame()
	o.Build(f)

	grid := debug.GenerateGroundGrid(f.Emitter.XZ(), gridHalfExtent, gridSpacing, groundHeight)
	if want := len(grid) + debug.BBoxWireframeVertexCount; len(o.Lines) != want {
		t.Errorf("lines = %d vertices, want %d", len(o.Lines), want)
	}

	if len(o.Trail) != 2 {
		t.Fatalf("trail = %d vertices, want 2", len(o.Trail))
	}
	last := o.Trail[1]
	if last.X != 1 || last.Z != 3 || last.Y != trailHeight {
		t.Errorf("trail point = (%v, %v, %v), want (1, %v, 3)", last.X, last.Y, last.Z, trailHeight)
	}
	if o.Trail[0].A != 0 || last.A != 1 {
		t.Errorf("trail alpha = %v..%v, want 0..1", o.Trail[0].A, last.A)
	}

	if want := debug.DefaultCircleSegments * 3; len(o.Triangles) != want {
		t.Errorf("footprint = %d vertices, want %d", len(o.Triangles), want)
	}
	// First vertex of the fan is the circle centre under the emitter.
	c := o.Triangles[0]
	if c.X != f.Emitter.X || c.Z != f.Emitter.Z || c.Y != footprintHeight {
		t.Errorf("footprint centre = (%v, %v, %v), want under emitter", c.X, c.Y, c.Z)
	}
}

func TestBuildLayersOff(t *testing.T) {
	o := New(config.DebugConfig{FootprintShape: config.ShapeCircle, FootprintSize: 1})
	o.Build(testFrame())

	if len(o.Lines) != 0 {
		t.Errorf("lines = %d, want 0", len(o.Lines))
	}
	if len(o.Triangles) != 0 {
		t.Errorf("triangles = %d, want 0", len(o.Triangles))
	}
	// The line trail is always drawn.
	if len(o.Trail) != 2 {
		t.Errorf("trail = %d, want 2", len(o.Trail))
	}
}

func TestBuildSkipsBoundsForEmptyMesh(t *testing.T) {
	cfg := allOn()
	cfg.ShowGrid = false
	o := New(cfg)

	f := testFrame()
	f.Mesh = trail.Mesh{}
	o.Build(f)

	if len(o.Lines) != 0 {
		t.Errorf("lines = %d, want none for an empty mesh", len(o.Lines))
	}
}

func TestBuildReusesBuffers(t *testing.T) {
	o := New(allOn())
	o.Build(testFrame())
	n := len(o.Lines)
	o.Build(testFrame())
	if len(o.Lines) != n {
		t.Errorf("lines grew from %d to %d across frames", n, len(o.Lines))
	}
}

func TestClockAdvance(t *testing.T) {
	c := Clock{Step: 0.1}

	steps := []struct {
		dt   float32
		want int
	}{
		{0.05, 0},
		{0.06, 1},
		{0.25, 2},
		{0, 0},
		{-1, 0},
		{10, MaxStepsPerFrame},
		{0.05, 0},
	}
	for i, s := range steps {
		if got := c.Advance(s.dt); got != s.want {
			t.Errorf("step %d: Advance(%v) = %d, want %d", i, s.dt, got, s.want)
		}
	}
}

func TestClockReset(t *testing.T) {
	c := Clock{Step: 0.1}
	c.Advance(0.09)
	c.Reset()
	if got := c.Advance(0.02); got != 0 {
		t.Errorf("Advance after Reset = %d, want 0", got)
	}
}
