package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/trailkit/pkg/math"
)

const epsilon = 1e-4

func near(a, b math.Vec3) bool {
	return a.Distance(b) < epsilon
}

func TestPosition(t *testing.T) {
	tests := []struct {
		name       string
		pitch, yaw float32
		want       math.Vec3
	}{
		{"front", 0, 0, math.Vec3{Z: 10}},
		{"side", 0, gomath.Pi / 2, math.Vec3{X: 10}},
		{"above", gomath.Pi / 2, 0, math.Vec3{Y: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera()
			c.Center = math.Vec3{X: 1, Y: 2, Z: 3}
			c.Distance = 10
			c.Pitch = tt.pitch
			c.Yaw = tt.yaw

			want := c.Center.Add(tt.want)
			if got := c.Position(); !near(got, want) {
				t.Errorf("Position() = %v, want %v", got, want)
			}
		})
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 1e6)
	if c.Pitch != c.MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, c.MaxPitch)
	}
	c.HandleDrag(0, -1e6)
	if c.Pitch != c.MinPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, c.MinPitch)
	}

	yaw := c.Yaw
	c.HandleDrag(100, 0)
	if want := yaw - 100*c.DragSensitivity; gomath.Abs(float64(c.Yaw-want)) > epsilon {
		t.Errorf("Yaw = %v, want %v", c.Yaw, want)
	}
}

func TestHandleZoomClamps(t *testing.T) {
	c := NewOrbitCamera()
	for i := 0; i < 100; i++ {
		c.HandleZoom(5)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %v, want %v", c.Distance, c.MinDistance)
	}
	for i := 0; i < 100; i++ {
		c.HandleZoom(-5)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("Distance = %v, want %v", c.Distance, c.MaxDistance)
	}
}

func TestHandlePanStaysOnGround(t *testing.T) {
	c := NewOrbitCamera()
	c.Yaw = 0
	c.HandlePan(1, 0)

	if c.Center.Y != 0 {
		t.Errorf("pan changed height: %v", c.Center)
	}
	// Yaw 0 looks down -Z, so forward moves the center toward -Z.
	if c.Center.Z >= 0 || gomath.Abs(float64(c.Center.X)) > epsilon {
		t.Errorf("Center = %v, want movement along -Z", c.Center)
	}
}

func TestFollowConverges(t *testing.T) {
	c := NewOrbitCamera()
	target := math.Vec3{X: 5, Y: 1, Z: -3}

	prev := c.Center.Distance(target)
	for i := 0; i < 300; i++ {
		c.Follow(target, 1.0/60)
		d := c.Center.Distance(target)
		if d > prev {
			t.Fatalf("step %d: distance grew from %v to %v", i, prev, d)
		}
		prev = d
	}
	if prev > 1e-2 {
		t.Errorf("center still %v from target after 5s", prev)
	}
}

func TestFollowDisabled(t *testing.T) {
	c := NewOrbitCamera()
	c.FollowRate = 0
	c.Follow(math.Vec3{X: 10}, 1)
	if !c.Center.IsZero() {
		t.Errorf("Center = %v, want unchanged", c.Center)
	}
}

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds(math.Vec3{X: -2, Y: 0, Z: -2}, math.Vec3{X: 4, Y: 2, Z: 6})

	if want := (math.Vec3{X: 1, Y: 1, Z: 2}); !near(c.Center, want) {
		t.Errorf("Center = %v, want %v", c.Center, want)
	}
	if c.Distance < 10 {
		t.Errorf("Distance = %v, expected the whole box in view", c.Distance)
	}
}
