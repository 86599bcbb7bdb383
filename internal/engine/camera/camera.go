// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/trailkit/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from center
	Pitch    float32 // Vertical angle, radians
	Yaw      float32 // Horizontal angle, radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	// FollowRate is how quickly Follow closes the gap to its target, per second.
	FollowRate float32
}

// NewOrbitCamera creates an orbit camera sized for a trail a few units long.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        18,
		Pitch:           0.6,
		Yaw:             0.4,
		MinDistance:     1,
		MaxDistance:     200,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FollowRate:      4,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sp, cp := math32.Sincos(c.Pitch)
	sy, cy := math32.Sincos(c.Yaw)

	return c.Center.Add(math.Vec3{
		X: c.Distance * cp * sy,
		Y: c.Distance * sp,
		Z: c.Distance * cp * cy,
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3Up)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity
	c.Pitch = clamp(c.Pitch, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// HandlePan moves the center on the ground plane relative to the view direction.
func (c *OrbitCamera) HandlePan(forward, right float32) {
	// Speed scales with distance for consistent feel
	speed := c.Distance * 0.01

	sy, cy := math32.Sincos(c.Yaw)
	fwd := math.Vec3{X: -sy, Z: -cy}
	rgt := math.Vec3{X: cy, Z: -sy}

	c.Center = c.Center.Add(fwd.Scale(forward * speed)).Add(rgt.Scale(right * speed))
}

// Follow eases the center toward target over dt seconds.
func (c *OrbitCamera) Follow(target math.Vec3, dt float32) {
	if c.FollowRate <= 0 || dt <= 0 {
		return
	}
	t := 1 - math32.Exp(-c.FollowRate*dt)
	c.Center = c.Center.Add(target.Sub(c.Center).Scale(t))
}

// FitToBounds centers the camera on a box and backs off far enough to see it.
func (c *OrbitCamera) FitToBounds(minCorner, maxCorner math.Vec3) {
	c.Center = minCorner.Add(maxCorner).Scale(0.5)
	c.Distance = clamp(maxCorner.Sub(minCorner).Length()*1.2, c.MinDistance, c.MaxDistance)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
