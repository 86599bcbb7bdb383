// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/trailkit/pkg/math"
)

// Sun is a directional light placed by angles in degrees.
// Longitude is rotation around Y, latitude is elevation from the horizon.
type Sun struct {
	Longitude float32
	Latitude  float32
}

// ToSun returns the unit vector pointing from the scene towards the sun.
func (s Sun) ToSun() math.Vec3 {
	lon := s.Longitude * math32.Pi / 180
	lat := s.Latitude * math32.Pi / 180

	sinLon, cosLon := math32.Sincos(lon)
	sinLat, cosLat := math32.Sincos(lat)
	return math.Vec3{X: cosLat * sinLon, Y: sinLat, Z: cosLat * cosLon}
}

// Direction is the direction the light travels, as shaders expect it.
func (s Sun) Direction() math.Vec3 {
	return s.ToSun().Scale(-1)
}
