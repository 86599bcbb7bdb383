// Package sim drives the trail builders from a scripted emitter, one tick at a time.
package sim

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/trailkit/internal/config"
	"github.com/Faultbox/trailkit/pkg/math"
)

// Emitter moves along a scripted path. Position is a pure function of time.
type Emitter struct {
	Path   string
	Radius float32
	Speed  float32
	Height float32
}

// NewEmitter validates the path kind and returns an emitter.
func NewEmitter(cfg config.EmitterConfig) (Emitter, error) {
	switch cfg.Path {
	case config.PathCircle, config.PathLine, config.PathLissajous, config.PathFigure8:
	default:
		return Emitter{}, fmt.Errorf("unknown emitter path %q", cfg.Path)
	}
	return Emitter{
		Path:   cfg.Path,
		Radius: cfg.Radius,
		Speed:  cfg.Speed,
		Height: cfg.Height,
	}, nil
}

// Position returns the emitter position at time t (seconds).
func (e Emitter) Position(t float32) math.Vec3 {
	a := e.Speed * t
	r := e.Radius

	switch e.Path {
	case config.PathCircle:
		s, c := math32.Sincos(a)
		return math.Vec3{X: r * c, Y: e.Height, Z: r * s}

	case config.PathLine:
		// Back and forth along X at constant speed, turning at ±Radius.
		return math.Vec3{X: pingPong(a, 2*r) - r, Y: e.Height}

	case config.PathFigure8:
		s, c := math32.Sincos(a)
		return math.Vec3{X: r * s, Y: e.Height, Z: r * s * c}

	default: // lissajous
		return math.Vec3{
			X: r * math32.Sin(a),
			Y: e.Height + 0.25*r*math32.Sin(1.5*a),
			Z: r * math32.Sin(2*a+math32.Pi/4),
		}
	}
}

// pingPong folds v into [0, length], bouncing at both ends.
func pingPong(v, length float32) float32 {
	if length <= 0 {
		return 0
	}
	m := math32.Mod(v, 2*length)
	if m < 0 {
		m += 2 * length
	}
	if m > length {
		return 2*length - m
	}
	return m
}
