package sim

import (
	"go.uber.org/zap"

	"github.com/Faultbox/trailkit/internal/config"
	"github.com/Faultbox/trailkit/internal/logger"
	"github.com/Faultbox/trailkit/pkg/math"
	"github.com/Faultbox/trailkit/pkg/trail"
)

// Frame is the result of one tick.
type Frame struct {
	Tick    int
	Time    float32
	Emitter math.Vec3
	// Mesh is relative to Emitter.
	Mesh       trail.Mesh
	LinePoints []math.Vec2
	LineColors []trail.Color
}

// Stats summarizes a frame for logs and tool output.
type Stats struct {
	Tick      int
	Rings     int
	Triangles int
	Bounds    trail.Bounds
	LineLen   int
}

// Stats returns the frame summary. Bounds are in world space.
func (f Frame) Stats() Stats {
	return Stats{
		Tick:      f.Tick,
		Rings:     f.Mesh.Rings,
		Triangles: len(f.Mesh.Triangles),
		Bounds:    f.Mesh.Translate(f.Emitter).Bounds(),
		LineLen:   len(f.LinePoints),
	}
}

// Driver owns a tube, a line and the emitter they follow.
type Driver struct {
	emitter Emitter
	tube    *trail.Tube
	line    *trail.Line

	tickRate float32
	time     float32
	tick     int
	pos      math.Vec3

	log *zap.Logger
}

// emitterTarget exposes the emitter's ground position to the line trail.
type emitterTarget struct {
	d *Driver
}

func (t emitterTarget) Position() math.Vec2 {
	return t.d.pos.XZ()
}

// NewDriver builds a driver from config and places the chain at the emitter's start.
func NewDriver(cfg *config.Config) (*Driver, error) {
	em, err := NewEmitter(cfg.Emitter)
	if err != nil {
		return nil, err
	}

	d := &Driver{
		emitter:  em,
		tube:     trail.NewTube(cfg.Tube),
		line:     trail.NewLine(cfg.Line),
		tickRate: cfg.Sim.TickRate,
		log:      logger.Named("sim"),
	}
	d.line.SetTarget(emitterTarget{d})
	d.Reset()

	tc := d.tube.Config()
	d.log.Info("driver ready",
		zap.String("path", em.Path),
		zap.Float32("length", tc.Length),
		zap.Int("rings_max", tc.DensityLengthwise),
		zap.Int("around", tc.DensityAround),
		zap.Float32("segment", d.tube.SegmentLength()),
	)
	return d, nil
}

// Reset rewinds time and re-initializes both trails at the emitter's start position.
func (d *Driver) Reset() {
	d.time = 0
	d.tick = 0
	d.pos = d.emitter.Position(0)
	d.tube.Initialize(d.pos)
	d.line.Erase()
	d.log.Debug("reset", zap.Float32("x", d.pos.X), zap.Float32("y", d.pos.Y), zap.Float32("z", d.pos.Z))
}

// Step advances time by dt seconds and ticks both trails once.
// A non-positive dt ticks without moving the emitter.
func (d *Driver) Step(dt float32) Frame {
	if dt > 0 {
		d.time += dt
	}
	d.tick++
	d.pos = d.emitter.Position(d.time)

	mesh := d.tube.Tick(d.pos)
	d.line.Process()

	f := Frame{
		Tick:       d.tick,
		Time:       d.time,
		Emitter:    d.pos,
		Mesh:       mesh,
		LinePoints: d.line.Points(),
		LineColors: d.line.Gradient(),
	}

	if ce := d.log.Check(zap.DebugLevel, "step"); ce != nil {
		ce.Write(
			zap.Int("tick", f.Tick),
			zap.Int("rings", mesh.Rings),
			zap.Int("triangles", len(mesh.Triangles)),
			zap.Int("line", len(f.LinePoints)),
		)
	}
	return f
}

// FixedStep is the tick length implied by the configured tick rate.
func (d *Driver) FixedStep() float32 {
	return 1 / d.tickRate
}

// Run performs n fixed steps, handing each frame to fn. It stops at the first error.
func (d *Driver) Run(n int, fn func(Frame) error) error {
	dt := d.FixedStep()
	for i := 0; i < n; i++ {
		f := d.Step(dt)
		if fn == nil {
			continue
		}
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

// Tube returns the tube builder.
func (d *Driver) Tube() *trail.Tube {
	return d.tube
}

// Line returns the line trail.
func (d *Driver) Line() *trail.Line {
	return d.line
}

// Emitter returns the scripted emitter.
func (d *Driver) Emitter() Emitter {
	return d.emitter
}

// Time returns the simulated time in seconds.
func (d *Driver) Time() float32 {
	return d.time
}
