// Package overlay assembles per-frame debug geometry and pacing for the viewer,
// independent of any graphics API.
package overlay

import (
	"github.com/Faultbox/trailkit/internal/config"
	"github.com/Faultbox/trailkit/internal/engine/debug"
	"github.com/Faultbox/trailkit/internal/sim"
	"github.com/Faultbox/trailkit/pkg/math"
)

// Overlay heights keep flat debug geometry from z-fighting with the grid.
const (
	groundHeight    = 0
	trailHeight     = 0.02
	footprintHeight = 0.01

	gridHalfExtent = 20
	gridSpacing    = 1
)

// Overlay builds the per-frame debug geometry around the tube.
type Overlay struct {
	ShowGrid      bool
	ShowBounds    bool
	ShowFootprint bool

	footprint *debug.Geometry2D
	canvas    *debug.VertexCanvas

	// Lines holds GL_LINES pairs: grid, then the bounds box.
	Lines []debug.ColorVertex
	// Trail is a GL_LINE_STRIP of the 2D line trail on the ground.
	Trail []debug.ColorVertex
	// Triangles holds the filled footprint shape.
	Triangles []debug.ColorVertex
}

// New creates an overlay from debug settings.
func New(cfg config.DebugConfig) *Overlay {
	fp := debug.NewGeometry2D(footprintShape(cfg.FootprintShape, cfg.FootprintSize))
	fp.Color = debug.ColorFootprint
	return &Overlay{
		ShowGrid:      cfg.ShowGrid,
		ShowBounds:    cfg.ShowBounds,
		ShowFootprint: cfg.ShowFootprint,
		footprint:     fp,
		canvas:        debug.NewVertexCanvas(footprintHeight),
	}
}

// footprintShape maps a configured shape kind to a debug shape of the given size.
// Unknown kinds yield nil, which draws nothing.
func footprintShape(kind string, size float32) debug.Shape {
	switch kind {
	case config.ShapeCircle:
		return debug.CircleShape{Radius: size}
	case config.ShapeRectangle:
		return debug.RectangleShape{Extents: math.Vec2{X: size, Y: size}}
	case config.ShapeCapsule:
		return debug.CapsuleShape{Radius: size * 0.5, Height: size * 2}
	}
	return nil
}

// Build regenerates every batch for a frame.
func (o *Overlay) Build(f sim.Frame) {
	o.Lines = o.Lines[:0]
	if o.ShowGrid {
		center := f.Emitter.XZ()
		o.Lines = append(o.Lines, debug.GenerateGroundGrid(center, gridHalfExtent, gridSpacing, groundHeight)...)
	}
	if o.ShowBounds && !f.Mesh.Empty() {
		b := f.Stats().Bounds
		o.Lines = append(o.Lines, debug.GenerateBBoxWireframe(b.Min, b.Max, debug.DefaultBBoxPadding, debug.ColorBounds)...)
	}

	o.Trail = o.Trail[:0]
	for i, p := range f.LinePoints {
		c := f.LineColors[i]
		o.Trail = append(o.Trail, debug.ColorVertex{
			X: p.X, Y: trailHeight, Z: p.Y,
			R: c.R, G: c.G, B: c.B, A: c.A,
		})
	}

	o.canvas.Reset()
	if o.ShowFootprint {
		o.footprint.Offset = f.Emitter.XZ()
		o.footprint.Draw(o.canvas)
	}
	o.Triangles = o.canvas.Vertices()
}
