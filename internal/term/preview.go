// Package term draws a top-down view of the simulation in a terminal.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/trailkit/internal/sim"
	"github.com/Faultbox/trailkit/pkg/math"
)

const (
	tubeRune    = '.'
	lineRune    = '█'
	emitterRune = '@'
)

var (
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleTube    = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleEmitter = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Preview maps the XZ plane onto a screen. Row 0 is the status bar.
type Preview struct {
	screen tcell.Screen
	// Extent is the half-size of the visible square in world units.
	Extent float32
	Paused bool
}

// NewPreview creates a preview over screen. Non-positive extents fall back to 10.
func NewPreview(screen tcell.Screen, extent float32) *Preview {
	if extent <= 0 {
		extent = 10
	}
	return &Preview{screen: screen, Extent: extent}
}

// Project returns the cell for a ground position, or ok=false when it is off screen.
func (p *Preview) Project(v math.Vec2) (x, y int, ok bool) {
	w, h := p.screen.Size()
	if w < 1 || h < 2 {
		return 0, 0, false
	}
	span := 2 * p.Extent
	x = int((v.X+p.Extent)/span*float32(w-1) + 0.5)
	y = 1 + int((v.Y+p.Extent)/span*float32(h-2)+0.5)
	if v.X < -p.Extent || v.X > p.Extent || v.Y < -p.Extent || v.Y > p.Extent {
		return x, y, false
	}
	return x, y, true
}

// Draw renders one frame and shows it.
func (p *Preview) Draw(f sim.Frame) {
	p.screen.Clear()

	for _, tri := range f.Mesh.Triangles {
		for _, v := range tri {
			p.set(v.Add(f.Emitter).XZ(), tubeRune, styleTube)
		}
	}

	for i, pt := range f.LinePoints {
		alpha := float32(1)
		if i < len(f.LineColors) {
			alpha = f.LineColors[i].A
		}
		p.set(pt, lineRune, tcell.StyleDefault.Foreground(intensity(alpha)))
	}

	p.set(f.Emitter.XZ(), emitterRune, styleEmitter)
	p.drawStatus(f.Stats())
	p.screen.Show()
}

func (p *Preview) set(v math.Vec2, r rune, style tcell.Style) {
	if x, y, ok := p.Project(v); ok {
		p.screen.SetContent(x, y, r, nil, style)
	}
}

func (p *Preview) drawStatus(s sim.Stats) {
	w, _ := p.screen.Size()
	text := fmt.Sprintf(" tick %d  rings %d  tris %d  line %d", s.Tick, s.Rings, s.Triangles, s.LineLen)
	if p.Paused {
		text += "  [paused]"
	}
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(text) {
			r = rune(text[x])
		}
		p.screen.SetContent(x, 0, r, nil, styleStatus)
	}
}

// intensity maps an alpha in [0,1] to a grey level.
func intensity(alpha float32) tcell.Color {
	level := int32(alpha * 255)
	if level < 0 {
		level = 0
	}
	if level > 255 {
		level = 255
	}
	return tcell.NewRGBColor(level, level, level)
}
