package trail

import "github.com/Faultbox/trailkit/pkg/math"

// Persistence controls how long points of a Line survive.
type Persistence int

const (
	// PersistOff keeps at most TrailLength points, dropping the oldest.
	PersistOff Persistence = iota
	// PersistAlways never removes points.
	PersistAlways
	// PersistConditional adds and removes points according to PersistWhen.
	PersistConditional
)

// PersistWhen selects the rule used by PersistConditional.
type PersistWhen int

const (
	// OnMovement grows while the target moves and shrinks while it is still.
	OnMovement PersistWhen = iota
	// Custom defers to the line's GrowPolicy.
	Custom
)

// Color is an RGBA colour with components in [0, 1].
type Color struct {
	R float32 `yaml:"r" toml:"r"`
	G float32 `yaml:"g" toml:"g"`
	B float32 `yaml:"b" toml:"b"`
	A float32 `yaml:"a" toml:"a"`
}

// Target is anything with a 2D position the line can follow.
type Target interface {
	Position() math.Vec2
}

// GrowPolicy decides growth for PersistConditional with Custom.
type GrowPolicy interface {
	ShouldGrow() bool
	ShouldShrink() bool
}

// LineConfig configures a Line.
type LineConfig struct {
	// TrailLength caps the point count when Persistence is PersistOff.
	TrailLength int         `yaml:"trail_length" toml:"trail_length"`
	Persistence Persistence `yaml:"persistence" toml:"persistence"`
	PersistWhen PersistWhen `yaml:"persist_when" toml:"persist_when"`
	// DegenRate is the number of points removed per shrinking tick.
	DegenRate         int   `yaml:"degen_rate" toml:"degen_rate"`
	AutoAlphaGradient bool  `yaml:"auto_alpha_gradient" toml:"auto_alpha_gradient"`
	Color             Color `yaml:"color" toml:"color"`
}

// DefaultLineConfig returns the default line settings.
func DefaultLineConfig() LineConfig {
	return LineConfig{
		TrailLength:       10,
		Persistence:       PersistOff,
		PersistWhen:       OnMovement,
		DegenRate:         1,
		AutoAlphaGradient: true,
		Color:             Color{1, 1, 1, 1},
	}
}

// Line is a 2D trail of recent target positions, oldest first.
type Line struct {
	cfg    LineConfig
	target Target
	policy GrowPolicy
	points []math.Vec2
}

// NewLine creates an empty line following nothing.
func NewLine(cfg LineConfig) *Line {
	return &Line{cfg: cfg}
}

// Config returns the current configuration.
func (l *Line) Config() LineConfig {
	return l.cfg
}

// SetTarget sets the followed target. A nil target pauses the line.
func (l *Line) SetTarget(t Target) {
	l.target = t
}

// SetGrowPolicy sets the policy used with PersistConditional and Custom.
// A nil policy always grows and always shrinks.
func (l *Line) SetGrowPolicy(p GrowPolicy) {
	l.policy = p
}

// Detach collapses the trail length to zero. The target is kept, so the
// next PersistOff tick empties the line.
func (l *Line) Detach() {
	l.cfg.TrailLength = 0
}

// Points returns a copy of the points, oldest first.
func (l *Line) Points() []math.Vec2 {
	out := make([]math.Vec2, len(l.points))
	copy(out, l.points)
	return out
}

// Len returns the number of points.
func (l *Line) Len() int {
	return len(l.points)
}

// Erase removes every point.
func (l *Line) Erase() {
	l.points = l.points[:0]
}

// Process advances the line by one tick. Without a target it does nothing.
func (l *Line) Process() {
	if l.target == nil {
		return
	}
	pos := l.target.Position()

	switch l.cfg.Persistence {
	case PersistOff:
		l.points = append(l.points, pos)
		if extra := len(l.points) - max(l.cfg.TrailLength, 0); extra > 0 {
			l.removeOldest(extra)
		}
	case PersistAlways:
		l.points = append(l.points, pos)
	case PersistConditional:
		switch l.cfg.PersistWhen {
		case OnMovement:
			if len(l.points) == 0 || l.points[len(l.points)-1] != pos {
				l.points = append(l.points, pos)
			} else {
				l.removeOldest(l.cfg.DegenRate)
			}
		case Custom:
			if l.shouldGrow() {
				l.points = append(l.points, pos)
				if l.shouldShrink() {
					l.removeOldest(l.cfg.DegenRate)
				}
			}
		}
	}
}

// Gradient returns one colour per point. With AutoAlphaGradient the alpha
// ramps from transparent at the oldest point to the line colour's alpha at
// the newest; otherwise every point gets the line colour.
func (l *Line) Gradient() []Color {
	out := make([]Color, len(l.points))
	for i := range out {
		c := l.cfg.Color
		if l.cfg.AutoAlphaGradient {
			t := float32(1)
			if len(out) > 1 {
				t = float32(i) / float32(len(out)-1)
			}
			c.A *= t
		}
		out[i] = c
	}
	return out
}

func (l *Line) removeOldest(n int) {
	if n <= 0 {
		return
	}
	n = min(n, len(l.points))
	l.points = append(l.points[:0], l.points[n:]...)
}

func (l *Line) shouldGrow() bool {
	return l.policy == nil || l.policy.ShouldGrow()
}

func (l *Line) shouldShrink() bool {
	return l.policy == nil || l.policy.ShouldShrink()
}
