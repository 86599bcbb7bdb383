package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/trailkit/internal/config"
	"github.com/Faultbox/trailkit/internal/sim"
	"github.com/Faultbox/trailkit/pkg/math"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func newDriver(t *testing.T) *sim.Driver {
	t.Helper()
	cfg := config.Default()
	cfg.Emitter = config.EmitterConfig{Path: config.PathCircle, Radius: 6, Speed: 1, Height: 2}
	d, err := sim.NewDriver(cfg)
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	return d
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestProject(t *testing.T) {
	p := NewPreview(newScreen(t), 10)

	tests := []struct {
		in     math.Vec2
		x, y   int
		inside bool
	}{
		{math.Vec2{X: 0, Y: 0}, 40, 12, true},
		{math.Vec2{X: -10, Y: -10}, 0, 1, true},
		{math.Vec2{X: 10, Y: 10}, 79, 23, true},
		{math.Vec2{X: 6, Y: 0}, 63, 12, true},
		{math.Vec2{X: 11, Y: 0}, 0, 0, false},
		{math.Vec2{X: 0, Y: -10.5}, 0, 0, false},
	}

	for _, tt := range tests {
		x, y, ok := p.Project(tt.in)
		if ok != tt.inside {
			t.Errorf("Project(%v) ok = %v, want %v", tt.in, ok, tt.inside)
			continue
		}
		if ok && (x != tt.x || y != tt.y) {
			t.Errorf("Project(%v) = (%d, %d), want (%d, %d)", tt.in, x, y, tt.x, tt.y)
		}
	}
}

func TestNewPreviewDefaultExtent(t *testing.T) {
	p := NewPreview(newScreen(t), 0)
	if p.Extent != 10 {
		t.Errorf("Extent = %v, want 10", p.Extent)
	}
}

func TestDrawMarksEmitterAndStatus(t *testing.T) {
	screen := newScreen(t)
	d := newDriver(t)
	p := NewPreview(screen, 10)

	p.Draw(d.Step(0))

	if got := runeAt(screen, 63, 12); got != emitterRune {
		t.Errorf("emitter cell = %q, want %q", got, emitterRune)
	}
	if got := runeAt(screen, 1, 0); got != 't' {
		t.Errorf("status cell = %q, want 't'", got)
	}
}

func TestDrawShowsTubeAfterMotion(t *testing.T) {
	screen := newScreen(t)
	d := newDriver(t)
	p := NewPreview(screen, 10)

	var f sim.Frame
	d.Run(90, func(fr sim.Frame) error {
		f = fr
		return nil
	})
	if len(f.Mesh.Triangles) == 0 {
		t.Fatal("mesh is empty after 90 ticks")
	}
	p.Draw(f)

	w, h := screen.Size()
	var tube, line int
	for y := 1; y < h; y++ {
		for x := 0; x < w; x++ {
			switch runeAt(screen, x, y) {
			case tubeRune:
				tube++
			case lineRune:
				line++
			}
		}
	}
	if tube == 0 {
		t.Error("no tube cells drawn")
	}
	if line == 0 {
		t.Error("no line cells drawn")
	}
}

func TestHandleKeyQuits(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want bool
	}{
		{"escape", tcell.KeyEscape, 0, false},
		{"ctrl-c", tcell.KeyCtrlC, 0, false},
		{"q", tcell.KeyRune, 'q', false},
		{"other rune", tcell.KeyRune, 'x', true},
		{"arrow", tcell.KeyUp, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(newScreen(t), newDriver(t), 10)
			if got := s.HandleKey(tt.key, tt.r); got != tt.want {
				t.Errorf("HandleKey = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPauseAndSingleStep(t *testing.T) {
	s := NewSession(newScreen(t), newDriver(t), 10)

	s.Advance()
	if s.Last().Tick != 1 {
		t.Fatalf("Tick = %d, want 1", s.Last().Tick)
	}

	s.HandleKey(tcell.KeyRune, ' ')
	if !s.Preview().Paused {
		t.Fatal("space did not pause")
	}
	s.Advance()
	if s.Last().Tick != 1 {
		t.Errorf("paused Advance moved to tick %d", s.Last().Tick)
	}

	s.HandleKey(tcell.KeyRune, '.')
	if s.Last().Tick != 2 {
		t.Errorf("single step Tick = %d, want 2", s.Last().Tick)
	}
}

func TestAdvanceHonorsTickBudget(t *testing.T) {
	s := NewSession(newScreen(t), newDriver(t), 10)
	s.Ticks = 3

	want := []bool{true, true, false}
	for i, w := range want {
		if got := s.Advance(); got != w {
			t.Errorf("Advance #%d = %v, want %v", i+1, got, w)
		}
	}
}

func TestResetAndZoom(t *testing.T) {
	d := newDriver(t)
	s := NewSession(newScreen(t), d, 10)
	for i := 0; i < 5; i++ {
		s.Advance()
	}

	s.HandleKey(tcell.KeyRune, 'r')
	if s.Last().Tick != 1 || d.Time() != 0 {
		t.Errorf("after reset tick = %d time = %v, want 1 and 0", s.Last().Tick, d.Time())
	}

	s.HandleKey(tcell.KeyRune, '+')
	if s.Preview().Extent != 8 {
		t.Errorf("Extent after zoom in = %v, want 8", s.Preview().Extent)
	}
	s.HandleKey(tcell.KeyRune, '-')
	if s.Preview().Extent != 10 {
		t.Errorf("Extent after zoom out = %v, want 10", s.Preview().Extent)
	}
}

func TestPumpEventsStopsWhenDone(t *testing.T) {
	screen := newScreen(t)
	s := NewSession(screen, newDriver(t), 10)

	if err := screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	events := make(chan tcell.Event)
	done := make(chan struct{})
	close(done)

	finished := make(chan struct{})
	go func() {
		s.pumpEvents(events, done)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("pumpEvents blocked on a send nobody receives")
	}
}
