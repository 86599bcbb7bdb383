package term

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/trailkit/internal/logger"
	"github.com/Faultbox/trailkit/internal/sim"
)

// Session runs a driver against a preview until the user quits or the tick budget runs out.
type Session struct {
	screen  tcell.Screen
	driver  *sim.Driver
	preview *Preview
	// Ticks stops the session after this many steps. Zero runs until quit.
	Ticks int

	last sim.Frame
	log  *zap.Logger
}

// NewSession wires a driver to an initialized screen.
func NewSession(screen tcell.Screen, d *sim.Driver, extent float32) *Session {
	return &Session{
		screen:  screen,
		driver:  d,
		preview: NewPreview(screen, extent),
		log:     logger.Named("term"),
	}
}

// Last returns the most recent frame.
func (s *Session) Last() sim.Frame {
	return s.last
}

// Preview returns the session's preview.
func (s *Session) Preview() *Preview {
	return s.preview
}

// Run blocks until Esc, q, Ctrl-C or the tick budget.
func (s *Session) Run() {
	ticker := time.NewTicker(time.Duration(float64(time.Second) * float64(s.driver.FixedStep())))
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go s.pumpEvents(events, done)

	s.last = s.driver.Step(0)
	s.preview.Draw(s.last)
	for {
		select {
		case ev := <-events:
			if !s.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			if !s.Advance() {
				return
			}
		}
	}
}

// pumpEvents forwards screen events until the screen is finalized or done closes.
func (s *Session) pumpEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Advance steps the driver once unless paused. It reports false once the tick budget is spent.
func (s *Session) Advance() bool {
	if !s.preview.Paused {
		s.last = s.driver.Step(s.driver.FixedStep())
	}
	s.preview.Draw(s.last)
	return s.Ticks <= 0 || s.last.Tick < s.Ticks
}

func (s *Session) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		s.screen.Sync()
		s.preview.Draw(s.last)
	}
	return true
}

// HandleKey applies a key press and reports whether the session should keep running.
func (s *Session) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch r {
	case 'q':
		return false
	case ' ':
		s.preview.Paused = !s.preview.Paused
		s.log.Debug("pause toggled", zap.Bool("paused", s.preview.Paused))
	case '.':
		if s.preview.Paused {
			s.last = s.driver.Step(s.driver.FixedStep())
		}
	case 'r':
		s.driver.Reset()
		s.last = s.driver.Step(0)
		s.log.Debug("reset")
	case '+', '=':
		s.preview.Extent *= 0.8
	case '-':
		s.preview.Extent *= 1.25
	}
	s.preview.Draw(s.last)
	return true
}
