package overlay

// MaxStepsPerFrame bounds catch-up work after a stall.
const MaxStepsPerFrame = 5

// Clock turns variable frame times into whole fixed simulation ticks.
type Clock struct {
	Step float32
	acc  float32
}

// Advance adds dt seconds and returns how many ticks to run. Time beyond
// MaxStepsPerFrame ticks is dropped.
func (c *Clock) Advance(dt float32) int {
	if dt <= 0 || c.Step <= 0 {
		return 0
	}
	c.acc += dt
	n := int(c.acc / c.Step)
	if n > MaxStepsPerFrame {
		c.acc = 0
		return MaxStepsPerFrame
	}
	c.acc -= float32(n) * c.Step
	return n
}

// Reset drops any accumulated time.
func (c *Clock) Reset() {
	c.acc = 0
}
