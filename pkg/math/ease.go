package math

import "github.com/chewxy/math32"

// Ease maps s in [0, 1] through an easing curve. s is clamped first.
//
//	curve > 1      ease in (s^curve)
//	0 < curve < 1  ease out (1 - (1-s)^(1/curve))
//	curve < 0      ease in-out with exponent -curve
//	curve == 0     constant 0
//
// The result is non-decreasing in s and stays in [0, 1].
func Ease(s, curve float32) float32 {
	if s < 0 {
		s = 0
	} else if s > 1 {
		s = 1
	}

	switch {
	case curve > 0:
		if curve < 1 {
			return 1 - math32.Pow(1-s, 1/curve)
		}
		return math32.Pow(s, curve)
	case curve < 0:
		if s < 0.5 {
			return math32.Pow(s*2, -curve) * 0.5
		}
		return (1-math32.Pow(1-(s-0.5)*2, -curve))*0.5 + 0.5
	default:
		return 0
	}
}
