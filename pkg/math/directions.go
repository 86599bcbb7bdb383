package math

// Diagonal and 16-wind components. tan(22.5°) is irrational, so the 16-wind
// directions only exist in normalized form.
const (
	invSqrt2 = 0.7071067811865475244
	invSqrt3 = 0.5773502691896257645
	cos22    = 0.9238795325112867561
	sin22    = 0.3826834323650897717
)

// 2D directions. Screen convention: +Y points down.
var (
	Vec2Zero      = Vec2{0, 0}
	Vec2One       = Vec2{1, 1}
	Vec2Right     = Vec2{1, 0}
	Vec2DownRight = Vec2{1, 1}
	Vec2Down      = Vec2{0, 1}
	Vec2DownLeft  = Vec2{-1, 1}
	Vec2Left      = Vec2{-1, 0}
	Vec2UpLeft    = Vec2{-1, -1}
	Vec2Up        = Vec2{0, -1}
	Vec2UpRight   = Vec2{1, -1}

	Vec2DownRightNorm = Vec2{invSqrt2, invSqrt2}
	Vec2DownLeftNorm  = Vec2{-invSqrt2, invSqrt2}
	Vec2UpLeftNorm    = Vec2{-invSqrt2, -invSqrt2}
	Vec2UpRightNorm   = Vec2{invSqrt2, -invSqrt2}

	// Compass aliases, north is up.
	Vec2E  = Vec2Right
	Vec2SE = Vec2DownRight
	Vec2S  = Vec2Down
	Vec2SW = Vec2DownLeft
	Vec2W  = Vec2Left
	Vec2NW = Vec2UpLeft
	Vec2N  = Vec2Up
	Vec2NE = Vec2UpRight

	Vec2SENorm = Vec2DownRightNorm
	Vec2SWNorm = Vec2DownLeftNorm
	Vec2NWNorm = Vec2UpLeftNorm
	Vec2NENorm = Vec2UpRightNorm

	Vec2SEE = Vec2{cos22, sin22}
	Vec2SSE = Vec2{sin22, cos22}
	Vec2SSW = Vec2{-sin22, cos22}
	Vec2SWW = Vec2{-cos22, sin22}
	Vec2NWW = Vec2{-cos22, -sin22}
	Vec2NNW = Vec2{-sin22, -cos22}
	Vec2NNE = Vec2{sin22, -cos22}
	Vec2NEE = Vec2{cos22, -sin22}
)

// Vec2DirCardinal returns the four cardinal directions clockwise from Right.
func Vec2DirCardinal() [4]Vec2 {
	return [4]Vec2{Vec2Right, Vec2Down, Vec2Left, Vec2Up}
}

// Vec2Dir8 returns the eight grid directions clockwise from Right.
// Diagonals are not normalized.
func Vec2Dir8() [8]Vec2 {
	return [8]Vec2{Vec2Right, Vec2DownRight, Vec2Down, Vec2DownLeft, Vec2Left, Vec2UpLeft, Vec2Up, Vec2UpRight}
}

// Vec2Dir8Norm returns the eight directions of Vec2Dir8 with unit length.
func Vec2Dir8Norm() [8]Vec2 {
	return [8]Vec2{Vec2Right, Vec2DownRightNorm, Vec2Down, Vec2DownLeftNorm, Vec2Left, Vec2UpLeftNorm, Vec2Up, Vec2UpRightNorm}
}

// Vec2Dir16 returns sixteen unit directions clockwise from east.
func Vec2Dir16() [16]Vec2 {
	return [16]Vec2{
		Vec2E, Vec2SEE, Vec2SENorm, Vec2SSE,
		Vec2S, Vec2SSW, Vec2SWNorm, Vec2SWW,
		Vec2W, Vec2NWW, Vec2NWNorm, Vec2NNW,
		Vec2N, Vec2NNE, Vec2NENorm, Vec2NEE,
	}
}

// 3D directions. Y is up and -Z is forward.
var (
	Vec3Zero         = Vec3{0, 0, 0}
	Vec3One          = Vec3{1, 1, 1}
	Vec3Right        = Vec3{1, 0, 0}
	Vec3BackRight    = Vec3{1, 0, 1}
	Vec3Back         = Vec3{0, 0, 1}
	Vec3BackLeft     = Vec3{-1, 0, 1}
	Vec3Left         = Vec3{-1, 0, 0}
	Vec3ForwardLeft  = Vec3{-1, 0, -1}
	Vec3Forward      = Vec3{0, 0, -1}
	Vec3ForwardRight = Vec3{1, 0, -1}
	Vec3Up           = Vec3{0, 1, 0}
	Vec3Down         = Vec3{0, -1, 0}

	Vec3BackRightNorm    = Vec3{invSqrt2, 0, invSqrt2}
	Vec3BackLeftNorm     = Vec3{-invSqrt2, 0, invSqrt2}
	Vec3ForwardLeftNorm  = Vec3{-invSqrt2, 0, -invSqrt2}
	Vec3ForwardRightNorm = Vec3{invSqrt2, 0, -invSqrt2}

	Vec3UpRight        = Vec3{1, 1, 0}
	Vec3UpBackRight    = Vec3{1, 1, 1}
	Vec3UpBack         = Vec3{0, 1, 1}
	Vec3UpBackLeft     = Vec3{-1, 1, 1}
	Vec3UpLeft         = Vec3{-1, 1, 0}
	Vec3UpForwardLeft  = Vec3{-1, 1, -1}
	Vec3UpForward      = Vec3{0, 1, -1}
	Vec3UpForwardRight = Vec3{1, 1, -1}

	Vec3DownRight        = Vec3{1, -1, 0}
	Vec3DownBackRight    = Vec3{1, -1, 1}
	Vec3DownBack         = Vec3{0, -1, 1}
	Vec3DownBackLeft     = Vec3{-1, -1, 1}
	Vec3DownLeft         = Vec3{-1, -1, 0}
	Vec3DownForwardLeft  = Vec3{-1, -1, -1}
	Vec3DownForward      = Vec3{0, -1, -1}
	Vec3DownForwardRight = Vec3{1, -1, -1}

	Vec3UpRightNorm        = Vec3{invSqrt2, invSqrt2, 0}
	Vec3UpBackRightNorm    = Vec3{invSqrt3, invSqrt3, invSqrt3}
	Vec3UpBackNorm         = Vec3{0, invSqrt2, invSqrt2}
	Vec3UpBackLeftNorm     = Vec3{-invSqrt3, invSqrt3, invSqrt3}
	Vec3UpLeftNorm         = Vec3{-invSqrt2, invSqrt2, 0}
	Vec3UpForwardLeftNorm  = Vec3{-invSqrt3, invSqrt3, -invSqrt3}
	Vec3UpForwardNorm      = Vec3{0, invSqrt2, -invSqrt2}
	Vec3UpForwardRightNorm = Vec3{invSqrt3, invSqrt3, -invSqrt3}

	Vec3DownRightNorm        = Vec3{invSqrt2, -invSqrt2, 0}
	Vec3DownBackRightNorm    = Vec3{invSqrt3, -invSqrt3, invSqrt3}
	Vec3DownBackNorm         = Vec3{0, -invSqrt2, invSqrt2}
	Vec3DownBackLeftNorm     = Vec3{-invSqrt3, -invSqrt3, invSqrt3}
	Vec3DownLeftNorm         = Vec3{-invSqrt2, -invSqrt2, 0}
	Vec3DownForwardLeftNorm  = Vec3{-invSqrt3, -invSqrt3, -invSqrt3}
	Vec3DownForwardNorm      = Vec3{0, -invSqrt2, -invSqrt2}
	Vec3DownForwardRightNorm = Vec3{invSqrt3, -invSqrt3, -invSqrt3}

	// Compass aliases on the ground plane, north is forward.
	Vec3E  = Vec3Right
	Vec3SE = Vec3BackRight
	Vec3S  = Vec3Back
	Vec3SW = Vec3BackLeft
	Vec3W  = Vec3Left
	Vec3NW = Vec3ForwardLeft
	Vec3N  = Vec3Forward
	Vec3NE = Vec3ForwardRight

	Vec3SENorm = Vec3BackRightNorm
	Vec3SWNorm = Vec3BackLeftNorm
	Vec3NWNorm = Vec3ForwardLeftNorm
	Vec3NENorm = Vec3ForwardRightNorm

	Vec3SEE = Vec3{cos22, 0, sin22}
	Vec3SSE = Vec3{sin22, 0, cos22}
	Vec3SSW = Vec3{-sin22, 0, cos22}
	Vec3SWW = Vec3{-cos22, 0, sin22}
	Vec3NWW = Vec3{-cos22, 0, -sin22}
	Vec3NNW = Vec3{-sin22, 0, -cos22}
	Vec3NNE = Vec3{sin22, 0, -cos22}
	Vec3NEE = Vec3{cos22, 0, -sin22}
)

// Vec3DirCardinal returns the four ground-plane cardinal directions,
// clockwise seen from above, starting at Right.
func Vec3DirCardinal() [4]Vec3 {
	return [4]Vec3{Vec3Right, Vec3Back, Vec3Left, Vec3Forward}
}

// Vec3Dir8 returns the eight ground-plane grid directions. Diagonals are not normalized.
func Vec3Dir8() [8]Vec3 {
	return [8]Vec3{Vec3Right, Vec3BackRight, Vec3Back, Vec3BackLeft, Vec3Left, Vec3ForwardLeft, Vec3Forward, Vec3ForwardRight}
}

// Vec3Dir8Norm returns the directions of Vec3Dir8 with unit length.
func Vec3Dir8Norm() [8]Vec3 {
	return [8]Vec3{Vec3Right, Vec3BackRightNorm, Vec3Back, Vec3BackLeftNorm, Vec3Left, Vec3ForwardLeftNorm, Vec3Forward, Vec3ForwardRightNorm}
}

// Vec3Dir16 returns sixteen unit ground-plane directions starting at east.
func Vec3Dir16() [16]Vec3 {
	return [16]Vec3{
		Vec3E, Vec3SEE, Vec3SENorm, Vec3SSE,
		Vec3S, Vec3SSW, Vec3SWNorm, Vec3SWW,
		Vec3W, Vec3NWW, Vec3NWNorm, Vec3NNW,
		Vec3N, Vec3NNE, Vec3NENorm, Vec3NEE,
	}
}
