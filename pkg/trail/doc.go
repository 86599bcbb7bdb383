// Package trail generates trail geometry that follows a moving emitter.
//
// Tube builds a triangulated 3D tube behind an emitter by relaxing a fixed
// length chain of points toward it every tick. Line keeps a 2D polyline of
// recent target positions with configurable persistence.
//
// Both types are driven by the host once per tick and never allocate
// goroutines or hold locks; a single instance must not be shared between
// goroutines without external synchronization.
package trail
