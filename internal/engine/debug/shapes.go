package debug

import "github.com/Faultbox/trailkit/pkg/math"

// Shape is a 2D collision shape that Geometry2D knows how to draw.
type Shape interface {
	shape()
}

// CircleShape is a circle centred on the origin.
type CircleShape struct {
	Radius float32
}

// RectangleShape is an axis-aligned rectangle; Extents are half sizes.
type RectangleShape struct {
	Extents math.Vec2
}

// CapsuleShape is a vertical capsule. Height is the distance between the
// centres of the two end circles.
type CapsuleShape struct {
	Radius float32
	Height float32
}

func (CircleShape) shape()    {}
func (RectangleShape) shape() {}
func (CapsuleShape) shape()   {}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	Position math.Vec2
	Size     math.Vec2
}

// Canvas receives immediate-mode 2D draw calls.
type Canvas interface {
	DrawCircle(center math.Vec2, radius float32, color Color)
	DrawRect(rect Rect, color Color)
}

// Geometry2D draws a collision shape in a flat color, offset from its origin.
type Geometry2D struct {
	Shape  Shape
	Color  Color
	Offset math.Vec2
}

// NewGeometry2D returns a white shape with no offset.
func NewGeometry2D(s Shape) *Geometry2D {
	return &Geometry2D{Shape: s, Color: ColorWhite}
}

// Draw issues the draw calls for the shape. A nil shape draws nothing.
func (g *Geometry2D) Draw(c Canvas) {
	switch s := g.Shape.(type) {
	case CircleShape:
		c.DrawCircle(g.Offset, s.Radius, g.Color)
	case RectangleShape:
		c.DrawRect(Rect{
			Position: g.Offset.Sub(s.Extents),
			Size:     s.Extents.Scale(2),
		}, g.Color)
	case CapsuleShape:
		DrawCapsule(c, g.Offset, s.Radius, s.Height, g.Color)
	}
}

// DrawCapsule draws a capsule as two end circles joined by a rectangle.
func DrawCapsule(c Canvas, center math.Vec2, radius, height float32, color Color) {
	half := math.Vec2{Y: height * 0.5}
	c.DrawCircle(center.Add(half), radius, color)
	c.DrawCircle(center.Sub(half), radius, color)
	c.DrawRect(Rect{
		Position: center.Sub(math.Vec2{X: radius, Y: height * 0.5}),
		Size:     math.Vec2{X: radius * 2, Y: height},
	}, color)
}
