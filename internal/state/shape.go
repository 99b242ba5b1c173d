package state

import (
	"image/color"
	"math"

	"github.com/google/uuid"
)

// ShapeKind selects which primitive a new shape becomes.
type ShapeKind string

const (
	KindCircle    ShapeKind = "circle"
	KindRectangle ShapeKind = "rectangle"
	KindLine      ShapeKind = "line"
)

// Shape is one drawn primitive. The variant set is closed: every
// operation switches on Kind rather than dispatching through an
// interface.
//
// AnchorX/AnchorY never change after creation. Which of the size
// fields is meaningful depends on Kind:
//   - Circle: Radius
//   - Rectangle: Width, Height (signed; negative means the user
//     dragged up/left of the anchor)
//   - Line: EndX, EndY
type Shape struct {
	ID          string
	Kind        ShapeKind
	AnchorX     int
	AnchorY     int
	Color       color.Color
	StrokeWidth float32

	Radius        int
	Width, Height int
	EndX, EndY    int
}

// NewShape creates a shape of the given kind anchored at (x, y).
// An unrecognized kind yields nil; callers treat that as "no active
// shape" rather than an error.
func NewShape(kind ShapeKind, x, y int, c color.Color, strokeWidth float32) *Shape {
	switch kind {
	case KindCircle, KindRectangle, KindLine:
	default:
		return nil
	}

	s := &Shape{
		ID:          uuid.NewString(),
		Kind:        kind,
		AnchorX:     x,
		AnchorY:     y,
		Color:       c,
		StrokeWidth: strokeWidth,
	}
	if kind == KindLine {
		// A fresh line is degenerate: both endpoints at the anchor.
		s.EndX, s.EndY = x, y
	}
	return s
}

// UpdateSize resizes the shape toward the pointer position (x, y).
// The anchor stays fixed.
func (s *Shape) UpdateSize(x, y int) {
	switch s.Kind {
	case KindCircle:
		// Truncated toward zero, not rounded.
		s.Radius = int(math.Hypot(float64(x-s.AnchorX), float64(y-s.AnchorY)))
	case KindRectangle:
		s.Width = x - s.AnchorX
		s.Height = y - s.AnchorY
	case KindLine:
		s.EndX = x
		s.EndY = y
	}
}
