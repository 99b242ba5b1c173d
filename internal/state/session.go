package state

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hashicorp/go-hclog"

	"ShapeBoard/internal/imageio"
)

// Session owns everything the canvas displays: the ordered shape list,
// the optional quantized background image, and the current drawing
// settings. It has no dependency on any UI toolkit so it can be
// exercised headless.
//
// Shape order is paint order: earlier shapes render beneath later
// ones. Only the most recently begun shape (the active one) mutates,
// and only between BeginShape and EndShape.
type Session struct {
	shapes []*Shape
	active *Shape

	primary     color.Color
	secondary   color.Color
	kind        ShapeKind
	strokeWidth float32

	background *image.NRGBA

	loader *imageio.Loader
	logger hclog.Logger
}

// NewSession creates a session with the default settings: primary
// black, secondary white, circle tool selected.
func NewSession(logger hclog.Logger) *Session {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Session{
		shapes:      make([]*Shape, 0),
		primary:     color.Black,
		secondary:   color.White,
		kind:        KindCircle,
		strokeWidth: 2.0,
		loader:      imageio.NewLoader(),
		logger:      logger,
	}
}

// BeginShape starts a new shape at (x, y) using the selected kind and
// the primary color, and appends it to the paint list. If the selected
// kind is unrecognized nothing is created and the session stays idle.
func (s *Session) BeginShape(x, y int) {
	shape := NewShape(s.kind, x, y, s.primary, s.strokeWidth)
	if shape == nil {
		s.logger.Debug("ignoring begin for unknown shape kind", "kind", s.kind)
		return
	}
	s.shapes = append(s.shapes, shape)
	s.active = shape
	s.logger.Debug("shape begun", "id", shape.ID, "kind", shape.Kind, "x", x, "y", y)
}

// DragTo resizes the active shape toward (x, y). No-op when idle.
func (s *Session) DragTo(x, y int) {
	if s.active == nil {
		return
	}
	s.active.UpdateSize(x, y)
}

// EndShape freezes the active shape. It stays in the paint list but
// receives no further updates.
func (s *Session) EndShape() {
	if s.active == nil {
		return
	}
	s.logger.Debug("shape finished", "id", s.active.ID, "kind", s.active.Kind)
	s.active = nil
}

// Clear drops every shape. The background image and the current
// settings are kept.
func (s *Session) Clear() {
	s.shapes = make([]*Shape, 0)
	s.active = nil
	s.logger.Debug("canvas cleared")
}

// SetSelectedKind changes the tool used for the next BeginShape.
// Already-created shapes are unaffected.
func (s *Session) SetSelectedKind(kind ShapeKind) { s.kind = kind }

// SetPrimaryColor changes the stroke color for new shapes and the
// reference color for the next image load. An already-loaded
// background is deliberately NOT re-quantized; only a fresh LoadImage
// applies the new reference.
func (s *Session) SetPrimaryColor(c color.Color) { s.primary = c }

// SetSecondaryColor changes the second reference color for the next
// image load. Same staleness rule as SetPrimaryColor.
func (s *Session) SetSecondaryColor(c color.Color) { s.secondary = c }

// SetStrokeWidth changes the outline width for new shapes.
func (s *Session) SetStrokeWidth(w float32) { s.strokeWidth = w }

// SelectedKind returns the current tool.
func (s *Session) SelectedKind() ShapeKind { return s.kind }

// PrimaryColor returns the current primary color.
func (s *Session) PrimaryColor() color.Color { return s.primary }

// SecondaryColor returns the current secondary color.
func (s *Session) SecondaryColor() color.Color { return s.secondary }

// StrokeWidth returns the current outline width.
func (s *Session) StrokeWidth() float32 { return s.strokeWidth }

// Shapes returns the paint list in z-order, earliest first. The slice
// is shared; callers must not mutate it.
func (s *Session) Shapes() []*Shape { return s.shapes }

// Background returns the quantized background image, or nil if no
// image has been loaded.
func (s *Session) Background() *image.NRGBA { return s.background }

// LoadImage decodes the image at path and installs a quantized copy
// (every pixel reduced to primary, secondary, or transparent) as the
// background. On failure the session is left exactly as it was,
// including any previously loaded background.
func (s *Session) LoadImage(path string) error {
	src, err := s.loader.Load(path)
	if err != nil {
		s.logger.Error("image load failed", "path", path, "error", err)
		return fmt.Errorf("load image: %w", err)
	}

	s.background = Quantize(src, s.primary, s.secondary)
	b := s.background.Bounds()
	s.logger.Info("image loaded", "path", path, "width", b.Dx(), "height", b.Dy())
	return nil
}
