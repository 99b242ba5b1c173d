package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"ShapeBoard/internal/state"
)

// CanvasWidget is the drawing surface. It translates pointer events
// into session operations and renders the session's background image
// and shape list.
type CanvasWidget struct {
	widget.BaseWidget
	session *state.Session
	drawing bool
}

var _ fyne.Widget = (*CanvasWidget)(nil)
var _ fyne.Draggable = (*CanvasWidget)(nil)
var _ desktop.Mouseable = (*CanvasWidget)(nil)

func NewCanvasWidget(session *state.Session) *CanvasWidget {
	w := &CanvasWidget{session: session}
	w.ExtendBaseWidget(w)
	return w
}

// Session exposes the underlying drawing session.
func (w *CanvasWidget) Session() *state.Session {
	return w.session
}

// Clear drops every shape from the canvas.
func (w *CanvasWidget) Clear() {
	w.session.Clear()
	w.Refresh()
}

func (w *CanvasWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.drawing = true
		w.session.BeginShape(int(e.Position.X), int(e.Position.Y))
		w.Refresh()
	}
}

func (w *CanvasWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary && w.drawing {
		w.drawing = false
		w.session.EndShape()
		w.Refresh()
	}
}

func (w *CanvasWidget) Dragged(e *fyne.DragEvent) {
	if !w.drawing {
		return
	}
	w.session.DragTo(int(e.Position.X), int(e.Position.Y))
	w.Refresh()
}

func (w *CanvasWidget) DragEnd() {
	if w.drawing {
		w.drawing = false
		w.session.EndShape()
		w.Refresh()
	}
}

func (w *CanvasWidget) MouseIn(*desktop.MouseEvent)    {}
func (w *CanvasWidget) MouseOut()                      {}
func (w *CanvasWidget) MouseMoved(*desktop.MouseEvent) {}

func (w *CanvasWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &canvasWidgetRenderer{board: w}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type canvasWidgetRenderer struct {
	board      *CanvasWidget
	background *canvas.Rectangle
}

// Objects rebuilds the paint list every refresh: white backdrop, then
// the quantized image blitted at the origin, then shapes in insertion
// order.
func (r *canvasWidgetRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.background}

	if bg := r.board.session.Background(); bg != nil {
		img := canvas.NewImageFromImage(bg)
		bounds := bg.Bounds()
		img.Resize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))
		img.Move(fyne.NewPos(0, 0))
		objects = append(objects, img)
	}

	for _, s := range r.board.session.Shapes() {
		objects = append(objects, shapeObject(s))
	}
	return objects
}

// shapeObject builds the stroke-only canvas object for one shape.
func shapeObject(s *state.Shape) fyne.CanvasObject {
	switch s.Kind {
	case state.KindCircle:
		c := canvas.NewCircle(color.Transparent)
		c.StrokeColor = s.Color
		c.StrokeWidth = s.StrokeWidth
		c.Position1 = fyne.NewPos(float32(s.AnchorX-s.Radius), float32(s.AnchorY-s.Radius))
		c.Position2 = fyne.NewPos(float32(s.AnchorX+s.Radius), float32(s.AnchorY+s.Radius))
		return c
	case state.KindRectangle:
		rect := canvas.NewRectangle(color.Transparent)
		rect.StrokeColor = s.Color
		rect.StrokeWidth = s.StrokeWidth
		// The model keeps signed extents; canvas.Rectangle needs a
		// top-left corner and a positive size, so normalize here and
		// only here.
		x, y := s.AnchorX, s.AnchorY
		w, h := s.Width, s.Height
		if w < 0 {
			x, w = x+w, -w
		}
		if h < 0 {
			y, h = y+h, -h
		}
		rect.Move(fyne.NewPos(float32(x), float32(y)))
		rect.Resize(fyne.NewSize(float32(w), float32(h)))
		return rect
	case state.KindLine:
		line := canvas.NewLine(s.Color)
		line.StrokeWidth = s.StrokeWidth
		line.Position1 = fyne.NewPos(float32(s.AnchorX), float32(s.AnchorY))
		line.Position2 = fyne.NewPos(float32(s.EndX), float32(s.EndY))
		return line
	}
	return canvas.NewRectangle(color.Transparent)
}

func (r *canvasWidgetRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *canvasWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *canvasWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *canvasWidgetRenderer) Destroy() {}
