package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"ShapeBoard/internal/state"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp"}

// --- Custom Widget for Color Swatches ---
// A swatch shows one of the session's reference colors and opens a
// picker dialog when tapped.
type colorSwatch struct {
	widget.BaseWidget
	color    color.Color
	rect     *canvas.Rectangle
	OnTapped func()
}

func newColorSwatch(c color.Color, tapped func()) *colorSwatch {
	s := &colorSwatch{color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) SetColor(c color.Color) {
	s.color = c
	if s.rect != nil {
		s.rect.FillColor = c
	}
	s.Refresh()
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	s.rect = canvas.NewRectangle(s.color)
	s.rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(s.rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped()
	}
}

// --- The Main Toolbar ---
func NewToolbar(board *CanvasWidget, win fyne.Window, status *widget.Label) fyne.CanvasObject {
	session := board.Session()

	// --- Shape Selector ---
	kinds := map[string]state.ShapeKind{
		"Circle":    state.KindCircle,
		"Rectangle": state.KindRectangle,
		"Line":      state.KindLine,
	}
	shapeSelect := widget.NewSelect([]string{"Circle", "Rectangle", "Line"}, func(name string) {
		session.SetSelectedKind(kinds[name])
		status.SetText("Tool: " + name)
	})
	shapeSelect.SetSelected("Circle")

	// --- Reference Colors ---
	var primarySwatch, secondarySwatch *colorSwatch
	primarySwatch = newColorSwatch(session.PrimaryColor(), func() {
		picker := dialog.NewColorPicker("Primary Color", "Used for new shapes and image filtering", func(c color.Color) {
			session.SetPrimaryColor(c)
			primarySwatch.SetColor(c)
		}, win)
		picker.Advanced = true
		picker.Show()
	})
	secondarySwatch = newColorSwatch(session.SecondaryColor(), func() {
		picker := dialog.NewColorPicker("Secondary Color", "Second reference color for image filtering", func(c color.Color) {
			session.SetSecondaryColor(c)
			secondarySwatch.SetColor(c)
		}, win)
		picker.Advanced = true
		picker.Show()
	})

	// --- Load Image ---
	loadButton := widget.NewButton("Load Image", func() {
		fileOpen := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			path := reader.URI().Path()
			reader.Close()
			if err := session.LoadImage(path); err != nil {
				status.SetText(fmt.Sprintf("Load failed: %v", err))
				return
			}
			bounds := session.Background().Bounds()
			status.SetText(fmt.Sprintf("Loaded image %dx%d", bounds.Dx(), bounds.Dy()))
			board.Refresh()
		}, win)
		fileOpen.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
		fileOpen.Show()
	})

	// --- Clear ---
	clearButton := widget.NewButton("Clear", func() {
		board.Clear()
		status.SetText("Canvas cleared")
	})

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(1.0, 20.0)
	strokeSlider.SetValue(float64(session.StrokeWidth()))
	strokeSlider.OnChanged = func(val float64) {
		session.SetStrokeWidth(float32(val))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Shape:"),
		shapeSelect,
		widget.NewSeparator(),
		widget.NewLabel("Colors:"),
		primarySwatch,
		secondarySwatch,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewSeparator(),
		loadButton,
		clearButton,
		layout.NewSpacer(),
	)
}
