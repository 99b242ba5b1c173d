package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"ShapeBoard/internal/state"
)

func RunApp(session *state.Session) {
	myApp := app.New()
	myWindow := myApp.NewWindow("ShapeBoard")
	myWindow.Resize(fyne.NewSize(800, 600))

	// Create the interactive drawing canvas
	board := NewCanvasWidget(session)

	status := widget.NewLabel("Ready")

	// Create the toolbar and pass it a reference to the board
	toolbar := NewToolbar(board, myWindow, status)

	// Set up the main layout
	content := container.NewBorder(toolbar, status, nil, nil, board)

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
