package main

import (
	"os"

	"github.com/hashicorp/go-hclog"

	"ShapeBoard/internal/state"
	"ShapeBoard/internal/ui"
)

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "shapeboard",
		Level:  hclog.Info,
		Output: os.Stderr,
	})

	session := state.NewSession(logger)
	ui.RunApp(session)
}
