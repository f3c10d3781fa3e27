// Package app wires the renderer and the controller to a board and joins them.
package app

import (
	"context"

	"rgbcal/services/hal"
	"rgbcal/services/knob"
	"rgbcal/services/rgb"
	"rgbcal/services/state"
	"rgbcal/services/ui"
	"rgbcal/types"
	"rgbcal/x/logx"
)

// Task names returned by Run.
const (
	TaskRenderer   = "rgb"
	TaskController = "ui"
)

type App struct {
	renderer   *rgb.Renderer
	controller *ui.Controller
}

// New hands the LEDs to the renderer and the knob and buttons to the
// controller. It fails only if the knob's ADC cannot be calibrated.
func New(b *hal.Board, shared *state.Shared, log *logx.Logger) (*App, error) {
	k, err := knob.New(b.Knob)
	if err != nil {
		return nil, err
	}
	var pins [types.Channels]rgb.Pin
	for i, p := range b.LEDs {
		pins[i] = p
	}
	return &App{
		renderer:   rgb.New(pins, shared, shared.GetFrameRate(), log),
		controller: ui.New(k, b.ButtonA, b.ButtonB, shared, log),
	}, nil
}

// Frames reports the renderer's completed frame count.
func (a *App) Frames() uint64 { return a.renderer.Frames() }

// Run starts both tasks and returns the name of the first one to return.
// Neither returns unless ctx is cancelled.
func (a *App) Run(ctx context.Context) string {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan string, 2)
	go func() {
		a.renderer.Run(ctx)
		done <- TaskRenderer
	}()
	go func() {
		a.controller.Run(ctx)
		done <- TaskController
	}()
	return <-done
}

// Run builds an App over b and runs it. Construction failures panic; they
// are bring-up errors.
func Run(ctx context.Context, b *hal.Board, shared *state.Shared, log *logx.Logger) string {
	a, err := New(b, shared, log)
	if err != nil {
		panic(err.Error())
	}
	return a.Run(ctx)
}
