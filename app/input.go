package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-frame snapshot of discrete user events a demo
// consumes: cursor position, drag delta while the left button is held,
// wheel notches, and edge-triggered key queries.
type Input struct {
	cursorX, cursorY int
	dragDX, dragDY   float64
	dragging         bool
	wheelY           float64
}

// poll refreshes the snapshot. The drag delta is tracked against the
// previous frame's cursor since ebiten exposes no delta of its own.
func (in *Input) poll(prevX, prevY int) {
	x, y := ebiten.CursorPosition()
	in.dragging = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) &&
		!inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if in.dragging {
		in.dragDX = float64(x - prevX)
		in.dragDY = float64(y - prevY)
	} else {
		in.dragDX, in.dragDY = 0, 0
	}
	in.cursorX, in.cursorY = x, y
	_, in.wheelY = ebiten.Wheel()
}

// Cursor returns the cursor position in logical pixels.
func (in *Input) Cursor() (x, y int) { return in.cursorX, in.cursorY }

// Drag returns the frame's drag delta; ok is false when the left
// button is up or was only just pressed.
func (in *Input) Drag() (dx, dy float64, ok bool) {
	return in.dragDX, in.dragDY, in.dragging && (in.dragDX != 0 || in.dragDY != 0)
}

// WheelY returns the vertical wheel notches moved this frame.
func (in *Input) WheelY() float64 { return in.wheelY }

// JustPressed reports a key edge this frame.
func (in *Input) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Held reports a key currently down; used for coefficient nudging,
// which repeats every frame while held.
func (in *Input) Held(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }

// Shift reports either shift key, the fine-step modifier.
func (in *Input) Shift() bool {
	return ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
}

// Clicked reports a left-button release this frame, the trigger for
// on-screen buttons.
func (in *Input) Clicked() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}
