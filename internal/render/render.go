// Package render is the host-facing collaborator that turns a
// chip8.Machine's packed frame buffer into pixels on screen, and
// translates pixelgl key events back into CHIP-8 key nibbles. It
// holds no VM semantics of its own: it only reads the Machine's
// exported, read-only accessors and calls HandleKeyDown/HandleKeyUp.
package render

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/nullrune/chip8vm/internal/chip8"
)

const (
	windowWidth  = 1024
	windowHeight = 512
)

// Window wraps a pixelgl window sized for a 64x32 CHIP-8 display plus
// the key map translating pixelgl buttons to CHIP-8 key nibbles.
type Window struct {
	*pixelgl.Window
	keyMap map[uint8]pixelgl.Button
}

// NewWindow opens a pixelgl window and returns it with the standard
// CHIP-8 keypad layout mapped onto a QWERTY keyboard.
func NewWindow(title string) (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, windowWidth, windowHeight),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("render: creating window: %w", err)
	}
	return &Window{
		Window: w,
		keyMap: map[uint8]pixelgl.Button{
			0x1: pixelgl.Key1, 0x2: pixelgl.Key2, 0x3: pixelgl.Key3, 0xC: pixelgl.Key4,
			0x4: pixelgl.KeyQ, 0x5: pixelgl.KeyW, 0x6: pixelgl.KeyE, 0xD: pixelgl.KeyR,
			0x7: pixelgl.KeyA, 0x8: pixelgl.KeyS, 0x9: pixelgl.KeyD, 0xE: pixelgl.KeyF,
			0xA: pixelgl.KeyZ, 0x0: pixelgl.KeyX, 0xB: pixelgl.KeyC, 0xF: pixelgl.KeyV,
		},
	}, nil
}

// DrawFrame blits m's frame buffer if it is dirty, then clears the
// dirty flag. It is a no-op when the frame hasn't changed since the
// last call.
func (w *Window) DrawFrame(m *chip8.Machine) {
	if !m.IsDirty() {
		return
	}

	w.Clear(colornames.Black)
	draw := imdraw.New(nil)
	draw.Color = pixel.RGB(1, 1, 1)

	cellW := windowWidth / float64(chip8.ScreenWidth)
	cellH := windowHeight / float64(chip8.ScreenHeight)

	for row := 0; row < chip8.ScreenHeight; row++ {
		bits := m.FrameRow(row)
		for col := 0; col < chip8.ScreenWidth; col++ {
			bit := uint(chip8.ScreenWidth - 1 - col)
			if bits&(1<<bit) == 0 {
				continue
			}
			// flip vertically: row 0 is the top of the CHIP-8 display
			// but pixelgl's origin is bottom-left.
			y := float64(chip8.ScreenHeight-1-row) * cellH
			x := float64(col) * cellW
			draw.Push(pixel.V(x, y))
			draw.Push(pixel.V(x+cellW, y+cellH))
			draw.Rectangle(0)
		}
	}

	draw.Draw(w)
	w.Update()
	m.ClearDirty()
}

// PollKeys reads pixelgl's edge-triggered key state and forwards
// down/up transitions into m. Must be called from the same goroutine
// that drives m.Cycle, per chip8's single-threaded contract.
func (w *Window) PollKeys(m *chip8.Machine) {
	for key, button := range w.keyMap {
		switch {
		case w.JustPressed(button):
			m.HandleKeyDown(key)
		case w.JustReleased(button):
			m.HandleKeyUp(key)
		}
	}
}
