// Package renderer abstracts the drawing backend behind small interfaces so
// the viewer logic stays independent of the graphics engine. The only
// backend shipped is Ebiten (see the ebiten subpackage).
package renderer

import (
	"image"
	"image/color"
)

// Renderer draws primitive shapes and text onto images.
type Renderer interface {
	// NewImage creates a new image with the given dimensions.
	NewImage(width, height int) Image

	// StrokeLine draws a line segment with the given stroke width.
	StrokeLine(dst Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color)

	// FillCircle draws a filled circle.
	FillCircle(dst Image, x, y, radius float32, clr color.Color)

	// StrokeCircle draws a circle outline.
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)

	// DrawText draws text using the backend's default font.
	DrawText(dst Image, text string, x, y int, clr color.Color)

	// MeasureText measures the width and height of text in the default font.
	MeasureText(text string) (width, height int)
}

// Image is a renderable surface.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)
	Fill(clr color.Color)
	Clear()
}

// Key identifies a keyboard key the viewer binds to.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyR
	KeyEscape
)

// InputManager reports keyboard state.
type InputManager interface {
	// IsKeyPressed reports whether the key is currently held down.
	IsKeyPressed(key Key) bool

	// IsKeyJustPressed reports whether the key went down this tick.
	IsKeyJustPressed(key Key) bool
}

// Game is the engine-agnostic game loop contract.
type Game interface {
	// Update advances the logic by one tick (typically 60 per second).
	Update() error

	// Draw renders one frame onto screen.
	Draw(screen Image)

	// Layout converts the outside (window) size to the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine owns the window and the game loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// RunGame runs the loop until the game ends. Blocking.
	RunGame(game Game) error
}
