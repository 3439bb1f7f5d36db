// Package viewer renders a wire panel interactively: both wires, every
// crossing, and the crossings that win each metric, with pan and zoom.
package viewer

import (
	"errors"
	"fmt"
	"image/color"

	"chosenoffset.com/crosswire/crossing"
	"chosenoffset.com/crosswire/renderer"
	"chosenoffset.com/crosswire/wire"
	"chosenoffset.com/crosswire/wireloader"
)

// Terminated is returned from Update when the user quits with Escape.
var Terminated = errors.New("viewer terminated")

const (
	panStep    = 8.0
	zoomFactor = 1.03
	minScale   = 0.05
	maxScale   = 64.0
)

var (
	backgroundColor = color.RGBA{16, 16, 24, 255}
	axisColor       = color.RGBA{60, 60, 70, 255}
	wireAColor      = color.RGBA{230, 180, 60, 255}
	wireBColor      = color.RGBA{80, 190, 230, 255}
	crossingColor   = color.RGBA{220, 220, 220, 255}
	closestColor    = color.RGBA{90, 220, 90, 255}
	stepsColor      = color.RGBA{230, 90, 150, 255}
)

// Viewer implements renderer.Game for a loaded panel. All geometry and both
// metrics are computed once in New; Update only handles the camera.
type Viewer struct {
	renderer renderer.Renderer
	input    renderer.InputManager

	cornersA  []wire.Point
	cornersB  []wire.Point
	crossings []wire.Point

	closest    wire.Point
	hasClosest bool
	stepPoint  wire.Point
	steps      int
	hasSteps   bool

	screenWidth  int
	screenHeight int
	offsetX      float64 // screen x of the grid origin
	offsetY      float64 // screen y of the grid origin
	scale        float64 // pixels per grid unit
}

// New builds a viewer for the panel with the view fitted to both wires.
func New(r renderer.Renderer, input renderer.InputManager, panel *wireloader.Panel, screenWidth, screenHeight int) *Viewer {
	v := &Viewer{
		renderer:     r,
		input:        input,
		cornersA:     panel.A.Corners(),
		cornersB:     panel.B.Corners(),
		crossings:    crossing.Intersections(panel.A, panel.B).Points(),
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}

	v.closest, v.hasClosest = crossing.Closest(panel.A, panel.B)
	v.steps, v.hasSteps = crossing.FewestSteps(panel.A, panel.B)
	if v.hasSteps {
		v.stepPoint = fewestStepsPoint(panel.A, panel.B, v.crossings)
	}

	v.ResetView()
	return v
}

// fewestStepsPoint returns the crossing that wins the fewest-steps metric,
// for highlighting. crossings must be non-empty.
func fewestStepsPoint(a, b wire.Wire, crossings []wire.Point) wire.Point {
	stepsA := a.StepIndex()
	stepsB := b.StepIndex()

	best := crossings[0]
	for _, p := range crossings[1:] {
		if stepsA[p]+stepsB[p] < stepsA[best]+stepsB[best] {
			best = p
		}
	}
	return best
}

// ResetView fits the camera to the bounding box of both wires, with a margin.
func (v *Viewer) ResetView() {
	minX, minY, maxX, maxY := 0, 0, 0, 0
	for _, p := range append(append([]wire.Point{}, v.cornersA...), v.cornersB...) {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	spanX := float64(maxX-minX) + 1
	spanY := float64(maxY-minY) + 1

	// Fit the tighter axis, leaving a 10% margin all around.
	scaleX := float64(v.screenWidth) * 0.8 / spanX
	scaleY := float64(v.screenHeight) * 0.8 / spanY
	v.scale = scaleX
	if scaleY < scaleX {
		v.scale = scaleY
	}
	if v.scale > maxScale {
		v.scale = maxScale
	}

	// Center the bounding box; Y grows upward in grid space, downward on screen.
	centerX := (float64(minX) + float64(maxX)) / 2
	centerY := (float64(minY) + float64(maxY)) / 2
	v.offsetX = float64(v.screenWidth)/2 - centerX*v.scale
	v.offsetY = float64(v.screenHeight)/2 + centerY*v.scale
}

// Update handles camera input for one tick.
func (v *Viewer) Update() error {
	if v.input.IsKeyJustPressed(renderer.KeyEscape) {
		return Terminated
	}

	if v.input.IsKeyPressed(renderer.KeyW) {
		v.offsetY += panStep
	}
	if v.input.IsKeyPressed(renderer.KeyS) {
		v.offsetY -= panStep
	}
	if v.input.IsKeyPressed(renderer.KeyA) {
		v.offsetX += panStep
	}
	if v.input.IsKeyPressed(renderer.KeyD) {
		v.offsetX -= panStep
	}

	if v.input.IsKeyPressed(renderer.KeyE) {
		v.zoomAround(float64(v.screenWidth)/2, float64(v.screenHeight)/2, zoomFactor)
	}
	if v.input.IsKeyPressed(renderer.KeyQ) {
		v.zoomAround(float64(v.screenWidth)/2, float64(v.screenHeight)/2, 1/zoomFactor)
	}

	if v.input.IsKeyJustPressed(renderer.KeyR) {
		v.ResetView()
	}

	return nil
}

// zoomAround rescales the view, keeping the given screen position fixed.
func (v *Viewer) zoomAround(sx, sy, factor float64) {
	next := v.scale * factor
	if next < minScale || next > maxScale {
		return
	}
	v.offsetX = sx + (v.offsetX-sx)*factor
	v.offsetY = sy + (v.offsetY-sy)*factor
	v.scale = next
}

// screenPos converts a grid point to screen coordinates.
func (v *Viewer) screenPos(p wire.Point) (float32, float32) {
	return float32(v.offsetX + float64(p.X)*v.scale), float32(v.offsetY - float64(p.Y)*v.scale)
}

// Draw renders one frame.
func (v *Viewer) Draw(screen renderer.Image) {
	screen.Fill(backgroundColor)

	v.drawAxes(screen)
	v.drawWire(screen, v.cornersA, wireAColor)
	v.drawWire(screen, v.cornersB, wireBColor)
	v.drawCrossings(screen)
	v.drawHUD(screen)
}

// drawAxes draws the grid axes through the origin.
func (v *Viewer) drawAxes(screen renderer.Image) {
	ox, oy := v.screenPos(wire.Origin)
	w, h := screen.Size()
	v.renderer.StrokeLine(screen, 0, oy, float32(w), oy, 1, axisColor)
	v.renderer.StrokeLine(screen, ox, 0, ox, float32(h), 1, axisColor)
}

// drawWire draws a wire as straight segments between its corners.
func (v *Viewer) drawWire(screen renderer.Image, corners []wire.Point, clr color.Color) {
	for i := 1; i < len(corners); i++ {
		x0, y0 := v.screenPos(corners[i-1])
		x1, y1 := v.screenPos(corners[i])
		v.renderer.StrokeLine(screen, x0, y0, x1, y1, 2, clr)
	}
}

// drawCrossings marks every crossing, with the metric winners highlighted.
func (v *Viewer) drawCrossings(screen renderer.Image) {
	for _, p := range v.crossings {
		x, y := v.screenPos(p)
		v.renderer.FillCircle(screen, x, y, 3, crossingColor)
	}

	if v.hasClosest {
		x, y := v.screenPos(v.closest)
		v.renderer.StrokeCircle(screen, x, y, 7, 2, closestColor)
	}
	if v.hasSteps {
		x, y := v.screenPos(v.stepPoint)
		v.renderer.StrokeCircle(screen, x, y, 11, 2, stepsColor)
	}
}

// drawHUD reports both metrics and the key bindings.
func (v *Viewer) drawHUD(screen renderer.Image) {
	var lines []string
	if v.hasClosest {
		lines = append(lines, fmt.Sprintf("Closest crossing: (%d, %d), distance %d",
			v.closest.X, v.closest.Y, v.closest.ManhattanDistance()))
	} else {
		lines = append(lines, "Closest crossing: none")
	}
	if v.hasSteps {
		lines = append(lines, fmt.Sprintf("Fewest combined steps: %d at (%d, %d)",
			v.steps, v.stepPoint.X, v.stepPoint.Y))
	} else {
		lines = append(lines, "Fewest combined steps: none")
	}
	lines = append(lines, fmt.Sprintf("Crossings: %d", len(v.crossings)))
	lines = append(lines, "WASD pan / Q,E zoom / R reset / Esc quit")

	y := 8
	for _, line := range lines {
		v.renderer.DrawText(screen, line, 8, y, crossingColor)
		_, lineHeight := v.renderer.MeasureText(line)
		y += lineHeight
	}
}

// Layout reports the logical screen size, tracking the window size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.screenWidth = outsideWidth
	v.screenHeight = outsideHeight
	return outsideWidth, outsideHeight
}
