package scene

import (
	"math"

	"github.com/vovakirdan/falling-up/internal/core"
)

// Camera is an orthographic view over the y-up world.
// (X, Y) is the center of the viewport.
type Camera struct {
	X, Y      float64
	ViewportW float64
	ViewportH float64

	view core.Box
}

// NewCamera creates a camera whose viewport covers [0,w]x[0,h].
func NewCamera(w, h float64) *Camera {
	c := &Camera{X: w / 2, Y: h / 2, ViewportW: w, ViewportH: h}
	c.Update()
	return c
}

// Scroll moves the camera vertically by dy.
func (c *Camera) Scroll(dy float64) {
	c.Y += dy
}

// Top returns the world y of the upper viewport edge.
func (c *Camera) Top() float64 {
	return c.Y + c.ViewportH/2
}

// Bottom returns the world y of the lower viewport edge.
func (c *Camera) Bottom() float64 {
	return c.Y - c.ViewportH/2
}

// Update recomputes the visible region from the current position.
// Rendering uses the region captured by the last Update.
func (c *Camera) Update() {
	c.view = core.NewBox(c.X-c.ViewportW/2, c.Bottom(), c.ViewportW, c.ViewportH)
}

// View returns the visible world region as of the last Update.
func (c *Camera) View() core.Box {
	return c.view
}

// Project maps a world point to a cell on a cols x rows screen.
// Screen rows grow downward, so the world's y axis is flipped.
func (c *Camera) Project(x, y float64, cols, rows int) (int, int) {
	sx := (x - c.view.X) / c.view.W * float64(cols)
	sy := (c.view.Top() - y) / c.view.H * float64(rows)
	return int(math.Floor(sx)), int(math.Floor(sy))
}

// ProjectBox maps a world box to the screen cells it covers.
// Any box with positive area covers at least one cell.
func (c *Camera) ProjectBox(b core.Box, cols, rows int) core.Rect {
	x0, y0 := c.Project(b.X, b.Top(), cols, rows)
	x1, y1 := c.Project(b.Right(), b.Y, cols, rows)
	w := core.Max(x1-x0, 1)
	h := core.Max(y1-y0, 1)
	return core.NewRect(x0, y0, w, h)
}
