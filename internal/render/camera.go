package render

// Camera maps grid cells onto the terminal. Every cell is two columns wide
// so mazes look square. When the maze fits it is centred; otherwise the
// camera follows a focus cell and stops at the maze edges.
type Camera struct {
	OffsetX, OffsetY int // grid cell shown at the viewport's top-left
	PadX, PadY       int // screen margin when the maze is smaller than the view
	ViewWidth        int // terminal columns
	ViewHeight       int // terminal rows
}

// NewCamera creates a camera for a viewW×viewH terminal area.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Frame positions the camera over a rows×cols maze so that (fx, fy) is
// visible.
func (c *Camera) Frame(rows, cols, fx, fy int) {
	c.OffsetX, c.PadX = frameAxis(cols, c.ViewWidth/2, fx)
	c.OffsetY, c.PadY = frameAxis(rows, c.ViewHeight, fy)
	c.PadX *= 2
}

// frameAxis returns the first visible cell and the leading margin along one
// axis of size cells shown through a window of view cells.
func frameAxis(size, view, focus int) (offset, pad int) {
	if size <= view {
		return 0, (view - size) / 2
	}
	offset = focus - view/2
	offset = max(offset, 0)
	offset = min(offset, size-view)
	return offset, 0
}

// WorldToScreen converts grid (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx-c.OffsetX)*2 + c.PadX
	sy = wy - c.OffsetY + c.PadY
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}
