package gfx

// Mode selects how Rect and Circle treat a shape. Bit 0 selects filled
// versus border-only, bit 1 selects the pixel value written.
type Mode uint8

const (
	// ClearBorder clears the shape's outline.
	ClearBorder Mode = 0b00
	// Clear clears the shape's interior and outline.
	Clear Mode = 0b01
	// FillBorder sets the shape's outline.
	FillBorder Mode = 0b10
	// Fill sets the shape's interior and outline.
	Fill Mode = 0b11
)

func (m Mode) filled() bool { return m&0b01 != 0 }
func (m Mode) value() bool  { return m&0b10 != 0 }

// Canvas is a stateful drawing surface over one FrameView: shape
// rasterization, weighted layout splitting and a text cursor with an active
// font. The cursor belongs to this Canvas alone; child canvases start with
// an independent cursor at (0, 0).
type Canvas struct {
	// Frame is the target window for every drawing call.
	Frame FrameView

	// AutoNextLine makes Text wrap to the next text line instead of
	// stopping when the cursor overflows the glyph-safe width.
	AutoNextLine bool

	font    Font
	cursorX int
	cursorY int
}

// NewCanvas builds a canvas over frame with the blank font bound. Bind a
// real font with SetFont before drawing text.
func NewCanvas(frame FrameView) Canvas {
	return Canvas{Frame: frame, font: BlankFont()}
}

// NewCanvasFont builds a canvas over frame with font bound.
func NewCanvasFont(frame FrameView, font Font) Canvas {
	return Canvas{Frame: frame, font: font}
}

// Sub derives a child canvas with the same contract as FrameView.Sub. The
// child inherits the current font and starts with its own cursor at (0, 0).
func (c *Canvas) Sub(width, height, offsetX, offsetY int) (Canvas, error) {
	frame, err := c.Frame.Sub(width, height, offsetX, offsetY)
	if err != nil {
		return Canvas{}, err
	}
	return NewCanvasFont(frame, c.font), nil
}

// SubUnchecked derives a child canvas without bounds checks, with the same
// precondition as FrameView.SubUnchecked.
func (c *Canvas) SubUnchecked(width, height, offsetX, offsetY int) Canvas {
	return NewCanvasFont(c.Frame.SubUnchecked(width, height, offsetX, offsetY), c.font)
}

// SetFont binds font as the active text font.
func (c *Canvas) SetFont(font Font) { c.font = font }

// Font returns the active text font.
func (c *Canvas) Font() Font { return c.font }

// Width returns the frame width in pixels.
func (c *Canvas) Width() int { return c.Frame.Width }

// Height returns the frame height in pixels.
func (c *Canvas) Height() int { return c.Frame.Height }

// MaxX returns the largest valid x coordinate.
func (c *Canvas) MaxX() int { return c.Frame.Width - 1 }

// MaxY returns the largest valid y coordinate.
func (c *Canvas) MaxY() int { return c.Frame.Height - 1 }

// CenterX returns the horizontal center of the frame.
func (c *Canvas) CenterX() int { return c.MaxX() / 2 }

// CenterY returns the vertical center of the frame.
func (c *Canvas) CenterY() int { return c.MaxY() / 2 }

// maxGlyphX is the largest cursor x at which a full glyph still fits.
func (c *Canvas) maxGlyphX() int { return c.Frame.Width - c.font.GlyphWidth }

// maxGlyphY is the largest cursor y at which a full glyph still fits.
func (c *Canvas) maxGlyphY() int { return c.Frame.Height - c.font.GlyphHeight }

// tabWidth is four glyph cells of the active font.
func (c *Canvas) tabWidth() int { return c.font.CellWidth() * 4 }

// SplitHorizontally partitions the canvas into len(weights) adjacent child
// canvases laid out left to right, each width proportional to its weight.
// Weights below 1 count as 1. Sizes are floor(total*weight/sum); the
// remainder is handed out one pixel at a time round-robin from index 0, so
// children tile the full width with no gaps.
func (c *Canvas) SplitHorizontally(weights []int) []Canvas {
	sizes := splitSizes(c.Width(), weights)
	children := make([]Canvas, len(sizes))
	x := 0
	for i, size := range sizes {
		children[i] = c.SubUnchecked(size, c.Height(), x, 0)
		x += size
	}
	return children
}

// SplitVertically partitions the canvas into len(weights) adjacent child
// canvases laid out top to bottom, using the same size rule as
// SplitHorizontally.
func (c *Canvas) SplitVertically(weights []int) []Canvas {
	sizes := splitSizes(c.Height(), weights)
	children := make([]Canvas, len(sizes))
	y := 0
	for i, size := range sizes {
		children[i] = c.SubUnchecked(c.Width(), size, 0, y)
		y += size
	}
	return children
}

// splitSizes distributes total over len(weights) parts.
func splitSizes(total int, weights []int) []int {
	if len(weights) == 0 {
		return nil
	}

	totalWeight := 0
	for _, w := range weights {
		if w < 1 {
			w = 1
		}
		totalWeight += w
	}

	sizes := make([]int, len(weights))
	remaining := total
	for i, w := range weights {
		if w < 1 {
			w = 1
		}
		sizes[i] = total * w / totalWeight
		remaining -= sizes[i]
	}

	for i := 0; remaining > 0; i = (i + 1) % len(sizes) {
		sizes[i]++
		remaining--
	}

	return sizes
}

// FillAll sets every pixel of the frame to value.
func (c *Canvas) FillAll(value bool) {
	c.Frame.Fill(value)
}

// Dot draws a single pixel.
func (c *Canvas) Dot(x, y int, on bool) {
	c.Frame.SetPixel(x, y, on)
}

// Bitmap blits bm at (x, y).
func (c *Canvas) Bitmap(x, y int, bm BitMap, on bool) {
	c.Frame.DrawBitmap(x, y, bm, on)
}

// Line draws a line from (x0, y0) to (x1, y1). Vertical, horizontal and
// single-point lines take direct loops; the general case is integer
// Bresenham.
func (c *Canvas) Line(x0, y0, x1, y1 int, on bool) {
	if x0 == x1 {
		if y0 == y1 {
			c.Dot(x0, y0, on)
		} else {
			c.lineVertical(x0, y0, y1, on)
		}
		return
	}
	if y0 == y1 {
		c.lineHorizontal(x0, y0, x1, on)
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		c.Dot(x0, y0, on)
		if x0 == x1 && y0 == y1 {
			return
		}

		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				return
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				return
			}
			err += dx
			y0 += sy
		}
	}
}

// Rect draws the rectangle spanning corners (x0, y0) and (x1, y1),
// inclusive. Inverted corners are normalized. Fill modes clamp the box to
// the frame and fill it page-wise through a sub-view; border modes draw the
// four sides without touching any corner twice, clipping per pixel.
func (c *Canvas) Rect(x0, y0, x1, y1 int, mode Mode) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}

	value := mode.value()

	if mode.filled() {
		x0 = max(x0, 0)
		y0 = max(y0, 0)
		x1 = min(x1, c.MaxX())
		y1 = min(y1, c.MaxY())
		if x0 > x1 || y0 > y1 {
			return
		}
		c.Frame.SubUnchecked(x1-x0+1, y1-y0+1, x0, y0).Fill(value)
		return
	}

	c.lineHorizontal(x0, y0, x1, value)
	c.lineHorizontal(x0, y1, x1, value)
	for y := y0 + 1; y < y1; y++ {
		c.Frame.SetPixel(x0, y, value)
		c.Frame.SetPixel(x1, y, value)
	}
}

// Circle draws a circle of radius r around (centerX, centerY) using the
// midpoint algorithm. Fill modes draw four symmetric horizontal spans per
// step; border modes plot eight symmetric points, skipping the duplicates
// on the x==y diagonal. A radius of 0 is the center pixel alone.
func (c *Canvas) Circle(centerX, centerY, r int, mode Mode) {
	value := mode.value()

	if r < 0 {
		return
	}
	if r == 0 {
		c.Dot(centerX, centerY, value)
		return
	}

	x := r
	y := 0
	err := 0

	for x >= y {
		lastY := y
		y++
		err += 2*y + 1

		if 2*(err-x)+1 > 0 {
			x--
			err -= 2*x + 1
		}

		if mode.filled() {
			c.lineHorizontal(centerX-x, centerY+lastY, centerX+x, value)
			c.lineHorizontal(centerX-x, centerY-lastY, centerX+x, value)
			c.lineHorizontal(centerX-lastY, centerY+x, centerX+lastY, value)
			c.lineHorizontal(centerX-lastY, centerY-x, centerX+lastY, value)
		} else {
			c.circlePoints(centerX, centerY, x, y, value)
			if x != y {
				c.circlePoints(centerX, centerY, y, x, value)
			}
		}
	}
}

// SetCursor moves the text cursor to (x, y) in view coordinates.
func (c *Canvas) SetCursor(x, y int) {
	c.cursorX = x
	c.cursorY = y
}

// Cursor returns the current text cursor position.
func (c *Canvas) Cursor() (x, y int) {
	return c.cursorX, c.cursorY
}

// Text renders text at the cursor using the active font, advancing the
// cursor as it goes. on selects the foreground value; each glyph cell also
// paints its background in the opposite value, and the one-column gap after
// a glyph is drawn inverted so adjacent glyphs stay separated on any
// background.
//
// Inline control bytes:
//
//	0x80  switch to normal rendering (on=true)
//	0x81  switch to inverted rendering (on=false)
//	0x82  clear from the cursor to the horizontal center, jump there
//	'\n'  clear to end of line, move to the next text line
//	'\t'  clear to the next tab stop (4 glyph cells), jump there
//
// Unmapped characters render as a bordered placeholder box sized to the
// glyph cell. Rendering truncates silently when the cursor overflows the
// glyph-safe height, or the width with AutoNextLine unset; overflow is not
// an error.
func (c *Canvas) Text(text string, on bool) {
	for i := 0; i < len(text); i++ {
		switch ch := text[i]; ch {
		case 0x80:
			on = true

		case 0x81:
			on = false

		case 0x82:
			newX := c.CenterX()
			c.clearLineSegment(newX, on)
			c.cursorX = newX

		case '\n':
			c.clearLineSegment(c.MaxX(), on)
			c.nextLine()

		case '\t':
			tab := c.tabWidth()
			newX := (c.cursorX/tab + 1) * tab
			c.clearLineSegment(newX, on)
			c.cursorX = newX

		default:
			if c.cursorX > c.maxGlyphX() {
				c.clearLineSegment(c.MaxX(), on)
				if !c.AutoNextLine {
					return
				}
				c.nextLine()
			}
			if c.cursorY > c.maxGlyphY() {
				return
			}

			glyph, _ := c.font.Glyph(ch)
			c.drawGlyph(c.cursorX, c.cursorY, glyph, on)

			c.cursorX += c.font.GlyphWidth
			if c.cursorX < c.Width() {
				c.lineVertical(c.cursorX, c.cursorY, c.cursorY+c.font.GlyphHeight, !on)
			}
			c.cursorX++
		}
	}
}

// clearLineSegment paints the glyph row from the cursor to x in the
// background value. Routed through Rect so it clips like everything else.
func (c *Canvas) clearLineSegment(x int, on bool) {
	mode := Fill
	if on {
		mode = Clear
	}
	c.Rect(c.cursorX, c.cursorY, x, c.cursorY+c.font.GlyphHeight, mode)
}

// nextLine moves the cursor to the start of the next text line.
func (c *Canvas) nextLine() {
	c.cursorX = 0
	c.cursorY += c.font.CellHeight()
}

// drawGlyph renders one glyph cell at (x, y): foreground pixels in on,
// background pixels in !on. A nil glyph renders the placeholder box.
func (c *Canvas) drawGlyph(x, y int, glyph []byte, on bool) {
	if glyph == nil {
		mode := ClearBorder
		if on {
			mode = FillBorder
		}
		c.Rect(x, y, x+c.font.GlyphWidth-1, y+c.font.GlyphHeight-1, mode)
		return
	}

	for col, bits := range glyph {
		px := x + col
		for bit := 0; bit < c.font.GlyphHeight; bit++ {
			lit := bits&(1<<bit) != 0
			c.Frame.SetPixel(px, y+bit, lit == on)
		}
	}
}

// lineHorizontal draws the inclusive span [x0, x1] at row y.
func (c *Canvas) lineHorizontal(x0, y, x1 int, on bool) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		c.Frame.SetPixel(x, y, on)
	}
}

// lineVertical draws the inclusive span [y0, y1] at column x.
func (c *Canvas) lineVertical(x, y0, y1 int, on bool) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		c.Frame.SetPixel(x, y, on)
	}
}

// circlePoints plots the eight symmetric points (±dx, ±dy) around the
// center.
func (c *Canvas) circlePoints(cx, cy, dx, dy int, value bool) {
	c.Frame.SetPixel(cx+dx, cy+dy, value)
	c.Frame.SetPixel(cx+dy, cy+dx, value)
	c.Frame.SetPixel(cx-dy, cy+dx, value)
	c.Frame.SetPixel(cx-dx, cy+dy, value)
	c.Frame.SetPixel(cx-dx, cy-dy, value)
	c.Frame.SetPixel(cx-dy, cy-dx, value)
	c.Frame.SetPixel(cx+dy, cy-dx, value)
	c.Frame.SetPixel(cx+dx, cy-dy, value)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
