package gfx

import "testing"

// newTestCanvas builds a canvas over a fresh width x height buffer.
func newTestCanvas(t *testing.T, width, height int) Canvas {
	t.Helper()
	buf := make([]byte, width*((height+7)/8))
	f, err := NewFrameView(buf, width, width, height, 0, 0)
	if err != nil {
		t.Fatalf("NewFrameView(%dx%d) failed: %v", width, height, err)
	}
	return NewCanvas(f)
}

// newTestFont builds a 3x5 font where only 'A' has a real glyph.
func newTestFont() Font {
	data := make([]byte, glyphCount*3)
	i := int('A'-glyphFirst) * 3
	data[i] = 0x1F
	data[i+1] = 0x05
	data[i+2] = 0x1F
	return NewFont(data, 3, 5)
}

// checkPixels fails unless exactly the pixels in want are set.
func checkPixels(t *testing.T, c *Canvas, want map[[2]int]bool) {
	t.Helper()
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if got := c.Frame.GetPixel(x, y); got != want[[2]int{x, y}] {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, !got)
			}
		}
	}
}

func TestLineHorizontal(t *testing.T) {
	c := newTestCanvas(t, 8, 8)
	c.Line(0, 0, 5, 0, true)

	want := map[[2]int]bool{}
	for x := 0; x <= 5; x++ {
		want[[2]int{x, 0}] = true
	}
	checkPixels(t, &c, want)
}

func TestLineVerticalAndDot(t *testing.T) {
	c := newTestCanvas(t, 8, 8)
	c.Line(2, 1, 2, 6, true)
	c.Line(5, 5, 5, 5, true)

	want := map[[2]int]bool{{5, 5}: true}
	for y := 1; y <= 6; y++ {
		want[[2]int{2, y}] = true
	}
	checkPixels(t, &c, want)
}

func TestLineDiagonal(t *testing.T) {
	c := newTestCanvas(t, 8, 8)
	c.Line(0, 0, 3, 3, true)

	want := map[[2]int]bool{}
	for i := 0; i <= 3; i++ {
		want[[2]int{i, i}] = true
	}
	checkPixels(t, &c, want)
}

func TestLineReversedEndpoints(t *testing.T) {
	a := newTestCanvas(t, 8, 8)
	b := newTestCanvas(t, 8, 8)

	a.Line(1, 2, 6, 5, true)
	b.Line(6, 5, 1, 2, true)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if a.Frame.GetPixel(x, y) != b.Frame.GetPixel(x, y) {
				t.Errorf("pixel (%d, %d) differs between line directions", x, y)
			}
		}
	}
}

func TestLineClipsSilently(t *testing.T) {
	c := newTestCanvas(t, 8, 8)
	c.Line(-5, -5, 20, 20, true)

	for i := 0; i < 8; i++ {
		if !c.Frame.GetPixel(i, i) {
			t.Errorf("diagonal pixel (%d, %d) not set", i, i)
		}
	}
}

func TestRectBorder(t *testing.T) {
	c := newTestCanvas(t, 8, 8)
	c.Rect(1, 1, 4, 3, FillBorder)

	want := map[[2]int]bool{}
	for x := 1; x <= 4; x++ {
		want[[2]int{x, 1}] = true
		want[[2]int{x, 3}] = true
	}
	want[[2]int{1, 2}] = true
	want[[2]int{4, 2}] = true
	checkPixels(t, &c, want)
}

func TestRectFillNormalizesCorners(t *testing.T) {
	c := newTestCanvas(t, 8, 8)
	c.Rect(4, 4, 1, 1, Fill)

	want := map[[2]int]bool{}
	for y := 1; y <= 4; y++ {
		for x := 1; x <= 4; x++ {
			want[[2]int{x, y}] = true
		}
	}
	checkPixels(t, &c, want)
}

func TestRectFillClipped(t *testing.T) {
	c := newTestCanvas(t, 8, 8)
	c.Rect(6, 6, 12, 12, Fill)

	want := map[[2]int]bool{}
	for y := 6; y < 8; y++ {
		for x := 6; x < 8; x++ {
			want[[2]int{x, y}] = true
		}
	}
	checkPixels(t, &c, want)

	// Entirely outside: nothing to draw, nothing to panic over.
	c.Rect(10, 10, 20, 20, Fill)
	c.Rect(-5, -5, -1, -1, Fill)
	checkPixels(t, &c, want)
}

func TestRectClear(t *testing.T) {
	c := newTestCanvas(t, 8, 8)
	c.FillAll(true)
	c.Rect(2, 2, 5, 5, Clear)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inside := x >= 2 && x <= 5 && y >= 2 && y <= 5
			if got := c.Frame.GetPixel(x, y); got == inside {
				t.Errorf("pixel (%d, %d) = %v after Clear rect", x, y, got)
			}
		}
	}
}

func TestCircleRadiusZero(t *testing.T) {
	c := newTestCanvas(t, 9, 9)
	c.Circle(4, 4, 0, Fill)
	checkPixels(t, &c, map[[2]int]bool{{4, 4}: true})

	c.Circle(4, 4, -1, Fill)
	checkPixels(t, &c, map[[2]int]bool{{4, 4}: true})
}

func TestCircleBorder(t *testing.T) {
	c := newTestCanvas(t, 9, 9)
	c.Circle(4, 4, 2, FillBorder)

	want := map[[2]int]bool{}
	for _, p := range [][2]int{
		{4, 2}, {4, 6}, {2, 4}, {6, 4},
		{3, 3}, {5, 3}, {3, 5}, {5, 5},
	} {
		want[p] = true
	}
	checkPixels(t, &c, want)
}

func TestCircleFill(t *testing.T) {
	c := newTestCanvas(t, 9, 9)
	c.Circle(4, 4, 2, Fill)

	want := map[[2]int]bool{}
	for x := 3; x <= 5; x++ {
		want[[2]int{x, 4}] = true
	}
	want[[2]int{4, 3}] = true
	want[[2]int{4, 5}] = true
	checkPixels(t, &c, want)
}

func TestSplitHorizontallyWeights(t *testing.T) {
	c := newTestCanvas(t, 10, 8)
	children := c.SplitHorizontally([]int{1, 3})

	if len(children) != 2 {
		t.Fatalf("got %d children, want 2", len(children))
	}
	if children[0].Width() != 3 || children[1].Width() != 7 {
		t.Errorf("child widths = {%d, %d}, want {3, 7}",
			children[0].Width(), children[1].Width())
	}
	if children[0].Frame.OffsetX != 0 || children[1].Frame.OffsetX != 3 {
		t.Errorf("child offsets = {%d, %d}, want {0, 3}",
			children[0].Frame.OffsetX, children[1].Frame.OffsetX)
	}
	for _, child := range children {
		if child.Height() != 8 {
			t.Errorf("child height = %d, want 8", child.Height())
		}
	}
}

func TestSplitVerticallyRemainder(t *testing.T) {
	c := newTestCanvas(t, 8, 10)
	children := c.SplitVertically([]int{1, 1, 1})

	heights := []int{children[0].Height(), children[1].Height(), children[2].Height()}
	want := []int{4, 3, 3}
	for i := range want {
		if heights[i] != want[i] {
			t.Errorf("child heights = %v, want %v", heights, want)
			break
		}
	}

	y := 0
	for i, child := range children {
		if child.Frame.OffsetY != y {
			t.Errorf("child %d offset y = %d, want %d", i, child.Frame.OffsetY, y)
		}
		y += child.Height()
	}
	if y != 10 {
		t.Errorf("children cover %d rows, want 10", y)
	}
}

func TestSplitClampsWeights(t *testing.T) {
	c := newTestCanvas(t, 12, 8)
	children := c.SplitHorizontally([]int{0, -3, 1})

	// Weights below 1 count as 1: {1, 1, 1} over 12 -> {4, 4, 4}.
	for i, child := range children {
		if child.Width() != 4 {
			t.Errorf("child %d width = %d, want 4", i, child.Width())
		}
	}
}

func TestSubThreadsFont(t *testing.T) {
	c := newTestCanvas(t, 16, 16)
	font := newTestFont()
	c.SetFont(font)

	child, err := c.Sub(8, 8, 0, 0)
	if err != nil {
		t.Fatalf("Sub failed: %v", err)
	}
	if child.Font().GlyphWidth != font.GlyphWidth {
		t.Errorf("child font width = %d, want %d", child.Font().GlyphWidth, font.GlyphWidth)
	}
	if x, y := child.Cursor(); x != 0 || y != 0 {
		t.Errorf("child cursor = (%d, %d), want (0, 0)", x, y)
	}

	if _, err := c.Sub(20, 8, 0, 0); err == nil {
		t.Error("Sub beyond parent extent should fail")
	}
}

func TestTextRendersGlyph(t *testing.T) {
	c := newTestCanvas(t, 16, 16)
	c.SetFont(newTestFont())
	c.Text("A", true)

	// Column 0 is 0x1F: rows 0..4 lit. Column 1 is 0x05: rows 0 and 2 lit.
	for y := 0; y < 5; y++ {
		if !c.Frame.GetPixel(0, y) {
			t.Errorf("glyph pixel (0, %d) not set", y)
		}
	}
	if !c.Frame.GetPixel(1, 0) || c.Frame.GetPixel(1, 1) || !c.Frame.GetPixel(1, 2) {
		t.Error("glyph column 1 does not match 0x05 bit pattern")
	}

	if x, y := c.Cursor(); x != 4 || y != 0 {
		t.Errorf("cursor = (%d, %d) after one glyph, want (4, 0)", x, y)
	}
}

func TestTextInverted(t *testing.T) {
	c := newTestCanvas(t, 16, 16)
	c.SetFont(newTestFont())
	c.Text("\x81A", true)

	// Inverted: foreground pixels cleared, background pixels set.
	if c.Frame.GetPixel(0, 0) {
		t.Error("inverted glyph foreground pixel (0, 0) should be clear")
	}
	if !c.Frame.GetPixel(1, 1) {
		t.Error("inverted glyph background pixel (1, 1) should be set")
	}
	// The separator column after the glyph is drawn in the opposite color.
	if !c.Frame.GetPixel(3, 0) {
		t.Error("separator column should be set for inverted text")
	}
}

func TestTextStopsAtRightEdge(t *testing.T) {
	c := newTestCanvas(t, 16, 16)
	c.SetFont(newTestFont())
	c.Text("AAAAA", true)

	// Four 4-pixel cells fit in 16 columns; the fifth glyph is dropped.
	for _, x := range []int{0, 4, 8, 12} {
		if !c.Frame.GetPixel(x, 0) {
			t.Errorf("glyph at column %d not rendered", x)
		}
	}
	if x, y := c.Cursor(); x != 16 || y != 0 {
		t.Errorf("cursor = (%d, %d), want (16, 0) with wrapping disabled", x, y)
	}
}

func TestTextWrapsWithAutoNextLine(t *testing.T) {
	c := newTestCanvas(t, 16, 16)
	c.SetFont(newTestFont())
	c.AutoNextLine = true
	c.Text("AAAAA", true)

	// The fifth glyph lands on the next text line (glyph height 5 + 1 gap).
	if !c.Frame.GetPixel(0, 6) {
		t.Error("wrapped glyph not rendered at (0, 6)")
	}
	if x, y := c.Cursor(); x != 4 || y != 6 {
		t.Errorf("cursor = (%d, %d) after wrap, want (4, 6)", x, y)
	}
}

func TestTextStopsBelowBottom(t *testing.T) {
	c := newTestCanvas(t, 16, 8)
	c.SetFont(newTestFont())
	c.AutoNextLine = true
	c.Text("AAAAAAAAA", true)

	// Second text line starts at row 6; glyphs no longer fit below it.
	if x, y := c.Cursor(); y != 6 || x != 0 {
		t.Errorf("cursor = (%d, %d), want (0, 6) after vertical truncation", x, y)
	}
}

func TestTextNewline(t *testing.T) {
	c := newTestCanvas(t, 16, 16)
	c.SetFont(newTestFont())
	c.Text("A\nA", true)

	if !c.Frame.GetPixel(0, 6) {
		t.Error("glyph after newline not rendered at (0, 6)")
	}
	if x, y := c.Cursor(); x != 4 || y != 6 {
		t.Errorf("cursor = (%d, %d), want (4, 6)", x, y)
	}
}

func TestTextTab(t *testing.T) {
	c := newTestCanvas(t, 40, 8)
	c.SetFont(newTestFont())

	// Tab width is 4 glyph cells = 16 pixels.
	c.Text("\t", true)
	if x, _ := c.Cursor(); x != 16 {
		t.Errorf("cursor x = %d after tab, want 16", x)
	}
	c.Text("\t", true)
	if x, _ := c.Cursor(); x != 32 {
		t.Errorf("cursor x = %d after second tab, want 32", x)
	}
}

func TestTextCenterJump(t *testing.T) {
	c := newTestCanvas(t, 40, 8)
	c.SetFont(newTestFont())
	c.Text("\x82", true)

	if x, _ := c.Cursor(); x != 19 {
		t.Errorf("cursor x = %d after center jump, want 19", x)
	}
}

func TestTextClearsBehindTab(t *testing.T) {
	c := newTestCanvas(t, 40, 8)
	c.SetFont(newTestFont())
	c.FillAll(true)
	c.Text("\t", true)

	// The tabbed-over glyph row is cleared to the background.
	for x := 0; x < 16; x++ {
		if c.Frame.GetPixel(x, 2) {
			t.Errorf("pixel (%d, 2) not cleared by tab", x)
		}
	}
	// Rows below the glyph row are untouched.
	if !c.Frame.GetPixel(0, 7) {
		t.Error("pixel (0, 7) below the text line should be untouched")
	}
}

func TestTextPlaceholderBox(t *testing.T) {
	c := newTestCanvas(t, 16, 16)
	c.SetFont(newTestFont())

	// 0x01 has no glyph: a bordered box sized to the glyph cell.
	c.Text("\x01", true)

	for _, p := range [][2]int{{0, 0}, {2, 0}, {0, 4}, {2, 4}, {0, 2}, {2, 2}} {
		if !c.Frame.GetPixel(p[0], p[1]) {
			t.Errorf("placeholder border pixel (%d, %d) not set", p[0], p[1])
		}
	}
	if c.Frame.GetPixel(1, 2) {
		t.Error("placeholder box interior should be empty")
	}
}

func TestTextBlankFontRendersPlaceholders(t *testing.T) {
	c := newTestCanvas(t, 16, 16)
	// No font bound: the blank 3x5 font draws a box for every character.
	c.Text("Z", true)

	if !c.Frame.GetPixel(0, 0) || !c.Frame.GetPixel(2, 4) {
		t.Error("blank font should render placeholder boxes")
	}
}

func TestModeBits(t *testing.T) {
	tests := []struct {
		mode   Mode
		filled bool
		value  bool
	}{
		{Fill, true, true},
		{Clear, true, false},
		{FillBorder, false, true},
		{ClearBorder, false, false},
	}

	for _, tt := range tests {
		if tt.mode.filled() != tt.filled || tt.mode.value() != tt.value {
			t.Errorf("mode %02b: filled=%v value=%v, want filled=%v value=%v",
				tt.mode, tt.mode.filled(), tt.mode.value(), tt.filled, tt.value)
		}
	}
}
