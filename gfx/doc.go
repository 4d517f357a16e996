// Package gfx is a monochrome drawing engine for page-organized display
// buffers, such as the SSD1306 family of OLED controllers.
//
// These displays pack 8 vertically stacked pixels per byte. A horizontal
// band of 8 rows is a page; the byte at page*stride+column holds rows
// [page*8, page*8+7] of that column, bit 0 on top.
//
// Memory layout example for a display 4 columns wide:
//
//	row 0   bit 0 of bytes 0..3   (page 0)
//	row 1   bit 1 of bytes 0..3
//	...
//	row 7   bit 7 of bytes 0..3
//	row 8   bit 0 of bytes 4..7   (page 1)
//
// This package provides:
//
//   - FrameView: a bounded, offset window onto a shared page-organized
//     buffer, with pixel access, page-wise fill and bitmap blitting
//   - Canvas: a drawing surface over one FrameView with line, rectangle and
//     circle rasterization, weighted layout splitting and a text cursor
//   - BitMap: an immutable page-packed 1-bit image
//   - Font: a monospaced glyph table for ASCII [32, 127), plus the built-in
//     Font5x7
//
// Example usage:
//
//	// One root view over a 128x64 display buffer.
//	buf := make([]byte, 128*64/8)
//	frame, _ := gfx.NewFrameView(buf, 128, 128, 64, 0, 0)
//
//	c := gfx.NewCanvas(frame)
//	c.SetFont(gfx.Font5x7())
//
//	// Two panes, 1/4 and 3/4 of the width.
//	panes := c.SplitHorizontally([]int{1, 3})
//	panes[0].Circle(panes[0].CenterX(), panes[0].CenterY(), 10, gfx.FillBorder)
//	panes[1].Text("hello\tworld", true)
//
// All views derived from one buffer alias the same memory. The design
// assumes a single logical writer per frame; any multi-writer discipline is
// left to the caller.
package gfx
