package gfx

// FrameView is a rectangular window onto a page-organized display buffer.
//
// The buffer packs 8 vertically stacked pixels per byte: the byte at
// page*stride+column holds rows [page*8, page*8+7] of that column, bit 0 on
// top. Stride is the byte distance between page rows, which equals the full
// display width in columns.
//
// A FrameView borrows the buffer and never owns it. Whoever allocates the
// buffer must keep it alive for as long as any derived view is in use.
// Views are cheap values holding only geometry, so deriving nested
// sub-views per frame allocates nothing. All views derived from one buffer
// alias the same memory; the caller is responsible for keeping a single
// logical writer per frame.
type FrameView struct {
	buf    []byte
	stride int

	// Window geometry in absolute buffer coordinates. The geometry is fixed
	// at construction; only pixel contents mutate through a view.
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// NewFrameView builds a view over buf with stride bytes per page row.
// Width, height and the offsets describe one rectangular window; the caller
// asserts that the window lies within the buffer, which must hold at least
// stride*ceil((offsetY+height)/8) bytes.
//
// Returns ErrBufferNotInit when buf is nil and ErrSizeTooSmall when the
// window is below 1x1 pixels.
func NewFrameView(buf []byte, stride, width, height, offsetX, offsetY int) (FrameView, error) {
	if buf == nil {
		return FrameView{}, ErrBufferNotInit
	}
	if width < 1 || height < 1 {
		return FrameView{}, ErrSizeTooSmall
	}
	return FrameView{
		buf:     buf,
		stride:  stride,
		OffsetX: offsetX,
		OffsetY: offsetY,
		Width:   width,
		Height:  height,
	}, nil
}

// Sub derives a child view whose offsets are relative to f, never to the
// buffer origin: offsets compose additively along the whole chain.
//
// Returns ErrOffsetOutOfBounds when the offset lies at or past f's extent
// and ErrSizeTooLarge when the requested size does not fit in the remaining
// extent.
func (f FrameView) Sub(width, height, offsetX, offsetY int) (FrameView, error) {
	if offsetX >= f.Width || offsetY >= f.Height {
		return FrameView{}, ErrOffsetOutOfBounds
	}
	if width > f.Width-offsetX || height > f.Height-offsetY {
		return FrameView{}, ErrSizeTooLarge
	}
	return NewFrameView(f.buf, f.stride, width, height, f.OffsetX+offsetX, f.OffsetY+offsetY)
}

// SubUnchecked derives a child view without bounds checks, for hot paths
// where the caller has already proven offset+size <= parent size. Violating
// that precondition yields a view whose writes land outside the window.
func (f FrameView) SubUnchecked(width, height, offsetX, offsetY int) FrameView {
	return FrameView{
		buf:     f.buf,
		stride:  f.stride,
		OffsetX: f.OffsetX + offsetX,
		OffsetY: f.OffsetY + offsetY,
		Width:   width,
		Height:  height,
	}
}

// SetPixel sets the pixel at (x, y) in view coordinates. Coordinates
// outside [0,Width)x[0,Height) are ignored.
func (f FrameView) SetPixel(x, y int, on bool) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	f.writeData(f.OffsetX+x, f.page(y), f.bitMask(y), on)
}

// GetPixel reports whether the pixel at (x, y) is set. Coordinates outside
// the view report false.
func (f FrameView) GetPixel(x, y int) bool {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return false
	}
	return f.buf[f.byteIndex(x, y)]&f.bitMask(y) != 0
}

// Fill sets every pixel in the view to value. The traversal is page-wise:
// one masked byte write per column per overlapping page, with partial masks
// on the top and bottom pages when the view does not align to page
// boundaries.
func (f FrameView) Fill(value bool) {
	startPage := f.OffsetY >> 3
	endPage := (f.OffsetY + f.Height + 6) >> 3

	for page := startPage; page <= endPage; page++ {
		mask := f.pageMask(page)
		if mask == 0 {
			continue
		}
		for x := 0; x < f.Width; x++ {
			ax := f.OffsetX + x
			if ax < 0 || ax >= f.stride {
				continue
			}
			f.writeData(ax, page, mask, value)
		}
	}
}

// DrawBitmap blits bm with its top-left corner at (x, y) in view
// coordinates. When on is false the bitmap's set bits clear pixels instead.
//
// Each source page is written as whole bytes: byte-aligned destinations take
// a single masked write per column, misaligned ones straddle two target
// pages. Writes are masked to the visible row range, so pixels outside the
// blit are preserved; source columns and pages outside the view are skipped.
func (f FrameView) DrawBitmap(x, y int, bm BitMap, on bool) {
	for page := 0; page < bm.Pages(); page++ {
		pageY := f.OffsetY + y + page<<3

		// Skip pages with no visible rows.
		if pageY+7 < f.OffsetY || pageY >= f.OffsetY+f.Height {
			continue
		}

		mask := f.bitmapMask(pageY)
		if mask == 0 {
			continue
		}

		f.drawBitmapRow(bm, page, x, pageY, mask, on)
	}
}

// drawBitmapRow writes one source page across all visible columns.
func (f FrameView) drawBitmapRow(bm BitMap, page, x, pageY int, mask byte, on bool) {
	absX := f.OffsetX + x
	for col := 0; col < bm.Width(); col++ {
		targetX := absX + col
		if targetX < f.OffsetX || targetX >= f.OffsetX+f.Width {
			continue
		}

		data := bm.ColumnByte(col, page) & mask
		if data == 0 {
			continue
		}

		f.writeBitmapData(targetX, pageY, data, on)
	}
}

// writeBitmapData writes 8 source bits whose top row is the absolute row
// pageY. A byte-aligned destination takes one write; otherwise the bits
// straddle the target page and the one below it.
func (f FrameView) writeBitmapData(absX, pageY int, data byte, on bool) {
	page := pageY >> 3
	offset := pageY & 7

	if offset == 0 {
		f.writeData(absX, page, data, on)
		return
	}

	if lo := data << offset; lo != 0 {
		f.writeData(absX, page, lo, on)
	}
	if hi := data >> (8 - offset); hi != 0 {
		f.writeData(absX, page+1, hi, on)
	}
}

// page returns the buffer page holding row y of the view.
func (f FrameView) page(y int) int {
	return (f.OffsetY + y) >> 3
}

// bitMask returns the single-bit mask for row y of the view.
func (f FrameView) bitMask(y int) byte {
	return 1 << ((f.OffsetY + y) & 7)
}

// byteIndex returns the buffer index of the byte holding (x, y).
func (f FrameView) byteIndex(x, y int) int {
	return f.page(y)*f.stride + f.OffsetX + x
}

// pageMask returns the mask of rows in page that fall inside the view, or 0
// when the page lies entirely outside.
func (f FrameView) pageMask(page int) byte {
	pageTop := page << 3
	visibleTop := max(f.OffsetY, pageTop)
	visibleBottom := min(f.OffsetY+f.Height, pageTop+8)

	if visibleTop >= visibleBottom {
		return 0
	}
	return rangeMask(visibleTop-pageTop, visibleBottom-pageTop-1)
}

// bitmapMask returns the visibility mask for a source page whose top row
// lands at the absolute row pageY.
func (f FrameView) bitmapMask(pageY int) byte {
	clipTop := 0
	if pageY < f.OffsetY {
		clipTop = f.OffsetY - pageY
	}

	clipBottom := 7
	if pageY+7 >= f.OffsetY+f.Height {
		clipBottom = f.OffsetY + f.Height - pageY - 1
	}

	return rangeMask(clipTop, clipBottom)
}

// writeData ORs data into the byte at (absX, page) when on is true, or
// ANDs its complement when false.
func (f FrameView) writeData(absX, page int, data byte, on bool) {
	i := page*f.stride + absX
	if on {
		f.buf[i] |= data
	} else {
		f.buf[i] &^= data
	}
}

// rangeMask builds the mask covering the inclusive bit range
// [startBit, endBit] within a page. An inverted range yields 0.
func rangeMask(startBit, endBit int) byte {
	if startBit > endBit {
		return 0
	}
	return byte((1<<(endBit+1))-1) ^ byte((1<<startBit)-1)
}
