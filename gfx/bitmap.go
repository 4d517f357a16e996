package gfx

// BitMap is an immutable 1-bit image packed the way the display buffer is:
// 8 vertically stacked rows per byte, column-major. The byte at
// col*Pages()+page holds rows [page*8, page*8+7] of column col, bit 0 on
// top. Authoring tools must pack bitmap literals accordingly.
type BitMap struct {
	width  int
	height int
	pages  int
	pix    []byte
}

// NewBitMap wraps pix as a width x height bitmap. The pixel data is
// borrowed, not copied, and must stay unmodified for the bitmap's lifetime.
// Panics when the size is below 1x1 or len(pix) does not match
// width*ceil(height/8); a bitmap literal of the wrong shape is a
// programming error, not a runtime condition.
func NewBitMap(width, height int, pix []byte) BitMap {
	if width < 1 || height < 1 {
		panic("gfx: bitmap size must be at least 1x1")
	}
	pages := (height + 7) / 8
	if len(pix) != width*pages {
		panic("gfx: bitmap pixel data length does not match dimensions")
	}
	return BitMap{width: width, height: height, pages: pages, pix: pix}
}

// Width returns the bitmap width in pixels.
func (b BitMap) Width() int { return b.width }

// Height returns the bitmap height in pixels.
func (b BitMap) Height() int { return b.height }

// Pages returns the number of 8-row pages the bitmap spans.
func (b BitMap) Pages() int { return b.pages }

// ColumnByte returns the byte holding rows [page*8, page*8+7] of column col.
func (b BitMap) ColumnByte(col, page int) byte {
	return b.pix[col*b.pages+page]
}
