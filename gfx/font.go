package gfx

// Glyphs cover the printable ASCII range [32, 127).
const (
	glyphFirst = 32
	glyphLast  = 127
	glyphCount = glyphLast - glyphFirst
)

// Font is a monospaced glyph table with glyphs up to 8 pixels tall. Each
// glyph is GlyphWidth consecutive bytes, one byte per column, bit 0 on top,
// stored in ASCII order starting at code 32.
//
// A Font with nil Data is the blank variant: every glyph lookup misses and
// the text engine renders a placeholder box instead. This is the "no font
// bound" state; there is no nil-pointer special case at call sites.
type Font struct {
	// Data holds glyphCount*GlyphWidth column bytes, or nil for the blank
	// variant. Borrowed, never copied.
	Data []byte

	// GlyphWidth is the glyph width in pixels.
	GlyphWidth int

	// GlyphHeight is the glyph height in pixels, 1 to 8.
	GlyphHeight int
}

// NewFont wraps data as a glyph table. Panics when the glyph size is out of
// range or the data length does not cover the ASCII range [32, 127).
func NewFont(data []byte, glyphWidth, glyphHeight int) Font {
	if glyphWidth < 1 || glyphHeight < 1 || glyphHeight > 8 {
		panic("gfx: glyph size out of range")
	}
	if len(data) != glyphCount*glyphWidth {
		panic("gfx: font data length does not match glyph dimensions")
	}
	return Font{Data: data, GlyphWidth: glyphWidth, GlyphHeight: glyphHeight}
}

// BlankFont returns the placeholder font bound to a Canvas before any real
// font is set. Every glyph renders as a 3x5 placeholder box.
func BlankFont() Font {
	return Font{GlyphWidth: 3, GlyphHeight: 5}
}

// Glyph returns the column bytes for c. ok is false when the font is blank
// or c lies outside [32, 127); the caller renders a placeholder box then.
func (f Font) Glyph(c byte) (glyph []byte, ok bool) {
	if f.Data == nil || c < glyphFirst || c >= glyphLast {
		return nil, false
	}
	i := int(c-glyphFirst) * f.GlyphWidth
	return f.Data[i : i+f.GlyphWidth], true
}

// CellWidth returns the glyph width plus the one-pixel inter-glyph gap.
func (f Font) CellWidth() int { return f.GlyphWidth + 1 }

// CellHeight returns the glyph height plus the one-pixel line gap.
func (f Font) CellHeight() int { return f.GlyphHeight + 1 }
