// Package image1bit provides a 1-bit image format for page-organized
// display controllers such as the SSD1306.
//
// These controllers pack 8 vertically stacked pixels per byte, least
// significant bit on top. A horizontal band of 8 rows is a page.
//
// Memory layout example for a 4x16 image:
//
//	Byte 0..3: columns 0..3 of rows 0..7   (page 0)
//	Byte 4..7: columns 0..3 of rows 8..15  (page 1)
//	Bit n of a byte is row page*8+n of that column.
//
// This package provides:
//
// - Bit: a color type that is either On or Off
// - BitModel: a color model for converting standard Go colors to Bit
// - VerticalLSB: an image.Image implementation in the layout above
//
// Example usage:
//
//	// Create a 128x64 image
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))
//
//	// Set a pixel
//	img.SetBit(10, 20, image1bit.On)
//
//	// Get a pixel
//	b := img.BitAt(10, 20)
//	println(bool(b)) // Output: true
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
//
// The Pix buffer and Stride can feed gfx.NewFrameView directly, so the
// same memory can back both image/draw operations and the gfx drawing
// engine.
package image1bit
