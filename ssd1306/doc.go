// Package ssd1306 controls a SSD1306 OLED display via SPI or I2C.
//
// The SSD1306 is a 1-bit OLED controller supporting up to 128×64 pixels.
// This driver implements the display.Drawer interface from periph.io and
// additionally exposes a page-organized drawing surface through the gfx
// package.
//
// # Display Characteristics
//
// - Monochrome, 1 bit per pixel
// - RAM organized as pages: each byte holds 8 vertically stacked pixels
// - Support for various resolutions (typically 128×64 or 128×32)
// - Hardware scrolling support (horizontal only)
// - Adjustable contrast (0-255)
// - Display inversion
// - 128-column internal RAM with automatic centering for smaller displays
//
// # Hardware Connection
//
// I2C needs only two signal wires:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V (or 5V depending on display)
//	SCL         → I2C Clock
//	SDA         → I2C Data
//
// SPI additionally needs a Data/Command pin:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V (or 5V depending on display)
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or GND if always selected)
//	RES         → Optional: GPIO for hardware reset
//
// # Basic Usage
//
// Example of creating and drawing on the display:
//
//	package main
//
//	import (
//		"github.com/KiraFlux/KiraFlux-GFX/gfx"
//		"github.com/KiraFlux/KiraFlux-GFX/ssd1306"
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open I2C bus
//		bus, _ := i2creg.Open("")
//
//		// Create device
//		dev, _ := ssd1306.NewI2C(bus, &ssd1306.Opts{
//			W: 128,
//			H: 64,
//		})
//		defer dev.Halt()
//
//		// Draw through a canvas over the working frame
//		c := dev.Canvas()
//		c.SetFont(gfx.Font5x7())
//		c.Rect(0, 0, c.MaxX(), c.MaxY(), gfx.FillBorder)
//		c.SetCursor(4, 4)
//		c.Text("hello", true)
//
//		// Flush the changed region to the display
//		dev.Present()
//	}
//
// # Drawing Surfaces
//
// The driver keeps two frame buffers: the working frame that drawing
// operations write to, and a shadow of what was last flushed to the
// display. Present compares the two and sends only the bounding window of
// changed pages and columns.
//
// There are three ways to get pixels onto the working frame:
//
//   - Canvas returns a gfx.Canvas with lines, rectangles, circles, text
//     and region splitting.
//   - Frame returns the root gfx.FrameView for raw pixel and bitmap
//     access, including nested sub-windows.
//   - Draw accepts any image.Image and renders it through the standard
//     draw package, converting colors to 1-bit.
//
// A full-frame *image1bit.VerticalLSB source passed to Draw bypasses the
// conversion and diff entirely.
//
// # Using Hardware Reset Pin (Optional)
//
// If your display has a reset (RST) pin connected to a GPIO, provide it in
// the Opts struct:
//
//	rstPin := gpioreg.ByName("GPIO24")
//
//	dev, _ := ssd1306.NewI2C(bus, &ssd1306.Opts{
//		W:   128,
//		H:   64,
//		RST: rstPin,
//	})
//
// The driver performs a hardware reset sequence (pull RST low, wait 10ms,
// pull high, wait 10ms) during initialization. If RST is nil, the driver
// relies on power-on reset.
//
// # Hardware Scrolling
//
// The display scrolls whole pages (8-row bands) horizontally:
//
//	// Scroll the top two pages to the left
//	dev.ScrollHorizontal(0, 1, ssd1306.Speed5Frames, false)
//	time.Sleep(5 * time.Second)
//
//	// Stop scrolling
//	dev.StopScroll()
//
// RAM contents may need to be rewritten after stopping a scroll.
//
// # Display Resolution
//
// This driver supports configurable resolutions. Common options:
//
//	Opts{W: 128, H: 64} // 128×64 (most common)
//	Opts{W: 128, H: 32} // 128×32 (half height)
//	Opts{W: 64, H: 48}  // 64×48 (small modules)
//
// Width must be 1..128. Height must be a multiple of 8, 16 to 64. Some
// 128×32 panels need Sequential set for correct row interleaving.
//
// # Datasheet
//
// For detailed register descriptions and timing information, see:
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a
// display.Drawer.
package ssd1306
