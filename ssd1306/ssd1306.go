package ssd1306

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/KiraFlux/KiraFlux-GFX/gfx"
	"github.com/KiraFlux/KiraFlux-GFX/image1bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 128, must be 1..128)
	H int // Height (default: 64, must be a multiple of 8, 16 to 64)

	// Rotation and COM wiring
	Rotated    bool // 180° rotation
	Sequential bool // Sequential COM pin configuration (some 128x32 panels)

	// ExternalVcc disables the internal charge pump for panels with an
	// external panel voltage supply.
	ExternalVcc bool

	// Addr is the I2C address, used by NewI2C only (default: 0x3C).
	Addr uint16

	// Optional hardware reset pin
	RST gpio.PinIO // Reset pin (optional, nil if not used)
}

// Dev is the device handle for the SSD1306 display.
type Dev struct {
	// Communication
	c   conn.Conn   // SPI or I2C connection
	dc  gpio.PinOut // Data/Command pin (nil when driven over I2C)
	rst gpio.PinIO  // Reset pin (optional)

	// Display geometry
	rect         image.Rectangle
	pages        int
	columnOffset int // For centering on the 128-column RAM

	// Pixel buffers
	buffer []byte                 // Last frame flushed to the display
	next   *image1bit.VerticalLSB // Working frame

	// Drawing surface over the working frame
	frame gfx.FrameView

	// State
	halted bool
}

// NewSPI creates a new SSD1306 device connected via SPI.
//
// The SPI port is configured for 10MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. The dc (Data/Command) GPIO pin must be provided and configured
// as an output.
//
// opts can be nil to use defaults (128x64 display).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil {
		return nil, errors.New("ssd1306: dc pin is required for SPI")
	}

	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	return newDev(c, dc, opts)
}

// NewI2C creates a new SSD1306 device connected via I2C.
//
// Commands and data are framed with the SSD1306 control byte protocol, so
// no Data/Command pin is needed. opts can be nil to use defaults (128x64
// display at address 0x3C).
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	addr := uint16(0x3C)
	if opts != nil && opts.Addr != 0 {
		addr = opts.Addr
	}
	return newDev(&i2c.Dev{Bus: b, Addr: addr}, nil, opts)
}

// newDev validates opts, builds the device and initializes the display.
func newDev(c conn.Conn, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 128, H: 64}
	}

	if opts.W < 1 || opts.W > 128 {
		return nil, errors.New("ssd1306: width must be between 1 and 128")
	}
	if opts.H < 16 || opts.H > 64 || opts.H%8 != 0 {
		return nil, errors.New("ssd1306: height must be a multiple of 8 between 16 and 64")
	}

	pages := opts.H / 8
	d := &Dev{
		c:            c,
		dc:           dc,
		rst:          opts.RST,
		rect:         image.Rect(0, 0, opts.W, opts.H),
		pages:        pages,
		columnOffset: (128 - opts.W) / 2,
		buffer:       make([]byte, opts.W*pages),
		next:         image1bit.NewVerticalLSB(image.Rect(0, 0, opts.W, opts.H)),
	}

	frame, err := gfx.NewFrameView(d.next.Pix, d.next.Stride, opts.W, opts.H, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("ssd1306: %w", err)
	}
	d.frame = frame

	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// init sends the initialization sequence to the display.
func (d *Dev) init(opts *Opts) error {
	// Hardware reset sequence (if RST pin is provided)
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ssd1306: failed to pull RST low: %w", err)
		}
		time.Sleep(10 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ssd1306: failed to pull RST high: %w", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	// COM pin configuration depends on panel wiring
	comPins := byte(0x12)
	if opts.H <= 32 || opts.Sequential {
		comPins = 0x02
	}

	chargePump, contrast, precharge := byte(0x14), byte(0xCF), byte(0xF1)
	if opts.ExternalVcc {
		chargePump, contrast, precharge = 0x10, 0x9F, 0x22
	}

	// Segment remap and COM scan direction: adjust for rotation
	segRemap, comScan := byte(0xA1), byte(0xC8)
	if opts.Rotated {
		segRemap, comScan = 0xA0, 0xC0
	}

	cmds := []byte{
		0xAE,       // Display OFF
		0xD5, 0x80, // Clock divider and oscillator frequency
		0xA8, byte(opts.H - 1), // MUX ratio
		0xD3, 0x00, // Display offset
		0x40,             // Start line 0
		0x8D, chargePump, // Charge pump
		0x20, 0x00, // Horizontal addressing mode
		segRemap, comScan,
		0xDA, comPins, // COM pin hardware configuration
		0x81, contrast, // Contrast
		0xD9, precharge, // Pre-charge period
		0xDB, 0x40, // VCOMH deselect level
		0xA4, // Resume display from RAM
		0xA6, // Normal display mode
		0x2E, // Deactivate scroll
	}

	if err := d.sendCommands(cmds); err != nil {
		return err
	}

	// Clear display RAM
	if err := d.writeRect(0, 0, d.rect.Dx(), d.pages, make([]byte, len(d.buffer))); err != nil {
		return err
	}

	// Turn display ON
	return d.sendCommand(0xAF)
}

// sendCommand sends a single command byte.
func (d *Dev) sendCommand(cmd byte) error {
	return d.sendCommands([]byte{cmd})
}

// sendCommands sends a slice of command bytes.
func (d *Dev) sendCommands(cmds []byte) error {
	if d.dc == nil {
		// I2C: control byte 0x00 marks a command stream.
		return d.c.Tx(append([]byte{0x00}, cmds...), nil)
	}
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.c.Tx(cmds, nil)
}

// sendData sends a slice of data bytes.
func (d *Dev) sendData(data []byte) error {
	if d.dc == nil {
		// I2C: control byte 0x40 marks a data stream.
		return d.c.Tx(append([]byte{0x40}, data...), nil)
	}
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(data, nil)
}

// writeRect writes pixel data to a page-aligned region of the display.
func (d *Dev) writeRect(x, startPage, width, pages int, pixels []byte) error {
	colStart := byte(x + d.columnOffset)
	colEnd := byte(x + width - 1 + d.columnOffset)

	// Set addressing window; data writes auto-advance within it
	commands := []byte{
		0x21, colStart, colEnd, // Column address
		0x22, byte(startPage), byte(startPage + pages - 1), // Page address
	}

	if err := d.sendCommands(commands); err != nil {
		return err
	}
	return d.sendData(pixels)
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Frame returns the root drawing window over the working frame buffer.
// Pixels drawn through it (or any sub-view derived from it) are flushed to
// the display by the next Present call.
func (d *Dev) Frame() gfx.FrameView {
	return d.frame
}

// Canvas returns a drawing canvas over the working frame buffer, with the
// blank font bound.
func (d *Dev) Canvas() gfx.Canvas {
	return gfx.NewCanvas(d.frame)
}

// Present flushes the working frame to the display, sending only the
// bounding window of changed pages and columns. It is a no-op when nothing
// changed since the last flush.
func (d *Dev) Present() error {
	if d.halted {
		return errHalted
	}

	minCol, maxCol, minPage, maxPage := d.calculateDiff()
	if minCol > maxCol {
		// No changes
		return nil
	}

	changed := d.extractRegion(minCol, maxCol, minPage, maxPage)
	if err := d.writeRect(minCol, minPage, maxCol-minCol+1, maxPage-minPage+1, changed); err != nil {
		return err
	}

	copy(d.buffer, d.next.Pix)
	return nil
}

// Write writes raw pixel data to the display in vertical LSB page packing.
// The data must be exactly Dx*Dy/8 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	if len(pixels) != len(d.buffer) {
		return 0, errors.New("ssd1306: invalid buffer size")
	}
	if err := d.writeFullFrame(pixels); err != nil {
		return 0, err
	}
	copy(d.buffer, pixels)
	copy(d.next.Pix, pixels)
	return len(pixels), nil
}

// Draw draws an image onto the display with differential update
// optimization. The dst rectangle specifies the destination region on the
// display; sp is the source origin within src.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}

	// Clip to display bounds
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	// Fast path: full-frame VerticalLSB source goes straight out
	if srcImg, ok := src.(*image1bit.VerticalLSB); ok {
		if dst == d.rect && sp == (image.Point{}) && srcImg.Rect == d.rect {
			if err := d.writeFullFrame(srcImg.Pix); err != nil {
				return err
			}
			copy(d.buffer, srcImg.Pix)
			copy(d.next.Pix, srcImg.Pix)
			return nil
		}
	}

	// Slow path: render into the working frame, flush the diff
	draw.Draw(d.next, dst, src, sp, draw.Src)
	return d.Present()
}

// calculateDiff compares the flushed and working frames to find the
// minimal changed window. minCol > maxCol means no changes.
func (d *Dev) calculateDiff() (minCol, maxCol, minPage, maxPage int) {
	width := d.rect.Dx()

	minPage = d.pages
	maxPage = -1
	minCol = width
	maxCol = -1

	// Scan page by page to find differences
	for page := 0; page < d.pages; page++ {
		rowStart := page * width
		rowEnd := rowStart + width

		if bytes.Equal(d.buffer[rowStart:rowEnd], d.next.Pix[rowStart:rowEnd]) {
			continue
		}
		if page < minPage {
			minPage = page
		}
		if page > maxPage {
			maxPage = page
		}

		// Scan columns within this page for precise boundaries
		for x := 0; x < width; x++ {
			if d.buffer[rowStart+x] != d.next.Pix[rowStart+x] {
				if x < minCol {
					minCol = x
				}
				if x > maxCol {
					maxCol = x
				}
			}
		}
	}

	return
}

// extractRegion extracts the working-frame data for a page-aligned window.
func (d *Dev) extractRegion(minCol, maxCol, minPage, maxPage int) []byte {
	width := maxCol - minCol + 1
	stride := d.rect.Dx()

	result := make([]byte, width*(maxPage-minPage+1))
	dstIdx := 0

	for page := minPage; page <= maxPage; page++ {
		srcStart := page*stride + minCol
		copy(result[dstIdx:], d.next.Pix[srcStart:srcStart+width])
		dstIdx += width
	}

	return result
}

// writeFullFrame writes the entire frame buffer to the display.
func (d *Dev) writeFullFrame(pixels []byte) error {
	return d.writeRect(0, 0, d.rect.Dx(), d.pages, pixels)
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return errHalted
	}
	return d.sendCommands([]byte{0x81, contrast})
}

// Invert inverts the display colors (black becomes white and vice versa).
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errHalted
	}
	mode := byte(0xA6) // Normal display
	if invert {
		mode = 0xA7 // Inverted display
	}
	return d.sendCommand(mode)
}

// Halt powers off the display.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendCommand(0xAE) // Display OFF
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

var errHalted = errors.New("ssd1306: halted")

// ScrollSpeed defines the horizontal scroll frame interval.
type ScrollSpeed byte

const (
	// Scroll intervals (in display refresh frames)
	Speed2Frames   ScrollSpeed = 0x07
	Speed3Frames   ScrollSpeed = 0x04
	Speed4Frames   ScrollSpeed = 0x05
	Speed5Frames   ScrollSpeed = 0x00
	Speed25Frames  ScrollSpeed = 0x06
	Speed64Frames  ScrollSpeed = 0x01
	Speed128Frames ScrollSpeed = 0x02
	Speed256Frames ScrollSpeed = 0x03
)

// ScrollHorizontal starts horizontal scrolling on the display.
// startPage and endPage specify the scroll region in pages (8-row bands),
// with startPage <= endPage < H/8. If right is true, scrolls right;
// otherwise scrolls left.
func (d *Dev) ScrollHorizontal(startPage, endPage byte, speed ScrollSpeed, right bool) error {
	if d.halted {
		return errHalted
	}

	if int(startPage) >= d.pages || int(endPage) >= d.pages || startPage > endPage {
		return errors.New("ssd1306: scroll page out of range")
	}

	// Select scroll direction command
	scrollCmd := byte(0x27) // Left
	if right {
		scrollCmd = 0x26 // Right
	}

	// Send scroll setup command
	return d.sendCommands([]byte{
		scrollCmd,
		0x00,        // Dummy byte (always 0x00)
		startPage,   // Start page
		byte(speed), // Scroll interval
		endPage,     // End page
		0x00, 0xFF, // Dummy bytes
		0x2F, // Activate scroll
	})
}

// StopScroll stops all scrolling and resets the display to normal
// operation. The RAM contents may need to be rewritten afterwards.
func (d *Dev) StopScroll() error {
	if d.halted {
		return errHalted
	}
	return d.sendCommand(0x2E) // Deactivate scroll
}
