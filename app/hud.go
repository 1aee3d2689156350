package app

import (
	"fmt"
	"image/color"

	"glim/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const hudLineHeight = 10

func (a *app) drawHUD() {
	title := color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	dim := color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF}

	a.drawText(6, 6, fmt.Sprintf("%s  %dv %de", a.name, a.obj.PointCount(), a.obj.EdgeCount()), title)
	a.drawText(6, 6+hudLineHeight, "space pause  1/2/3 mesh  arrows move  q quit", dim)
}

func (a *app) drawText(x, y int, s string, c color.RGBA) {
	d := &fbDisplayer{fb: a.fb}
	tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, int16(x), int16(y+8), s, c)
}

// fbDisplayer exposes the HAL framebuffer as a driver-level display so
// tinyfont can draw on it.
type fbDisplayer struct {
	fb hal.Framebuffer
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}
