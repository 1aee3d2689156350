package wiregl

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// FramebufferSink rasterizes segments into an RGB565 framebuffer. Callers
// provide the backing buffer and layout (stride); out-of-bounds pixels are
// clipped per pixel.
type FramebufferSink struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
	Color  color.RGBA
}

func (s *FramebufferSink) Line(x1, y1, x2, y2 int) {
	if s == nil || s.Buf == nil || s.Stride <= 0 || s.W <= 0 || s.H <= 0 {
		return
	}
	p := rgb565From888(s.Color.R, s.Color.G, s.Color.B)
	lo := byte(p)
	hi := byte(p >> 8)
	drawLine(x1, y1, x2, y2, func(x, y int) {
		if x < 0 || y < 0 || x >= s.W || y >= s.H {
			return
		}
		off := y*s.Stride + x*2
		if off < 0 || off+1 >= len(s.Buf) {
			return
		}
		s.Buf[off] = lo
		s.Buf[off+1] = hi
	})
}

// DisplayerSink streams segments pixel by pixel to a driver-level display,
// e.g. an SPI panel. Each SetPixel may block on the underlying bus; the
// sink neither batches nor flushes (call Display on the driver after the
// frame if it needs one).
type DisplayerSink struct {
	D     drivers.Displayer
	Color color.RGBA
}

func (s *DisplayerSink) Line(x1, y1, x2, y2 int) {
	if s == nil || s.D == nil {
		return
	}
	w, h := s.D.Size()
	drawLine(x1, y1, x2, y2, func(x, y int) {
		if x < 0 || y < 0 || x >= int(w) || y >= int(h) {
			return
		}
		s.D.SetPixel(int16(x), int16(y), s.Color)
	})
}

// Segment is one recorded draw call.
type Segment struct {
	X1, Y1, X2, Y2 int
}

// RecordSink stores every segment it receives, in call order. Intended for
// tests and debugging.
type RecordSink struct {
	Segments []Segment
}

func (s *RecordSink) Line(x1, y1, x2, y2 int) {
	s.Segments = append(s.Segments, Segment{X1: x1, Y1: y1, X2: x2, Y2: y2})
}

// Reset drops the recorded segments.
func (s *RecordSink) Reset() { s.Segments = s.Segments[:0] }

// drawLine walks the Bresenham raster of the segment and hands every pixel
// to plot.
func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}
