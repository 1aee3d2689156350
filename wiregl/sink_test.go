package wiregl

import (
	"image/color"
	"testing"
)

func TestFramebufferSinkHorizontalLine(t *testing.T) {
	const w, h = 8, 8
	s := &FramebufferSink{
		Buf:    make([]byte, w*h*2),
		Stride: w * 2,
		W:      w,
		H:      h,
		Color:  color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	}

	s.Line(1, 2, 4, 2)

	for x := 1; x <= 4; x++ {
		off := 2*s.Stride + x*2
		if s.Buf[off] != 0xFF || s.Buf[off+1] != 0xFF {
			t.Fatalf("pixel (%d,2) = %02x%02x; want ffff", x, s.Buf[off+1], s.Buf[off])
		}
	}
	if off := 2 * s.Stride; s.Buf[off] != 0 || s.Buf[off+1] != 0 {
		t.Fatal("pixel (0,2) written; want untouched")
	}
}

func TestFramebufferSinkClipsOutOfBounds(t *testing.T) {
	const w, h = 4, 4
	s := &FramebufferSink{
		Buf:    make([]byte, w*h*2),
		Stride: w * 2,
		W:      w,
		H:      h,
		Color:  color.RGBA{R: 0xFF, A: 0xFF},
	}

	// Endpoints entirely below the buffer: nothing may be written.
	s.Line(-10, 9, 10, 9)
	for i, b := range s.Buf {
		if b != 0 {
			t.Fatalf("buf[%d] = %02x; want 0", i, b)
		}
	}
}

type pixelRecorder struct {
	w, h   int16
	pixels []Point
}

func (d *pixelRecorder) Size() (int16, int16) { return d.w, d.h }
func (d *pixelRecorder) Display() error       { return nil }
func (d *pixelRecorder) SetPixel(x, y int16, _ color.RGBA) {
	d.pixels = append(d.pixels, Point{X: int(x), Y: int(y)})
}

func TestDisplayerSinkStreamsDiagonal(t *testing.T) {
	d := &pixelRecorder{w: 16, h: 16}
	s := &DisplayerSink{D: d, Color: color.RGBA{G: 0xFF, A: 0xFF}}

	s.Line(0, 0, 3, 3)

	want := []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	if len(d.pixels) != len(want) {
		t.Fatalf("SetPixel called %d times; want %d", len(d.pixels), len(want))
	}
	for i := range want {
		if d.pixels[i] != want[i] {
			t.Fatalf("pixel %d = %+v; want %+v", i, d.pixels[i], want[i])
		}
	}
}

func TestDisplayerSinkClips(t *testing.T) {
	d := &pixelRecorder{w: 4, h: 4}
	s := &DisplayerSink{D: d}

	s.Line(2, 2, 6, 2)

	for _, p := range d.pixels {
		if p.X < 0 || p.X >= 4 || p.Y < 0 || p.Y >= 4 {
			t.Fatalf("pixel %+v outside 4x4 display", p)
		}
	}
	if len(d.pixels) != 2 {
		t.Fatalf("SetPixel called %d times; want 2 (x=2,3)", len(d.pixels))
	}
}
