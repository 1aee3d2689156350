//go:build !tinygo

package hal

import "testing"

func TestHostFramebufferClear(t *testing.T) {
	fb := newHostFramebuffer(4, 4)
	fb.ClearRGB(0xFF, 0x00, 0x00)

	// Pure red in RGB565 is 0xF800, stored little-endian.
	buf := fb.Buffer()
	for i := 0; i < len(buf); i += 2 {
		if buf[i] != 0x00 || buf[i+1] != 0xF8 {
			t.Fatalf("pixel %d = %02x%02x; want f800", i/2, buf[i+1], buf[i])
		}
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	cases := []struct{ r, g, b uint8 }{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
	}
	for _, c := range cases {
		r, g, b := rgb888From565(rgb565(c.r, c.g, c.b))
		if r != c.r || g != c.g || b != c.b {
			t.Fatalf("round trip (%d,%d,%d) = (%d,%d,%d)", c.r, c.g, c.b, r, g, b)
		}
	}
}
