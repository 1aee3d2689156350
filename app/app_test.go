package app

import (
	"strings"
	"testing"

	"glim/hal"
)

type memFramebuffer struct {
	w, h   int
	stride int
	buf    []byte
}

func newMemFramebuffer(w, h int) *memFramebuffer {
	return &memFramebuffer{w: w, h: h, stride: w * 2, buf: make([]byte, w*h*2)}
}

func (f *memFramebuffer) Width() int              { return f.w }
func (f *memFramebuffer) Height() int             { return f.h }
func (f *memFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int        { return f.stride }
func (f *memFramebuffer) Buffer() []byte          { return f.buf }
func (f *memFramebuffer) Present() error          { return nil }

func (f *memFramebuffer) ClearRGB(r, g, b uint8) {
	for i := range f.buf {
		f.buf[i] = 0
	}
}

type memDisplay struct{ fb *memFramebuffer }

func (d memDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type memLogger struct{ lines []string }

func (l *memLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *memLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type memHAL struct {
	fb  *memFramebuffer
	log *memLogger
}

func (h *memHAL) Logger() hal.Logger   { return h.log }
func (h *memHAL) Display() hal.Display { return memDisplay{fb: h.fb} }
func (h *memHAL) Input() hal.Input     { return nil }
func (h *memHAL) Time() hal.Time       { return nil }

func TestStepDrawsWireframe(t *testing.T) {
	h := &memHAL{fb: newMemFramebuffer(200, 200), log: &memLogger{}}
	step := New(h, Config{})

	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	// The default cube must have left wire-colored pixels behind.
	wire := rgb565From888(0x30, 0xE8, 0x70)
	lo, hi := byte(wire), byte(wire>>8)
	found := false
	buf := h.fb.Buffer()
	for i := 0; i+1 < len(buf); i += 2 {
		if buf[i] == lo && buf[i+1] == hi {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("no wire-colored pixels after step")
	}
}

func TestMissingMeshFallsBackToCube(t *testing.T) {
	h := &memHAL{fb: newMemFramebuffer(64, 64), log: &memLogger{}}
	step := New(h, Config{MeshPath: "testdata/no-such.obj"})

	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if len(h.log.lines) == 0 || !strings.Contains(h.log.lines[0], "no-such.obj") {
		t.Fatalf("load failure not logged: %q", h.log.lines)
	}
}
