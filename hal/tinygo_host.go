//go:build tinygo && !baremetal

package hal

import (
	"fmt"
	"time"
)

// tinyGoHostHAL backs `tinygo run` targets like linux/wasm where there is
// no MCU pin mapping: println logging and an in-memory framebuffer.
type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	fb     *tinyGoHostFramebuffer
	t      *tinyGoTimeLike
}

// New returns a TinyGo-on-host HAL implementation.
func New() HAL {
	return &tinyGoHostHAL{
		logger: &tinyGoHostLogger{},
		fb:     newTinyGoHostFramebuffer(320, 320),
		t:      newTinyGoTimeLike(),
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return tinyGoHostDisplay{fb: h.fb} }
func (h *tinyGoHostHAL) Input() Input     { return tinyGoHostInput{} }
func (h *tinyGoHostHAL) Time() Time       { return h.t }

type tinyGoHostDisplay struct {
	fb *tinyGoHostFramebuffer
}

func (d tinyGoHostDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoHostInput struct{}

func (tinyGoHostInput) Keyboard() Keyboard { return nullKeyboard{} }

type nullKeyboard struct{}

func (nullKeyboard) Events() <-chan KeyEvent { return nil }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) { fmt.Println(s) }
func (l *tinyGoHostLogger) WriteLineBytes(b []byte)  { fmt.Println(string(b)) }

type tinyGoHostFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte
}

func newTinyGoHostFramebuffer(w, h int) *tinyGoHostFramebuffer {
	stride := w * 2
	return &tinyGoHostFramebuffer{
		w:      w,
		h:      h,
		stride: stride,
		buf:    make([]byte, stride*h),
	}
}

func (f *tinyGoHostFramebuffer) Width() int          { return f.w }
func (f *tinyGoHostFramebuffer) Height() int         { return f.h }
func (f *tinyGoHostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *tinyGoHostFramebuffer) StrideBytes() int    { return f.stride }
func (f *tinyGoHostFramebuffer) Buffer() []byte      { return f.buf }
func (f *tinyGoHostFramebuffer) Present() error      { return nil }

func (f *tinyGoHostFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

type tinyGoTimeLike struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTimeLike() *tinyGoTimeLike {
	t := &tinyGoTimeLike{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTimeLike) Ticks() <-chan uint64 { return t.ch }
