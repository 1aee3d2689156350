package app

import (
	"errors"
	"fmt"
	"image/color"

	"glim/hal"
	"glim/wiregl"
)

// ErrExit is returned by the frame step when the user asks to quit.
var ErrExit = errors.New("app: exit requested")

// Mesh memory cap for the demo. Generous for any sane wireframe, small
// enough that a runaway OBJ cannot take the whole device down.
const meshBudgetBytes = 256 << 10

// Config selects the demo content.
type Config struct {
	// MeshPath points at an OBJ file to load on the 3 key (host only).
	MeshPath string
}

type app struct {
	h   hal.HAL
	fb  hal.Framebuffer
	cfg Config

	arena *wiregl.Budget

	obj  *wiregl.Object
	name string

	wireColor color.RGBA

	paused bool
}

const frameIntervalTicks = 33

// New wires the engine demo to a HAL and returns the per-frame step.
func New(h hal.HAL, cfg Config) func() error {
	a := &app{
		h:         h,
		cfg:       cfg,
		arena:     &wiregl.Budget{Limit: meshBudgetBytes},
		wireColor: color.RGBA{R: 0x30, G: 0xE8, B: 0x70, A: 0xFF},
	}

	if d := h.Display(); d != nil {
		a.fb = d.Framebuffer()
	}
	if a.fb == nil || a.fb.Format() != hal.PixelFormatRGB565 {
		return func() error { return errors.New("app: RGB565 framebuffer required") }
	}

	if cfg.MeshPath != "" {
		a.loadMeshFile()
	}
	if a.obj == nil {
		a.useCube()
	}
	return a.step
}

// Run starts the demo and blocks forever. This is the TinyGo entrypoint:
// ticks come from the HAL instead of a window loop.
func Run(h hal.HAL) {
	step := New(h, Config{})

	t := h.Time()
	if t == nil {
		return
	}
	ch := t.Ticks()
	if ch == nil {
		return
	}

	var lastFrame uint64
	for now := range ch {
		if lastFrame != 0 && now-lastFrame < frameIntervalTicks {
			continue
		}
		lastFrame = now
		if err := step(); err != nil {
			h.Logger().WriteLineString("app: " + err.Error())
			return
		}
	}
}

func (a *app) step() error {
	if err := a.handleInput(); err != nil {
		return err
	}
	if a.obj == nil {
		return errors.New("app: no mesh")
	}

	if !a.paused {
		a.obj.YAngleDeg += 1.5
		a.obj.ZAngleDeg += 0.5
	}

	a.obj.Precalculate()

	a.fb.ClearRGB(0x05, 0x08, 0x12)
	sink := &wiregl.FramebufferSink{
		Buf:    a.fb.Buffer(),
		Stride: a.fb.StrideBytes(),
		W:      a.fb.Width(),
		H:      a.fb.Height(),
		Color:  a.wireColor,
	}
	a.obj.Render(sink)

	a.drawHUD()
	return a.fb.Present()
}

func (a *app) handleInput() error {
	in := a.h.Input()
	if in == nil {
		return nil
	}
	kbd := in.Keyboard()
	if kbd == nil {
		return nil
	}
	ch := kbd.Events()
	if ch == nil {
		return nil
	}

	for {
		select {
		case ev := <-ch:
			if !ev.Press {
				continue
			}
			switch ev.Code {
			case hal.KeyEscape:
				return ErrExit
			case hal.KeyUp:
				a.obj.YOffset -= 4
			case hal.KeyDown:
				a.obj.YOffset += 4
			case hal.KeyLeft:
				a.obj.XOffset -= 4
			case hal.KeyRight:
				a.obj.XOffset += 4
			}
			switch ev.Rune {
			case 'q':
				return ErrExit
			case ' ':
				a.paused = !a.paused
			case '1':
				a.useCube()
			case '2':
				a.usePyramid()
			case '3':
				a.loadMeshFile()
			}
		default:
			return nil
		}
	}
}

// swapObject releases the outgoing mesh and centers the incoming one,
// keeping the current rotation so switching doesn't snap the view.
func (a *app) swapObject(o *wiregl.Object, name string) {
	var xa, ya, za wiregl.Scalar = 20, 0, 0
	if a.obj != nil {
		xa, ya, za = a.obj.XAngleDeg, a.obj.YAngleDeg, a.obj.ZAngleDeg
		a.obj.Release()
	}
	a.obj = o
	a.name = name
	o.XAngleDeg, o.YAngleDeg, o.ZAngleDeg = xa, ya, za
	o.XOffset = wiregl.Scalar(a.fb.Width() / 2)
	o.YOffset = wiregl.Scalar(a.fb.Height() / 2)
	o.Scale = 120
}

func (a *app) useCube() {
	o, ok := wiregl.Cube(a.arena, 1)
	if !ok {
		a.h.Logger().WriteLineString("app: cube refused by mesh budget")
		return
	}
	a.swapObject(o, "cube")
}

func (a *app) usePyramid() {
	o, ok := wiregl.Pyramid(a.arena, 1)
	if !ok {
		a.h.Logger().WriteLineString("app: pyramid refused by mesh budget")
		return
	}
	a.swapObject(o, "pyramid")
}

func (a *app) loadMeshFile() {
	if a.cfg.MeshPath == "" {
		return
	}
	o, err := wiregl.ParseFile(a.cfg.MeshPath, a.arena)
	if err != nil {
		if o != nil {
			o.Release()
		}
		a.h.Logger().WriteLineString(fmt.Sprintf("app: load %s: %v", a.cfg.MeshPath, err))
		return
	}
	a.swapObject(o, a.cfg.MeshPath)
}
