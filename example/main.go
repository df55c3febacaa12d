// Example demonstrates an interactive sticker on a GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window, initializes the OpenGL sticker
// renderer, and places two stickers on the canvas. Drag the body to
// move, drag the bottom-right handle to rotate/resize, tap the top-right
// handle to flip, tap the top-left handle to close. Press H to toggle
// the editing handles.
package main

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	sticker "github.com/bezig01/Sticker-Image"
	"github.com/bezig01/Sticker-Image/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "sticker example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// logDelegate prints sticker lifecycle events to stdout.
type logDelegate struct{ name string }

func (d *logDelegate) StickerBeginMoving(*sticker.Sticker) { fmt.Println(d.name, "begin moving") }
func (d *logDelegate) StickerMoving(*sticker.Sticker)      {}
func (d *logDelegate) StickerEndMoving(s *sticker.Sticker) {
	fmt.Printf("%s end moving at %v\n", d.name, s.Center())
}
func (d *logDelegate) StickerBeginRotating(*sticker.Sticker) { fmt.Println(d.name, "begin rotating") }
func (d *logDelegate) StickerRotating(*sticker.Sticker)      {}
func (d *logDelegate) StickerEndRotating(s *sticker.Sticker) {
	fmt.Printf("%s end rotating at %.1f deg, bounds %v\n",
		d.name, s.Rotation()*180/math.Pi, s.Bounds())
}
func (d *logDelegate) StickerClosed(*sticker.Sticker) { fmt.Println(d.name, "closed") }
func (d *logDelegate) StickerTapped(*sticker.Sticker) { fmt.Println(d.name, "tapped") }

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// Create the sticker renderer (takes initial viewport size) and
	// pointer adapter.
	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("sticker renderer: %w", err)
	}
	defer renderer.Delete()

	pointer := opengl.NewGLFWPointerAdapter(window)

	canvas := sticker.New(renderer)

	// A photo-like sticker from a procedurally generated image.
	img := sticker.NewImageContent(plasma(200, 150))
	photo := sticker.NewSticker(img,
		sticker.WithDelegate(&logDelegate{name: "photo"}),
	)
	photo.SetCenter(sticker.Vec2{X: 300, Y: 250})
	canvas.Add(photo)

	// A plain colored sticker on top.
	swatch := sticker.NewSticker(
		sticker.NewColorContent(sticker.Size{W: 120, H: 120}, sticker.RGBA(230, 120, 40, 255)),
		sticker.WithDelegate(&logDelegate{name: "swatch"}),
	)
	swatch.SetCenter(sticker.Vec2{X: 520, Y: 330})
	canvas.Add(swatch)

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyH && action == glfw.Press {
			for _, s := range canvas.Stickers() {
				s.SetShowEditingHandlers(!s.ShowEditingHandlers())
			}
		}
	})

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()
		in := pointer.Update()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := sticker.Vec2{X: float32(w), Y: float32(h)}
		if err := canvas.Frame(in, displaySize, 1.0/60.0); err != nil {
			return fmt.Errorf("sticker frame: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

// plasma generates a colorful test image.
func plasma(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx, fy := float64(x)/float64(w), float64(y)/float64(h)
			r := uint8(128 + 127*math.Sin(fx*8))
			g := uint8(128 + 127*math.Sin(fy*6+1))
			b := uint8(128 + 127*math.Sin((fx+fy)*5+2))
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
