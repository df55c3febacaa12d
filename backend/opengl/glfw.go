package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	sticker "github.com/bezig01/Sticker-Image"
)

// GLFWPointerAdapter adapts GLFW mouse input to sticker.PointerState.
type GLFWPointerAdapter struct {
	window *glfw.Window
	input  *sticker.PointerState
}

// NewGLFWPointerAdapter creates a new GLFW pointer adapter.
func NewGLFWPointerAdapter(window *glfw.Window) *GLFWPointerAdapter {
	adapter := &GLFWPointerAdapter{
		window: window,
		input:  sticker.NewPointerState(),
	}

	// Setup callbacks
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update updates the pointer state for a new frame.
// Call this at the start of each frame, after glfw.PollEvents.
func (a *GLFWPointerAdapter) Update() *sticker.PointerState {
	a.input.Reset()

	x, y := a.window.GetCursorPos()
	a.input.SetPos(float32(x), float32(y))

	return a.input
}

// Input returns the current pointer state.
func (a *GLFWPointerAdapter) Input() *sticker.PointerState {
	return a.input
}

func (a *GLFWPointerAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	ptrButton := glfwMouseButtonToPointer(button)
	if ptrButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetButton(ptrButton, true)
	case glfw.Release:
		a.input.SetButton(ptrButton, false)
	}
}

func (a *GLFWPointerAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetPos(float32(xpos), float32(ypos))
}

// glfwMouseButtonToPointer maps GLFW mouse buttons to pointer buttons.
func glfwMouseButtonToPointer(button glfw.MouseButton) sticker.PointerButton {
	switch button {
	case glfw.MouseButtonLeft:
		return sticker.PointerPrimary
	case glfw.MouseButtonRight:
		return sticker.PointerSecondary
	default:
		return -1
	}
}
