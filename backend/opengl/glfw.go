package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/scrollview"
)

// GLFWInputAdapter feeds GLFW callbacks into a scrollview.InputState.
//
// Per frame:
//
//	glfw.PollEvents()
//	in := adapter.Update(dt)
//	host.Frame(in, dt)
//	adapter.EndFrame()
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *scrollview.InputState
}

// NewGLFWInputAdapter installs input callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  scrollview.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update syncs the cursor position and key repeat timers after events were
// polled, and returns the frame's input.
func (a *GLFWInputAdapter) Update(dt float32) *scrollview.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))
	a.input.UpdateKeyRepeat(dt)
	return a.input
}

// EndFrame clears the per-frame state (clicks, wheel, key presses).
func (a *GLFWInputAdapter) EndFrame() {
	a.input.Reset()
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *scrollview.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == scrollview.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButton(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(a.input.MouseWheelX+float32(xoff), a.input.MouseWheelY+float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToKey maps the GLFW keys the views react to.
func glfwKeyToKey(key glfw.Key) scrollview.Key {
	switch key {
	case glfw.KeyUp:
		return scrollview.KeyUp
	case glfw.KeyDown:
		return scrollview.KeyDown
	case glfw.KeyPageUp:
		return scrollview.KeyPageUp
	case glfw.KeyPageDown:
		return scrollview.KeyPageDown
	default:
		return scrollview.KeyNone
	}
}

// glfwMouseButton maps GLFW mouse buttons.
func glfwMouseButton(button glfw.MouseButton) scrollview.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return scrollview.MouseButtonLeft
	case glfw.MouseButtonRight:
		return scrollview.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return scrollview.MouseButtonMiddle
	default:
		return -1
	}
}
