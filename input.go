package scrollview

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key the views react to.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyCount
)

// Key repeat timing
const (
	KeyRepeatDelay    float32 = 0.4  // Initial delay before repeat starts (seconds)
	KeyRepeatInterval float32 = 0.03 // Repeat interval once repeating (seconds)
)

// InputState holds input state for the current frame.
// It is populated by a backend (GLFW, terminal) and consumed by views.
type InputState struct {
	MouseX, MouseY float32

	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame the button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame the button was released

	MouseWheelX float32
	MouseWheelY float32

	keyDown     [KeyCount]bool
	keyPressed  [KeyCount]bool
	keyHoldTime [KeyCount]float32
	repeatFired [KeyCount]int // Repeat intervals already reported for a held key
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
		s.mouseUp[i] = false
	}
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// MousePos returns the mouse position.
func (s *InputState) MousePos() Vec2 {
	return Vec2{X: s.MouseX, Y: s.MouseY}
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down
	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetMouseWheel sets the mouse wheel delta.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX = x
	s.MouseWheelY = y
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down
	if down && !wasDown {
		s.keyPressed[key] = true
	}
	if down != wasDown {
		s.keyHoldTime[key] = 0
		s.repeatFired[key] = 0
	}
}

// UpdateKeyRepeat advances hold times for repeat detection.
// Call this once per frame with the frame's delta time.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for key := Key(0); key < KeyCount; key++ {
		if s.keyDown[key] {
			s.keyHoldTime[key] += dt
		}
	}
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was pressed this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was released this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// KeyPressed returns true if a key was pressed this frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyRepeated returns true on the initial press, then once KeyRepeatDelay
// has passed, then once per KeyRepeatInterval while the key is held.
func (s *InputState) KeyRepeated(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	if s.keyPressed[key] {
		return true
	}
	if !s.keyDown[key] || s.keyHoldTime[key] < KeyRepeatDelay {
		return false
	}

	due := int((s.keyHoldTime[key]-KeyRepeatDelay)/KeyRepeatInterval) + 1
	if due > s.repeatFired[key] {
		s.repeatFired[key] = due
		return true
	}
	return false
}

// GestureTarget receives the gestures a PointerRouter recognizes.
// Scroller implements it.
type GestureTarget interface {
	PotentialDrag(pointer Vec2)
	BeginDrag(pointer Vec2)
	Drag(pointer Vec2)
	EndDrag(pointer Vec2)
	Scroll(wheel Vec2)
	Page(pages int)
}

// PointerRouter turns raw per-frame input into gestures for one view:
// a press inside the view is a potential drag, moving past the threshold
// begins the drag, release ends it. Wheel and paging keys only apply while
// the pointer hovers the view.
type PointerRouter struct {
	target    GestureTarget
	area      func() Bounds
	threshold float32

	pressed  bool
	dragging bool
	press    Vec2
}

// NewPointerRouter creates a router sending gestures to target for input
// inside area.
func NewPointerRouter(target GestureTarget, area func() Bounds, threshold float32) *PointerRouter {
	return newPointerRouter(target, area, threshold)
}

func newPointerRouter(target GestureTarget, area func() Bounds, threshold float32) *PointerRouter {
	return &PointerRouter{target: target, area: area, threshold: threshold}
}

// Dragging reports whether the router has begun a drag.
func (r *PointerRouter) Dragging() bool { return r.dragging }

// Route processes one frame of input.
func (r *PointerRouter) Route(in *InputState) {
	p := in.MousePos()
	inside := r.area().Contains(p)

	if in.MouseClicked(MouseButtonLeft) && inside {
		r.pressed = true
		r.press = p
		r.target.PotentialDrag(p)
	}

	if r.pressed && in.MouseDown(MouseButtonLeft) {
		if !r.dragging {
			d := p.Sub(r.press)
			if d.X*d.X+d.Y*d.Y >= r.threshold*r.threshold {
				r.dragging = true
				r.target.BeginDrag(r.press)
			}
		}
		if r.dragging {
			r.target.Drag(p)
		}
	} else if r.pressed {
		if r.dragging {
			r.target.EndDrag(p)
		}
		r.pressed = false
		r.dragging = false
	}

	if !inside {
		return
	}
	if in.MouseWheelX != 0 || in.MouseWheelY != 0 {
		r.target.Scroll(Vec2{X: in.MouseWheelX, Y: in.MouseWheelY})
	}
	if in.KeyRepeated(KeyDown) {
		r.target.Scroll(Vec2{Y: -1})
	}
	if in.KeyRepeated(KeyUp) {
		r.target.Scroll(Vec2{Y: 1})
	}
	if in.KeyRepeated(KeyPageDown) {
		r.target.Page(1)
	}
	if in.KeyRepeated(KeyPageUp) {
		r.target.Page(-1)
	}
}

// cancel abandons a press or drag in progress.
func (r *PointerRouter) cancel() {
	if r.dragging {
		r.target.EndDrag(r.press)
	}
	r.pressed = false
	r.dragging = false
}
