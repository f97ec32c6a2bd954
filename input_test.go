package scrollview

import "testing"

// gestureRecorder is a GestureTarget that logs calls.
type gestureRecorder struct {
	calls  []string
	points []Vec2
	pages  int
}

func (g *gestureRecorder) record(call string, p Vec2) {
	g.calls = append(g.calls, call)
	g.points = append(g.points, p)
}

func (g *gestureRecorder) PotentialDrag(p Vec2) { g.record("potential", p) }
func (g *gestureRecorder) BeginDrag(p Vec2)     { g.record("begin", p) }
func (g *gestureRecorder) Drag(p Vec2)          { g.record("drag", p) }
func (g *gestureRecorder) EndDrag(p Vec2)       { g.record("end", p) }
func (g *gestureRecorder) Scroll(w Vec2)        { g.record("scroll", w) }
func (g *gestureRecorder) Page(pages int)       { g.record("page", Vec2{}); g.pages += pages }

func (g *gestureRecorder) last() Vec2 { return g.points[len(g.points)-1] }

func newRecordedRouter() (*PointerRouter, *gestureRecorder) {
	g := &gestureRecorder{}
	area := func() Bounds { return Bounds{Min: Vec2{X: 10, Y: 10}, Max: Vec2{X: 110, Y: 210}} }
	return NewPointerRouter(g, area, 4), g
}

func TestPointerRouter_DragThreshold(t *testing.T) {
	r, g := newRecordedRouter()
	in := NewInputState()

	in.SetMousePos(50, 50)
	in.SetMouseButton(MouseButtonLeft, true)
	r.Route(in)
	in.Reset()

	in.SetMousePos(52, 51)
	r.Route(in)
	if r.Dragging() {
		t.Fatal("movement below the threshold must not start a drag")
	}

	in.SetMousePos(50, 40)
	r.Route(in)
	if !r.Dragging() {
		t.Fatal("expected drag past the threshold")
	}

	in.SetMouseButton(MouseButtonLeft, false)
	r.Route(in)

	want := []string{"potential", "begin", "drag", "end"}
	if len(g.calls) != len(want) {
		t.Fatalf("expected %v, got %v", want, g.calls)
	}
	for i := range want {
		if g.calls[i] != want[i] {
			t.Errorf("call %d: expected %s, got %s", i, want[i], g.calls[i])
		}
	}
}

func TestPointerRouter_BeginDragUsesPressPoint(t *testing.T) {
	r, g := newRecordedRouter()
	in := NewInputState()
	in.SetMousePos(50, 50)
	in.SetMouseButton(MouseButtonLeft, true)
	r.Route(in)
	in.Reset()

	g.calls, g.points = nil, nil
	in.SetMousePos(50, 30)
	r.Route(in)

	if len(g.calls) != 2 || g.calls[0] != "begin" || g.calls[1] != "drag" {
		t.Fatalf("expected [begin drag], got %v", g.calls)
	}
	if g.points[0] != (Vec2{X: 50, Y: 50}) {
		t.Errorf("expected drag to begin at the press point, got %+v", g.points[0])
	}
	if g.points[1] != (Vec2{X: 50, Y: 30}) {
		t.Errorf("expected drag to the pointer, got %+v", g.points[1])
	}
}

func TestPointerRouter_PressOutsideIgnored(t *testing.T) {
	r, g := newRecordedRouter()
	in := NewInputState()

	in.SetMousePos(500, 500)
	in.SetMouseButton(MouseButtonLeft, true)
	r.Route(in)
	in.Reset()
	in.SetMousePos(50, 50)
	r.Route(in)

	if len(g.calls) != 0 {
		t.Errorf("expected no gestures, got %v", g.calls)
	}
}

func TestPointerRouter_WheelAndKeysOnlyWhenHovered(t *testing.T) {
	tests := []struct {
		name  string
		pos   Vec2
		setup func(in *InputState)
		want  string
		pages int
	}{
		{name: "wheel inside", pos: Vec2{X: 50, Y: 50}, setup: func(in *InputState) { in.SetMouseWheel(0, -1) }, want: "scroll"},
		{name: "wheel outside", pos: Vec2{X: 500, Y: 50}, setup: func(in *InputState) { in.SetMouseWheel(0, -1) }},
		{name: "down arrow", pos: Vec2{X: 50, Y: 50}, setup: func(in *InputState) { in.SetKey(KeyDown, true) }, want: "scroll"},
		{name: "page down", pos: Vec2{X: 50, Y: 50}, setup: func(in *InputState) { in.SetKey(KeyPageDown, true) }, want: "page", pages: 1},
		{name: "page up", pos: Vec2{X: 50, Y: 50}, setup: func(in *InputState) { in.SetKey(KeyPageUp, true) }, want: "page", pages: -1},
		{name: "page outside", pos: Vec2{X: 5, Y: 5}, setup: func(in *InputState) { in.SetKey(KeyPageDown, true) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g := newRecordedRouter()
			in := NewInputState()
			in.SetMousePos(tt.pos.X, tt.pos.Y)
			tt.setup(in)
			r.Route(in)

			if tt.want == "" {
				if len(g.calls) != 0 {
					t.Errorf("expected no gestures, got %v", g.calls)
				}
				return
			}
			if len(g.calls) != 1 || g.calls[0] != tt.want {
				t.Fatalf("expected [%s], got %v", tt.want, g.calls)
			}
			if g.pages != tt.pages {
				t.Errorf("expected %d pages, got %d", tt.pages, g.pages)
			}
		})
	}
}

func TestPointerRouter_ArrowKeyDirection(t *testing.T) {
	r, g := newRecordedRouter()
	in := NewInputState()
	in.SetMousePos(50, 50)

	in.SetKey(KeyDown, true)
	r.Route(in)
	if g.last() != (Vec2{Y: -1}) {
		t.Errorf("down arrow: expected wheel (0, -1), got %+v", g.last())
	}

	in.Reset()
	in.SetKey(KeyDown, false)
	in.SetKey(KeyUp, true)
	r.Route(in)
	if g.last() != (Vec2{Y: 1}) {
		t.Errorf("up arrow: expected wheel (0, 1), got %+v", g.last())
	}
}

func TestPointerRouter_Cancel(t *testing.T) {
	r, g := newRecordedRouter()
	in := NewInputState()
	in.SetMousePos(50, 50)
	in.SetMouseButton(MouseButtonLeft, true)
	r.Route(in)
	in.Reset()
	in.SetMousePos(50, 20)
	r.Route(in)

	r.cancel()

	if r.Dragging() || g.calls[len(g.calls)-1] != "end" {
		t.Errorf("expected cancel to end the drag, got %v", g.calls)
	}
}

func TestInputState_KeyRepeat(t *testing.T) {
	in := NewInputState()
	in.SetKey(KeyDown, true)

	if !in.KeyRepeated(KeyDown) {
		t.Error("expected repeat on initial press")
	}
	in.Reset()

	in.UpdateKeyRepeat(KeyRepeatDelay / 2)
	if in.KeyRepeated(KeyDown) {
		t.Error("expected no repeat before the delay")
	}

	in.UpdateKeyRepeat(KeyRepeatDelay / 2)
	if !in.KeyRepeated(KeyDown) {
		t.Error("expected repeat once the delay passed")
	}
	if in.KeyRepeated(KeyDown) {
		t.Error("expected one repeat per interval")
	}

	in.UpdateKeyRepeat(2 * KeyRepeatInterval)
	if !in.KeyRepeated(KeyDown) {
		t.Error("expected repeat after further intervals")
	}

	in.SetKey(KeyDown, false)
	if in.KeyRepeated(KeyDown) {
		t.Error("released key must not repeat")
	}
}

func TestInputState_MouseButtons(t *testing.T) {
	in := NewInputState()

	in.SetMouseButton(MouseButtonLeft, true)
	if !in.MouseClicked(MouseButtonLeft) || !in.MouseDown(MouseButtonLeft) {
		t.Error("expected click and down")
	}
	in.Reset()
	if in.MouseClicked(MouseButtonLeft) || !in.MouseDown(MouseButtonLeft) {
		t.Error("click should last one frame, down should persist")
	}

	in.SetMouseButton(MouseButtonLeft, false)
	if !in.MouseReleased(MouseButtonLeft) {
		t.Error("expected release")
	}

	in.SetMouseButton(MouseButtonCount, true)
	if in.MouseDown(-1) || in.MouseDown(MouseButtonCount) {
		t.Error("out of range buttons should be ignored")
	}
}
