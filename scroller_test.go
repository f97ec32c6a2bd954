package scrollview

import (
	"math"
	"testing"
)

// newListView creates an initialized vertical list of n 100-unit items with
// 10 units of spacing in a 300x500 viewport.
func newListView(t *testing.T, n int, opts ...Option) (*RecycleView, *testProvider) {
	t.Helper()
	p := newTestProvider(n, Vec2{X: 100, Y: 100})
	opts = append([]Option{Spacing(10), WithDiagnostics(func(Diagnostic) {})}, opts...)
	v, err := NewRecycleView(Viewport{Size: Vec2{X: 300, Y: 500}}, p, opts...)
	if err != nil {
		t.Fatalf("NewRecycleView: %v", err)
	}
	if err := v.Initialize(0); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return v, p
}

func TestScroller_ScrollByMovesContentForward(t *testing.T) {
	v, _ := newListView(t, 100)

	v.Scroller().ScrollBy(80)

	if got := v.Scroller().Position().Y; got != -80 {
		t.Errorf("expected position -80, got %v", got)
	}
	if v.Window().End() != 6 {
		t.Errorf("expected the scroll event to add a line, end %d", v.Window().End())
	}
}

func TestScroller_WheelUsesSensitivity(t *testing.T) {
	tests := []struct {
		name  string
		axis  Option
		wheel Vec2
		want  Vec2
	}{
		{"vertical down", Vertical(), Vec2{Y: -1}, Vec2{Y: -30}},
		{"vertical up", Vertical(), Vec2{Y: 2}, Vec2{Y: 60}},
		{"horizontal uses dominant x", Horizontal(), Vec2{X: -1, Y: 0.5}, Vec2{X: -30}},
		{"horizontal falls back to y", Horizontal(), Vec2{Y: -1}, Vec2{X: -30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := newListView(t, 100, tt.axis, Inertia(false))
			v.Scroller().Scroll(tt.wheel)
			if got := v.Scroller().Position(); got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestScroller_Page(t *testing.T) {
	v, _ := newListView(t, 100)

	// Distance scrolled from index 0, undoing start-edge compensation.
	scrolled := func() float32 {
		return -v.Scroller().Position().Y + float32(v.Window().Start())*110
	}

	v.Scroller().Page(1)
	if got := scrolled(); !approx(got, 400) {
		t.Errorf("expected one page to scroll 400, got %v", got)
	}

	v.Scroller().Page(-1)
	if got := scrolled(); !approx(got, 0) {
		t.Errorf("expected to page back to the start, got %v", got)
	}
}

func TestScroller_DragFollowsPointer(t *testing.T) {
	v, _ := newListView(t, 100)
	s := v.Scroller()

	s.PotentialDrag(Vec2{X: 10, Y: 300})
	s.BeginDrag(Vec2{X: 10, Y: 300})
	s.Drag(Vec2{X: 40, Y: 260})

	if got := s.Position(); got != (Vec2{Y: -40}) {
		t.Errorf("expected drag along the axis only, got %+v", got)
	}
	if !s.Dragging() {
		t.Error("expected dragging")
	}

	s.EndDrag(Vec2{X: 40, Y: 260})
	if s.Dragging() {
		t.Error("expected drag to end")
	}
}

func TestScroller_DragIgnoredWithoutBegin(t *testing.T) {
	v, _ := newListView(t, 100)

	v.Scroller().Drag(Vec2{Y: 100})
	v.Scroller().EndDrag(Vec2{Y: 100})

	if got := v.Scroller().Position(); got != (Vec2{}) {
		t.Errorf("expected no movement, got %+v", got)
	}
}

func TestScroller_DragAcrossCompensation(t *testing.T) {
	v, _ := newListView(t, 100)
	s := v.Scroller()

	s.BeginDrag(Vec2{X: 10, Y: 300})
	s.Drag(Vec2{X: 10, Y: 170})

	if v.Window().Start() != 1 {
		t.Fatalf("expected the first line evicted during the drag, start %d", v.Window().Start())
	}
	if got := s.Position().Y; got != -20 {
		t.Errorf("expected compensated position -20, got %v", got)
	}
	if got := s.DragStart().Y; got != 110 {
		t.Errorf("expected drag baseline shifted to 110, got %v", got)
	}

	// Another 10 units of pointer travel moves content by exactly 10.
	s.Drag(Vec2{X: 10, Y: 160})
	if got := s.Position().Y; got != -30 {
		t.Errorf("expected position -30, got %v", got)
	}
	if r := v.Content().ItemRect(0); r.Y != -30 {
		t.Errorf("expected index 1 at -30, got %v", r.Y)
	}
}

func TestScroller_InertiaDecays(t *testing.T) {
	v, _ := newListView(t, 1000)
	s := v.Scroller()

	s.BeginDrag(Vec2{Y: 300})
	s.Tick(0.1)
	s.Drag(Vec2{Y: 250})
	s.Tick(0.1)

	if got := s.Velocity().Y; !approx(got, -500) {
		t.Fatalf("expected drag velocity -500, got %v", got)
	}
	s.EndDrag(Vec2{Y: 250})

	before := s.Position().Y
	s.Tick(0.1)

	decay := float32(math.Pow(0.135, 0.1))
	if got := s.Velocity().Y; !approx(got, -500*decay) {
		t.Errorf("expected velocity %v, got %v", -500*decay, got)
	}
	if s.Position().Y >= before {
		t.Errorf("expected inertia to keep moving forward, %v -> %v", before, s.Position().Y)
	}

	for i := 0; i < 600; i++ {
		s.Tick(0.1)
	}
	if s.Velocity() != (Vec2{}) {
		t.Errorf("expected inertia to stop, velocity %+v", s.Velocity())
	}
}

func TestScroller_NoInertia(t *testing.T) {
	v, _ := newListView(t, 100, Inertia(false))
	s := v.Scroller()

	s.BeginDrag(Vec2{Y: 300})
	s.Tick(0.1)
	s.Drag(Vec2{Y: 250})
	s.Tick(0.1)
	s.EndDrag(Vec2{Y: 250})

	pos := s.Position()
	s.Tick(0.1)
	if s.Position() != pos || s.Velocity() != (Vec2{}) {
		t.Errorf("expected no movement after release, velocity %+v", s.Velocity())
	}
}

func TestScroller_PotentialDragStopsMovement(t *testing.T) {
	v, _ := newListView(t, 1000)
	s := v.Scroller()
	s.BeginDrag(Vec2{Y: 300})
	s.Tick(0.1)
	s.Drag(Vec2{Y: 200})
	s.Tick(0.1)
	s.EndDrag(Vec2{Y: 200})

	s.PotentialDrag(Vec2{Y: 100})
	if s.Velocity() != (Vec2{}) {
		t.Errorf("expected press to catch the content, velocity %+v", s.Velocity())
	}
}

func TestScroller_ClampedAtStart(t *testing.T) {
	v, _ := newListView(t, 100, Movement(MovementClamped))

	v.Scroller().ScrollBy(-100)

	if got := v.Scroller().Position().Y; got != 0 {
		t.Errorf("expected clamp at 0, got %v", got)
	}
}

func TestScroller_ClampedAtEnd(t *testing.T) {
	v, _ := newListView(t, 5, Movement(MovementClamped))

	v.Scroller().ScrollBy(1000)

	// 5 items span 540 units in a 500 unit viewport.
	if got := v.Scroller().Position().Y; got != -40 {
		t.Errorf("expected clamp at -40, got %v", got)
	}
}

func TestScroller_Events(t *testing.T) {
	v, _ := newListView(t, 100)
	s := v.Scroller()

	var kinds []EventKind
	unsubscribe := s.Subscribe(func(e Event) {
		kinds = append(kinds, e.Kind)
	})

	s.PotentialDrag(Vec2{Y: 300})
	s.BeginDrag(Vec2{Y: 300})
	s.Drag(Vec2{Y: 290})
	s.EndDrag(Vec2{Y: 290})
	s.Scroll(Vec2{Y: -1})

	want := []EventKind{EventPotentialDrag, EventBeginDrag, EventDrag, EventEndDrag, EventScroll}
	if len(kinds) != len(want) {
		t.Fatalf("expected %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("event %d: expected %s, got %s", i, want[i], kinds[i])
		}
	}

	unsubscribe()
	s.ScrollBy(10)
	if len(kinds) != len(want) {
		t.Errorf("expected no events after unsubscribe, got %v", kinds[len(want):])
	}
}

func TestEventBus_UnsubscribeDuringPublish(t *testing.T) {
	var b eventBus
	calls := 0
	var unsub func()
	unsub = b.subscribe(func(Event) {
		calls++
		unsub()
	})
	b.subscribe(func(Event) { calls++ })

	b.publish(Event{})
	b.publish(Event{})

	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestScroller_SetPositionResetsBaselines(t *testing.T) {
	v, _ := newListView(t, 100)
	s := v.Scroller()

	s.SetPosition(Vec2{Y: -50})

	if s.PrevPosition() != s.Position() || s.DragStart() != s.Position() {
		t.Errorf("baselines not synced: pos %+v prev %+v drag %+v", s.Position(), s.PrevPosition(), s.DragStart())
	}
	if s.Velocity() != (Vec2{}) {
		t.Errorf("expected zero velocity, got %+v", s.Velocity())
	}
}
