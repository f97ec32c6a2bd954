package scrollview

import (
	"errors"
	"testing"
)

func newDefaultView(t *testing.T, height float32, opts ...Option) (*DefaultView, *diagRecorder) {
	t.Helper()
	diag := &diagRecorder{}
	opts = append([]Option{WithDiagnostics(diag.record)}, opts...)
	v, err := NewDefaultView(Viewport{Size: Vec2{X: 300, Y: height}}, opts...)
	if err != nil {
		t.Fatalf("NewDefaultView: %v", err)
	}
	return v, diag
}

func blocks(size Vec2) func(i int) Item {
	return func(i int) Item {
		b := NewBlock(size, ColorGray)
		b.Bind(i, "")
		return b
	}
}

func TestDefaultView_Refresh(t *testing.T) {
	v, _ := newDefaultView(t, 200, Spacing(10))

	if err := v.Refresh(3, blocks(Vec2{X: 280, Y: 100})); err != nil {
		t.Fatal(err)
	}
	if v.Len() != 3 {
		t.Errorf("expected 3 items, got %d", v.Len())
	}
	if v.State() != StateActive {
		t.Errorf("expected active, got %s", v.State())
	}
	if got := v.Content().Size().Y; got != 320 {
		t.Errorf("expected content extent 320, got %v", got)
	}

	first := v.Content().Item(0).(*Block)
	if err := v.Refresh(2, blocks(Vec2{X: 280, Y: 100})); err != nil {
		t.Fatal(err)
	}
	if !first.Disposed() {
		t.Error("expected previous items disposed on refresh")
	}
	if v.Len() != 2 {
		t.Errorf("expected 2 items, got %d", v.Len())
	}
}

func TestDefaultView_RefreshSkipsNilItems(t *testing.T) {
	v, diag := newDefaultView(t, 500)

	err := v.Refresh(3, func(i int) Item {
		if i == 1 {
			return nil
		}
		return blocks(Vec2{X: 100, Y: 50})(i)
	})
	if err != nil {
		t.Fatal(err)
	}

	if v.Len() != 2 {
		t.Errorf("expected 2 items, got %d", v.Len())
	}
	if diag.count(DiagProviderMiss) != 1 {
		t.Errorf("expected one provider miss, got %+v", diag.got)
	}
	ps := v.VisibleItems()
	if len(ps) != 2 || ps[0].Index != 0 || ps[1].Index != 2 {
		t.Errorf("expected indices 0 and 2, got %+v", ps)
	}
}

func TestDefaultView_RefreshWithoutCallback(t *testing.T) {
	v, diag := newDefaultView(t, 500)

	if err := v.Refresh(3, nil); !errors.Is(err, ErrMissingCallback) {
		t.Errorf("expected ErrMissingCallback, got %v", err)
	}
	if diag.count(DiagConfig) != 1 {
		t.Errorf("expected one config diagnostic, got %+v", diag.got)
	}
	if v.State() != StateUninitialized {
		t.Errorf("expected uninitialized, got %s", v.State())
	}
}

func TestDefaultView_SetIndex(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		k       int
		want    float32
		wantErr error
	}{
		{name: "first", k: 0, want: 0},
		{name: "middle", k: 1, want: -110},
		{name: "bounded by content end", k: 2, want: -120},
		{name: "padding", opts: []Option{Pad(20, 0)}, k: 1, want: -110},
		{name: "out of range", k: 5, wantErr: ErrIndexOutOfRange},
		{name: "negative", k: -1, wantErr: ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{Spacing(10)}, tt.opts...)
			v, diag := newDefaultView(t, 200, opts...)
			_ = v.Refresh(3, blocks(Vec2{X: 280, Y: 100}))

			err := v.SetIndex(tt.k)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr != nil {
				if diag.count(DiagOutOfRange) != 1 {
					t.Errorf("expected one out of range diagnostic, got %+v", diag.got)
				}
				return
			}
			if got := v.Scroller().Position().Y; got != tt.want {
				t.Errorf("expected position %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDefaultView_FitContent(t *testing.T) {
	v, _ := newDefaultView(t, 200, Spacing(10))

	_ = v.Refresh(3, blocks(Vec2{X: 280, Y: 100}))
	if v.FitContent() {
		t.Error("content larger than the viewport should not change it")
	}

	_ = v.Refresh(1, blocks(Vec2{X: 280, Y: 100}))
	if !v.FitContent() {
		t.Fatal("expected viewport to shrink")
	}
	if got := v.Viewport().Size.Y; got != 100 {
		t.Errorf("expected viewport height 100, got %v", got)
	}
	if got := v.Viewport().Size.X; got != 300 {
		t.Errorf("cross extent changed to %v", got)
	}

	_ = v.Refresh(5, blocks(Vec2{X: 280, Y: 100}))
	if !v.FitContent() {
		t.Fatal("expected viewport to grow back")
	}
	if got := v.Viewport().Size.Y; got != 200 {
		t.Errorf("expected original height 200, got %v", got)
	}
}

func TestDefaultView_ClampedByDefault(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want float32
	}{
		{name: "default", want: -120},
		{name: "unrestricted", opts: []Option{Movement(MovementUnrestricted)}, want: -1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{Spacing(10)}, tt.opts...)
			v, _ := newDefaultView(t, 200, opts...)
			_ = v.Refresh(3, blocks(Vec2{X: 280, Y: 100}))

			v.Scroller().ScrollBy(1000)
			if got := v.Scroller().Position().Y; got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDefaultView_VisibleItemsUsesClipper(t *testing.T) {
	v, _ := newDefaultView(t, 100)
	_ = v.Refresh(1000, blocks(Vec2{X: 300, Y: 20}))

	ps := v.VisibleItems()
	if len(ps) != 5 || ps[0].Index != 0 {
		t.Fatalf("expected indices 0..4, got %d placements", len(ps))
	}

	if err := v.SetIndex(500); err != nil {
		t.Fatal(err)
	}
	ps = v.VisibleItems()
	if len(ps) != 5 || ps[0].Index != 500 || ps[4].Index != 504 {
		t.Errorf("expected indices 500..504, got %+v", ps)
	}
	if ps[0].Rect.Y != 0 {
		t.Errorf("expected index 500 at the top, got %v", ps[0].Rect.Y)
	}
}

func TestDefaultView_Lifecycle(t *testing.T) {
	v, _ := newDefaultView(t, 200)
	_ = v.Refresh(3, blocks(Vec2{X: 280, Y: 50}))

	v.SetActive(false)
	if err := v.Refresh(10, blocks(Vec2{X: 280, Y: 50})); err != nil {
		t.Errorf("Refresh on inactive view: %v", err)
	}
	if v.Len() != 3 {
		t.Errorf("inactive Refresh must not mount, got %d", v.Len())
	}
	v.SetActive(true)

	items := append([]Item(nil), v.Content().Items()...)
	if got := v.Destroy(); got != 3 {
		t.Errorf("expected 3 released, got %d", got)
	}
	for _, it := range items {
		if !it.(*Block).Disposed() {
			t.Error("expected item disposed")
		}
	}
	if err := v.Refresh(1, blocks(Vec2{X: 10, Y: 10})); !errors.Is(err, ErrDestroyed) {
		t.Errorf("expected ErrDestroyed, got %v", err)
	}
	if v.Destroy() != 0 {
		t.Error("second Destroy should release nothing")
	}
}

func TestDefaultView_Render(t *testing.T) {
	v, _ := newDefaultView(t, 100)
	_ = v.Refresh(10, blocks(Vec2{X: 300, Y: 20}))

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	v.Render(dl)
	dl.Finalize()

	// Five visible blocks, one quad each.
	if got := len(dl.IdxBuffer); got != 5*6 {
		t.Errorf("expected 30 indices, got %d", got)
	}
	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("expected one clipped command, got %d", len(dl.CmdBuffer))
	}
	if clip := dl.CmdBuffer[0].ClipRect; clip != [4]float32{0, 0, 300, 100} {
		t.Errorf("expected viewport clip, got %v", clip)
	}
}

func TestDefaultView_HitAreaFollowsViewport(t *testing.T) {
	v, _ := newDefaultView(t, 100)
	_ = v.Refresh(10, blocks(Vec2{X: 300, Y: 20}))

	vp := v.Viewport()
	vp.Size.X = 600
	v.SetViewport(vp)

	in := NewInputState()
	in.SetMousePos(450, 50)
	in.SetMouseWheel(0, -1)
	v.HandleInput(in)

	if got := v.Scroller().Position().Y; got != -30 {
		t.Errorf("expected wheel in the widened viewport to scroll to -30, got %v", got)
	}
}
