package scrollview

import "testing"

func TestBlock_Draw(t *testing.T) {
	tests := []struct {
		name      string
		world     Affine
		border    uint32
		wantIdx   int
		wantFirst [2]float32
	}{
		{name: "translated", world: Translate(10, 20), wantIdx: 6, wantFirst: [2]float32{15, 25}},
		{name: "with border", world: Identity(), border: ColorWhite, wantIdx: 30, wantFirst: [2]float32{5, 5}},
		{name: "rotated", world: Affine{A: 0, B: 1, C: -1, D: 0}, wantIdx: 6, wantFirst: [2]float32{-5, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBlock(Vec2{X: 40, Y: 20}, ColorGray)
			b.Border = tt.border
			p := Placement{Index: 3, Item: b, Rect: Rect{X: 5, Y: 5, W: 40, H: 20}}

			dl := AcquireDrawList()
			defer ReleaseDrawList(dl)
			b.Draw(dl, p, tt.world)

			if len(dl.IdxBuffer) != tt.wantIdx {
				t.Errorf("expected %d indices, got %d", tt.wantIdx, len(dl.IdxBuffer))
			}
			if got := dl.VtxBuffer[0].Pos; got != tt.wantFirst {
				t.Errorf("expected first vertex %v, got %v", tt.wantFirst, got)
			}
		})
	}
}

func TestBlock_Lifecycle(t *testing.T) {
	b := NewBlock(Vec2{X: 10, Y: 10}, ColorGray)
	if b.Index != -1 {
		t.Errorf("expected unbound block, got index %d", b.Index)
	}

	b.Bind(7, "seven")
	b.SetActive(true)
	b.SetSize(Vec2{X: 20, Y: 5})
	if b.Index != 7 || b.Text() != "seven" || !b.Active() || b.Size() != (Vec2{X: 20, Y: 5}) {
		t.Errorf("unexpected block state %+v", b)
	}

	b.Dispose()
	if !b.Disposed() || b.Active() {
		t.Error("expected disposed inactive block")
	}
}
