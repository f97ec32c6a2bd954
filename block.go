package scrollview

// Block is a ready-made item: a filled rectangle with an optional border
// and label. It is what the demos and tests mount, and a starting point
// for custom items.
//
// Usage:
//
//	provider := scrollview.ProviderFuncs{
//	    Valid: func(i int) bool { return i >= 0 && i < len(rows) },
//	    Get: func(i int) scrollview.Item {
//	        return scrollview.NewBlock(scrollview.Vec2{X: 300, Y: 40}, scrollview.ColorGray)
//	    },
//	    Refresh: func(it scrollview.Item, i int) {
//	        it.(*scrollview.Block).Bind(i, rows[i])
//	    },
//	}
type Block struct {
	Index  int    // Index the block is currently bound to
	Label  string // Text shown by backends that render text
	Fill   uint32
	Border uint32

	size     Vec2
	active   bool
	disposed bool
}

// NewBlock creates an unbound block.
func NewBlock(size Vec2, fill uint32) *Block {
	return &Block{Index: -1, Fill: fill, size: size}
}

// Bind points the block at a new index.
func (b *Block) Bind(index int, label string) {
	b.Index = index
	b.Label = label
}

// Text returns the block's label.
func (b *Block) Text() string { return b.Label }

// Size returns the block's size.
func (b *Block) Size() Vec2 { return b.size }

// SetSize changes the block's size. Mounted blocks pick it up on the next
// layout pass.
func (b *Block) SetSize(size Vec2) { b.size = size }

// SetActive shows or hides the block.
func (b *Block) SetActive(active bool) { b.active = active }

// Active reports whether the block is shown.
func (b *Block) Active() bool { return b.active }

// Dispose marks the block released.
func (b *Block) Dispose() {
	b.disposed = true
	b.active = false
}

// Disposed reports whether Dispose was called.
func (b *Block) Disposed() bool { return b.disposed }

// Draw renders the block. Axis-aligned viewports get plain rectangles;
// rotated or sheared ones get a quad.
func (b *Block) Draw(dl *DrawList, p Placement, world Affine) {
	corners := p.WorldCorners(world)
	if world.B != 0 || world.C != 0 {
		dl.AddQuad(corners, b.Fill)
		return
	}

	x, y := minf(corners[0].X, corners[2].X), minf(corners[0].Y, corners[2].Y)
	w, h := absf(corners[2].X-corners[0].X), absf(corners[2].Y-corners[0].Y)
	dl.AddRect(x, y, w, h, b.Fill)
	if b.Border != 0 {
		dl.AddRectOutline(x, y, w, h, b.Border, 1)
	}
}
