package scrollview

// Viewport is the visible region of a scroll view.
// Its local rectangle spans [0, Size); Transform maps viewport-local
// coordinates to world (window) coordinates. The zero Transform is
// treated as identity.
type Viewport struct {
	Size      Vec2
	Transform Affine
}

// World returns the viewport-local to world transform.
func (vp Viewport) World() Affine {
	if vp.Transform.IsZero() {
		return Identity()
	}
	return vp.Transform
}

// Rect returns the viewport's local rectangle.
func (vp Viewport) Rect() Rect {
	return Rect{W: vp.Size.X, H: vp.Size.Y}
}

// WorldBounds returns the axis-aligned world box covered by the viewport.
func (vp Viewport) WorldBounds() Bounds {
	return transformedBounds(vp.Rect(), vp.World())
}

// Padding is inner spacing before the first and after the last line,
// measured along the scroll axis.
type Padding struct {
	Start, End float32
}

// LineLayout describes how mounted items are arranged inside the content.
type LineLayout struct {
	Axis         Axis
	LineCount    int     // Items sharing one cross-axis line (1 = list)
	Spacing      float32 // Gap between lines along the scroll axis
	CrossSpacing float32 // Gap between items of a line
	Padding      Padding
}

// Content is the container that holds mounted items in index order.
// Position is the content origin in viewport-local coordinates.
//
// Items are grouped into lines positionally: child k belongs to line
// k/LineCount. The window manager keeps the first mounted index aligned to
// a line boundary so positional lines match index lines.
type Content struct {
	Position Vec2

	layout LineLayout
	items  []Item

	// Cached layout, rebuilt lazily after mutations.
	dirty bool
	rects []Rect
	size  Vec2
}

// NewContent creates an empty content container.
func NewContent(layout LineLayout) *Content {
	if layout.LineCount < 1 {
		layout.LineCount = 1
	}
	return &Content{layout: layout, dirty: true}
}

// Layout returns the line layout.
func (c *Content) Layout() LineLayout {
	return c.layout
}

// setLayout replaces the line layout and invalidates cached rects.
func (c *Content) setLayout(layout LineLayout) {
	c.layout = layout
	c.dirty = true
}

// Len returns the number of mounted items.
func (c *Content) Len() int {
	return len(c.items)
}

// Item returns the k-th mounted item in physical order.
func (c *Content) Item(k int) Item {
	return c.items[k]
}

// Items returns the mounted items in physical order.
// The slice is owned by the content and must not be modified.
func (c *Content) Items() []Item {
	return c.items
}

func (c *Content) append(it Item) {
	c.items = append(c.items, it)
	c.dirty = true
}

func (c *Content) prepend(it Item) {
	c.items = append(c.items, nil)
	copy(c.items[1:], c.items)
	c.items[0] = it
	c.dirty = true
}

func (c *Content) removeFirst() Item {
	it := c.items[0]
	copy(c.items, c.items[1:])
	c.items[len(c.items)-1] = nil
	c.items = c.items[:len(c.items)-1]
	c.dirty = true
	return it
}

func (c *Content) removeLast() Item {
	n := len(c.items)
	it := c.items[n-1]
	c.items[n-1] = nil
	c.items = c.items[:n-1]
	c.dirty = true
	return it
}

// lines returns the number of (possibly partial) lines.
func (c *Content) lines() int {
	lc := c.layout.LineCount
	return (len(c.items) + lc - 1) / lc
}

// LineExtent returns the largest scroll-axis extent among the items of a
// line, or 0 when the line does not exist.
func (c *Content) LineExtent(line int) float32 {
	lc := c.layout.LineCount
	from := line * lc
	if line < 0 || from >= len(c.items) {
		return 0
	}
	to := min(from+lc, len(c.items))
	var ext float32
	for _, it := range c.items[from:to] {
		ext = maxf(ext, c.layout.Axis.Along(it.Size()))
	}
	return ext
}

// Relayout recomputes item rectangles and the content size.
func (c *Content) Relayout() {
	axis := c.layout.Axis
	lc := c.layout.LineCount

	var cross float32
	for _, it := range c.items {
		cross = maxf(cross, axis.Across(it.Size()))
	}

	c.rects = c.rects[:0]
	along := c.layout.Padding.Start
	for line := 0; line < c.lines(); line++ {
		if line > 0 {
			along += c.layout.Spacing
		}
		from := line * lc
		to := min(from+lc, len(c.items))
		for slot, it := range c.items[from:to] {
			sz := it.Size()
			origin := axis.Vec(along, float32(slot)*(cross+c.layout.CrossSpacing))
			c.rects = append(c.rects, Rect{X: origin.X, Y: origin.Y, W: sz.X, H: sz.Y})
		}
		along += c.LineExtent(line)
	}
	along += c.layout.Padding.End

	slots := min(lc, len(c.items))
	across := float32(slots) * cross
	if slots > 1 {
		across += float32(slots-1) * c.layout.CrossSpacing
	}
	c.size = axis.Vec(along, across)
	c.dirty = false
}

func (c *Content) ensureLayout() {
	if c.dirty {
		c.Relayout()
	}
}

// Size returns the content size implied by the mounted items.
func (c *Content) Size() Vec2 {
	c.ensureLayout()
	return c.size
}

// Rect returns the content rectangle in viewport-local coordinates.
func (c *Content) Rect() Rect {
	sz := c.Size()
	return Rect{X: c.Position.X, Y: c.Position.Y, W: sz.X, H: sz.Y}
}

// ItemRect returns the k-th item's rectangle in viewport-local coordinates.
func (c *Content) ItemRect(k int) Rect {
	c.ensureLayout()
	r := c.rects[k]
	r.X += c.Position.X
	r.Y += c.Position.Y
	return r
}

// World returns the content-local to world transform.
func (c *Content) World(vp Viewport) Affine {
	return Translate(c.Position.X, c.Position.Y).Then(vp.World())
}

// WorldCorners returns the four content corners in world space.
func (c *Content) WorldCorners(vp Viewport) [4]Vec2 {
	sz := c.Size()
	world := c.World(vp)
	local := Rect{W: sz.X, H: sz.Y}.Corners()
	var out [4]Vec2
	for i, p := range local {
		out[i] = world.Apply(p)
	}
	return out
}

// ItemWorldBounds returns the world box of the k-th mounted item.
func (c *Content) ItemWorldBounds(k int, vp Viewport) Bounds {
	return transformedBounds(c.ItemRect(k), vp.World())
}

// uniformStride reports the per-line stride when every mounted line has the
// same extent.
func (c *Content) uniformStride() (float32, bool) {
	n := c.lines()
	if n == 0 {
		return 0, false
	}
	first := c.LineExtent(0)
	for line := 1; line < n; line++ {
		if c.LineExtent(line) != first {
			return 0, false
		}
	}
	return first + c.layout.Spacing, first > 0
}

// transformedBounds maps a rectangle's corners through m and reduces them to
// an axis-aligned box.
func transformedBounds(r Rect, m Affine) Bounds {
	corners := r.Corners()
	first := m.Apply(corners[0])
	b := Bounds{Min: first, Max: first}
	for _, p := range corners[1:] {
		w := m.Apply(p)
		b.Min = Vec2{X: minf(b.Min.X, w.X), Y: minf(b.Min.Y, w.Y)}
		b.Max = Vec2{X: maxf(b.Max.X, w.X), Y: maxf(b.Max.Y, w.Y)}
	}
	return b
}
