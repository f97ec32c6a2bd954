package scrollview

// LineClipper computes the range of lines visible in a scrolled view whose
// lines all share one stride. It lets a view that holds every item skip
// the ones outside the viewport without testing each rectangle.
//
// Usage:
//
//	clipper := NewLineClipper(totalLines, stride, visibleExtent, scroll)
//	for line := clipper.StartLine; line < clipper.EndLine; line++ {
//	    // Draw the items of line
//	}
type LineClipper struct {
	StartLine  int     // First visible line (inclusive)
	EndLine    int     // Last visible line (exclusive)
	Stride     float32 // Line extent plus spacing
	TotalLines int
}

// NewLineClipper calculates the visible line range.
//
// Parameters:
//   - totalLines: Number of lines in the content
//   - stride: Extent of one line plus the spacing after it
//   - visibleExtent: Viewport extent along the scroll axis
//   - scroll: Distance the content has scrolled forward (0 at the first line)
func NewLineClipper(totalLines int, stride, visibleExtent, scroll float32) *LineClipper {
	if totalLines <= 0 || stride <= 0 {
		return &LineClipper{Stride: stride, TotalLines: max(totalLines, 0)}
	}

	startLine := max(int(scroll/stride), 0)

	// +2 for lines partially visible at either edge
	endLine := startLine + int(visibleExtent/stride) + 2

	startLine = min(startLine, totalLines)
	endLine = min(endLine, totalLines)

	return &LineClipper{
		StartLine:  startLine,
		EndLine:    endLine,
		Stride:     stride,
		TotalLines: totalLines,
	}
}

// Placement is a mounted item with its collection index and rectangle in
// viewport-local coordinates.
type Placement struct {
	Index int
	Item  Item
	Rect  Rect
}

// WorldCorners maps the placement's rectangle to world space through the
// viewport transform.
func (p Placement) WorldCorners(world Affine) [4]Vec2 {
	local := p.Rect.Corners()
	var out [4]Vec2
	for i, c := range local {
		out[i] = world.Apply(c)
	}
	return out
}

// Drawable is implemented by items that can render themselves.
type Drawable interface {
	Draw(dl *DrawList, p Placement, world Affine)
}

// visiblePlacements returns the items among content children [from, to)
// whose rectangles intersect the viewport. index maps a child position to
// its collection index.
func visiblePlacements(c *Content, vp Viewport, from, to int, index func(k int) int) []Placement {
	view := vp.Rect()
	var out []Placement
	for k := from; k < to; k++ {
		r := c.ItemRect(k)
		if !r.Intersects(view) {
			continue
		}
		out = append(out, Placement{Index: index(k), Item: c.Item(k), Rect: r})
	}
	return out
}

// renderPlacements draws every Drawable placement clipped to the viewport's
// world bounds.
func renderPlacements(dl *DrawList, vp Viewport, ps []Placement) {
	if dl == nil || len(ps) == 0 {
		return
	}
	world := vp.World()
	clip := vp.WorldBounds()
	dl.PushClipRect(clip.Min.X, clip.Min.Y, clip.Max.X, clip.Max.Y)
	for _, p := range ps {
		if d, ok := p.Item.(Drawable); ok {
			d.Draw(dl, p, world)
		}
	}
	dl.PopClipRect()
}
