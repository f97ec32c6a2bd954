package scrollview

import "fmt"

// DefaultView is the non-recycling scroll container: it mounts every item
// of the collection at once. It suits short collections where recycling
// buys nothing, and shares the content, scroller and drawing code with
// RecycleView.
//
// Movement defaults to MovementClamped since the whole collection is
// mounted and both edges are known.
type DefaultView struct {
	viewport Viewport
	content  *Content
	scroller *Scroller
	router   *PointerRouter
	diag     DiagnosticFunc
	life     lifecycle

	indices      []int   // Collection index of each mounted child
	originalSize float32 // Viewport extent before the first FitContent; <0 until recorded
}

// NewDefaultView creates an empty default view.
func NewDefaultView(vp Viewport, opts ...Option) (*DefaultView, error) {
	o := applyOptions(opts)
	layout := lineLayoutFrom(o)
	if err := validateLineCount(layout.LineCount); err != nil {
		return nil, fmt.Errorf("new default view: %w", err)
	}
	if !HasOpt(o, OptMovement) {
		WithOpt(OptMovement, MovementClamped)(&o)
	}

	v := &DefaultView{
		viewport:     vp,
		diag:         diagnosticsFrom(o),
		originalSize: -1,
	}
	v.content = NewContent(layout)
	v.scroller = newScroller(&v.viewport, v.content, o)
	v.scroller.limits = completeContent{}
	v.router = newPointerRouter(v.scroller, func() Bounds { return v.viewport.WorldBounds() }, GetOpt(o, OptDragThreshold))
	return v, nil
}

// State returns the lifecycle state.
func (v *DefaultView) State() State { return v.life.state }

// Viewport returns the viewport.
func (v *DefaultView) Viewport() Viewport { return v.viewport }

// SetViewport replaces the viewport.
func (v *DefaultView) SetViewport(vp Viewport) { v.viewport = vp }

// Content returns the content container.
func (v *DefaultView) Content() *Content { return v.content }

// Scroller returns the viewport controller.
func (v *DefaultView) Scroller() *Scroller { return v.scroller }

// Len returns the number of mounted items.
func (v *DefaultView) Len() int { return v.content.Len() }

// Refresh disposes every mounted item and mounts getItem(i) for each i in
// [0, size). Nil items are skipped with a diagnostic. The content returns
// to its origin. Does nothing while the view is inactive.
func (v *DefaultView) Refresh(size int, getItem func(i int) Item) error {
	if !v.life.usable() {
		if v.life.state == StateDestroyed {
			return ErrDestroyed
		}
		return nil
	}
	if getItem == nil {
		err := fmt.Errorf("refresh: GetItem: %w", ErrMissingCallback)
		v.diag(Diagnostic{Kind: DiagConfig, Index: -1, Err: err})
		return err
	}

	v.clear()
	for i, n := 0, max(size, 0); i < n; i++ {
		it := getItem(i)
		if it == nil {
			v.diag(Diagnostic{
				Kind:  DiagProviderMiss,
				Index: i,
				Err:   fmt.Errorf("index %d: %w", i, ErrProviderMiss),
			})
			continue
		}
		it.SetActive(true)
		v.content.append(it)
		v.indices = append(v.indices, i)
	}

	v.content.Position = Vec2{}
	v.content.Relayout()
	v.scroller.reset()
	v.life.markSeeded()

	if verbose() {
		logger.Debug("default view refreshed", "size", size, "mounted", v.content.Len())
	}
	return nil
}

// clear disposes every mounted item. Returns how many were released.
func (v *DefaultView) clear() int {
	n := 0
	for v.content.Len() > 0 {
		dispose(v.content.removeLast())
		n++
	}
	v.indices = v.indices[:0]
	return n
}

// FitContent shrinks the viewport along the scroll axis to the content
// extent when the content is smaller than the viewport was originally.
// It grows back to the original extent once the content no longer fits.
// Returns true if the viewport size changed.
func (v *DefaultView) FitContent() bool {
	axis := v.content.layout.Axis
	if v.originalSize < 0 {
		v.originalSize = axis.Along(v.viewport.Size)
	}

	want := minf(axis.Along(v.content.Size()), v.originalSize)
	if want == axis.Along(v.viewport.Size) {
		return false
	}
	v.viewport.Size = axis.Vec(want, axis.Across(v.viewport.Size))
	return true
}

// SetIndex scrolls so the line holding the k-th mounted item sits at the
// leading edge, bounded so the content never scrolls past its end.
func (v *DefaultView) SetIndex(k int) error {
	if k < 0 || k >= v.content.Len() {
		err := fmt.Errorf("set index %d: %w", k, ErrIndexOutOfRange)
		v.diag(Diagnostic{Kind: DiagOutOfRange, Index: k, Err: err})
		return err
	}

	axis := v.content.layout.Axis
	r := v.content.ItemRect(k)
	local := axis.Along(Vec2{X: r.X, Y: r.Y}) - axis.Along(v.content.Position)
	target := local - v.content.layout.Padding.Start

	limit := maxf(axis.Along(v.content.Size())-axis.Along(v.viewport.Size), 0)
	target = clampf(target, 0, limit)

	v.scroller.SetPosition(axis.Vec(-target, axis.Across(v.content.Position)))
	return nil
}

// Tick advances inertia by dt seconds.
func (v *DefaultView) Tick(dt float32) {
	if v.life.state != StateActive {
		return
	}
	v.scroller.Tick(dt)
}

// HandleInput turns pointer and wheel input into gestures.
func (v *DefaultView) HandleInput(in *InputState) {
	if v.life.state != StateActive {
		return
	}
	v.router.Route(in)
}

// SetActive shows or hides the view.
func (v *DefaultView) SetActive(active bool) {
	if !active {
		v.router.cancel()
		v.scroller.StopMovement()
	}
	v.life.setActive(active)
}

// Destroy disposes every mounted item. Returns the number released.
func (v *DefaultView) Destroy() int {
	if v.life.state == StateDestroyed {
		return 0
	}
	n := v.clear()
	v.life.state = StateDestroyed
	return n
}

// VisibleItems returns the mounted items that intersect the viewport.
// When every line has the same extent, only the lines the clipper reports
// are tested.
func (v *DefaultView) VisibleItems() []Placement {
	from, to := 0, v.content.Len()
	if stride, ok := v.content.uniformStride(); ok {
		axis := v.content.layout.Axis
		lc := v.content.layout.LineCount
		scroll := -axis.Along(v.content.Position) - v.content.layout.Padding.Start
		clipper := NewLineClipper(v.content.lines(), stride, axis.Along(v.viewport.Size), scroll)
		from = clipper.StartLine * lc
		to = min(clipper.EndLine*lc, v.content.Len())
	}
	return visiblePlacements(v.content, v.viewport, from, to, func(k int) int {
		return v.indices[k]
	})
}

// Render draws the visible items into dl, clipped to the viewport.
func (v *DefaultView) Render(dl *DrawList) {
	if v.life.state != StateActive {
		return
	}
	renderPlacements(dl, v.viewport, v.VisibleItems())
}
