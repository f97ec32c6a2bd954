package scrollview

import "fmt"

// RecycleView is a virtualized scroll container. Only the items needed to
// cover the viewport (plus about one line of overscan) are mounted; items
// scrolled out of view go to a free pool and are rebound to new indices as
// they scroll in.
//
// A plain list uses LineCount(1) (the default); a grid uses LineCount(n).
//
// Usage:
//
//	view, err := scrollview.NewRecycleView(
//	    scrollview.Viewport{Size: scrollview.Vec2{X: 300, Y: 500}},
//	    provider,
//	    scrollview.Spacing(10),
//	)
//	if err != nil {
//	    return err
//	}
//	view.Initialize(0)
//
//	// Each frame
//	view.HandleInput(input)
//	view.Tick(deltaTime)
//	view.Render(drawList)
type RecycleView struct {
	viewport Viewport
	content  *Content
	window   *Window
	scroller *Scroller
	router   *PointerRouter
	diag     DiagnosticFunc
	life     lifecycle

	// Line count requested through SetLineCount, applied on the next seed.
	pendingLineCount int

	unsubscribe  func()
	layoutPasses int
}

// NewRecycleView creates a recycle view over provider. The provider and the
// line count are validated eagerly; a misconfigured view is not created.
func NewRecycleView(vp Viewport, provider ItemProvider, opts ...Option) (*RecycleView, error) {
	o := applyOptions(opts)
	if err := validateProvider(provider); err != nil {
		return nil, fmt.Errorf("new recycle view: %w", err)
	}
	layout := lineLayoutFrom(o)
	if err := validateLineCount(layout.LineCount); err != nil {
		return nil, fmt.Errorf("new recycle view: %w", err)
	}

	v := &RecycleView{
		viewport:         vp,
		diag:             diagnosticsFrom(o),
		pendingLineCount: layout.LineCount,
	}
	v.content = NewContent(layout)
	v.window = NewWindow(provider, v.content, v.diag)
	v.scroller = newScroller(&v.viewport, v.content, o)
	v.scroller.limits = v.window
	v.window.shift = v.scroller
	v.router = newPointerRouter(v.scroller, func() Bounds { return v.viewport.WorldBounds() }, GetOpt(o, OptDragThreshold))

	// Every gesture re-checks the window boundaries.
	v.unsubscribe = v.scroller.Subscribe(func(Event) {
		v.Settle()
	})
	return v, nil
}

// State returns the lifecycle state.
func (v *RecycleView) State() State { return v.life.state }

// Viewport returns the viewport.
func (v *RecycleView) Viewport() Viewport { return v.viewport }

// SetViewport replaces the viewport (e.g. after a window resize). The window
// adapts on the next tick, OnViewportChanged or Settle call.
func (v *RecycleView) SetViewport(vp Viewport) { v.viewport = vp }

// Window returns the window manager.
func (v *RecycleView) Window() *Window { return v.window }

// Content returns the content container.
func (v *RecycleView) Content() *Content { return v.content }

// Scroller returns the viewport controller.
func (v *RecycleView) Scroller() *Scroller { return v.scroller }

// LayoutPasses returns how many forced relayouts boundary checks caused.
func (v *RecycleView) LayoutPasses() int { return v.layoutPasses }

// SetLineCount changes the items per line. It takes effect on the next
// Initialize or Refresh, which reject LineCountFlexible without touching the
// mounted items.
func (v *RecycleView) SetLineCount(n int) { v.pendingLineCount = n }

// checkConfig validates pending configuration and reports failures through
// the diagnostic channel.
func (v *RecycleView) checkConfig(op string, index int) error {
	if err := validateLineCount(v.pendingLineCount); err != nil {
		err = fmt.Errorf("%s: %w", op, err)
		v.diag(Diagnostic{Kind: DiagConfig, Index: index, Err: err})
		return err
	}
	return nil
}

// Initialize clears the window and seeds it so that index is visible and the
// viewport is covered. It is a no-op while the view is inactive.
func (v *RecycleView) Initialize(index int) error {
	switch v.life.state {
	case StateDestroyed:
		return ErrDestroyed
	case StateInactive:
		logger.Debug("initialize skipped, view inactive", "index", index)
		return nil
	}
	if err := v.checkConfig("initialize", index); err != nil {
		return err
	}

	prev := v.content.Layout()
	if prev.LineCount != v.pendingLineCount {
		next := prev
		next.LineCount = v.pendingLineCount
		v.content.setLayout(next)
	}

	extent := v.content.layout.Axis.Along(v.viewport.Size)
	if err := v.window.Initialize(index, extent); err != nil {
		v.content.setLayout(prev)
		return err
	}

	v.scroller.reset()
	v.content.Relayout()
	v.life.markSeeded()
	return nil
}

// JumpTo re-seeds the window at index. It is Initialize under a name that
// reads better at call sites that move an already running view.
func (v *RecycleView) JumpTo(index int) error {
	return v.Initialize(index)
}

// Refresh rebinds the mounted items in place, for when the underlying data
// changed but indices did not move. Items whose index became invalid are
// returned to the pool. An unseeded view is seeded at index 0, and a changed
// line count re-seeds at the current start.
func (v *RecycleView) Refresh() error {
	switch v.life.state {
	case StateDestroyed:
		return ErrDestroyed
	case StateInactive:
		return nil
	}
	if !v.life.seeded {
		return v.Initialize(0)
	}
	if err := v.checkConfig("refresh", v.window.Start()); err != nil {
		return err
	}

	if v.content.layout.LineCount != v.pendingLineCount {
		start := v.window.Start()
		if !v.window.provider.IsValidIndex(start) {
			start = 0
		}
		return v.Initialize(start)
	}

	n := v.window.Rebind()
	v.content.Relayout()
	logger.Debug("refresh", "rebound", n, "start", v.window.Start(), "end", v.window.End())
	return nil
}

// OnViewportChanged compares the viewport with the content and runs any
// needed edge operations. Returns true if the window changed, in which case
// the content has been laid out again.
func (v *RecycleView) OnViewportChanged() bool {
	if v.life.state != StateActive {
		return false
	}
	changed := v.window.Reconcile(ViewportBounds(v.viewport), ContentBounds(v.content, v.viewport))
	if changed {
		v.content.Relayout()
		v.layoutPasses++
	}
	return changed
}

// maxSettlePasses bounds the reconcile passes of one Settle call.
const maxSettlePasses = 256

// Settle reconciles until the window covers the viewport again. A pass runs
// at most one edge operation per edge, so a page jump or a resize needs
// several. Returns the number of passes that changed the window.
func (v *RecycleView) Settle() int {
	n := 0
	for pass := 0; pass < maxSettlePasses; pass++ {
		if !v.OnViewportChanged() {
			break
		}
		n++
	}
	return n
}

// Tick runs one frame: boundary reconciliation first, then inertia.
func (v *RecycleView) Tick(dt float32) {
	if v.life.state != StateActive {
		return
	}
	v.OnViewportChanged()
	v.scroller.Tick(dt)
}

// HandleInput turns pointer and wheel input into gestures.
func (v *RecycleView) HandleInput(in *InputState) {
	if v.life.state != StateActive {
		return
	}
	v.router.Route(in)
}

// SetActive shows or hides the view. While inactive, seeding and boundary
// checks are skipped.
func (v *RecycleView) SetActive(active bool) {
	if !active {
		v.router.cancel()
		v.scroller.StopMovement()
	}
	v.life.setActive(active)
}

// Destroy releases every mounted and pooled instance. The view cannot be
// used afterwards. Returns the number of instances released.
func (v *RecycleView) Destroy() int {
	if v.life.state == StateDestroyed {
		return 0
	}
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
	n := v.window.Destroy()
	v.life.state = StateDestroyed
	logger.Debug("recycle view destroyed", "released", n)
	return n
}

// VisibleItems returns the mounted items that intersect the viewport.
func (v *RecycleView) VisibleItems() []Placement {
	start := v.window.Start()
	return visiblePlacements(v.content, v.viewport, 0, v.content.Len(), func(k int) int {
		return start + k
	})
}

// Render draws the visible items into dl, clipped to the viewport.
func (v *RecycleView) Render(dl *DrawList) {
	if v.life.state != StateActive {
		return
	}
	renderPlacements(dl, v.viewport, v.VisibleItems())
}
