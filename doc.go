/*
Package scrollview provides virtualized, recycling scroll containers for
lists and grids of arbitrary length.

# Overview

A RecycleView keeps only the items that intersect its viewport (plus a
margin of about one line) mounted in its content container. As the content
scrolls, lines leaving the viewport are recycled into a free pool and
rebound to the indices entering it. Item count is unknown up front: an
ItemProvider answers whether an index is valid, creates items, and rebinds
recycled ones.

Mounting or unmounting a line at the start edge would move every other item
by one line extent. The view compensates by shifting the content position
(and the scroller's drag anchors) the opposite way, so visible items keep
their on-screen positions and an in-flight drag is not disturbed.

A DefaultView is the non-recycling counterpart for short lists: every item
is mounted at once.

# Quick Start

	provider := scrollview.ProviderFuncs{
	    Valid: func(i int) bool { return i >= 0 && i < len(rows) },
	    Get: func(i int) scrollview.Item {
	        b := scrollview.NewBlock(scrollview.Vec2{X: 300, Y: 40}, scrollview.ColorGray)
	        b.Bind(i, rows[i])
	        return b
	    },
	    Refresh: func(it scrollview.Item, i int) {
	        it.(*scrollview.Block).Bind(i, rows[i])
	    },
	}

	vp := scrollview.Viewport{
	    Size:      scrollview.Vec2{X: 300, Y: 500},
	    Transform: scrollview.Translate(20, 20),
	}
	list, err := scrollview.NewRecycleView(vp, provider, scrollview.Spacing(8))
	if err != nil {
	    return err
	}
	defer list.Destroy()
	if err := list.Initialize(0); err != nil {
	    return err
	}

	// Frame loop
	renderer, _ := opengl.NewRenderer(1280, 720)
	adapter := opengl.NewGLFWInputAdapter(window)
	host := scrollview.NewHost(renderer, list)
	for !window.ShouldClose() {
	    glfw.PollEvents()
	    if err := host.Frame(adapter.Update(dt), dt); err != nil {
	        return err
	    }
	    adapter.EndFrame()
	    window.SwapBuffers()
	}

A terminal backend built on Bubble Tea lives in backend/terminal:

	terminal.Run(list, "rows")

# Components

	Window         Mounted index range [Start, End), the free pool, and the
	               four edge operations AddAtEnd, AddAtStart, RemoveAtEnd,
	               RemoveAtStart. Reconcile runs one edge pass.
	ItemProvider   Caller-supplied item source. ProviderFuncs adapts three
	               funcs.
	Compensate     Offset compensation for start-edge mutations.
	ContentBounds  World-space box of the content container.
	ViewportBounds World-space box of the viewport.
	Scroller       Drag, wheel, paging and inertia. Publishes gesture events.
	PointerRouter  Turns raw InputState into Scroller gestures.
	RecycleView    Ties the above together with a lifecycle.
	DefaultView    Non-recycling list with FitContent and SetIndex.
	Host           Drives views against a Renderer each frame.

# Lifecycle

	Uninitialized  Created, nothing mounted.
	Active         Seeded by Initialize; reacts to viewport changes.
	Inactive       SetActive(false). Viewport changes are ignored.
	Destroyed      Destroy released every item. All operations are no-ops.

Initialize and Refresh on an inactive view are ignored. On a destroyed view
they return ErrDestroyed.

# Options Reference

	Vertical() / Horizontal()     Scroll axis (default vertical)
	LineCount(n)                  Items per line; n > 1 makes a grid
	Spacing(px)                   Gap between lines
	CrossSpacing(px)              Gap between items of a line
	Pad(start, end)               Padding before the first and after the last line
	Inertia(on)                   Keep moving after a drag is released
	DecelerationRate(r)           Fraction of velocity kept per second
	ScrollSensitivity(px)         Units per wheel notch
	Movement(m)                   MovementUnrestricted or MovementClamped
	WithOpt(OptDragThreshold, px) Pointer travel before a press becomes a drag
	WithDiagnostics(fn)           Receive non-fatal problems

Custom keys use the typed option registry:

	var OptRowHeight = scrollview.NewOptKey[float32]("rowHeight", 24)
	h := scrollview.ApplyAndGet(opts, OptRowHeight)

# Config File

LoadConfig reads the same settings from TOML:

	[view]
	axis = "vertical"          # or "horizontal"
	line_count = 1
	spacing = 8
	cross_spacing = 0
	padding_start = 0
	padding_end = 0
	inertia = true
	deceleration_rate = 0.135
	scroll_sensitivity = 30
	movement = "unrestricted"  # or "clamped"
	drag_threshold = 4

	[log]
	verbose = false

# Input

	Press + move   Drag the content once past the drag threshold
	Release        End drag; inertia continues the motion
	Mouse Wheel    Scroll (hovered view only)
	Up / Down      Scroll one wheel notch (hovered view only)
	Page Up/Down   Scroll 80% of the viewport extent (hovered view only)

A RecycleView settles after every gesture: it reconciles until the window
covers the viewport again, so page jumps and fast drags never show blank
lines. Call Settle after SetViewport to do the same for a resize.

# Logging

Window mutations are logged through log/slog at debug level. SetVerbose
enables them; SetLogger replaces the handler. Diagnostics default to
LogDiagnostics, which logs configuration problems at error level and the
rest at warn or info.
*/
package scrollview
