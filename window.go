package scrollview

import "fmt"

// removalMargin is the hysteresis applied to removal checks: an edge line is
// only evicted once the slack beyond the viewport exceeds one line plus 10%,
// so adding and removing the same line on consecutive ticks cannot oscillate.
const removalMargin = 1.1

// shifter receives start-edge compensation. The scroller implements it so
// that the content position, drag baseline and previous-frame position move
// together.
type shifter interface {
	Shift(c Compensation)
}

// Window manages the contiguous range of mounted indices [start, end) and
// the free pool. It decides which edge operations keep the mounted items
// covering the viewport.
//
// Window is not safe for concurrent use; like the rest of the package it is
// driven from the frame loop.
type Window struct {
	provider ItemProvider
	content  *Content
	pool     FreePool
	shift    shifter
	diag     DiagnosticFunc

	start, end int
	created    int // Instances built through GetItem
}

// NewWindow creates a window over content. Compensation is applied directly
// to the content position unless a shifter is attached by the owning view.
func NewWindow(provider ItemProvider, content *Content, diag DiagnosticFunc) *Window {
	if diag == nil {
		diag = LogDiagnostics
	}
	return &Window{provider: provider, content: content, diag: diag}
}

// Start returns the first mounted index (inclusive).
func (w *Window) Start() int { return w.start }

// End returns the index after the last mounted one (exclusive).
func (w *Window) End() int { return w.end }

// Len returns the number of mounted items.
func (w *Window) Len() int { return w.end - w.start }

// Pool returns the free pool.
func (w *Window) Pool() *FreePool { return &w.pool }

// Content returns the content container.
func (w *Window) Content() *Content { return w.content }

// Created returns how many instances the provider has built for this window.
// Together with Len and Pool().Len it accounts for every live instance.
func (w *Window) Created() int { return w.created }

// AtStart reports whether no line exists before the window.
func (w *Window) AtStart() bool {
	return !w.provider.IsValidIndex(w.start - w.lineCount())
}

// AtEnd reports whether no item exists after the window.
func (w *Window) AtEnd() bool {
	return !w.provider.IsValidIndex(w.end)
}

func (w *Window) lineCount() int { return w.content.layout.LineCount }
func (w *Window) axis() Axis { return w.content.layout.Axis }
func (w *Window) spacing() float32 { return w.content.layout.Spacing }

// applyShift moves content (and, through the shifter, the scroll baselines).
func (w *Window) applyShift(c Compensation) {
	if w.shift != nil {
		w.shift.Shift(c)
		return
	}
	c.Apply(&w.content.Position)
}

// release moves every mounted item into the pool.
func (w *Window) release() {
	for w.content.Len() > 0 {
		w.pool.Put(w.content.removeLast())
	}
	w.end = w.start
}

// Initialize re-seeds the window so that index is mounted and the viewport
// extent is covered. Items are added forward from the line containing index,
// then backward while the viewport is still not covered. When backward lines
// were needed, the content is scrolled so the requested item stays visible
// instead of leaving blank space at the end.
//
// An empty collection (index 0 invalid) leaves the window empty. Any other
// invalid index, or a valid one whose line start is invalid, is a caller
// error: it is reported and nothing changes. Zero-extent lines stop seeding
// after one line.
func (w *Window) Initialize(index int, viewExtent float32) error {
	if !w.provider.IsValidIndex(index) {
		if index == 0 {
			w.release()
			w.start, w.end = 0, 0
			w.content.Position = Vec2{}
			w.diag(Diagnostic{Kind: DiagEmpty, Index: index})
			return nil
		}
		err := fmt.Errorf("initialize at %d: %w", index, ErrIndexOutOfRange)
		w.diag(Diagnostic{Kind: DiagOutOfRange, Index: index, Err: err})
		return err
	}

	lc := w.lineCount()
	aligned := index - floorMod(index, lc)
	if !w.provider.IsValidIndex(aligned) {
		err := fmt.Errorf("initialize at %d: line start %d: %w", index, aligned, ErrIndexOutOfRange)
		w.diag(Diagnostic{Kind: DiagOutOfRange, Index: index, Err: err})
		return err
	}

	w.release()
	w.start, w.end = aligned, aligned
	w.content.Position = Vec2{}

	axis := w.axis()
	spacing := w.spacing()

	var size float32
	for size < viewExtent {
		if !w.AddAtEnd() {
			break
		}
		step := w.content.LineExtent(w.content.lines()-1) + spacing
		if step <= 0 {
			break
		}
		size += step
	}

	var backward float32
	for size < viewExtent {
		if !w.AddAtStart() {
			break
		}
		step := w.content.LineExtent(0) + spacing
		if step <= 0 {
			break
		}
		size += step
		backward += step
	}

	// AddAtStart compensated the position; the seed layout starts at origin.
	w.content.Position = Vec2{}
	w.content.Relayout()

	if k := index - w.start; k < w.content.Len() {
		itemExtent := axis.Along(w.content.Item(k).Size())
		viewSize := viewExtent - w.content.layout.Padding.Start
		if over := backward + itemExtent - viewSize; over > 0 {
			w.content.Position = axis.Vec(-over, 0)
		}
	}

	if verbose() {
		logger.Debug("window initialized",
			"index", index,
			"start", w.start,
			"end", w.end,
			"pooled", w.pool.Len())
	}
	return nil
}

// Reconcile compares viewport and content bounds and runs at most one edge
// operation per edge. The end edge is resolved before the start edge, both
// against the same bounds. Returns true if anything was mounted or evicted,
// in which case the caller should relayout.
func (w *Window) Reconcile(view, content Bounds) bool {
	axis := w.axis()

	var threshold float32
	if w.content.Len() > 0 {
		threshold = (axis.Along(w.content.Item(0).Size()) + w.spacing()) * removalMargin
	}

	viewMin, viewMax := axis.Along(view.Min), axis.Along(view.Max)
	contentMin, contentMax := axis.Along(content.Min), axis.Along(content.Max)

	changed := false
	if viewMax > contentMax {
		changed = w.AddAtEnd() || changed
	} else if viewMax < contentMax-threshold {
		changed = w.RemoveAtEnd() || changed
	}

	if viewMin < contentMin {
		changed = w.AddAtStart() || changed
	} else if viewMin > contentMin+threshold {
		changed = w.RemoveAtStart() || changed
	}
	return changed
}

// freeItemFor returns an instance bound to index i: a pooled instance
// rebound in place when one is available, otherwise a fresh one from the
// provider. Returns nil when i is invalid or the provider has nothing.
func (w *Window) freeItemFor(i int) Item {
	if !w.provider.IsValidIndex(i) {
		return nil
	}
	if it := w.pool.Pop(); it != nil {
		w.provider.RefreshItem(it, i)
		return it
	}
	it := w.provider.GetItem(i)
	if it == nil {
		w.diag(Diagnostic{
			Kind:  DiagProviderMiss,
			Index: i,
			Err:   fmt.Errorf("index %d: %w", i, ErrProviderMiss),
		})
		return nil
	}
	w.created++
	return it
}

// AddAtEnd mounts up to one line after the window. It stops early when an
// index has no item, so the last line may be partial. Returns false if
// nothing was mounted.
func (w *Window) AddAtEnd() bool {
	if !w.provider.IsValidIndex(w.end) {
		return false
	}

	added := 0
	for i, lc := 0, w.lineCount(); i < lc; i++ {
		it := w.freeItemFor(w.end)
		if it == nil {
			break
		}
		it.SetActive(true)
		w.content.append(it)
		w.end++
		added++
	}

	if added > 0 && verbose() {
		logger.Debug("add at end", "added", added, "start", w.start, "end", w.end)
	}
	return added > 0
}

// AddAtStart mounts one full line before the window, inserting each item as
// the first child so physical order keeps matching index order, then shifts
// the content backward by the line's extent plus spacing so the previously
// first item stays where it was on screen.
func (w *Window) AddAtStart() bool {
	lc := w.lineCount()
	if !w.provider.IsValidIndex(w.start - lc) {
		return false
	}

	var extent float32
	added := 0
	for i := 0; i < lc; i++ {
		it := w.freeItemFor(w.start - 1)
		if it == nil {
			// A partial line at the start would break line alignment.
			for ; added > 0; added-- {
				w.pool.Put(w.content.removeFirst())
				w.start++
			}
			return false
		}
		it.SetActive(true)
		w.content.prepend(it)
		extent = maxf(extent, w.axis().Along(it.Size()))
		w.start--
		added++
	}

	w.applyShift(Compensate(w.axis(), LineInserted, extent, w.spacing()))

	if verbose() {
		logger.Debug("add at start", "added", added, "start", w.start, "end", w.end)
	}
	return true
}

// RemoveAtStart evicts the first line into the pool and shifts the content
// forward by its extent plus spacing. It refuses when no line exists beyond
// the end of the window, which keeps a short tail from being over-evicted.
func (w *Window) RemoveAtStart() bool {
	lc := w.lineCount()
	if !w.provider.IsValidIndex(w.end + lc) {
		return false
	}
	n := min(lc, w.content.Len())
	if n == 0 {
		return false
	}

	var extent float32
	for i := 0; i < n; i++ {
		it := w.content.removeFirst()
		extent = maxf(extent, w.axis().Along(it.Size()))
		w.pool.Put(it)
		w.start++
	}

	w.applyShift(Compensate(w.axis(), LineRemoved, extent, w.spacing()))

	if verbose() {
		logger.Debug("remove at start", "removed", n, "start", w.start, "end", w.end)
	}
	return true
}

// RemoveAtEnd evicts the last line into the pool. When the last line is
// partial only its items are removed. It refuses when no line exists before
// the window.
func (w *Window) RemoveAtEnd() bool {
	lc := w.lineCount()
	n := (w.end - w.start) % lc
	if n == 0 {
		n = lc
	}
	if !w.provider.IsValidIndex(w.start - n) {
		return false
	}
	n = min(n, w.content.Len())
	if n == 0 {
		return false
	}

	for i := 0; i < n; i++ {
		w.pool.Put(w.content.removeLast())
		w.end--
	}

	if verbose() {
		logger.Debug("remove at end", "removed", n, "start", w.start, "end", w.end)
	}
	return true
}

// Rebind refreshes every mounted item in place for its current index. When
// an index has become invalid the window is truncated there and the tail
// goes back to the pool. Returns the number of items rebound.
func (w *Window) Rebind() int {
	for k := 0; k < w.content.Len(); k++ {
		i := w.start + k
		if !w.provider.IsValidIndex(i) {
			for w.content.Len() > k {
				w.pool.Put(w.content.removeLast())
			}
			w.end = i
			return k
		}
		w.provider.RefreshItem(w.content.Item(k), i)
	}
	return w.content.Len()
}

// Destroy disposes every mounted and pooled instance.
// Returns the number of instances released.
func (w *Window) Destroy() int {
	n := 0
	for w.content.Len() > 0 {
		dispose(w.content.removeLast())
		n++
	}
	w.end = w.start
	return n + w.pool.Drain()
}

// floorMod returns a mod m in [0, m).
func floorMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
