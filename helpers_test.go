package scrollview

import "testing"

// testItem is a sized item that remembers its binding.
type testItem struct {
	index    int
	size     Vec2
	active   bool
	disposed bool
}

func (it *testItem) Size() Vec2            { return it.size }
func (it *testItem) SetActive(active bool) { it.active = active }
func (it *testItem) Dispose()              { it.disposed = true }

// testProvider serves the indices [first, n) with items of one size.
// Indices listed in missing make GetItem return nil.
type testProvider struct {
	first     int
	n         int
	size      Vec2
	missing   map[int]bool
	gets      int
	refreshes int
	built     []*testItem
}

func newTestProvider(n int, size Vec2) *testProvider {
	return &testProvider{n: n, size: size}
}

func (p *testProvider) IsValidIndex(i int) bool { return i >= p.first && i < p.n }

func (p *testProvider) GetItem(i int) Item {
	p.gets++
	if p.missing[i] {
		return nil
	}
	it := &testItem{index: i, size: p.size}
	p.built = append(p.built, it)
	return it
}

func (p *testProvider) RefreshItem(it Item, i int) {
	p.refreshes++
	it.(*testItem).index = i
}

// diagRecorder collects diagnostics.
type diagRecorder struct {
	got []Diagnostic
}

func (r *diagRecorder) record(d Diagnostic) { r.got = append(r.got, d) }

func (r *diagRecorder) count(kind DiagnosticKind) int {
	n := 0
	for _, d := range r.got {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

// mountedIndices returns the index each mounted item is bound to.
func mountedIndices(c *Content) []int {
	out := make([]int, c.Len())
	for k := range out {
		out[k] = c.Item(k).(*testItem).index
	}
	return out
}

// assertWindowOrder checks that mounted items are bound to start, start+1...
func assertWindowOrder(t *testing.T, w *Window) {
	t.Helper()
	if got := w.Content().Len(); got != w.Len() {
		t.Fatalf("content holds %d items, window range is %d", got, w.Len())
	}
	for k, idx := range mountedIndices(w.Content()) {
		if idx != w.Start()+k {
			t.Fatalf("child %d bound to %d, expected %d", k, idx, w.Start()+k)
		}
	}
}

// assertConserved checks that every instance built is either mounted or
// pooled.
func assertConserved(t *testing.T, w *Window) {
	t.Helper()
	if w.Created() != w.Len()+w.Pool().Len() {
		t.Errorf("created %d instances, mounted %d + pooled %d", w.Created(), w.Len(), w.Pool().Len())
	}
}

func approxBounds(a, b Bounds) bool {
	return approx(a.Min.X, b.Min.X) && approx(a.Min.Y, b.Min.Y) &&
		approx(a.Max.X, b.Max.X) && approx(a.Max.Y, b.Max.Y)
}

func approx(a, b float32) bool {
	return absf(a-b) < 1e-3
}

// settle reconciles until nothing changes and returns the pass count.
func settle(t *testing.T, w *Window, vp Viewport) int {
	t.Helper()
	for pass := 0; pass < 100; pass++ {
		if !w.Reconcile(ViewportBounds(vp), ContentBounds(w.Content(), vp)) {
			return pass
		}
	}
	t.Fatal("window did not settle in 100 passes")
	return 0
}
