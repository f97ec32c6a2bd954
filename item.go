package scrollview

// Item is a visual instance mounted in a scroll view.
// Instances are recycled: the same Item is rebound to different indices
// over its lifetime, so it must not cache index-derived state outside
// what RefreshItem rewrites.
type Item interface {
	// Size returns the preferred size of the instance.
	Size() Vec2

	// SetActive shows or hides the instance. Pooled instances are inactive.
	SetActive(active bool)
}

// Disposer is implemented by items that hold resources needing explicit
// release when a view is destroyed or a default view is refreshed.
type Disposer interface {
	Dispose()
}

// dispose releases an item if it implements Disposer.
func dispose(it Item) {
	if d, ok := it.(Disposer); ok {
		d.Dispose()
	}
}
