package scrollview

import "fmt"

// ItemProvider supplies item instances for logical indices.
type ItemProvider interface {
	// IsValidIndex reports whether i is part of the collection.
	IsValidIndex(i int) bool

	// GetItem builds a fresh instance bound to i, or returns nil when i is
	// invalid. It must never return an instance that is already mounted.
	GetItem(i int) Item

	// RefreshItem rebinds a pooled instance to i in place.
	RefreshItem(it Item, i int)
}

// ProviderFuncs adapts three plain functions to ItemProvider.
//
// Usage:
//
//	provider := scrollview.ProviderFuncs{
//	    Valid:   func(i int) bool { return i >= 0 && i < len(rows) },
//	    Get:     func(i int) scrollview.Item { return newRow(rows[i]) },
//	    Refresh: func(it scrollview.Item, i int) { it.(*row).bind(rows[i]) },
//	}
type ProviderFuncs struct {
	Valid   func(i int) bool
	Get     func(i int) Item
	Refresh func(it Item, i int)
}

// IsValidIndex implements ItemProvider.
func (p ProviderFuncs) IsValidIndex(i int) bool { return p.Valid(i) }

// GetItem implements ItemProvider.
func (p ProviderFuncs) GetItem(i int) Item { return p.Get(i) }

// RefreshItem implements ItemProvider.
func (p ProviderFuncs) RefreshItem(it Item, i int) { p.Refresh(it, i) }

// Validate reports ErrMissingCallback naming the first unset function.
func (p ProviderFuncs) Validate() error {
	switch {
	case p.Valid == nil:
		return fmt.Errorf("IsValidIndex: %w", ErrMissingCallback)
	case p.Get == nil:
		return fmt.Errorf("GetItem: %w", ErrMissingCallback)
	case p.Refresh == nil:
		return fmt.Errorf("RefreshItem: %w", ErrMissingCallback)
	}
	return nil
}

// validateProvider checks a provider eagerly so a missing callback is a
// configuration error rather than a nil call mid-scroll.
func validateProvider(p ItemProvider) error {
	if p == nil {
		return fmt.Errorf("provider: %w", ErrMissingCallback)
	}
	if v, ok := p.(interface{ Validate() error }); ok {
		return v.Validate()
	}
	return nil
}
