package scrollview

// State is the lifecycle state of a view.
type State uint8

const (
	StateUninitialized State = iota // Constructed, never seeded
	StateActive                     // Seeded and reconciling
	StateInactive                   // Hidden; seeding and reconciling are no-ops
	StateDestroyed                  // Instances released; every operation is a no-op
)

// String returns a short name for the state.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateActive:
		return "active"
	case StateInactive:
		return "inactive"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// lifecycle tracks activeness separately from whether the view was seeded,
// so reactivating returns to the right state.
type lifecycle struct {
	state  State
	seeded bool
}

// usable reports whether seeding operations may run.
func (l *lifecycle) usable() bool {
	return l.state == StateUninitialized || l.state == StateActive
}

func (l *lifecycle) markSeeded() {
	l.seeded = true
	l.state = StateActive
}

// setActive toggles between inactive and the appropriate active state.
func (l *lifecycle) setActive(active bool) {
	if l.state == StateDestroyed {
		return
	}
	switch {
	case !active:
		l.state = StateInactive
	case l.seeded:
		l.state = StateActive
	default:
		l.state = StateUninitialized
	}
}
