package scrollview

// EventKind names a gesture published by a Scroller.
type EventKind uint8

const (
	EventPotentialDrag EventKind = iota // Pointer pressed inside the viewport
	EventBeginDrag                      // Pointer moved past the drag threshold
	EventDrag                           // Pointer moved while dragging
	EventEndDrag                        // Pointer released after dragging
	EventScroll                         // Wheel or programmatic scroll
)

// String returns a short name for the kind.
func (k EventKind) String() string {
	switch k {
	case EventPotentialDrag:
		return "potential_drag"
	case EventBeginDrag:
		return "begin_drag"
	case EventDrag:
		return "drag"
	case EventEndDrag:
		return "end_drag"
	case EventScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// Event is a gesture notification. Pointer is in world coordinates for drag
// events; Delta is the wheel or scroll amount for EventScroll.
type Event struct {
	Kind    EventKind
	Pointer Vec2
	Delta   Vec2
}

// EventFunc handles gesture events.
type EventFunc func(Event)

type subscription struct {
	id int
	fn EventFunc
}

// eventBus fans events out to subscribers in subscription order.
type eventBus struct {
	subs   []subscription
	nextID int
}

// subscribe registers fn and returns a function that removes it.
func (b *eventBus) subscribe(fn EventFunc) func() {
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

func (b *eventBus) publish(e Event) {
	if len(b.subs) == 0 {
		return
	}
	// Copy so handlers may unsubscribe while being called.
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	for _, s := range subs {
		s.fn(e)
	}
}
