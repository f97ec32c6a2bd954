package scrollview

import "math"

// MovementType controls how far content may travel past its edges.
type MovementType uint8

const (
	MovementUnrestricted MovementType = iota // Content moves freely
	MovementClamped                          // Content stops at collection edges
)

// String returns the config name of the movement type.
func (m MovementType) String() string {
	if m == MovementClamped {
		return "clamped"
	}
	return "unrestricted"
}

// edgeLimits reports whether the collection is exhausted on either edge.
type edgeLimits interface {
	AtStart() bool
	AtEnd() bool
}

// completeContent is used by views that mount the whole collection.
type completeContent struct{}

func (completeContent) AtStart() bool { return true }
func (completeContent) AtEnd() bool   { return true }

// Scroller is the viewport controller: it moves the content in response to
// drag and wheel gestures, runs inertia each frame, and publishes every
// gesture so views can re-check their boundaries.
//
// Usage:
//
//	unsubscribe := scroller.Subscribe(func(e scrollview.Event) {
//	    log.Println("gesture", e.Kind)
//	})
//	defer unsubscribe()
type Scroller struct {
	viewport *Viewport
	content  *Content
	limits   edgeLimits
	events   eventBus

	axis             Axis
	inertia          bool
	decelerationRate float32
	sensitivity      float32
	movement         MovementType

	velocity     Vec2
	dragging     bool
	pointerStart Vec2 // Pointer (viewport-local) when the drag began
	dragStart    Vec2 // Content position when the drag began
	prevPosition Vec2 // Content position at the end of the previous tick
}

// newScroller creates a scroller driving content inside viewport.
func newScroller(viewport *Viewport, content *Content, o options) *Scroller {
	return &Scroller{
		viewport:         viewport,
		content:          content,
		axis:             GetOpt(o, OptScrollAxis),
		inertia:          GetOpt(o, OptInertia),
		decelerationRate: GetOpt(o, OptDecelerationRate),
		sensitivity:      GetOpt(o, OptScrollSensitivity),
		movement:         GetOpt(o, OptMovement),
		prevPosition:     content.Position,
	}
}

// Subscribe registers fn for every gesture event and returns a function that
// removes the subscription.
func (s *Scroller) Subscribe(fn EventFunc) (unsubscribe func()) {
	return s.events.subscribe(fn)
}

// Velocity returns the current content velocity in units per second.
func (s *Scroller) Velocity() Vec2 { return s.velocity }

// Dragging reports whether a drag is in progress.
func (s *Scroller) Dragging() bool { return s.dragging }

// Position returns the content position.
func (s *Scroller) Position() Vec2 { return s.content.Position }

// DragStart returns the content position baseline of the current drag.
func (s *Scroller) DragStart() Vec2 { return s.dragStart }

// PrevPosition returns the content position recorded by the previous tick.
func (s *Scroller) PrevPosition() Vec2 { return s.prevPosition }

// SetPosition moves the content and resets the velocity and baselines.
func (s *Scroller) SetPosition(p Vec2) {
	s.content.Position = s.clamp(p)
	s.reset()
}

// StopMovement zeroes the velocity.
func (s *Scroller) StopMovement() {
	s.velocity = Vec2{}
}

// reset syncs baselines to the current position and stops movement.
func (s *Scroller) reset() {
	s.velocity = Vec2{}
	s.dragStart = s.content.Position
	s.prevPosition = s.content.Position
}

// Shift applies start-edge compensation to the content position, the drag
// baseline and the previous-frame position together.
func (s *Scroller) Shift(c Compensation) {
	c.Apply(&s.content.Position, &s.dragStart, &s.prevPosition)
}

// toLocal converts a world-space pointer into viewport-local coordinates.
func (s *Scroller) toLocal(p Vec2) Vec2 {
	return s.viewport.World().Inverse().Apply(p)
}

// PotentialDrag is called when the pointer is pressed inside the viewport.
// It stops inertial movement so a touch catches the content.
func (s *Scroller) PotentialDrag(pointer Vec2) {
	s.velocity = Vec2{}
	s.events.publish(Event{Kind: EventPotentialDrag, Pointer: pointer})
}

// BeginDrag starts a drag at pointer (world coordinates).
func (s *Scroller) BeginDrag(pointer Vec2) {
	s.dragging = true
	s.pointerStart = s.toLocal(pointer)
	s.dragStart = s.content.Position
	s.events.publish(Event{Kind: EventBeginDrag, Pointer: pointer})
}

// Drag moves the content by the pointer's travel along the scroll axis
// since BeginDrag. Ignored when no drag is in progress.
func (s *Scroller) Drag(pointer Vec2) {
	if !s.dragging {
		return
	}
	delta := s.toLocal(pointer).Sub(s.pointerStart)
	along := s.axis.Along(s.dragStart) + s.axis.Along(delta)
	s.content.Position = s.clamp(s.axis.Vec(along, s.axis.Across(s.content.Position)))
	s.events.publish(Event{Kind: EventDrag, Pointer: pointer, Delta: delta})
}

// EndDrag finishes a drag. Velocity accumulated during the drag carries on
// as inertia.
func (s *Scroller) EndDrag(pointer Vec2) {
	if !s.dragging {
		return
	}
	s.dragging = false
	s.events.publish(Event{Kind: EventEndDrag, Pointer: pointer})
}

// Scroll applies a wheel delta. Positive Y moves the content down (toward
// earlier items). A horizontal scroller uses the dominant wheel component.
func (s *Scroller) Scroll(wheel Vec2) {
	amount := wheel.Y
	if s.axis == AxisHorizontal && absf(wheel.X) > absf(wheel.Y) {
		amount = wheel.X
	}
	if amount == 0 {
		return
	}
	s.move(amount * s.sensitivity)
	s.events.publish(Event{Kind: EventScroll, Delta: wheel})
}

// ScrollBy scrolls forward by amount (toward later items); negative amounts
// scroll backward.
func (s *Scroller) ScrollBy(amount float32) {
	if amount == 0 {
		return
	}
	s.move(-amount)
	s.events.publish(Event{Kind: EventScroll, Delta: s.axis.Vec(-amount, 0)})
}

// pageFraction is how much of the viewport one page step scrolls.
const pageFraction = 0.8

// Page scrolls by pages of the viewport extent; positive pages move forward.
func (s *Scroller) Page(pages int) {
	s.ScrollBy(float32(pages) * s.axis.Along(s.viewport.Size) * pageFraction)
}

// move offsets the content along the scroll axis.
func (s *Scroller) move(along float32) {
	p := s.content.Position
	p = s.axis.Vec(s.axis.Along(p)+along, s.axis.Across(p))
	s.content.Position = s.clamp(p)
}

// Tick advances inertia by dt seconds. While dragging, the velocity tracks
// the observed movement; after release it decays by the deceleration rate
// and stops below one unit per second.
func (s *Scroller) Tick(dt float32) {
	if dt <= 0 {
		return
	}

	if !s.dragging && s.velocity != (Vec2{}) {
		if s.inertia {
			decay := float32(math.Pow(float64(s.decelerationRate), float64(dt)))
			v := s.axis.Along(s.velocity) * decay
			if absf(v) < 1 {
				v = 0
			}
			s.velocity = s.axis.Vec(v, 0)
			s.move(v * dt)
		} else {
			s.velocity = Vec2{}
		}
	}

	if s.dragging && s.inertia {
		observed := s.content.Position.Sub(s.prevPosition).Mul(1 / dt)
		s.velocity = s.velocity.Lerp(observed, dt*10)
	}
	s.prevPosition = s.content.Position
}

// clamp keeps the content inside the collection edges for clamped movement.
func (s *Scroller) clamp(p Vec2) Vec2 {
	if s.movement != MovementClamped || s.limits == nil {
		return p
	}
	along := s.axis.Along(p)
	if s.limits.AtEnd() {
		viewExt := s.axis.Along(s.viewport.Size)
		contentExt := s.axis.Along(s.content.Size())
		if lowest := minf(0, viewExt-contentExt); along < lowest {
			along = lowest
			s.velocity = Vec2{}
		}
	}
	if s.limits.AtStart() && along > 0 {
		along = 0
		s.velocity = Vec2{}
	}
	return s.axis.Vec(along, s.axis.Across(p))
}
