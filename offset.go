package scrollview

// EdgeChange says whether a line entered or left the start edge.
type EdgeChange int8

const (
	LineInserted EdgeChange = 1  // A line was mounted before the first item
	LineRemoved  EdgeChange = -1 // The first line was evicted
)

// Compensation is the offset that keeps already-visible items in place
// after a start-edge mutation. The same Delta must be applied to the content
// position, the drag start baseline and the previous-frame position so that
// velocity, which differentiates position across frames, does not see the
// synthetic jump.
type Compensation struct {
	Delta Vec2
}

// Compensate computes the offset for a start-edge change of one line whose
// largest item extent is lineExtent. Inserting moves the content backward
// along the scroll axis; removing moves it forward.
func Compensate(axis Axis, change EdgeChange, lineExtent, spacing float32) Compensation {
	step := (lineExtent + spacing) * float32(-change)
	return Compensation{Delta: axis.Vec(step, 0)}
}

// Apply adds Delta to every target.
func (c Compensation) Apply(targets ...*Vec2) {
	for _, t := range targets {
		*t = t.Add(c.Delta)
	}
}

// IsZero reports whether the compensation moves nothing.
func (c Compensation) IsZero() bool {
	return c.Delta == Vec2{}
}
