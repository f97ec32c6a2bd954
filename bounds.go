package scrollview

import "math"

// ContentBounds projects the content rectangle into the viewport's local
// frame: the four world-space corners of the content are mapped through the
// inverse of the viewport transform and reduced to a min/max box.
//
// Nothing is cached; transforms may change every frame.
func ContentBounds(c *Content, vp Viewport) Bounds {
	if c == nil {
		return Bounds{}
	}
	toLocal := vp.World().Inverse()

	b := Bounds{
		Min: Vec2{X: math.MaxFloat32, Y: math.MaxFloat32},
		Max: Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32},
	}
	for _, corner := range c.WorldCorners(vp) {
		p := toLocal.Apply(corner)
		b.Min = Vec2{X: minf(b.Min.X, p.X), Y: minf(b.Min.Y, p.Y)}
		b.Max = Vec2{X: maxf(b.Max.X, p.X), Y: maxf(b.Max.Y, p.Y)}
	}
	return b
}

// ViewportBounds returns the viewport's own local rectangle as a box.
func ViewportBounds(vp Viewport) Bounds {
	return Bounds{Max: vp.Size}
}
