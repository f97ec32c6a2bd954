package scrollview

// Affine is a 2D affine transform:
//
//	x' = A*x + C*y + Tx
//	y' = B*x + D*y + Ty
type Affine struct {
	A, B, C, D float32
	Tx, Ty     float32
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Translate returns a pure translation.
func Translate(x, y float32) Affine {
	return Affine{A: 1, D: 1, Tx: x, Ty: y}
}

// Scale returns a pure scale about the origin.
func Scale(sx, sy float32) Affine {
	return Affine{A: sx, D: sy}
}

// Apply maps a point through the transform.
func (m Affine) Apply(p Vec2) Vec2 {
	return Vec2{
		X: m.A*p.X + m.C*p.Y + m.Tx,
		Y: m.B*p.X + m.D*p.Y + m.Ty,
	}
}

// Then returns the transform that applies m first and next second.
func (m Affine) Then(next Affine) Affine {
	return Affine{
		A:  next.A*m.A + next.C*m.B,
		B:  next.B*m.A + next.D*m.B,
		C:  next.A*m.C + next.C*m.D,
		D:  next.B*m.C + next.D*m.D,
		Tx: next.A*m.Tx + next.C*m.Ty + next.Tx,
		Ty: next.B*m.Tx + next.D*m.Ty + next.Ty,
	}
}

// Inverse returns the inverse transform.
// A degenerate transform (zero determinant) inverts to the identity.
func (m Affine) Inverse() Affine {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return Identity()
	}
	inv := 1 / det
	return Affine{
		A:  m.D * inv,
		B:  -m.B * inv,
		C:  -m.C * inv,
		D:  m.A * inv,
		Tx: (m.C*m.Ty - m.D*m.Tx) * inv,
		Ty: (m.B*m.Tx - m.A*m.Ty) * inv,
	}
}

// IsZero reports whether the transform is the zero value.
// The zero value is treated as identity by Viewport.
func (m Affine) IsZero() bool {
	return m == Affine{}
}
