package math

// NewVec2 creates and returns a new 2-element vector using the supplied values.
func NewVec2[E Number](x, y E) Vec2[E] {
	return Vec2[E]{x, y}
}

// NewVec2Zero returns a 2-component vector with all components set to 0.
func NewVec2Zero[E Number]() Vec2[E] {
	return Vec2[E]{}
}

// NewVec2One returns a 2-component vector with all components set to 1.
func NewVec2One[E Number]() Vec2[E] {
	return Vec2[E]{1, 1}
}

func (v Vec2[E]) X() E { return v[0] }
func (v Vec2[E]) Y() E { return v[1] }
func (v Vec2[E]) R() E { return v[0] }
func (v Vec2[E]) G() E { return v[1] }
func (v Vec2[E]) S() E { return v[0] }
func (v Vec2[E]) T() E { return v[1] }

func (v *Vec2[E]) SetX(x E) { v[0] = x }
func (v *Vec2[E]) SetY(y E) { v[1] = y }
func (v *Vec2[E]) SetR(r E) { v[0] = r }
func (v *Vec2[E]) SetG(g E) { v[1] = g }
func (v *Vec2[E]) SetS(s E) { v[0] = s }
func (v *Vec2[E]) SetT(t E) { v[1] = t }

// Dimension returns the number of components, 2.
func (v Vec2[E]) Dimension() int { return len(v) }

func (v *Vec2[E]) AddScalarAssign(s E) { AddScalarAssign[E](v, s) }
func (v *Vec2[E]) SubScalarAssign(s E) { SubScalarAssign[E](v, s) }
func (v *Vec2[E]) MulScalarAssign(s E) { MulScalarAssign[E](v, s) }
func (v *Vec2[E]) DivScalarAssign(s E) { DivScalarAssign[E](v, s) }
func (v *Vec2[E]) AddAssign(other Vec2[E]) { AddAssign[E](v, other) }
func (v *Vec2[E]) SubAssign(other Vec2[E]) { SubAssign[E](v, other) }

func (v Vec2[E]) AddScalar(s E) Vec2[E]     { return AddScalar[E](v, s) }
func (v Vec2[E]) SubScalar(s E) Vec2[E]     { return SubScalar[E](v, s) }
func (v Vec2[E]) MulScalar(s E) Vec2[E]     { return MulScalar[E](v, s) }
func (v Vec2[E]) DivScalar(s E) Vec2[E]     { return DivScalar[E](v, s) }
func (v Vec2[E]) Add(other Vec2[E]) Vec2[E] { return Add[E](v, other) }
func (v Vec2[E]) Sub(other Vec2[E]) Vec2[E] { return Sub[E](v, other) }
func (v Vec2[E]) Mul(other Vec2[E]) Vec2[E] { return Mul[E](v, other) }
func (v Vec2[E]) Div(other Vec2[E]) Vec2[E] { return Div[E](v, other) }
func (v Vec2[E]) Neg() Vec2[E]              { return Neg[E](v) }
func (v Vec2[E]) Equal(other Vec2[E]) bool  { return Equal[E](v, other) }

func (v Vec2[E]) Dot(other Vec2[E]) E      { return Dot[E](v, other) }
func (v Vec2[E]) Length() E                { return Length[E](v) }
func (v Vec2[E]) Normalize() Vec2[E]       { return Normalize[E](v) }
func (v Vec2[E]) Distance(other Vec2[E]) E { return Distance[E](v, other) }

// Vec3 returns a 3-component vector with v as x and y and the given z.
func (v Vec2[E]) Vec3(z E) Vec3[E] {
	return Vec3[E]{v[0], v[1], z}
}
