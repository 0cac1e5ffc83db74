package math

// NewVec3 creates and returns a new 3-element vector using the supplied values.
func NewVec3[E Number](x, y, z E) Vec3[E] {
	return Vec3[E]{x, y, z}
}

// NewVec3Zero returns a 3-component vector with all components set to 0.
func NewVec3Zero[E Number]() Vec3[E] {
	return Vec3[E]{}
}

// NewVec3One returns a 3-component vector with all components set to 1.
func NewVec3One[E Number]() Vec3[E] {
	return Vec3[E]{1, 1, 1}
}

// NewVec3Up returns a 3-component vector pointing up (0, 1, 0).
func NewVec3Up[E Number]() Vec3[E] {
	return Vec3[E]{0, 1, 0}
}

func (v Vec3[E]) X() E { return v[0] }
func (v Vec3[E]) Y() E { return v[1] }
func (v Vec3[E]) Z() E { return v[2] }
func (v Vec3[E]) R() E { return v[0] }
func (v Vec3[E]) G() E { return v[1] }
func (v Vec3[E]) B() E { return v[2] }
func (v Vec3[E]) S() E { return v[0] }
func (v Vec3[E]) T() E { return v[1] }
func (v Vec3[E]) P() E { return v[2] }

func (v *Vec3[E]) SetX(x E) { v[0] = x }
func (v *Vec3[E]) SetY(y E) { v[1] = y }
func (v *Vec3[E]) SetZ(z E) { v[2] = z }
func (v *Vec3[E]) SetR(r E) { v[0] = r }
func (v *Vec3[E]) SetG(g E) { v[1] = g }
func (v *Vec3[E]) SetB(b E) { v[2] = b }
func (v *Vec3[E]) SetS(s E) { v[0] = s }
func (v *Vec3[E]) SetT(t E) { v[1] = t }
func (v *Vec3[E]) SetP(p E) { v[2] = p }

// Dimension returns the number of components, 3.
func (v Vec3[E]) Dimension() int { return len(v) }

func (v *Vec3[E]) AddScalarAssign(s E) { AddScalarAssign[E](v, s) }
func (v *Vec3[E]) SubScalarAssign(s E) { SubScalarAssign[E](v, s) }
func (v *Vec3[E]) MulScalarAssign(s E) { MulScalarAssign[E](v, s) }
func (v *Vec3[E]) DivScalarAssign(s E) { DivScalarAssign[E](v, s) }
func (v *Vec3[E]) AddAssign(other Vec3[E]) { AddAssign[E](v, other) }
func (v *Vec3[E]) SubAssign(other Vec3[E]) { SubAssign[E](v, other) }

func (v Vec3[E]) AddScalar(s E) Vec3[E]     { return AddScalar[E](v, s) }
func (v Vec3[E]) SubScalar(s E) Vec3[E]     { return SubScalar[E](v, s) }
func (v Vec3[E]) MulScalar(s E) Vec3[E]     { return MulScalar[E](v, s) }
func (v Vec3[E]) DivScalar(s E) Vec3[E]     { return DivScalar[E](v, s) }
func (v Vec3[E]) Add(other Vec3[E]) Vec3[E] { return Add[E](v, other) }
func (v Vec3[E]) Sub(other Vec3[E]) Vec3[E] { return Sub[E](v, other) }
func (v Vec3[E]) Mul(other Vec3[E]) Vec3[E] { return Mul[E](v, other) }
func (v Vec3[E]) Div(other Vec3[E]) Vec3[E] { return Div[E](v, other) }
func (v Vec3[E]) Neg() Vec3[E]              { return Neg[E](v) }
func (v Vec3[E]) Equal(other Vec3[E]) bool  { return Equal[E](v, other) }

func (v Vec3[E]) Dot(other Vec3[E]) E        { return Dot[E](v, other) }
func (v Vec3[E]) Cross(other Vec3[E]) Vec3[E] { return Cross(v, other) }
func (v Vec3[E]) Length() E                  { return Length[E](v) }
func (v Vec3[E]) Normalize() Vec3[E]         { return Normalize[E](v) }
func (v Vec3[E]) Distance(other Vec3[E]) E   { return Distance[E](v, other) }

// ToVec4 returns a new vec4 using v as the x, y and z components and w for w.
func (v Vec3[E]) ToVec4(w E) Vec4[E] {
	return Vec4[E]{v[0], v[1], v[2], w}
}

// Slice returns the components as a slice backed by a copy of v, in the
// x, y, z layout uniform uploads expect.
func (v Vec3[E]) Slice() []E {
	return v[:]
}
