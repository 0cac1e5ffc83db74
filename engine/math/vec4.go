package math

// NewVec4 creates and returns a new 4-element vector using the supplied values.
func NewVec4[E Number](x, y, z, w E) Vec4[E] {
	return Vec4[E]{x, y, z, w}
}

// NewVec4Zero returns a 4-component vector with all components set to 0.
func NewVec4Zero[E Number]() Vec4[E] {
	return Vec4[E]{}
}

// NewVec4One returns a 4-component vector with all components set to 1.
func NewVec4One[E Number]() Vec4[E] {
	return Vec4[E]{1, 1, 1, 1}
}

func (v Vec4[E]) X() E { return v[0] }
func (v Vec4[E]) Y() E { return v[1] }
func (v Vec4[E]) Z() E { return v[2] }
func (v Vec4[E]) W() E { return v[3] }
func (v Vec4[E]) R() E { return v[0] }
func (v Vec4[E]) G() E { return v[1] }
func (v Vec4[E]) B() E { return v[2] }
func (v Vec4[E]) A() E { return v[3] }
func (v Vec4[E]) S() E { return v[0] }
func (v Vec4[E]) T() E { return v[1] }
func (v Vec4[E]) P() E { return v[2] }
func (v Vec4[E]) Q() E { return v[3] }

func (v *Vec4[E]) SetX(x E) { v[0] = x }
func (v *Vec4[E]) SetY(y E) { v[1] = y }
func (v *Vec4[E]) SetZ(z E) { v[2] = z }
func (v *Vec4[E]) SetW(w E) { v[3] = w }
func (v *Vec4[E]) SetR(r E) { v[0] = r }
func (v *Vec4[E]) SetG(g E) { v[1] = g }
func (v *Vec4[E]) SetB(b E) { v[2] = b }
func (v *Vec4[E]) SetA(a E) { v[3] = a }
func (v *Vec4[E]) SetS(s E) { v[0] = s }
func (v *Vec4[E]) SetT(t E) { v[1] = t }
func (v *Vec4[E]) SetP(p E) { v[2] = p }
func (v *Vec4[E]) SetQ(q E) { v[3] = q }

// Dimension returns the number of components, 4.
func (v Vec4[E]) Dimension() int { return len(v) }

func (v *Vec4[E]) AddScalarAssign(s E) { AddScalarAssign[E](v, s) }
func (v *Vec4[E]) SubScalarAssign(s E) { SubScalarAssign[E](v, s) }
func (v *Vec4[E]) MulScalarAssign(s E) { MulScalarAssign[E](v, s) }
func (v *Vec4[E]) DivScalarAssign(s E) { DivScalarAssign[E](v, s) }
func (v *Vec4[E]) AddAssign(other Vec4[E]) { AddAssign[E](v, other) }
func (v *Vec4[E]) SubAssign(other Vec4[E]) { SubAssign[E](v, other) }

func (v Vec4[E]) AddScalar(s E) Vec4[E]     { return AddScalar[E](v, s) }
func (v Vec4[E]) SubScalar(s E) Vec4[E]     { return SubScalar[E](v, s) }
func (v Vec4[E]) MulScalar(s E) Vec4[E]     { return MulScalar[E](v, s) }
func (v Vec4[E]) DivScalar(s E) Vec4[E]     { return DivScalar[E](v, s) }
func (v Vec4[E]) Add(other Vec4[E]) Vec4[E] { return Add[E](v, other) }
func (v Vec4[E]) Sub(other Vec4[E]) Vec4[E] { return Sub[E](v, other) }
func (v Vec4[E]) Mul(other Vec4[E]) Vec4[E] { return Mul[E](v, other) }
func (v Vec4[E]) Div(other Vec4[E]) Vec4[E] { return Div[E](v, other) }
func (v Vec4[E]) Neg() Vec4[E]              { return Neg[E](v) }
func (v Vec4[E]) Equal(other Vec4[E]) bool  { return Equal[E](v, other) }

func (v Vec4[E]) Dot(other Vec4[E]) E      { return Dot[E](v, other) }
func (v Vec4[E]) Length() E                { return Length[E](v) }
func (v Vec4[E]) Normalize() Vec4[E]       { return Normalize[E](v) }
func (v Vec4[E]) Distance(other Vec4[E]) E { return Distance[E](v, other) }

// ToVec3 returns the x, y and z components, dropping w.
func (v Vec4[E]) ToVec3() Vec3[E] {
	return Vec3[E]{v[0], v[1], v[2]}
}
