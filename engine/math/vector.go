package math

import m "math"

// The functions in this file are the single implementation behind the Vec2,
// Vec3 and Vec4 methods. They take the component type first so callers can
// write Dot[float32](a, b) and let the vector type be inferred.
//
// Indices are always loop variables: a constant index above 1 is not valid
// for every type in Vector's type set.

// AddScalarAssign adds s to every component of v.
func AddScalarAssign[E Number, V Vector[E]](v *V, s E) {
	for i := 0; i < len(*v); i++ {
		(*v)[i] += s
	}
}

// SubScalarAssign subtracts s from every component of v.
func SubScalarAssign[E Number, V Vector[E]](v *V, s E) {
	for i := 0; i < len(*v); i++ {
		(*v)[i] -= s
	}
}

// MulScalarAssign multiplies every component of v by s.
func MulScalarAssign[E Number, V Vector[E]](v *V, s E) {
	for i := 0; i < len(*v); i++ {
		(*v)[i] *= s
	}
}

// DivScalarAssign divides every component of v by s.
func DivScalarAssign[E Number, V Vector[E]](v *V, s E) {
	for i := 0; i < len(*v); i++ {
		(*v)[i] /= s
	}
}

// AddAssign adds other to v component-wise. other is a copy and is never
// modified.
func AddAssign[E Number, V Vector[E]](v *V, other V) {
	for i := 0; i < len(*v); i++ {
		(*v)[i] += other[i]
	}
}

// SubAssign subtracts other from v component-wise.
func SubAssign[E Number, V Vector[E]](v *V, other V) {
	for i := 0; i < len(*v); i++ {
		(*v)[i] -= other[i]
	}
}

// MulAssign multiplies v by other component-wise.
func MulAssign[E Number, V Vector[E]](v *V, other V) {
	for i := 0; i < len(*v); i++ {
		(*v)[i] *= other[i]
	}
}

// DivAssign divides v by other component-wise.
func DivAssign[E Number, V Vector[E]](v *V, other V) {
	for i := 0; i < len(*v); i++ {
		(*v)[i] /= other[i]
	}
}

// AddScalar returns v + s.
func AddScalar[E Number, V Vector[E]](v V, s E) V {
	AddScalarAssign[E](&v, s)
	return v
}

// SubScalar returns v - s.
func SubScalar[E Number, V Vector[E]](v V, s E) V {
	SubScalarAssign[E](&v, s)
	return v
}

// MulScalar returns v * s.
func MulScalar[E Number, V Vector[E]](v V, s E) V {
	MulScalarAssign[E](&v, s)
	return v
}

// DivScalar returns v / s.
func DivScalar[E Number, V Vector[E]](v V, s E) V {
	DivScalarAssign[E](&v, s)
	return v
}

// Add returns left + right.
func Add[E Number, V Vector[E]](left, right V) V {
	AddAssign[E](&left, right)
	return left
}

// Sub returns left - right.
func Sub[E Number, V Vector[E]](left, right V) V {
	SubAssign[E](&left, right)
	return left
}

// Mul returns the component-wise product of left and right.
func Mul[E Number, V Vector[E]](left, right V) V {
	MulAssign[E](&left, right)
	return left
}

// Div returns the component-wise quotient of left and right.
func Div[E Number, V Vector[E]](left, right V) V {
	DivAssign[E](&left, right)
	return left
}

// Neg returns -v.
func Neg[E Number, V Vector[E]](v V) V {
	MulScalarAssign[E](&v, E(0)-1)
	return v
}

// Equal reports whether left and right are equal component by component.
// Floats are compared exactly; see AlmostEqualVec.
func Equal[E Number, V Vector[E]](left, right V) bool {
	for i := 0; i < len(left); i++ {
		if left[i] != right[i] {
			return false
		}
	}
	return true
}

// AlmostEqualVec reports whether every pair of components is within
// maxUlpDiff units in the last place.
func AlmostEqualVec[V Vector[float32]](left, right V, maxUlpDiff int64) bool {
	for i := 0; i < len(left); i++ {
		if !AlmostEqualUlps(left[i], right[i], maxUlpDiff) {
			return false
		}
	}
	return true
}

// Dot returns the sum of the component-wise products of left and right.
func Dot[E Number, V Vector[E]](left, right V) E {
	var d E
	for i := 0; i < len(left); i++ {
		d += left[i] * right[i]
	}
	return d
}

// Cross returns the right-handed cross product left × right.
func Cross[E Number](left, right Vec3[E]) Vec3[E] {
	return Vec3[E]{
		left[1]*right[2] - left[2]*right[1],
		left[2]*right[0] - left[0]*right[2],
		left[0]*right[1] - left[1]*right[0],
	}
}

// Length returns the euclidean norm of v.
func Length[E Number, V Vector[E]](v V) E {
	return E(m.Sqrt(float64(Dot[E](v, v))))
}

// Normalize returns v divided by its length. The zero vector yields NaN
// components.
func Normalize[E Number, V Vector[E]](v V) V {
	return DivScalar[E](v, Length[E](v))
}

// Distance returns the length of left - right.
func Distance[E Number, V Vector[E]](left, right V) E {
	return Length[E](Sub[E](left, right))
}
