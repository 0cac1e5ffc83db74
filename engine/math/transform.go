package math

import (
	"fmt"

	"github.com/chewxy/math32"
)

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * The zero value of Transform is the zero matrix, not the identity: start
 * from Identity or NewTransform rather than `var t Transform`.
 *
 * @return A new identity matrix
 */
func Identity() Transform {
	return Transform{
		X: Vec4f{1, 0, 0, 0},
		Y: Vec4f{0, 1, 0, 0},
		Z: Vec4f{0, 0, 1, 0},
		W: Vec4f{0, 0, 0, 1},
	}
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Identity()
}

// NewTransformFromColumns stores x, y, z and w unchanged as columns 0..3.
func NewTransformFromColumns(x, y, z, w Vec4f) Transform {
	return Transform{X: x, Y: y, Z: z, W: w}
}

// NewTransformFromValues builds a transform from sixteen values given column
// by column: the first four are column 0, the last four column 3.
func NewTransformFromValues(
	x0, x1, x2, x3 float32,
	y0, y1, y2, y3 float32,
	z0, z1, z2, z3 float32,
	w0, w1, w2, w3 float32,
) Transform {
	return Transform{
		X: Vec4f{x0, x1, x2, x3},
		Y: Vec4f{y0, y1, y2, y3},
		Z: Vec4f{z0, z1, z2, z3},
		W: Vec4f{w0, w1, w2, w3},
	}
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically used to
 * render flat or 2D scenes. Right handed: view space z in [-near, -far] maps
 * to clip space [-1, 1].
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param near The near clipping plane distance.
 * @param far The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func Orthographic(left, right, bottom, top, near, far float32) Transform {
	t := Identity()
	t.X[0] = 2 / (right - left)
	t.Y[1] = 2 / (top - bottom)
	t.Z[2] = -2 / (far - near)
	t.W[0] = -(right + left) / (right - left)
	t.W[1] = -(top + bottom) / (top - bottom)
	t.W[2] = -(far + near) / (far - near)
	return t
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d scenes.
 *
 * @param fov The vertical field of view in radians.
 * @param aspect The aspect ratio.
 * @param near The near clipping plane distance.
 * @param far The far clipping plane distance.
 * @return A new perspective matrix.
 */
func Perspective(fov, aspect, near, far float32) Transform {
	halfTanFov := math32.Tan(fov / 2)
	t := Identity()
	t.X[0] = 1 / (aspect * halfTanFov)
	t.Y[1] = 1 / halfTanFov
	t.Z[2] = -(far + near) / (far - near)
	t.Z[3] = -1
	t.W[2] = (-2 * far * near) / (far - near)
	t.W[3] = 0
	return t
}

/**
 * @brief Creates and returns a look-at matrix, or a matrix looking
 * at target from the perspective of position.
 *
 * The camera basis (right, up, direction) is written into rows 0-2, which
 * is the transpose of the camera's world orientation, and column 3 holds the
 * negated projections of position onto that basis.
 *
 * @param position The position of the matrix.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A matrix looking at target from the perspective of position.
 */
func LookAt(position, target, up Vec3f) Transform {
	dir := position.Sub(target).Normalize()
	right := up.Cross(dir).Normalize()
	camUp := dir.Cross(right)

	return Transform{
		X: Vec4f{right[0], camUp[0], dir[0], 0},
		Y: Vec4f{right[1], camUp[1], dir[1], 0},
		Z: Vec4f{right[2], camUp[2], dir[2], 0},
		W: Vec4f{-right.Dot(position), -camUp.Dot(position), -dir.Dot(position), 1},
	}
}

// Translate returns t multiplied on the right by a translation of v.
func (t Transform) Translate(v Vec3f) Transform {
	return t.TranslateXYZ(v[0], v[1], v[2])
}

// TranslateXYZ returns t multiplied on the right by a translation of (x, y, z).
func (t Transform) TranslateXYZ(x, y, z float32) Transform {
	translation := Identity()
	translation.W[0] = x
	translation.W[1] = y
	translation.W[2] = z
	return t.Mul(translation)
}

// Scale returns t multiplied on the right by diag(v.x, v.y, v.z, 1).
func (t Transform) Scale(v Vec3f) Transform {
	return t.ScaleXYZ(v[0], v[1], v[2])
}

// ScaleXYZ returns t multiplied on the right by diag(x, y, z, 1).
func (t Transform) ScaleXYZ(x, y, z float32) Transform {
	scale := Identity()
	scale.X[0] = x
	scale.Y[1] = y
	scale.Z[2] = z
	return t.Mul(scale)
}

// Rotate returns t multiplied on the right by a rotation of angle radians
// about axis. The axis is normalized first.
func (t Transform) Rotate(axis Vec3f, angle float32) Transform {
	return t.RotateXYZ(axis[0], axis[1], axis[2], angle)
}

// RotateXYZ returns t multiplied on the right by a rotation of angle radians
// about the axis (x, y, z).
func (t Transform) RotateXYZ(x, y, z, angle float32) Transform {
	unit := NewVec3(x, y, z).Normalize()
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	k := 1 - c

	rotation := Identity()

	rotation.X[0] = c + unit[0]*unit[0]*k
	rotation.X[1] = unit[1]*unit[0]*k + unit[2]*s
	rotation.X[2] = unit[2]*unit[0]*k - unit[1]*s

	rotation.Y[0] = unit[0]*unit[1]*k - unit[2]*s
	rotation.Y[1] = c + unit[1]*unit[1]*k
	rotation.Y[2] = unit[2]*unit[1]*k + unit[0]*s

	rotation.Z[0] = unit[0]*unit[2]*k + unit[1]*s
	rotation.Z[1] = unit[1]*unit[2]*k - unit[0]*s
	rotation.Z[2] = c + unit[2]*unit[2]*k

	return t.Mul(rotation)
}

// At returns column i (0: X, 1: Y, 2: Z, 3: W). It panics if i is out of range.
func (t Transform) At(i int) Vec4f {
	return *t.Col(i)
}

// Col returns a pointer to column i so it can be modified in place. It panics
// if i is out of range.
func (t *Transform) Col(i int) *Vec4f {
	switch i {
	case 0:
		return &t.X
	case 1:
		return &t.Y
	case 2:
		return &t.Z
	case 3:
		return &t.W
	}
	panic(fmt.Sprintf("math: transform column index %d out of range [0, 3]", i))
}

// Row rebuilds row i from the i-th component of every column.
func (t Transform) Row(i int) Vec4f {
	return Vec4f{t.X[i], t.Y[i], t.Z[i], t.W[i]}
}

/**
 * @brief Returns the result of multiplying t by other. Rows of t are
 * multiplied with columns of other.
 *
 * @param other The right hand side of the product.
 * @return The result of the matrix multiplication.
 */
func (t Transform) Mul(other Transform) Transform {
	row0 := t.Row(0)
	row1 := t.Row(1)
	row2 := t.Row(2)
	row3 := t.Row(3)

	column := func(c Vec4f) Vec4f {
		return Vec4f{row0.Dot(c), row1.Dot(c), row2.Dot(c), row3.Dot(c)}
	}
	return Transform{
		X: column(other.X),
		Y: column(other.Y),
		Z: column(other.Z),
		W: column(other.W),
	}
}

// MulAssign sets t to t * other.
func (t *Transform) MulAssign(other Transform) {
	*t = t.Mul(other)
}

// MulVec returns t * v, treating v as a column vector.
func (t Transform) MulVec(v Vec4f) Vec4f {
	return Vec4f{
		t.Row(0).Dot(v),
		t.Row(1).Dot(v),
		t.Row(2).Dot(v),
		t.Row(3).Dot(v),
	}
}

// Equal reports whether all sixteen values are exactly equal.
func (t Transform) Equal(other Transform) bool {
	return t == other
}

// AlmostEqual reports whether every pair of values is within maxUlpDiff
// units in the last place.
func (t Transform) AlmostEqual(other Transform, maxUlpDiff int64) bool {
	return AlmostEqualVec(t.X, other.X, maxUlpDiff) &&
		AlmostEqualVec(t.Y, other.Y, maxUlpDiff) &&
		AlmostEqualVec(t.Z, other.Z, maxUlpDiff) &&
		AlmostEqualVec(t.W, other.W, maxUlpDiff)
}

// Transposed returns a copy of t with rows and columns swapped.
func (t Transform) Transposed() Transform {
	return Transform{X: t.Row(0), Y: t.Row(1), Z: t.Row(2), W: t.Row(3)}
}

// Data flattens t column by column, the layout glUniformMatrix4fv expects
// with transpose disabled.
func (t Transform) Data() [16]float32 {
	var data [16]float32
	copy(data[0:4], t.X[:])
	copy(data[4:8], t.Y[:])
	copy(data[8:12], t.Z[:])
	copy(data[12:16], t.W[:])
	return data
}

func (t Transform) String() string {
	return fmt.Sprintf("[%v %v %v %v]", t.X, t.Y, t.Z, t.W)
}
