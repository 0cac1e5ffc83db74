package math

import (
	m "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	t1 = NewTransformFromColumns(
		Vec4f{1, 2, 3, 4},
		Vec4f{-4, 3, 2, 1},
		Vec4f{10, 11, 12, 13},
		Vec4f{1, 2, 2, 1},
	)
	t2 = NewTransformFromColumns(
		Vec4f{0, 1, -2, -3},
		Vec4f{1, 3, 5, 2},
		Vec4f{-9, 2, 3, 1},
		Vec4f{4, 5, 10, 1},
	)
)

// closeTo compares t against a column-major reference with a tolerance
// relative to the magnitude of each expected value.
func closeTo(t Transform, want [16]float32, tol float64) bool {
	have := t.Data()
	for i := range have {
		w := float64(want[i])
		if m.Abs(float64(have[i])-w) > tol*m.Max(1, m.Abs(w)) {
			return false
		}
	}
	return true
}

func TestIdentity(t *testing.T) {
	want := NewTransformFromValues(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
	if have := Identity(); have != want {
		t.Fatalf("Identity\nhave %v\nwant %v", have, want)
	}
	if have := NewTransform(); have != want {
		t.Fatalf("NewTransform\nhave %v\nwant %v", have, want)
	}
	var zero Transform
	if zero == want || zero.Data() != [16]float32{} {
		t.Fatalf("zero Transform\nhave %v\nwant the zero matrix", zero)
	}
	if have := Identity().Data(); have != mgl32.Ident4() {
		t.Fatalf("Identity.Data\nhave %v\nwant %v", have, mgl32.Ident4())
	}

	for _, x := range []Transform{t1, t2, Orthographic(-2, 3, -1, 4, 0.5, 30)} {
		if have := Identity().Mul(x); !have.Equal(x) {
			t.Fatalf("Identity * T\nhave %v\nwant %v", have, x)
		}
		if have := x.Mul(Identity()); !have.Equal(x) {
			t.Fatalf("T * Identity\nhave %v\nwant %v", have, x)
		}
	}
}

func TestEqual(t *testing.T) {
	a := NewTransformFromColumns(t1.X, t1.Y, t1.Z, t1.W)
	if !a.Equal(t1) {
		t.Fatal("Transform.Equal: identical transforms compared unequal")
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			b := a
			b.Col(i)[j] = m.Nextafter32(b.Col(i)[j], 100)
			if b.Equal(a) {
				t.Fatalf("Transform.Equal: change at column %d row %d not detected", i, j)
			}
			if !b.AlmostEqual(a, DefaultMaxUlpDiff) {
				t.Fatalf("Transform.AlmostEqual: one ulp at column %d row %d rejected", i, j)
			}
		}
	}
}

func TestTranslate(t *testing.T) {
	want := NewTransformFromValues(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		1, -2, 3, 1,
	)
	if have := Identity().TranslateXYZ(1, -2, 3); have != want {
		t.Fatalf("Identity.TranslateXYZ\nhave %v\nwant %v", have, want)
	}
	if have := Identity().Translate(Vec3f{1, -2, 3}); have != want {
		t.Fatalf("Identity.Translate\nhave %v\nwant %v", have, want)
	}

	p := Identity().TranslateXYZ(1, -2, 3).TranslateXYZ(4, 4, 4).MulVec(Vec4f{0, 0, 0, 1})
	if p != (Vec4f{5, 2, 7, 1}) {
		t.Fatalf("chained TranslateXYZ applied to origin\nhave %v\nwant [5 2 7 1]", p)
	}
	if have := Identity().TranslateXYZ(1, -2, 3).Data(); have != mgl32.Translate3D(1, -2, 3) {
		t.Fatalf("TranslateXYZ.Data\nhave %v\nwant %v", have, mgl32.Translate3D(1, -2, 3))
	}
}

func TestScale(t *testing.T) {
	want := NewTransformFromValues(
		2, 0, 0, 0,
		0, -3, 0, 0,
		0, 0, 0.5, 0,
		0, 0, 0, 1,
	)
	if have := Identity().ScaleXYZ(2, -3, 0.5); have != want {
		t.Fatalf("Identity.ScaleXYZ\nhave %v\nwant %v", have, want)
	}
	if have := Identity().Scale(Vec3f{2, -3, 0.5}); have != want {
		t.Fatalf("Identity.Scale\nhave %v\nwant %v", have, want)
	}
	// scale is applied before the translation
	p := Identity().TranslateXYZ(1, 1, 1).ScaleXYZ(2, 2, 2).MulVec(Vec4f{1, 2, 3, 1})
	if p != (Vec4f{3, 5, 7, 1}) {
		t.Fatalf("Translate then Scale\nhave %v\nwant [3 5 7 1]", p)
	}
}

func TestMul(t *testing.T) {
	want := NewTransformFromColumns(
		Vec4f{-27, -25, -28, -28},
		Vec4f{41, 70, 73, 74},
		Vec4f{14, 23, 15, 6},
		Vec4f{85, 135, 144, 152},
	)
	if have := t1.Mul(t2); have != want {
		t.Fatalf("Transform.Mul\nhave %v\nwant %v", have, want)
	}
	if have := mgl32.Mat4(t1.Data()).Mul4(mgl32.Mat4(t2.Data())); have != want.Data() {
		t.Fatalf("Transform.Mul disagrees with mgl32.Mat4.Mul4\nhave %v\nwant %v", have, want.Data())
	}

	a := t1
	a.MulAssign(t2)
	if a != want {
		t.Fatalf("Transform.MulAssign\nhave %v\nwant %v", a, want)
	}
	if t2 != NewTransformFromColumns(Vec4f{0, 1, -2, -3}, Vec4f{1, 3, 5, 2}, Vec4f{-9, 2, 3, 1}, Vec4f{4, 5, 10, 1}) {
		t.Fatal("Transform.MulAssign modified its operand")
	}
}

func TestMulVec(t *testing.T) {
	if have := t1.MulVec(Vec4f{11, -3, 4, 10}); have != (Vec4f{73, 77, 95, 103}) {
		t.Fatalf("Transform.MulVec\nhave %v\nwant [73 77 95 103]", have)
	}
}

func TestRowColumn(t *testing.T) {
	if have := t1.Row(2); have != (Vec4f{3, 2, 12, 2}) {
		t.Fatalf("Transform.Row(2)\nhave %v\nwant [3 2 12 2]", have)
	}
	if have := t1.At(2); have != (Vec4f{10, 11, 12, 13}) {
		t.Fatalf("Transform.At(2)\nhave %v\nwant [10 11 12 13]", have)
	}

	a := Identity()
	a.Col(3)[1] = 7
	if a.W != (Vec4f{0, 7, 0, 1}) {
		t.Fatalf("Transform.Col(3) write\nhave %v\nwant [0 7 0 1]", a.W)
	}

	tr := t1.Transposed()
	for i := 0; i < 4; i++ {
		if tr.At(i) != t1.Row(i) {
			t.Fatalf("Transform.Transposed column %d\nhave %v\nwant %v", i, tr.At(i), t1.Row(i))
		}
	}
	if tr.Transposed() != t1 {
		t.Fatal("Transform.Transposed is not an involution")
	}
}

func TestColumnOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Transform.At(4) did not panic")
		}
	}()
	_ = Identity().At(4)
}

func TestData(t *testing.T) {
	want := [16]float32{1, 2, 3, 4, -4, 3, 2, 1, 10, 11, 12, 13, 1, 2, 2, 1}
	if have := t1.Data(); have != want {
		t.Fatalf("Transform.Data\nhave %v\nwant %v", have, want)
	}
}

func TestOrthographic(t *testing.T) {
	left, right, bottom, top, near, far := float32(-2), float32(6), float32(-1), float32(3), float32(0.1), float32(100)
	want := NewTransformFromValues(
		2/(right-left), 0, 0, 0,
		0, 2/(top-bottom), 0, 0,
		0, 0, -2/(far-near), 0,
		-(right+left)/(right-left), -(top+bottom)/(top-bottom), -(far+near)/(far-near), 1,
	)
	have := Orthographic(left, right, bottom, top, near, far)
	if have != want {
		t.Fatalf("Orthographic\nhave %v\nwant %v", have, want)
	}
	if ref := mgl32.Ortho(left, right, bottom, top, near, far); !closeTo(have, ref, 1e-6) {
		t.Fatalf("Orthographic disagrees with mgl32.Ortho\nhave %v\nwant %v", have.Data(), ref)
	}

	// the near plane maps to -1 and the far plane to +1
	n := have.MulVec(Vec4f{0, 0, -near, 1})
	f := have.MulVec(Vec4f{0, 0, -far, 1})
	if m.Abs(float64(n[2]+1)) > 1e-6 || m.Abs(float64(f[2]-1)) > 1e-6 {
		t.Fatalf("Orthographic depth range\nhave %v, %v\nwant -1, 1", n[2], f[2])
	}
}

func TestPerspective(t *testing.T) {
	cases := []struct {
		fov, aspect, near, far float32
	}{
		{ToRadians(float32(45)), 800.0 / 600.0, 0.1, 100},
		{ToRadians(float32(90)), 1, 1, 10},
		{ToRadians(float32(60)), 16.0 / 9.0, 0.5, 1000},
	}
	for _, c := range cases {
		have := Perspective(c.fov, c.aspect, c.near, c.far)
		if ref := mgl32.Perspective(c.fov, c.aspect, c.near, c.far); !closeTo(have, ref, 1e-5) {
			t.Fatalf("Perspective(%v, %v, %v, %v)\nhave %v\nwant %v", c.fov, c.aspect, c.near, c.far, have.Data(), ref)
		}
		if have.Z[3] != -1 || have.W[3] != 0 {
			t.Fatalf("Perspective: w row\nhave %v, %v\nwant -1, 0", have.Z[3], have.W[3])
		}
		for _, v := range []float32{have.X[1], have.X[2], have.X[3], have.Y[0], have.Y[2], have.Y[3], have.Z[0], have.Z[1], have.W[0], have.W[1]} {
			if v != 0 {
				t.Fatalf("Perspective: non-zero off-diagonal value in %v", have)
			}
		}
	}
}

func TestRotate(t *testing.T) {
	angle := ToRadians(float32(45))
	axis := Vec3f{1, -2, 3}
	u := axis.Normalize()
	c := float32(m.Cos(float64(angle)))
	s := float32(m.Sin(float64(angle)))
	k := 1 - c

	want := NewTransformFromValues(
		c+u[0]*u[0]*k, u[1]*u[0]*k+u[2]*s, u[2]*u[0]*k-u[1]*s, 0,
		u[0]*u[1]*k-u[2]*s, c+u[1]*u[1]*k, u[2]*u[1]*k+u[0]*s, 0,
		u[0]*u[2]*k+u[1]*s, u[1]*u[2]*k-u[0]*s, c+u[2]*u[2]*k, 0,
		0, 0, 0, 1,
	)
	have := Identity().RotateXYZ(axis[0], axis[1], axis[2], angle)
	if !closeTo(have, want.Data(), 1e-6) {
		t.Fatalf("Identity.RotateXYZ\nhave %v\nwant %v", have, want)
	}
	if ref := mgl32.HomogRotate3D(angle, mgl32.Vec3(u)); !closeTo(have, ref, 1e-6) {
		t.Fatalf("RotateXYZ disagrees with mgl32.HomogRotate3D\nhave %v\nwant %v", have.Data(), ref)
	}
	if other := Identity().Rotate(axis, angle); other != have {
		t.Fatalf("Rotate and RotateXYZ differ\nhave %v\nwant %v", other, have)
	}

	// a quarter turn about z takes x to y
	q := Identity().RotateXYZ(0, 0, 1, ToRadians(float32(90))).MulVec(Vec4f{1, 0, 0, 1})
	if m.Abs(float64(q[0])) > 1e-6 || m.Abs(float64(q[1]-1)) > 1e-6 || q[2] != 0 || q[3] != 1 {
		t.Fatalf("quarter turn about z applied to x\nhave %v\nwant [0 1 0 1]", q)
	}
}

func TestLookAt(t *testing.T) {
	cases := []struct {
		position, target, up Vec3f
	}{
		{Vec3f{0, 0, 3}, Vec3f{0, 0, 0}, Vec3f{0, 1, 0}},
		{Vec3f{4, 2, -7}, Vec3f{-1, 0.5, 2}, Vec3f{0, 1, 0}},
		{Vec3f{1, 1, 1}, Vec3f{2, -3, 0}, Vec3f{0, 0, 1}},
	}
	for _, c := range cases {
		have := LookAt(c.position, c.target, c.up)
		ref := mgl32.LookAtV(mgl32.Vec3(c.position), mgl32.Vec3(c.target), mgl32.Vec3(c.up))
		if !closeTo(have, ref, 1e-5) {
			t.Fatalf("LookAt(%v, %v, %v)\nhave %v\nwant %v", c.position, c.target, c.up, have.Data(), ref)
		}

		eye := have.MulVec(c.position.ToVec4(1))
		if eye.ToVec3().Length() > 1e-5 {
			t.Fatalf("LookAt: eye does not map to the origin\nhave %v", eye)
		}
		dist := c.position.Distance(c.target)
		tgt := have.MulVec(c.target.ToVec4(1))
		if m.Abs(float64(tgt[0])) > 1e-5 || m.Abs(float64(tgt[1])) > 1e-5 || m.Abs(float64(tgt[2]+dist)) > 1e-5*float64(dist) {
			t.Fatalf("LookAt: target does not map onto -z\nhave %v\nwant [0 0 %v 1]", tgt, -dist)
		}
	}
}

func TestString(t *testing.T) {
	if have, want := Identity().String(), "[[1 0 0 0] [0 1 0 0] [0 0 1 0] [0 0 0 1]]"; have != want {
		t.Fatalf("Transform.String\nhave %q\nwant %q", have, want)
	}
}
