package math

import (
	m "math"
	"testing"
)

func TestVec2(t *testing.T) {
	v := Vec2i{1, 2}
	w := Vec2i{-3, 4}

	if u := v.Add(w); u != (Vec2i{-2, 6}) {
		t.Fatalf("Vec2.Add\nhave %v\nwant [-2 6]", u)
	}
	if u := v.Sub(w); u != (Vec2i{4, -2}) {
		t.Fatalf("Vec2.Sub\nhave %v\nwant [4 -2]", u)
	}
	if u := w.MulScalar(3); u != (Vec2i{-9, 12}) {
		t.Fatalf("Vec2.MulScalar\nhave %v\nwant [-9 12]", u)
	}
	if u := w.DivScalar(2); u != (Vec2i{-1, 2}) {
		t.Fatalf("Vec2.DivScalar\nhave %v\nwant [-1 2]", u)
	}
	if u := v.AddScalar(10); u != (Vec2i{11, 12}) {
		t.Fatalf("Vec2.AddScalar\nhave %v\nwant [11 12]", u)
	}
	if u := v.SubScalar(10); u != (Vec2i{-9, -8}) {
		t.Fatalf("Vec2.SubScalar\nhave %v\nwant [-9 -8]", u)
	}
	if u := v.Neg(); u != (Vec2i{-1, -2}) {
		t.Fatalf("Vec2.Neg\nhave %v\nwant [-1 -2]", u)
	}
	if d := v.Dot(w); d != 5 {
		t.Fatalf("Vec2.Dot\nhave %v\nwant 5", d)
	}
	if l := (Vec2d{3, 4}).Length(); l != 5 {
		t.Fatalf("Vec2.Length\nhave %v\nwant 5", l)
	}
	if v != (Vec2i{1, 2}) || w != (Vec2i{-3, 4}) {
		t.Fatal("Vec2 binary operators modified an operand")
	}
}

func TestVec3(t *testing.T) {
	v := Vec3f{1, 2, 4}
	w := Vec3f{0, -1, 2}

	if u := v.Add(w); u != (Vec3f{1, 1, 6}) {
		t.Fatalf("Vec3.Add\nhave %v\nwant [1 1 6]", u)
	}
	if u := v.Sub(w); u != (Vec3f{1, 3, 2}) {
		t.Fatalf("Vec3.Sub\nhave %v\nwant [1 3 2]", u)
	}
	if u := v.MulScalar(-1); u != (Vec3f{-1, -2, -4}) {
		t.Fatalf("Vec3.MulScalar\nhave %v\nwant [-1 -2 -4]", u)
	}
	if u := v.DivScalar(2); u != (Vec3f{0.5, 1, 2}) {
		t.Fatalf("Vec3.DivScalar\nhave %v\nwant [0.5 1 2]", u)
	}
	if u := v.Mul(w); u != (Vec3f{0, -2, 8}) {
		t.Fatalf("Vec3.Mul\nhave %v\nwant [0 -2 8]", u)
	}
	if d := v.Dot(w); d != 6 {
		t.Fatalf("Vec3.Dot\nhave %v\nwant 6", d)
	}
	if l := (Vec3f{2, 3, 6}).Length(); l != 7 {
		t.Fatalf("Vec3.Length\nhave %v\nwant 7", l)
	}
	if d := (Vec3f{1, 1, 1}).Distance(Vec3f{3, 4, 7}); d != 7 {
		t.Fatalf("Vec3.Distance\nhave %v\nwant 7", d)
	}
}

func TestVec4(t *testing.T) {
	v := Vec4d{1, 2, 3, 4}
	w := Vec4d{4, 3, 2, 1}

	if u := v.Add(w); u != (Vec4d{5, 5, 5, 5}) {
		t.Fatalf("Vec4.Add\nhave %v\nwant [5 5 5 5]", u)
	}
	if u := v.Sub(w); u != (Vec4d{-3, -1, 1, 3}) {
		t.Fatalf("Vec4.Sub\nhave %v\nwant [-3 -1 1 3]", u)
	}
	if u := v.Div(w); u != (Vec4d{0.25, 2.0 / 3.0, 1.5, 4}) {
		t.Fatalf("Vec4.Div\nhave %v\nwant [0.25 0.666 1.5 4]", u)
	}
	if d := v.Dot(w); d != 20 {
		t.Fatalf("Vec4.Dot\nhave %v\nwant 20", d)
	}
	if u := v.ToVec3(); u != (Vec3d{1, 2, 3}) {
		t.Fatalf("Vec4.ToVec3\nhave %v\nwant [1 2 3]", u)
	}
	if u := v.ToVec3().ToVec4(9); u != (Vec4d{1, 2, 3, 9}) {
		t.Fatalf("Vec3.ToVec4\nhave %v\nwant [1 2 3 9]", u)
	}
}

func TestInPlaceKeepsOperand(t *testing.T) {
	a := Vec3f{1, 2, 3}
	b := Vec3f{10, 20, 30}

	a.AddAssign(b)
	if a != (Vec3f{11, 22, 33}) {
		t.Fatalf("Vec3.AddAssign\nhave %v\nwant [11 22 33]", a)
	}
	if b != (Vec3f{10, 20, 30}) {
		t.Fatalf("Vec3.AddAssign modified its operand\nhave %v\nwant [10 20 30]", b)
	}

	a.SubAssign(b)
	if a != (Vec3f{1, 2, 3}) || b != (Vec3f{10, 20, 30}) {
		t.Fatalf("Vec3.SubAssign\nhave %v, %v\nwant [1 2 3], [10 20 30]", a, b)
	}

	c := Vec4i{1, 2, 3, 4}
	c.AddScalarAssign(1)
	c.MulScalarAssign(2)
	c.SubScalarAssign(4)
	c.DivScalarAssign(2)
	if c != (Vec4i{0, 1, 2, 3}) {
		t.Fatalf("Vec4 scalar assign chain\nhave %v\nwant [0 1 2 3]", c)
	}

	d := Vec2f{1, 1}
	e := d
	d.AddAssign(d)
	if d != (Vec2f{2, 2}) || e != (Vec2f{1, 1}) {
		t.Fatalf("Vec2.AddAssign with itself\nhave %v\nwant [2 2]", d)
	}
}

func TestCross(t *testing.T) {
	a := Vec3f{1.5, 2.0, 4.2}
	b := Vec3f{-5.4, 4.0, -1.0}

	want := Vec3f{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
	if have := Cross(a, b); !AlmostEqualVec(have, want, DefaultMaxUlpDiff) {
		t.Fatalf("Cross\nhave %v\nwant %v", have, want)
	}
	if have := a.Cross(b); !AlmostEqualVec(have, want, DefaultMaxUlpDiff) {
		t.Fatalf("Vec3.Cross\nhave %v\nwant %v", have, want)
	}

	x, y, z := Vec3i{1, 0, 0}, Vec3i{0, 1, 0}, Vec3i{0, 0, 1}
	if have := x.Cross(y); have != z {
		t.Fatalf("Cross(x, y)\nhave %v\nwant %v", have, z)
	}
	if have := y.Cross(x); have != z.Neg() {
		t.Fatalf("Cross(y, x)\nhave %v\nwant %v", have, z.Neg())
	}
}

func TestNormalize(t *testing.T) {
	for _, v := range []Vec3f{
		{1, 0, 0},
		{3, 4, 0},
		{1.5, 2.0, 4.2},
		{-5.4, 4.0, -1.0},
		{1e-3, -2e-3, 7e-4},
		{1200, 5, -880},
	} {
		n := v.Normalize()
		if l := n.Length(); m.Abs(float64(l)-1) > 1e-6 {
			t.Fatalf("Vec3.Normalize(%v).Length\nhave %v\nwant 1", v, l)
		}
		c := n.Cross(v)
		if c.Length() > 1e-5*v.Length() {
			t.Fatalf("Vec3.Normalize(%v) is not parallel to its input\nhave %v", v, n)
		}
		if n.Dot(v) <= 0 {
			t.Fatalf("Vec3.Normalize(%v) flipped direction\nhave %v", v, n)
		}
	}

	if n := (Vec4f{0, 0, 0, 2}).Normalize(); n != (Vec4f{0, 0, 0, 1}) {
		t.Fatalf("Vec4.Normalize\nhave %v\nwant [0 0 0 1]", n)
	}
	zero := Vec3f{}.Normalize()
	if zero[0] == zero[0] {
		t.Fatalf("Vec3.Normalize(zero)\nhave %v\nwant NaN components", zero)
	}
}

func TestEqualIsExact(t *testing.T) {
	a := Vec3f{0.1, 0.2, 0.3}
	b := a
	if !a.Equal(b) || a != b {
		t.Fatal("Vec3.Equal: identical vectors compared unequal")
	}
	b[2] = m.Nextafter32(b[2], 1)
	if a.Equal(b) || a == b {
		t.Fatal("Vec3.Equal: vectors one ulp apart compared equal")
	}
	if !AlmostEqualVec(a, b, DefaultMaxUlpDiff) {
		t.Fatal("AlmostEqualVec: vectors one ulp apart compared unequal")
	}
}

func TestAliases(t *testing.T) {
	v := Vec4f{1, 2, 3, 4}
	if v.X() != v.R() || v.R() != v.S() || v.X() != 1 {
		t.Fatal("Vec4: x/r/s do not name the same component")
	}
	if v.Y() != v.G() || v.G() != v.T() || v.Y() != 2 {
		t.Fatal("Vec4: y/g/t do not name the same component")
	}
	if v.Z() != v.B() || v.B() != v.P() || v.Z() != 3 {
		t.Fatal("Vec4: z/b/p do not name the same component")
	}
	if v.W() != v.A() || v.A() != v.Q() || v.W() != 4 {
		t.Fatal("Vec4: w/a/q do not name the same component")
	}

	v.SetR(10)
	v.SetT(20)
	v.SetP(30)
	v.SetA(40)
	if v != (Vec4f{10, 20, 30, 40}) {
		t.Fatalf("Vec4 alias setters\nhave %v\nwant [10 20 30 40]", v)
	}

	c := Vec3i{}
	c.SetS(7)
	c.SetG(8)
	c.SetZ(9)
	if c[0] != 7 || c[1] != 8 || c[2] != 9 {
		t.Fatalf("Vec3 alias setters\nhave %v\nwant [7 8 9]", c)
	}

	uv := Vec2f{}
	uv.SetS(0.25)
	uv.SetT(0.75)
	if uv.X() != 0.25 || uv.Y() != 0.75 {
		t.Fatalf("Vec2 alias setters\nhave %v\nwant [0.25 0.75]", uv)
	}
	if uv.Dimension() != 2 || c.Dimension() != 3 || v.Dimension() != 4 {
		t.Fatal("Dimension does not match the component count")
	}
}

func TestIndexOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("indexing past the last component did not panic")
		}
	}()
	v := Vec3f{1, 2, 3}
	i := v.Dimension()
	_ = v[i]
}

func TestGenericFunctions(t *testing.T) {
	a := Vec3f{1, 2, 3}
	b := Vec3f{4, 5, 6}
	if d := Dot[float32](a, b); d != 32 {
		t.Fatalf("Dot\nhave %v\nwant 32", d)
	}
	if s := Add[float32](a, b); s != (Vec3f{5, 7, 9}) {
		t.Fatalf("Add\nhave %v\nwant [5 7 9]", s)
	}
	if !Equal[int](Vec2i{1, 2}, Vec2i{1, 2}) || Equal[int](Vec2i{1, 2}, Vec2i{2, 1}) {
		t.Fatal("Equal: wrong result for Vec2i")
	}
	if l := Length[float64](Vec4d{1, 1, 1, 1}); l != 2 {
		t.Fatalf("Length\nhave %v\nwant 2", l)
	}
	if s := (Vec3f{1, 2, 3}).Slice(); len(s) != 3 || s[0] != 1 || s[2] != 3 {
		t.Fatalf("Vec3.Slice\nhave %v\nwant [1 2 3]", s)
	}
}
