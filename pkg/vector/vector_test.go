package vector

import (
	"math"
	"testing"
)

func TestAddSubMul(t *testing.T) {
	v := Vec2{1, 2}.Add(Vec2{3, -1})
	if v != (Vec2{4, 1}) {
		t.Fatalf("add: got %+v", v)
	}
	v = Vec2{4, 1}.Sub(Vec2{1, 1})
	if v != (Vec2{3, 0}) {
		t.Fatalf("sub: got %+v", v)
	}
	v = Vec2{3, 0}.Mul(2)
	if v != (Vec2{6, 0}) {
		t.Fatalf("mul: got %+v", v)
	}
}

func TestNormalize(t *testing.T) {
	n, ok := Vec2{3, 4}.Normalize()
	if !ok {
		t.Fatal("normalize of non-zero vector must succeed")
	}
	if math.Abs(n.Len()-1.0) > 1e-9 {
		t.Fatalf("unit length expected, got %.9f", n.Len())
	}
	if math.Abs(n.X-0.6) > 1e-9 || math.Abs(n.Y-0.8) > 1e-9 {
		t.Fatalf("direction mismatch: %+v", n)
	}
}

func TestNormalizeZero(t *testing.T) {
	n, ok := Vec2{}.Normalize()
	if ok {
		t.Fatal("normalize of zero vector must report failure")
	}
	if n != (Vec2{}) {
		t.Fatalf("zero vector expected, got %+v", n)
	}
}

func TestDistance(t *testing.T) {
	d := Vec2{0, 0}.Distance(Vec2{3, 4})
	if math.Abs(d-5.0) > 1e-9 {
		t.Fatalf("expected 5, got %.9f", d)
	}
}

func TestRotate(t *testing.T) {
	r := Vec2{1, 0}.Rotate(math.Pi / 2)
	if math.Abs(r.X) > 1e-9 || math.Abs(r.Y-1) > 1e-9 {
		t.Fatalf("expected (0,1), got %+v", r)
	}
}

func TestAngle(t *testing.T) {
	a := Vec2{0, 0}.Angle(Vec2{0, 1})
	if math.Abs(a-math.Pi/2) > 1e-9 {
		t.Fatalf("expected pi/2, got %.9f", a)
	}
}
