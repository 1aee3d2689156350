package wiregl

import "testing"

func TestPrecalculateIdentityRotation(t *testing.T) {
	o := NewObject(nil)
	verts := []Vec3{
		{1.5, -2.25, 0.5},
		{-1, 1, -4},
		{0, 3, -10},
	}
	for _, v := range verts {
		o.AddVertex(v.X, v.Y, v.Z)
	}

	o.Precalculate()

	for i, want := range verts {
		got, _ := o.Rotated(i)
		if got != want {
			t.Fatalf("Rotated(%d) = %+v; want %+v", i, got, want)
		}
	}
}

func TestPrecalculateDeterministic(t *testing.T) {
	o := NewObject(nil)
	o.AddVertex(1.25, -0.75, -6)
	o.AddVertex(-2, 3.5, -4.25)
	o.XAngleDeg = 33.3
	o.YAngleDeg = 12.7
	o.ZAngleDeg = 301
	o.XOffset = 160
	o.YOffset = 120
	o.ZOffset = -8
	o.Scale = 120

	o.Precalculate()
	var first []Point
	var firstRot []Vec3
	for i := 0; i < o.PointCount(); i++ {
		p, _ := o.Projected(i)
		r, _ := o.Rotated(i)
		first = append(first, p)
		firstRot = append(firstRot, r)
	}

	o.Precalculate()
	for i := 0; i < o.PointCount(); i++ {
		p, _ := o.Projected(i)
		r, _ := o.Rotated(i)
		if p != first[i] {
			t.Fatalf("Projected(%d) = %+v; want %+v (bit-identical repeat)", i, p, first[i])
		}
		if r != firstRot[i] {
			t.Fatalf("Rotated(%d) = %+v; want %+v (bit-identical repeat)", i, r, firstRot[i])
		}
	}
}

func TestPrecalculateDepthClamp(t *testing.T) {
	// Rotated Z of 1 sits on the viewer's side of the clamp plane, so the
	// divide must use -3: round(3 / -3 * 1) = -1.
	o := NewObject(nil)
	o.AddVertex(3, 0, 1)
	o.Scale = 1

	o.Precalculate()

	p, _ := o.Projected(0)
	if p.X != -1 {
		t.Fatalf("Projected(0).X = %d; want -1", p.X)
	}
	if p.Y != 0 {
		t.Fatalf("Projected(0).Y = %d; want 0", p.Y)
	}
}

func TestPrecalculateDeepVertexUsesOwnDepth(t *testing.T) {
	o := NewObject(nil)
	o.AddVertex(6, 0, -6)
	o.Scale = 1

	o.Precalculate()

	p, _ := o.Projected(0)
	if p.X != -1 {
		t.Fatalf("Projected(0).X = %d; want -1 (6 / -6)", p.X)
	}
}

func TestPrecalculateStoredZIncludesOffset(t *testing.T) {
	// The stored rotated Z carries ZOffset while the divide does not: with
	// Z=-6 and ZOffset=-4 the projection still divides by -6.
	o := NewObject(nil)
	o.AddVertex(6, 0, -6)
	o.Scale = 1
	o.ZOffset = -4

	o.Precalculate()

	r, _ := o.Rotated(0)
	if r.Z != -10 {
		t.Fatalf("Rotated(0).Z = %v; want -10", r.Z)
	}
	p, _ := o.Projected(0)
	if p.X != -1 {
		t.Fatalf("Projected(0).X = %d; want -1 (divide ignores ZOffset)", p.X)
	}
}

func TestPrecalculateRotationOrder(t *testing.T) {
	// 90° about X then 90° about Y: (0,1,0) → X → (0,0,1) → Y → (1,0,0).
	// The reversed composition would give (0,0,1), so this pins the order.
	o := NewObject(nil)
	o.AddVertex(0, 1, 0)
	o.XAngleDeg = 90
	o.YAngleDeg = 90
	o.Scale = 1

	o.Precalculate()

	r, _ := o.Rotated(0)
	const eps = 1e-5
	if r.X < 1-eps || r.X > 1+eps {
		t.Fatalf("Rotated(0).X = %v; want 1", r.X)
	}
	if r.Y < -eps || r.Y > eps {
		t.Fatalf("Rotated(0).Y = %v; want 0", r.Y)
	}
	if r.Z < -eps || r.Z > eps {
		t.Fatalf("Rotated(0).Z = %v; want 0", r.Z)
	}
}
