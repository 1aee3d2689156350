package wiregl

import "testing"

func TestRenderCallPerEdgeInStorageOrder(t *testing.T) {
	o := NewObject(nil)
	o.AddVertex(0, 0, -6)
	o.AddVertex(3, 0, -6)
	o.AddVertex(0, 3, -6)
	o.AddEdge(0, 1)
	o.AddEdge(1, 2)
	o.AddEdge(2, 0)
	o.Scale = 12
	o.XOffset = 100
	o.YOffset = 100
	o.Precalculate()

	var rec RecordSink
	o.Render(&rec)

	if got := len(rec.Segments); got != o.EdgeCount() {
		t.Fatalf("sink called %d times; want %d", got, o.EdgeCount())
	}
	for i := range rec.Segments {
		e, _ := o.EdgeAt(i)
		a, _ := o.Projected(e.A)
		b, _ := o.Projected(e.B)
		want := Segment{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}
		if rec.Segments[i] != want {
			t.Fatalf("segment %d = %+v; want %+v", i, rec.Segments[i], want)
		}
	}
}

func TestRenderSkipsOutOfRangeEdges(t *testing.T) {
	o := NewObject(nil)
	o.AddVertex(0, 0, -6)
	o.AddVertex(1, 0, -6)
	o.AddEdge(0, 1)
	o.AddEdge(1, 7) // no vertex 7
	o.Precalculate()

	var rec RecordSink
	o.Render(&rec)

	if got := len(rec.Segments); got != 1 {
		t.Fatalf("sink called %d times; want 1 (dangling edge skipped)", got)
	}
}

func TestRenderThroughFunc(t *testing.T) {
	o := NewObject(nil)
	o.AddVertex(0, 0, -6)
	o.AddVertex(1, 0, -6)
	o.AddEdge(0, 1)
	o.Precalculate()

	calls := 0
	o.Render(LineSinkFunc(func(x1, y1, x2, y2 int) { calls++ }))
	if calls != 1 {
		t.Fatalf("LineSinkFunc called %d times; want 1", calls)
	}
}
