package wiregl

// LineSink consumes one drawn segment per call, endpoints in the host's
// target coordinate space. Sinks are side-effecting consumers only; they
// must not mutate the object being rendered.
type LineSink interface {
	Line(x1, y1, x2, y2 int)
}

// LineSinkFunc adapts a plain function to a LineSink.
type LineSinkFunc func(x1, y1, x2, y2 int)

func (f LineSinkFunc) Line(x1, y1, x2, y2 int) { f(x1, y1, x2, y2) }

// Render walks the edges in storage order and hands each one's projected
// endpoints to the sink, exactly one call per edge. No sorting, clipping, or
// overlap dedup happens here; that is the sink's business. Edges whose
// endpoints fall outside the vertex range are skipped.
func (o *Object) Render(sink LineSink) {
	if sink == nil {
		return
	}
	n := len(o.projected)
	for _, e := range o.edges {
		if e.A < 0 || e.B < 0 || e.A >= n || e.B >= n {
			continue
		}
		a := o.projected[e.A]
		b := o.projected[e.B]
		sink.Line(a.X, a.Y, b.X, b.Y)
	}
}
