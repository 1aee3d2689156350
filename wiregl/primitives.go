package wiregl

// Cube builds a wireframe cube of the given half-extent, centered on the
// origin: 8 vertices, 12 edges. It uses the fixed-count lifecycle (one bulk
// reservation). On a refused reservation it reports false with no storage
// held.
func Cube(arena Arena, size Scalar) (*Object, bool) {
	o := NewObject(arena)
	if !o.Init(8, 12) {
		return nil, false
	}

	s := size
	verts := [8]Vec3{
		{-s, -s, s},
		{s, -s, s},
		{s, s, s},
		{-s, s, s},
		{-s, -s, -s},
		{s, -s, -s},
		{s, s, -s},
		{-s, s, -s},
	}
	edges := [12]Edge{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // near face
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // far face
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // connectors
	}

	for i, v := range verts {
		o.SetVertex(i, v.X, v.Y, v.Z)
	}
	for i, e := range edges {
		o.SetEdge(i, e.A, e.B)
	}
	return o, true
}

// Pyramid builds a four-sided pyramid with a square base of the given
// half-extent and the apex above the origin: 5 vertices, 8 edges. It grows
// incrementally; on a refused reservation the partial storage is released
// and Pyramid reports false.
func Pyramid(arena Arena, size Scalar) (*Object, bool) {
	o := NewObject(arena)

	s := size
	verts := [5]Vec3{
		{-s, -s, -s},
		{s, -s, -s},
		{s, -s, s},
		{-s, -s, s},
		{0, s, 0}, // apex
	}
	for _, v := range verts {
		if _, ok := o.AddVertex(v.X, v.Y, v.Z); !ok {
			o.Release()
			return nil, false
		}
	}

	edges := [8]Edge{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // base
		{0, 4}, {1, 4}, {2, 4}, {3, 4}, // sides
	}
	for _, e := range edges {
		if !o.AddEdge(e.A, e.B) {
			o.Release()
			return nil, false
		}
	}
	return o, true
}
