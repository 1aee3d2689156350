package wiregl

import "unsafe"

// Scalar is the numeric type used by wiregl math operations.
type Scalar = float32

// Vec3 is a 3D coordinate.
type Vec3 struct {
	X, Y, Z Scalar
}

// Point is a projected 2D raster coordinate.
type Point struct {
	X, Y int
}

// Edge joins two vertices by index. The pair is unordered: {A, B} and {B, A}
// denote the same edge.
type Edge struct {
	A, B int
}

const (
	vec3Size  = int(unsafe.Sizeof(Vec3{}))
	pointSize = int(unsafe.Sizeof(Point{}))
	edgeSize  = int(unsafe.Sizeof(Edge{}))

	// Per-vertex cost: original + rotated + projected slots.
	vertexSize = 2*vec3Size + pointSize
)

// Object is one wireframe mesh plus its live transform state.
//
// The transform fields are plain and public: the host mutates them directly
// between frames and calls Precalculate to refresh the derived coordinates.
// An Object exclusively owns its storage; Release it when done.
type Object struct {
	XAngleDeg Scalar
	YAngleDeg Scalar
	ZAngleDeg Scalar

	XOffset Scalar
	YOffset Scalar
	ZOffset Scalar

	Scale Scalar

	orig      []Vec3
	rotated   []Vec3
	projected []Point
	edges     []Edge

	arena    Arena
	reserved int
}

// NewObject returns an empty object accounted against arena. A nil arena
// means unaccounted heap storage. Scale starts at 1.
func NewObject(arena Arena) *Object {
	if arena == nil {
		arena = Heap{}
	}
	return &Object{arena: arena, Scale: 1}
}

func (o *Object) allocator() Arena {
	if o.arena == nil {
		return Heap{}
	}
	return o.arena
}

// PointCount reports the number of stored vertices.
func (o *Object) PointCount() int { return len(o.orig) }

// EdgeCount reports the number of stored edges.
func (o *Object) EdgeCount() int { return len(o.edges) }

// Init replaces the object's storage with room for exactly pointCount
// vertices and edgeCount edges, all zeroed. Reservation happens in steps;
// if any step is refused, everything reserved by this call is released
// again and Init reports false with the object left empty.
func (o *Object) Init(pointCount, edgeCount int) bool {
	o.Release()
	if pointCount < 0 || edgeCount < 0 {
		return false
	}

	a := o.allocator()
	steps := [4]int{
		pointCount * vec3Size,
		pointCount * vec3Size,
		pointCount * pointSize,
		edgeCount * edgeSize,
	}
	reserved := 0
	for _, n := range steps {
		if !a.Reserve(n) {
			a.Release(reserved)
			return false
		}
		reserved += n
	}

	o.orig = make([]Vec3, pointCount)
	o.rotated = make([]Vec3, pointCount)
	o.projected = make([]Point, pointCount)
	o.edges = make([]Edge, edgeCount)
	o.reserved = reserved
	return true
}

// AddVertex appends one vertex with the given original coordinate and returns
// its index. The backing store is reallocated on every call; this is a
// construction-time operation, not a per-frame one. On a refused reservation
// the object is unchanged and ok is false.
func (o *Object) AddVertex(x, y, z Scalar) (index int, ok bool) {
	n := len(o.orig)
	a := o.allocator()
	newBytes := (n + 1) * vertexSize
	if !a.Reserve(newBytes) {
		return 0, false
	}

	orig := make([]Vec3, n+1)
	rotated := make([]Vec3, n+1)
	projected := make([]Point, n+1)
	copy(orig, o.orig)
	copy(rotated, o.rotated)
	copy(projected, o.projected)
	orig[n] = Vec3{X: x, Y: y, Z: z}

	o.orig = orig
	o.rotated = rotated
	o.projected = projected

	oldBytes := n * vertexSize
	a.Release(oldBytes)
	o.reserved += newBytes - oldBytes
	return n, true
}

// SetVertex replaces the original coordinate of an existing vertex.
func (o *Object) SetVertex(i int, x, y, z Scalar) bool {
	if i < 0 || i >= len(o.orig) {
		return false
	}
	o.orig[i] = Vec3{X: x, Y: y, Z: z}
	return true
}

// SetEdge replaces an existing edge slot.
func (o *Object) SetEdge(i, a, b int) bool {
	if i < 0 || i >= len(o.edges) {
		return false
	}
	o.edges[i] = Edge{A: a, B: b}
	return true
}

// Vertex returns the original coordinate of vertex i.
func (o *Object) Vertex(i int) (Vec3, bool) {
	if i < 0 || i >= len(o.orig) {
		return Vec3{}, false
	}
	return o.orig[i], true
}

// EdgeAt returns edge i.
func (o *Object) EdgeAt(i int) (Edge, bool) {
	if i < 0 || i >= len(o.edges) {
		return Edge{}, false
	}
	return o.edges[i], true
}

// Projected returns the projected coordinate of vertex i, valid after
// Precalculate.
func (o *Object) Projected(i int) (Point, bool) {
	if i < 0 || i >= len(o.projected) {
		return Point{}, false
	}
	return o.projected[i], true
}

// EdgeExists scans the stored edges for the unordered pair {a, b}.
func (o *Object) EdgeExists(a, b int) bool {
	for _, e := range o.edges {
		if (e.A == a && e.B == b) || (e.A == b && e.B == a) {
			return true
		}
	}
	return false
}

// AddEdge appends the unordered edge {a, b} unless an equal edge is already
// stored; a duplicate is reported as success without modification. Like
// AddVertex, growth reallocates the edge store on every call. False only on
// a refused reservation, with prior contents intact.
func (o *Object) AddEdge(a, b int) bool {
	if o.EdgeExists(a, b) {
		return true
	}

	n := len(o.edges)
	al := o.allocator()
	newBytes := (n + 1) * edgeSize
	if !al.Reserve(newBytes) {
		return false
	}

	edges := make([]Edge, n+1)
	copy(edges, o.edges)
	edges[n] = Edge{A: a, B: b}
	o.edges = edges

	oldBytes := n * edgeSize
	al.Release(oldBytes)
	o.reserved += newBytes - oldBytes
	return true
}

// Release frees all storage accounting and drops the buffers. Safe on a
// partially built or already released object, and safe to call repeatedly.
func (o *Object) Release() {
	o.allocator().Release(o.reserved)
	o.reserved = 0
	o.orig = nil
	o.rotated = nil
	o.projected = nil
	o.edges = nil
}
