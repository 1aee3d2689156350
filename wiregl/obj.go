package wiregl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrOpen reports that the mesh source could not be opened.
	ErrOpen = errors.New("obj: open failed")
	// ErrAlloc reports that mesh storage was refused mid-parse.
	ErrAlloc = errors.New("obj: mesh storage refused")
)

// ParseFile reads a restricted Wavefront-style mesh from a file and returns
// the populated object. An open failure returns ErrOpen before any object is
// created. See ParseReader for the accepted grammar.
func ParseFile(path string, arena Arena) (*Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	defer f.Close()
	return ParseReader(f, arena)
}

// ParseReader consumes a line-oriented mesh text source byte by byte and
// builds an object by incremental growth. Only two record kinds carry
// meaning:
//
//	v <x> <y> <z>        one vertex, three floats
//	f <i1> <i2> <i3>     triangle, edges (i1,i2) (i2,i3) (i3,i1)
//	f <i1> <i2> <i3> <i4> quad, the four-edge cycle
//
// Face indices are 1-based in the source. At most the first four index
// tokens of an f record are ever inspected, so faces with five or more
// vertices are read incorrectly; that is a hard limitation of the format
// subset, not something this reader detects. Records starting with m, o,
// #, g, s, u or n (materials, object and group names, comments, smoothing,
// usemtl, normals) are recognized and ignored, and any line that does not
// scan as expected is dropped without diagnostics.
//
// A refused storage reservation aborts the parse with ErrAlloc; the object
// is returned in whatever partial state it had accumulated so the caller
// can Release it.
func ParseReader(r io.Reader, arena Arena) (*Object, error) {
	obj := NewObject(arena)
	br := bufio.NewReader(r)

	var line []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err != io.EOF {
				return obj, fmt.Errorf("obj: read: %w", err)
			}
			if !parseMeshLine(obj, string(line)) {
				return obj, ErrAlloc
			}
			return obj, nil
		}
		if b == '\n' || b == '\r' {
			if !parseMeshLine(obj, string(line)) {
				return obj, ErrAlloc
			}
			line = line[:0]
			continue
		}
		line = append(line, b)
	}
}

// parseMeshLine applies one logical line to the object. It reports false
// only on a storage refusal; malformed or irrelevant lines are dropped
// silently and report success.
func parseMeshLine(obj *Object, line string) bool {
	if len(line) == 0 {
		return true
	}
	switch line[0] {
	case 'v':
		// Also swallows vt/vn records: their first field is not a float.
		fields := strings.Fields(line[1:])
		if len(fields) < 3 {
			return true
		}
		var c [3]Scalar
		for i := 0; i < 3; i++ {
			f, err := strconv.ParseFloat(fields[i], 32)
			if err != nil {
				return true
			}
			c[i] = Scalar(f)
		}
		_, ok := obj.AddVertex(c[0], c[1], c[2])
		return ok

	case 'f':
		idx := [4]int{}
		n := 0
		for _, tok := range strings.Fields(line[1:]) {
			if n == len(idx) {
				break
			}
			u, err := strconv.ParseUint(tok, 10, 32)
			if err != nil {
				break
			}
			idx[n] = int(u) - 1 // source indices are 1-based
			n++
		}
		switch n {
		case 3:
			return obj.AddEdge(idx[0], idx[1]) &&
				obj.AddEdge(idx[1], idx[2]) &&
				obj.AddEdge(idx[2], idx[0])
		case 4:
			return obj.AddEdge(idx[0], idx[1]) &&
				obj.AddEdge(idx[1], idx[2]) &&
				obj.AddEdge(idx[2], idx[3]) &&
				obj.AddEdge(idx[3], idx[0])
		}
		return true

	case 'm', 'o', '#', 'g', 's', 'u', 'n':
		return true
	}
	return true
}
