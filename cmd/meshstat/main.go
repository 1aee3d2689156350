// meshstat parses a restricted OBJ mesh and reports its wireframe stats:
// vertex and edge counts plus the projected bounds at a given pose. Handy
// for checking whether a mesh fits a panel before flashing anything.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"glim/wiregl"
)

func main() {
	var (
		meshPath = flag.String("mesh", "", "OBJ file to inspect (required).")
		xAngle   = flag.Float64("x", 0, "Rotation about X in degrees.")
		yAngle   = flag.Float64("y", 0, "Rotation about Y in degrees.")
		zAngle   = flag.Float64("z", 0, "Rotation about Z in degrees.")
		scale    = flag.Float64("scale", 120, "Projection scale factor.")
	)
	flag.Parse()

	if *meshPath == "" {
		fmt.Fprintln(os.Stderr, "meshstat: -mesh is required")
		flag.Usage()
		os.Exit(1)
	}

	obj, err := wiregl.ParseFile(*meshPath, nil)
	if err != nil {
		if obj != nil {
			obj.Release()
		}
		fmt.Fprintf(os.Stderr, "meshstat: %v\n", err)
		os.Exit(1)
	}
	defer obj.Release()

	obj.XAngleDeg = wiregl.Scalar(*xAngle)
	obj.YAngleDeg = wiregl.Scalar(*yAngle)
	obj.ZAngleDeg = wiregl.Scalar(*zAngle)
	obj.Scale = wiregl.Scalar(*scale)
	obj.Precalculate()

	fmt.Printf("%s: %d vertices, %d edges\n", *meshPath, obj.PointCount(), obj.EdgeCount())
	if obj.PointCount() == 0 {
		return
	}

	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for i := 0; i < obj.PointCount(); i++ {
		p, _ := obj.Projected(i)
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	fmt.Printf("projected bounds: x [%d, %d]  y [%d, %d]  (%dx%d px)\n",
		minX, maxX, minY, maxY, maxX-minX+1, maxY-minY+1)
}
