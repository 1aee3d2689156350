package wiregl

import "math"

const degToRad = 0.01745329251

// Precalculate refreshes every vertex's rotated and projected coordinate
// from its original coordinate and the object's current transform state.
//
// Rotation is applied about X, then Y, then Z, each by the matching angle in
// degrees. The order is fixed; composing the axes differently gives a
// different result.
//
// Projection divides by a clamped depth: the rotated Z before ZOffset is
// added, forced to -3 whenever it is >= -3 so the divide stays well away
// from zero as a vertex crosses the viewer's plane. The rotated Z that is
// *stored* has ZOffset already added. The divide deliberately keeps using
// the pre-offset value; do not unify the two without auditing every host
// that reads the stored coordinate.
//
// Precalculate cannot fail and touches only the rotated/projected slots.
func (o *Object) Precalculate() {
	radX := float64(o.XAngleDeg) * degToRad
	radY := float64(o.YAngleDeg) * degToRad
	radZ := float64(o.ZAngleDeg) * degToRad

	cosX := Scalar(math.Cos(radX))
	cosY := Scalar(math.Cos(radY))
	cosZ := Scalar(math.Cos(radZ))

	sinX := Scalar(math.Sin(radX))
	sinY := Scalar(math.Sin(radY))
	sinZ := Scalar(math.Sin(radZ))

	for i := range o.orig {
		x := o.orig[i].X
		y := o.orig[i].Y
		z := o.orig[i].Z

		ty := y*cosX - z*sinX
		z = y*sinX + z*cosX
		y = ty

		tx := x*cosY + z*sinY
		z = -x*sinY + z*cosY
		x = tx

		tx = x*cosZ - y*sinZ
		y = x*sinZ + y*cosZ
		x = tx

		o.rotated[i] = Vec3{X: x, Y: y, Z: z + o.ZOffset}

		zc := z
		if zc >= -3.0 {
			zc = -3.0
		}
		o.projected[i] = Point{
			X: int(Scalar(math.Round(float64(x/zc*o.Scale))) + o.XOffset),
			Y: int(Scalar(math.Round(float64(y/zc*o.Scale))) + o.YOffset),
		}
	}
}

// Rotated returns the rotated coordinate of vertex i, valid after
// Precalculate. The Z component includes ZOffset.
func (o *Object) Rotated(i int) (Vec3, bool) {
	if i < 0 || i >= len(o.rotated) {
		return Vec3{}, false
	}
	return o.rotated[i], true
}
