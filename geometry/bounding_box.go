package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

type BoundingBox struct {
	XMin [3]float64
	XMax [3]float64
}

func NewBoundingBox(points []r3.Vec) (Box *BoundingBox) {
	if len(points) == 0 {
		return nil
	}
	Box = new(BoundingBox)
	Box.XMin = toArray(points[0])
	Box.XMax = toArray(points[0])
	for _, point := range points {
		x := toArray(point)
		for i := 0; i < 3; i++ {
			if x[i] < Box.XMin[i] {
				Box.XMin[i] = x[i]
			}
			if x[i] > Box.XMax[i] {
				Box.XMax[i] = x[i]
			}
		}
	}
	return Box
}

func (bb *BoundingBox) Min() r3.Vec { return toVec(bb.XMin) }
func (bb *BoundingBox) Max() r3.Vec { return toVec(bb.XMax) }

func (bb *BoundingBox) Centroid() (centroid r3.Vec) {
	return r3.Vec{
		X: 0.5 * (bb.XMax[0] + bb.XMin[0]),
		Y: 0.5 * (bb.XMax[1] + bb.XMin[1]),
		Z: 0.5 * (bb.XMax[2] + bb.XMin[2]),
	}
}

// Size is the extent along each axis.
func (bb *BoundingBox) Size() r3.Vec {
	return r3.Sub(bb.Max(), bb.Min())
}

func (bb *BoundingBox) Grow(newBB *BoundingBox) {
	for i := 0; i < 3; i++ {
		bb.XMin[i] = math.Min(bb.XMin[i], newBB.XMin[i])
		bb.XMax[i] = math.Max(bb.XMax[i], newBB.XMax[i])
	}
}

// Pad returns a copy extended by lo below XMin and hi above XMax.
func (bb *BoundingBox) Pad(lo, hi r3.Vec) (bbOut *BoundingBox) {
	bbOut = new(BoundingBox)
	l, h := toArray(lo), toArray(hi)
	for i := 0; i < 3; i++ {
		bbOut.XMin[i] = bb.XMin[i] - l[i]
		bbOut.XMax[i] = bb.XMax[i] + h[i]
	}
	return bbOut
}

func (bb *BoundingBox) PointInside(point r3.Vec) (within bool) {
	x := toArray(point)
	for ii := 0; ii < 3; ii++ {
		if x[ii] > bb.XMax[ii] || x[ii] < bb.XMin[ii] {
			return false
		}
	}
	return true
}

// Corners lists the box corners in OpenFOAM hex order: the bottom face
// anticlockwise seen from above starting at XMin, then the top face.
func (bb *BoundingBox) Corners() (corners [8]r3.Vec) {
	lo, hi := bb.XMin, bb.XMax
	ring := [4][2]float64{
		{lo[0], lo[1]},
		{hi[0], lo[1]},
		{hi[0], hi[1]},
		{lo[0], hi[1]},
	}
	for i, xy := range ring {
		corners[i] = r3.Vec{X: xy[0], Y: xy[1], Z: lo[2]}
		corners[i+4] = r3.Vec{X: xy[0], Y: xy[1], Z: hi[2]}
	}
	return
}

// OrientedBox is an axis aligned box in a frame whose X axis is turned
// Angle degrees anticlockwise about Origin.
type OrientedBox struct {
	Box    *BoundingBox
	Angle  float64
	Origin r3.Vec
}

// NewOrientedBoundingBox bounds points in the frame whose X axis points along
// xAxis (projected to XY).
func NewOrientedBoundingBox(points []r3.Vec, xAxis r3.Vec) (ob *OrientedBox) {
	if len(points) == 0 {
		return nil
	}
	ob = &OrientedBox{
		Angle:  Heading(xAxis),
		Origin: Centroid(points),
	}
	local := make([]r3.Vec, len(points))
	for i, p := range points {
		local[i] = Rotate(ob.Origin, p, -ob.Angle)
	}
	ob.Box = NewBoundingBox(local)
	return
}

// Pad extends the box in its own frame.
func (ob *OrientedBox) Pad(lo, hi r3.Vec) *OrientedBox {
	return &OrientedBox{Box: ob.Box.Pad(lo, hi), Angle: ob.Angle, Origin: ob.Origin}
}

// Corners are the box corners in world coordinates, in hex order.
func (ob *OrientedBox) Corners() (corners [8]r3.Vec) {
	corners = ob.Box.Corners()
	if ob.Angle == 0 {
		return
	}
	for i := range corners {
		corners[i] = Rotate(ob.Origin, corners[i], ob.Angle)
	}
	return
}

func toArray(v r3.Vec) [3]float64 { return [3]float64{v.X, v.Y, v.Z} }
func toVec(a [3]float64) r3.Vec { return r3.Vec{X: a[0], Y: a[1], Z: a[2]} }
