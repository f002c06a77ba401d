// Package geometry holds the vector helpers, vertex matching and bounding
// boxes used to build hexahedral blocks. Vertices are gonum r3.Vec values;
// 2D quantities are r3.Vec with Z ignored.
package geometry

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

var ErrZeroLength = errors.New("zero length vector")

var ZAxis = r3.Vec{Z: 1}

// Cross returns v1 x v2, normalized unless normalize is false.
func Cross(v1, v2 r3.Vec, normalize bool) (c r3.Vec, err error) {
	c = r3.Cross(v1, v2)
	if !normalize {
		return
	}
	n := r3.Norm(c)
	if n == 0 {
		err = fmt.Errorf("%w: cannot normalize cross product of %v and %v",
			ErrZeroLength, v1, v2)
		return r3.Vec{}, err
	}
	return r3.Scale(1/n, c), nil
}

// Determinant is the 2D determinant of the XY components, positive when v2
// lies anticlockwise of v1.
func Determinant(v1, v2 r3.Vec) float64 {
	return v1.X*v2.Y - v1.Y*v2.X
}

// InnerAngle is the unsigned angle in degrees between the XY projections.
func InnerAngle(v1, v2 r3.Vec) float64 {
	var (
		dot  = v1.X*v2.X + v1.Y*v2.Y
		norm = math.Sqrt((v1.X*v1.X + v1.Y*v1.Y) * (v2.X*v2.X + v2.Y*v2.Y))
	)
	if norm == 0 {
		return 0
	}
	cos := math.Max(-1, math.Min(1, dot/norm))
	return math.Acos(cos) * 180 / math.Pi
}

// parallelTolerance bounds |det| relative to |v1||v2| for vectors treated as
// parallel.
const parallelTolerance = 1.e-12

// AngleAnticlockwise is the angle in degrees, in [0, 360), swept anticlockwise
// from v1 to v2 in the XY plane. Parallel vectors give exactly 0 and opposed
// ones exactly 180.
func AngleAnticlockwise(v1, v2 r3.Vec) (angle float64) {
	var (
		det  = Determinant(v1, v2)
		dot  = v1.X*v2.X + v1.Y*v2.Y
		norm = math.Sqrt((v1.X*v1.X + v1.Y*v1.Y) * (v2.X*v2.X + v2.Y*v2.Y))
	)
	if math.Abs(det) <= parallelTolerance*norm {
		if dot >= 0 {
			return 0
		}
		return 180
	}
	inner := InnerAngle(v1, v2)
	if det >= 0 {
		angle = inner
	} else {
		angle = 360 - inner
	}
	if angle >= 360 {
		angle = 0
	}
	return
}

// Rotate turns point about origin anticlockwise by angle degrees in the XY
// plane. Z is passed through.
func Rotate(origin, point r3.Vec, angle float64) (rotated r3.Vec) {
	rot := r3.NewRotation(angle*math.Pi/180, ZAxis)
	rotated = r3.Add(origin, rot.Rotate(r3.Sub(point, origin)))
	rotated.Z = point.Z
	return
}

// Project drops point orthogonally onto the plane through planeOrigin with
// normal planeNormal.
func Project(point, planeOrigin, planeNormal r3.Vec) r3.Vec {
	n := r3.Unit(planeNormal)
	d := r3.Dot(r3.Sub(point, planeOrigin), n)
	return r3.Sub(point, r3.Scale(d, n))
}

// Heading is the anticlockwise angle in degrees of v from the +X axis.
func Heading(v r3.Vec) float64 {
	return AngleAnticlockwise(r3.Vec{X: 1}, v)
}

func Distance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}

// Centroid is the arithmetic mean of points.
func Centroid(points []r3.Vec) (c r3.Vec) {
	if len(points) == 0 {
		return
	}
	for _, p := range points {
		c = r3.Add(c, p)
	}
	return r3.Scale(1/float64(len(points)), c)
}

// FormatFloat writes v in the shortest form that round-trips.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatVertex renders v as an OpenFOAM list "(x y z)".
func FormatVertex(v r3.Vec) string {
	return "(" + FormatFloat(v.X) + " " + FormatFloat(v.Y) + " " + FormatFloat(v.Z) + ")"
}
