// Package blockmesh assembles OpenFOAM blockMeshDict files: hexahedral
// blocks with their divisions and grading, the global vertex table and the
// boundary patch table, built from bounding geometry or read from existing
// dictionaries.
package blockmesh

import (
	"errors"
	"fmt"
	"regexp"

	"gonum.org/v1/gonum/spatial/r3"
)

var ErrInvalidName = errors.New("geometry names may only contain letters, digits and '_'")

var validName = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Geometry is a named surface with its boundary condition type.
type Geometry interface {
	Name() string
	Vertices() []r3.Vec
	Faces() [][]int
	BoundaryType() string
}

// BlockGeometry is a Geometry that knows the outer loops of its faces, which
// become blockMeshDict boundary faces.
type BlockGeometry interface {
	Geometry
	BorderVertices() [][]r3.Vec
}

// PatchGeometry is a planar boundary patch made of vertex loops.
type PatchGeometry struct {
	ID        string
	Points    []r3.Vec
	FaceLoops [][]int
	Boundary  string
}

func NewPatchGeometry(name, boundaryType string, points []r3.Vec, faces [][]int) (pg *PatchGeometry, err error) {
	if !validName.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	for i, f := range faces {
		for _, ind := range f {
			if ind < 0 || ind >= len(points) {
				return nil, fmt.Errorf("%s: face %d refers to vertex %d of %d", name, i, ind, len(points))
			}
		}
	}
	return &PatchGeometry{ID: name, Points: points, FaceLoops: faces, Boundary: boundaryType}, nil
}

// NewQuadPatch builds a patch from corner quadruples, sharing repeated
// corners.
func NewQuadPatch(name, boundaryType string, quads ...[4]r3.Vec) (*PatchGeometry, error) {
	var (
		points []r3.Vec
		faces  = make([][]int, len(quads))
	)
	for i, q := range quads {
		faces[i] = make([]int, 4)
		for j, v := range q {
			ind := -1
			for k, p := range points {
				if p == v {
					ind = k
					break
				}
			}
			if ind < 0 {
				ind = len(points)
				points = append(points, v)
			}
			faces[i][j] = ind
		}
	}
	return NewPatchGeometry(name, boundaryType, points, faces)
}

func (pg *PatchGeometry) Name() string         { return pg.ID }
func (pg *PatchGeometry) Vertices() []r3.Vec   { return pg.Points }
func (pg *PatchGeometry) Faces() [][]int       { return pg.FaceLoops }
func (pg *PatchGeometry) BoundaryType() string { return pg.Boundary }

func (pg *PatchGeometry) BorderVertices() (loops [][]r3.Vec) {
	loops = make([][]r3.Vec, len(pg.FaceLoops))
	for i, f := range pg.FaceLoops {
		loops[i] = make([]r3.Vec, len(f))
		for j, ind := range f {
			loops[i][j] = pg.Points[ind]
		}
	}
	return
}
