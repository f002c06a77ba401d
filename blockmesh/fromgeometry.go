package blockmesh

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gofoam/geometry"
	"github.com/notargets/gofoam/grading"
	"github.com/notargets/gofoam/types"
)

var (
	ErrZLevels     = errors.New("block geometry must span exactly two Z levels")
	ErrCornerCount = errors.New("block geometry must have exactly four corners in plan")
	ErrNoGeometry  = errors.New("no geometry")
)

// Options control FromGeometries. Zero values select the defaults.
type Options struct {
	ConvertToMeters float64
	Divisions       []int
	// CellSize, when every component is positive, overrides Divisions.
	CellSize  [3]float64
	Grading   *grading.SimpleGrading
	XAxis     r3.Vec
	Tolerance float64
}

func (o Options) withDefaults() Options {
	if o.ConvertToMeters == 0 {
		o.ConvertToMeters = 1
	}
	if o.Tolerance == 0 {
		o.Tolerance = geometry.DefaultTolerance
	}
	if o.XAxis == (r3.Vec{}) {
		o.XAxis = r3.Vec{X: 1}
	}
	return o
}

// FromGeometries builds a single block blockMeshDict around the border loops
// of geoms. Each geometry becomes one boundary patch named after it; loops of
// geometries sharing a name are merged into one patch.
func FromGeometries(geoms []BlockGeometry, opts Options) (bmd *BlockMeshDict, err error) {
	if len(geoms) == 0 {
		return nil, ErrNoGeometry
	}
	opts = opts.withDefaults()
	tol := opts.Tolerance

	var all []r3.Vec
	for _, g := range geoms {
		for _, loop := range g.BorderVertices() {
			all = append(all, loop...)
		}
	}
	unique := geometry.UniqueVertices(all, tol)

	zs := geometry.UniqueLevels(unique, tol)
	if len(zs) != 2 {
		return nil, fmt.Errorf("%w: found %v", ErrZLevels, zs)
	}
	sort.Float64s(zs)

	var (
		corners []r3.Vec
		ring    [8]r3.Vec
	)
	if corners, err = sortedCorners(unique, opts.XAxis, tol); err != nil {
		return
	}
	for level, z := range zs {
		for i, c := range corners {
			c.Z = z
			var ind int
			if ind, err = geometry.MatchVertex(unique, c, tol); err != nil {
				return nil, fmt.Errorf("block corner %d: %w", level*4+i, err)
			}
			ring[level*4+i] = unique[ind]
		}
	}

	var block *Block
	if block, err = NewBlock(ring[:], opts.Divisions, opts.Grading); err != nil {
		return
	}
	if opts.CellSize[0] > 0 && opts.CellSize[1] > 0 && opts.CellSize[2] > 0 {
		block.SetDivisionsByCellSize(opts.CellSize)
	}

	global := append([]r3.Vec(nil), ring[:]...)
	for _, v := range unique {
		if _, merr := geometry.MatchVertex(global, v, tol); merr != nil {
			global = append(global, v)
		}
	}

	var (
		boundary []Patch
		byName   = make(map[string]int)
	)
	for _, g := range geoms {
		var faces [][]int
		for _, loop := range g.BorderVertices() {
			var face []int
			if face, err = geometry.MatchVertices(global, loop, tol); err != nil {
				return nil, fmt.Errorf("patch %s: %w", g.Name(), err)
			}
			faces = append(faces, face)
		}
		if i, ok := byName[g.Name()]; ok {
			boundary[i].Faces = append(boundary[i].Faces, faces...)
			continue
		}
		byName[g.Name()] = len(boundary)
		boundary = append(boundary, Patch{
			Name:  g.Name(),
			Type:  types.PatchKeyword(g.BoundaryType()),
			Faces: faces,
		})
	}

	if bmd, err = New(opts.ConvertToMeters, global, []*Block{block}, boundary); err != nil {
		return
	}
	bmd.Tolerance = tol
	return
}

// sortedCorners returns the four plan corners ordered anticlockwise, starting
// from the corner nearest the negative xAxis direction, so that vertex 0 is
// the (min x, min y) corner of the box in the xAxis frame.
func sortedCorners(vertices []r3.Vec, xAxis r3.Vec, tol float64) (corners []r3.Vec, err error) {
	plan := make([]r3.Vec, len(vertices))
	for i, v := range vertices {
		plan[i] = r3.Vec{X: v.X, Y: v.Y}
	}
	corners = geometry.UniqueVertices(plan, tol)
	if len(corners) != 4 {
		return nil, fmt.Errorf("%w: found %d", ErrCornerCount, len(corners))
	}
	var (
		center = geometry.Centroid(corners)
		ref    = r3.Vec{X: -xAxis.X, Y: -xAxis.Y}
		angles = make(map[r3.Vec]float64, 4)
	)
	for _, c := range corners {
		angles[c] = geometry.AngleAnticlockwise(ref, r3.Sub(c, center))
	}
	sort.SliceStable(corners, func(i, j int) bool {
		return angles[corners[i]] < angles[corners[j]]
	})
	return
}
