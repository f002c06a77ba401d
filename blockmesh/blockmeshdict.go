package blockmesh

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gofoam/foamdict"
	"github.com/notargets/gofoam/foamfile"
	"github.com/notargets/gofoam/geometry"
)

var ErrFaceIndex = errors.New("boundary face refers to a missing vertex")

// Patch is one entry of the boundary table. Faces hold global vertex
// indices.
type Patch struct {
	Name  string
	Type  string
	Faces [][]int
}

type BlockMeshDict struct {
	ConvertToMeters float64
	Vertices        []r3.Vec
	Blocks          []*Block
	Boundary        []Patch
	Tolerance       float64
}

// New checks that every block vertex and every face index resolves in the
// global vertex list.
func New(convertToMeters float64, vertices []r3.Vec, blocks []*Block, boundary []Patch) (bmd *BlockMeshDict, err error) {
	bmd = &BlockMeshDict{
		ConvertToMeters: convertToMeters,
		Vertices:        vertices,
		Blocks:          blocks,
		Boundary:        boundary,
		Tolerance:       geometry.DefaultTolerance,
	}
	if _, err = bmd.BlockIndices(); err != nil {
		return nil, err
	}
	for _, p := range boundary {
		for _, f := range p.Faces {
			for _, ind := range f {
				if ind < 0 || ind >= len(vertices) {
					return nil, fmt.Errorf("%w: patch %s face %v, %d vertices", ErrFaceIndex, p.Name, f, len(vertices))
				}
			}
		}
	}
	return
}

func (bmd *BlockMeshDict) BlockIndices() (indices [][8]int, err error) {
	indices = make([][8]int, len(bmd.Blocks))
	for i, b := range bmd.Blocks {
		if indices[i], err = b.ResolveIndices(bmd.Vertices, bmd.Tolerance); err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
	}
	return
}

func (bmd *BlockMeshDict) Patch(name string) (p Patch, ok bool) {
	for _, p = range bmd.Boundary {
		if p.Name == name {
			return p, true
		}
	}
	return Patch{}, false
}

// ZGround is the lowest block vertex in meters.
func (bmd *BlockMeshDict) ZGround() float64 {
	z := math.Inf(1)
	for _, b := range bmd.Blocks {
		z = math.Min(z, b.MinZ())
	}
	return z * bmd.ConvertToMeters
}

func formatFace(f []int) string {
	s := make([]string, len(f))
	for i, ind := range f {
		s[i] = strconv.Itoa(ind)
	}
	return "(" + strings.Join(s, " ") + ")"
}

func (bmd *BlockMeshDict) sections() (vertices, blocks []string, err error) {
	var indices [][8]int
	if indices, err = bmd.BlockIndices(); err != nil {
		return
	}
	for _, v := range bmd.Vertices {
		vertices = append(vertices, geometry.FormatVertex(v))
	}
	for i, b := range bmd.Blocks {
		blocks = append(blocks, b.HexString(indices[i]))
	}
	return
}

// Dict is the mapping view of the file body, as foamdict.Parse would return
// for the text written by ToOpenFOAM.
func (bmd *BlockMeshDict) Dict() (d *foamdict.Dict, err error) {
	var vertices, blocks []string
	if vertices, blocks, err = bmd.sections(); err != nil {
		return
	}
	patches := make([]string, len(bmd.Boundary))
	for i, p := range bmd.Boundary {
		faces := make([]string, len(p.Faces))
		for j, f := range p.Faces {
			faces[j] = formatFace(f)
		}
		patches[i] = p.Name + " { type " + p.Type + "; faces (" + strings.Join(faces, " ") + "); }"
	}
	d = foamdict.NewDict().
		Set("convertToMeters", strconv.FormatFloat(bmd.ConvertToMeters, 'f', 4, 64)).
		Set("vertices", "("+strings.Join(vertices, " ")+")").
		Set("blocks", "("+strings.Join(blocks, " ")+")").
		Set("edges", "()").
		Set("boundary", "("+strings.Join(patches, " ")+")").
		Set("mergePatchPairs", "()")
	return
}

// File wraps Dict with the blockMeshDict header.
func (bmd *BlockMeshDict) File() (*foamfile.File, error) {
	d, err := bmd.Dict()
	if err != nil {
		return nil, err
	}
	return foamfile.NewFromDict(foamfile.BlockMeshDict, d), nil
}

// ToOpenFOAM renders the file with one vertex, block and face per line.
func (bmd *BlockMeshDict) ToOpenFOAM() (string, error) {
	vertices, blocks, err := bmd.sections()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	list := func(name string, items []string, indent string) {
		b.WriteString(indent + name + "\n" + indent + "(\n")
		for _, it := range items {
			b.WriteString(indent + "    " + it + "\n")
		}
		b.WriteString(indent + ");\n")
	}
	b.WriteString(foamfile.BlockMeshDict.Header().String())
	b.WriteString(fmt.Sprintf("\nconvertToMeters %.4f;\n\n", bmd.ConvertToMeters))
	list("vertices", vertices, "")
	b.WriteString("\n")
	list("blocks", blocks, "")
	b.WriteString("\n")
	list("edges", nil, "")
	b.WriteString("\nboundary\n(\n")
	for _, p := range bmd.Boundary {
		faces := make([]string, len(p.Faces))
		for j, f := range p.Faces {
			faces[j] = formatFace(f)
		}
		b.WriteString("    " + p.Name + "\n    {\n")
		b.WriteString("        type " + p.Type + ";\n")
		list("faces", faces, "        ")
		b.WriteString("    }\n")
	}
	b.WriteString(");\n\n")
	list("mergePatchPairs", nil, "")
	b.WriteString("\n" + foamfile.EndSeparator + "\n")
	return b.String(), nil
}

func (bmd *BlockMeshDict) WriteTo(w io.Writer) (n int64, err error) {
	var text string
	if text, err = bmd.ToOpenFOAM(); err != nil {
		return
	}
	var m int
	m, err = io.WriteString(w, text)
	return int64(m), err
}

// Geometry rebuilds every boundary patch as a stand-alone geometry with its
// own compact vertex list.
func (bmd *BlockMeshDict) Geometry() (geoms []*PatchGeometry) {
	for _, p := range bmd.Boundary {
		var (
			local  = make(map[int]int)
			points []r3.Vec
			faces  = make([][]int, len(p.Faces))
		)
		for i, f := range p.Faces {
			faces[i] = make([]int, len(f))
			for j, ind := range f {
				li, ok := local[ind]
				if !ok {
					li = len(points)
					local[ind] = li
					points = append(points, bmd.Vertices[ind])
				}
				faces[i][j] = li
			}
		}
		geoms = append(geoms, &PatchGeometry{ID: p.Name, Points: points, FaceLoops: faces, Boundary: p.Type})
	}
	return
}
