package blockmesh

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gofoam/geometry"
	"github.com/notargets/gofoam/grading"
)

var (
	ErrVertexCount = errors.New("a hex block needs exactly 8 vertices")
	ErrDivisions   = errors.New("a hex block needs 3 divisions")
)

var DefaultDivisions = [3]int{5, 5, 5}

// Block is one hexahedral block. Vertices follow OpenFOAM's hex ordering:
// the bottom face anticlockwise seen from above, then the top face in the
// same order.
type Block struct {
	Vertices  [8]r3.Vec
	Divisions [3]int
	Grading   grading.SimpleGrading
}

// NewBlock defaults nil divisions to DefaultDivisions and a nil grading to
// uniform.
func NewBlock(vertices []r3.Vec, divisions []int, g *grading.SimpleGrading) (b *Block, err error) {
	if len(vertices) != 8 {
		return nil, fmt.Errorf("%w: got %d", ErrVertexCount, len(vertices))
	}
	b = &Block{Divisions: DefaultDivisions, Grading: grading.UniformGrading()}
	copy(b.Vertices[:], vertices)
	if divisions != nil {
		if len(divisions) != 3 {
			return nil, fmt.Errorf("%w: got %v", ErrDivisions, divisions)
		}
		copy(b.Divisions[:], divisions)
	}
	if g != nil {
		b.Grading = *g
	}
	return
}

// ResolveIndices finds the block's vertices in a global vertex list.
func (b *Block) ResolveIndices(global []r3.Vec, tol float64) (indices [8]int, err error) {
	var ind []int
	if ind, err = geometry.MatchVertices(global, b.Vertices[:], tol); err != nil {
		return
	}
	copy(indices[:], ind)
	return
}

func (b *Block) MinZ() (z float64) {
	z = b.Vertices[0].Z
	for _, v := range b.Vertices[1:] {
		z = math.Min(z, v.Z)
	}
	return
}

// Width is the length of the edge from vertex 0 to 1, the local X extent.
func (b *Block) Width() float64 { return geometry.Distance(b.Vertices[0], b.Vertices[1]) }

// Length is the edge from vertex 0 to 3, the local Y extent.
func (b *Block) Length() float64 { return geometry.Distance(b.Vertices[0], b.Vertices[3]) }

// Height is the edge from vertex 0 to 4.
func (b *Block) Height() float64 { return geometry.Distance(b.Vertices[0], b.Vertices[4]) }

func (b *Block) Center() r3.Vec { return geometry.Centroid(b.Vertices[:]) }

func (b *Block) Dimensions() [3]float64 {
	return [3]float64{b.Width(), b.Length(), b.Height()}
}

// SetDivisionsByCellSize rounds each dimension over the requested cell size.
// A zero cell size is not checked.
func (b *Block) SetDivisionsByCellSize(cellSize [3]float64) {
	dims := b.Dimensions()
	for i := range dims {
		b.Divisions[i] = int(math.Round(dims[i] / cellSize[i]))
	}
}

// GradeAxis sets the division count and expansion ratio of one local axis
// (0, 1 or 2) so that cells grow from startSize to endSize.
func (b *Block) GradeAxis(axis int, startSize, endSize float64) (p grading.GradientProperties, err error) {
	if axis < 0 || axis > 2 {
		return p, fmt.Errorf("axis %d out of range", axis)
	}
	if p, err = grading.ByLengthStartEndSize(b.Dimensions()[axis], startSize, endSize); err != nil {
		return
	}
	b.Divisions[axis] = p.CellCount
	b.Grading = b.Grading.WithAxis(axis, p.Grading())
	return
}

// HexString is the block's blocks entry given its global vertex indices.
func (b *Block) HexString(indices [8]int) string {
	ind := make([]string, 8)
	for i, v := range indices {
		ind[i] = strconv.Itoa(v)
	}
	return fmt.Sprintf("hex (%s) (%d %d %d) %s", strings.Join(ind, " "),
		b.Divisions[0], b.Divisions[1], b.Divisions[2], b.Grading)
}
