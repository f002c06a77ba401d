package blockmesh

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gofoam/foamdict"
	"github.com/notargets/gofoam/foamfile"
	"github.com/notargets/gofoam/geometry"
)

// cubeGeometries are the six faces of a box as outward facing quads.
func cubeGeometries(t *testing.T, lo, hi r3.Vec) []BlockGeometry {
	c := boxCorners(lo, hi)
	faces := []struct {
		name, typ string
		quad      [4]r3.Vec
	}{
		{"inlet", "inlet", [4]r3.Vec{c[0], c[4], c[7], c[3]}},
		{"outlet", "outlet", [4]r3.Vec{c[1], c[2], c[6], c[5]}},
		{"ground", "wall", [4]r3.Vec{c[0], c[3], c[2], c[1]}},
		{"top", "symmetryPlane", [4]r3.Vec{c[4], c[5], c[6], c[7]}},
		{"sides", "symmetryPlane", [4]r3.Vec{c[0], c[1], c[5], c[4]}},
		{"sides", "symmetryPlane", [4]r3.Vec{c[2], c[3], c[7], c[6]}},
	}
	geoms := make([]BlockGeometry, len(faces))
	for i, f := range faces {
		pg, err := NewQuadPatch(f.name, f.typ, f.quad)
		require.NoError(t, err)
		geoms[i] = pg
	}
	return geoms
}

func TestFromGeometriesCube(t *testing.T) {
	bmd, err := FromGeometries(cubeGeometries(t, r3.Vec{}, r3.Vec{X: 1, Y: 1, Z: 1}),
		Options{Divisions: []int{10, 10, 10}})
	require.NoError(t, err)
	assert.Equal(t, boxCorners(r3.Vec{}, r3.Vec{X: 1, Y: 1, Z: 1}), bmd.Vertices)
	require.Len(t, bmd.Blocks, 1)
	require.Len(t, bmd.Boundary, 5)
	{
		p, ok := bmd.Patch("inlet")
		require.True(t, ok)
		assert.Equal(t, Patch{Name: "inlet", Type: "patch", Faces: [][]int{{0, 4, 7, 3}}}, p)
		p, ok = bmd.Patch("sides")
		require.True(t, ok)
		assert.Equal(t, "symmetryPlane", p.Type)
		assert.Equal(t, [][]int{{0, 1, 5, 4}, {2, 3, 7, 6}}, p.Faces)
		p, _ = bmd.Patch("ground")
		assert.Equal(t, "wall", p.Type)
		_, ok = bmd.Patch("missing")
		assert.False(t, ok)
	}
	text, err := bmd.ToOpenFOAM()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, foamfile.Banner))
	assert.Contains(t, text, "    object      blockMeshDict;\n")
	assert.Contains(t, text, "\nconvertToMeters 1.0000;\n")
	assert.Contains(t, text, "vertices\n(\n    (0 0 0)\n    (1 0 0)\n    (1 1 0)\n    (0 1 0)\n")
	assert.Contains(t, text, "blocks\n(\n    hex (0 1 2 3 4 5 6 7) (10 10 10) simpleGrading (1 1 1)\n);\n")
	assert.Contains(t, text, "edges\n(\n);\n")
	assert.Contains(t, text, "    inlet\n    {\n        type patch;\n        faces\n        (\n            (0 4 7 3)\n        );\n    }\n")
	assert.Contains(t, text, "mergePatchPairs\n(\n);\n")
	assert.True(t, strings.HasSuffix(text, foamfile.EndSeparator+"\n"))

	var buf bytes.Buffer
	n, err := bmd.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(text)), n)
	assert.Equal(t, text, buf.String())
}

func TestBlockMeshDictRoundTrip(t *testing.T) {
	bmd, err := FromGeometries(cubeGeometries(t, r3.Vec{X: -1, Y: -2, Z: 0.5}, r3.Vec{X: 3, Y: 2, Z: 2.5}),
		Options{ConvertToMeters: 0.001, Divisions: []int{8, 8, 4}})
	require.NoError(t, err)
	_, err = bmd.Blocks[0].GradeAxis(2, 0.1, 0.4)
	require.NoError(t, err)
	text, err := bmd.ToOpenFOAM()
	require.NoError(t, err)
	{ // The mapping view matches what the parser reads back
		parsed, err := foamdict.Parse(text)
		require.NoError(t, err)
		parsed.Delete("FoamFile")
		d, err := bmd.Dict()
		require.NoError(t, err)
		assert.True(t, d.Equal(parsed), "\n%s\n%s", foamdict.Format(d), foamdict.Format(parsed))
	}
	back, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, 0.001, back.ConvertToMeters)
	assert.Equal(t, bmd.Vertices, back.Vertices)
	assert.Equal(t, bmd.Boundary, back.Boundary)
	require.Len(t, back.Blocks, 1)
	assert.Equal(t, bmd.Blocks[0].Vertices, back.Blocks[0].Vertices)
	assert.Equal(t, bmd.Blocks[0].Divisions, back.Blocks[0].Divisions)
	assert.Equal(t, bmd.Blocks[0].Grading.String(), back.Blocks[0].Grading.String())
	assert.InDelta(t, 0.0005, back.ZGround(), 1.e-12)

	text2, err := back.ToOpenFOAM()
	require.NoError(t, err)
	assert.Equal(t, text, text2)
	{
		f, err := back.File()
		require.NoError(t, err)
		data, err := f.Marshal()
		require.NoError(t, err)
		again, err := Parse(string(data))
		require.NoError(t, err)
		assert.Equal(t, back.Boundary, again.Boundary)
	}
}

func TestFromDict(t *testing.T) {
	{ // Legacy patches list, zone names and multiGrading
		text := `
scale 2;
vertices
(
    (0 0 0) (1 0 0) (1 1 0) (0 1 0)
    (0 0 1) (1 0 1) (1 1 1) (0 1 1)
);
blocks
(
    hex (0 1 2 3 4 5 6 7) fluid (4 4 4)
    simpleGrading (1 ((0.5 0.5 2) (0.5 0.5 0.5)) 3)
);
edges ();
patches
(
    patch inlet ((0 4 7 3))
    wall walls ((0 3 2 1) (4 5 6 7))
);
`
		bmd, err := Parse(text)
		require.NoError(t, err)
		assert.Equal(t, 2., bmd.ConvertToMeters)
		assert.Equal(t, "simpleGrading (1 ((0.5 0.5 2) (0.5 0.5 0.5)) 3)", bmd.Blocks[0].Grading.String())
		assert.Equal(t, []Patch{
			{Name: "inlet", Type: "patch", Faces: [][]int{{0, 4, 7, 3}}},
			{Name: "walls", Type: "wall", Faces: [][]int{{0, 3, 2, 1}, {4, 5, 6, 7}}},
		}, bmd.Boundary)
	}
	{ // Missing grading is uniform
		bmd, err := Parse(`vertices ((0 0 0) (1 0 0) (1 1 0) (0 1 0) (0 0 1) (1 0 1) (1 1 1) (0 1 1));
blocks (hex (0 1 2 3 4 5 6 7) (2 3 4));`)
		require.NoError(t, err)
		assert.Equal(t, 1., bmd.ConvertToMeters)
		assert.True(t, bmd.Blocks[0].Grading.IsUniform())
		assert.Empty(t, bmd.Boundary)
	}
	{
		_, err := Parse(`vertices ((0 0 0)); blocks (hex (0 1 2) (1 1 1));`)
		assert.ErrorIs(t, err, ErrBlockSyntax)
	}
	{
		_, err := Parse(`vertices ((0 0 0) (1 0 0) (1 1 0) (0 1 0) (0 0 1) (1 0 1) (1 1 1) (0 1 1));
blocks (hex (0 1 2 3 4 5 6 7) (2 3 4) edgeGrading (1 1 1 1 1 1 1 1 1 1 1 1));`)
		assert.ErrorIs(t, err, ErrBlockSyntax)
	}
	{
		_, err := Parse(`blocks ();`)
		assert.ErrorIs(t, err, foamdict.ErrMissingKey)
	}
	{
		_, err := Parse(`vertices ((0 0 0) (1 0 0) (1 1 0) (0 1 0) (0 0 1) (1 0 1) (1 1 1) (0 1 1));
blocks (hex (0 1 2 3 4 5 6 7) (2 3 4));
boundary (inlet { type patch; faces ((0 4 7 9)); });`)
		assert.ErrorIs(t, err, ErrFaceIndex)
	}
	{
		_, err := Parse(`vertices ((0 0 0) (1 0 0); blocks ();`)
		assert.ErrorIs(t, err, foamdict.ErrUnbalanced)
	}
}

func TestFromGeometriesErrors(t *testing.T) {
	{
		_, err := FromGeometries(nil, Options{})
		assert.ErrorIs(t, err, ErrNoGeometry)
	}
	{
		geoms := cubeGeometries(t, r3.Vec{}, r3.Vec{X: 1, Y: 1, Z: 1})
		extra, err := NewQuadPatch("roof", "wall", [4]r3.Vec{{Z: 2}, {X: 1, Z: 2}, {X: 1, Y: 1, Z: 2}, {Y: 1, Z: 2}})
		require.NoError(t, err)
		_, err = FromGeometries(append(geoms, extra), Options{})
		assert.ErrorIs(t, err, ErrZLevels)
	}
	{
		geoms := cubeGeometries(t, r3.Vec{}, r3.Vec{X: 1, Y: 1, Z: 1})
		extra, err := NewQuadPatch("fin", "wall", [4]r3.Vec{{X: 2}, {X: 3}, {X: 3, Z: 1}, {X: 2, Z: 1}})
		require.NoError(t, err)
		_, err = FromGeometries(append(geoms, extra), Options{})
		assert.ErrorIs(t, err, ErrCornerCount)
	}
	{
		_, err := NewQuadPatch("bad-name", "wall", [4]r3.Vec{})
		assert.ErrorIs(t, err, ErrInvalidName)
		_, err = NewPatchGeometry("ok", "wall", []r3.Vec{{}}, [][]int{{0, 1}})
		assert.Error(t, err)
	}
	{
		bmd, err := FromGeometries(cubeGeometries(t, r3.Vec{}, r3.Vec{X: 4, Y: 2, Z: 1}),
			Options{CellSize: [3]float64{0.5, 0.5, 0.25}})
		require.NoError(t, err)
		assert.Equal(t, [3]int{8, 4, 4}, bmd.Blocks[0].Divisions)
	}
}

func TestNewBlockMeshDict(t *testing.T) {
	corners := boxCorners(r3.Vec{}, r3.Vec{X: 1, Y: 1, Z: 1})
	b, err := NewBlock(corners, nil, nil)
	require.NoError(t, err)
	{
		_, err := New(1, corners[:6], []*Block{b}, nil)
		assert.ErrorIs(t, err, geometry.ErrVertexNotFound)
	}
	{
		_, err := New(1, corners, []*Block{b}, []Patch{{Name: "p", Type: "patch", Faces: [][]int{{0, 1, 2, 8}}}})
		assert.ErrorIs(t, err, ErrFaceIndex)
	}
	{
		bmd, err := New(1, corners, []*Block{b}, []Patch{
			{Name: "top", Type: "patch", Faces: [][]int{{4, 5, 6, 7}}},
			{Name: "front", Type: "wall", Faces: [][]int{{0, 1, 5, 4}}},
		})
		require.NoError(t, err)
		geoms := bmd.Geometry()
		require.Len(t, geoms, 2)
		assert.Equal(t, "top", geoms[0].Name())
		assert.Equal(t, [][]int{{0, 1, 2, 3}}, geoms[0].Faces())
		assert.Equal(t, corners[4:], geoms[0].Vertices())
		assert.Equal(t, "wall", geoms[1].BoundaryType())
		assert.Equal(t, [][]r3.Vec{{corners[0], corners[1], corners[5], corners[4]}}, geoms[1].BorderVertices())
	}
}
