package InputParameters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofoam/grading"
)

var yamlInput = []byte(`
Title: "Channel"
ConvertToMeters: 0.5
Divisions: [20, 10, 10]
Box:
  Min: [0, 0, 0]
  Max: [4, 2, 1]
Grading: [1, [[0.2, 0.3, 4], [0.8, 0.7, 1]], 2]
Faces:
  ymin: {Name: front, Type: wall}
  ymax: {Name: back, Type: wall}
`)

var tomlInput = []byte(`
Title = "Channel"
ConvertToMeters = 0.5
Divisions = [20, 10, 10]
Grading = [1, [[0.2, 0.3, 4], [0.8, 0.7, 1]], 2]

[Box]
Min = [0.0, 0.0, 0.0]
Max = [4.0, 2.0, 1.0]

[Faces.ymin]
Name = "front"
Type = "wall"

[Faces.ymax]
Name = "back"
Type = "wall"
`)

var hclInput = []byte(`
title             = "Channel"
convert_to_meters = 0.5
divisions         = [20, 10, 10]
grading           = [1, [[0.2, 0.3, 4], [0.8, 0.7, 1]], 2]

box {
  min = [0, 0, 0]
  max = [4, 2, 1]
}

face "ymin" {
  name = "front"
  type = "wall"
}

face "ymax" {
  name = "back"
  type = "wall"
}
`)

func TestParse(t *testing.T) {
	var fromYAML, fromTOML, fromHCL MeshParameters
	require.NoError(t, fromYAML.Parse(yamlInput))
	require.NoError(t, fromTOML.ParseTOML(tomlInput))
	require.NoError(t, fromHCL.ParseHCL(hclInput, "mesh.hcl"))
	assert.Equal(t, fromYAML, fromTOML)
	assert.Equal(t, fromYAML, fromHCL)
	assert.Equal(t, "Channel", fromYAML.Title)
	assert.Equal(t, []int{20, 10, 10}, fromYAML.Divisions)
	assert.Equal(t, [][]float64{{0.2, 0.3, 4}, {0.8, 0.7, 1}}, fromYAML.Grading[1].Segments)
	assert.Equal(t, 2., fromYAML.Grading[2].Ratio)
	assert.Equal(t, "((0.2 0.3 4) (0.8 0.7 1))", fromYAML.Grading[1].String())

	sg, err := fromYAML.SimpleGrading()
	require.NoError(t, err)
	assert.Equal(t, "simpleGrading (1 ((0.2 0.3 4) (0.8 0.7 1)) 2)", sg.String())
	{
		var mp MeshParameters
		assert.Error(t, mp.Parse([]byte(`Grading: ["steep"]`)))
		assert.Error(t, mp.ParseHCL([]byte(`grading = ["steep"]`), "bad.hcl"))
		assert.Error(t, mp.ParseHCL([]byte(`divisions = [1, 2`), "bad.hcl"))
		assert.Error(t, mp.ParseHCL([]byte("face \"xmin\" {\n  name = \"a\"\n}\nface \"xmin\" {\n  name = \"b\"\n}\n"), "dup.hcl"))
	}
	{
		var mp MeshParameters
		require.NoError(t, mp.ParseHCL([]byte(`
tunnel {
  wind_direction = [0, 1, 0]
  windward       = 4
  points         = [[0, 0, 0], [1, 0, 0], [1, 1, 0], [0, 1, 0], [0, 0, 1], [1, 0, 1], [1, 1, 1], [0, 1, 1]]
}

boundary_layer {
  axis            = 2
  start_cell_size = 0.05
  end_cell_size   = 0.2
}
`), "tunnel.hcl"))
		require.NotNil(t, mp.Tunnel)
		assert.Equal(t, []float64{0, 1, 0}, mp.Tunnel.WindDirection)
		assert.Equal(t, 4., mp.Tunnel.Windward)
		assert.Len(t, mp.Tunnel.Points, 8)
		assert.Equal(t, []BoundaryLayer{{Axis: 2, StartCellSize: 0.05, EndCellSize: 0.2}}, mp.BoundaryLayer)
		assert.Nil(t, mp.Grading)
	}
	{
		mp := MeshParameters{Grading: []AxisGrading{{Ratio: 2}}}
		_, err := mp.SimpleGrading()
		assert.Error(t, err)
		mp.Grading = []AxisGrading{{Segments: [][]float64{{0.5, 0.5, 2}}}, {}, {}}
		_, err = mp.SimpleGrading()
		assert.ErrorIs(t, err, grading.ErrMultiGradingArity)
	}
}

func TestBoxBlockMeshDict(t *testing.T) {
	var mp MeshParameters
	require.NoError(t, mp.Parse(yamlInput))
	mp.BoundaryLayer = []BoundaryLayer{{Axis: 2, StartCellSize: 0.05, EndCellSize: 0.2}}
	bmd, err := mp.BlockMeshDict()
	require.NoError(t, err)
	assert.Equal(t, 0.5, bmd.ConvertToMeters)
	b := bmd.Blocks[0]
	assert.Equal(t, 20, b.Divisions[0])
	assert.Equal(t, 10, b.Divisions[2])
	z := b.Grading.Axes()[2].(grading.Grading)
	assert.InDelta(t, 3.4337880278964, z.Ratio(), 1.e-6)
	assert.Equal(t, "((0.2 0.3 4) (0.8 0.7 1))", b.Grading.Axes()[1].String())
	names := make([]string, len(bmd.Boundary))
	for i, p := range bmd.Boundary {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"inlet", "outlet", "front", "back", "ground", "top"}, names)
	p, _ := bmd.Patch("front")
	assert.Equal(t, "wall", p.Type)
	{
		mp := MeshParameters{}
		_, err := mp.BlockMeshDict()
		assert.Error(t, err)
	}
}

func TestTunnelBlockMeshDict(t *testing.T) {
	mp := MeshParameters{
		CellSize: []float64{1, 1, 1},
		Tunnel: &TunnelParameters{
			WindDirection: []float64{0, 1},
			Leeward:       10,
			Points:        [][]float64{{0, 0, 0}, {1, 1, 2}},
		},
	}
	bmd, err := mp.BlockMeshDict()
	require.NoError(t, err)
	b := bmd.Blocks[0]
	assert.InDelta(t, 1+2*(3+10), b.Width(), 1.e-9)
	assert.InDelta(t, 1+2*2*2, b.Length(), 1.e-9)
	assert.InDelta(t, 2+2*3, b.Height(), 1.e-9)
	assert.Equal(t, [3]int{27, 9, 8}, b.Divisions)
	inlet, ok := bmd.Patch("inlet")
	require.True(t, ok)
	for _, ind := range inlet.Faces[0] {
		assert.InDelta(t, 0.5-0.5-2*3, bmd.Vertices[ind].Y, 1.e-9)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	yml, tml, hc := filepath.Join(dir, "mesh.yaml"), filepath.Join(dir, "mesh.toml"), filepath.Join(dir, "mesh.hcl")
	require.NoError(t, os.WriteFile(yml, yamlInput, 0o644))
	require.NoError(t, os.WriteFile(tml, tomlInput, 0o644))
	require.NoError(t, os.WriteFile(hc, hclInput, 0o644))
	a, err := Load(yml)
	require.NoError(t, err)
	b, err := Load(tml)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	c, err := Load(hc)
	require.NoError(t, err)
	assert.Equal(t, a, c)
	a.Print()
	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
