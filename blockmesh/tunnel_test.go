package blockmesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func assertVec(t *testing.T, want, got r3.Vec) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1.e-9)
	assert.InDelta(t, want.Y, got.Y, 1.e-9)
	assert.InDelta(t, want.Z, got.Z, 1.e-9)
}

// anticlockwise checks the bottom face of a hex winds anticlockwise seen from
// above and the top face sits above it.
func anticlockwise(t *testing.T, v [8]r3.Vec) {
	t.Helper()
	for i := 0; i < 4; i++ {
		a, b, c := v[i], v[(i+1)%4], v[(i+2)%4]
		n := r3.Cross(r3.Sub(b, a), r3.Sub(c, b))
		assert.True(t, n.Z > 0, "corner %d", i)
		assert.True(t, v[i+4].Z > v[i].Z)
	}
}

func TestTunnel(t *testing.T) {
	building := boxCorners(r3.Vec{}, r3.Vec{X: 1, Y: 1, Z: 1})
	{
		tun, err := NewTunnel(building, DefaultTunnelParameters())
		require.NoError(t, err)
		bmd, err := tun.BlockMeshDict(Options{Divisions: []int{19, 5, 4}})
		require.NoError(t, err)
		v := bmd.Blocks[0].Vertices
		assertVec(t, r3.Vec{X: -3, Y: -2}, v[0])
		assertVec(t, r3.Vec{X: 16, Y: 3, Z: 4}, v[6])
		anticlockwise(t, v)
		assert.InDelta(t, 19, bmd.Blocks[0].Width(), 1.e-9)
		assert.InDelta(t, 5, bmd.Blocks[0].Length(), 1.e-9)
		assert.InDelta(t, 4, bmd.Blocks[0].Height(), 1.e-9)
		assert.Equal(t, 0., bmd.ZGround())

		names := make([]string, len(bmd.Boundary))
		for i, p := range bmd.Boundary {
			names[i] = p.Name
		}
		assert.Equal(t, []string{"inlet", "outlet", "top", "ground", "left", "right"}, names)
		p, _ := bmd.Patch("inlet")
		assert.Equal(t, [][]int{{0, 4, 7, 3}}, p.Faces)
		p, _ = bmd.Patch("ground")
		assert.Equal(t, "wall", p.Type)
		p, _ = bmd.Patch("left")
		assert.Equal(t, "symmetryPlane", p.Type)
	}
	{ // Wind from the south: the inlet faces -Y
		p := DefaultTunnelParameters()
		p.WindDirection = r3.Vec{Y: 1}
		tun, err := NewTunnel(building, p)
		require.NoError(t, err)
		bmd, err := tun.BlockMeshDict(Options{})
		require.NoError(t, err)
		v := bmd.Blocks[0].Vertices
		anticlockwise(t, v)
		assertVec(t, r3.Vec{X: 3, Y: -3}, v[0])
		assertVec(t, r3.Vec{X: 3, Y: 16}, v[1])
		assert.InDelta(t, 19, bmd.Blocks[0].Width(), 1.e-9)
		inlet, _ := bmd.Patch("inlet")
		for _, ind := range inlet.Faces[0] {
			assert.InDelta(t, -3, bmd.Vertices[ind].Y, 1.e-9)
		}
	}
	{ // Diagonal wind keeps the block right handed
		p := DefaultTunnelParameters()
		p.WindDirection = r3.Vec{X: -1, Y: -1}
		tun, err := NewTunnel(building, p)
		require.NoError(t, err)
		bmd, err := tun.BlockMeshDict(Options{})
		require.NoError(t, err)
		anticlockwise(t, bmd.Blocks[0].Vertices)
		assert.InDelta(t, 18+math.Sqrt2, bmd.Blocks[0].Width(), 1.e-6)
		assert.InDelta(t, 4+math.Sqrt2, bmd.Blocks[0].Length(), 1.e-6)
	}
	{
		_, err := NewTunnel(nil, DefaultTunnelParameters())
		assert.ErrorIs(t, err, ErrNoGeometry)
		_, err = NewTunnel([]r3.Vec{{}, {X: 1, Y: 1}}, DefaultTunnelParameters())
		assert.ErrorIs(t, err, ErrFlatGeometry)
	}
}
