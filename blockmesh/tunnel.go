package blockmesh

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gofoam/geometry"
	"github.com/notargets/gofoam/types"
)

var ErrFlatGeometry = errors.New("tunnel geometry has no height")

// TunnelParameters size a wind tunnel around a geometry. The multipliers are
// in units of the geometry height and measured from its oriented bounding box.
type TunnelParameters struct {
	WindDirection r3.Vec
	Windward      float64
	Top           float64
	Side          float64
	Leeward       float64
}

func DefaultTunnelParameters() TunnelParameters {
	return TunnelParameters{
		WindDirection: r3.Vec{X: 1},
		Windward:      3,
		Top:           3,
		Side:          2,
		Leeward:       15,
	}
}

// Tunnel is a single block domain aligned with the wind. The ground stays at
// the geometry's lowest point.
type Tunnel struct {
	Parameters TunnelParameters
	Box        *geometry.OrientedBox
	Inlet      *PatchGeometry
	Outlet     *PatchGeometry
	Top        *PatchGeometry
	Ground     *PatchGeometry
	Left       *PatchGeometry
	Right      *PatchGeometry
}

func NewTunnel(points []r3.Vec, p TunnelParameters) (t *Tunnel, err error) {
	if len(points) == 0 {
		return nil, ErrNoGeometry
	}
	if p.WindDirection.X == 0 && p.WindDirection.Y == 0 {
		p.WindDirection = r3.Vec{X: 1}
	}
	box := geometry.NewOrientedBoundingBox(points, p.WindDirection)
	h := box.Box.Size().Z
	if h <= 0 {
		return nil, fmt.Errorf("%w: z range %v", ErrFlatGeometry, box.Box.Min().Z)
	}
	box = box.Pad(
		r3.Vec{X: p.Windward * h, Y: p.Side * h},
		r3.Vec{X: p.Leeward * h, Y: p.Side * h, Z: p.Top * h},
	)
	t = &Tunnel{Parameters: p, Box: box}
	c := box.Corners()
	quads := []struct {
		patch **PatchGeometry
		name  string
		typ   types.PatchType
		quad  [4]r3.Vec
	}{
		{&t.Inlet, "inlet", types.PatchGeneric, [4]r3.Vec{c[0], c[4], c[7], c[3]}},
		{&t.Outlet, "outlet", types.PatchGeneric, [4]r3.Vec{c[1], c[2], c[6], c[5]}},
		{&t.Top, "top", types.PatchSymmetryPlane, [4]r3.Vec{c[4], c[5], c[6], c[7]}},
		{&t.Ground, "ground", types.PatchWall, [4]r3.Vec{c[0], c[3], c[2], c[1]}},
		{&t.Left, "left", types.PatchSymmetryPlane, [4]r3.Vec{c[2], c[3], c[7], c[6]}},
		{&t.Right, "right", types.PatchSymmetryPlane, [4]r3.Vec{c[0], c[1], c[5], c[4]}},
	}
	for _, q := range quads {
		if *q.patch, err = NewQuadPatch(q.name, q.typ.String(), q.quad); err != nil {
			return nil, err
		}
	}
	return
}

// Patches lists the six faces in boundary table order.
func (t *Tunnel) Patches() []*PatchGeometry {
	return []*PatchGeometry{t.Inlet, t.Outlet, t.Top, t.Ground, t.Left, t.Right}
}

// BlockMeshDict meshes the tunnel. The x axis of opts is replaced by the
// wind direction.
func (t *Tunnel) BlockMeshDict(opts Options) (*BlockMeshDict, error) {
	opts.XAxis = t.Parameters.WindDirection
	patches := t.Patches()
	geoms := make([]BlockGeometry, len(patches))
	for i, pg := range patches {
		geoms[i] = pg
	}
	return FromGeometries(geoms, opts)
}
