package InputParameters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ghodss/yaml"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gofoam/blockmesh"
	"github.com/notargets/gofoam/grading"
)

// Parameters obtained from the YAML or TOML mesh input file
type MeshParameters struct {
	Title           string                    `json:"Title" toml:"Title"`
	ConvertToMeters float64                   `json:"ConvertToMeters" toml:"ConvertToMeters"`
	Divisions       []int                     `json:"Divisions" toml:"Divisions"`
	CellSize        []float64                 `json:"CellSize" toml:"CellSize"`
	XAxis           []float64                 `json:"XAxis" toml:"XAxis"`
	Tolerance       float64                   `json:"Tolerance" toml:"Tolerance"`
	Box             *BoxParameters            `json:"Box" toml:"Box"`
	Grading         []AxisGrading             `json:"Grading" toml:"Grading"` // X, Y, Z
	BoundaryLayer   []BoundaryLayer           `json:"BoundaryLayer" toml:"BoundaryLayer"`
	Tunnel          *TunnelParameters         `json:"Tunnel" toml:"Tunnel"`
	Faces           map[string]FaceParameters `json:"Faces" toml:"Faces"` // Keyed by xmin, xmax, ymin, ymax, zmin, zmax
}

type BoxParameters struct {
	Min []float64 `json:"Min" toml:"Min"`
	Max []float64 `json:"Max" toml:"Max"`
}

// BoundaryLayer grades one block axis from a start to an end cell size.
type BoundaryLayer struct {
	Axis          int     `json:"Axis" toml:"Axis"`
	StartCellSize float64 `json:"StartCellSize" toml:"StartCellSize"`
	EndCellSize   float64 `json:"EndCellSize" toml:"EndCellSize"`
}

type TunnelParameters struct {
	WindDirection []float64   `json:"WindDirection" toml:"WindDirection"`
	Windward      float64     `json:"Windward" toml:"Windward"`
	Top           float64     `json:"Top" toml:"Top"`
	Side          float64     `json:"Side" toml:"Side"`
	Leeward       float64     `json:"Leeward" toml:"Leeward"`
	Points        [][]float64 `json:"Points" toml:"Points"`
}

type FaceParameters struct {
	Name string `json:"Name" toml:"Name"`
	Type string `json:"Type" toml:"Type"`
}

var DefaultFaces = map[string]FaceParameters{
	"xmin": {"inlet", "patch"},
	"xmax": {"outlet", "patch"},
	"ymin": {"sides", "symmetryPlane"},
	"ymax": {"sides", "symmetryPlane"},
	"zmin": {"ground", "wall"},
	"zmax": {"top", "symmetryPlane"},
}

// AxisGrading is either a single expansion ratio or a list of
// (length fraction, cell fraction, ratio) segments.
type AxisGrading struct {
	Ratio    float64
	Segments [][]float64
}

func (ag *AxisGrading) UnmarshalJSON(b []byte) (err error) {
	var r float64
	if err = json.Unmarshal(b, &r); err == nil {
		ag.Ratio = r
		return
	}
	var segs [][]float64
	if err = json.Unmarshal(b, &segs); err != nil {
		return fmt.Errorf("grading %s is neither a ratio nor a list of segments", b)
	}
	ag.Segments = segs
	return
}

func (ag AxisGrading) MarshalJSON() ([]byte, error) {
	if len(ag.Segments) > 0 {
		return json.Marshal(ag.Segments)
	}
	return json.Marshal(ag.Ratio)
}

func tomlNumber(v interface{}) (f float64, err error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("%v is not a number", v)
}

func (ag *AxisGrading) UnmarshalTOML(v interface{}) (err error) {
	if list, ok := v.([]interface{}); ok {
		ag.Segments = make([][]float64, len(list))
		for i, s := range list {
			seg, ok := s.([]interface{})
			if !ok {
				return fmt.Errorf("grading segment %v is not a list", s)
			}
			ag.Segments[i] = make([]float64, len(seg))
			for j, e := range seg {
				if ag.Segments[i][j], err = tomlNumber(e); err != nil {
					return
				}
			}
		}
		return
	}
	ag.Ratio, err = tomlNumber(v)
	return
}

func (ag AxisGrading) Axis() (grading.Axis, error) {
	if len(ag.Segments) > 0 {
		return grading.ToAxis(ag.Segments)
	}
	if ag.Ratio == 0 {
		return grading.FromExpansionRatio(1), nil
	}
	return grading.FromExpansionRatio(ag.Ratio), nil
}

func (ag AxisGrading) String() string {
	a, err := ag.Axis()
	if err != nil {
		return fmt.Sprintf("invalid(%v)", err)
	}
	return a.String()
}

// Parse reads YAML (or JSON) input.
func (mp *MeshParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, mp)
}

func (mp *MeshParameters) ParseTOML(data []byte) (err error) {
	_, err = toml.Decode(string(data), mp)
	return
}

// Load picks the format from the file extension: .toml is TOML, .hcl is HCL,
// anything else is read as YAML.
func Load(filename string) (mp *MeshParameters, err error) {
	var data []byte
	if data, err = os.ReadFile(filename); err != nil {
		return nil, fmt.Errorf("unable to read input file %s: %w", filename, err)
	}
	mp = &MeshParameters{}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = mp.ParseTOML(data)
	case ".hcl":
		err = mp.ParseHCL(data, filename)
	default:
		err = mp.Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return
}

func toVec(f []float64) (v r3.Vec, err error) {
	switch len(f) {
	case 0:
	case 2:
		v = r3.Vec{X: f[0], Y: f[1]}
	case 3:
		v = r3.Vec{X: f[0], Y: f[1], Z: f[2]}
	default:
		err = fmt.Errorf("%v is not a 2 or 3 component vector", f)
	}
	return
}

func (mp *MeshParameters) SimpleGrading() (sg *grading.SimpleGrading, err error) {
	if len(mp.Grading) == 0 {
		return nil, nil
	}
	if len(mp.Grading) != 3 {
		return nil, fmt.Errorf("grading needs 3 axes, got %d", len(mp.Grading))
	}
	var axes [3]grading.Axis
	for i, ag := range mp.Grading {
		if axes[i], err = ag.Axis(); err != nil {
			return nil, fmt.Errorf("grading axis %d: %w", i, err)
		}
	}
	return &grading.SimpleGrading{X: axes[0], Y: axes[1], Z: axes[2]}, nil
}

func (mp *MeshParameters) Options() (opts blockmesh.Options, err error) {
	opts = blockmesh.Options{
		ConvertToMeters: mp.ConvertToMeters,
		Divisions:       mp.Divisions,
		Tolerance:       mp.Tolerance,
	}
	if len(mp.CellSize) != 0 {
		if len(mp.CellSize) != 3 {
			return opts, fmt.Errorf("cell size needs 3 values, got %v", mp.CellSize)
		}
		copy(opts.CellSize[:], mp.CellSize)
	}
	if opts.XAxis, err = toVec(mp.XAxis); err != nil {
		return
	}
	opts.Grading, err = mp.SimpleGrading()
	return
}

func (mp *MeshParameters) faces() (faces map[string]FaceParameters) {
	faces = make(map[string]FaceParameters, len(DefaultFaces))
	for k, v := range DefaultFaces {
		faces[k] = v
	}
	for k, v := range mp.Faces {
		faces[strings.ToLower(k)] = v
	}
	return
}

func (mp *MeshParameters) boxGeometries() (geoms []blockmesh.BlockGeometry, err error) {
	var lo, hi r3.Vec
	if lo, err = toVec(mp.Box.Min); err != nil {
		return
	}
	if hi, err = toVec(mp.Box.Max); err != nil {
		return
	}
	var (
		c     [8]r3.Vec
		faces = mp.faces()
		quads = []struct {
			face string
			quad [4]int
		}{
			{"xmin", [4]int{0, 4, 7, 3}},
			{"xmax", [4]int{1, 2, 6, 5}},
			{"ymin", [4]int{0, 1, 5, 4}},
			{"ymax", [4]int{2, 3, 7, 6}},
			{"zmin", [4]int{0, 3, 2, 1}},
			{"zmax", [4]int{4, 5, 6, 7}},
		}
	)
	ring := [4][2]float64{{lo.X, lo.Y}, {hi.X, lo.Y}, {hi.X, hi.Y}, {lo.X, hi.Y}}
	for i, xy := range ring {
		c[i] = r3.Vec{X: xy[0], Y: xy[1], Z: lo.Z}
		c[i+4] = r3.Vec{X: xy[0], Y: xy[1], Z: hi.Z}
	}
	for _, q := range quads {
		f := faces[q.face]
		var pg *blockmesh.PatchGeometry
		pg, err = blockmesh.NewQuadPatch(f.Name, f.Type,
			[4]r3.Vec{c[q.quad[0]], c[q.quad[1]], c[q.quad[2]], c[q.quad[3]]})
		if err != nil {
			return nil, fmt.Errorf("face %s: %w", q.face, err)
		}
		geoms = append(geoms, pg)
	}
	return
}

func (mp *MeshParameters) tunnel() (t *blockmesh.Tunnel, err error) {
	tp := blockmesh.DefaultTunnelParameters()
	if len(mp.Tunnel.WindDirection) != 0 {
		if tp.WindDirection, err = toVec(mp.Tunnel.WindDirection); err != nil {
			return
		}
	}
	for _, m := range []struct {
		from float64
		to   *float64
	}{
		{mp.Tunnel.Windward, &tp.Windward},
		{mp.Tunnel.Top, &tp.Top},
		{mp.Tunnel.Side, &tp.Side},
		{mp.Tunnel.Leeward, &tp.Leeward},
	} {
		if m.from != 0 {
			*m.to = m.from
		}
	}
	points := make([]r3.Vec, len(mp.Tunnel.Points))
	for i, p := range mp.Tunnel.Points {
		if points[i], err = toVec(p); err != nil {
			return
		}
	}
	return blockmesh.NewTunnel(points, tp)
}

// BlockMeshDict builds the mesh description: a wind tunnel when Tunnel is
// set, otherwise the Box. Boundary layers are applied last.
func (mp *MeshParameters) BlockMeshDict() (bmd *blockmesh.BlockMeshDict, err error) {
	var opts blockmesh.Options
	if opts, err = mp.Options(); err != nil {
		return
	}
	switch {
	case mp.Tunnel != nil:
		var t *blockmesh.Tunnel
		if t, err = mp.tunnel(); err != nil {
			return
		}
		bmd, err = t.BlockMeshDict(opts)
	case mp.Box != nil:
		var geoms []blockmesh.BlockGeometry
		if geoms, err = mp.boxGeometries(); err != nil {
			return
		}
		bmd, err = blockmesh.FromGeometries(geoms, opts)
	default:
		err = fmt.Errorf("input needs a Box or a Tunnel")
	}
	if err != nil {
		return nil, err
	}
	for _, bl := range mp.BoundaryLayer {
		if _, err = bmd.Blocks[0].GradeAxis(bl.Axis, bl.StartCellSize, bl.EndCellSize); err != nil {
			return nil, fmt.Errorf("boundary layer on axis %d: %w", bl.Axis, err)
		}
	}
	return
}

func (mp *MeshParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", mp.Title)
	fmt.Printf("%8.5f\t\t= ConvertToMeters\n", mp.ConvertToMeters)
	fmt.Printf("%v\t\t= Divisions\n", mp.Divisions)
	if len(mp.CellSize) != 0 {
		fmt.Printf("%v\t\t= CellSize\n", mp.CellSize)
	}
	if mp.Box != nil {
		fmt.Printf("%v -> %v\t= Box\n", mp.Box.Min, mp.Box.Max)
	}
	if mp.Tunnel != nil {
		fmt.Printf("%v\t\t= Wind Direction\n", mp.Tunnel.WindDirection)
		fmt.Printf("[%d]\t\t\t\t= Geometry Points\n", len(mp.Tunnel.Points))
	}
	for i, ag := range mp.Grading {
		fmt.Printf("Grading[%d] = %s\n", i, ag)
	}
	for _, bl := range mp.BoundaryLayer {
		fmt.Printf("BoundaryLayer[%d] = %g -> %g\n", bl.Axis, bl.StartCellSize, bl.EndCellSize)
	}
	keys := make([]string, len(mp.Faces))
	i := 0
	for k := range mp.Faces {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("Faces[%s] = %v\n", key, mp.Faces[key])
	}
}
