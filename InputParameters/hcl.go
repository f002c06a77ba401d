package InputParameters

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclMesh is the decode target for .hcl input. Faces are labeled blocks:
//
//	face "ymin" {
//	  name = "front"
//	  type = "wall"
//	}
type hclMesh struct {
	Title           string              `hcl:"title,optional"`
	ConvertToMeters float64             `hcl:"convert_to_meters,optional"`
	Divisions       []int               `hcl:"divisions,optional"`
	CellSize        []float64           `hcl:"cell_size,optional"`
	XAxis           []float64           `hcl:"x_axis,optional"`
	Tolerance       float64             `hcl:"tolerance,optional"`
	Grading         cty.Value           `hcl:"grading,optional"`
	Box             *hclBox             `hcl:"box,block"`
	BoundaryLayers  []*hclBoundaryLayer `hcl:"boundary_layer,block"`
	Tunnel          *hclTunnel          `hcl:"tunnel,block"`
	Faces           []*hclFace          `hcl:"face,block"`
}

type hclBox struct {
	Min []float64 `hcl:"min"`
	Max []float64 `hcl:"max"`
}

type hclBoundaryLayer struct {
	Axis          int     `hcl:"axis"`
	StartCellSize float64 `hcl:"start_cell_size"`
	EndCellSize   float64 `hcl:"end_cell_size"`
}

type hclTunnel struct {
	WindDirection []float64   `hcl:"wind_direction,optional"`
	Windward      float64     `hcl:"windward,optional"`
	Top           float64     `hcl:"top,optional"`
	Side          float64     `hcl:"side,optional"`
	Leeward       float64     `hcl:"leeward,optional"`
	Points        [][]float64 `hcl:"points,optional"`
}

type hclFace struct {
	Side string `hcl:"side,label"`
	Name string `hcl:"name"`
	Type string `hcl:"type,optional"`
}

// ParseHCL reads HCL input. filename is only used in diagnostics.
func (mp *MeshParameters) ParseHCL(data []byte, filename string) (err error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL input %s: %w", filename, diags)
	}
	var hm hclMesh
	if diags = gohcl.DecodeBody(file.Body, nil, &hm); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL input %s: %w", filename, diags)
	}
	*mp = MeshParameters{
		Title:           hm.Title,
		ConvertToMeters: hm.ConvertToMeters,
		Divisions:       hm.Divisions,
		CellSize:        hm.CellSize,
		XAxis:           hm.XAxis,
		Tolerance:       hm.Tolerance,
	}
	if mp.Grading, err = ctyGrading(hm.Grading); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	if hm.Box != nil {
		mp.Box = &BoxParameters{Min: hm.Box.Min, Max: hm.Box.Max}
	}
	for _, bl := range hm.BoundaryLayers {
		mp.BoundaryLayer = append(mp.BoundaryLayer, BoundaryLayer(*bl))
	}
	if hm.Tunnel != nil {
		tp := TunnelParameters(*hm.Tunnel)
		mp.Tunnel = &tp
	}
	if len(hm.Faces) > 0 {
		mp.Faces = make(map[string]FaceParameters, len(hm.Faces))
		for _, f := range hm.Faces {
			if _, dup := mp.Faces[f.Side]; dup {
				return fmt.Errorf("%s: face %q defined twice", filename, f.Side)
			}
			mp.Faces[f.Side] = FaceParameters{Name: f.Name, Type: f.Type}
		}
	}
	return
}

// ctyGrading accepts the same mixed form as the YAML input: each element is a
// ratio or a list of (length fraction, cell fraction, ratio) segments.
func ctyGrading(val cty.Value) (ag []AxisGrading, err error) {
	if val.IsNull() || !val.IsKnown() {
		return
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("grading must be a list, got %s", val.Type().FriendlyName())
	}
	for it := val.ElementIterator(); it.Next(); {
		_, e := it.Element()
		var g AxisGrading
		if e.Type().Equals(cty.Number) {
			if err = gocty.FromCtyValue(e, &g.Ratio); err != nil {
				return nil, err
			}
		} else {
			if !e.CanIterateElements() {
				return nil, fmt.Errorf("grading %s is neither a ratio nor a list of segments",
					e.Type().FriendlyName())
			}
			for sit := e.ElementIterator(); sit.Next(); {
				_, s := sit.Element()
				var seg []float64
				if seg, err = ctyFloats(s); err != nil {
					return nil, err
				}
				g.Segments = append(g.Segments, seg)
			}
		}
		ag = append(ag, g)
	}
	return
}

func ctyFloats(val cty.Value) (f []float64, err error) {
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("grading segment %s is not a list", val.Type().FriendlyName())
	}
	for it := val.ElementIterator(); it.Next(); {
		_, e := it.Element()
		var x float64
		if err = gocty.FromCtyValue(e, &x); err != nil {
			return nil, fmt.Errorf("grading segment: %w", err)
		}
		f = append(f, x)
	}
	return
}
