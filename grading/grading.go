// Package grading converts between descriptions of graded cell distributions
// along a block edge and builds the simpleGrading entries of a blockMeshDict.
package grading

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/notargets/gofoam/geometry"
)

var (
	ErrMultiGradingArity = errors.New("multiGrading needs at least two segments")
	ErrSegmentRequired   = errors.New("multiGrading segments need both a length and a cell fraction")
	ErrSegmentAsAxis     = errors.New("a segment grading must be wrapped in a multiGrading")
	ErrAxisType          = errors.New("unsupported axis grading value")
)

var logger = log.Default()

// SetLogger replaces the logger used for solver fallbacks and fraction
// warnings.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Axis is one simpleGrading slot: a Grading or a MultiGrading.
type Axis interface {
	fmt.Stringer
	isAxis()
}

// Grading is one graded segment. A zero fraction means the fraction is
// absent; a Grading with either fraction absent describes a whole edge, one
// with both is a segment of a MultiGrading. A zero ExpansionRatio reads as 1.
type Grading struct {
	LengthFraction float64
	CellFraction   float64
	ExpansionRatio float64
}

func NewGrading(lengthFraction, cellFraction, expansionRatio float64) Grading {
	return Grading{
		LengthFraction: lengthFraction,
		CellFraction:   cellFraction,
		ExpansionRatio: expansionRatio,
	}
}

func FromExpansionRatio(r float64) Grading {
	return Grading{ExpansionRatio: r}
}

// IsSegment is true when both fractions are present.
func (g Grading) IsSegment() bool {
	return g.LengthFraction != 0 && g.CellFraction != 0
}

func (g Grading) Ratio() float64 {
	if g.ExpansionRatio == 0 {
		return 1
	}
	return g.ExpansionRatio
}

func (g Grading) String() string {
	if !g.IsSegment() {
		return geometry.FormatFloat(g.Ratio())
	}
	return "(" + geometry.FormatFloat(g.LengthFraction) + " " +
		geometry.FormatFloat(g.CellFraction) + " " +
		geometry.FormatFloat(g.Ratio()) + ")"
}

func (Grading) isAxis() {}

// MultiGrading splits an edge into weighted segments with their own ratios.
type MultiGrading struct {
	Segments []Grading
}

// NewMultiGrading checks arity and that every member is a segment. Fractions
// that do not add up to 1 are accepted; OpenFOAM normalizes them, but it is
// logged because it usually means a typo.
func NewMultiGrading(segments ...Grading) (mg MultiGrading, err error) {
	if len(segments) < 2 {
		return mg, fmt.Errorf("%w: got %d", ErrMultiGradingArity, len(segments))
	}
	var (
		lf = make([]float64, len(segments))
		cf = make([]float64, len(segments))
	)
	for i, g := range segments {
		if !g.IsSegment() {
			return mg, fmt.Errorf("%w: segment %d is %s", ErrSegmentRequired, i, g)
		}
		lf[i], cf[i] = g.LengthFraction, g.CellFraction
	}
	if sl, sc := floats.Sum(lf), floats.Sum(cf); !scalar.EqualWithinAbs(sl, 1, 1.e-6) || !scalar.EqualWithinAbs(sc, 1, 1.e-6) {
		logger.Warn("multiGrading fractions do not sum to 1", "length", sl, "cells", sc)
	}
	mg.Segments = append([]Grading(nil), segments...)
	return
}

func (mg MultiGrading) String() string {
	parts := make([]string, len(mg.Segments))
	for i, g := range mg.Segments {
		parts[i] = g.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (MultiGrading) isAxis() {}

// SimpleGrading holds the X, Y and Z gradings of a hex block.
type SimpleGrading struct {
	X, Y, Z Axis
}

// UniformGrading is simpleGrading (1 1 1).
func UniformGrading() SimpleGrading {
	return SimpleGrading{X: FromExpansionRatio(1), Y: FromExpansionRatio(1), Z: FromExpansionRatio(1)}
}

// NewSimpleGrading accepts per axis a number, a Grading, a MultiGrading, a
// []float64 (the Grading fields in order) or a [][]float64 (MultiGrading
// segments).
func NewSimpleGrading(x, y, z interface{}) (sg SimpleGrading, err error) {
	var axes [3]Axis
	for i, v := range []interface{}{x, y, z} {
		if axes[i], err = ToAxis(v); err != nil {
			return sg, fmt.Errorf("axis %d: %w", i, err)
		}
	}
	return SimpleGrading{X: axes[0], Y: axes[1], Z: axes[2]}, nil
}

// ToAxis wraps v as an Axis and rejects a bare segment Grading.
func ToAxis(v interface{}) (a Axis, err error) {
	switch val := v.(type) {
	case nil:
		a = FromExpansionRatio(1)
	case float64:
		a = FromExpansionRatio(val)
	case float32:
		a = FromExpansionRatio(float64(val))
	case int:
		a = FromExpansionRatio(float64(val))
	case Grading:
		a = val
	case *Grading:
		a = *val
	case MultiGrading:
		a = val
	case *MultiGrading:
		a = *val
	case []float64:
		var g Grading
		switch len(val) {
		case 1:
			g = FromExpansionRatio(val[0])
		case 2:
			g = Grading{LengthFraction: val[0], CellFraction: val[1]}
		case 3:
			g = NewGrading(val[0], val[1], val[2])
		default:
			return nil, fmt.Errorf("%w: %d numbers", ErrAxisType, len(val))
		}
		a = g
	case [][]float64:
		segs := make([]Grading, len(val))
		for i, s := range val {
			if len(s) != 3 {
				return nil, fmt.Errorf("%w: segment %d has %d numbers", ErrSegmentRequired, i, len(s))
			}
			segs[i] = NewGrading(s[0], s[1], s[2])
		}
		if a, err = NewMultiGrading(segs...); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrAxisType, v)
	}
	if g, ok := a.(Grading); ok && g.IsSegment() {
		return nil, fmt.Errorf("%w: %s", ErrSegmentAsAxis, g)
	}
	return
}

func (sg SimpleGrading) Axes() [3]Axis {
	axes := [3]Axis{sg.X, sg.Y, sg.Z}
	for i, a := range axes {
		if a == nil {
			axes[i] = FromExpansionRatio(1)
		}
	}
	return axes
}

// WithAxis returns a copy with axis i (0, 1, 2 for X, Y, Z) replaced.
func (sg SimpleGrading) WithAxis(i int, a Axis) SimpleGrading {
	switch i {
	case 0:
		sg.X = a
	case 1:
		sg.Y = a
	case 2:
		sg.Z = a
	}
	return sg
}

// IsUniform is true when every axis is an unsegmented ratio of 1.
func (sg SimpleGrading) IsUniform() bool {
	for _, a := range sg.Axes() {
		g, ok := a.(Grading)
		if !ok || g.Ratio() != 1 {
			return false
		}
	}
	return true
}

// Values is the parenthesised triple, e.g. "(1 1 4)".
func (sg SimpleGrading) Values() string {
	axes := sg.Axes()
	return "(" + axes[0].String() + " " + axes[1].String() + " " + axes[2].String() + ")"
}

func (sg SimpleGrading) String() string {
	return "simpleGrading " + sg.Values()
}
