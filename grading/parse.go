package grading

import (
	"fmt"
	"strconv"

	"github.com/notargets/gofoam/foamdict"
)

// ParseSimpleGrading decodes the list following simpleGrading in a
// blockMeshDict, e.g. (1 ((0.2 0.3 4) (0.8 0.7 1)) 2).
func ParseSimpleGrading(l foamdict.List) (sg SimpleGrading, err error) {
	if len(l) != 3 {
		return sg, fmt.Errorf("%w: simpleGrading needs 3 entries, got %s", ErrAxisType, l)
	}
	var axes [3]Axis
	for i, e := range l {
		if axes[i], err = ParseAxis(e); err != nil {
			return sg, fmt.Errorf("axis %d: %w", i, err)
		}
	}
	return SimpleGrading{X: axes[0], Y: axes[1], Z: axes[2]}, nil
}

// ParseAxis decodes one simpleGrading entry: a number or a list of segments.
func ParseAxis(e interface{}) (a Axis, err error) {
	switch v := e.(type) {
	case string:
		var r float64
		if r, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrAxisType, v)
		}
		return FromExpansionRatio(r), nil
	case foamdict.List:
		segs := make([][]float64, len(v))
		for i, s := range v {
			sl, ok := s.(foamdict.List)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrSegmentAsAxis, v)
			}
			if segs[i], err = sl.Floats(); err != nil {
				return nil, err
			}
		}
		return ToAxis(segs)
	}
	return nil, fmt.Errorf("%w: %T", ErrAxisType, e)
}
