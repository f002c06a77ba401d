package grading

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/gofoam/utils"
)

const (
	SecantMaxIterations = 100
	SecantTolerance     = 1.e-6
	// MaxCellCount caps the series accumulation loops.
	MaxCellCount = 100000
	// lengthSlack lets a series that reaches the target up to round off count
	// as meeting it.
	lengthSlack = 1.e-9
	// rootLengthTolerance is how closely a secant root must reproduce the
	// requested length to be accepted.
	rootLengthTolerance = 1.e-4
)

var (
	ErrDivideByZero  = errors.New("divide by zero: successive function values are identical")
	ErrNoConvergence = errors.New("cell count estimate did not converge")
	ErrInvalidSize   = errors.New("lengths and cell sizes must be positive")
)

// GradientProperties describes a graded 1D distribution of cells along an
// edge. Iterations is the number of secant steps taken, or -1 when the secant
// solve did not converge and the closed form ratio was used.
type GradientProperties struct {
	TotalLength         float64
	CellToCellRatio     float64
	TotalExpansionRatio float64
	CellCount           int
	StartCellSize       float64
	EndCellSize         float64
	Iterations          int
}

func (p GradientProperties) String() string {
	return fmt.Sprintf("length=%g cellToCellRatio=%g totalExpansion=%g cells=%d start=%g end=%g iterations=%d",
		p.TotalLength, p.CellToCellRatio, p.TotalExpansionRatio, p.CellCount,
		p.StartCellSize, p.EndCellSize, p.Iterations)
}

// Grading is the whole-edge expansion ratio for use as one simpleGrading axis.
func (p GradientProperties) Grading() Grading {
	return FromProperties(p)
}

func FromProperties(p GradientProperties) Grading {
	return FromExpansionRatio(p.TotalExpansionRatio)
}

// ByStartSizeRatioCount sums the geometric series of n cells starting at ds
// and growing by k. n < 1 is not guarded.
func ByStartSizeRatioCount(ds, k float64, n int) GradientProperties {
	total := utils.POW(k, n-1)
	return GradientProperties{
		TotalLength:         utils.GeometricSum(ds, k, n),
		CellToCellRatio:     k,
		TotalExpansionRatio: total,
		CellCount:           n,
		StartCellSize:       ds,
		EndCellSize:         ds * total,
	}
}

// ByLengthStartSizeRatio counts cells of size ds growing by k until they
// cover length, then refines the ratio for that whole number of cells.
func ByLengthStartSizeRatio(length, ds, k float64) (p GradientProperties, err error) {
	if length <= 0 || ds <= 0 || k <= 0 {
		return p, fmt.Errorf("%w: length=%g start=%g ratio=%g", ErrInvalidSize, length, ds, k)
	}
	var (
		sum  float64
		size = ds
		n    int
	)
	for sum < length*(1-lengthSlack) {
		if n >= MaxCellCount {
			return p, fmt.Errorf("%w: %d cells of start size %g and ratio %g cover only %g of %g",
				ErrNoConvergence, n, ds, k, sum, length)
		}
		sum += size
		size *= k
		n++
	}
	return ByLengthStartEndSize(length, ds, ds*utils.POW(k, n-1))
}

// ByLengthEndSizeRatio works back from the end cell size de, shrinking by k
// toward the start, until the length is covered or the start cell would drop
// to minDs, then refines.
func ByLengthEndSizeRatio(length, de, k, minDs float64) (p GradientProperties, err error) {
	if length <= 0 || de <= 0 || k <= 0 {
		return p, fmt.Errorf("%w: length=%g end=%g ratio=%g", ErrInvalidSize, length, de, k)
	}
	var (
		sum  float64
		size = de
		n    int
	)
	for sum < length*(1-lengthSlack) && size > minDs {
		if n >= MaxCellCount {
			return p, fmt.Errorf("%w: %d cells of end size %g and ratio %g cover only %g of %g",
				ErrNoConvergence, n, de, k, sum, length)
		}
		sum += size
		size /= k
		n++
	}
	if n == 0 {
		n = 1
	}
	return ByLengthStartEndSize(length, de/utils.POW(k, n-1), de)
}

// ByLengthStartEndSize finds the whole cell count and cell to cell ratio that
// span length starting at ds and ending near de. The count comes from the
// continuous series with ratio (de/ds)^(1/(n-1)); the ratio is then refined by
// a secant solve of SeriesResidual for that count, falling back to the closed
// form when the solve does not converge. A secant divide by zero is returned
// as an error. The returned length and end size are recomputed from the final
// ratio and count and so differ slightly from the request.
func ByLengthStartEndSize(length, ds, de float64) (p GradientProperties, err error) {
	if length <= 0 || ds <= 0 || de <= 0 {
		return p, fmt.Errorf("%w: length=%g start=%g end=%g", ErrInvalidSize, length, ds, de)
	}
	if ds >= length*(1-lengthSlack) {
		p = ByStartSizeRatioCount(ds, 1, 1)
		return
	}
	var (
		r = de / ds
		n int
		k float64
	)
	for n = 2; ; n++ {
		if n > MaxCellCount {
			return p, fmt.Errorf("%w: more than %d cells from %g to %g over %g",
				ErrNoConvergence, MaxCellCount, ds, de, length)
		}
		k = math.Pow(r, 1/float64(n-1))
		if utils.GeometricSum(ds, k, n) >= length*(1-lengthSlack) {
			break
		}
	}
	return refineRatio(SeriesResidual, length, ds, k, n)
}

// refineRatio solves f for the cell to cell ratio of n cells starting at ds,
// seeded with the closed form ratio k.
func refineRatio(f SeriesFunc, length, ds, k float64, n int) (p GradientProperties, err error) {
	root, iters, err := Secant(f, 2*k, k, SecantTolerance, ds, length, n)
	switch {
	case err != nil:
		return p, fmt.Errorf("grading %d cells from %g over %g: %w", n, ds, length, err)
	case iters == -1:
		logger.Debug("secant solve did not converge, using closed form ratio",
			"iterations", SecantMaxIterations, "count", n)
	case utils.RelErr(utils.GeometricSum(ds, root, n), length) > rootLengthTolerance:
		// the residual also vanishes at k = 1 whatever the length
		logger.Debug("secant root does not reproduce the length, using closed form ratio",
			"root", root, "count", n)
		iters = -1
	default:
		k = root
	}
	p = ByStartSizeRatioCount(ds, k, n)
	p.Iterations = iters
	return
}

// SeriesFunc is a residual in the cell to cell ratio k for a fixed start size,
// length and count.
type SeriesFunc func(k, ds, length float64, count int) float64

// SeriesResidual is ds*(1-k^count) - length*(1-k), zero when count cells
// starting at ds and growing by k span length.
func SeriesResidual(k, ds, length float64, count int) float64 {
	return ds*(1-utils.POW(k, count)) - length*(1-k)
}

// Secant iterates the secant method on f from x0 and x1 until successive
// estimates agree within eps. iterations is -1 when SecantMaxIterations steps
// did not converge. Identical successive function values are an error.
func Secant(f SeriesFunc, x0, x1, eps, ds, length float64, count int) (root float64, iterations int, err error) {
	for i := 0; i < SecantMaxIterations; i++ {
		f0, f1 := f(x0, ds, length, count), f(x1, ds, length, count)
		if f1 == f0 {
			err = fmt.Errorf("%w: f(%g) = f(%g) = %g", ErrDivideByZero, x0, x1, f1)
			return x1, i, err
		}
		x2 := x1 - f1*(x1-x0)/(f1-f0)
		if math.Abs(x2-x1) < eps {
			return x2, i + 1, nil
		}
		x0, x1 = x1, x2
	}
	return x1, -1, nil
}
