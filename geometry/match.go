package geometry

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultTolerance is the distance under which two independently computed
// vertices are treated as the same point.
const DefaultTolerance = 0.001

var ErrVertexNotFound = errors.New("vertex not found")

// VertexLookupError names the vertex that could not be matched and the pool
// that was searched.
type VertexLookupError struct {
	Vertex     r3.Vec
	Candidates []r3.Vec
	Tolerance  float64
}

func (e *VertexLookupError) Error() string {
	var b strings.Builder
	for i, c := range e.Candidates {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(FormatVertex(c))
	}
	return fmt.Sprintf("failed to find vertex %s within tolerance %g among %d candidates: [%s]",
		FormatVertex(e.Vertex), e.Tolerance, len(e.Candidates), b.String())
}

func (e *VertexLookupError) Unwrap() error { return ErrVertexNotFound }

// MatchVertex returns the index of v in pool. Exact equality is tried first,
// then the first pool entry within tol.
func MatchVertex(pool []r3.Vec, v r3.Vec, tol float64) (int, error) {
	for i, p := range pool {
		if p == v {
			return i, nil
		}
	}
	for i, p := range pool {
		if Distance(p, v) <= tol {
			return i, nil
		}
	}
	return -1, &VertexLookupError{Vertex: v, Candidates: pool, Tolerance: tol}
}

// MatchVertices resolves every vertex of vs against pool.
func MatchVertices(pool []r3.Vec, vs []r3.Vec, tol float64) (indices []int, err error) {
	indices = make([]int, len(vs))
	for i, v := range vs {
		if indices[i], err = MatchVertex(pool, v, tol); err != nil {
			return nil, err
		}
	}
	return
}

// UniqueVertices drops vertices within tol of an earlier one, keeping
// first-seen order.
func UniqueVertices(vs []r3.Vec, tol float64) (unique []r3.Vec) {
	for _, v := range vs {
		if _, err := MatchVertex(unique, v, tol); err == nil {
			continue
		}
		unique = append(unique, v)
	}
	return
}

// UniqueLevels returns the distinct Z values of vs, merged under tol.
func UniqueLevels(vs []r3.Vec, tol float64) (zs []float64) {
outer:
	for _, v := range vs {
		for _, z := range zs {
			if math.Abs(z-v.Z) <= tol {
				continue outer
			}
		}
		zs = append(zs, v.Z)
	}
	return
}
