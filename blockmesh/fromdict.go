package blockmesh

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gofoam/foamdict"
	"github.com/notargets/gofoam/grading"
)

var ErrBlockSyntax = errors.New("malformed blocks entry")

// Parse reads blockMeshDict text.
func Parse(text string) (*BlockMeshDict, error) {
	d, err := foamdict.Parse(text)
	if err != nil {
		return nil, err
	}
	return FromDict(d)
}

// FromDict decodes a parsed blockMeshDict. Both the boundary table and the
// older patches list are understood; curved edges are not.
func FromDict(d *foamdict.Dict) (bmd *BlockMeshDict, err error) {
	scale := 1.
	for _, key := range []string{"convertToMeters", "scale"} {
		if _, ok := d.Get(key); ok {
			if scale, err = d.GetFloat(key); err != nil {
				return nil, err
			}
			break
		}
	}
	var (
		vertices []r3.Vec
		blocks   []*Block
		boundary []Patch
	)
	if vertices, err = readVertices(d); err != nil {
		return
	}
	if blocks, err = readBlocks(d, vertices); err != nil {
		return
	}
	if _, ok := d.Get("boundary"); ok {
		boundary, err = readBoundary(d)
	} else if _, ok := d.Get("patches"); ok {
		boundary, err = readPatches(d)
	}
	if err != nil {
		return
	}
	return New(scale, vertices, blocks, boundary)
}

func listEntry(d *foamdict.Dict, key string) (l foamdict.List, err error) {
	s, ok := d.GetString(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", foamdict.ErrMissingKey, key)
	}
	if l, err = foamdict.ParseList(s); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return
}

func readVertices(d *foamdict.Dict) (vertices []r3.Vec, err error) {
	var l foamdict.List
	if l, err = listEntry(d, "vertices"); err != nil {
		return
	}
	for i, e := range l {
		v, ok := e.(foamdict.List)
		if !ok || len(v) != 3 {
			return nil, fmt.Errorf("vertex %d: %v is not a point", i, e)
		}
		var x []float64
		if x, err = v.Floats(); err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		vertices = append(vertices, r3.Vec{X: x[0], Y: x[1], Z: x[2]})
	}
	return
}

func intList(e interface{}, n int) (ind []int, err error) {
	l, ok := e.(foamdict.List)
	if !ok || (n > 0 && len(l) != n) {
		return nil, fmt.Errorf("%w: expected a list of %d integers, got %v", ErrBlockSyntax, n, e)
	}
	return l.Ints()
}

// readBlocks walks "hex (8 indices) [zone] (nx ny nz) simpleGrading (...)".
func readBlocks(d *foamdict.Dict, vertices []r3.Vec) (blocks []*Block, err error) {
	var l foamdict.List
	if l, err = listEntry(d, "blocks"); err != nil {
		return
	}
	for i := 0; i < len(l); {
		if s, _ := l[i].(string); s != "hex" {
			return nil, fmt.Errorf("%w: block %d starts with %v", ErrBlockSyntax, len(blocks), l[i])
		}
		if i+2 >= len(l) {
			return nil, fmt.Errorf("%w: block %d is truncated", ErrBlockSyntax, len(blocks))
		}
		var ind, div []int
		if ind, err = intList(l[i+1], 8); err != nil {
			return
		}
		i += 2
		if _, isZone := l[i].(string); isZone {
			i++
		}
		if i >= len(l) {
			return nil, fmt.Errorf("%w: block %d has no divisions", ErrBlockSyntax, len(blocks))
		}
		if div, err = intList(l[i], 3); err != nil {
			return
		}
		i++
		var g *grading.SimpleGrading
		if i < len(l) {
			switch l[i] {
			case "simpleGrading":
				if i+1 >= len(l) {
					return nil, fmt.Errorf("%w: simpleGrading without values", ErrBlockSyntax)
				}
				gl, _ := l[i+1].(foamdict.List)
				sg, gerr := grading.ParseSimpleGrading(gl)
				if gerr != nil {
					return nil, fmt.Errorf("block %d: %w", len(blocks), gerr)
				}
				g = &sg
				i += 2
			case "edgeGrading":
				return nil, fmt.Errorf("%w: edgeGrading is not supported", ErrBlockSyntax)
			}
		}
		verts := make([]r3.Vec, 8)
		for j, k := range ind {
			if k < 0 || k >= len(vertices) {
				return nil, fmt.Errorf("%w: block %d uses vertex %d of %d", ErrBlockSyntax, len(blocks), k, len(vertices))
			}
			verts[j] = vertices[k]
		}
		var b *Block
		if b, err = NewBlock(verts, div, g); err != nil {
			return
		}
		blocks = append(blocks, b)
	}
	return
}

func readFaces(e interface{}) (faces [][]int, err error) {
	l, ok := e.(foamdict.List)
	if !ok {
		return nil, fmt.Errorf("%w: faces %v", ErrBlockSyntax, e)
	}
	for _, f := range l {
		var face []int
		if face, err = intList(f, 0); err != nil {
			return
		}
		faces = append(faces, face)
	}
	return
}

// readBoundary walks "name { type t; faces (...); }" pairs.
func readBoundary(d *foamdict.Dict) (patches []Patch, err error) {
	var l foamdict.List
	if l, err = listEntry(d, "boundary"); err != nil {
		return
	}
	for i := 0; i+1 < len(l); i += 2 {
		name, _ := l[i].(string)
		pd, ok := l[i+1].(*foamdict.Dict)
		if name == "" || !ok {
			return nil, fmt.Errorf("%w: boundary entry %v %v", ErrBlockSyntax, l[i], l[i+1])
		}
		p := Patch{Name: name}
		p.Type, _ = pd.GetString("type")
		if fs, ok := pd.GetString("faces"); ok {
			var fl foamdict.List
			if fl, err = foamdict.ParseList(fs); err != nil {
				return nil, fmt.Errorf("patch %s: %w", name, err)
			}
			if p.Faces, err = readFaces(fl); err != nil {
				return nil, fmt.Errorf("patch %s: %w", name, err)
			}
		}
		patches = append(patches, p)
	}
	if len(l)%2 != 0 {
		return nil, fmt.Errorf("%w: boundary entry %v has no dictionary", ErrBlockSyntax, l[len(l)-1])
	}
	return
}

// readPatches walks the legacy "type name (faces)" triples.
func readPatches(d *foamdict.Dict) (patches []Patch, err error) {
	var l foamdict.List
	if l, err = listEntry(d, "patches"); err != nil {
		return
	}
	if len(l)%3 != 0 {
		return nil, fmt.Errorf("%w: patches needs type, name and faces triples", ErrBlockSyntax)
	}
	for i := 0; i < len(l); i += 3 {
		typ, _ := l[i].(string)
		name, _ := l[i+1].(string)
		p := Patch{Name: name, Type: typ}
		if p.Faces, err = readFaces(l[i+2]); err != nil {
			return nil, fmt.Errorf("patch %s: %w", name, err)
		}
		patches = append(patches, p)
	}
	return
}
