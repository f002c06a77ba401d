package foamdict

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fvSchemes = `
/*--------------------------------*- C++ -*----------------------------------*\
| =========                 |                                                 |
| \\      /  F ield         | OpenFOAM: The Open Source CFD Toolbox           |
\*---------------------------------------------------------------------------*/
FoamFile
{
    version     2.0;
    format      ascii;
    class       dictionary;
    location    "system";
    object      fvSchemes;
}
// * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * //
#include "initialConditions"

ddtSchemes
{
    default         steadyState; // steady run
}

divSchemes
{
    default         none;
    div(phi,U)      bounded Gauss linearUpwind grad(U);
    div((nuEff*dev2(T(grad(U))))) Gauss linear;
}

fluxRequired
{
    default         no;
    p               ;
}
`

const boundaryText = `
vertices
(
    (0 0 0)
    (1 0 0)
    (1 1 0)
    (0 1 0)
);

boundary
(
    inlet
    {
        type patch;
        faces
        (
            (0 4 7 3)
        );
    }
    ground
    {
        type wall;
        faces ((0 3 2 1));
    }
);
`

func TestParseNested(t *testing.T) {
	{ // Nested blocks
		d, err := Parse("foo { bar 1; baz { qux 2; } }")
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{
			"foo": map[string]interface{}{
				"bar": "1",
				"baz": map[string]interface{}{"qux": "2"},
			},
		}, d.ToMap())
	}
	{ // Comments are stripped
		d, err := Parse("// comment\nfoo { bar 1; }")
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{
			"foo": map[string]interface{}{"bar": "1"},
		}, d.ToMap())
	}
	{ // Top level scalars keep their order
		d, err := Parse("b 2;\na 1;\nc   three   words ;")
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a", "c"}, d.Keys())
		v, ok := d.GetString("c")
		assert.True(t, ok)
		assert.Equal(t, "three words", v)
	}
}

func TestParseFvSchemes(t *testing.T) {
	d, err := Parse(fvSchemes)
	require.NoError(t, err)
	assert.Equal(t, []string{"FoamFile", "#include", "ddtSchemes", "divSchemes", "fluxRequired"}, d.Keys())

	v, ok := d.Lookup("FoamFile", "location")
	assert.True(t, ok)
	assert.Equal(t, `"system"`, v)

	v, ok = d.Lookup("divSchemes", "div(phi,U)")
	assert.True(t, ok)
	assert.Equal(t, "bounded Gauss linearUpwind grad(U)", v)

	v, ok = d.Lookup("divSchemes", "div((nuEff*dev2(T(grad(U)))))")
	assert.True(t, ok)
	assert.Equal(t, "Gauss linear", v)

	v, ok = d.Lookup("ddtSchemes", "default")
	assert.True(t, ok)
	assert.Equal(t, "steadyState", v)

	v, ok = d.Lookup("fluxRequired", "p")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	inc, _ := d.GetString("#include")
	assert.Equal(t, `"initialConditions"`, inc)

	_, ok = d.Lookup("divSchemes", "missing")
	assert.False(t, ok)
}

func TestParseErrors(t *testing.T) {
	var perr *ParseError
	{ // Closing bracket missing
		_, err := Parse("foo { bar { baz 1; }")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnbalanced))
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, []string{"foo"}, perr.Path)
	}
	{ // Opening bracket missing
		_, err := Parse("foo 1; }")
		assert.True(t, errors.Is(err, ErrUnbalanced))
	}
	{ // Unclosed list
		_, err := Parse("vertices ((0 0 0) (1 0 0);")
		assert.True(t, errors.Is(err, ErrUnbalanced))
	}
	{ // Missing semicolon
		_, err := Parse("foo { bar 1 }")
		assert.True(t, errors.Is(err, ErrSyntax))
		_, err = Parse("foo 1")
		assert.True(t, errors.Is(err, ErrSyntax))
	}
	{ // Unterminated code block
		_, err := Parse("code #{ int x;")
		assert.True(t, errors.Is(err, ErrUnbalanced))
	}
}

func TestParseListValues(t *testing.T) {
	d, err := Parse(boundaryText)
	require.NoError(t, err)

	raw, ok := d.GetString("vertices")
	require.True(t, ok)
	assert.Equal(t, "((0 0 0) (1 0 0) (1 1 0) (0 1 0))", raw)
	verts, err := ParseList(raw)
	require.NoError(t, err)
	require.Len(t, verts, 4)
	xyz, err := verts[2].(List).Floats()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 0}, xyz)

	raw, _ = d.GetString("boundary")
	assert.Equal(t, "(inlet { type patch; faces ((0 4 7 3)); } ground { type wall; faces ((0 3 2 1)); })", raw)
	patches, err := ParseList(raw)
	require.NoError(t, err)
	require.Len(t, patches, 4)
	assert.Equal(t, "inlet", patches[0])
	inlet, ok := patches[1].(*Dict)
	require.True(t, ok)
	typ, _ := inlet.GetString("type")
	assert.Equal(t, "patch", typ)
	faces, _ := inlet.GetString("faces")
	fl, err := ParseList(faces)
	require.NoError(t, err)
	idx, err := fl[0].(List).Ints()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 7, 3}, idx)

	{ // Sized lists and malformed lists
		l, err := ParseList("2 (a b)")
		require.NoError(t, err)
		s, ok := l.Strings()
		assert.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, s)

		_, err = ParseList("uniform (0 0 0)")
		assert.True(t, errors.Is(err, ErrSyntax))
		_, err = ParseList("((0 0 0)")
		assert.True(t, errors.Is(err, ErrUnbalanced))
	}
}

func TestFormatIdempotent(t *testing.T) {
	for _, text := range []string{fvSchemes, boundaryText, "foo { bar 1; baz { qux 2; } }"} {
		d, err := Parse(text)
		require.NoError(t, err)
		out := Format(d)
		d2, err := Parse(out)
		require.NoError(t, err)
		assert.True(t, d.Equal(d2), "round trip changed:\n%s", out)
		assert.Equal(t, out, Format(d2))
	}
	d := NewDict().Set("application", "simpleFoam")
	d.Sub("solvers").Set("p", "GAMG")
	assert.Equal(t, "application     simpleFoam;\n\nsolvers\n{\n    p               GAMG;\n}\n", Format(d))
}

func TestDictCloneAndMerge(t *testing.T) {
	base, err := Parse("a 1; sub { b 2; c 3; }")
	require.NoError(t, err)
	c := base.Clone()
	c.Sub("sub").Set("b", "20")
	c.Delete("a")
	v, _ := base.Lookup("sub", "b")
	assert.Equal(t, "2", v)
	assert.Equal(t, 2, base.Len())
	assert.Equal(t, 1, c.Len())

	over, err := Parse("sub { c 30; d 4; } e 5;")
	require.NoError(t, err)
	base.Merge(over)
	assert.Equal(t, []string{"a", "sub", "e"}, base.Keys())
	v, _ = base.Lookup("sub", "c")
	assert.Equal(t, "30", v)
	v, _ = base.Lookup("sub", "d")
	assert.Equal(t, "4", v)

	f, err := base.GetFloat("e")
	require.NoError(t, err)
	assert.Equal(t, 5., f)
	_, err = base.GetFloat("zzz")
	assert.True(t, errors.Is(err, ErrMissingKey))
}
