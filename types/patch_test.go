package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatchType(t *testing.T) {
	{
		pt, ok := ParsePatchType(" SymmetryPlane ")
		assert.True(t, ok)
		assert.Equal(t, PatchSymmetryPlane, pt)
		assert.Equal(t, "symmetryPlane", pt.String())
	}
	{
		assert.Equal(t, "patch", PatchKeyword("inlet"))
		assert.Equal(t, "wall", PatchKeyword("Wall"))
		assert.Equal(t, "cyclicAMI", PatchKeyword("cyclicami"))
		assert.Equal(t, "mappedPatch", PatchKeyword("mappedPatch"))
	}
	{
		_, ok := ParsePatchType("nonsense")
		assert.False(t, ok)
		assert.Equal(t, "Unknown", PatchType(200).String())
	}
}
