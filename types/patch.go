package types

import "strings"

// PatchType is an OpenFOAM boundary patch type as written in blockMeshDict
// and constant/polyMesh/boundary.
type PatchType uint8

const (
	// PatchGeneric is the plain "patch" type used for inlets and outlets
	PatchGeneric PatchType = iota
	PatchWall
	PatchSymmetryPlane
	PatchSymmetry
	PatchEmpty
	PatchWedge
	PatchCyclic
	PatchCyclicAMI
	PatchProcessor
)

func (p PatchType) String() string {
	names := map[PatchType]string{
		PatchGeneric:       "patch",
		PatchWall:          "wall",
		PatchSymmetryPlane: "symmetryPlane",
		PatchSymmetry:      "symmetry",
		PatchEmpty:         "empty",
		PatchWedge:         "wedge",
		PatchCyclic:        "cyclic",
		PatchCyclicAMI:     "cyclicAMI",
		PatchProcessor:     "processor",
	}
	if name, ok := names[p]; ok {
		return name
	}
	return "Unknown"
}

// PatchNameMap maps lowercase patch type keywords and common boundary names
// to a PatchType.
var PatchNameMap = map[string]PatchType{
	"patch":         PatchGeneric,
	"inlet":         PatchGeneric,
	"inflow":        PatchGeneric,
	"outlet":        PatchGeneric,
	"outflow":       PatchGeneric,
	"farfield":      PatchGeneric,
	"wall":          PatchWall,
	"noslip":        PatchWall,
	"no_slip":       PatchWall,
	"ground":        PatchWall,
	"symmetryplane": PatchSymmetryPlane,
	"symmetry":      PatchSymmetry,
	"slip":          PatchSymmetry,
	"empty":         PatchEmpty,
	"wedge":         PatchWedge,
	"cyclic":        PatchCyclic,
	"periodic":      PatchCyclic,
	"cyclicami":     PatchCyclicAMI,
	"processor":     PatchProcessor,
}

// ParsePatchType matches name case-insensitively against PatchNameMap.
func ParsePatchType(name string) (PatchType, bool) {
	pt, ok := PatchNameMap[strings.ToLower(strings.TrimSpace(name))]
	return pt, ok
}

// PatchKeyword normalizes a known type or alias to its OpenFOAM keyword and
// passes anything else (mappedPatch, user types) through unchanged.
func PatchKeyword(name string) string {
	if pt, ok := ParsePatchType(name); ok {
		return pt.String()
	}
	return strings.TrimSpace(name)
}
