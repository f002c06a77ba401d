package foamfile

import (
	"fmt"
	"sort"
)

// Kind identifies a case file type. Every Kind has an object name, a
// location inside the case folder and a default template.
type Kind uint8

const (
	KindUnknown Kind = iota
	BlockMeshDict
	SnappyHexMeshDict
	ControlDict
	FvSchemes
	FvSolution
	DecomposeParDict
	TransportProperties
	TurbulenceProperties
	MeshQualityDict
)

type kindInfo struct {
	object, location, class string
}

var registry = map[Kind]kindInfo{
	BlockMeshDict:        {"blockMeshDict", "system", "dictionary"},
	SnappyHexMeshDict:    {"snappyHexMeshDict", "system", "dictionary"},
	ControlDict:          {"controlDict", "system", "dictionary"},
	FvSchemes:            {"fvSchemes", "system", "dictionary"},
	FvSolution:           {"fvSolution", "system", "dictionary"},
	DecomposeParDict:     {"decomposeParDict", "system", "dictionary"},
	TransportProperties:  {"transportProperties", "constant", "dictionary"},
	TurbulenceProperties: {"turbulenceProperties", "constant", "dictionary"},
	MeshQualityDict:      {"meshQualityDict", "system", "dictionary"},
}

func (k Kind) String() string {
	if info, ok := registry[k]; ok {
		return info.object
	}
	return "Unknown"
}

// Location is the case sub-folder the file lives in.
func (k Kind) Location() string { return registry[k].location }

func (k Kind) Class() string { return registry[k].class }

// Path is the file's path relative to the case folder.
func (k Kind) Path() string {
	return k.Location() + "/" + k.String()
}

func (k Kind) Header() Header {
	info := registry[k]
	return NewHeader(info.class, info.location, info.object)
}

// ParseKind finds the Kind for an object name.
func ParseKind(object string) (Kind, error) {
	for k, info := range registry {
		if info.object == object {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown case file %q", object)
}

// Kinds lists every registered kind in declaration order.
func Kinds() (kinds []Kind) {
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return
}
