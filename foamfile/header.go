// Package foamfile describes whole OpenFOAM files: the banner and FoamFile
// header, the registry of case file kinds with their default contents, and
// the Case collection of files making up a case folder.
package foamfile

import (
	"fmt"
	"strings"

	"github.com/notargets/gofoam/foamdict"
)

const Banner = `/*--------------------------------*- C++ -*----------------------------------*\
| =========                 |                                                 |
| \\      /  F ield         | OpenFOAM: The Open Source CFD Toolbox           |
|  \\    /   O peration     | Version:  v2306                                 |
|   \\  /    A nd           | Website:  www.openfoam.com                      |
|    \\/     M anipulation  |                                                 |
\*---------------------------------------------------------------------------*/`

const (
	HeaderSeparator = "// * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * //"
	EndSeparator    = "// ************************************************************************* //"
)

// Header is the FoamFile sub-dictionary at the top of every case file.
type Header struct {
	Version  string
	Format   string
	Class    string
	Location string
	Object   string
}

func NewHeader(class, location, object string) Header {
	return Header{
		Version:  "2.0",
		Format:   "ascii",
		Class:    class,
		Location: location,
		Object:   object,
	}
}

// Dict is the header as a FoamFile dictionary. Location is quoted as
// OpenFOAM writes it and omitted when empty.
func (h Header) Dict() *foamdict.Dict {
	d := foamdict.NewDict().
		Set("version", h.Version).
		Set("format", h.Format).
		Set("class", h.Class)
	if h.Location != "" {
		d.Set("location", `"`+h.Location+`"`)
	}
	return d.Set("object", h.Object)
}

// HeaderFromDict reads a FoamFile sub-dictionary.
func HeaderFromDict(d *foamdict.Dict) (h Header, err error) {
	get := func(key string) string {
		s, _ := d.GetString(key)
		return strings.Trim(s, `"`)
	}
	h = Header{
		Version:  get("version"),
		Format:   get("format"),
		Class:    get("class"),
		Location: get("location"),
		Object:   get("object"),
	}
	if h.Object == "" {
		err = fmt.Errorf("%w: FoamFile header has no object", foamdict.ErrMissingKey)
	}
	return
}

// String is the banner, the FoamFile block and the separator line.
func (h Header) String() string {
	var b strings.Builder
	b.WriteString(Banner + "\n")
	b.WriteString("FoamFile\n{\n")
	d := h.Dict()
	for _, k := range d.Keys() {
		v, _ := d.GetString(k)
		b.WriteString(fmt.Sprintf("    %-12s%s;\n", k, v))
	}
	b.WriteString("}\n")
	b.WriteString(HeaderSeparator + "\n")
	return b.String()
}
