package foamfile

import (
	"fmt"
	"strings"

	"github.com/notargets/gofoam/foamdict"
)

// File is a parsed case file. Body excludes the FoamFile header.
type File struct {
	Kind   Kind
	Header Header
	Body   *foamdict.Dict
}

// New returns a fresh File holding the default contents for kind.
func New(kind Kind) (f *File, err error) {
	text, ok := templates[kind]
	if !ok {
		return nil, fmt.Errorf("no template for %v", kind)
	}
	var body *foamdict.Dict
	if body, err = foamdict.Parse(text); err != nil {
		return nil, fmt.Errorf("template %v: %w", kind, err)
	}
	return &File{Kind: kind, Header: kind.Header(), Body: body}, nil
}

// NewFromDict wraps an existing body, for instance one built from a mesh
// description.
func NewFromDict(kind Kind, body *foamdict.Dict) *File {
	return &File{Kind: kind, Header: kind.Header(), Body: body}
}

// Clone deep-copies the body.
func (f *File) Clone() *File {
	return &File{Kind: f.Kind, Header: f.Header, Body: f.Body.Clone()}
}

// Path is the file location relative to the case folder. Files of unknown
// kind are placed by their header.
func (f *File) Path() string {
	if f.Kind != KindUnknown {
		return f.Kind.Path()
	}
	if f.Header.Location == "" {
		return f.Header.Object
	}
	return f.Header.Location + "/" + f.Header.Object
}

func (f *File) Marshal() ([]byte, error) {
	if f.Body == nil {
		return nil, fmt.Errorf("%s has no body", f.Header.Object)
	}
	var b strings.Builder
	b.WriteString(f.Header.String())
	b.WriteString("\n")
	b.WriteString(foamdict.Format(f.Body))
	b.WriteString("\n\n" + EndSeparator + "\n")
	return []byte(b.String()), nil
}

// Unmarshal parses file text. The kind is taken from the header's object
// name; files without a FoamFile header or with an unregistered object are
// accepted with KindUnknown.
func Unmarshal(data []byte) (f *File, err error) {
	var body *foamdict.Dict
	if body, err = foamdict.Parse(string(data)); err != nil {
		return
	}
	f = &File{Body: body}
	hd, ok := body.GetDict("FoamFile")
	if !ok {
		return f, nil
	}
	if f.Header, err = HeaderFromDict(hd); err != nil {
		return nil, err
	}
	body.Delete("FoamFile")
	if k, kerr := ParseKind(f.Header.Object); kerr == nil {
		f.Kind = k
	}
	return f, nil
}
