package foamfile

import "sort"

// Case is the set of files of one OpenFOAM case folder, at most one per Kind.
// Files of unregistered kinds are kept by path in Extra.
type Case struct {
	Name  string
	Files map[Kind]*File
	Extra map[string]*File
}

func NewCase(name string) *Case {
	return &Case{
		Name:  name,
		Files: make(map[Kind]*File),
		Extra: make(map[string]*File),
	}
}

// NewDefaultCase holds a fresh default file for every registered kind.
func NewDefaultCase(name string) (c *Case, err error) {
	c = NewCase(name)
	for _, k := range Kinds() {
		var f *File
		if f, err = New(k); err != nil {
			return nil, err
		}
		c.Set(f)
	}
	return
}

func (c *Case) Set(f *File) {
	if f.Kind == KindUnknown {
		c.Extra[f.Path()] = f
		return
	}
	c.Files[f.Kind] = f
}

func (c *Case) Get(kind Kind) (f *File, ok bool) {
	f, ok = c.Files[kind]
	return
}

// Kinds lists the kinds present in the case in declaration order.
func (c *Case) Kinds() (kinds []Kind) {
	for k := range c.Files {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return
}

// All returns every file, registered kinds first, then extras by path.
func (c *Case) All() (files []*File) {
	for _, k := range c.Kinds() {
		files = append(files, c.Files[k])
	}
	paths := make([]string, 0, len(c.Extra))
	for p := range c.Extra {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		files = append(files, c.Extra[p])
	}
	return
}
