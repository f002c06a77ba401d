package readfiles

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/notargets/gofoam/blockmesh"
	"github.com/notargets/gofoam/foamdict"
	"github.com/notargets/gofoam/foamfile"
	"github.com/notargets/gofoam/utils"
)

// CaseFolders are the case sub-folders holding dictionaries.
var CaseFolders = []string{"system", "constant"}

// ReadDict parses a dictionary file, including its FoamFile header if any.
func ReadDict(ctx context.Context, filename string) (d *foamdict.Dict, err error) {
	var data []byte
	utils.LoggerFrom(ctx).Debug("reading dictionary", "file", filename)
	if data, err = os.ReadFile(filename); err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", filename, err)
	}
	if d, err = foamdict.Parse(string(data)); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return
}

func ReadFoamFile(ctx context.Context, filename string) (f *foamfile.File, err error) {
	var data []byte
	utils.LoggerFrom(ctx).Debug("reading case file", "file", filename)
	if data, err = os.ReadFile(filename); err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", filename, err)
	}
	if f, err = foamfile.Unmarshal(data); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return
}

// WriteFoamFile creates missing parent folders.
func WriteFoamFile(ctx context.Context, filename string, f *foamfile.File) (err error) {
	var data []byte
	if data, err = f.Marshal(); err != nil {
		return
	}
	utils.LoggerFrom(ctx).Debug("writing case file", "file", filename, "bytes", len(data))
	if err = os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return
	}
	return os.WriteFile(filename, data, 0o644)
}

func ReadBlockMeshDict(ctx context.Context, filename string) (bmd *blockmesh.BlockMeshDict, err error) {
	var d *foamdict.Dict
	if d, err = ReadDict(ctx, filename); err != nil {
		return
	}
	if bmd, err = blockmesh.FromDict(d); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return
}

// WriteBlockMeshDict writes the one vertex per line layout.
func WriteBlockMeshDict(ctx context.Context, filename string, bmd *blockmesh.BlockMeshDict) (err error) {
	var file *os.File
	if err = os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return
	}
	if file, err = os.Create(filename); err != nil {
		return fmt.Errorf("unable to create %s: %w", filename, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	var n int64
	if n, err = bmd.WriteTo(file); err != nil {
		return
	}
	utils.LoggerFrom(ctx).Debug("wrote blockMeshDict", "file", filename, "bytes", n)
	return
}

// ReadCase reads every file directly under the system and constant folders
// of dir. Sub-folders such as constant/polyMesh are not descended into.
func ReadCase(ctx context.Context, dir string) (c *foamfile.Case, err error) {
	var info fs.FileInfo
	if info, err = os.Stat(dir); err != nil {
		return
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a case folder", dir)
	}
	c = foamfile.NewCase(filepath.Base(dir))
	for _, folder := range CaseFolders {
		var entries []fs.DirEntry
		entries, err = os.ReadDir(filepath.Join(dir, folder))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			var f *foamfile.File
			if f, err = ReadFoamFile(ctx, filepath.Join(dir, folder, e.Name())); err != nil {
				return nil, err
			}
			if f.Header.Object == "" {
				f.Header = foamfile.NewHeader("dictionary", folder, e.Name())
				if k, kerr := foamfile.ParseKind(e.Name()); kerr == nil {
					f.Kind = k
				}
			}
			c.Set(f)
		}
	}
	utils.LoggerFrom(ctx).Info("read case", "dir", dir, "files", len(c.Files)+len(c.Extra))
	return
}

// WriteCase writes every file of c at its path under dir.
func WriteCase(ctx context.Context, dir string, c *foamfile.Case) (err error) {
	files := c.All()
	for _, f := range files {
		p := filepath.Join(dir, filepath.FromSlash(f.Path()))
		if err = WriteFoamFile(ctx, p, f); err != nil {
			return
		}
	}
	utils.LoggerFrom(ctx).Info("wrote case", "dir", dir, "files", len(files))
	return
}
