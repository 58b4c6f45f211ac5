package driver

import (
	"fmt"

	"g5/internal/diag"
	"g5/internal/source"
)

// LoadError reports a source file that could not be read. It is returned
// before any lexing happens.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s: failed to load file: %v", e.Path, diag.IOLoadFileError.ID(), e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Code is always diag.IOLoadFileError.
func (e *LoadError) Code() diag.Code { return diag.IOLoadFileError }

// loadFile reads path into a fresh file set.
func loadFile(path string) (*source.FileSet, *source.File, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, nil, &LoadError{Path: path, Err: err}
	}
	return fs, fs.Get(id), nil
}
