package internal

import "github.com/pkg/errors"

// The insertion and removal logic in the triangulation graph, and the stitching
// logic built on top of it, maintain structural invariants (no edge with three
// triangles, no dual edge with three cells, no missing tile mid-recursion).
// Breaking one means the code itself is wrong, so there's no sensible recovery
// at the point of detection. We panic with a TilesError, and the public API
// recovers to convert to an error.

type TilesError struct {
	error
}

func (e TilesError) Unwrap() error {
	return e.error
}

// Panic with a TilesError.
func Fatalf(format string, args ...interface{}) {
	panic(TilesError{errors.Errorf(format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if tilesError, ok := r.(TilesError); ok {
			return tilesError
		}
		panic(r)
	}
	return nil
}
