package internal

import "github.com/pkg/errors"

// Ordinary failures, like a polygon with no ear, are returned as errors. Broken
// invariants inside the pipeline (a polygon that is too short reaching the
// clipper, an index pointing past the vertex buffer) are bugs, and threading
// them through every helper isn't worth it. Instead, we panic, and every
// public entry point recovers to convert to an error.

type invariantError struct {
	error
}

// Panic with an invariantError.
func fatalf(format string, args ...interface{}) {
	panic(invariantError{errors.Errorf(format, args...)})
}

// Converts a panic raised by fatalf back into an error. Any other panic is
// re-raised.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(invariantError); ok {
			return err.error
		}
		panic(r)
	}
	return nil
}
