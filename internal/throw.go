package internal

import "github.com/pkg/errors"

// Threading errors up and down the recursive merges would add a ton of
// complexity to the builder. Instead, we panic, and the public API recovers to
// convert to an error.

type HullError error

var (
	// Fewer than three points cannot span a hull surface.
	ErrTooFewPoints = errors.New("convexhull: constructing a hull from fewer than three points is ambiguous")
	// NaN and infinite coordinates cannot be ordered against the sentinel.
	ErrNonFinite = errors.New("convexhull: point has a non-finite coordinate")
	// The builder could not close a surface. Only heavily degenerate input,
	// such as points closer together than the jitter, gets here.
	ErrDegenerate = errors.New("convexhull: input is too degenerate to build a closed hull")
)

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(HullError(errors.Errorf(format, args...)))
}

// Panic with a HullError wrapping one of the sentinel errors above, so callers
// can still match it with errors.Is.
func throwf(cause error, format string, args ...interface{}) {
	panic(HullError(errors.Wrapf(cause, format, args...)))
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}
