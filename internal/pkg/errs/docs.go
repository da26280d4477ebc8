// Package errs provides the typed errors shared by the dispatch simulator.
//
// Each error type pairs a sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrObjectNotFound) with a struct that carries the
// offending parameter and an optional cause. The structs unwrap to their
// sentinel, so callers classify failures with errors.Is:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order or courier id
//	}
package errs
