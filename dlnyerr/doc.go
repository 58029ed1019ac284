// Package dlnyerr defines the shared error taxonomy used by the
// delaunay, wire and parallel packages.
//
// Every fatal condition in this module is one of four kinds:
//
//	InputError            - malformed or degenerate caller input
//	GeometryInconsistency - a predicate violated a runtime invariant
//	TopologyViolation     - a quad-edge invariant failed after a mutation
//	TransportError        - a wire message was truncated or corrupt
//
// Packages keep their own sentinel errors (following the
// fmt.Errorf("pkg: %w", sentinel) idiom) and wrap them into an *Error at
// the boundary where the Kind becomes relevant to a caller, so that
// errors.As(err, &e) with e of type *dlnyerr.Error always recovers the
// Kind and Op regardless of which package raised it.
package dlnyerr
