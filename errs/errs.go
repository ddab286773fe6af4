// Package errs defines the error taxonomy shared by every layer of the CAM
// geometry core, the idiomatic-Go analogue of the teacher's detour.Status
// bitmask: a single closed kind enum plus a wrapping struct that satisfies
// the error interface.
package errs

import "fmt"

// Kind identifies one of the error taxonomy entries.
type Kind uint32

const (
	// InvalidPrimitive marks degenerate geometry, a non-finite coordinate or
	// a zero/negative radius. Filtered at ingestion: the caller never sees
	// this returned from Fuse, the offending primitive is simply dropped
	// with a warning.
	InvalidPrimitive Kind = iota + 1

	// ScaleOverflow marks an integer overflow of scaled coordinates.
	// Recoverable by the caller reducing Config.Scale.
	ScaleOverflow

	// EngineMissingFunction marks a requested operation the solver doesn't
	// provide. Fatal for the call, not for the session.
	EngineMissingFunction

	// TangencyEpsilonOutOfRange marks a clamped, non-fatal tangency
	// tolerance; returned only as a warning, never aborts a call.
	TangencyEpsilonOutOfRange

	// OffsetDegenerate marks an inward offset that collapsed every ring.
	// Not fatal: the result is an empty primitive list, no error returned.
	OffsetDegenerate

	// SolverUnavailable marks a failed initialize(); every subsequent
	// public call fails until the engine is re-initialized.
	SolverUnavailable

	// CacheMiss marks an absent cache slot. Not an error: GetCached
	// reports a miss as (nil, false) and callers treat it as a null result.
	CacheMiss
)

func (k Kind) String() string {
	switch k {
	case InvalidPrimitive:
		return "invalid primitive"
	case ScaleOverflow:
		return "scale overflow"
	case EngineMissingFunction:
		return "engine missing function"
	case TangencyEpsilonOutOfRange:
		return "tangency epsilon out of range"
	case OffsetDegenerate:
		return "offset degenerate"
	case SolverUnavailable:
		return "solver unavailable"
	case CacheMiss:
		return "cache miss"
	default:
		return fmt.Sprintf("unknown error kind 0x%x", uint32(k))
	}
}

// Error wraps a Kind with the operation that raised it and, optionally, an
// underlying cause.
type Error struct {
	Kind Kind
	Op   string // e.g. "boolean.Union", "tessellate.Circle"
	Err  error  // optional wrapped cause
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error with no wrapped cause.
func New(op string, kind Kind) *Error { return &Error{Op: op, Kind: kind} }

// Wrap builds an *Error wrapping an existing cause.
func Wrap(op string, kind Kind, err error) *Error { return &Error{Op: op, Kind: kind, Err: err} }

// Is reports whether err carries the given Kind, per the StatusDetail
// predicate idiom of the teacher's detour.Status.
func Is(err error, kind Kind) bool {
	var e *Error
	if as(err, &e) {
		return e.Kind == kind
	}
	return false
}

// as is a tiny local errors.As to avoid importing errors just for this.
func as(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Fatal reports whether err is one of the kinds that abort the current
// operation and must be surfaced to the caller (§7 propagation policy),
// as opposed to InvalidPrimitive (filtered silently), OffsetDegenerate
// (empty, non-error result) or TangencyEpsilonOutOfRange (warning only).
func Fatal(err error) bool {
	var e *Error
	if !as(err, &e) {
		return err != nil
	}
	switch e.Kind {
	case ScaleOverflow, EngineMissingFunction, SolverUnavailable:
		return true
	default:
		return false
	}
}
