package client

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the client core can produce. It is a
// taxonomy, not a set of concrete Go error types — callers match on Kind
// via errors.As(err, &sparkErr), the same way a repository layer exposes
// sentinel errors for errors.Is matching.
type ErrorKind int

const (
	// KindInvalidArgument covers empty/comma-bearing tags, a missing
	// id_or_tag for a targeted interrupt, and InterruptTypeUnspecified.
	KindInvalidArgument ErrorKind = iota
	// KindSessionMismatch is fatal and non-retryable: a response was
	// routed from a different session than the one the client stamped.
	KindSessionMismatch
	// KindTransport covers any RPC-level failure: connection, deadline,
	// status.
	KindTransport
	// KindFraming covers Arrow row-count mismatches and decoder failures.
	KindFraming
	// KindUnimplemented covers Extension response variants and non-UTF8
	// first-column types in ToFirstValue.
	KindUnimplemented
	// KindAnalysis covers reads of an empty accumulator slot.
	KindAnalysis
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindSessionMismatch:
		return "session_mismatch"
	case KindTransport:
		return "transport"
	case KindFraming:
		return "framing"
	case KindUnimplemented:
		return "unimplemented"
	case KindAnalysis:
		return "analysis"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by every exported operation in
// this package.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("spark connect: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("spark connect: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so callers
// can do errors.Is(err, &client.Error{Kind: client.KindSessionMismatch}).
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

func newErr(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

func invalidArgument(msg string) *Error { return newErr(KindInvalidArgument, msg, nil) }
func sessionMismatch(msg string) *Error { return newErr(KindSessionMismatch, msg, nil) }
func transportErr(cause error) *Error   { return newErr(KindTransport, "RPC failed", cause) }
func framingErr(msg string) *Error      { return newErr(KindFraming, msg, nil) }
func unimplemented(msg string) *Error   { return newErr(KindUnimplemented, msg, nil) }
func analysisErr(msg string) *Error     { return newErr(KindAnalysis, msg, nil) }
