package scrypt

import "fmt"

// ParameterError reports that a caller-supplied cost or length parameter
// is outside the range this package accepts. It is always returned before
// any memory is allocated or any derivation work is performed.
type ParameterError struct {
	Field  string // "costFactor", "r", "p", "dkLen", or the block-length check that failed
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("scrypt: invalid %s: %s", e.Field, e.Reason)
}

// FormatError reports that a password-hash record string could not be
// parsed: a missing field, an unrecognized version tag, malformed hex or
// base64, or a decoded salt/key of the wrong length.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("scrypt: malformed hash record: %s", e.Reason)
}

// RngError reports that the secure random source failed while generating
// a salt for HashPassword. On a sane host this should never happen; it
// exists so that failure, should it ever occur, is distinguishable from
// every other error kind.
type RngError struct {
	Err error
}

func (e *RngError) Error() string {
	return fmt.Sprintf("scrypt: random source failed: %v", e.Err)
}

func (e *RngError) Unwrap() error { return e.Err }

// InternalError reports a failure that is not the caller's fault: the
// parameters were legal, but the host could not satisfy the resulting
// resource requirement (most commonly, allocating the N*128*r-byte ROMix
// working array). Kept distinct from ParameterError so callers can tell
// "ask for something smaller" apart from "this exact request is fine, try
// again with more memory available".
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("scrypt: internal error: %s", e.Reason)
}
