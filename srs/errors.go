package srs

import "errors"

// Sentinel errors, each meant to be checked with errors.Is against an
// error returned from this package.
var (
	// ErrTooSmall is a parameter-mismatch error: a sub-ceremony was asked
	// to run with fewer than 2 points in either group.
	ErrTooSmall = errors.New("srs: N1 and N2 must each be at least 2")

	// ErrSizeMismatch is a decode error: a serialized SRS's declared
	// sizes disagree with the bound Parameters or with the actual
	// number of points present.
	ErrSizeMismatch = errors.New("srs: declared size does not match bound parameters")

	// ErrMalformedPoint is a decode error: a hex string failed to decode
	// to a valid curve point.
	ErrMalformedPoint = errors.New("srs: malformed point encoding")
)
