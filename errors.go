// File: errors.go
// Role: Sentinel errors for the top-level Transform.
package qcut

import "errors"

// ErrResultArityMismatch indicates a simulator returned a result whose
// length is not 1 for one of the configuration tapes Transform produced.
// Every configuration tape carries exactly one terminal measurement, so
// its result must carry exactly one value.
var ErrResultArityMismatch = errors.New("qcut: simulator result length must be exactly 1")

// ErrResultCountMismatch indicates a simulator returned a different
// number of results than the number of configuration tapes it was given.
var ErrResultCountMismatch = errors.New("qcut: simulator returned a different number of results than tapes given")
