// Copyright 2026 The mvrp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package routing

import "fmt"

// Kind enumerates the error taxonomy a caller may branch on. All other
// failure modes are programmer errors and panic instead of returning.
type Kind int

const (
	// InvalidInstance marks a malformed problem instance: too few points,
	// zero workers, or a non-finite coordinate. Surfaced at construction,
	// never at run time.
	InvalidInstance Kind = iota

	// InvalidConfiguration marks a malformed solver configuration:
	// non-positive generations or population size, a mutation rate outside
	// [0,1], or an unknown operator tag. Surfaced at driver construction.
	InvalidConfiguration

	// OperatorDegenerate marks a crossover that produced an invalid
	// permutation (only AEX can do this). Recovered locally by falling
	// back to OX; a caller never sees this kind returned from Run, only
	// counted in Result.Degenerate.
	OperatorDegenerate

	// Cancelled marks a caller-signalled cancellation. Run does not return
	// an *Error of this kind: it reports cancellation through
	// Result.Cancelled alongside the best-so-far population; callers may
	// treat it as success at their discretion.
	Cancelled
)

func (k Kind) String() string {
	switch k {
	case InvalidInstance:
		return "InvalidInstance"
	case InvalidConfiguration:
		return "InvalidConfiguration"
	case OperatorDegenerate:
		return "OperatorDegenerate"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Error is the error type returned across the public boundary of this
// package. A caller inspects Kind with errors.As to decide how to react,
// rather than recovering from a panic: this package never panics in
// response to caller-supplied input, only in response to its own broken
// invariants (see the chk.Panic call site in population.go's Sort).
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newError(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}
