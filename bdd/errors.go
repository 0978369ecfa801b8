package bdd

import (
	"errors"
	"fmt"
)

// Sentinel error kinds, per spec.md §7. Callers distinguish them with
// errors.Is; every wrapped error also carries a human-readable message
// naming the offending node/variable so the failure is diagnosable without
// a debugger.
var (
	// ErrPrecondition marks a malformed input: a truth table missing keys,
	// an unknown branch label, or a resolve call against an empty diagram.
	ErrPrecondition = errors.New("bdd: precondition violation")

	// ErrInvariant marks a structural invariant failure detected by
	// EnsureCorrectBdd. It indicates an engine bug; a diagram that raises
	// this is in an undefined state and must not be used further.
	ErrInvariant = errors.New("bdd: invariant violation")

	// ErrResolver marks a failed descent in Resolve: no resolver is
	// registered for the variable a node on the path decides.
	ErrResolver = errors.New("bdd: resolver failure")
)

func preconditionf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrPrecondition}, args...)...)
}

func invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...)
}

func resolverf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrResolver}, args...)...)
}
