package optimize

import "chocopyopt/internal/ir"

// VerifyFixedPoint re-runs Run on an already-optimized program and
// reports whether the result is structurally identical to the input —
// the idempotence property every output of Run must satisfy. Tests use
// this instead of hand-rolling a second Run call and an ir.Equal check.
func VerifyFixedPoint[A comparable](prog ir.Program[A], opts Options) (bool, error) {
	again, _, err := Run(prog, opts)
	if err != nil {
		return false, err
	}
	return ir.Equal(prog, again), nil
}
