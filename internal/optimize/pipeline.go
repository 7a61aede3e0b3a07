package optimize

import "fmt"

// Options configures a single Run. The zero value runs neither pass —
// use DefaultOptions for the normal "fold and eliminate to a fixed
// point" configuration, or set Folding/DCE explicitly to isolate one
// pass while debugging the other. MaxIterations alone defaults itself
// to DefaultMaxIterations when left at zero.
type Options struct {
	// MaxIterations bounds the fold/DCE fixed-point loop. Zero means
	// DefaultMaxIterations.
	MaxIterations int
	// Diagnostics, if true, records a CFA dump for each body alongside
	// the optimized program. The per-body iteration count is recorded
	// either way.
	Diagnostics bool
	// Folding disables constant folding when false.
	Folding bool
	// DCE disables dead code elimination when false.
	DCE bool
}

// DefaultMaxIterations bounds the driver when Options.MaxIterations is
// left at zero. A well-formed body converges in a handful of rounds;
// this exists purely as a runaway guard against a malformed or
// adversarial input that never reaches a fixed point.
const DefaultMaxIterations = 100

// DefaultOptions runs both passes to a fixed point without diagnostics.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations, Folding: true, DCE: true}
}

func (o Options) normalized() Options {
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	return o
}

// The following transformations are named here because a complete
// optimizer for this IR shape would eventually grow them, but none is
// implemented: each would need information this pass deliberately does
// not compute (SSA form, loop structure, alias sets, call graphs).

// CommonSubexpressionElimination is not implemented: it requires value
// numbering across a block, which this IR's tagged-statement form does
// not track. Not applicable at this IR level.
func CommonSubexpressionElimination() error { return errNotApplicable("common subexpression elimination") }

// LoopInvariantCodeMotion is not implemented: it requires loop/back-edge
// detection over the CFG, which is out of scope (§1 non-goals). Not
// applicable at this IR level.
func LoopInvariantCodeMotion() error { return errNotApplicable("loop-invariant code motion") }

// Inlining is not implemented: it is inter-procedural, and every
// analysis here is intentionally intra-procedural. Not applicable at
// this IR level.
func Inlining() error { return errNotApplicable("inlining") }

func errNotApplicable(pass string) error {
	return fmt.Errorf("%s: not applicable at this IR level", pass)
}
