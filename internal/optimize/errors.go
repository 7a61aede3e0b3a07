package optimize

import "fmt"

// InvariantError reports malformed IR discovered while optimizing: a
// jump or branch target with no matching block label. The pass returns
// this rather than panicking, matching the "malformed input surfaces as
// an error, never a panic" rule.
type InvariantError struct {
	Body      string
	Line      string
	Invariant string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s at %s in %s", e.Invariant, e.Line, e.Body)
}

// ErrInvariantViolated is the sentinel wrapped by every InvariantError,
// so callers can test with errors.Is without matching message text.
var ErrInvariantViolated = fmt.Errorf("invariant violated")

func (e *InvariantError) Unwrap() error { return ErrInvariantViolated }
