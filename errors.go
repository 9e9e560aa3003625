package splithash

import (
	"errors"
	"fmt"
)

// ErrInternalInconsistency is wrapped by every panic this package raises.
// All such panics indicate a broken invariant reachable only through a bug
// in this package itself, never through caller-supplied input: boundary
// cases (an out-of-range split index, concatenating with an empty tree) are
// always handled by returning a value, never by panicking.
var ErrInternalInconsistency = errors.New("splithash: internal inconsistency")

var (
	// ErrTempNodeQueried is raised when a TempBinaryNode — which exists only
	// as scratch input to the fringe machinery — is asked for anything beyond
	// its height or its children.
	ErrTempNodeQueried = fmt.Errorf("%w: temporary binary node queried outside fringe assembly", ErrInternalInconsistency)

	// ErrMissingChild is raised when a descent expects a non-nil child and
	// finds none, which can only happen if a node reports a height greater
	// than zero without holding children.
	ErrMissingChild = fmt.Errorf("%w: descent encountered a missing child", ErrInternalInconsistency)

	// ErrUnreachableBitScan names a fringe-boundary scan that fails to
	// converge. No code in this package raises it: findFringeWidth and
	// scanFringeBoundary loop until the boundary settles, relying on the
	// exponential-decay invariant on Hash.HashAt to end.
	ErrUnreachableBitScan = fmt.Errorf("%w: fringe boundary scan did not stabilize", ErrInternalInconsistency)
)
