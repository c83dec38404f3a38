package rgatext

import "github.com/pkg/errors"

// ErrNotReady is returned by ApplyOperation when the causal-readiness
// predicate (spec section 4.3.1) fails: the receiver has not yet seen
// every operation the sender had seen, or the operation is not exactly
// the next one in the sender's own stream. This is recoverable — state is
// left untouched and the caller (the transport, not this package) is
// expected to resubmit the operation once more of the sender's history has
// arrived.
var ErrNotReady = errors.New("rgatext: operation not ready to receive")

// ErrMissingPredecessor is returned by RGA.Insert (and surfaced through
// SynchronizedText) when an Insert's insert_after S4Vector does not name
// any node in the RGA. Under causally consistent delivery this cannot
// happen; seeing it indicates a programming or transport bug rather than a
// recoverable ordering gap.
var ErrMissingPredecessor = errors.New("rgatext: insert_after position not found")
