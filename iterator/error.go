package iterator

import "errors"

// ErrExhausted is returned by Next when the iterator has no more elements.
var ErrExhausted = errors.New("exhausted sequence")
