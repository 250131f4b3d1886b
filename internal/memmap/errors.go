package memmap

import (
	"errors"
	"fmt"
)

// ErrNameNotFound is returned by ReadMoveName when the selected bank does
// not contain at least moveID-1 terminators before the requested name,
// meaning moveID does not resolve to a real entry in the current bank.
var ErrNameNotFound = errors.New("memmap: move name not found in current bank")

// BoundsError reports an out-of-range memory access. It maps to the
// MemoryBounds error kind: returned to the caller, never fatal. Nothing in
// this package returns it.
type BoundsError struct {
	Addr int
	Low  int
	High int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("memmap: address %#04x out of bounds [%#04x, %#04x)", e.Addr, e.Low, e.High)
}
