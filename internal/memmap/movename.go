package memmap

import "github.com/ernesto/pkmbridge/internal/codec"

// moveNameTableStart/End bound the window of concatenated, terminator-
// separated move names within whatever bank is currently selected. Bank
// selection itself is the caller's job (see ReadMoveName); this package only
// knows how to walk names once a bank is active.
const (
	moveNameTableStart = 0x4000
	moveNameTableEnd   = 0x460F
)

// nthStringStart returns the offset, relative to moveNameTableStart, of the
// start of the n'th (1-based) terminator-delimited string in data. n=1 is
// the very first byte. ok is false if data contains fewer than n-1
// terminators, meaning the n'th string isn't present in this window.
func nthStringStart(data []byte, n int) (offset int, ok bool) {
	if n <= 0 {
		return 0, false
	}
	need := n - 1
	if need == 0 {
		return 0, true
	}
	seen := 0
	for i, b := range data {
		if b == codec.Terminator {
			seen++
			if seen == need {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// ReadMoveName decodes the moveID'th (1-based) name out of the bank
// currently selected via SwitchBank. Callers are expected to have already
// selected the move-name bank under the bank lock (see internal/domain's
// LoadMove, which calls this inside WithBank with the move-name bank). Returns ErrNameNotFound if the bank has
// fewer than moveID-1 terminators before the requested window.
func (r *Reader) ReadMoveName(moveID int) (string, error) {
	window := r.mem.ReadBytes(moveNameTableStart, moveNameTableEnd)
	offset, ok := nthStringStart(window, moveID)
	if !ok {
		return "", ErrNameNotFound
	}
	return codec.DecodeGen1(window[offset:]), nil
}
