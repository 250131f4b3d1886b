package emulator

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/ernesto/pkmbridge/internal/scene"
)

// Fake is an in-memory Emulator: a flat 64KB address space with no actual
// CPU behind it. It exists so internal/runtime's loop, internal/scene's
// state machine, and internal/bus's wiring can all be exercised end to end
// in tests without a real ROM and core.
type Fake struct {
	mem     [0x10000]byte
	ticks   int
	maxTick int // 0 means unbounded
	stopped atomic.Bool
	pressed []scene.Button
}

// NewFake returns a Fake that reports running (Tick returns true) forever,
// unless maxTick is positive, in which case Tick returns false once that
// many ticks have elapsed - useful for bounding a test's emulator loop.
func NewFake(maxTick int) *Fake {
	return &Fake{maxTick: maxTick}
}

func (f *Fake) Tick() bool {
	f.ticks++
	if f.stopped.Load() {
		return false
	}
	if f.maxTick > 0 && f.ticks > f.maxTick {
		return false
	}
	return true
}

// RequestStop tells the next Tick call to report shutdown. Safe to call
// from a goroutine other than the one driving the tick loop, e.g. a
// SIGINT handler.
func (f *Fake) RequestStop() { f.stopped.Store(true) }

func (f *Fake) Ticks() int { return f.ticks }

func (f *Fake) ReadByte(addr int) byte { return f.mem[addr] }

func (f *Fake) ReadBytes(start, end int) []byte {
	out := make([]byte, end-start)
	copy(out, f.mem[start:end])
	return out
}

func (f *Fake) WriteByte(addr int, value byte) { f.mem[addr] = value }

// WriteBytes seeds a range directly - a test-only convenience absent from
// the Emulator interface itself, since no caller of the real interface
// writes a block of memory at once.
func (f *Fake) WriteBytes(start int, data []byte) {
	copy(f.mem[start:], data)
}

func (f *Fake) PressButton(btn scene.Button) {
	if btn == scene.Pass {
		return
	}
	f.pressed = append(f.pressed, btn)
}

// PressedButtons returns every non-Pass button pressed so far, in order.
func (f *Fake) PressedButtons() []scene.Button {
	return f.pressed
}

// SaveState writes the entire address space verbatim.
func (f *Fake) SaveState(w io.Writer) error {
	n, err := w.Write(f.mem[:])
	if err != nil {
		return fmt.Errorf("emulator: save state: %w", err)
	}
	if n != len(f.mem) {
		return fmt.Errorf("emulator: save state: short write (%d of %d bytes)", n, len(f.mem))
	}
	return nil
}

// LoadState reads exactly one address space's worth of bytes.
func (f *Fake) LoadState(r io.Reader) error {
	var buf [0x10000]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return fmt.Errorf("emulator: load state: %w", err)
	}
	f.mem = buf
	return nil
}
