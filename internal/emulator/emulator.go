// Package emulator defines the narrow surface internal/runtime needs from
// a running Game Boy core, plus an in-memory fake used by tests and by any
// caller that wants to exercise the rest of the stack without a real ROM.
package emulator

import (
	"io"

	"github.com/ernesto/pkmbridge/internal/scene"
)

// Emulator is the full surface the tick loop (and, via the emulator-access
// mutex, the services thread) is allowed to call into. internal/memmap's
// MemoryIO is a subset of this - any Emulator can back a memmap.Reader
// directly.
type Emulator interface {
	// Tick advances the core by one frame and reports whether it should
	// keep running; false signals the emulator loop to exit.
	Tick() bool

	ReadByte(addr int) byte
	ReadBytes(start, end int) []byte
	WriteByte(addr int, value byte)

	// PressButton presses btn for the rest of the current frame. Pass is a
	// no-op, matching EmulatorSession.press_button's early return.
	PressButton(btn scene.Button)

	SaveState(w io.Writer) error
	LoadState(r io.Reader) error
}
