// Package domain exposes live, re-reading views over Game Boy memory as
// typed Pokémon and menu objects. A view holds no cached mutable state: every
// property access goes back through internal/memmap to the emulator, so a
// caller always sees what's actually in WRAM/SRAM right now.
package domain

import "fmt"

// InvalidArgumentError reports a mutation rejected by bounds-checking, e.g.
// a party slot or move slot outside its valid range. It maps to the
// MemoryBounds error kind: propagated to the caller, never fatal.
type InvalidArgumentError struct {
	Field string
	Value int
	Low   int
	High  int
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("domain: %s=%d out of range [%d,%d]", e.Field, e.Value, e.Low, e.High)
}
