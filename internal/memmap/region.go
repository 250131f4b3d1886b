// Package memmap catalogues the fixed WRAM/SRAM addresses this harness reads
// and writes, and exposes the handful of read primitives every domain view
// is built from. It is deliberately the lowest-level package with knowledge
// of cartridge addresses so that internal/domain, internal/scene, and
// internal/pokedex never hard-code an offset themselves - they all go
// through a named Region.
package memmap

import (
	"fmt"

	"github.com/ernesto/pkmbridge/internal/variant"
)

// Region names a single contiguous address span in Red/Blue coordinates;
// Resolve relocates it for a RomVariant. Most regions are one byte;
// multi-byte ones (name buffers, stat blocks, whole party-member records)
// are read in one shot by the caller via Bytes.
type Region struct {
	Name        string
	Description string
	start       int
	end         int // inclusive, Red/Blue raw coordinates before relocation
}

// NewRegion builds a one-off Region outside the static Catalogue, for
// addresses computed at runtime (e.g. a move record's offset within its
// ROM bank, which depends on the requested move id). end is inclusive.
func NewRegion(name string, start, end int, description string) Region {
	return Region{Name: name, Description: description, start: start, end: end}
}

// Size returns the region's width in bytes.
func (r Region) Size() int {
	return r.end - r.start + 1
}

func (r Region) String() string {
	return fmt.Sprintf("Region(%s, %#04x-%#04x)", r.Name, r.start, r.end)
}

// Resolved pairs a Region with its addresses relocated for one variant. The
// read primitives in this package take a bare Region and resolve it
// themselves on every read, so a caller can never forget to relocate.
type Resolved struct {
	Region
	Start int
	End   int // inclusive, post-relocation
}

// Resolve relocates a Region for v. Catalogue entries are declared once in
// Red/Blue coordinates; Resolve is what a Reader calls per-access so the
// same Catalogue instance works across a ROM swap at runtime.
func (r Region) Resolve(v variant.RomVariant) Resolved {
	start, end := v.Relocate(r.start, r.end)
	return Resolved{Region: r, Start: start, End: end}
}
