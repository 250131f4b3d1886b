package memmap

import (
	"github.com/ernesto/pkmbridge/internal/codec"
	"github.com/ernesto/pkmbridge/internal/variant"
)

// MemoryIO is the minimal memory surface a Reader needs: byte-addressed
// reads over the flat 64KB CPU address space, plus a write for ROM bank
// selects. internal/emulator's Emulator interface satisfies this.
type MemoryIO interface {
	ReadByte(addr int) byte
	// ReadBytes returns the half-open range [start, end).
	ReadBytes(start, end int) []byte
	WriteByte(addr int, value byte)
}

// Locker serializes access to MemoryIO across goroutines. In production
// this is the runtime's emulator-access mutex; tests can pass a no-op.
type Locker interface {
	Lock()
	Unlock()
}

// Reader resolves Regions against the active RomVariant and reads them from
// an underlying MemoryIO. It holds no mutable Pokémon state itself - every
// read hits the emulator directly, which is what makes domain views safe to
// re-read on every property access instead of caching something stale.
type Reader struct {
	mem  MemoryIO
	v    variant.RomVariant
	bank Locker
}

// NewReader builds a Reader for the given variant. bank is the lock WithBank
// holds around a bank switch and the reads that follow it; SwitchBank and
// ReadMoveName do not take it themselves. Pass the runtime's shared
// emulator-access mutex in production.
func NewReader(mem MemoryIO, v variant.RomVariant, bank Locker) *Reader {
	return &Reader{mem: mem, v: v, bank: bank}
}

// Variant reports which cartridge this Reader is resolving addresses for.
func (r *Reader) Variant() variant.RomVariant {
	return r.v
}

// U8 reads a single byte from reg. reg must describe a one-byte region;
// callers reading multi-byte fields use Bytes directly.
func (r *Reader) U8(reg Region) byte {
	res := reg.Resolve(r.v)
	return r.mem.ReadByte(res.Start)
}

// Bytes reads reg's full span, relocated for the active variant.
func (r *Reader) Bytes(reg Region) []byte {
	res := reg.Resolve(r.v)
	return r.mem.ReadBytes(res.Start, res.End+1)
}

// U16HiLo reads a two-byte big-endian value: the first byte in memory is
// the high byte. This matches every 16-bit stat field in the party and
// active-battle records (max HP, Attack, Defense, Speed, Special, and the
// enemy's mirror of each).
func (r *Reader) U16HiLo(reg Region) uint16 {
	b := r.Bytes(reg)
	if len(b) < 2 {
		return 0
	}
	hi, lo := b[0], b[1]
	return uint16(lo) | uint16(hi)<<8
}

// U24HiMidLo reads a three-byte big-endian value, used for the experience
// field of a party record.
func (r *Reader) U24HiMidLo(reg Region) uint32 {
	b := r.Bytes(reg)
	if len(b) < 3 {
		return 0
	}
	hi, mid, lo := b[0], b[1], b[2]
	return uint32(lo) | uint32(mid)<<8 | uint32(hi)<<16
}

// U8List reads reg as a plain slice of raw byte values, used for PP slots,
// EV/DV pairs before they're split, and move-id lists.
func (r *Reader) U8List(reg Region) []byte {
	return r.Bytes(reg)
}

// String decodes reg as Gen I text, stopping at the terminator.
func (r *Reader) String(reg Region) string {
	return codec.DecodeGen1(r.Bytes(reg))
}

// WriteByteAt writes a single byte at an already-relocated absolute
// address. Mutating accessors in internal/domain resolve their Region
// themselves (so they can compute a field offset within it) and call this
// rather than going through a Region-based write helper.
func (r *Reader) WriteByteAt(addr int, value byte) {
	r.mem.WriteByte(addr, value)
}

// SwitchBank selects a ROM bank by writing it to the cartridge's bank-select
// register at 0x2000, masked to the 7 usable bits. Bank 0 is always mapped
// at 0x0000-0x3FFF regardless of this write; callers reading bank-switched
// data (moves, move names) must hold bank (the emulator-access mutex) for
// the full switch-read sequence, as WithBank does, so a concurrent tick
// doesn't observe (or clobber) the wrong bank.
func (r *Reader) SwitchBank(bank int) {
	r.mem.WriteByte(0x6000, 0x00)
	r.mem.WriteByte(0x2000, byte(bank&0x7F))
}

// WithBank runs fn with bank selected, holding the bank lock for the
// duration. It does not restore a prior bank afterward: callers that need a
// specific bank active again (e.g. the tick loop's own reads) must select
// it themselves, mirroring how select_rom_bank is used as a one-shot
// operation rather than a stack in the reference implementation.
func (r *Reader) WithBank(bank int, fn func()) {
	r.bank.Lock()
	defer r.bank.Unlock()
	r.SwitchBank(bank)
	fn()
}
