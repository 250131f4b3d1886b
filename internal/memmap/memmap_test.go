package memmap

import (
	"testing"

	"github.com/ernesto/pkmbridge/internal/codec"
	"github.com/ernesto/pkmbridge/internal/variant"
)

// fakeMemory is a flat 64KB byte array standing in for an Emulator during
// unit tests; it records writes so bank-switch tests can assert on them.
type fakeMemory struct {
	buf   [0x10000]byte
	writes []struct{ addr int; value byte }
}

func (m *fakeMemory) ReadByte(addr int) byte { return m.buf[addr] }
func (m *fakeMemory) ReadBytes(start, end int) []byte {
	out := make([]byte, end-start)
	copy(out, m.buf[start:end])
	return out
}
func (m *fakeMemory) WriteByte(addr int, value byte) {
	m.buf[addr] = value
	m.writes = append(m.writes, struct {
		addr  int
		value byte
	}{addr, value})
}

type noopLock struct{}

func (noopLock) Lock()   {}
func (noopLock) Unlock() {}

func TestReaderU8(t *testing.T) {
	mem := &fakeMemory{}
	mem.buf[0xD163] = 3
	r := NewReader(mem, variant.Red, noopLock{})
	cat := NewCatalogue()
	if got := r.U8(cat.Player.PartyCount); got != 3 {
		t.Fatalf("U8(PartyCount) = %d, want 3", got)
	}
}

func TestReaderU16HiLo(t *testing.T) {
	mem := &fakeMemory{}
	cat := NewCatalogue()
	res := cat.Active.MaxHP.Resolve(variant.Red)
	mem.buf[res.Start] = 0x01   // hi
	mem.buf[res.Start+1] = 0x2C // lo
	r := NewReader(mem, variant.Red, noopLock{})
	if got, want := r.U16HiLo(cat.Active.MaxHP), uint16(0x012C); got != want {
		t.Fatalf("U16HiLo = %#04x, want %#04x", got, want)
	}
}

func TestReaderU24HiMidLo(t *testing.T) {
	mem := &fakeMemory{}
	cat := NewCatalogue()
	record, _, _ := cat.Party.Slot(0)
	expStart := record.start + 14 // experience field offset within a 44-byte slot
	res := Resolved{Start: expStart, End: expStart + 2}
	mem.buf[res.Start] = 0x01
	mem.buf[res.Start+1] = 0x02
	mem.buf[res.Start+2] = 0x03
	r := NewReader(mem, variant.Red, noopLock{})
	got := r.U24HiMidLo(reg("exp", expStart, expStart+2, ""))
	if want := uint32(0x010203); got != want {
		t.Fatalf("U24HiMidLo = %#06x, want %#06x", got, want)
	}
}

func TestReaderStringDecodesViaCodec(t *testing.T) {
	mem := &fakeMemory{}
	cat := NewCatalogue()
	res := cat.Player.Name.Resolve(variant.Red)
	copy(mem.buf[res.Start:], []byte{0x91, 0xA0, 0xB1, codec.Terminator})
	r := NewReader(mem, variant.Red, noopLock{})
	got := r.String(cat.Player.Name)
	if want := "Rar"; got != want {
		t.Fatalf("String(PlayerName) = %q, want %q", got, want)
	}
}

// TestYellowRelocationShiftsRegionsAboveThreshold checks that a region at or
// above the Yellow shift threshold (0xCF1A) resolves one byte lower on
// Yellow than on Red, while a region below the threshold is unaffected.
func TestYellowRelocationShiftsRegionsAboveThreshold(t *testing.T) {
	cat := NewCatalogue()

	above := cat.Enemy.ID // 0xCFD8, above the threshold
	redRes := above.Resolve(variant.Red)
	yellowRes := above.Resolve(variant.Yellow)
	if yellowRes.Start != redRes.Start-1 {
		t.Fatalf("Yellow.Resolve(%s) = %#04x, want %#04x (one below Red)", above.Name, yellowRes.Start, redRes.Start-1)
	}

	below := cat.Menu.CurrentPartyIdx // 0xCC2F, below the threshold
	redBelow := below.Resolve(variant.Red)
	yellowBelow := below.Resolve(variant.Yellow)
	if yellowBelow.Start != redBelow.Start {
		t.Fatalf("Yellow.Resolve(%s) = %#04x, want unchanged %#04x", below.Name, yellowBelow.Start, redBelow.Start)
	}
}

func TestSwitchBankWritesBothRegisters(t *testing.T) {
	mem := &fakeMemory{}
	r := NewReader(mem, variant.Red, noopLock{})
	r.SwitchBank(0x2C)
	if mem.buf[0x6000] != 0x00 {
		t.Fatalf("expected 0x6000 cleared before bank select")
	}
	if mem.buf[0x2000] != 0x2C {
		t.Fatalf("expected bank register set to 0x2C, got %#02x", mem.buf[0x2000])
	}
}

func TestReadMoveNameWalksTerminators(t *testing.T) {
	mem := &fakeMemory{}
	data := []byte{0x91, 0x84, 0x83, codec.Terminator, 0x80, 0xA0, codec.Terminator}
	copy(mem.buf[moveNameTableStart:], data)
	r := NewReader(mem, variant.Red, noopLock{})

	got, err := r.ReadMoveName(1)
	if err != nil || got != "RED" {
		t.Fatalf("ReadMoveName(1) = (%q, %v), want (\"RED\", nil)", got, err)
	}

	got, err = r.ReadMoveName(2)
	if err != nil || got != "Aa" {
		t.Fatalf("ReadMoveName(2) = (%q, %v), want (\"Aa\", nil)", got, err)
	}
}

func TestReadMoveNameNotFound(t *testing.T) {
	mem := &fakeMemory{}
	// No terminators at all in the window: only name 1 (offset 0) exists.
	r := NewReader(mem, variant.Red, noopLock{})
	_, err := r.ReadMoveName(3)
	if err != ErrNameNotFound {
		t.Fatalf("ReadMoveName(3) error = %v, want ErrNameNotFound", err)
	}
}
