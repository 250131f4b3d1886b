package domain

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/ernesto/pkmbridge/internal/codec"
	"github.com/ernesto/pkmbridge/internal/memmap"
	"github.com/ernesto/pkmbridge/internal/variant"
)

type fakeMemory struct {
	buf [0x10000]byte
}

func (m *fakeMemory) ReadByte(addr int) byte { return m.buf[addr] }
func (m *fakeMemory) ReadBytes(start, end int) []byte {
	out := make([]byte, end-start)
	copy(out, m.buf[start:end])
	return out
}
func (m *fakeMemory) WriteByte(addr int, value byte) { m.buf[addr] = value }

type noopLock struct{}

func (noopLock) Lock()   {}
func (noopLock) Unlock() {}

func newFixture() (*fakeMemory, *memmap.Reader, memmap.Catalogue) {
	mem := &fakeMemory{}
	r := memmap.NewReader(mem, variant.Red, noopLock{})
	return mem, r, memmap.NewCatalogue()
}

func TestPartyPokemonReadsFixedLayout(t *testing.T) {
	mem, r, cat := newFixture()
	record, trainer, nickname := cat.Party.Slot(0)
	res := record.Resolve(variant.Red)

	raw := make([]byte, 44)
	raw[partyOffSpeciesID] = 0x99 // Bulbasaur
	raw[partyOffStatus] = 0
	raw[partyOffType1] = 22 // Grass
	raw[partyOffType2] = 3  // Poison
	raw[partyOffLevel] = 17
	// current HP = 0x0021
	raw[partyOffCurrentHP] = 0x00
	raw[partyOffCurrentHP+1] = 0x21
	// derived max HP = 0x0021
	raw[partyOffDerived] = 0x00
	raw[partyOffDerived+1] = 0x21
	copy(mem.buf[res.Start:], raw)

	trainerRes := trainer.Resolve(variant.Red)
	copy(mem.buf[trainerRes.Start:], []byte{0x91, 0xA0, 0xB1, codec.Terminator}) // "Rar"

	nickRes := nickname.Resolve(variant.Red)
	mem.buf[nickRes.Start] = codec.Terminator // empty nickname -> falls back to species name

	p, err := NewPartyPokemon(r, cat, 0, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewPartyPokemon: %v", err)
	}
	if got := p.SpeciesID(); got != 1 {
		t.Fatalf("SpeciesID() = %d, want 1 (Bulbasaur)", got)
	}
	if got := p.Name(); got != "Bulbasaur" {
		t.Fatalf("Name() = %q, want Bulbasaur", got)
	}
	if got := p.Level(); got != 17 {
		t.Fatalf("Level() = %d, want 17", got)
	}
	if got := p.CurrentHP(); got != 0x21 {
		t.Fatalf("CurrentHP() = %d, want 33", got)
	}
	if got := p.Types(); got != [2]string{"Grass", "Poison"} {
		t.Fatalf("Types() = %v, want [Grass Poison]", got)
	}
	if got := p.Status(); len(got) != 1 || got[0] != "Healthy" {
		t.Fatalf("Status() = %v, want [Healthy]", got)
	}
}

func TestPartyPokemonInvalidSlot(t *testing.T) {
	_, r, cat := newFixture()
	if _, err := NewPartyPokemon(r, cat, 6, zerolog.Nop()); err == nil {
		t.Fatalf("expected error for out-of-range slot")
	}
}

func TestPartyPokemonSetLevelBounds(t *testing.T) {
	_, r, cat := newFixture()
	p, _ := NewPartyPokemon(r, cat, 0, zerolog.Nop())
	if err := p.SetLevel(0); err == nil {
		t.Fatalf("expected error for level 0")
	}
	if err := p.SetLevel(101); err == nil {
		t.Fatalf("expected error for level 101")
	}
	if err := p.SetLevel(50); err != nil {
		t.Fatalf("SetLevel(50): %v", err)
	}
	if got := p.Level(); got != 50 {
		t.Fatalf("Level() after SetLevel(50) = %d, want 50", got)
	}
}

func TestEnemyPokemonReadsScatteredFields(t *testing.T) {
	mem, r, cat := newFixture()
	idRes := cat.Enemy.ID.Resolve(variant.Red)
	mem.buf[idRes.Start] = 0xB0 // Charmander

	lvlRes := cat.Enemy.Level.Resolve(variant.Red)
	mem.buf[lvlRes.Start] = 12

	hpRes := cat.Enemy.HP.Resolve(variant.Red)
	mem.buf[hpRes.Start] = 0x00
	mem.buf[hpRes.Start+1] = 0x1E // 30

	e := NewEnemyPokemon(r, cat, zerolog.Nop())
	if got := e.SpeciesID(); got != 4 {
		t.Fatalf("SpeciesID() = %d, want 4 (Charmander)", got)
	}
	if got := e.Level(); got != 12 {
		t.Fatalf("Level() = %d, want 12", got)
	}
	if got := e.CurrentHP(); got != 30 {
		t.Fatalf("CurrentHP() = %d, want 30", got)
	}
}

func TestMenuStateReadyMainMenu(t *testing.T) {
	mem, r, cat := newFixture()
	xRes := cat.Menu.CursorXPos.Resolve(variant.Red)
	yRes := cat.Menu.CursorYPos.Resolve(variant.Red)
	selRes := cat.Menu.SelectedItem.Resolve(variant.Red)
	mem.buf[xRes.Start] = 9
	mem.buf[yRes.Start] = 14
	mem.buf[selRes.Start] = 0

	ms := ReadMenuState(r, cat)
	x, y := ms.CursorPosTop()
	if x != 9 || y != 14 {
		t.Fatalf("CursorPosTop() = (%d,%d), want (9,14)", x, y)
	}
	if ms.SelectedItemID != 0 {
		t.Fatalf("SelectedItemID = %d, want 0", ms.SelectedItemID)
	}
}

func TestLoadMoveEmptySlot(t *testing.T) {
	_, r, _ := newFixture()
	m, err := LoadMove(r, 0)
	if err != nil {
		t.Fatalf("LoadMove(0): %v", err)
	}
	if m.Name != "NA" {
		t.Fatalf("LoadMove(0).Name = %q, want NA", m.Name)
	}
}

func TestLoadMoveOutOfRange(t *testing.T) {
	_, r, _ := newFixture()
	m, err := LoadMove(r, 0x57)
	if err == nil {
		t.Fatalf("expected error for move id above 0x56")
	}
	if m.Name != "NA" {
		t.Fatalf("LoadMove(0x57).Name = %q, want NA", m.Name)
	}
}

// TestLoadMoveUnresolvedName exercises a nonzero, in-range move id whose
// name isn't present in the (empty, zero-filled) fake name bank: no
// terminator means ReadMoveName returns ErrNameNotFound for any id beyond
// the first. LoadMove must surface that as an error while still handing
// back a usable "NA"-named Move rather than a bare zero value.
func TestLoadMoveUnresolvedName(t *testing.T) {
	_, r, _ := newFixture()
	m, err := LoadMove(r, 2)
	if err == nil {
		t.Fatalf("expected error for a move id with no name in the fake bank")
	}
	if m.Name != "NA" {
		t.Fatalf("LoadMove(2).Name = %q, want NA", m.Name)
	}
}

// TestPartyMovesKeepsSlotPositionOnUnresolvedName is the Moves()-level
// regression for the same gap: a failed name lookup must become an "NA"
// sentinel slot in place, not silently shrink the slice and desync it from
// PPs().
func TestPartyMovesKeepsSlotPositionOnUnresolvedName(t *testing.T) {
	mem, r, cat := newFixture()
	p, err := NewPartyPokemon(r, cat, 0, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewPartyPokemon: %v", err)
	}
	record, _, _ := cat.Party.Slot(0)
	res := record.Resolve(variant.Red)
	raw := make([]byte, 44)
	raw[partyOffMoves] = 2   // slot 0: move id 2, name unresolved (no terminator in fake bank)
	raw[partyOffMoves+1] = 0 // slot 1: empty, omitted
	raw[partyOffMoves+2] = 2 // slot 2: same as slot 0
	raw[partyOffMoves+3] = 0 // slot 3: empty, omitted
	raw[partyOffPP] = 10
	raw[partyOffPP+2] = 7
	copy(mem.buf[res.Start:], raw)

	moves := p.Moves()
	if len(moves) != 2 {
		t.Fatalf("Moves() len = %d, want 2 (slots 0 and 2, empty slots omitted)", len(moves))
	}
	for _, m := range moves {
		if m.Name != "NA" {
			t.Fatalf("Moves() slot Name = %q, want NA", m.Name)
		}
	}
	if moves[0].PP != 10 {
		t.Fatalf("Moves()[0].PP = %d, want 10 (slot 0's PP, not shifted)", moves[0].PP)
	}
	if moves[1].PP != 7 {
		t.Fatalf("Moves()[1].PP = %d, want 7 (slot 2's PP, not shifted)", moves[1].PP)
	}
}

func TestLoadMoveDecodesName(t *testing.T) {
	mem, r, _ := newFixture()
	// Name table in bank 0x2C: move id 1's name "Ray" then terminator.
	copy(mem.buf[0x4000:], []byte{0x91, 0xA0, 0xB8, codec.Terminator})

	// Our fake memory has no real banking (record bank 0x0E and name bank
	// 0x2C both map to the same backing array), so this test exercises the
	// name-table walk directly rather than the full LoadMove record+name
	// sequence.
	name, err := r.ReadMoveName(1)
	if err != nil || name != "Ray" {
		t.Fatalf("ReadMoveName(1) = (%q, %v)", name, err)
	}
}
