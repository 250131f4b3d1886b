package domain

import (
	"github.com/rs/zerolog"

	"github.com/ernesto/pkmbridge/internal/memmap"
	"github.com/ernesto/pkmbridge/internal/pokedex"
)

// Party record field offsets within the 44-byte PartyPokemonRecord layout.
const (
	partyOffSpeciesID   = 0
	partyOffCurrentHP   = 1 // 2 bytes
	partyOffShadowLevel = 3
	partyOffStatus      = 4
	partyOffType1       = 5
	partyOffType2       = 6
	partyOffCatchRate   = 7
	partyOffMoves       = 8 // 4 bytes
	partyOffTrainerID   = 12 // 2 bytes
	partyOffExperience  = 14 // 3 bytes
	partyOffEVs         = 17 // 5 x u16 = 10 bytes
	partyOffDVs         = 27 // 2 bytes
	partyOffPP          = 29 // 4 bytes
	partyOffLevel       = 33
	partyOffDerived     = 34 // 5 x u16 = 10 bytes
)

// EVs is a party Pokémon's five effort values.
type EVs struct {
	HP      uint16
	Attack  uint16
	Defense uint16
	Speed   uint16
	Special uint16
}

// PartyPokemon is a live view over one of the six fixed party slots. It
// reads fresh bytes from memory on every call; nothing about a PartyPokemon
// is cached across ticks.
type PartyPokemon struct {
	r    *memmap.Reader
	cat  memmap.Catalogue
	slot int // 0-based, 0..5
	log  zerolog.Logger
}

// NewPartyPokemon returns a view over party slot (0-based).
func NewPartyPokemon(r *memmap.Reader, cat memmap.Catalogue, slot int, log zerolog.Logger) (*PartyPokemon, error) {
	if slot < 0 || slot > 5 {
		return nil, &InvalidArgumentError{Field: "slot", Value: slot, Low: 0, High: 5}
	}
	return &PartyPokemon{r: r, cat: cat, slot: slot, log: log}, nil
}

func (p *PartyPokemon) raw() []byte {
	record, _, _ := p.cat.Party.Slot(p.slot)
	return p.r.Bytes(record)
}

// Refresh is a semantic no-op: an implementation hint that a caller may
// pre-read the slot's bytes once and reuse them for the rest of a tick. Every
// accessor here already re-reads memory itself, so calling or skipping
// Refresh changes nothing observable.
func (p *PartyPokemon) Refresh() {}

// RawSpeciesID returns the ROM-internal species index stored in the slot,
// before National Pokédex translation.
func (p *PartyPokemon) RawSpeciesID() byte {
	return p.raw()[partyOffSpeciesID]
}

// SpeciesID returns the National Pokédex number, or 0 if the ROM id has no
// known mapping (a MissingNo. slot).
func (p *PartyPokemon) SpeciesID() int {
	return pokedex.RomIDToPokedexID[p.RawSpeciesID()]
}

// Name resolves SpeciesID to its canonical English name, or the nickname
// table value if this slot has a custom nickname stored in its own parallel
// record.
func (p *PartyPokemon) Name() string {
	if n := p.Nickname(); n != "" {
		return n
	}
	if name, ok := pokedex.PokedexIDToName[p.SpeciesID()]; ok {
		return name.EN
	}
	return "Unknown"
}

// Nickname reads this slot's entry in the parallel nickname table.
func (p *PartyPokemon) Nickname() string {
	_, _, nickname := p.cat.Party.Slot(p.slot)
	return p.r.String(nickname)
}

// TrainerName reads this slot's original-trainer name.
func (p *PartyPokemon) TrainerName() string {
	_, trainerName, _ := p.cat.Party.Slot(p.slot)
	return p.r.String(trainerName)
}

func (p *PartyPokemon) u16At(raw []byte, off int) uint16 {
	return uint16(raw[off+1]) | uint16(raw[off])<<8
}

// CurrentHP is the slot's live HP.
func (p *PartyPokemon) CurrentHP() uint16 {
	raw := p.raw()
	return p.u16At(raw, partyOffCurrentHP)
}

// ShadowLevel is a level value cached elsewhere in the record that may lag
// the canonical Level() after certain in-battle events (e.g. a Transform).
func (p *PartyPokemon) ShadowLevel() byte {
	return p.raw()[partyOffShadowLevel]
}

// Level is the slot's canonical level.
func (p *PartyPokemon) Level() uint8 {
	return p.raw()[partyOffLevel]
}

// Status decodes the slot's status byte.
func (p *PartyPokemon) Status() []string {
	labels := pokedex.StatusLabels(p.raw()[partyOffStatus])
	if len(labels) == 0 {
		return []string{"Healthy"}
	}
	return labels
}

// Types returns the slot's primary/secondary type names.
func (p *PartyPokemon) Types() [2]string {
	raw := p.raw()
	return [2]string{pokedex.TypeName(raw[partyOffType1]), pokedex.TypeName(raw[partyOffType2])}
}

// CatchRate is the Gen II-era catch-rate byte some tools repurpose as an
// item-holding slot; exposed as-is, uninterpreted.
func (p *PartyPokemon) CatchRate() byte {
	return p.raw()[partyOffCatchRate]
}

// MoveIDs returns the four raw move ids, 0 for an empty slot.
func (p *PartyPokemon) MoveIDs() [4]byte {
	raw := p.raw()
	var ids [4]byte
	copy(ids[:], raw[partyOffMoves:partyOffMoves+4])
	return ids
}

// PPs returns the four raw PP bytes, parallel to MoveIDs.
func (p *PartyPokemon) PPs() [4]byte {
	raw := p.raw()
	var pps [4]byte
	copy(pps[:], raw[partyOffPP:partyOffPP+4])
	return pps
}

// Moves resolves this slot's four move ids (and their max PP, which the
// party record doesn't itself carry) into display-ready MoveSlots. Empty
// slots (move id 0) are omitted; a move id that fails to resolve (bad id,
// or a name the current bank doesn't have) becomes an "NA" sentinel slot
// in its original position instead of being dropped, so the result stays
// aligned with PPs().
func (p *PartyPokemon) Moves() []MoveSlot {
	ids := p.MoveIDs()
	pps := p.PPs()
	out := make([]MoveSlot, 0, 4)
	for i, id := range ids {
		if id == 0 {
			continue
		}
		m, err := LoadMove(p.r, id)
		if err != nil {
			p.log.Warn().Err(err).Int("slot", i).Msg("party move did not resolve, using NA sentinel")
			out = append(out, naMoveSlot(pps[i]))
			continue
		}
		out = append(out, MoveSlot{
			Name: m.Name, Effect: m.Effect(), Power: int16(m.Power),
			Type: m.Type(), Accuracy: m.Accuracy(), PP: pps[i], MaxPP: m.PP,
		})
	}
	return out
}

// TrainerID is the original trainer id this Pokémon was caught/traded
// under.
func (p *PartyPokemon) TrainerID() uint16 {
	raw := p.raw()
	return p.u16At(raw, partyOffTrainerID)
}

// Experience is the slot's 24-bit total experience.
func (p *PartyPokemon) Experience() uint32 {
	raw := p.raw()
	hi, mid, lo := raw[partyOffExperience], raw[partyOffExperience+1], raw[partyOffExperience+2]
	return uint32(lo) | uint32(mid)<<8 | uint32(hi)<<16
}

// EVs returns the slot's five effort values.
func (p *PartyPokemon) EVs() EVs {
	raw := p.raw()
	return EVs{
		HP:      p.u16At(raw, partyOffEVs),
		Attack:  p.u16At(raw, partyOffEVs+2),
		Defense: p.u16At(raw, partyOffEVs+4),
		Speed:   p.u16At(raw, partyOffEVs+6),
		Special: p.u16At(raw, partyOffEVs+8),
	}
}

// DVs returns the slot's four determinant values.
func (p *PartyPokemon) DVs() pokedex.DVs {
	raw := p.raw()
	return pokedex.ParseDVs(raw[partyOffDVs], raw[partyOffDVs+1])
}

// MaxHP, Attack, Defense, Speed, and Special are this slot's derived battle
// stats, computed by the game from base stats, DVs, EVs, and level.
func (p *PartyPokemon) MaxHP() uint16   { return p.u16At(p.raw(), partyOffDerived) }
func (p *PartyPokemon) Attack() uint16  { return p.u16At(p.raw(), partyOffDerived+2) }
func (p *PartyPokemon) Defense() uint16 { return p.u16At(p.raw(), partyOffDerived+4) }
func (p *PartyPokemon) Speed() uint16   { return p.u16At(p.raw(), partyOffDerived+6) }
func (p *PartyPokemon) Special() uint16 { return p.u16At(p.raw(), partyOffDerived+8) }

// ToSnapshot projects this view to the wire PokemonSnapshot shape.
func (p *PartyPokemon) ToSnapshot() PokemonSnapshot {
	return snapshotFrom(p)
}

// SetLevel writes a new level back to WRAM. Bounds-checked: level must be
// in 1..=100.
func (p *PartyPokemon) SetLevel(level byte) error {
	if level < 1 || level > 100 {
		return &InvalidArgumentError{Field: "level", Value: int(level), Low: 1, High: 100}
	}
	record, _, _ := p.cat.Party.Slot(p.slot)
	res := record.Resolve(p.r.Variant())
	p.r.WriteByteAt(res.Start+partyOffLevel, level)
	return nil
}

// SetMove writes a move id into one of the four move slots (1-based
// moveSlot 1..4). Bounds-checked.
func (p *PartyPokemon) SetMove(moveSlot int, moveID byte) error {
	if moveSlot < 1 || moveSlot > 4 {
		return &InvalidArgumentError{Field: "moveSlot", Value: moveSlot, Low: 1, High: 4}
	}
	record, _, _ := p.cat.Party.Slot(p.slot)
	res := record.Resolve(p.r.Variant())
	p.r.WriteByteAt(res.Start+partyOffMoves+moveSlot-1, moveID)
	return nil
}

// SetPP writes a PP value into one of the four PP slots (1-based
// moveSlot 1..4). Bounds-checked on both the slot index and the PP value
// (0..=63, the field's storage width).
func (p *PartyPokemon) SetPP(moveSlot int, pp byte) error {
	if moveSlot < 1 || moveSlot > 4 {
		return &InvalidArgumentError{Field: "moveSlot", Value: moveSlot, Low: 1, High: 4}
	}
	if pp > 63 {
		return &InvalidArgumentError{Field: "pp", Value: int(pp), Low: 0, High: 63}
	}
	record, _, _ := p.cat.Party.Slot(p.slot)
	res := record.Resolve(p.r.Variant())
	p.r.WriteByteAt(res.Start+partyOffPP+moveSlot-1, pp)
	return nil
}
