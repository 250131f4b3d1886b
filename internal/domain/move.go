package domain

import (
	"fmt"

	"github.com/ernesto/pkmbridge/internal/memmap"
	"github.com/ernesto/pkmbridge/internal/pokedex"
)

// moveRecordBank is the ROM bank holding the 6-byte move-data table at
// 0x4000; moveNameBank holds the concatenated, sentinel-terminated move
// names read via memmap.Reader.ReadMoveName.
const (
	moveRecordBank   = 0x0E
	moveNameBank     = 0x2C
	moveRecordSize   = 6
	moveRecordTable  = 0x4000
	maxMoveID        = 0x56
)

// Move is the decoded {id, effect_code, power, type, accuracy_q8, pp}
// record for one move, plus its resolved display name.
type Move struct {
	ID         byte
	EffectCode byte
	Power      byte
	TypeCode   byte
	AccuracyQ8 byte
	PP         byte
	Name       string
}

// Effect resolves this move's effect code to its description.
func (m Move) Effect() string {
	return pokedex.EffectDescription(m.EffectCode)
}

// Type resolves this move's type code to its display name.
func (m Move) Type() string {
	return pokedex.TypeName(m.TypeCode)
}

// Accuracy converts the stored 0-255 accuracy byte to a 0-100 percentage.
func (m Move) Accuracy() float32 {
	return float32(m.AccuracyQ8) / 255 * 100
}

// naMoveSlot is the sentinel every Moves() implementation appends in place
// of a slot whose move id didn't resolve to a ROM record or name, keeping
// the output slice positionally aligned with the id/PP arrays it was
// decoded from rather than shrinking it.
func naMoveSlot(pp byte) MoveSlot {
	return MoveSlot{Name: "NA", Effect: pokedex.UnknownEffect, Type: pokedex.UnknownType, PP: pp}
}

// LoadMove reads move moveID's record and name from ROM, always selecting
// both banks itself (see DESIGN.md's resolved Open Question on this). Each
// switch-then-read runs under the bank lock via WithBank: the record read
// and the name read are two separate locked sections, and the lock is
// released between them.
//
// moveID 0 is the empty-slot sentinel and returns a zero-value Move with
// Name "NA" rather than an error, matching how the reference implementation
// treats it. No production caller actually reaches this: Moves() on every
// PokemonView pre-filters id 0 before calling LoadMove, so this only guards
// direct callers.
//
// A nonzero, in-range moveID whose name can't be resolved from the name
// bank (memmap.Reader.ReadMoveName failing, e.g. ErrNameNotFound) still
// returns its successfully-decoded numeric fields with Name forced to "NA",
// alongside the wrapped error — callers that only need a displayable slot
// can use the returned Move as-is; callers that want to log the failure
// still have the error to do it with.
func LoadMove(r *memmap.Reader, moveID byte) (Move, error) {
	if moveID == 0 {
		return Move{Name: "NA"}, nil
	}
	if moveID > maxMoveID {
		return Move{Name: "NA"}, fmt.Errorf("domain: move id %#02x out of range [0x00,%#02x]", moveID, maxMoveID)
	}

	var rec Move
	var nameErr error
	r.WithBank(moveRecordBank, func() {
		start := moveRecordTable + int(moveID-1)*moveRecordSize
		raw := r.U8List(memmap.NewRegion("moverec", start, start+moveRecordSize-1, ""))
		rec = Move{
			ID:         raw[0],
			EffectCode: raw[1],
			Power:      raw[2],
			TypeCode:   raw[3],
			AccuracyQ8: raw[4],
			PP:         raw[5],
		}
	})
	r.WithBank(moveNameBank, func() {
		name, err := r.ReadMoveName(int(moveID))
		if err != nil {
			nameErr = err
			return
		}
		rec.Name = name
	})
	if nameErr != nil {
		rec.Name = "NA"
		return rec, fmt.Errorf("domain: resolving name for move %#02x: %w", moveID, nameErr)
	}
	return rec, nil
}
