package pokedex

import "fmt"

// TypeNames maps a Gen I type byte to its display name. Several codes are
// unused glitch slots in the real cartridge (6, 9) but are kept so a raw
// dump of garbage type data still prints something instead of panicking a
// map lookup.
var TypeNames = map[byte]string{
	0:  "Normal",
	1:  "Fighting",
	2:  "Flying",
	3:  "Poison",
	4:  "Ground",
	5:  "Rock",
	6:  "Bird",
	7:  "Bug",
	8:  "Ghost",
	9:  "Steel",
	20: "Fire",
	21: "Water",
	22: "Grass",
	23: "Electric",
	24: "Psychic",
	25: "Ice",
	26: "Dragon",
}

// UnknownType is returned by TypeName for a byte absent from TypeNames.
const UnknownType = "Unknown"

// TypeName resolves a type byte to its display name, or UnknownType.
func TypeName(t byte) string {
	if n, ok := TypeNames[t]; ok {
		return n
	}
	return UnknownType
}

// StatusBitMasks maps each bit of a Gen I status byte to its label. Bits 0-2
// together form a 3-bit sleep counter rather than three independent flags;
// StatusLabels below canonicalizes that instead of reporting "Sleep counter
// 1/2/3" separately.
var StatusBitMasks = map[byte]string{
	0b00001000: "Poisoned",
	0b00010000: "Burned",
	0b00100000: "Frozen",
	0b01000000: "Paralyzed",
}

const sleepCounterMask = 0b00000111

// StatusLabels decodes a Gen I status byte into its active condition
// labels. A nonzero sleep counter (bits 0-2) counts down from 7 to 1 as the
// remaining turns of sleep rather than up, so it's reported as
// "Sleep (remaining/7)" - e.g. a stored counter of 3 means 4 turns left and
// is rendered "Sleep (4/7)" - instead of exposing the raw stored value.
func StatusLabels(b byte) []string {
	var out []string
	if counter := b & sleepCounterMask; counter != 0 {
		out = append(out, sleepLabel(counter))
	}
	for mask, label := range StatusBitMasks {
		if b&mask != 0 {
			out = append(out, label)
		}
	}
	return out
}

func sleepLabel(counter byte) string {
	remaining := 7 - int(counter)
	return fmt.Sprintf("Sleep (%d/7)", remaining)
}

// DVs is a Pokémon's four determinant values, packed two-per-byte in
// memory as (attack<<4|defense), (speed<<4|special).
type DVs struct {
	Attack  byte
	Defense byte
	Speed   byte
	Special byte
}

// ParseDVs unpacks the two nibble-pair bytes read from a party or active
// record into their four constituent DVs.
func ParseDVs(atkDefByte, spdSpcByte byte) DVs {
	return DVs{
		Attack:  (atkDefByte >> 4) & 0xF,
		Defense: atkDefByte & 0xF,
		Speed:   (spdSpcByte >> 4) & 0xF,
		Special: spdSpcByte & 0xF,
	}
}
