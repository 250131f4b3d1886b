// Package codec decodes the Generation I Pokémon character encoding.
//
// The cartridge does not store text as ASCII: every byte above 0x80 maps to
// a letter, digit, or control glyph through a fixed table, and strings are
// terminated by a sentinel byte (0x50) rather than a NUL. This package owns
// that mapping and nothing else - it has no notion of where in memory a
// string lives, that is internal/memmap's job.
package codec

// Terminator is the sentinel byte (0x50) that ends a Gen I string. Decoding
// halts here when stopAtTerminator is requested.
const Terminator byte = 0x50

// CharTable maps a single Gen I byte to the grapheme(s) it represents.
// Control codes and ligatures ("<pkmn>", "<player>", male/female symbols,
// the mid-dot ellipsis) occupy multi-character entries; plain letters and
// digits are single runes.
type CharTable map[byte]string

// ByteFor is the inverse lookup; nothing in decoding calls it, and no test
// in this package exercises it. Gen I text decoding is one-way: the spec does not
// require (and this package does not provide) a public encode path.
func (t CharTable) ByteFor(grapheme string) (byte, bool) {
	for b, g := range t {
		if g == grapheme {
			return b, true
		}
	}
	return 0, false
}

// Gen1Table is the canonical Red/Blue/Yellow character table. Only the
// entries needed by this harness are populated: letters, digits, the space,
// the terminator, and the handful of control glyphs that show up in move
// names, status text, and trainer/Pokémon names.
var Gen1Table = buildGen1Table()

func buildGen1Table() CharTable {
	t := make(CharTable, 128)

	t[Terminator] = "" // 0x50: end of string
	t[0x7F] = " "       // space

	// 'A'..'Z' at 0x80..0x99
	for i := 0; i < 26; i++ {
		t[0x80+byte(i)] = string(rune('A' + i))
	}
	// 'a'..'z' at 0xA0..0xB9
	for i := 0; i < 26; i++ {
		t[0xA0+byte(i)] = string(rune('a' + i))
	}
	// '0'..'9' at 0xF6..0xFF
	for i := 0; i < 10; i++ {
		t[0xF6+byte(i)] = string(rune('0' + i))
	}

	// Punctuation and control glyphs seen in battle/menu text.
	t[0xE1] = "PK"
	t[0xE2] = "MN"
	t[0xE3] = "-"
	t[0xE4] = "'r"
	t[0xE5] = "'m"
	t[0xE6] = "?"
	t[0xE7] = "!"
	t[0xE8] = "."
	t[0xE9] = "<pkmn>"
	t[0xEE] = "'"
	t[0xEF] = "<player>"
	t[0xF1] = "♂"
	t[0xF2] = "$"
	t[0xF3] = "×"
	t[0xF4] = "."
	t[0xF5] = "/"
	t[0xAC] = "♀"

	return t
}
