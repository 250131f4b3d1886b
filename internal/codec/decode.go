package codec

import "fmt"

// Decode turns raw Gen I bytes into a Unicode string.
//
// For every byte: if stopAtTerminator and the byte is Terminator, decoding
// stops. If the byte has an entry in table, its grapheme is appended
// (possibly multiple characters, or none for the terminator itself when it
// isn't treated specially). Unknown bytes become a placeholder of the form
// "<?HH>" with HH the uppercase hex value, so a caller can spot gaps in the
// table instead of silently losing data.
//
// Deterministic, no allocation beyond the returned string. Round-tripping
// (encoding the string back to bytes) is not supported and not needed by
// any caller in this harness.
func Decode(data []byte, table CharTable, stopAtTerminator bool) string {
	out := make([]byte, 0, len(data))
	for _, b := range data {
		if stopAtTerminator && b == Terminator {
			break
		}
		if g, ok := table[b]; ok {
			out = append(out, g...)
			continue
		}
		out = append(out, fmt.Sprintf("<?%02X>", b)...)
	}
	return string(out)
}

// DecodeGen1 decodes using the canonical Red/Blue/Yellow table, stopping at
// the terminator. This is the entry point every domain view uses.
func DecodeGen1(data []byte) string {
	return Decode(data, Gen1Table, true)
}
