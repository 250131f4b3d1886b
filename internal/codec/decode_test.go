package codec

import "testing"

// TestDecodeBasicLetters checks that plain upper-case runs decode directly
// and stop at the terminator byte.
func TestDecodeBasicLetters(t *testing.T) {
	got := DecodeGen1([]byte{0x91, 0x84, 0x83, Terminator})
	want := "RED"
	if got != want {
		t.Fatalf("DecodeGen1() = %q, want %q", got, want)
	}
}

// TestDecodeUnknownByte verifies that a byte absent from the table becomes
// a hex placeholder rather than being dropped or panicking.
func TestDecodeUnknownByte(t *testing.T) {
	got := Decode([]byte{0x00}, Gen1Table, false)
	want := "<?00>"
	if got != want {
		t.Fatalf("Decode() = %q, want %q", got, want)
	}
}

// TestDecodeTerminatorEquivalence checks that any byte slice containing the
// terminator decodes identically to the slice truncated at the first
// terminator.
func TestDecodeTerminatorEquivalence(t *testing.T) {
	full := []byte{0x91, 0x84, 0x83, Terminator, 0x80, 0x80, 0x80}
	truncated := full[:3]

	if got, want := DecodeGen1(full), DecodeGen1(truncated); got != want {
		t.Fatalf("DecodeGen1(full) = %q, DecodeGen1(truncated) = %q, want equal", got, want)
	}
}

// TestDecodeWithoutTerminator confirms stopAtTerminator=false reads through
// the sentinel byte instead of halting on it.
func TestDecodeWithoutTerminator(t *testing.T) {
	data := []byte{0x91, Terminator, 0x84}
	got := Decode(data, Gen1Table, false)
	want := "RE"
	if got != want {
		t.Fatalf("Decode() = %q, want %q", got, want)
	}
}
