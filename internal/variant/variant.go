// Package variant identifies which Gen I cartridge is loaded and how its
// memory layout differs from the reference Red/Blue map.
package variant

import "fmt"

// RomVariant tags which cartridge revision is active. Yellow shifts a large
// swath of WRAM by one byte relative to Red/Blue above a fixed address; every
// other component treats the three variants identically once relocation has
// been applied.
type RomVariant int

const (
	Red RomVariant = iota
	Blue
	Yellow
)

// yellowShiftThreshold is the first raw (Red/Blue) address at or above which
// Yellow's WRAM layout is shifted down by one byte relative to Red/Blue.
const yellowShiftThreshold = 0xCF1A

// String renders the variant name for logging.
func (v RomVariant) String() string {
	switch v {
	case Red:
		return "Red"
	case Blue:
		return "Blue"
	case Yellow:
		return "Yellow"
	default:
		return fmt.Sprintf("RomVariant(%d)", int(v))
	}
}

// RomEnvName returns the environment variable suffix used to locate this
// variant's ROM image, e.g. PKM_ROM_RED_NAME.
func (v RomVariant) RomEnvName() string {
	switch v {
	case Red:
		return "PKM_ROM_RED_NAME"
	case Blue:
		return "PKM_ROM_BLUE_NAME"
	case Yellow:
		return "PKM_ROM_YELLOW_NAME"
	default:
		return ""
	}
}

// ParseVariant maps a case-insensitive config value ("red", "r", "blue",
// "b", "yellow", "y") to a RomVariant. Unknown values are a ConfigError,
// fatal at startup per spec §7.
func ParseVariant(choice string) (RomVariant, error) {
	switch normalize(choice) {
	case "r", "red":
		return Red, nil
	case "b", "blue":
		return Blue, nil
	case "y", "yellow":
		return Yellow, nil
	default:
		return 0, fmt.Errorf("%w: unknown ROM variant %q", ErrUnknownVariant, choice)
	}
}

func normalize(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c == ' ' || c == '\t' || c == '\n' {
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

// Relocate applies this variant's address-shift policy to a raw [start,end)
// range expressed in Red/Blue coordinates, returning the shifted range.
//
// Red and Blue never shift. Yellow subtracts 1 from each endpoint
// independently once that endpoint is >= yellowShiftThreshold, so a region
// whose start is below the threshold and whose end is at or above it shifts
// only its end. Relocate is a pure function of its raw (Red/Blue) inputs and
// is called on every read, from internal/memmap.Region.Resolve, on the raw
// addresses the Catalogue stores; it has no notion of "already relocated"
// and must not be applied to its own output.
func (v RomVariant) Relocate(start, end int) (int, int) {
	if v != Yellow {
		return start, end
	}
	if start >= yellowShiftThreshold {
		start--
	}
	if end >= yellowShiftThreshold {
		end--
	}
	return start, end
}
