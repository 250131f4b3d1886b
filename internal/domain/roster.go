package domain

import (
	"github.com/rs/zerolog"

	"github.com/ernesto/pkmbridge/internal/memmap"
)

// Roster is the player's full party, always six view slots regardless of
// how many are actually occupied; Count reports how many are live so a
// caller can trim the rest.
type Roster struct {
	Members [6]*PartyPokemon
	Count   byte
}

// ReadRoster builds views over every party slot and reads the live party
// count. Slots at or beyond Count hold stale or zeroed data in the game's
// own memory, exactly as they would appear in-game before being
// overwritten by a newly caught Pokémon.
func ReadRoster(r *memmap.Reader, cat memmap.Catalogue, log zerolog.Logger) Roster {
	var roster Roster
	roster.Count = r.U8(cat.Player.PartyCount)
	for i := 0; i < 6; i++ {
		p, err := NewPartyPokemon(r, cat, i, log)
		if err != nil {
			continue // unreachable: i is always in 0..5
		}
		roster.Members[i] = p
	}
	return roster
}

// Active returns the live members (index < Count) as a PokemonView slice,
// in slot order.
func (ro Roster) Active() []PokemonView {
	out := make([]PokemonView, 0, ro.Count)
	for i := 0; i < int(ro.Count) && i < 6; i++ {
		if ro.Members[i] != nil {
			out = append(out, ro.Members[i])
		}
	}
	return out
}
