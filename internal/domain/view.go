package domain

// MoveSlot is one of a Pokémon's up to four known moves, resolved to a
// display-ready name/effect/type rather than raw ROM bytes.
type MoveSlot struct {
	Name     string
	Effect   string
	Power    int16
	Type     string
	Accuracy float32 // 0-100
	PP       uint8
	MaxPP    uint8
}

// PokemonSnapshot is the JSON-serialisable projection of a PokemonView,
// matching the wire schema's PokemonView object.
type PokemonSnapshot struct {
	Dex    int        `json:"dex"`
	Name   string     `json:"name"`
	Level  uint8      `json:"level"`
	HP     [2]uint16  `json:"hp"` // [current, max]
	Types  [2]string  `json:"types"`
	Status []string   `json:"status"`
	Moves  []MoveView `json:"moves"`
}

// MoveView is a MoveSlot shaped for the wire.
type MoveView struct {
	Name     string  `json:"name"`
	Effect   string  `json:"effect"`
	Power    int16   `json:"power"`
	Type     string  `json:"type"`
	Accuracy float32 `json:"accuracy"`
	PP       [2]uint8 `json:"pp"` // [remaining, max]
}

// PokemonView is the capability interface every Pokémon lens (party member,
// the player's active Pokémon, the enemy) implements. It stands in for the
// source's Pokemon/PlayerPokemonBattle/EnemyPokemon class hierarchy with a
// single shape instead of inheritance.
type PokemonView interface {
	SpeciesID() int
	Name() string
	Level() uint8
	CurrentHP() uint16
	MaxHP() uint16
	Status() []string
	Types() [2]string
	Moves() []MoveSlot
	ToSnapshot() PokemonSnapshot
}

// snapshotFrom builds a PokemonSnapshot from any PokemonView; every
// concrete view's ToSnapshot delegates here so the wire shape stays in one
// place.
func snapshotFrom(v PokemonView) PokemonSnapshot {
	moves := make([]MoveView, 0, len(v.Moves()))
	for _, m := range v.Moves() {
		moves = append(moves, MoveView{
			Name:     m.Name,
			Effect:   m.Effect,
			Power:    m.Power,
			Type:     m.Type,
			Accuracy: m.Accuracy,
			PP:       [2]uint8{m.PP, m.MaxPP},
		})
	}
	return PokemonSnapshot{
		Dex:    v.SpeciesID(),
		Name:   v.Name(),
		Level:  v.Level(),
		HP:     [2]uint16{v.CurrentHP(), v.MaxHP()},
		Types:  v.Types(),
		Status: v.Status(),
		Moves:  moves,
	}
}
