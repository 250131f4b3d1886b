package domain

import (
	"github.com/rs/zerolog"

	"github.com/ernesto/pkmbridge/internal/memmap"
	"github.com/ernesto/pkmbridge/internal/pokedex"
)

// ActivePokemon is a live view over the player's currently-out Pokémon's
// in-battle record, which mirrors its party slot but lives at its own
// scattered addresses (the game keeps both in sync during battle).
type ActivePokemon struct {
	r   *memmap.Reader
	cat memmap.Catalogue
	log zerolog.Logger
}

// NewActivePokemon returns a view over the player's active battler.
func NewActivePokemon(r *memmap.Reader, cat memmap.Catalogue, log zerolog.Logger) *ActivePokemon {
	return &ActivePokemon{r: r, cat: cat, log: log}
}

func (a *ActivePokemon) Refresh() {}

func (a *ActivePokemon) RawSpeciesID() byte { return a.r.U8(a.cat.Active.Number) }

func (a *ActivePokemon) SpeciesID() int {
	return pokedex.RomIDToPokedexID[a.RawSpeciesID()]
}

func (a *ActivePokemon) Name() string {
	return a.r.String(a.cat.Active.Name)
}

func (a *ActivePokemon) Level() uint8     { return a.r.U8(a.cat.Active.Level) }
func (a *ActivePokemon) CurrentHP() uint16 { return a.r.U16HiLo(a.cat.Active.HP) }
func (a *ActivePokemon) MaxHP() uint16     { return a.r.U16HiLo(a.cat.Active.MaxHP) }
func (a *ActivePokemon) Attack() uint16    { return a.r.U16HiLo(a.cat.Active.Attack) }
func (a *ActivePokemon) Defense() uint16   { return a.r.U16HiLo(a.cat.Active.Defense) }
func (a *ActivePokemon) Speed() uint16     { return a.r.U16HiLo(a.cat.Active.Speed) }
func (a *ActivePokemon) Special() uint16   { return a.r.U16HiLo(a.cat.Active.Special) }

func (a *ActivePokemon) Status() []string {
	labels := pokedex.StatusLabels(a.r.U8(a.cat.Active.Status))
	if len(labels) == 0 {
		return []string{"Healthy"}
	}
	return labels
}

func (a *ActivePokemon) Types() [2]string {
	return [2]string{pokedex.TypeName(a.r.U8(a.cat.Active.Type1)), pokedex.TypeName(a.r.U8(a.cat.Active.Type2))}
}

func (a *ActivePokemon) DVs() pokedex.DVs {
	raw := a.r.U8List(a.cat.Active.DVs)
	return pokedex.ParseDVs(raw[0], raw[1])
}

func (a *ActivePokemon) Moves() []MoveSlot {
	ids := a.r.U8List(a.cat.Active.Moves)
	pps := a.r.U8List(a.cat.Active.PPs)
	out := make([]MoveSlot, 0, 4)
	for i, id := range ids {
		if id == 0 {
			continue
		}
		var pp byte
		if i < len(pps) {
			pp = pps[i]
		}
		m, err := LoadMove(a.r, id)
		if err != nil {
			a.log.Warn().Err(err).Int("slot", i).Msg("active move did not resolve, using NA sentinel")
			out = append(out, naMoveSlot(pp))
			continue
		}
		out = append(out, MoveSlot{
			Name: m.Name, Effect: m.Effect(), Power: int16(m.Power),
			Type: m.Type(), Accuracy: m.Accuracy(), PP: pp, MaxPP: m.PP,
		})
	}
	return out
}

func (a *ActivePokemon) ToSnapshot() PokemonSnapshot {
	return snapshotFrom(a)
}
