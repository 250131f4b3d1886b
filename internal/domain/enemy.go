package domain

import (
	"github.com/rs/zerolog"

	"github.com/ernesto/pkmbridge/internal/memmap"
	"github.com/ernesto/pkmbridge/internal/pokedex"
)

// EnemyPokemon is a live view over the current opponent's scattered
// battle-record fields (they are not one contiguous struct the way a party
// slot is).
type EnemyPokemon struct {
	r   *memmap.Reader
	cat memmap.Catalogue
	log zerolog.Logger
}

// NewEnemyPokemon returns a view over the active battle's opponent.
func NewEnemyPokemon(r *memmap.Reader, cat memmap.Catalogue, log zerolog.Logger) *EnemyPokemon {
	return &EnemyPokemon{r: r, cat: cat, log: log}
}

func (e *EnemyPokemon) Refresh() {}

func (e *EnemyPokemon) RawSpeciesID() byte { return e.r.U8(e.cat.Enemy.ID) }

func (e *EnemyPokemon) SpeciesID() int {
	return pokedex.RomIDToPokedexID[e.RawSpeciesID()]
}

func (e *EnemyPokemon) Name() string {
	if name, ok := pokedex.PokedexIDToName[e.SpeciesID()]; ok {
		return name.EN
	}
	return "Unknown"
}

func (e *EnemyPokemon) Level() uint8 { return e.r.U8(e.cat.Enemy.Level) }

func (e *EnemyPokemon) CurrentHP() uint16 { return e.r.U16HiLo(e.cat.Enemy.HP) }
func (e *EnemyPokemon) MaxHP() uint16     { return e.r.U16HiLo(e.cat.Enemy.MaxHP) }
func (e *EnemyPokemon) Attack() uint16    { return e.r.U16HiLo(e.cat.Enemy.Attack) }
func (e *EnemyPokemon) Defense() uint16   { return e.r.U16HiLo(e.cat.Enemy.Defense) }
func (e *EnemyPokemon) Speed() uint16     { return e.r.U16HiLo(e.cat.Enemy.Speed) }
func (e *EnemyPokemon) Special() uint16   { return e.r.U16HiLo(e.cat.Enemy.Special) }

func (e *EnemyPokemon) Status() []string {
	labels := pokedex.StatusLabels(e.r.U8(e.cat.Enemy.Status))
	if len(labels) == 0 {
		return []string{"Healthy"}
	}
	return labels
}

func (e *EnemyPokemon) Types() [2]string {
	return [2]string{pokedex.TypeName(e.r.U8(e.cat.Enemy.Type1)), pokedex.TypeName(e.r.U8(e.cat.Enemy.Type2))}
}

func (e *EnemyPokemon) DVs() pokedex.DVs {
	return pokedex.ParseDVs(e.r.U8(e.cat.Enemy.IVsAtkDef), e.r.U8(e.cat.Enemy.IVsSpdSpc))
}

func (e *EnemyPokemon) CatchRate() byte { return e.r.U8(e.cat.Enemy.CatchRate) }

// Moves resolves the enemy's four move ids and their live PP into
// display-ready MoveSlots. Empty slots (move id 0) are omitted; a move id
// that fails to resolve becomes an "NA" sentinel slot in its original
// position rather than being dropped.
func (e *EnemyPokemon) Moves() []MoveSlot {
	ids := e.r.U8List(e.cat.Enemy.Moves)
	pps := e.r.U8List(e.cat.Enemy.PPs)
	out := make([]MoveSlot, 0, 4)
	for i, id := range ids {
		if id == 0 {
			continue
		}
		var pp byte
		if i < len(pps) {
			pp = pps[i]
		}
		m, err := LoadMove(e.r, id)
		if err != nil {
			e.log.Warn().Err(err).Int("slot", i).Msg("enemy move did not resolve, using NA sentinel")
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

func (e *EnemyPokemon) ToSnapshot() PokemonSnapshot {
	return snapshotFrom(e)
}
