package domain

import "github.com/ernesto/pkmbridge/internal/memmap"

// StatStages holds both sides' stat-stage modifiers (Attack/Defense/Speed/
// Special/Accuracy/Evasion), each centered on 7 = "no modifier" the way the
// game stores them. Not part of the core spec's PokemonView shape, but
// useful to any battle-aware caller that wants to know whether a boost or
// drop is currently in effect.
type StatStages struct {
	PlayerAtk, PlayerDef, PlayerSpd, PlayerSpc, PlayerAcc, PlayerEva byte
	EnemyAtk, EnemyDef, EnemySpd, EnemySpc, EnemyAcc, EnemyEva       byte
}

// ReadStatStages re-reads every stat-stage byte from memory.
func ReadStatStages(r *memmap.Reader, cat memmap.Catalogue) StatStages {
	b := cat.Battle
	return StatStages{
		PlayerAtk: r.U8(b.PlayerAtkMod), PlayerDef: r.U8(b.PlayerDefMod),
		PlayerSpd: r.U8(b.PlayerSpdMod), PlayerSpc: r.U8(b.PlayerSpcMod),
		PlayerAcc: r.U8(b.PlayerAccMod), PlayerEva: r.U8(b.PlayerEvaMod),
		EnemyAtk: r.U8(b.EnemyAtkMod), EnemyDef: r.U8(b.EnemyDefMod),
		EnemySpd: r.U8(b.EnemySpdMod), EnemySpc: r.U8(b.EnemySpcMod),
		EnemyAcc: r.U8(b.EnemyAccMod), EnemyEva: r.U8(b.EnemyEvaMod),
	}
}

// BattleContext carries the battle-level fields that aren't attached to any
// one Pokémon: the sub-type (normal/Safari Zone/Old Man) and whether
// gym-leader music is currently playing, both of which a control-plane
// consumer may want alongside the per-Pokémon snapshot.
type BattleContext struct {
	TurnCounter    byte
	BattleTypeID   byte
	SubType        byte
	GymLeaderMusic bool
}

// ReadBattleContext re-reads the battle-level bookkeeping fields.
func ReadBattleContext(r *memmap.Reader, cat memmap.Catalogue) BattleContext {
	b := cat.Battle
	return BattleContext{
		TurnCounter:    r.U8(b.TurnCounter),
		BattleTypeID:   r.U8(b.BattleTypeID),
		SubType:        r.U8(b.SubType),
		GymLeaderMusic: r.U8(b.GymLeaderMusic) != 0,
	}
}
