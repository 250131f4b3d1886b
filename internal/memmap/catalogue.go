package memmap

// reg is a small constructor helper; end is inclusive, matching how the
// reference RAM map documents address spans.
func reg(name string, start, end int, desc string) Region {
	return Region{Name: name, Description: desc, start: start, end: end}
}

// Catalogue is the full set of named regions this harness knows about, by
// subsystem. Only a fraction are read by internal/domain and internal/scene
// today; the rest document the layout for future operations and for anyone
// auditing a raw memory dump, mirroring how the reference RAM map catalogues
// far more than any one session actually touches.
type Catalogue struct {
	Audio  AudioRegions
	Menu   MenuRegions
	Battle BattleRegions
	Enemy  EnemyRegions
	Active ActiveRegions
	Player PlayerRegions
	Party  PartyRegions
	Dex    DexRegions
}

// NewCatalogue builds the one global Catalogue. Addresses are declared in
// Red/Blue coordinates; every Region is relocated per-read by Reader against
// the active RomVariant, so the same Catalogue instance is shared across all
// three cartridges.
func NewCatalogue() Catalogue {
	return Catalogue{
		Audio:  audioRegions(),
		Menu:   menuRegions(),
		Battle: battleRegions(),
		Enemy:  enemyRegions(),
		Active: activeRegions(),
		Player: playerRegions(),
		Party:  partyRegions(),
		Dex:    dexRegions(),
	}
}

// AudioRegions documents the sound-engine flags. Nothing in this harness
// reads them today; they're carried because the reference RAM map documents
// them and a future service (e.g. muting for headless runs) may want them.
type AudioRegions struct {
	MuteFlag        Region
	CurrentSoundBank Region
}

func audioRegions() AudioRegions {
	return AudioRegions{
		MuteFlag:         reg("AudioMuteFlag", 0xC002, 0xC002, "bit 7: 1 if audio is muted"),
		CurrentSoundBank: reg("CurrentSoundBank", 0xC0EF, 0xC0EF, "current sound bank"),
	}
}

// MenuRegions backs domain.MenuState: the cursor, selection, and per-screen
// memory fields a scene reads to disambiguate otherwise-identical menus.
type MenuRegions struct {
	CursorYPos      Region
	CursorXPos      Region
	SelectedItem    Region
	HiddenTile      Region
	LastItemID      Region
	KeyBitmask      Region
	PrevItemID      Region
	LastPartyPos    Region
	LastItemPos     Region
	LastBattlePos   Region
	CurrentPartyIdx Region
	CursorTilePtr   Region
	FirstItemID     Region
	SelectHighlight Region
}

func menuRegions() MenuRegions {
	return MenuRegions{
		CursorYPos:      reg("MenuCursorYPos", 0xCC24, 0xCC24, "y position of the cursor for the top menu item"),
		CursorXPos:      reg("MenuCursorXPos", 0xCC25, 0xCC25, "x position of the cursor for the top menu item"),
		SelectedItem:    reg("MenuSelectedItem", 0xCC26, 0xCC26, "currently selected menu item, topmost is 0"),
		HiddenTile:      reg("MenuHiddenTile", 0xCC27, 0xCC27, "tile hidden by the menu cursor"),
		LastItemID:      reg("MenuLastItemID", 0xCC28, 0xCC28, "id of the last menu item"),
		KeyBitmask:      reg("MenuKeyBitmask", 0xCC29, 0xCC29, "bitmask applied to the key port for the current menu"),
		PrevItemID:      reg("MenuPrevItemID", 0xCC2A, 0xCC2A, "id of the previously selected menu item"),
		LastPartyPos:    reg("MenuLastPartyPos", 0xCC2B, 0xCC2B, "last cursor position on the party screen"),
		LastItemPos:     reg("MenuLastItemPos", 0xCC2C, 0xCC2C, "last cursor position on the item screen"),
		LastBattlePos:   reg("MenuLastBattlePos", 0xCC2D, 0xCC2D, "last cursor position on the battle menu"),
		CurrentPartyIdx: reg("MenuCurrentPartyIndex", 0xCC2F, 0xCC2F, "index in party of the Pokémon currently sent out"),
		CursorTilePtr:   reg("MenuCursorTilePtr", 0xCC30, 0xCC31, "pointer to cursor tile in the tile buffer"),
		FirstItemID:     reg("MenuFirstItemID", 0xCC36, 0xCC36, "id of the first displayed menu item"),
		SelectHighlight: reg("MenuSelectHighlight", 0xCC35, 0xCC35, "item highlighted with Select, 0 means none"),
	}
}

// BattleRegions covers in-battle bookkeeping not tied to a single Pokémon:
// turn counters, the battle sub-type, and stat-stage modifiers.
type BattleRegions struct {
	TurnCounter      Region
	BattleTypeID     Region
	SubType          Region
	GymLeaderMusic   Region
	PlayerAtkMod     Region
	PlayerDefMod     Region
	PlayerSpdMod     Region
	PlayerSpcMod     Region
	PlayerAccMod     Region
	PlayerEvaMod     Region
	EnemyAtkMod      Region
	EnemyDefMod      Region
	EnemySpdMod      Region
	EnemySpcMod      Region
	EnemyAccMod      Region
	EnemyEvaMod      Region
	PlayerMoveUsed   Region
	EnemyMoveUsed    Region
}

func battleRegions() BattleRegions {
	return BattleRegions{
		TurnCounter:    reg("BattleTurnCounter", 0xCCD5, 0xCCD5, "number of turns in the current battle"),
		BattleTypeID:   reg("BattleTypeID", 0xD057, 0xD057, "type of battle"),
		SubType:        reg("BattleSubType", 0xD05A, 0xD05A, "battle sub-type: normal, Safari Zone, Old Man, etc."),
		GymLeaderMusic: reg("GymLeaderMusicFlag", 0xD05C, 0xD05C, "is gym-leader battle music playing"),
		PlayerAtkMod:   reg("PlayerAtkModifier", 0xCD1A, 0xCD1A, "player's Attack stage, 7 = no modifier"),
		PlayerDefMod:   reg("PlayerDefModifier", 0xCD1B, 0xCD1B, "player's Defense stage"),
		PlayerSpdMod:   reg("PlayerSpdModifier", 0xCD1C, 0xCD1C, "player's Speed stage"),
		PlayerSpcMod:   reg("PlayerSpcModifier", 0xCD1D, 0xCD1D, "player's Special stage"),
		PlayerAccMod:   reg("PlayerAccModifier", 0xCD1E, 0xCD1E, "player's Accuracy stage"),
		PlayerEvaMod:   reg("PlayerEvaModifier", 0xCD1F, 0xCD1F, "player's Evasion stage"),
		EnemyAtkMod:    reg("EnemyAtkModifier", 0xCD2E, 0xCD2E, "enemy's Attack stage"),
		EnemyDefMod:    reg("EnemyDefModifier", 0xCD2F, 0xCD2F, "enemy's Defense stage"),
		EnemySpdMod:    reg("EnemySpdModifier", 0xCD30, 0xCD30, "enemy's Speed stage"),
		EnemySpcMod:    reg("EnemySpcModifier", 0xCD31, 0xCD31, "enemy's Special stage"),
		EnemyAccMod:    reg("EnemyAccModifier", 0xCD32, 0xCD32, "enemy's Accuracy stage"),
		EnemyEvaMod:    reg("EnemyEvaModifier", 0xCD33, 0xCD33, "enemy's Evasion stage"),
		PlayerMoveUsed: reg("PlayerMoveUsed", 0xCCDC, 0xCCDC, "player-selected move id"),
		EnemyMoveUsed:  reg("EnemyMoveUsed", 0xCCDD, 0xCCDD, "enemy-selected move id"),
	}
}

// EnemyRegions backs domain.EnemyPokemon. Fields are scattered rather than
// forming one contiguous record, matching the reference RAM map.
type EnemyRegions struct {
	ID         Region
	Name       Region
	HP         Region
	Level      Region
	Status     Region
	Type1      Region
	Type2      Region
	Moves      Region
	IVsAtkDef  Region
	IVsSpdSpc  Region
	MaxHP      Region
	Attack     Region
	Defense    Region
	Speed      Region
	Special    Region
	PPs        Region
	CatchRate  Region
}

func enemyRegions() EnemyRegions {
	return EnemyRegions{
		ID:        reg("EnemyPokemonID", 0xCFD8, 0xCFD8, "enemy's internal species id"),
		Name:      reg("EnemyName", 0xCFDA, 0xCFE4, "enemy's name"),
		HP:        reg("EnemyHP", 0xCFE6, 0xCFE7, "enemy's current HP"),
		Level:     reg("EnemyLevel", 0xCFE8, 0xCFE8, "enemy's level"),
		Status:    reg("EnemyStatus", 0xCFE9, 0xCFE9, "enemy's status bitfield"),
		Type1:     reg("EnemyType1", 0xCFEA, 0xCFEA, "enemy's primary type"),
		Type2:     reg("EnemyType2", 0xCFEB, 0xCFEB, "enemy's secondary type"),
		Moves:     reg("EnemyMoves", 0xCFED, 0xCFF0, "enemy's four move ids"),
		IVsAtkDef: reg("EnemyIVsAtkDef", 0xCFF1, 0xCFF1, "enemy's Attack/Defense DVs packed nibble pair"),
		IVsSpdSpc: reg("EnemyIVsSpdSpc", 0xCFF2, 0xCFF2, "enemy's Speed/Special DVs packed nibble pair"),
		MaxHP:     reg("EnemyMaxHP", 0xCFF4, 0xCFF5, "enemy's max HP"),
		Attack:    reg("EnemyAttack", 0xCFF6, 0xCFF7, "enemy's Attack stat"),
		Defense:   reg("EnemyDefense", 0xCFF8, 0xCFF9, "enemy's Defense stat"),
		Speed:     reg("EnemySpeed", 0xCFFA, 0xCFFB, "enemy's Speed stat"),
		Special:   reg("EnemySpecial", 0xCFFC, 0xCFFD, "enemy's Special stat"),
		PPs:       reg("EnemyPPs", 0xCFFE, 0xD001, "enemy's four PP slots"),
		CatchRate: reg("EnemyCatchRate", 0xD007, 0xD007, "enemy's catch rate"),
	}
}

// ActiveRegions backs domain.ActivePokemon: the player's currently-out
// Pokémon, mirrored into a 48-byte in-battle block distinct from its party
// slot record.
type ActiveRegions struct {
	Name    Region
	Number  Region
	HP      Region
	Status  Region
	Type1   Region
	Type2   Region
	Moves   Region
	DVs     Region
	Level   Region
	MaxHP   Region
	Attack  Region
	Defense Region
	Speed   Region
	Special Region
	PPs     Region
}

func activeRegions() ActiveRegions {
	return ActiveRegions{
		Name:    reg("PlayerPokemonName", 0xD009, 0xD013, "player's active Pokémon name"),
		Number:  reg("PlayerPokemonNumber", 0xD014, 0xD014, "player's active Pokémon internal species id"),
		HP:      reg("PlayerCurrentHP", 0xD015, 0xD016, "player's active Pokémon current HP"),
		Status:  reg("PlayerStatus", 0xD018, 0xD018, "player's active Pokémon status bitfield"),
		Type1:   reg("PlayerType1", 0xD019, 0xD019, "player's active Pokémon primary type"),
		Type2:   reg("PlayerType2", 0xD01A, 0xD01A, "player's active Pokémon secondary type"),
		Moves:   reg("PlayerMoves", 0xD01C, 0xD01F, "player's active Pokémon four move ids"),
		DVs:     reg("PlayerDVs", 0xD020, 0xD021, "player's active Pokémon DV nibble pairs"),
		Level:   reg("PlayerLevel", 0xD022, 0xD022, "player's active Pokémon level"),
		MaxHP:   reg("PlayerMaxHP", 0xD023, 0xD024, "player's active Pokémon max HP"),
		Attack:  reg("PlayerAttack", 0xD025, 0xD026, "player's active Pokémon Attack stat"),
		Defense: reg("PlayerDefense", 0xD027, 0xD028, "player's active Pokémon Defense stat"),
		Speed:   reg("PlayerSpeed", 0xD029, 0xD02A, "player's active Pokémon Speed stat"),
		Special: reg("PlayerSpecial", 0xD02B, 0xD02C, "player's active Pokémon Special stat"),
		PPs:     reg("PlayerPPs", 0xD02D, 0xD030, "player's active Pokémon four PP slots"),
	}
}

// PlayerRegions covers the trainer-level fields: name and party roster.
type PlayerRegions struct {
	Name       Region
	PartyCount Region
	PartyIDs   Region
}

func playerRegions() PlayerRegions {
	return PlayerRegions{
		Name:       reg("PlayerName", 0xD158, 0xD162, "player's trainer name"),
		PartyCount: reg("PartyCount", 0xD163, 0xD163, "number of Pokémon in the party"),
		PartyIDs:   reg("PartyPokemonIDs", 0xD164, 0xD169, "party species ids, slot order"),
	}
}

// PartyRegions backs domain.PartyPokemon: six fixed-size slot records plus
// parallel trainer-name and nickname tables.
type PartyRegions struct {
	Slot1       Region
	Slot2       Region
	Slot3       Region
	Slot4       Region
	Slot5       Region
	Slot6       Region
	TrainerName1 Region
	Nickname1    Region
	SlotSize     int
}

// partySlotSize is the width of one PartyPokemonRecord (§3): species id,
// current HP, shadow level, status, two types, gen-2 catch-rate byte, four
// moves, trainer id, 24-bit experience, five 16-bit EVs, DV pair, four PP
// bytes, canonical level, and five 16-bit derived stats.
const partySlotSize = 44

// nicknameSlotSize matches TrainerName/Nickname spans in the reference RAM
// map (11 bytes: 10 characters plus terminator).
const nicknameSlotSize = 11

func partyRegions() PartyRegions {
	return PartyRegions{
		Slot1:        reg("Pokemon1", 0xD16B, 0xD16B+partySlotSize-1, "first party Pokémon record"),
		Slot2:        reg("Pokemon2", 0xD197, 0xD197+partySlotSize-1, "second party Pokémon record"),
		Slot3:        reg("Pokemon3", 0xD1C3, 0xD1C3+partySlotSize-1, "third party Pokémon record"),
		Slot4:        reg("Pokemon4", 0xD1EF, 0xD1EF+partySlotSize-1, "fourth party Pokémon record"),
		Slot5:        reg("Pokemon5", 0xD21B, 0xD21B+partySlotSize-1, "fifth party Pokémon record"),
		Slot6:        reg("Pokemon6", 0xD247, 0xD247+partySlotSize-1, "sixth party Pokémon record"),
		TrainerName1: reg("TrainerName1", 0xD273, 0xD273+nicknameSlotSize-1, "original trainer name, first party slot"),
		Nickname1:    reg("Nickname1", 0xD2B5, 0xD2B5+nicknameSlotSize-1, "nickname, first party slot"),
		SlotSize:     partySlotSize,
	}
}

// Slot returns the Region for the i'th (0-based) party member's fixed
// record, trainer name, and nickname, computed from Slot1/TrainerName1/
// Nickname1 by striding partySlotSize / nicknameSlotSize bytes. This mirrors
// how the reference RAM map lists six near-identical constants instead of
// one indexed accessor.
func (p PartyRegions) Slot(i int) (record, trainerName, nickname Region) {
	slots := [6]Region{p.Slot1, p.Slot2, p.Slot3, p.Slot4, p.Slot5, p.Slot6}
	record = slots[i]
	trainerName = reg(p.TrainerName1.Name, p.TrainerName1.start+i*nicknameSlotSize, p.TrainerName1.end+i*nicknameSlotSize, p.TrainerName1.Description)
	nickname = reg(p.Nickname1.Name, p.Nickname1.start+i*nicknameSlotSize, p.Nickname1.end+i*nicknameSlotSize, p.Nickname1.Description)
	return
}

// DexRegions covers the Pokédex owned/seen bitfields. Unused by any
// operation today; documented because the reference RAM map covers it and a
// future "has this species been seen" check would read it directly rather
// than needing a new region added.
type DexRegions struct {
	Owned Region
	Seen  Region
}

func dexRegions() DexRegions {
	return DexRegions{
		Owned: reg("PokedexOwned", 0xD2F7, 0xD309, "pokédex owned bitfield, one bit per species"),
		Seen:  reg("PokedexSeen", 0xD30A, 0xD31C, "pokédex seen bitfield, one bit per species"),
	}
}
