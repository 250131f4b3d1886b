// Package pokedex holds static Generation I reference data: the ROM
// species-index <-> National Pokedex number bijection, canonical species
// names, type names, status-bit labels, and the 87-entry move-effect table.
// None of it depends on a running emulator; it exists so internal/domain can
// turn raw bytes it reads via internal/memmap into names a caller recognizes.
package pokedex

// SpeciesName is a species' canonical name in the two languages the
// reference data ships with.
type SpeciesName struct {
	EN string
	FR string
}

// RomIDToPokedexID maps a Gen I internal (ROM) species index to its
// National Pokedex number. Indices with no entry are MissingNo. slots:
// glitch species the games can still generate but that this table does not
// name.
var RomIDToPokedexID = map[byte]int{
	0x01: 112,
	0x02: 115,
	0x03: 32,
	0x04: 35,
	0x05: 21,
	0x06: 100,
	0x07: 34,
	0x08: 80,
	0x09: 2,
	0x0A: 103,
	0x0B: 108,
	0x0C: 102,
	0x0D: 88,
	0x0E: 94,
	0x0F: 29,
	0x10: 31,
	0x11: 104,
	0x12: 111,
	0x13: 131,
	0x14: 59,
	0x15: 151,
	0x16: 130,
	0x17: 90,
	0x18: 72,
	0x19: 92,
	0x1A: 123,
	0x1B: 120,
	0x1C: 9,
	0x1D: 127,
	0x1E: 114,
	0x21: 58,
	0x22: 95,
	0x23: 22,
	0x24: 16,
	0x25: 79,
	0x26: 64,
	0x27: 75,
	0x28: 113,
	0x29: 67,
	0x2A: 122,
	0x2B: 106,
	0x2C: 107,
	0x2D: 24,
	0x2E: 47,
	0x2F: 54,
	0x30: 96,
	0x31: 76,
	0x33: 126,
	0x35: 125,
	0x36: 82,
	0x37: 109,
	0x39: 56,
	0x3A: 86,
	0x3B: 50,
	0x3C: 128,
	0x40: 83,
	0x41: 48,
	0x42: 149,
	0x46: 84,
	0x47: 60,
	0x48: 124,
	0x49: 146,
	0x4A: 144,
	0x4B: 145,
	0x4C: 132,
	0x4D: 52,
	0x4E: 98,
	0x52: 37,
	0x53: 38,
	0x54: 25,
	0x55: 26,
	0x58: 147,
	0x59: 148,
	0x5A: 140,
	0x5B: 141,
	0x5C: 116,
	0x5D: 117,
	0x60: 27,
	0x61: 28,
	0x62: 138,
	0x63: 139,
	0x64: 39,
	0x65: 40,
	0x66: 133,
	0x67: 136,
	0x68: 135,
	0x69: 134,
	0x6A: 66,
	0x6B: 41,
	0x6C: 23,
	0x6D: 46,
	0x6E: 61,
	0x6F: 62,
	0x70: 13,
	0x71: 14,
	0x72: 15,
	0x74: 85,
	0x75: 57,
	0x76: 51,
	0x77: 49,
	0x78: 87,
	0x7B: 10,
	0x7C: 11,
	0x7D: 12,
	0x7E: 68,
	0x80: 55,
	0x81: 97,
	0x82: 42,
	0x83: 150,
	0x84: 143,
	0x85: 129,
	0x88: 89,
	0x8A: 99,
	0x8B: 91,
	0x8D: 101,
	0x8E: 36,
	0x8F: 110,
	0x90: 53,
	0x91: 105,
	0x93: 93,
	0x94: 63,
	0x95: 65,
	0x96: 17,
	0x97: 18,
	0x98: 121,
	0x99: 1,
	0x9A: 3,
	0x9B: 73,
	0x9D: 118,
	0x9E: 119,
	0xA3: 77,
	0xA4: 78,
	0xA5: 19,
	0xA6: 20,
	0xA7: 33,
	0xA8: 30,
	0xA9: 74,
	0xAA: 137,
	0xAB: 142,
	0xAD: 81,
	0xB0: 4,
	0xB1: 7,
	0xB2: 5,
	0xB3: 8,
	0xB4: 6,
	0xB9: 43,
	0xBA: 44,
	0xBB: 45,
	0xBC: 69,
	0xBD: 70,
	0xBE: 71,
}

// PokedexIDToRomID is the inverse of RomIDToPokedexID, built from the
// reference mapping rather than derived mechanically from it, and checked
// against it by tests.
var PokedexIDToRomID = map[int]byte{
	1: 0x99,
	2: 0x09,
	3: 0x9A,
	4: 0xB0,
	5: 0xB2,
	6: 0xB4,
	7: 0xB1,
	8: 0xB3,
	9: 0x1C,
	10: 0x7B,
	11: 0x7C,
	12: 0x7D,
	13: 0x70,
	14: 0x71,
	15: 0x72,
	16: 0x24,
	17: 0x96,
	18: 0x97,
	19: 0xA5,
	20: 0xA6,
	21: 0x05,
	22: 0x23,
	23: 0x6C,
	24: 0x2D,
	25: 0x54,
	26: 0x55,
	27: 0x60,
	28: 0x61,
	29: 0x0F,
	30: 0xA8,
	31: 0x10,
	32: 0x03,
	33: 0xA7,
	34: 0x07,
	35: 0x04,
	36: 0x8E,
	37: 0x52,
	38: 0x53,
	39: 0x64,
	40: 0x65,
	41: 0x6B,
	42: 0x82,
	43: 0xB9,
	44: 0xBA,
	45: 0xBB,
	46: 0x6D,
	47: 0x2E,
	48: 0x41,
	49: 0x77,
	50: 0x3B,
	51: 0x76,
	52: 0x4D,
	53: 0x90,
	54: 0x2F,
	55: 0x80,
	56: 0x39,
	57: 0x75,
	58: 0x21,
	59: 0x14,
	60: 0x47,
	61: 0x6E,
	62: 0x6F,
	63: 0x94,
	64: 0x26,
	65: 0x95,
	66: 0x6A,
	67: 0x29,
	68: 0x7E,
	69: 0xBC,
	70: 0xBD,
	71: 0xBE,
	72: 0x18,
	73: 0x9B,
	74: 0xA9,
	75: 0x27,
	76: 0x31,
	77: 0xA3,
	78: 0xA4,
	79: 0x25,
	80: 0x08,
	81: 0xAD,
	82: 0x36,
	83: 0x40,
	84: 0x46,
	85: 0x74,
	86: 0x3A,
	87: 0x78,
	88: 0x0D,
	89: 0x88,
	90: 0x17,
	91: 0x8B,
	92: 0x19,
	93: 0x93,
	94: 0x0E,
	95: 0x22,
	96: 0x30,
	97: 0x81,
	98: 0x4E,
	99: 0x8A,
	100: 0x06,
	101: 0x8D,
	102: 0x0C,
	103: 0x0A,
	104: 0x11,
	105: 0x91,
	106: 0x2B,
	107: 0x2C,
	108: 0x0B,
	109: 0x37,
	110: 0x8F,
	111: 0x12,
	112: 0x01,
	113: 0x28,
	114: 0x1E,
	115: 0x02,
	116: 0x5C,
	117: 0x5D,
	118: 0x9D,
	119: 0x9E,
	120: 0x1B,
	121: 0x98,
	122: 0x2A,
	123: 0x1A,
	124: 0x48,
	125: 0x35,
	126: 0x33,
	127: 0x1D,
	128: 0x3C,
	129: 0x85,
	130: 0x16,
	131: 0x13,
	132: 0x4C,
	133: 0x66,
	134: 0x69,
	135: 0x68,
	136: 0x67,
	137: 0xAA,
	138: 0x62,
	139: 0x63,
	140: 0x5A,
	141: 0x5B,
	142: 0xAB,
	143: 0x84,
	144: 0x4A,
	145: 0x4B,
	146: 0x49,
	147: 0x58,
	148: 0x59,
	149: 0x42,
	150: 0x83,
	151: 0x15,
}

// PokedexIDToName gives the canonical English/French species name for a
// National Pokedex number.
var PokedexIDToName = map[int]SpeciesName{
	1: {EN: "Bulbasaur", FR: "Bulbizarre"},
	2: {EN: "Ivysaur", FR: "Herbizarre"},
	3: {EN: "Venusaur", FR: "Florizarre"},
	4: {EN: "Charmander", FR: "Salamèche"},
	5: {EN: "Charmeleon", FR: "Reptincel"},
	6: {EN: "Charizard", FR: "Dracaufeu"},
	7: {EN: "Squirtle", FR: "Carapuce"},
	8: {EN: "Wartortle", FR: "Carabaffe"},
	9: {EN: "Blastoise", FR: "Tortank"},
	10: {EN: "Caterpie", FR: "Chenipan"},
	11: {EN: "Metapod", FR: "Chrysacier"},
	12: {EN: "Butterfree", FR: "Papilusion"},
	13: {EN: "Weedle", FR: "Aspicot"},
	14: {EN: "Kakuna", FR: "Coconfort"},
	15: {EN: "Beedrill", FR: "Dardargnan"},
	16: {EN: "Pidgey", FR: "Roucool"},
	17: {EN: "Pidgeotto", FR: "Roucoups"},
	18: {EN: "Pidgeot", FR: "Roucarnage"},
	19: {EN: "Rattata", FR: "Rattata"},
	20: {EN: "Raticate", FR: "Rattatac"},
	21: {EN: "Spearow", FR: "Piafabec"},
	22: {EN: "Fearow", FR: "Rapasdepic"},
	23: {EN: "Ekans", FR: "Abo"},
	24: {EN: "Arbok", FR: "Arbok"},
	25: {EN: "Pikachu", FR: "Pikachu"},
	26: {EN: "Raichu", FR: "Raichu"},
	27: {EN: "Sandshrew", FR: "Sabelette"},
	28: {EN: "Sandslash", FR: "Sablaireau"},
	29: {EN: "Nidoran♀", FR: "Nidoran♀"},
	30: {EN: "Nidorina", FR: "Nidorina"},
	31: {EN: "Nidoqueen", FR: "Nidoqueen"},
	32: {EN: "Nidoran♂", FR: "Nidoran♂"},
	33: {EN: "Nidorino", FR: "Nidorino"},
	34: {EN: "Nidoking", FR: "Nidoking"},
	35: {EN: "Clefairy", FR: "Mélofée"},
	36: {EN: "Clefable", FR: "Mélodelfe"},
	37: {EN: "Vulpix", FR: "Goupix"},
	38: {EN: "Ninetales", FR: "Feunard"},
	39: {EN: "Jigglypuff", FR: "Rondoudou"},
	40: {EN: "Wigglytuff", FR: "Grodoudou"},
	41: {EN: "Zubat", FR: "Nosferapti"},
	42: {EN: "Golbat", FR: "Nosferalto"},
	43: {EN: "Oddish", FR: "Mystherbe"},
	44: {EN: "Gloom", FR: "Ortide"},
	45: {EN: "Vileplume", FR: "Rafflesia"},
	46: {EN: "Paras", FR: "Paras"},
	47: {EN: "Parasect", FR: "Parasect"},
	48: {EN: "Venonat", FR: "Mimitoss"},
	49: {EN: "Venomoth", FR: "Aéromite"},
	50: {EN: "Diglett", FR: "Taupiqueur"},
	51: {EN: "Dugtrio", FR: "Triopikeur"},
	52: {EN: "Meowth", FR: "Miaouss"},
	53: {EN: "Persian", FR: "Persian"},
	54: {EN: "Psyduck", FR: "Psykokwak"},
	55: {EN: "Golduck", FR: "Akwakwak"},
	56: {EN: "Mankey", FR: "Férosinge"},
	57: {EN: "Primeape", FR: "Colossinge"},
	58: {EN: "Growlithe", FR: "Caninos"},
	59: {EN: "Arcanine", FR: "Arcanin"},
	60: {EN: "Poliwag", FR: "Ptitard"},
	61: {EN: "Poliwhirl", FR: "Têtarte"},
	62: {EN: "Poliwrath", FR: "Tartard"},
	63: {EN: "Abra", FR: "Abra"},
	64: {EN: "Kadabra", FR: "Kadabra"},
	65: {EN: "Alakazam", FR: "Alakazam"},
	66: {EN: "Machop", FR: "Machoc"},
	67: {EN: "Machoke", FR: "Machopeur"},
	68: {EN: "Machamp", FR: "Mackogneur"},
	69: {EN: "Bellsprout", FR: "Chétiflor"},
	70: {EN: "Weepinbell", FR: "Boustiflor"},
	71: {EN: "Victreebel", FR: "Empiflor"},
	72: {EN: "Tentacool", FR: "Tentacool"},
	73: {EN: "Tentacruel", FR: "Tentacruel"},
	74: {EN: "Geodude", FR: "Racaillou"},
	75: {EN: "Graveler", FR: "Gravalanch"},
	76: {EN: "Golem", FR: "Grolem"},
	77: {EN: "Ponyta", FR: "Ponyta"},
	78: {EN: "Rapidash", FR: "Galopa"},
	79: {EN: "Slowpoke", FR: "Ramoloss"},
	80: {EN: "Slowbro", FR: "Flagadoss"},
	81: {EN: "Magnemite", FR: "Magnéti"},
	82: {EN: "Magneton", FR: "Magnéton"},
	83: {EN: "Farfetch'd", FR: "Canarticho"},
	84: {EN: "Doduo", FR: "Doduo"},
	85: {EN: "Dodrio", FR: "Dodrio"},
	86: {EN: "Seel", FR: "Otaria"},
	87: {EN: "Dewgong", FR: "Lamantine"},
	88: {EN: "Grimer", FR: "Tadmorv"},
	89: {EN: "Muk", FR: "Grotadmorv"},
	90: {EN: "Shellder", FR: "Kokiyas"},
	91: {EN: "Cloyster", FR: "Crustabri"},
	92: {EN: "Gastly", FR: "Fantominus"},
	93: {EN: "Haunter", FR: "Spectrum"},
	94: {EN: "Gengar", FR: "Ectoplasma"},
	95: {EN: "Onix", FR: "Onix"},
	96: {EN: "Drowzee", FR: "Soporifik"},
	97: {EN: "Hypno", FR: "Hypnomade"},
	98: {EN: "Krabby", FR: "Krabby"},
	99: {EN: "Kingler", FR: "Krabboss"},
	100: {EN: "Voltorb", FR: "Voltorbe"},
	101: {EN: "Electrode", FR: "Électrode"},
	102: {EN: "Exeggcute", FR: "Noeunoeuf"},
	103: {EN: "Exeggutor", FR: "Noadkoko"},
	104: {EN: "Cubone", FR: "Osselait"},
	105: {EN: "Marowak", FR: "Ossatueur"},
	106: {EN: "Hitmonlee", FR: "Kicklee"},
	107: {EN: "Hitmonchan", FR: "Tygnon"},
	108: {EN: "Lickitung", FR: "Excelangue"},
	109: {EN: "Koffing", FR: "Smogo"},
	110: {EN: "Weezing", FR: "Smogogo"},
	111: {EN: "Rhyhorn", FR: "Rhinocorne"},
	112: {EN: "Rhydon", FR: "Rhinoféros"},
	113: {EN: "Chansey", FR: "Leveinard"},
	114: {EN: "Tangela", FR: "Saquedeneu"},
	115: {EN: "Kangaskhan", FR: "Kangourex"},
	116: {EN: "Horsea", FR: "Hypotrempe"},
	117: {EN: "Seadra", FR: "Hypocéan"},
	118: {EN: "Goldeen", FR: "Poissirène"},
	119: {EN: "Seaking", FR: "Poissoroy"},
	120: {EN: "Staryu", FR: "Stari"},
	121: {EN: "Starmie", FR: "Staross"},
	122: {EN: "Mr. Mime", FR: "M. Mime"},
	123: {EN: "Scyther", FR: "Insécateur"},
	124: {EN: "Jynx", FR: "Lippoutou"},
	125: {EN: "Electabuzz", FR: "Élektek"},
	126: {EN: "Magmar", FR: "Magmar"},
	127: {EN: "Pinsir", FR: "Scarabrute"},
	128: {EN: "Tauros", FR: "Tauros"},
	129: {EN: "Magikarp", FR: "Magicarpe"},
	130: {EN: "Gyarados", FR: "Léviator"},
	131: {EN: "Lapras", FR: "Lokhlass"},
	132: {EN: "Ditto", FR: "Métamorph"},
	133: {EN: "Eevee", FR: "Évoli"},
	134: {EN: "Vaporeon", FR: "Aquali"},
	135: {EN: "Jolteon", FR: "Voltali"},
	136: {EN: "Flareon", FR: "Pyroli"},
	137: {EN: "Porygon", FR: "Porygon"},
	138: {EN: "Omanyte", FR: "Amonita"},
	139: {EN: "Omastar", FR: "Amonistar"},
	140: {EN: "Kabuto", FR: "Kabuto"},
	141: {EN: "Kabutops", FR: "Kabutops"},
	142: {EN: "Aerodactyl", FR: "Ptéra"},
	143: {EN: "Snorlax", FR: "Ronflex"},
	144: {EN: "Articuno", FR: "Artikodin"},
	145: {EN: "Zapdos", FR: "Électhor"},
	146: {EN: "Moltres", FR: "Sulfura"},
	147: {EN: "Dratini", FR: "Minidraco"},
	148: {EN: "Dragonair", FR: "Draco"},
	149: {EN: "Dragonite", FR: "Dracolosse"},
	150: {EN: "Mewtwo", FR: "Mewtwo"},
	151: {EN: "Mew", FR: "Mew"},
}
