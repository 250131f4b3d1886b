package scene

// MenuLocation is a cursor's top-left tile coordinate, used to
// disambiguate otherwise visually-identical menu screens.
type MenuLocation struct {
	X, Y byte
}

var (
	MainMenuLeft    = MenuLocation{9, 14}
	MainMenuRight   = MenuLocation{15, 14}
	MovesOrText     = MenuLocation{5, 12}
	PokemonSelection = MenuLocation{0, 1}
	PokemonSubMenu  = MenuLocation{12, 12}
)
