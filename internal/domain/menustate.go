package domain

import "github.com/ernesto/pkmbridge/internal/memmap"

// MenuState is a snapshot of the in-game menu overlay: cursor position,
// selection, and the per-screen "last position" memories the game keeps so
// the cursor reappears where the player left it. internal/scene reads this
// every tick to disambiguate otherwise visually-identical menus.
type MenuState struct {
	CursorYTop         byte
	CursorXTop         byte
	SelectedItemID     byte
	HiddenTileUnderCur byte
	LastItemID         byte
	KeyBitmask         byte
	PreviousItemID     byte
	LastPartyCursorPos byte
	LastItemCursorPos  byte
	LastBattleCursorPos byte
	CurrentPartyIndex  byte
	CursorTilePtr      uint16
	FirstDisplayedItem byte
	SelectHighlight    byte
}

// CursorPosTop returns (x, y) of the topmost menu item's cursor, the
// coordinate pair internal/scene compares against its menu-location
// constants.
func (m MenuState) CursorPosTop() (x, y byte) {
	return m.CursorXTop, m.CursorYTop
}

// HasSelectHighlight reports whether any item is Select-highlighted.
func (m MenuState) HasSelectHighlight() bool {
	return m.SelectHighlight != 0
}

// ReadMenuState re-reads every menu field from memory. Called fresh on
// every scene tick; nothing here is cached.
func ReadMenuState(r *memmap.Reader, cat memmap.Catalogue) MenuState {
	m := cat.Menu
	return MenuState{
		CursorYTop:          r.U8(m.CursorYPos),
		CursorXTop:          r.U8(m.CursorXPos),
		SelectedItemID:      r.U8(m.SelectedItem),
		HiddenTileUnderCur:  r.U8(m.HiddenTile),
		LastItemID:          r.U8(m.LastItemID),
		KeyBitmask:          r.U8(m.KeyBitmask),
		PreviousItemID:      r.U8(m.PrevItemID),
		LastPartyCursorPos:  r.U8(m.LastPartyPos),
		LastItemCursorPos:   r.U8(m.LastItemPos),
		LastBattleCursorPos: r.U8(m.LastBattlePos),
		CurrentPartyIndex:   r.U8(m.CurrentPartyIdx),
		CursorTilePtr:       r.U16HiLo(m.CursorTilePtr),
		FirstDisplayedItem:  r.U8(m.FirstItemID),
		SelectHighlight:     r.U8(m.SelectHighlight),
	}
}
