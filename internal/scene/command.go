package scene

import "time"

// CommandKind enumerates the battle actions the bus can request. Only Move
// is actually automated; Item, Switch, and Run are accepted so the wire
// format never needs to change, but they always resolve through the
// unsupported-command path below.
type CommandKind int

const (
	CommandMove CommandKind = iota
	CommandItem
	CommandSwitch
	CommandRun
)

func (k CommandKind) String() string {
	switch k {
	case CommandMove:
		return "move"
	case CommandItem:
		return "item"
	case CommandSwitch:
		return "pkm"
	case CommandRun:
		return "run"
	default:
		return "unknown"
	}
}

// ParseCommandKind maps a wire string (as decoded by internal/bus) to its
// CommandKind. Unrecognized strings report ok=false so the caller can reject
// the command rather than silently treating it as a move.
func ParseCommandKind(s string) (kind CommandKind, ok bool) {
	switch s {
	case "move":
		return CommandMove, true
	case "item":
		return CommandItem, true
	case "pkm", "switch":
		return CommandSwitch, true
	case "run":
		return CommandRun, true
	default:
		return 0, false
	}
}

// BattleCommand is a single requested battle action, as handed to
// BattleScene.Enqueue by the BattleCommandListener service.
type BattleCommand struct {
	Kind      CommandKind
	MoveSlot  int // 1..=4, meaningful only when Kind == CommandMove
	RequestID string
	CreatedAt time.Time
}
