package bus

import (
	"encoding/json"
	"fmt"

	"github.com/ernesto/pkmbridge/internal/scene"
)

// StartPayload is the one-shot handshake published to the start topic on
// boot.
type StartPayload struct {
	Msg       string  `json:"msg"`
	Timestamp float64 `json:"timestamp"`
}

// SnapshotPayload is the retained message published to the battle-info
// topic whenever the in-game turn counter advances.
type SnapshotPayload struct {
	BattleID  int           `json:"battle_id"`
	Turn      int           `json:"turn"`
	Timestamp float64       `json:"timestamp"`
	Scene     scene.Snapshot `json:"scene"`
}

// commandPayload is the wire shape subscribed on the battle-move topic:
// {"action": "move", "choice": 1}.
type commandPayload struct {
	Action string `json:"action"`
	Choice int    `json:"choice"`
}

// ParseCommand decodes and validates a battle-command message. Parsing
// rules (see DESIGN.md): action must be a known CommandKind; choice must be
// >= 1; for "move", choice must additionally be 1..=4. Any violation is
// reported as an error so the caller can log a warning and drop the
// message rather than forwarding a malformed command to a scene.
func ParseCommand(payload []byte) (scene.BattleCommand, error) {
	var raw commandPayload
	if err := json.Unmarshal(payload, &raw); err != nil {
		return scene.BattleCommand{}, &PayloadError{Reason: fmt.Sprintf("malformed command payload: %v", err)}
	}

	kind, ok := scene.ParseCommandKind(raw.Action)
	if !ok {
		return scene.BattleCommand{}, &PayloadError{Reason: fmt.Sprintf("unknown action %q", raw.Action)}
	}
	if raw.Choice < 1 {
		return scene.BattleCommand{}, &PayloadError{Reason: fmt.Sprintf("choice must be >= 1, got %d", raw.Choice)}
	}
	if kind == scene.CommandMove && raw.Choice > 4 {
		return scene.BattleCommand{}, &PayloadError{Reason: fmt.Sprintf("move choice must be 1..=4, got %d", raw.Choice)}
	}

	return scene.BattleCommand{Kind: kind, MoveSlot: raw.Choice}, nil
}
