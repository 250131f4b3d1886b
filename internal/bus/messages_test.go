package bus

import (
	"testing"

	"github.com/ernesto/pkmbridge/internal/scene"
)

func TestTopicsJoinsBaseConsistently(t *testing.T) {
	tp := NewTopics("/dforirdod/PKM/")
	if got := tp.BattleInfo(); got != "/dforirdod/PKM/battle/info" {
		t.Fatalf("BattleInfo() = %q", got)
	}
	if got := tp.Status(); got != "/dforirdod/PKM/status" {
		t.Fatalf("Status() = %q", got)
	}
}

func TestParseCommandValidMove(t *testing.T) {
	cmd, err := ParseCommand([]byte(`{"action":"move","choice":3}`))
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if cmd.Kind != scene.CommandMove || cmd.MoveSlot != 3 {
		t.Fatalf("ParseCommand = %+v, want {CommandMove 3}", cmd)
	}
}

func TestParseCommandRejectsOutOfRangeMoveChoice(t *testing.T) {
	if _, err := ParseCommand([]byte(`{"action":"move","choice":5}`)); err == nil {
		t.Fatalf("expected error for move choice 5")
	}
	if _, err := ParseCommand([]byte(`{"action":"move","choice":0}`)); err == nil {
		t.Fatalf("expected error for move choice 0")
	}
}

func TestParseCommandRejectsUnknownAction(t *testing.T) {
	if _, err := ParseCommand([]byte(`{"action":"dance","choice":1}`)); err == nil {
		t.Fatalf("expected error for unknown action")
	}
}

func TestParseCommandRejectsMalformedJSON(t *testing.T) {
	if _, err := ParseCommand([]byte(`not json`)); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}

func TestParseCommandAcceptsNonMoveActionWithAnyPositiveChoice(t *testing.T) {
	cmd, err := ParseCommand([]byte(`{"action":"run","choice":1}`))
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if cmd.Kind != scene.CommandRun {
		t.Fatalf("Kind = %v, want CommandRun", cmd.Kind)
	}
}
