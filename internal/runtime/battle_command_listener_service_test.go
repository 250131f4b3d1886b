package runtime

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ernesto/pkmbridge/internal/emulator"
	"github.com/ernesto/pkmbridge/internal/memmap"
	"github.com/ernesto/pkmbridge/internal/scene"
	"github.com/ernesto/pkmbridge/internal/variant"
)

func newTestScene(battleID int) *scene.BattleScene {
	emu := emulator.NewFake(0)
	reader := memmap.NewReader(emu, variant.Red, &sync.Mutex{})
	return scene.New(reader, memmap.NewCatalogue(), battleID, zerolog.Nop())
}

func TestBattleCommandListenerForwardsValidCommandToActiveScene(t *testing.T) {
	pub := newFakePublisher()
	active := &ActiveScene{}
	sc := newTestScene(1)
	active.set(sc)

	svc := NewBattleCommandListenerService(pub, active, zerolog.Nop())
	if err := svc.Start(); err != nil {
		t.Fatalf("Start(): %v", err)
	}

	pub.deliver(pub.Topics().BattleMove(), []byte(`{"action":"move","choice":2}`))

	cmd := sc.Active()
	if cmd == nil || cmd.MoveSlot != 2 {
		t.Fatalf("Active() = %+v, want a move command with slot 2", cmd)
	}
}

func TestBattleCommandListenerDropsCommandWithNoActiveScene(t *testing.T) {
	pub := newFakePublisher()
	active := &ActiveScene{}

	svc := NewBattleCommandListenerService(pub, active, zerolog.Nop())
	if err := svc.Start(); err != nil {
		t.Fatalf("Start(): %v", err)
	}

	// Must not panic with no active scene.
	pub.deliver(pub.Topics().BattleMove(), []byte(`{"action":"move","choice":1}`))
}

func TestBattleCommandListenerDropsMalformedPayload(t *testing.T) {
	pub := newFakePublisher()
	active := &ActiveScene{}
	sc := newTestScene(1)
	active.set(sc)

	svc := NewBattleCommandListenerService(pub, active, zerolog.Nop())
	if err := svc.Start(); err != nil {
		t.Fatalf("Start(): %v", err)
	}

	pub.deliver(pub.Topics().BattleMove(), []byte(`not json`))

	if cmd := sc.Active(); cmd != nil {
		t.Fatalf("Active() = %+v, want nil after a malformed payload", cmd)
	}
}
