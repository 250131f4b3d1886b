package runtime

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ernesto/pkmbridge/internal/emulator"
	"github.com/ernesto/pkmbridge/internal/memmap"
	"github.com/ernesto/pkmbridge/internal/variant"
)

func TestSceneManagerServiceStartsAndEndsBattle(t *testing.T) {
	emu := emulator.NewFake(0)
	var emuMu sync.Mutex
	cat := memmap.NewCatalogue()
	reader := memmap.NewReader(emu, variant.Red, &emuMu)
	pub := newFakePublisher()
	active := &ActiveScene{}
	queue := NewButtonQueue()

	svc := NewSceneManagerService(reader, cat, &emuMu, pub, active, queue, zerolog.Nop())
	if err := svc.Start(); err != nil {
		t.Fatalf("Start(): %v", err)
	}

	// No battle yet: battle type byte is zero.
	now := time.Now()
	if err := svc.Tick(now.Add(time.Second)); err != nil {
		t.Fatalf("Tick(): %v", err)
	}
	if active.Get() != nil {
		t.Fatalf("active scene set with battle type byte still zero")
	}

	// Battle starts.
	res := cat.Battle.BattleTypeID.Resolve(variant.Red)
	emu.WriteByte(res.Start, 1)
	if err := svc.Tick(now.Add(2 * time.Second)); err != nil {
		t.Fatalf("Tick(): %v", err)
	}
	sc := active.Get()
	if sc == nil || sc.BattleID() != 1 {
		t.Fatalf("active scene = %+v, want a scene for battle 1", sc)
	}

	// Battle ends.
	emu.WriteByte(res.Start, 0)
	if err := svc.Tick(now.Add(3 * time.Second)); err != nil {
		t.Fatalf("Tick(): %v", err)
	}
	if active.Get() != nil {
		t.Fatalf("active scene still set after battle type byte returned to zero")
	}
}

func TestSceneManagerServicePublishesOnReadyStateWithAdvancingTurn(t *testing.T) {
	emu := emulator.NewFake(0)
	var emuMu sync.Mutex
	cat := memmap.NewCatalogue()
	reader := memmap.NewReader(emu, variant.Red, &emuMu)
	pub := newFakePublisher()
	active := &ActiveScene{}
	queue := NewButtonQueue()

	svc := NewSceneManagerService(reader, cat, &emuMu, pub, active, queue, zerolog.Nop())
	_ = svc.Start()

	battleRes := cat.Battle.BattleTypeID.Resolve(variant.Red)
	emu.WriteByte(battleRes.Start, 1)

	cursorY := cat.Menu.CursorYPos.Resolve(variant.Red)
	cursorX := cat.Menu.CursorXPos.Resolve(variant.Red)
	selected := cat.Menu.SelectedItem.Resolve(variant.Red)
	turnRes := cat.Battle.TurnCounter.Resolve(variant.Red)

	emu.WriteByte(cursorY.Start, 14)
	emu.WriteByte(cursorX.Start, 9)
	emu.WriteByte(selected.Start, 0)
	emu.WriteByte(turnRes.Start, 5)

	now := time.Now()
	if err := svc.Tick(now.Add(time.Second)); err != nil {
		t.Fatalf("Tick(): %v", err)
	}

	msgs := pub.messages()
	if len(msgs) != 2 { // start handshake + one battle-info publish
		t.Fatalf("got %d published messages, want 2 (start + battle-info): %+v", len(msgs), msgs)
	}
	if msgs[1].topic != pub.Topics().BattleInfo() || !msgs[1].retain {
		t.Fatalf("published %+v, want a retained battle-info message", msgs[1])
	}

	// Same turn again: no further publish.
	if err := svc.Tick(now.Add(2 * time.Second)); err != nil {
		t.Fatalf("Tick(): %v", err)
	}
	if got := len(pub.messages()); got != 2 {
		t.Fatalf("republished with an unchanged turn counter: got %d messages, want 2", got)
	}

	// Turn advances: publishes again.
	emu.WriteByte(turnRes.Start, 6)
	if err := svc.Tick(now.Add(3 * time.Second)); err != nil {
		t.Fatalf("Tick(): %v", err)
	}
	if got := len(pub.messages()); got != 3 {
		t.Fatalf("did not republish after the turn counter advanced: got %d messages, want 3", got)
	}
}
