package scene

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ernesto/pkmbridge/internal/memmap"
	"github.com/ernesto/pkmbridge/internal/variant"
)

type fakeMemory struct {
	buf [0x10000]byte
}

func (m *fakeMemory) ReadByte(addr int) byte { return m.buf[addr] }
func (m *fakeMemory) ReadBytes(start, end int) []byte {
	out := make([]byte, end-start)
	copy(out, m.buf[start:end])
	return out
}
func (m *fakeMemory) WriteByte(addr int, value byte) { m.buf[addr] = value }

type noopLock struct{}

func (noopLock) Lock()   {}
func (noopLock) Unlock() {}

type fakeSink struct {
	pressed []Button
}

func (f *fakeSink) QueueLen() int { return len(f.pressed) }
func (f *fakeSink) Enqueue(b Button) {
	f.pressed = append(f.pressed, b)
}
func (f *fakeSink) drain() Button {
	b := f.pressed[0]
	f.pressed = f.pressed[1:]
	return b
}

func newSceneFixture() (*fakeMemory, *BattleScene) {
	mem := &fakeMemory{}
	r := memmap.NewReader(mem, variant.Red, noopLock{})
	cat := memmap.NewCatalogue()
	s := New(r, cat, 1, zerolog.Nop())
	return mem, s
}

func setCursor(mem *fakeMemory, cat memmap.Catalogue, loc MenuLocation, selected byte) {
	xRes := cat.Menu.CursorXPos.Resolve(variant.Red)
	yRes := cat.Menu.CursorYPos.Resolve(variant.Red)
	selRes := cat.Menu.SelectedItem.Resolve(variant.Red)
	mem.buf[xRes.Start] = loc.X
	mem.buf[yRes.Start] = loc.Y
	mem.buf[selRes.Start] = selected
}

func TestReadyMainMenuDetection(t *testing.T) {
	mem, s := newSceneFixture()
	setCursor(mem, memmap.NewCatalogue(), MainMenuLeft, 0)
	s.Update(time.Time{})
	if !s.IsReady() {
		t.Fatalf("expected IsReady() at MainMenuLeft/selected=0")
	}
}

func TestIdleRecoveryFromMainMenuRight(t *testing.T) {
	mem, s := newSceneFixture()
	cat := memmap.NewCatalogue()
	setCursor(mem, cat, MainMenuRight, 0)
	s.Update(time.Time{})

	sink := &fakeSink{}
	s.Tick(time.Unix(0, 0), sink)
	if len(sink.pressed) != 1 || sink.pressed[0] != Left {
		t.Fatalf("idle recovery from MAIN_MENU_RIGHT = %v, want [Left]", sink.pressed)
	}
}

func TestIdleRecoveryDoesNothingInMovesOrText(t *testing.T) {
	mem, s := newSceneFixture()
	cat := memmap.NewCatalogue()
	setCursor(mem, cat, MovesOrText, 2)
	s.Update(time.Time{})

	sink := &fakeSink{}
	s.Tick(time.Unix(0, 0), sink)
	if len(sink.pressed) != 0 {
		t.Fatalf("idle recovery in MOVES_OR_TEXT enqueued %v, want nothing", sink.pressed)
	}
}

func TestIdleRecoveryUnrecognizedMenu(t *testing.T) {
	mem, s := newSceneFixture()
	cat := memmap.NewCatalogue()
	setCursor(mem, cat, MenuLocation{X: 3, Y: 3}, 0)
	s.Update(time.Time{})

	sink := &fakeSink{}
	s.Tick(time.Unix(0, 0), sink)
	if len(sink.pressed) != 1 || sink.pressed[0] != B {
		t.Fatalf("idle recovery in unrecognized menu = %v, want [B]", sink.pressed)
	}
}

// TestMoveCommandFullSequence drives a Move(3) command through all three
// phases, advancing the fake cursor state the way the real game would in
// response to each button.
func TestMoveCommandFullSequence(t *testing.T) {
	mem, s := newSceneFixture()
	cat := memmap.NewCatalogue()
	now := time.Unix(0, 0)

	// Step 0: ready main menu, command just enqueued.
	setCursor(mem, cat, MainMenuLeft, 0)
	s.Update(now)
	s.Enqueue(BattleCommand{Kind: CommandMove, MoveSlot: 3})

	sink := &fakeSink{}
	s.Tick(now, sink)
	if len(sink.pressed) != 1 || sink.pressed[0] != A {
		t.Fatalf("step 1 (open move list) = %v, want [A]", sink.pressed)
	}
	sink.drain()
	now = now.Add(DefaultCooldown)

	// Game opens the move list at slot 0.
	setCursor(mem, cat, MovesOrText, 0)
	s.Update(now)
	s.Tick(now, sink)
	if len(sink.pressed) != 1 || sink.pressed[0] != Down {
		t.Fatalf("cursor alignment step (0 -> target 2) = %v, want [Down]", sink.pressed)
	}
	sink.drain()
	now = now.Add(DefaultCooldown)

	// Game moves cursor down to slot 1.
	setCursor(mem, cat, MovesOrText, 1)
	s.Update(now)
	s.Tick(now, sink)
	if len(sink.pressed) != 1 || sink.pressed[0] != Down {
		t.Fatalf("cursor alignment step (1 -> target 2) = %v, want [Down]", sink.pressed)
	}
	sink.drain()
	now = now.Add(DefaultCooldown)

	// Cursor now at slot 2 (0-based), matching target for MoveSlot 3.
	setCursor(mem, cat, MovesOrText, 2)
	s.Update(now)
	s.Tick(now, sink)
	if len(sink.pressed) != 1 || sink.pressed[0] != A {
		t.Fatalf("cursor-matched step = %v, want [A]", sink.pressed)
	}
	sink.drain()
	now = now.Add(DefaultCooldown)

	// Post-dialog: same coordinates now represent an unclosable textbox.
	setCursor(mem, cat, MovesOrText, 2)
	s.Update(now)
	s.Tick(now, sink)
	if len(sink.pressed) != 1 || sink.pressed[0] != B {
		t.Fatalf("post-dialog step = %v, want [B]", sink.pressed)
	}
	sink.drain()
	now = now.Add(DefaultCooldown)

	// Dialog clears, main menu is ready again: command completes.
	setCursor(mem, cat, MainMenuLeft, 0)
	s.Update(now)
	s.Tick(now, sink)
	if len(sink.pressed) != 0 {
		t.Fatalf("completion step pressed %v, want nothing", sink.pressed)
	}
	if s.Active() != nil {
		t.Fatalf("expected no active command after completion")
	}
	if done := s.LastCompleted(); done == nil || done.MoveSlot != 3 {
		t.Fatalf("LastCompleted() = %+v, want MoveSlot 3", done)
	}
}

func TestCooldownBlocksSecondEnqueueWithinWindow(t *testing.T) {
	mem, s := newSceneFixture()
	cat := memmap.NewCatalogue()
	setCursor(mem, cat, MainMenuRight, 0)
	now := time.Unix(0, 0)
	s.Update(now)

	sink := &fakeSink{}
	s.Tick(now, sink)
	if len(sink.pressed) != 1 {
		t.Fatalf("first tick should enqueue, got %v", sink.pressed)
	}
	sink.drain()

	s.Tick(now.Add(time.Millisecond), sink)
	if len(sink.pressed) != 0 {
		t.Fatalf("second tick within cooldown enqueued %v, want nothing", sink.pressed)
	}
}

func TestUnsupportedCommandCompletesImmediately(t *testing.T) {
	mem, s := newSceneFixture()
	cat := memmap.NewCatalogue()
	setCursor(mem, cat, MainMenuLeft, 0)
	now := time.Unix(0, 0)
	s.Update(now)
	s.Enqueue(BattleCommand{Kind: CommandItem})

	sink := &fakeSink{}
	s.Tick(now, sink)
	if len(sink.pressed) != 0 {
		t.Fatalf("unsupported command pressed %v, want nothing", sink.pressed)
	}
	if s.Active() != nil {
		t.Fatalf("expected unsupported command to complete immediately")
	}
}
