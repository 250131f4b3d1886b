package runtime

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ernesto/pkmbridge/internal/emulator"
)

func TestSnapshotManagerRotatesBackups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ROM.state")
	mgr := NewSnapshotManager(path)
	emu := emulator.NewFake(0)

	for i := 0; i < 7; i++ {
		emu.WriteByte(0, byte(i))
		if err := mgr.Save(emu); err != nil {
			t.Fatalf("Save() #%d: %v", i, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[e.Name()] = true
	}

	want := []string{"ROM.state", "ROM.state.bak_1", "ROM.state.bak_2", "ROM.state.bak_3", "ROM.state.bak_4", "ROM.state.bak_5"}
	if len(names) != len(want) {
		t.Fatalf("directory contains %v, want exactly %v", names, want)
	}
	for _, name := range want {
		if !names[name] {
			t.Fatalf("missing %q after 7 saves; have %v", name, names)
		}
	}
	if names["ROM.state.bak_6"] || names["ROM.state.tmpwrite"] {
		t.Fatalf("unexpected extra file after rotation: %v", names)
	}
}

func TestSnapshotManagerSaveThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ROM.state")
	mgr := NewSnapshotManager(path)

	saver := emulator.NewFake(0)
	saver.WriteByte(0x1234, 0x42)
	if err := mgr.Save(saver); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loader := emulator.NewFake(0)
	loaded, err := mgr.Load(loader)
	if err != nil || !loaded {
		t.Fatalf("Load() = (%v, %v), want (true, nil)", loaded, err)
	}
	if got := loader.ReadByte(0x1234); got != 0x42 {
		t.Fatalf("loaded byte = %#x, want 0x42", got)
	}
}

func TestSnapshotManagerLoadMissingFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	mgr := NewSnapshotManager(filepath.Join(dir, "nope.state"))
	loaded, err := mgr.Load(emulator.NewFake(0))
	if err != nil {
		t.Fatalf("Load() on missing file returned error: %v", err)
	}
	if loaded {
		t.Fatalf("Load() on missing file reported loaded=true")
	}
}

func TestSnapshotManagerCleansUpTmpFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ROM.state")
	mgr := NewSnapshotManager(path)

	// Seed one real snapshot, then make the canonical path itself a
	// directory so the next Save's rename step fails, exercising the
	// tmp-file cleanup path.
	if err := mgr.Save(emulator.NewFake(0)); err != nil {
		t.Fatalf("seed Save: %v", err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove seeded state: %v", err)
	}
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("mkdir in place of canonical file: %v", err)
	}

	if err := mgr.Save(emulator.NewFake(0)); err == nil {
		t.Fatalf("expected Save() to fail when the canonical path is a directory")
	}
	if _, err := os.Stat(mgr.tmpPath()); !os.IsNotExist(err) {
		t.Fatalf("tmp file was not cleaned up after a failed save: err=%v", err)
	}
}
