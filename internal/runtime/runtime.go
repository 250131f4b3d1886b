// Package runtime drives an Emulator through two cooperating loops - a hot
// tick loop and a slower services loop - and hosts the services that poll
// battle state, publish snapshots, listen for commands, and autosave.
package runtime

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ernesto/pkmbridge/internal/bus"
	"github.com/ernesto/pkmbridge/internal/emulator"
	"github.com/ernesto/pkmbridge/internal/memmap"
	"github.com/ernesto/pkmbridge/internal/variant"
)

// Runtime owns an emulator and the single mutex every non-tick-loop path
// must hold before calling into it, satisfying memmap.Locker for the
// Reader's bank-switch serialisation.
type Runtime struct {
	Emu   emulator.Emulator
	EmuMu sync.Mutex
}

// Lock and Unlock satisfy memmap.Locker.
func (rt *Runtime) Lock()   { rt.EmuMu.Lock() }
func (rt *Runtime) Unlock() { rt.EmuMu.Unlock() }

// Build assembles a Runtime, a memmap.Reader backed by its emulator-access
// mutex, its button queue, and its four standard services.
func Build(emu emulator.Emulator, v variant.RomVariant, cat memmap.Catalogue, client bus.Publisher, saveStatePath string, autosaveEvery time.Duration, autoload bool, log zerolog.Logger) (*Runtime, *memmap.Reader, *EmulatorLoop) {
	rt := &Runtime{Emu: emu}
	reader := memmap.NewReader(emu, v, rt)

	queue := NewButtonQueue()
	active := &ActiveScene{}
	snapshot := NewSnapshotManager(saveStatePath)

	services := []Service{
		NewStatusService(client, log),
		NewAutosaveService(emu, &rt.EmuMu, snapshot, autosaveEvery, autoload, log),
		NewSceneManagerService(reader, cat, &rt.EmuMu, client, active, queue, log),
		NewBattleCommandListenerService(client, active, log),
	}

	loop := NewEmulatorLoop(emu, queue, services, log)
	return rt, reader, loop
}
