package runtime

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ernesto/pkmbridge/internal/emulator"
)

// AutosaveService periodically snapshots the emulator to disk through a
// SnapshotManager, serialising every emulator call behind emuMu so it never
// races the tick loop's own reads and writes.
type AutosaveService struct {
	emu      emulator.Emulator
	emuMu    *sync.Mutex
	snapshot *SnapshotManager
	log      zerolog.Logger
	interval time.Duration
	autoload bool

	nextSaveAt time.Time

	saveMu sync.Mutex // held for the duration of an in-flight save, so Quit can wait on it
}

// NewAutosaveService returns a service that saves every interval, guarding
// emulator access with emuMu. autoload controls whether Start loads the
// canonical snapshot (spec.md §6's AUTOLOAD_STATE).
func NewAutosaveService(emu emulator.Emulator, emuMu *sync.Mutex, snapshot *SnapshotManager, interval time.Duration, autoload bool, log zerolog.Logger) *AutosaveService {
	return &AutosaveService{
		emu:      emu,
		emuMu:    emuMu,
		snapshot: snapshot,
		log:      log.With().Str("component", "autosave").Logger(),
		interval: interval,
		autoload: autoload,
	}
}

func (s *AutosaveService) Name() string { return "autosave" }

// Start attempts to load the canonical snapshot when autoload is enabled,
// continuing with whatever state the emulator already has otherwise or if
// none exists on disk.
func (s *AutosaveService) Start() error {
	s.log.Debug().Msg("autosave service starting")
	if !s.autoload {
		s.nextSaveAt = time.Now().Add(s.interval)
		return nil
	}
	s.emuMu.Lock()
	loaded, err := s.snapshot.Load(s.emu)
	s.emuMu.Unlock()
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to load save state, continuing with fresh state")
	} else if loaded {
		s.log.Info().Msg("save state loaded from disk")
	}
	s.nextSaveAt = time.Now().Add(s.interval)
	return nil
}

func (s *AutosaveService) Tick(now time.Time) error {
	if now.Before(s.nextSaveAt) {
		return nil
	}
	s.nextSaveAt = now.Add(s.interval)
	return s.save()
}

func (s *AutosaveService) save() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.emuMu.Lock()
	err := s.snapshot.Save(s.emu)
	s.emuMu.Unlock()

	if err != nil {
		s.log.Error().Err(err).Msg("failed to save emulator state")
		return err
	}
	s.log.Info().Msg("emulator state saved")
	return nil
}

// Quit blocks until any save already in flight completes, then returns.
func (s *AutosaveService) Quit() {
	s.saveMu.Lock()
	s.saveMu.Unlock()
}
