package runtime

import (
	"fmt"
	"io"
	"os"

	"github.com/ernesto/pkmbridge/internal/emulator"
)

// DefaultMaxBackups is how many rotating ".bak_N" files SnapshotManager
// keeps alongside the canonical snapshot.
const DefaultMaxBackups = 5

// SnapshotManager persists an Emulator's state to disk with rotating,
// crash-safe backups: the canonical file is only ever replaced by an
// atomic rename, so a crash mid-save leaves the last successfully-written
// snapshot intact.
//
// Layout: <path> is the canonical, most-recent snapshot; <path>.bak_1 is
// the previous canonical snapshot, …, <path>.bak_N the oldest kept.
type SnapshotManager struct {
	path       string
	maxBackups int
}

// NewSnapshotManager returns a manager for the canonical snapshot at path.
func NewSnapshotManager(path string) *SnapshotManager {
	return &SnapshotManager{path: path, maxBackups: DefaultMaxBackups}
}

func (m *SnapshotManager) bakPath(n int) string {
	return fmt.Sprintf("%s.bak_%d", m.path, n)
}

func (m *SnapshotManager) tmpPath() string {
	return m.path + ".tmpwrite"
}

// Save rotates backups and atomically writes emu's current state as the new
// canonical snapshot. Steps (a)-(f) follow, in order: delete the oldest
// backup, shift every remaining backup up by one, copy the current
// canonical file to .bak_1, write the new snapshot to a temp file and
// fsync it, then atomically rename it over the canonical path. The temp
// file is removed if any step after it is written fails.
func (m *SnapshotManager) Save(emu emulator.Emulator) error {
	if err := m.deleteOldestBackup(); err != nil {
		return &SaveIOError{Path: m.path, Err: err}
	}
	if err := m.shiftBackups(); err != nil {
		return &SaveIOError{Path: m.path, Err: err}
	}
	if err := m.backupCanonical(); err != nil {
		return &SaveIOError{Path: m.path, Err: err}
	}
	if err := m.writeCanonical(emu); err != nil {
		return &SaveIOError{Path: m.path, Err: err}
	}
	return nil
}

func (m *SnapshotManager) deleteOldestBackup() error {
	err := os.Remove(m.bakPath(m.maxBackups))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (m *SnapshotManager) shiftBackups() error {
	for n := m.maxBackups - 1; n >= 1; n-- {
		src, dst := m.bakPath(n), m.bakPath(n+1)
		if _, err := os.Stat(src); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}
		if err := os.Rename(src, dst); err != nil {
			return err
		}
	}
	return nil
}

func (m *SnapshotManager) backupCanonical() error {
	if _, err := os.Stat(m.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return copyFile(m.path, m.bakPath(1))
}

func (m *SnapshotManager) writeCanonical(emu emulator.Emulator) (err error) {
	tmp := m.tmpPath()
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err = emu.SaveState(f); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmp, m.path); err != nil {
		return err
	}
	return nil
}

// Load reads the canonical snapshot into emu, if it exists. A missing file
// is not an error: callers continue with a fresh emulator state.
func (m *SnapshotManager) Load(emu emulator.Emulator) (loaded bool, err error) {
	f, err := os.Open(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &LoadIOError{Path: m.path, Err: err}
	}
	defer f.Close()

	if err := emu.LoadState(f); err != nil {
		return false, &LoadIOError{Path: m.path, Err: err}
	}
	return true, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
