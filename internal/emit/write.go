package emit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joshuapare/slabclass/internal/logger"
)

// WriteFile replaces path with src. The data is written to a temporary file
// in the same directory, synced to disk, and renamed over path, so readers
// see either the old file or the complete new one. fullSync requests a
// flush past the drive cache where the platform distinguishes one.
func WriteFile(path string, src []byte, fullSync bool) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".tmp*")
	if err != nil {
		return fmt.Errorf("emit: create temp for %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if _, err = f.Write(src); err != nil {
		return fmt.Errorf("emit: write %s: %w", tmp, err)
	}
	if err = syncFile(f, fullSync); err != nil {
		return fmt.Errorf("emit: sync %s: %w", tmp, err)
	}
	if err = f.Chmod(0o644); err != nil {
		return fmt.Errorf("emit: chmod %s: %w", tmp, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("emit: close %s: %w", tmp, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("emit: rename %s: %w", tmp, err)
	}

	logger.Debug("emit: wrote file", "path", path, "bytes", len(src))
	return nil
}
