//go:build darwin

package emit

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes f's data to disk.
//
// On macOS, if full is true, use F_FULLFSYNC so the data reaches the
// physical disk, not just the drive cache. Otherwise, use regular fsync.
func syncFile(f *os.File, full bool) error {
	if full {
		_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
		return err
	}
	// macOS doesn't have fdatasync
	return unix.Fsync(int(f.Fd()))
}
