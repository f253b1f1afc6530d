//go:build linux || freebsd

package emit

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes f's data to disk.
//
// On Linux/FreeBSD, fdatasync() provides sufficient guarantees.
// The full parameter is ignored on Linux/FreeBSD.
func syncFile(f *os.File, _ bool) error {
	return unix.Fdatasync(int(f.Fd()))
}
