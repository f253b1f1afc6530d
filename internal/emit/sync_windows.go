//go:build windows

package emit

import (
	"os"

	"golang.org/x/sys/windows"
)

// syncFile flushes f using FlushFileBuffers, which writes all file data and
// metadata. The full parameter is ignored on Windows.
func syncFile(f *os.File, _ bool) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
