//go:build !windows

package util

// IsRunFromGUI reports whether the process was started from a file manager rather than a shell.
// Only Windows needs to know.
func IsRunFromGUI() bool {
	return false
}
