//go:build windows

package flock

// Windows has no flock; the lock file's existence is the only guard.
func lockFd(fd uintptr) error {
	return nil
}

func unlockFd(fd uintptr) error {
	return nil
}
