// Package flock serialises writers of a file through an advisory lock on a
// sibling lock file.
package flock

import (
	"fmt"
	"os"
)

// WithLock holds an exclusive lock on lockPath while fn runs. The lock file
// is removed afterwards.
func WithLock(lockPath string, fn func() error) error {
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("creating lock file: %w", err)
	}
	defer func() { _ = f.Close() }()
	defer func() { _ = os.Remove(lockPath) }()

	if err := lockFd(f.Fd()); err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	defer func() { _ = unlockFd(f.Fd()) }()

	return fn()
}
