//go:build !windows

package flock

import "syscall"

func lockFd(fd uintptr) error {
	return syscall.Flock(int(fd), syscall.LOCK_EX)
}

func unlockFd(fd uintptr) error {
	return syscall.Flock(int(fd), syscall.LOCK_UN)
}
