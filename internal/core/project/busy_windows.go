//go:build windows

package project

import (
	"errors"
	"syscall"
)

// errSharingViolation is ERROR_SHARING_VIOLATION: a file in the tree is open
// in another process.
const errSharingViolation = syscall.Errno(32)

func isBusy(err error) bool {
	return errors.Is(err, errSharingViolation) || errors.Is(err, syscall.EBUSY)
}
