// Package project manages the directory a new project is created in: it
// resolves target paths against the working directory, detects existing
// directories and removes them when an overwrite is accepted.
package project

import (
	"errors"
	"fmt"
)

// Sentinel errors for the project package.
var (
	// ErrDirectoryBusy indicates the directory is held open by another process.
	ErrDirectoryBusy = errors.New("directory is busy")

	// ErrPermissionDenied indicates the directory cannot be removed due to permissions.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrOverwriteFailed indicates removal failed for any other reason.
	ErrOverwriteFailed = errors.New("overwrite failed")

	// ErrInvalidName indicates an empty or unusable project directory name.
	ErrInvalidName = errors.New("invalid project name")
)

// RemoveError describes a failed removal of an existing project directory.
// It unwraps to both the classification sentinel and the underlying cause.
type RemoveError struct {
	Path  string
	Kind  error // one of ErrDirectoryBusy, ErrPermissionDenied, ErrOverwriteFailed
	Cause error
}

// Error implements the error interface.
func (e *RemoveError) Error() string {
	return fmt.Sprintf("remove %s: %v: %v", e.Path, e.Kind, e.Cause)
}

// Unwrap returns the classification sentinel and the cause.
func (e *RemoveError) Unwrap() []error {
	return []error{e.Kind, e.Cause}
}

// UserMessage returns the message shown to the user for this failure.
func (e *RemoveError) UserMessage() string {
	switch e.Kind {
	case ErrDirectoryBusy:
		return "The directory has been opened, please close and try again"
	case ErrPermissionDenied:
		return "Do not have permission to operate this directory"
	default:
		return "Overwrite the directory failed: " + e.Cause.Error()
	}
}
