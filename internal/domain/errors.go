package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for record repository conditions
var (
	ErrRecordNotFound          = errors.New("record not found")
	ErrRecordAlreadyExists     = errors.New("record already exists")
	ErrDirectoryUnreadable     = errors.New("directory unreadable")
	ErrMalformedBoundaryHeader = errors.New("malformed boundary header")
	ErrInvalidCustomDatetime   = errors.New("invalid custom datetime")
)

// DirectoryUnreadableError reports a directory that could not be listed
type DirectoryUnreadableError struct {
	Path string
	Err  error
}

func (e *DirectoryUnreadableError) Error() string {
	return fmt.Sprintf("cannot read directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryUnreadableError) Unwrap() error {
	return e.Err
}

func (e *DirectoryUnreadableError) Is(target error) bool {
	return target == ErrDirectoryUnreadable
}

// MalformedBoundaryError reports a boundary declaration without a usable value
type MalformedBoundaryError struct {
	Line int // Zero-based line index
	Text string
}

func (e *MalformedBoundaryError) Error() string {
	return fmt.Sprintf("malformed boundary header at line %d: %q", e.Line, e.Text)
}

func (e *MalformedBoundaryError) Is(target error) bool {
	return target == ErrMalformedBoundaryHeader
}
