package application

import (
	"errors"
	"fmt"

	"github.com/cixtor/interview/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrRecordNotFound          = domain.ErrRecordNotFound
	ErrRecordAlreadyExists     = domain.ErrRecordAlreadyExists
	ErrDirectoryUnreadable     = domain.ErrDirectoryUnreadable
	ErrMalformedBoundaryHeader = domain.ErrMalformedBoundaryHeader
	ErrInvalidCustomDatetime   = domain.ErrInvalidCustomDatetime
	ErrMissingCommand          = errors.New("missing command")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MissingArgumentError reports a command invoked without a required argument
type MissingArgumentError struct {
	Command  string
	Argument string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%s: missing required argument <%s>", e.Command, e.Argument)
}

func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingCommand
}
