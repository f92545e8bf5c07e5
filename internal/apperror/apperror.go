package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownBlockType = errors.New("unknown block type")
	ErrNotFound         = errors.New("not found")
	ErrDocumentNotFound = errors.New("document not found")
	ErrVersionNotFound  = errors.New("version not found")
	ErrRestoreFailed    = errors.New("restore failed")
	ErrValidation       = errors.New("validation error")
)

type AppError struct {
	Err     error  // sentinel for errors.Is
	Message string // human-readable message
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// UnknownBlockType is raised by the registry on a lookup miss. It is a caller
// error and is never retried.
func UnknownBlockType(tag string) *AppError {
	return &AppError{
		Err:     ErrUnknownBlockType,
		Message: fmt.Sprintf("unknown block type %q", tag),
	}
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func DocumentNotFound(id string) *AppError {
	return &AppError{
		Err:     ErrDocumentNotFound,
		Message: fmt.Sprintf("document not found with id %s", id),
	}
}

func VersionNotFound(documentId, versionId string) *AppError {
	return &AppError{
		Err:     ErrVersionNotFound,
		Message: fmt.Sprintf("version %s not found on document %s", versionId, documentId),
	}
}

// RestoreFailed wraps the persistence error hit during restore's write-back
// phase. The document is left in whatever partial state the persist left it.
func RestoreFailed(documentId string, cause error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %w", ErrRestoreFailed, cause),
		Message: fmt.Sprintf("restore of document %s failed: %v", documentId, cause),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}
