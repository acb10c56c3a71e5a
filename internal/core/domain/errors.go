package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotCompoundFile is returned when the input is not an OLE/CFB container
	ErrNotCompoundFile = errors.New("not a compound file")

	// ErrMissingPayload is returned when an attachment has no 3701 data stream
	ErrMissingPayload = errors.New("attachment has no data stream (3701)")

	// ErrNoFilename is returned when neither 3704 nor 3707 is present
	ErrNoFilename = errors.New("attachment has no filename (3704/3707)")

	// ErrInvalidUTF16 is returned when a filename property is not valid UTF-16
	ErrInvalidUTF16 = errors.New("invalid UTF-16 text")
)

// AttachmentError reports a failure tied to a single attachment.
type AttachmentError struct {
	Index int
	Name  string       // Best available name, or a placeholder
	Code  PropertyCode // Offending property, empty if not property specific
	Err   error
}

// NewAttachmentError builds an AttachmentError naming the attachment by its
// long name, short name or position, in that order.
func NewAttachmentError(index int, long, short string, code PropertyCode, err error) *AttachmentError {
	return &AttachmentError{
		Index: index,
		Name:  displayName(index, long, short),
		Code:  code,
		Err:   err,
	}
}

func (e *AttachmentError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("attachment %q: property %s: %v", e.Name, e.Code, e.Err)
	}
	return fmt.Sprintf("attachment %q: %v", e.Name, e.Err)
}

func (e *AttachmentError) Unwrap() error {
	return e.Err
}
