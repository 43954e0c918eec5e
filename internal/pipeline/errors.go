// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"errors"
	"fmt"
	"syscall"
)

// ValidationError reports a malformed request. Fatal: no output is produced.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + e.Reason
}

// ErrEmptyDocumentSet is returned when zero documents survive decoding.
var ErrEmptyDocumentSet = errors.New("no documents survived decoding")

// DocumentError reports one document that could not be decoded. Recoverable:
// the document is skipped and recorded; the batch continues.
type DocumentError struct {
	Document string
	Err      error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %s: %v", e.Document, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// TransientError marks a collaborator fault worth retrying, such as a file
// lock. Decode faults that are not transient are never retried.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return "transient: " + e.Err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is worth retrying: marked transient
// anywhere in its chain, or a lock-style OS fault from opening the file.
// Malformed-content errors are never transient.
func IsTransient(err error) bool {
	var t *TransientError
	if errors.As(err, &t) {
		return true
	}
	return errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EBUSY)
}
