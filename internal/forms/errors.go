package forms

import (
	"errors"
	"fmt"

	"trackdesk/internal/catalog"
)

// ValidationError reports the first field that failed validation. It is
// user-recoverable: the caller fixes the named field and resubmits. No store
// call happens once validation fails.
type ValidationError struct {
	Kind   catalog.Kind
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: field %q: %s", e.Kind, e.Field, e.Reason)
}

// AttachmentError reports a failed media persist. The whole commit aborts,
// including already-validated field values; nothing is written to the store.
type AttachmentError struct {
	Field string
	Err   error
}

func (e *AttachmentError) Error() string {
	return fmt.Sprintf("attachment %q: %v", e.Field, e.Err)
}

func (e *AttachmentError) Unwrap() error {
	return e.Err
}

// ErrNoPendingDeletion indicates a confirm or cancel arrived without a
// preceding delete request for the kind.
var ErrNoPendingDeletion = errors.New("no pending deletion")

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
