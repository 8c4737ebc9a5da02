package billing

import (
	"errors"
	"fmt"
)

// ErrInvoiceNotFound signals that the requested invoice id does not resolve.
var ErrInvoiceNotFound = errors.New("invoice not found")

// CompositionError wraps any unexpected failure while building a document.
// The underlying diagnostic is surfaced to the (admin-only) caller.
type CompositionError struct {
	InvoiceID string
	Err       error
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("failed to compose invoice %s: %v", e.InvoiceID, e.Err)
}

func (e *CompositionError) Unwrap() error {
	return e.Err
}
