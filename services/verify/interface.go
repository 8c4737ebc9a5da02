package verify

import (
	billingRepo "hostiva/database/repository/billing"
	"hostiva/models"
)

// VerifyRequest carries the five caller-supplied strings. All fields are
// mandatory.
type VerifyRequest struct {
	InvoiceNumber   string `json:"invoiceNumber" form:"invoiceNumber"`
	VerificationKey string `json:"key" form:"key"`
	Email           string `json:"email" form:"email"`
	PinHash         string `json:"pinHash" form:"pinHash"`
	Signature       string `json:"signature" form:"signature"`
}

// VerificationResult is the tagged outcome of a verification attempt. On
// success Invoice carries the minimal public projection; on failure Message
// carries a deliberately non-specific explanation.
type VerificationResult struct {
	Valid   bool                   `json:"valid"`
	Invoice *models.InvoiceSummary `json:"invoice,omitempty"`
	Message string                 `json:"message,omitempty"`
}

// InvoiceVerificationService checks a caller-supplied code bundle against a
// stored invoice.
type InvoiceVerificationService interface {
	Verify(req VerifyRequest) (VerificationResult, error)
}

// DefaultInvoiceVerificationService is the production implementation.
type DefaultInvoiceVerificationService struct {
	Repo billingRepo.BillingRepository
}
