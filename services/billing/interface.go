package billing

import (
	"time"

	billingRepo "hostiva/database/repository/billing"
)

// InvoiceDocumentService produces printable invoice documents.
type InvoiceDocumentService interface {
	// ComposeByID renders the invoice with the given id as a PDF and
	// returns the document bytes together with the suggested download
	// file name. Returns ErrInvoiceNotFound when the id does not resolve.
	ComposeByID(id string) ([]byte, string, error)
}

// CompanyInfo carries the issuer identity printed on every invoice.
type CompanyInfo struct {
	Name         string
	Tagline      string
	Address      string
	SupportEmail string
	SupportPhone string
	LogoPath     string
}

// DefaultInvoiceDocumentService is the production implementation.
type DefaultInvoiceDocumentService struct {
	Repo    billingRepo.BillingRepository
	Company CompanyInfo

	// Now supplies the wall clock used for the copyright line. Tests pin
	// it; when nil, time.Now is used.
	Now func() time.Time
}

func (s *DefaultInvoiceDocumentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
