package billing

import (
	"fmt"

	billingRepo "hostiva/database/repository/billing"
	"hostiva/models"
)

// InvoiceListingService serves the admin dashboard invoice listing.
type InvoiceListingService interface {
	ListInvoices(limit, offset int64) ([]models.Invoice, error)
}

// DefaultInvoiceListingService is the production implementation.
type DefaultInvoiceListingService struct {
	Repo billingRepo.BillingRepository
}

// ListInvoices returns invoices newest first. The secret verification
// fields never serialize (their json tags hide them), so the listing is
// safe to hand to the dashboard as-is.
func (s *DefaultInvoiceListingService) ListInvoices(limit, offset int64) ([]models.Invoice, error) {
	invoices, err := s.Repo.ListInvoices(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}
