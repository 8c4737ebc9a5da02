package billingRepo

import "hostiva/models"

// BillingRepository exposes read access to the billing collections. All
// writes happen in the billing/provisioning subsystems; this service never
// mutates invoices, users, services or domains.
//
// Lookups return (nil, nil) when no document matches.
type BillingRepository interface {
	// GetInvoiceBundleByID resolves an invoice by its internal id together
	// with its customer and optional service/domain records.
	GetInvoiceBundleByID(id string) (*models.InvoiceBundle, error)

	// GetInvoiceByNumber resolves an invoice by its human-readable number.
	// The match is exact (invoice numbers are opaque generated identifiers).
	GetInvoiceByNumber(number string) (*models.Invoice, error)

	// GetUserByID resolves a customer record.
	GetUserByID(id string) (*models.User, error)

	// ListInvoices returns invoices sorted by creation time, newest first.
	ListInvoices(limit, offset int64) ([]models.Invoice, error)

	// GetAdminByEmail resolves a back-office account for sign-in.
	GetAdminByEmail(email string) (*models.Admin, error)
}
