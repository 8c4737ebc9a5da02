package models

import "time"

// Invoice statuses. The billing subsystem may introduce more; the composer
// and verifier only care about "paid".
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// Invoice is the authoritative billing record. It is written by the billing
// subsystem and only ever read here.
type Invoice struct {
	ID            string    `bson:"id" json:"id"`
	InvoiceNumber string    `bson:"invoiceNumber" json:"invoiceNumber"` // e.g. INV-1717171717-42, immutable
	Amount        float64   `bson:"amount" json:"amount"`               // FCFA, displayed with zero decimals
	Status        string    `bson:"status" json:"status"`
	IsFinal       bool      `bson:"isFinal" json:"isFinal"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`

	// Opaque verification codes set once at issuance time. Compared
	// case-insensitively against user input.
	VerificationKey string `bson:"verificationKey" json:"-"`
	PinHash         string `bson:"pinHash" json:"-"`
	Signature       string `bson:"signature" json:"-"`

	UserID    string `bson:"userId" json:"userId"`
	ServiceID string `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	DomainID  string `bson:"domainId,omitempty" json:"domainId,omitempty"`
}

// IsPaidForDisplay reports whether the invoice should carry the paid badge.
func (inv *Invoice) IsPaidForDisplay() bool {
	return inv.IsFinal || inv.Status == InvoiceStatusPaid
}

// HasVerificationCodes reports whether at least one of the three codes is set.
func (inv *Invoice) HasVerificationCodes() bool {
	return inv.VerificationKey != "" || inv.PinHash != "" || inv.Signature != ""
}

// InvoiceBundle is the consistent snapshot read per composer invocation:
// one invoice joined with its customer and optional service and domain.
type InvoiceBundle struct {
	Invoice Invoice  `json:"invoice"`
	User    User     `json:"user"`
	Service *Service `json:"service,omitempty"`
	Domain  *Domain  `json:"domain,omitempty"`
}

// InvoiceSummary is the minimal public projection returned on a successful
// verification. It must never carry credentials or the secret codes.
type InvoiceSummary struct {
	InvoiceNumber string  `json:"invoiceNumber"`
	Amount        float64 `json:"amount"`
	ClientName    string  `json:"clientName"`
}
