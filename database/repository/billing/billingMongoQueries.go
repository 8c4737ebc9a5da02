// File: database/repository/billing/billingMongoQueries.go
package billingRepo

import (
	"fmt"
	"time"

	"hostiva/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetInvoiceBundleByID retrieves an invoice by its unique ID together with
// the related user, service and domain documents.
func (r *MongoBillingRepo) GetInvoiceBundleByID(id string) (*models.InvoiceBundle, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var invoice models.Invoice
	if err := r.invoices.FindOne(ctx, bson.M{"id": id}).Decode(&invoice); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch invoice with id %s: %w", id, err)
	}

	bundle := &models.InvoiceBundle{Invoice: invoice}

	var user models.User
	if err := r.users.FindOne(ctx, bson.M{"id": invoice.UserID}).Decode(&user); err != nil {
		if err != mongo.ErrNoDocuments {
			return nil, fmt.Errorf("failed to fetch user %s for invoice %s: %w", invoice.UserID, id, err)
		}
	} else {
		bundle.User = user
	}

	if invoice.ServiceID != "" {
		var service models.Service
		err := r.services.FindOne(ctx, bson.M{"id": invoice.ServiceID}).Decode(&service)
		if err != nil && err != mongo.ErrNoDocuments {
			return nil, fmt.Errorf("failed to fetch service %s for invoice %s: %w", invoice.ServiceID, id, err)
		}
		if err == nil {
			bundle.Service = &service
		}
	}

	if invoice.DomainID != "" {
		var domain models.Domain
		err := r.domains.FindOne(ctx, bson.M{"id": invoice.DomainID}).Decode(&domain)
		if err != nil && err != mongo.ErrNoDocuments {
			return nil, fmt.Errorf("failed to fetch domain %s for invoice %s: %w", invoice.DomainID, id, err)
		}
		if err == nil {
			bundle.Domain = &domain
		}
	}

	return bundle, nil
}

// GetInvoiceByNumber retrieves an invoice by its human-readable number.
func (r *MongoBillingRepo) GetInvoiceByNumber(number string) (*models.Invoice, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var invoice models.Invoice
	if err := r.invoices.FindOne(ctx, bson.M{"invoiceNumber": number}).Decode(&invoice); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch invoice %s: %w", number, err)
	}
	return &invoice, nil
}

// GetUserByID retrieves a customer record by its unique ID.
func (r *MongoBillingRepo) GetUserByID(id string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.users.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return &user, nil
}

// ListInvoices returns invoices sorted by creation time, newest first.
func (r *MongoBillingRepo) ListInvoices(limit, offset int64) ([]models.Invoice, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(offset).
		SetLimit(limit)

	cursor, err := r.invoices.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, fmt.Errorf("failed to decode invoices: %w", err)
	}
	return invoices, nil
}

// GetAdminByEmail retrieves a back-office account by email.
func (r *MongoBillingRepo) GetAdminByEmail(email string) (*models.Admin, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var admin models.Admin
	if err := r.admins.FindOne(ctx, bson.M{"email": email}).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch admin with email %s: %w", email, err)
	}
	return &admin, nil
}
