package billingRepo

import (
	"context"
	"fmt"
	"time"

	"hostiva/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBillingRepo implements BillingRepository using MongoDB.
type MongoBillingRepo struct {
	invoices *mongo.Collection
	users    *mongo.Collection
	services *mongo.Collection
	domains  *mongo.Collection
	admins   *mongo.Collection
}

// NewMongoBillingRepo creates a new instance of BillingRepository using MongoDB.
func NewMongoBillingRepo() BillingRepository {
	db := database.MongoClient.Database("hostiva")
	repo := &MongoBillingRepo{
		invoices: db.Collection("invoices"),
		users:    db.Collection("users"),
		services: db.Collection("services"),
		domains:  db.Collection("domains"),
		admins:   db.Collection("admins"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoBillingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	invoiceModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "invoiceNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	if _, err := r.invoices.Indexes().CreateMany(ctx, invoiceModels); err != nil {
		return fmt.Errorf("failed to create invoice indexes: %w", err)
	}

	userModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.users.Indexes().CreateMany(ctx, userModels); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	adminModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.admins.Indexes().CreateMany(ctx, adminModels); err != nil {
		return fmt.Errorf("failed to create admin indexes: %w", err)
	}
	return nil
}
