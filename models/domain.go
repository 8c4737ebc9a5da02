package models

// Domain is a registered domain name optionally referenced by an invoice.
type Domain struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}
