package models

import "time"

// User is a customer account. Authentication and mutation live in the
// customer portal; this service only reads.
type User struct {
	ID          string    `bson:"id" json:"id"`
	FullName    string    `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
	City        string    `bson:"city,omitempty" json:"city,omitempty"`
	Country     string    `bson:"country,omitempty" json:"country,omitempty"`
	CompanyName string    `bson:"companyName,omitempty" json:"companyName,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// DisplayName returns the customer's full name, falling back to the email.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}
