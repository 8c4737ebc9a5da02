package admin

import (
	billingRepo "hostiva/database/repository/billing"

	"github.com/go-redis/redis/v8"
)

// AuthResult is returned on a successful admin sign-in.
type AuthResult struct {
	Token    string `json:"token"`
	AdminID  string `json:"adminId"`
	Email    string `json:"email"`
	FullName string `json:"fullName,omitempty"`
}

// AdminAuthService authenticates back-office accounts and manages their
// revocable sessions.
type AdminAuthService interface {
	SignIn(email, password, ip string) (*AuthResult, error)
	SignOut(token string) error
}

// DefaultAdminAuthService is the production implementation.
type DefaultAdminAuthService struct {
	Repo      billingRepo.BillingRepository
	AuthCache *redis.Client
}
