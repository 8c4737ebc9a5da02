package admin

import (
	"errors"
	"fmt"
	"time"

	"hostiva/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for a wrong email or password. The two
// cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid email or password")

// SignIn authenticates an admin account, issues a JWT and records a
// revocable session keyed by the token hash.
func (s *DefaultAdminAuthService) SignIn(email, password, ip string) (*AuthResult, error) {
	logger := utils.GetLogger()

	account, err := s.Repo.GetAdminByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin account: %w", err)
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		logger.Warn("admin sign-in rejected", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAdminToken(account.ID, account.Email, utils.AdminSessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate admin token: %w", err)
	}

	session := utils.AdminSession{
		SessionID: uuid.NewString(),
		AdminID:   account.ID,
		Email:     account.Email,
		IP:        ip,
		CreatedAt: time.Now(),
	}
	if err := utils.SaveAdminSession(s.AuthCache, utils.HashToken(token), session); err != nil {
		return nil, fmt.Errorf("failed to persist admin session: %w", err)
	}

	logger.Info("admin signed in",
		zap.String("adminID", account.ID), zap.String("sessionID", session.SessionID))
	return &AuthResult{
		Token:    token,
		AdminID:  account.ID,
		Email:    account.Email,
		FullName: account.FullName,
	}, nil
}

// SignOut revokes the session bound to the given token.
func (s *DefaultAdminAuthService) SignOut(token string) error {
	if err := utils.DeleteAdminSession(s.AuthCache, utils.HashToken(token)); err != nil {
		return fmt.Errorf("failed to revoke admin session: %w", err)
	}
	return nil
}
