// File: utils/auth_session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const AdminSessionPrefix = "adminSession:"

// AdminSessionTTL bounds how long an admin token stays valid server-side.
const AdminSessionTTL = 12 * time.Hour

// AdminSession tracks a live back-office sign-in. The key is the SHA-256
// hash of the issued token, so a session can be revoked without storing the
// token itself.
type AdminSession struct {
	SessionID     string    `json:"sessionId"`
	AdminID       string    `json:"adminId"`
	Email         string    `json:"email"`
	IP            string    `json:"ip,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// SaveAdminSession saves the admin session in Redis with a TTL.
func SaveAdminSession(client *redis.Client, tokenHash string, session AdminSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal admin session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, AdminSessionPrefix+tokenHash, data, AdminSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save admin session: %w", err)
	}
	return nil
}

// GetAdminSession retrieves the admin session from Redis.
func GetAdminSession(client *redis.Client, tokenHash string) (*AdminSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, AdminSessionPrefix+tokenHash).Result()
	if err != nil {
		return nil, err
	}
	var session AdminSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal admin session: %w", err)
	}
	return &session, nil
}

// DeleteAdminSession removes an admin session from Redis.
func DeleteAdminSession(client *redis.Client, tokenHash string) error {
	ctx := context.Background()
	return client.Del(ctx, AdminSessionPrefix+tokenHash).Err()
}
