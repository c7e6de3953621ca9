package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"vattours/server/internal/constants"
)

// SessionData is the redis-side record backing an issued session token.
// Deleting it revokes the token before its JWT expiry.
type SessionData struct {
	SessionID string         `json:"session_id"`
	UserID    string         `json:"user_id"`
	Role      constants.Role `json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// SessionService mints and validates session tokens. The identity provider
// handshake happens upstream; this service only manages the resulting session.
type SessionService struct {
	secretKey []byte
	redis     *redis.Client
	ttl       time.Duration
}

// NewSessionService creates a session service over an existing redis client
func NewSessionService(secretKey []byte, redisClient *redis.Client, ttl time.Duration) *SessionService {
	return &SessionService{
		secretKey: secretKey,
		redis:     redisClient,
		ttl:       ttl,
	}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// CreateSession stores a session record and returns its signed token
func (s *SessionService) CreateSession(ctx context.Context, userID string, role constants.Role) (string, *SessionData, error) {
	data := &SessionData{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Role:      role,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(s.ttl),
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.redis.Set(ctx, sessionKey(data.SessionID), payload, s.ttl).Err(); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role.String(),
		"sid":  data.SessionID,
		"exp":  data.ExpiresAt.Unix(),
		"iat":  data.CreatedAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, data, nil
}

// ValidateToken parses a session token and checks the backing record
func (s *SessionService) ValidateToken(ctx context.Context, tokenString string) (*SessionData, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sessionID, ok := (*claims)["sid"].(string)
	if !ok {
		return nil, errors.New("missing or invalid sid claim")
	}

	payload, err := s.redis.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, errors.New("session expired or revoked")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var data SessionData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if time.Now().After(data.ExpiresAt) {
		return nil, errors.New("session expired")
	}

	return &data, nil
}

// RevokeSession drops the backing record, invalidating the token immediately
func (s *SessionService) RevokeSession(ctx context.Context, sessionID string) error {
	if err := s.redis.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
