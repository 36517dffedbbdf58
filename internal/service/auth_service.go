package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/talentra/hrm-backend/internal/config"
	"github.com/talentra/hrm-backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or revoked token")
)

// TokenStore persists opaque API tokens.
type TokenStore interface {
	Create(ctx context.Context, t *model.AuthToken) error
	GetUserByDigest(ctx context.Context, digest string) (*model.User, error)
	DeleteByUser(ctx context.Context, userID int) error
}

// AuthService handles password hashing and the opaque token lifecycle.
// Tokens carry no expiry; they stay valid until revoked.
type AuthService struct {
	cfg    *config.Config
	tokens TokenStore
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, tokens TokenStore) *AuthService {
	return &AuthService{cfg: cfg, tokens: tokens}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// IssueToken mints a cryptographically random opaque token bound to the
// user and persists its digest. Every call produces a fresh token, so
// concurrent sessions coexist. Returns the plaintext token; it is not
// recoverable afterwards.
func (s *AuthService) IssueToken(ctx context.Context, userID int, name string) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	plaintext := hex.EncodeToString(raw)

	t := &model.AuthToken{
		UserID: userID,
		Name:   name,
		Digest: digest(plaintext),
	}
	if err := s.tokens.Create(ctx, t); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}

	return plaintext, nil
}

// ValidateToken resolves a presented token to its user, or ErrInvalidToken
// if the token is unknown or has been revoked.
func (s *AuthService) ValidateToken(ctx context.Context, plaintext string) (*model.User, error) {
	if plaintext == "" {
		return nil, ErrInvalidToken
	}
	user, err := s.tokens.GetUserByDigest(ctx, digest(plaintext))
	if err != nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}

// RevokeAll deletes every token of the user, ending all of their sessions.
func (s *AuthService) RevokeAll(ctx context.Context, userID int) error {
	return s.tokens.DeleteByUser(ctx, userID)
}

func digest(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
