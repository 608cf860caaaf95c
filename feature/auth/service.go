package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"garment-stock/core/token"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrLoginDisabled      = errors.New("login is not configured")
)

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Service verifies credentials against the configured account.
type Service struct {
	cfg    Config
	tokens *token.Issuer
	logger *zap.Logger
}

// NewService creates the auth service.
func NewService(cfg Config, tokens *token.Issuer, logger *zap.Logger) *Service {
	return &Service{cfg: cfg, tokens: tokens, logger: logger}
}

// Enabled reports whether login can succeed at all.
func (s *Service) Enabled() bool {
	return s.cfg.Username != "" && s.cfg.PasswordHash != "" && s.tokens.Enabled()
}

// Login checks the credentials and issues a token.
func (s *Service) Login(username, password string) (*LoginResponse, error) {
	if !s.Enabled() {
		return nil, ErrLoginDisabled
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Username)) == 1
	// Always run bcrypt so a wrong username costs the same as a wrong password.
	passErr := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password))
	if !userOK || passErr != nil {
		s.logger.Warn("Login rejected", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	signed, expires, err := s.tokens.Issue(username)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Login succeeded", zap.String("username", username))
	return &LoginResponse{Token: signed, ExpiresAt: expires}, nil
}

// HashPassword returns the bcrypt hash to store in auth.password_hash.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
