package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sumire/portfolio-cms/internal/domain"
)

// CredentialVerifier checks a login attempt against the configured admin
// credential. There is a single admin identity; any verified login grants
// full write access.
type CredentialVerifier interface {
	Verify(username, password string) error
}

// BcryptVerifier verifies the admin credential against a bcrypt password
// hash from configuration.
type BcryptVerifier struct {
	Username     string
	PasswordHash string
}

// Verify compares the username in constant time and the password against
// the stored bcrypt hash.
func (v BcryptVerifier) Verify(username, password string) error {
	nameOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(v.PasswordHash), []byte(password))
	if !nameOK || passErr != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// AuthConfig holds token configuration.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// AuthService handles admin authentication: credential verification and
// JWT issue/verify. Tokens are not revocable; logout is a client-side
// discard and an issued token stays valid until its expiry.
type AuthService struct {
	creds     CredentialVerifier
	jwtSecret []byte
	ttl       time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(creds CredentialVerifier, cfg AuthConfig) *AuthService {
	return &AuthService{
		creds:     creds,
		jwtSecret: []byte(cfg.JWTSecret),
		ttl:       cfg.TokenTTL,
	}
}

// Login verifies the credential pair and issues a signed token embedding
// the username.
func (s *AuthService) Login(username, password string) (string, error) {
	if err := s.creds.Verify(username, password); err != nil {
		return "", err
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates a token's signature and expiry and returns the embedded
// username.
func (s *AuthService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", domain.ErrInvalidToken
	}

	username, _ := claims["sub"].(string)
	if username == "" {
		return "", domain.ErrInvalidToken
	}
	return username, nil
}
