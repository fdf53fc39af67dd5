package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sumire/portfolio-cms/internal/domain"
)

func newTestAuthService(t *testing.T, ttl time.Duration) *AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt hash: %v", err)
	}

	return NewAuthService(
		BcryptVerifier{Username: "admin", PasswordHash: string(hash)},
		AuthConfig{JWTSecret: "test-secret", TokenTTL: ttl},
	)
}

func TestLogin(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid credentials", username: "admin", password: "correct"},
		{name: "wrong password", username: "admin", password: "wrong", wantErr: domain.ErrInvalidCredentials},
		{name: "wrong username", username: "root", password: "correct", wantErr: domain.ErrInvalidCredentials},
		{name: "empty credentials", wantErr: domain.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.Login(tt.username, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Login() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if token == "" {
				t.Error("Login() returned empty token")
			}
		})
	}
}

func TestVerify(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)

	token, err := svc.Login("admin", "correct")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	username, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if username != "admin" {
		t.Errorf("Verify() username = %q, want %q", username, "admin")
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)

	token, err := svc.Login("admin", "correct")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := svc.Verify(tampered); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("Verify(tampered) error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := newTestAuthService(t, -time.Hour)

	token, err := svc.Login("admin", "correct")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("Verify(expired) error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyForeignToken(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)
	other := NewAuthService(
		BcryptVerifier{Username: "admin", PasswordHash: "x"},
		AuthConfig{JWTSecret: "another-secret", TokenTTL: time.Hour},
	)

	token, err := svc.Login("admin", "correct")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if _, err := other.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("Verify(foreign secret) error = %v, want ErrInvalidToken", err)
	}
}
