package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/seobuddy/seobuddy-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = user.Email
	}
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "Alice@SeoBuddy.io", "Alice", "pass12345", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Email != "alice@seobuddy.io" {
		t.Fatalf("expected lowercased email, got %s", user.Email)
	}
	if user.PasswordHash == "pass12345" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass12345")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != "" {
		t.Fatalf("expected role left unset at creation, got %q", user.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "", "", "pass", ""); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	if _, err := svc.Register(context.Background(), "bob@seobuddy.io", "Bob", "pass", "SUPERUSER"); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for bad role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "bob@seobuddy.io", "Bob", "pass1234", "")
	if _, err := svc.Register(context.Background(), "bob@seobuddy.io", "Bob", "pass5678", ""); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "bob@seobuddy.io", "Bob", "s3cret99", domain.RoleAdmin); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, claim, err := svc.Login(context.Background(), "bob@seobuddy.io", "s3cret99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if claim == nil || claim.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claim: %+v", claim)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role %s in token, got %v", domain.RoleAdmin, claims["role"])
	}
	if claims["sub"] == "" {
		t.Fatalf("expected sub claim in token")
	}
}

func TestAuthService_Login_CaseInsensitiveEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "carol@seobuddy.io", "Carol", "goodpass", "")
	if _, _, err := svc.Login(context.Background(), "CAROL@SeoBuddy.IO", "goodpass"); err != nil {
		t.Fatalf("expected login with differently cased email to succeed, got %v", err)
	}
}

// Wrong password and unknown email must be indistinguishable: same error
// value, no way for a caller to probe which addresses exist.
func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "dave@seobuddy.io", "Dave", "goodpass", "")

	_, _, wrongPass := svc.Login(context.Background(), "dave@seobuddy.io", "badpass")
	_, _, unknown := svc.Login(context.Background(), "ghost@seobuddy.io", "whatever")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if unknown != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknown)
	}
	if wrongPass != unknown {
		t.Fatalf("failure modes are distinguishable: %v vs %v", wrongPass, unknown)
	}
}

func TestAuthService_Login_RoleNormalizedInClaim(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	// Role deliberately left empty at registration.
	_, _ = svc.Register(context.Background(), "erin@seobuddy.io", "Erin", "goodpass", "")

	_, claim, err := svc.Login(context.Background(), "erin@seobuddy.io", "goodpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if claim.Role != domain.RoleUser {
		t.Fatalf("expected absent role to collapse to USER, got %q", claim.Role)
	}
}
