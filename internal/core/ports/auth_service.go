package ports

import (
	"context"

	"github.com/seobuddy/seobuddy-api/internal/core/domain"
)

// AuthService verifies credentials and issues session tokens.
type AuthService interface {
	// Register creates an account. An empty role defaults to USER.
	Register(ctx context.Context, email, name, password, role string) (*domain.User, error)
	// Login authenticates email/password and returns a signed session token
	// with the claim it embeds. Unknown email and wrong password are
	// indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, *domain.SessionClaim, error)
}
