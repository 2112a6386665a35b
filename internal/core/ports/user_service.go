package ports

import (
	"context"

	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/domain"
)

// SignupInput carries the data needed to register a new account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Image    string
}

// AuthResult is returned by signup and login: the identity plus a freshly
// minted token the client presents on subsequent requests.
type AuthResult struct {
	UserID string
	Email  string
	Token  string
}

// UserService defines account use-cases.
type UserService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
