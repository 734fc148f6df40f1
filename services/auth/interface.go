package auth

import (
	"context"
	"time"

	userRepo "catering/database/repository/user"
	"catering/models"
)

// MinPasswordLength is enforced whenever a password is set.
const MinPasswordLength = 8

// AuthService is the staff identity provider.
type AuthService interface {
	SignInWithPassword(ctx context.Context, email, password string) (*models.Session, error)
	GetSession(ctx context.Context, token string) (*models.Session, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, attrs models.UserAttributes) (*models.User, error)
	SignOut(ctx context.Context, token string) error
	SeedAdmin(ctx context.Context, email, password, displayName string) error
}

// DefaultAuthService issues HS256 session tokens for bcrypt-verified users.
type DefaultAuthService struct {
	Users    userRepo.UserRepository
	Tokens   TokenStore
	Secret   []byte
	TokenTTL time.Duration
}
