package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"catering/database"
	"catering/models"
	"catering/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

func (s *DefaultAuthService) ttl() time.Duration {
	if s.TokenTTL <= 0 {
		return 12 * time.Hour
	}
	return s.TokenTTL
}

// SignInWithPassword verifies the password and registers a fresh session token.
func (s *DefaultAuthService) SignInWithPassword(ctx context.Context, email, password string) (*models.Session, error) {
	const op = "signIn"
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, utils.ValidationError(op, "email and password are required")
	}

	user, err := s.Users.GetByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return nil, utils.AuthError(op, "invalid email or password", nil)
	}
	if err != nil {
		utils.GetLogger().Error("signIn: failed to fetch user", zap.Error(err))
		return nil, utils.StoreError(op, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, utils.AuthError(op, "invalid email or password", nil)
	}

	token, err := utils.GenerateToken(s.Secret, user.ID, user.Email, uuid.New().String(), s.ttl())
	if err != nil {
		return nil, utils.AuthError(op, "failed to issue token", err)
	}
	if err := s.Tokens.Save(ctx, utils.HashToken(token), user.ID, s.ttl()); err != nil {
		return nil, utils.AuthError(op, "failed to store session", err)
	}

	user.LastLogin = time.Now()
	if err := s.Users.Update(ctx, user); err != nil {
		utils.GetLogger().Warn("signIn: failed to record last login", zap.String("userId", user.ID), zap.Error(err))
	}

	utils.GetLogger().Info("User signed in", zap.String("userId", user.ID))
	return &models.Session{Token: token, ExpiresAt: time.Now().Add(s.ttl()), User: *user}, nil
}

// GetSession validates the token signature, expiry and registration.
func (s *DefaultAuthService) GetSession(ctx context.Context, token string) (*models.Session, error) {
	const op = "getSession"
	claims, err := utils.ValidateToken(s.Secret, token)
	if err != nil {
		return nil, utils.AuthError(op, "invalid or expired token", err)
	}
	userID, err := s.Tokens.Lookup(ctx, utils.HashToken(token))
	if err != nil || userID != claims.Subject {
		return nil, utils.AuthError(op, "session has been revoked", err)
	}
	user, err := s.Users.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, utils.AuthError(op, "user no longer exists", err)
	}
	return &models.Session{Token: token, ExpiresAt: claims.ExpiresAt, User: *user}, nil
}

func (s *DefaultAuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, utils.AuthError("getUser", "user not found", err)
	}
	return user, nil
}

// UpdateUser applies top-level attributes and merges metadata entries.
func (s *DefaultAuthService) UpdateUser(ctx context.Context, id string, attrs models.UserAttributes) (*models.User, error) {
	const op = "updateUser"
	user, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, utils.AuthError(op, "user not found", err)
	}

	if attrs.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*attrs.Email))
		if err := validate.Var(email, "required,email"); err != nil {
			return nil, utils.ValidationError(op, "email is invalid")
		}
		if other, err := s.Users.GetByEmail(ctx, email); err == nil && other.ID != user.ID {
			return nil, utils.ValidationError(op, "email is already in use")
		}
		user.Email = email
	}
	if attrs.Password != nil {
		if len(*attrs.Password) < MinPasswordLength {
			return nil, utils.ValidationError(op, "password must be at least 8 characters long")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*attrs.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, utils.AuthError(op, "failed to hash password", err)
		}
		user.PasswordHash = string(hash)
	}
	if len(attrs.Metadata) > 0 {
		if user.Metadata == nil {
			user.Metadata = make(map[string]string, len(attrs.Metadata))
		}
		for k, v := range attrs.Metadata {
			user.Metadata[k] = v
		}
	}

	if err := s.Users.Update(ctx, user); err != nil {
		return nil, utils.AuthError(op, "failed to update user", err)
	}
	return user, nil
}

func (s *DefaultAuthService) SignOut(ctx context.Context, token string) error {
	if err := s.Tokens.Revoke(ctx, utils.HashToken(token)); err != nil {
		return utils.AuthError("signOut", "failed to revoke session", err)
	}
	return nil
}

// SeedAdmin creates the administrator account unless a user with that email exists.
func (s *DefaultAuthService) SeedAdmin(ctx context.Context, email, password, displayName string) error {
	if email == "" || password == "" {
		return nil
	}
	_, err := s.Users.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if displayName != "" {
		user.Metadata = map[string]string{models.MetadataDisplayName: displayName}
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return err
	}
	utils.GetLogger().Info("Default admin account created", zap.String("email", user.Email))
	return nil
}
