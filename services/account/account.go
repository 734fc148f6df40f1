package account

import (
	"context"
	"errors"
	"sort"
	"strings"

	"catering/models"
	"catering/services/auth"
	"catering/utils"

	"go.uber.org/zap"
)

// NotSet is shown for a credential the provider has no value for.
const NotSet = "Not Set"

// credentialField says where an editable account field lives on the provider.
type credentialField struct {
	// metadataKey is set for fields stored in user metadata; others are top-level.
	metadataKey string
	apply       func(attrs *models.UserAttributes, value string)
}

var credentialFields = map[string]credentialField{
	"display_name": {metadataKey: models.MetadataDisplayName},
	"email": {apply: func(attrs *models.UserAttributes, value string) {
		attrs.Email = &value
	}},
	"password": {apply: func(attrs *models.UserAttributes, value string) {
		attrs.Password = &value
	}},
}

// Fields lists the editable account fields.
func Fields() []string {
	names := make([]string, 0, len(credentialFields))
	for name := range credentialFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type AccountService interface {
	UpdateField(ctx context.Context, userID, field, value string) (*models.Credentials, error)
	GetCredentials(ctx context.Context, userID string) (*models.Credentials, error)
}

// DefaultAccountService edits the signed-in user's credentials through the auth provider.
type DefaultAccountService struct {
	Auth auth.AuthService
}

func credentialsOf(u *models.User) *models.Credentials {
	creds := &models.Credentials{FullName: NotSet, Email: u.Email}
	if name := u.DisplayName(); name != "" {
		creds.FullName = name
	}
	return creds
}

func (s *DefaultAccountService) UpdateField(ctx context.Context, userID, field, value string) (*models.Credentials, error) {
	const op = "updateUserCredentials"
	spec, ok := credentialFields[field]
	if !ok {
		return nil, utils.ValidationError(op, "unknown field "+field+"; expected one of "+strings.Join(Fields(), ", "))
	}

	var attrs models.UserAttributes
	if spec.metadataKey != "" {
		attrs.Metadata = map[string]string{spec.metadataKey: strings.TrimSpace(value)}
	} else {
		spec.apply(&attrs, value)
	}

	user, err := s.Auth.UpdateUser(ctx, userID, attrs)
	if err != nil {
		if errors.Is(err, utils.ErrValidation) {
			return nil, err
		}
		utils.GetLogger().Error("Credential update failed", zap.String("field", field), zap.Error(err))
		return nil, utils.AuthError(op, "failed to update "+field, err)
	}
	return credentialsOf(user), nil
}

// GetCredentials returns best-effort data; on failure the defaults come back with the error.
func (s *DefaultAccountService) GetCredentials(ctx context.Context, userID string) (*models.Credentials, error) {
	user, err := s.Auth.GetUser(ctx, userID)
	if err != nil {
		return &models.Credentials{FullName: NotSet}, utils.AuthError("getUserCredentials", "failed to load account", err)
	}
	return credentialsOf(user), nil
}
