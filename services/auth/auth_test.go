package auth

import (
	"context"
	"testing"
	"time"

	userRepo "catering/database/repository/user"
	"catering/models"
	"catering/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededService(t *testing.T) *DefaultAuthService {
	t.Helper()
	svc := &DefaultAuthService{
		Users:    userRepo.NewMemoryUserRepo(),
		Tokens:   NewMemoryTokenStore(),
		Secret:   []byte("test-secret"),
		TokenTTL: time.Hour,
	}
	require.NoError(t, svc.SeedAdmin(context.Background(), "Admin@Example.com", "s3cret-pass", "Head Chef"))
	return svc
}

func TestSignInAndSession(t *testing.T) {
	svc := newSeededService(t)
	ctx := context.Background()

	session, err := svc.SignInWithPassword(ctx, "admin@example.com", "s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	assert.Equal(t, "Head Chef", session.User.DisplayName())

	got, err := svc.GetSession(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, got.User.ID)

	_, err = svc.SignInWithPassword(ctx, "admin@example.com", "wrong")
	assert.ErrorIs(t, err, utils.ErrAuth)
	_, err = svc.SignInWithPassword(ctx, "nobody@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, utils.ErrAuth)
}

func TestSignOutRevokesToken(t *testing.T) {
	svc := newSeededService(t)
	ctx := context.Background()

	session, err := svc.SignInWithPassword(ctx, "admin@example.com", "s3cret-pass")
	require.NoError(t, err)
	require.NoError(t, svc.SignOut(ctx, session.Token))

	_, err = svc.GetSession(ctx, session.Token)
	assert.ErrorIs(t, err, utils.ErrAuth)
}

func TestGetSessionRejectsForeignSignature(t *testing.T) {
	svc := newSeededService(t)
	other := &DefaultAuthService{Users: svc.Users, Tokens: svc.Tokens, Secret: []byte("other"), TokenTTL: time.Hour}

	session, err := other.SignInWithPassword(context.Background(), "admin@example.com", "s3cret-pass")
	require.NoError(t, err)
	_, err = svc.GetSession(context.Background(), session.Token)
	assert.ErrorIs(t, err, utils.ErrAuth)
}

func TestUpdateUser(t *testing.T) {
	svc := newSeededService(t)
	ctx := context.Background()
	session, err := svc.SignInWithPassword(ctx, "admin@example.com", "s3cret-pass")
	require.NoError(t, err)
	id := session.User.ID

	email := "owner@example.com"
	user, err := svc.UpdateUser(ctx, id, models.UserAttributes{
		Email:    &email,
		Metadata: map[string]string{models.MetadataDisplayName: "Owner"},
	})
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", user.Email)
	assert.Equal(t, "Owner", user.DisplayName())

	short := "abc"
	_, err = svc.UpdateUser(ctx, id, models.UserAttributes{Password: &short})
	assert.ErrorIs(t, err, utils.ErrValidation)

	bad := "not-an-email"
	_, err = svc.UpdateUser(ctx, id, models.UserAttributes{Email: &bad})
	assert.ErrorIs(t, err, utils.ErrValidation)

	pw := "longer-password"
	_, err = svc.UpdateUser(ctx, id, models.UserAttributes{Password: &pw})
	require.NoError(t, err)
	_, err = svc.SignInWithPassword(ctx, "owner@example.com", pw)
	require.NoError(t, err)

	_, err = svc.UpdateUser(ctx, "missing", models.UserAttributes{Password: &pw})
	assert.ErrorIs(t, err, utils.ErrAuth)
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	svc := newSeededService(t)
	require.NoError(t, svc.SeedAdmin(context.Background(), "admin@example.com", "another-pass", ""))

	_, err := svc.SignInWithPassword(context.Background(), "admin@example.com", "s3cret-pass")
	require.NoError(t, err)
}

func TestMemoryTokenStoreExpiry(t *testing.T) {
	store := NewMemoryTokenStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "h1", "u1", -time.Second))
	_, err := store.Lookup(ctx, "h1")
	assert.ErrorIs(t, err, ErrTokenUnknown)

	require.NoError(t, store.Save(ctx, "h2", "u2", time.Minute))
	userID, err := store.Lookup(ctx, "h2")
	require.NoError(t, err)
	assert.Equal(t, "u2", userID)
}
