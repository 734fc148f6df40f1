package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorKinds(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NotFoundError("getReservation", "reservation not found"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, errors.Is(err, ErrStore))
	assert.Equal(t, http.StatusNotFound, StatusFor(err))
	assert.Equal(t, "reservation not found", PublicMessage(err))

	cause := errors.New("connection refused")
	storeErr := StoreError("listReservations", cause)
	assert.ErrorIs(t, storeErr, cause)
	assert.Equal(t, "listReservations failed", PublicMessage(storeErr))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(storeErr))

	assert.Equal(t, http.StatusBadRequest, StatusFor(ValidationError("x", "bad")))
	assert.Equal(t, http.StatusUnauthorized, StatusFor(AuthError("x", "no", nil)))
	assert.Equal(t, http.StatusBadGateway, StatusFor(UploadError("x", cause)))
	assert.Equal(t, KindStore, KindOf(cause))
}

func TestDates(t *testing.T) {
	d, err := ParseDate("2024-02-29", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", FormatDate(d))

	_, err = ParseDate("2023-02-29", time.UTC)
	assert.Error(t, err)

	first, last := MonthBounds(2024, time.February, time.UTC)
	assert.Equal(t, "2024-02-01", FormatDate(first))
	assert.Equal(t, "2024-02-29", FormatDate(last))

	_, last = MonthBounds(2023, time.December, time.UTC)
	assert.Equal(t, "2023-12-31", FormatDate(last))

	assert.Equal(t, "2024-03-05 00:00:00", StartOfDay(time.Date(2024, 3, 5, 17, 4, 0, 0, time.UTC)).Format("2006-01-02 15:04:05"))
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("s3cret")
	token, err := GenerateToken(secret, "user-1", "a@b.c", "jti-1", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "jti-1", claims.TokenID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)

	_, err = ValidateToken([]byte("other"), token)
	assert.Error(t, err)

	expired, err := GenerateToken(secret, "user-1", "a@b.c", "jti-2", -time.Minute)
	require.NoError(t, err)
	_, err = ValidateToken(secret, expired)
	assert.Error(t, err)

	assert.Len(t, HashToken(token), 64)
	assert.NotEqual(t, HashToken(token), HashToken(expired))
}
