package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"catering/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloudinarySignedURL(t *testing.T) {
	svc, err := NewCloudinaryStorageService("demo", "key", "secret", "offers-image")
	require.NoError(t, err)

	url, err := svc.SignedURL(context.Background(), "7.png", time.Hour)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://res.cloudinary.com/demo/image/upload/s--"))
	assert.True(t, strings.HasSuffix(url, "/offers-image/7.png"))

	_, err = NewCloudinaryStorageService("demo", "", "secret", "")
	assert.Error(t, err)
}

func TestComputeSHA1(t *testing.T) {
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", computeSHA1("abc"))
}

func TestOpenWithoutCredentialsDisablesUploads(t *testing.T) {
	ctx := context.Background()

	svc, closeFn, err := Open(ctx, config.Config{StorageDriver: "gcs"})
	require.NoError(t, err)
	assert.Nil(t, svc)
	assert.NoError(t, closeFn())

	svc, _, err = Open(ctx, config.Config{StorageDriver: "cloudinary"})
	require.NoError(t, err)
	assert.Nil(t, svc)

	svc, _, err = Open(ctx, config.Config{StorageDriver: "cloudinary", CloudinaryCloudName: "demo", CloudinaryAPIKey: "k", CloudinaryAPISecret: "s"})
	require.NoError(t, err)
	assert.NotNil(t, svc)

	_, _, err = Open(ctx, config.Config{StorageDriver: "s3"})
	assert.Error(t, err)
}

func TestOpenGCSMissingKeyFile(t *testing.T) {
	_, _, err := Open(context.Background(), config.Config{StorageDriver: "gcs", GCSCredentialsFile: "/nonexistent/key.json", StorageBucket: "b"})
	assert.Error(t, err)
}
