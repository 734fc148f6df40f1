package storage

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorageService implements StorageService using Cloudinary.
// Object names become public IDs inside the configured folder.
type CloudinaryStorageService struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiSecret string
	folder    string
}

// NewCloudinaryStorageService creates a Cloudinary client from API credentials.
func NewCloudinaryStorageService(cloudName, apiKey, apiSecret, folder string) (*CloudinaryStorageService, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorageService{
		cld:       cld,
		cloudName: cloudName,
		apiSecret: apiSecret,
		folder:    folder,
	}, nil
}

func (s *CloudinaryStorageService) publicID(name string) string {
	if s.folder == "" {
		return name
	}
	return s.folder + "/" + name
}

// Upload with overwrite false keeps an existing asset; Cloudinary reports no error for it.
func (s *CloudinaryStorageService) Upload(ctx context.Context, name string, data []byte, _ string, overwrite bool) error {
	params := uploader.UploadParams{
		PublicID:  s.publicID(name),
		Overwrite: api.Bool(overwrite),
	}
	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), params)
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}
	if result.Error.Message != "" {
		return fmt.Errorf("failed to upload %s: %s", name, result.Error.Message)
	}
	return nil
}

// SignedURL builds an expiring delivery URL signed with SHA-1 over the expiry and public ID.
func (s *CloudinaryStorageService) SignedURL(_ context.Context, name string, ttl time.Duration) (string, error) {
	publicID := s.publicID(name)
	expiresAt := time.Now().Add(ttl).Unix()
	stringToSign := fmt.Sprintf("expires_at=%d&public_id=%s%s", expiresAt, publicID, s.apiSecret)
	signature := computeSHA1(stringToSign)
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/s--%s--/expires_%d/%s", s.cloudName, signature[:8], expiresAt, publicID), nil
}

func (s *CloudinaryStorageService) Delete(ctx context.Context, name string) error {
	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: s.publicID(name)})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	if result.Error.Message != "" {
		return fmt.Errorf("failed to delete %s: %s", name, result.Error.Message)
	}
	return nil
}

// computeSHA1 computes the SHA-1 hash of the input and returns its hex encoding.
func computeSHA1(input string) string {
	h := sha1.New()
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}
