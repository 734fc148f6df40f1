package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// serviceAccount holds the fields of a JSON key needed to sign URLs.
type serviceAccount struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

func loadServiceAccount(path string) (*serviceAccount, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read service account: %w", err)
	}
	var sa serviceAccount
	if err := json.Unmarshal(raw, &sa); err != nil {
		return nil, fmt.Errorf("failed to parse service account: %w", err)
	}
	if sa.ClientEmail == "" || sa.PrivateKey == "" {
		return nil, fmt.Errorf("service account is missing client_email or private_key")
	}
	return &sa, nil
}

// GCSStorageService implements StorageService using Google Cloud Storage.
type GCSStorageService struct {
	client         *storage.Client
	bucketName     string
	serviceAccount *serviceAccount
}

// NewGCSStorageService creates a GCS client from a service account JSON key.
func NewGCSStorageService(ctx context.Context, serviceAccountJSONPath, bucketName string) (*GCSStorageService, error) {
	client, err := storage.NewClient(ctx, option.WithCredentialsFile(serviceAccountJSONPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	// Load service account for signing URLs
	sa, err := loadServiceAccount(serviceAccountJSONPath)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to load service account for signing URLs: %w", err)
	}

	return &GCSStorageService{
		client:         client,
		bucketName:     bucketName,
		serviceAccount: sa,
	}, nil
}

func (s *GCSStorageService) Upload(ctx context.Context, name string, data []byte, contentType string, overwrite bool) error {
	obj := s.client.Bucket(s.bucketName).Object(name)
	if !overwrite {
		obj = obj.If(storage.Conditions{DoesNotExist: true})
	}

	w := obj.NewWriter(ctx)
	w.ObjectAttrs.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("failed to write object %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusPreconditionFailed {
			return ErrObjectExists
		}
		return fmt.Errorf("failed to close writer: %w", err)
	}
	return nil
}

// SignedURL uses the V2 signing scheme, which allows expiries beyond seven days.
func (s *GCSStorageService) SignedURL(_ context.Context, name string, ttl time.Duration) (string, error) {
	url, err := storage.SignedURL(s.bucketName, name, &storage.SignedURLOptions{
		GoogleAccessID: s.serviceAccount.ClientEmail,
		PrivateKey:     []byte(strings.ReplaceAll(s.serviceAccount.PrivateKey, `\n`, "\n")),
		Method:         http.MethodGet,
		Expires:        time.Now().Add(ttl),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}
	return url, nil
}

func (s *GCSStorageService) Delete(ctx context.Context, name string) error {
	err := s.client.Bucket(s.bucketName).Object(name).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete object %s: %w", name, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *GCSStorageService) Close() error {
	return s.client.Close()
}
