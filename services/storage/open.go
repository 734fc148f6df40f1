package storage

import (
	"context"
	"fmt"

	"catering/config"
	"catering/utils"
)

// Open builds the configured storage driver. It returns a nil service when the
// driver has no credentials, so image uploads fail while the rest of the API works.
func Open(ctx context.Context, cfg config.Config) (StorageService, func() error, error) {
	noop := func() error { return nil }
	switch cfg.StorageDriver {
	case "", "gcs":
		if cfg.GCSCredentialsFile == "" {
			utils.GetLogger().Warn("GCS_CREDENTIALS_FILE not set; image uploads are disabled")
			return nil, noop, nil
		}
		svc, err := NewGCSStorageService(ctx, cfg.GCSCredentialsFile, cfg.StorageBucket)
		if err != nil {
			return nil, noop, err
		}
		return svc, svc.Close, nil
	case "cloudinary":
		if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
			utils.GetLogger().Warn("Cloudinary credentials not set; image uploads are disabled")
			return nil, noop, nil
		}
		svc, err := NewCloudinaryStorageService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.StorageBucket)
		if err != nil {
			return nil, noop, err
		}
		return svc, noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}
