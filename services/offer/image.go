package offer

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"catering/utils"

	"github.com/gabriel-vasile/mimetype"
)

// imagePayload is a decoded, sniffed upload.
type imagePayload struct {
	data        []byte
	contentType string
	ext         string
}

// isRemoteURL reports whether an image field carries an existing URL rather than new content.
func isRemoteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// decodeImage accepts raw base64 or a data URL and sniffs the content type.
func decodeImage(op, encoded string) (*imagePayload, error) {
	raw := strings.TrimSpace(encoded)
	if i := strings.Index(raw, ","); strings.HasPrefix(raw, "data:") && i >= 0 {
		raw = raw[i+1:]
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(raw, "="))
	}
	if err != nil || len(data) == 0 {
		return nil, utils.ValidationError(op, "image must be base64 encoded")
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, utils.ValidationError(op, "image content is not a recognised image")
	}
	ext := strings.TrimPrefix(mtype.Extension(), ".")
	if ext == "" {
		ext = "jpg"
	}
	return &imagePayload{data: data, contentType: mtype.String(), ext: ext}, nil
}

// attachImage uploads img as <prefix><id>.<ext> and returns its signed URL.
func (s *DefaultCatalogService) attachImage(ctx context.Context, op, prefix string, id int64, img *imagePayload, overwrite bool) (string, error) {
	if s.Storage == nil {
		return "", utils.UploadError(op, errors.New("object storage is not configured"))
	}
	name := fmt.Sprintf("%s%d.%s", prefix, id, img.ext)
	if err := s.Storage.Upload(ctx, name, img.data, img.contentType, overwrite); err != nil {
		return "", utils.UploadError(op, err)
	}
	url, err := s.Storage.SignedURL(ctx, name, s.SignedURLTTL)
	if err != nil {
		return "", utils.UploadError(op, err)
	}
	return url, nil
}
