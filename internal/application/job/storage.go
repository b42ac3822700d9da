package job

import (
	"context"
	"time"

	appshared "github.com/hirecoder/backend/internal/application/shared"
	"github.com/shopspring/decimal"
)

// AttachmentStorage presigns direct transfers between API clients and object storage.
// The API never proxies file bytes.
type AttachmentStorage interface {
	GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, time.Time, error)
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error)
	ObjectExists(ctx context.Context, key string) (bool, error)
	DeleteObject(ctx context.Context, key string) error
}

// Settings carries the business configuration shared by the job services
type Settings struct {
	PlatformFeePercentage decimal.Decimal
	AttachmentURLExpiry   time.Duration
	PageLimits            appshared.PageLimits
}

func (s Settings) attachmentExpiry() time.Duration {
	if s.AttachmentURLExpiry <= 0 {
		return 15 * time.Minute
	}
	return s.AttachmentURLExpiry
}
