package storage

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/hirecoder/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func validConfig() *config.StorageConfig {
	return &config.StorageConfig{
		Bucket:            "attachments",
		AccessKey:         "test-key",
		SecretKey:         "test-secret",
		Region:            "eu-central-1",
		Endpoint:          "http://localhost:9000",
		UsePathStyle:      true,
		PresignExpiration: 15 * time.Minute,
	}
}

func TestNewS3Storage_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.StorageConfig
		wantErr string
	}{
		{"nil config", nil, "configuration is required"},
		{"missing bucket", &config.StorageConfig{AccessKey: "k", SecretKey: "s"}, "bucket is required"},
		{"missing access key", &config.StorageConfig{Bucket: "b", SecretKey: "s"}, "access key is required"},
		{"missing secret key", &config.StorageConfig{Bucket: "b", AccessKey: "k"}, "secret key is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewS3Storage(tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("valid config", func(t *testing.T) {
		s, err := NewS3Storage(validConfig(), WithLogger(zaptest.NewLogger(t)))
		require.NoError(t, err)
		assert.Equal(t, "attachments", s.Bucket())
		assert.Equal(t, 15*time.Minute, s.presignExpiration)
	})

	t.Run("default presign expiration", func(t *testing.T) {
		cfg := validConfig()
		cfg.PresignExpiration = 0
		s, err := NewS3Storage(cfg)
		require.NoError(t, err)
		assert.Equal(t, defaultPresignExpiration, s.presignExpiration)
	})

	t.Run("option overrides expiration", func(t *testing.T) {
		s, err := NewS3Storage(validConfig(), WithPresignExpiration(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, time.Hour, s.presignExpiration)
	})
}

func TestNormalizeEndpoint(t *testing.T) {
	assert.Equal(t, defaultEndpoint, normalizeEndpoint("", false))
	assert.Equal(t, "http://minio:9000", normalizeEndpoint("minio:9000", false))
	assert.Equal(t, "https://minio:9000", normalizeEndpoint("minio:9000", true))
	assert.Equal(t, "https://s3.amazonaws.com", normalizeEndpoint("https://s3.amazonaws.com", false))
}

func TestS3Storage_Presign(t *testing.T) {
	s, err := NewS3Storage(validConfig())
	require.NoError(t, err)
	ctx := context.Background()
	key := "proposals/0b8c/1f2e-design.pdf"

	t.Run("empty key", func(t *testing.T) {
		_, _, err := s.GenerateUploadURL(ctx, "", "application/pdf", time.Minute)
		assert.ErrorIs(t, err, errEmptyKey)
		_, _, err = s.GenerateDownloadURL(ctx, "", time.Minute)
		assert.ErrorIs(t, err, errEmptyKey)
		_, err = s.ObjectExists(ctx, "")
		assert.ErrorIs(t, err, errEmptyKey)
		assert.ErrorIs(t, s.DeleteObject(ctx, ""), errEmptyKey)
	})

	t.Run("upload url is path style and signed", func(t *testing.T) {
		url, expiresAt, err := s.GenerateUploadURL(ctx, key, "application/pdf", 10*time.Minute)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "http://localhost:9000/attachments/proposals/"), url)
		assert.Contains(t, url, "X-Amz-Signature=")
		assert.Contains(t, url, "X-Amz-Expires=600")
		assert.WithinDuration(t, time.Now().Add(10*time.Minute), expiresAt, 5*time.Second)
	})

	t.Run("download url falls back to configured expiry", func(t *testing.T) {
		url, _, err := s.GenerateDownloadURL(ctx, key, 0)
		require.NoError(t, err)
		assert.Contains(t, url, "X-Amz-Expires=900")
	})
}

// Runs against a live S3-compatible server when HIRECODER_TEST_S3_ENDPOINT is set.
func TestS3Storage_Live(t *testing.T) {
	endpoint := os.Getenv("HIRECODER_TEST_S3_ENDPOINT")
	if endpoint == "" {
		t.Skip("HIRECODER_TEST_S3_ENDPOINT not set")
	}
	cfg := validConfig()
	cfg.Endpoint = endpoint
	cfg.Bucket = "hirecoder-test"
	cfg.AccessKey = os.Getenv("HIRECODER_TEST_S3_ACCESS_KEY")
	cfg.SecretKey = os.Getenv("HIRECODER_TEST_S3_SECRET_KEY")

	s, err := NewS3Storage(cfg)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, s.EnsureBucket(ctx))

	exists, err := s.ObjectExists(ctx, "missing/object.txt")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, s.DeleteObject(ctx, "missing/object.txt"))
}
