package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/hostel/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func validStorageConfig() *config.StorageConfig {
	return &config.StorageConfig{
		Bucket:       "test-bucket",
		AccessKey:    "test-key",
		SecretKey:    "test-secret",
		Endpoint:     "http://localhost:9000",
		UsePathStyle: true,
	}
}

func TestNewS3ReceiptStore_Validation(t *testing.T) {
	t.Run("nil config returns error", func(t *testing.T) {
		_, err := NewS3ReceiptStore(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration is required")
	})

	t.Run("missing bucket returns error", func(t *testing.T) {
		cfg := validStorageConfig()
		cfg.Bucket = ""
		_, err := NewS3ReceiptStore(cfg)
		assert.ErrorContains(t, err, "bucket is required")
	})

	t.Run("missing access key returns error", func(t *testing.T) {
		cfg := validStorageConfig()
		cfg.AccessKey = ""
		_, err := NewS3ReceiptStore(cfg)
		assert.ErrorContains(t, err, "access key is required")
	})

	t.Run("missing secret key returns error", func(t *testing.T) {
		cfg := validStorageConfig()
		cfg.SecretKey = ""
		_, err := NewS3ReceiptStore(cfg)
		assert.ErrorContains(t, err, "secret key is required")
	})

	t.Run("valid config creates store", func(t *testing.T) {
		cfg := validStorageConfig()
		cfg.PresignExpiration = 30 * time.Minute
		store, err := NewS3ReceiptStore(cfg)
		require.NoError(t, err)
		assert.Equal(t, "test-bucket", store.Bucket())
		assert.Equal(t, 30*time.Minute, store.presignExpiration)
	})

	t.Run("default presign expiration is 15 minutes", func(t *testing.T) {
		store, err := NewS3ReceiptStore(validStorageConfig())
		require.NoError(t, err)
		assert.Equal(t, defaultPresignExpiration, store.presignExpiration)
	})
}

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		useSSL   bool
		want     string
	}{
		{"default endpoint", "", false, "http://localhost:9000"},
		{"adds http", "minio:9000", false, "http://minio:9000"},
		{"adds https", "s3.example.com", true, "https://s3.example.com"},
		{"keeps scheme", "https://s3.amazonaws.com", false, "https://s3.amazonaws.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeEndpoint(tt.endpoint, tt.useSSL)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := normalizeEndpoint("http://", false)
	assert.Error(t, err)
}

func TestS3ReceiptStore_Options(t *testing.T) {
	logger := zaptest.NewLogger(t)
	store, err := NewS3ReceiptStore(validStorageConfig(), WithLogger(logger), WithPresignExpiration(time.Hour))
	require.NoError(t, err)
	assert.Same(t, logger, store.logger)
	assert.Equal(t, time.Hour, store.presignExpiration)
}

func TestS3ReceiptStore_GenerateDownloadURL(t *testing.T) {
	store, err := NewS3ReceiptStore(validStorageConfig())
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("empty key returns error", func(t *testing.T) {
		_, _, err := store.GenerateDownloadURL(ctx, "", time.Minute)
		assert.ErrorIs(t, err, ErrEmptyKey)
	})

	t.Run("presigns a path-style GET", func(t *testing.T) {
		before := time.Now()
		link, expiresAt, err := store.GenerateDownloadURL(ctx, "receipts/abc.pdf", 0)
		require.NoError(t, err)
		assert.Contains(t, link, "localhost:9000/test-bucket/receipts/abc.pdf")
		assert.Contains(t, link, "X-Amz-Expires=900")
		assert.WithinDuration(t, before.Add(defaultPresignExpiration), expiresAt, 5*time.Second)
	})
}

func TestS3ReceiptStore_EmptyKey(t *testing.T) {
	store, err := NewS3ReceiptStore(validStorageConfig())
	require.NoError(t, err)
	ctx := context.Background()

	assert.ErrorIs(t, store.PutObject(ctx, "", "application/pdf", []byte("x")), ErrEmptyKey)
	assert.ErrorIs(t, store.DeleteObject(ctx, ""), ErrEmptyKey)
}

// Integration tests need an S3-compatible server. Set STORAGE_TEST_ENDPOINT
// (for example http://localhost:9000 with MinIO) to run them.
func newIntegrationStore(t *testing.T) *S3ReceiptStore {
	t.Helper()
	endpoint := os.Getenv("STORAGE_TEST_ENDPOINT")
	if endpoint == "" {
		t.Skip("STORAGE_TEST_ENDPOINT not set")
	}

	store, err := NewS3ReceiptStore(&config.StorageConfig{
		Bucket:       "hostel-receipts-test",
		AccessKey:    os.Getenv("STORAGE_TEST_ACCESS_KEY"),
		SecretKey:    os.Getenv("STORAGE_TEST_SECRET_KEY"),
		Endpoint:     endpoint,
		UsePathStyle: true,
	}, WithLogger(zap.NewNop()))
	require.NoError(t, err)
	require.NoError(t, store.EnsureBucket(context.Background()))
	return store
}

func TestIntegration_PutAndPresign(t *testing.T) {
	store := newIntegrationStore(t)
	ctx := context.Background()
	key := "integration/receipt.pdf"

	require.NoError(t, store.PutObject(ctx, key, "application/pdf", []byte("%PDF-1.4 test")))
	require.NoError(t, store.Ping(ctx))

	link, _, err := store.GenerateDownloadURL(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, link)

	require.NoError(t, store.DeleteObject(ctx, key))
	// second call is idempotent
	require.NoError(t, store.EnsureBucket(ctx))
}
