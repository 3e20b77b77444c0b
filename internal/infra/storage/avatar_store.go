// Package storage keeps uploaded files in a gocloud blob bucket.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"todoez/config"
	deliverycontext "todoez/internal/delivery/context"
	"todoez/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const defaultBucketURL = "mem://"

// AvatarStore writes avatars to a bucket and serves them from a public base URL.
type AvatarStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// AvatarStoreParams holds dependencies for the avatar store, injected by Fx.
type AvatarStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAvatarStorage opens avatar.bucketUrl and closes it on shutdown.
func NewAvatarStorage(params AvatarStoreParams) (service.AvatarStorage, error) {
	bucketURL, publicBaseURL := defaultBucketURL, ""
	if cfg := params.Config.Avatar; cfg != nil {
		if cfg.BucketURL != "" {
			bucketURL = cfg.BucketURL
		}
		publicBaseURL = cfg.PublicBaseURL
	}
	if bucketURL == defaultBucketURL {
		params.Logger.Warn("Avatar bucket not configured, uploads are kept in memory")
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open avatar bucket %s", bucketURL)
	}

	store := NewAvatarStore(bucket, publicBaseURL, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// NewAvatarStore wraps an open bucket.
func NewAvatarStore(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) *AvatarStore {
	return &AvatarStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload implements service.AvatarStorage.
func (s *AvatarStore) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return "", errors.New("object key is required")
	}

	opts := &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=86400",
	}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "write %s", key)
	}

	deliverycontext.LoggerFrom(ctx, s.logger).Info("Avatar stored",
		slog.String("key", key),
		slog.Int("size", len(data)))

	return s.publicBaseURL + "/" + key, nil
}

// Close releases the bucket.
func (s *AvatarStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
