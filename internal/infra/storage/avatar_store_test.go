package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"todoez/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAvatarStore_Upload(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	store := NewAvatarStore(bucket, "https://cdn.todoez.test/", newDiscardLogger())
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	url, err := store.Upload(ctx, "avatars/u1/a.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.todoez.test/avatars/u1/a.png", url)

	data, err := bucket.ReadAll(ctx, "avatars/u1/a.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	attrs, err := bucket.Attributes(ctx, "avatars/u1/a.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}

func TestAvatarStore_UploadRequiresKey(t *testing.T) {
	store := NewAvatarStore(memblob.OpenBucket(nil), "", newDiscardLogger())
	t.Cleanup(func() { _ = store.Close() })

	_, err := store.Upload(context.Background(), "/", "image/png", []byte("x"))
	assert.ErrorContains(t, err, "object key")
}

func TestNewAvatarStorage_FileBucket(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	dir := t.TempDir()

	storage, err := NewAvatarStorage(AvatarStoreParams{
		Lc:  lc,
		Ctx: context.Background(),
		Config: &config.Config{Avatar: &config.AvatarConfig{
			BucketURL:     "file://" + dir,
			PublicBaseURL: "http://localhost:8080/static",
		}},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)

	url, err := storage.Upload(context.Background(), "avatars/x.jpg", "image/jpeg", []byte("jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/static/avatars/x.jpg", url)
	assert.FileExists(t, dir+"/avatars/x.jpg")

	lc.RequireStart().RequireStop()
}

func TestNewAvatarStorage_DefaultsToMemory(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	storage, err := NewAvatarStorage(AvatarStoreParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)
	assert.NotNil(t, storage)

	lc.RequireStart().RequireStop()
}
