package service

import "context"

// AvatarStorage stores uploaded avatar images.
type AvatarStorage interface {
	// Upload writes the image under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}
