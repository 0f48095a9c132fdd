package storage

import "context"

// StorageService defines the interface for image storage operations.
type StorageService interface {
	// UploadImage uploads the file at localFilePath and returns its
	// public URL and storage identifier.
	UploadImage(ctx context.Context, localFilePath string) (url string, publicID string, err error)
	// DeleteImage removes a previously uploaded image by its identifier.
	DeleteImage(ctx context.Context, publicID string) error
}
