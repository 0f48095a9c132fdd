package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage implements StorageService on Cloudinary.
type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStorage creates a CloudinaryStorage uploading into folder.
func NewCloudinaryStorage(cld *cloudinary.Cloudinary, folder string) *CloudinaryStorage {
	return &CloudinaryStorage{cld: cld, folder: folder}
}

// UploadImage uploads a local file into the configured folder and returns
// the delivery URL plus the public ID needed for later deletion.
func (s *CloudinaryStorage) UploadImage(ctx context.Context, localFilePath string) (string, string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: s.folder,
	})
	if err != nil {
		return "", "", fmt.Errorf("storage: failed to upload image: %w", err)
	}
	if result.PublicID == "" {
		return "", "", fmt.Errorf("storage: no public ID returned")
	}
	return result.SecureURL, result.PublicID, nil
}

// DeleteImage deletes an image from Cloudinary given its public ID.
func (s *CloudinaryStorage) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("storage: failed to delete image: %w", err)
	}
	return nil
}
