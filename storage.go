package stylegen

import (
	"context"
	"path/filepath"
	"strings"
)

// Storage is an interface for persisting generated images.
// Implementations can wrap existing storage clients (GCS, S3, local disk)
// with this interface.
type Storage interface {
	// SaveFile saves image data to storage and returns the public URL.
	// The path should include the full object path (e.g., "images/2024/01/output.png").
	SaveFile(ctx context.Context, data []byte, path string, contentType string) (string, error)
}

// StorageResult contains information about a saved image.
type StorageResult struct {
	// URL is the public URL where the image can be accessed
	URL string

	// Path is the storage path/key where the image was saved
	Path string

	// Size is the number of bytes saved
	Size int
}

// SaveArtifact saves artifact to storage at {basePath}.{extension}, with the
// extension derived from the artifact's MIME type.
func SaveArtifact(
	ctx context.Context,
	storage Storage,
	artifact *ImageArtifact,
	basePath string) (*StorageResult, error) {

	if storage == nil {
		return nil, ErrStorageNotConfigured
	}
	if artifact == nil || len(artifact.Data) == 0 {
		return nil, ErrEmptyImageData
	}

	path := basePath + "." + extensionFromMIME(artifact.MIMEType)

	url, err := storage.SaveFile(ctx, artifact.Data, path, artifact.MIMEType)
	if err != nil {
		return nil, err
	}

	return &StorageResult{
		URL:  url,
		Path: path,
		Size: len(artifact.Data),
	}, nil
}

// GetMIMEType infers an image MIME type from a file extension.
func GetMIMEType(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".heic":
		return "image/heic"
	case ".heif":
		return "image/heif"
	default:
		return "image/png"
	}
}

// extensionFromMIME returns a file extension for common image MIME types.
func extensionFromMIME(mime string) string {
	switch mime {
	case "image/png":
		return "png"
	case "image/jpeg":
		return "jpg"
	case "image/webp":
		return "webp"
	case "image/heic":
		return "heic"
	case "image/heif":
		return "heif"
	default:
		return "png"
	}
}
