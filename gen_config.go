package stylegen

import (
	"encoding/base64"
	"fmt"
	"os"
)

// Model represents a remote model identifier.
type Model string

const (
	// ModelImageDefault produces images from image+text input.
	ModelImageDefault Model = "gemini-2.5-flash-image-preview"

	// ModelAnalysisDefault produces text descriptions of images.
	ModelAnalysisDefault Model = "gemini-2.5-flash"
)

// String returns the model identifier.
func (m Model) String() string {
	return string(m)
}

// InputImage represents an image sent to the model.
//
// Build one with NewInputImage, ImageFromBase64 or ImageFromFile; the
// adapters assume it is already valid.
type InputImage struct {
	// Data is the raw image bytes
	Data []byte

	// MIMEType of the image (e.g., "image/jpeg", "image/png")
	MIMEType string
}

// NewInputImage validates data and mimeType and returns an InputImage.
func NewInputImage(data []byte, mimeType string) (InputImage, error) {
	img := InputImage{
		Data:     data,
		MIMEType: mimeType,
	}
	if err := ValidateInputImage(img); err != nil {
		return InputImage{}, err
	}
	return img, nil
}

// ImageFromBase64 decodes a base64 payload, as held by browser file readers,
// into an InputImage.
func ImageFromBase64(b64 string, mimeType string) (InputImage, error) {
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return InputImage{}, fmt.Errorf("invalid base64: %w", err)
	}
	return NewInputImage(data, mimeType)
}

// ImageFromFile reads an image from disk. The MIME type is inferred from
// the file extension.
func ImageFromFile(path string) (InputImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return InputImage{}, fmt.Errorf("read image: %w", err)
	}
	return NewInputImage(data, GetMIMEType(path))
}
