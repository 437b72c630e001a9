package stylegen

import "encoding/base64"

// GeneratedImageName is the display name given to every generated artifact.
const GeneratedImageName = "generated-image.png"

// SafetyCategory represents a content safety category.
type SafetyCategory string

const (
	SafetyCategoryHarassment       SafetyCategory = "HARM_CATEGORY_HARASSMENT"
	SafetyCategoryHateSpeech       SafetyCategory = "HARM_CATEGORY_HATE_SPEECH"
	SafetyCategorySexuallyExplicit SafetyCategory = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	SafetyCategoryDangerousContent SafetyCategory = "HARM_CATEGORY_DANGEROUS_CONTENT"
)

// SafetyThreshold represents the blocking threshold for safety filters.
type SafetyThreshold string

const (
	SafetyThresholdBlockNone      SafetyThreshold = "BLOCK_NONE"
	SafetyThresholdBlockLowAndUp  SafetyThreshold = "BLOCK_LOW_AND_ABOVE"
	SafetyThresholdBlockMedAndUp  SafetyThreshold = "BLOCK_MEDIUM_AND_ABOVE"
	SafetyThresholdBlockHighAndUp SafetyThreshold = "BLOCK_ONLY_HIGH"
)

// SafetySetting configures content filtering for a specific category.
type SafetySetting struct {
	Category  SafetyCategory
	Threshold SafetyThreshold
}

// ImageArtifact is a generated image ready for display or storage.
// Treat it as read-only once returned.
type ImageArtifact struct {
	// Data contains the raw image bytes
	Data []byte

	// MIMEType of the image as reported by the model
	MIMEType string

	// Name is the display/download name
	Name string
}

// Base64 returns the image bytes in standard base64 encoding.
func (a *ImageArtifact) Base64() string {
	return base64.StdEncoding.EncodeToString(a.Data)
}

// DataURL returns the artifact as a data: URL for direct embedding in HTML.
func (a *ImageArtifact) DataURL() string {
	return "data:" + a.MIMEType + ";base64," + a.Base64()
}
