package stylegen

import "context"

// StyleGenerator is the caller-facing surface of a generation backend.
// Implement this interface to add support for new providers.
type StyleGenerator interface {
	// Generate restyles the primary image according to prompt, optionally
	// guided by a style reference image. It returns exactly one artifact or
	// a *FailedError wrapping ErrGenerationFailed.
	Generate(ctx context.Context, primary InputImage, prompt string, style *InputImage) (*ImageArtifact, error)

	// AnalyzeStyle describes the aesthetic of a reference image in a short
	// phrase suitable for reuse as a generation prompt. Failures are a
	// *FailedError wrapping ErrAnalysisFailed.
	AnalyzeStyle(ctx context.Context, style InputImage) (string, error)

	// Models returns the models this provider calls, generation model first.
	Models() []ModelInfo

	// Close releases any resources held by the generator.
	Close() error
}
