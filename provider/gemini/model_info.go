package gemini

import "github.com/mhpenta/stylegen"

// Model name constants - the actual API model names.
const (
	// APIModelFlashImage is Gemini 2.5 Flash Image, used for generation.
	APIModelFlashImage = "gemini-2.5-flash-image-preview"

	// APIModelFlash is Gemini 2.5 Flash, used for style analysis.
	APIModelFlash = "gemini-2.5-flash"
)

func imageModelInfo(apiName string) stylegen.ModelInfo {
	return stylegen.ModelInfo{
		Name:         "style-generation",
		Provider:     stylegen.ProviderGeminiAPI,
		APIModelName: apiName,
		Role:         stylegen.RoleGeneration,
		Capabilities: stylegen.ModelCapabilities{
			SupportsImageInput:  true,
			SupportsImageOutput: true,
			SupportsTextOutput:  true,
			MaxInputImages:      2, // primary + style reference
		},
	}
}

func analysisModelInfo(apiName string) stylegen.ModelInfo {
	return stylegen.ModelInfo{
		Name:         "style-analysis",
		Provider:     stylegen.ProviderGeminiAPI,
		APIModelName: apiName,
		Role:         stylegen.RoleAnalysis,
		Capabilities: stylegen.ModelCapabilities{
			SupportsImageInput: true,
			SupportsTextOutput: true,
			MaxInputImages:     1,
		},
	}
}
