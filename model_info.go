package stylegen

// Provider represents a model provider/backend.
type Provider string

const (
	ProviderGeminiAPI Provider = "gemini"
)

// ModelRole says which adapter entry point a model serves.
type ModelRole string

const (
	RoleGeneration ModelRole = "generation"
	RoleAnalysis   ModelRole = "analysis"
)

// ModelCapabilities describes what a model accepts and returns.
type ModelCapabilities struct {
	SupportsImageInput  bool
	SupportsImageOutput bool
	SupportsTextOutput  bool

	MaxInputImages int // Max images per request
}

// ModelInfo contains metadata for a model used by a provider.
type ModelInfo struct {
	Name         string    // Public name (e.g., "style-analysis")
	Provider     Provider  // Which provider serves this model
	APIModelName string    // Actual API name (e.g., "gemini-2.5-flash")
	Role         ModelRole // Which entry point uses it

	Capabilities ModelCapabilities
}
