// Package gemini provides a StyleGenerator implementation using Google's Gemini API.
//
// This provider uses the Gemini API backend via the official Go SDK:
// https://github.com/googleapis/go-genai
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mhpenta/stylegen"
	"google.golang.org/genai"
)

// styleAnalysisInstruction asks for a short aesthetic description (palette,
// mood) that can be appended to a generation prompt.
const styleAnalysisInstruction = "قم بتحليل هذه الصورة وصف جمالياتها، ولوحة ألوانها، ومزاجها بعبارة موجزة مناسبة لموجه صورة. مثال: 'نمط حيوي عالي التباين بألوان نيون جريئة ومزاج مستقبلي'."

// contentGenerator is the part of genai.Models this provider calls.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements StyleGenerator using Google's Gemini API.
type GeminiGenerator struct {
	models         contentGenerator
	imageModel     string
	analysisModel  string
	safetySettings []*genai.SafetySetting
	logger         *slog.Logger
	mu             sync.RWMutex
}

// Ensure GeminiGenerator implements the interface.
var _ stylegen.StyleGenerator = (*GeminiGenerator)(nil)

// New creates a new GeminiGenerator from a Config. An empty API key is
// rejected with stylegen.ErrMissingAPIKey rather than letting the SDK fall
// back to other environment variables.
func New(ctx context.Context, config *stylegen.Config) (*GeminiGenerator, error) {
	if config == nil || strings.TrimSpace(config.APIKey) == "" {
		return nil, stylegen.ErrMissingAPIKey
	}

	clientCfg := &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  config.APIKey,
	}
	if config.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return newGenerator(client.Models, config), nil
}

// NewWithAPIKey creates a generator with an API key and the default models.
func NewWithAPIKey(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	return New(ctx, &stylegen.Config{
		APIKey:        apiKey,
		ImageModel:    stylegen.ModelImageDefault,
		AnalysisModel: stylegen.ModelAnalysisDefault,
	})
}

func newGenerator(models contentGenerator, config *stylegen.Config) *GeminiGenerator {
	g := &GeminiGenerator{
		models:        models,
		imageModel:    APIModelFlashImage,
		analysisModel: APIModelFlash,
		logger:        slog.Default(),
	}
	if config != nil {
		if config.ImageModel != "" {
			g.imageModel = config.ImageModel.String()
		}
		if config.AnalysisModel != "" {
			g.analysisModel = config.AnalysisModel.String()
		}
	}
	return g
}

// SetSafetySettings configures safety settings for all requests.
func (g *GeminiGenerator) SetSafetySettings(settings []stylegen.SafetySetting) *GeminiGenerator {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.safetySettings = convertSafetySettings(settings)
	return g
}

// SetLogger sets the logger that receives the underlying cause of every
// failure before it is replaced by the user-facing error.
func (g *GeminiGenerator) SetLogger(logger *slog.Logger) *GeminiGenerator {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.logger = logger
	return g
}

// Generate restyles primary according to prompt. The request parts are the
// primary image, the prompt, then the style image if one is given; the model
// treats the first image as the subject.
//
// The first inline image of the first candidate is returned. Any failure is
// logged and returned as a *stylegen.FailedError of kind
// stylegen.ErrGenerationFailed.
func (g *GeminiGenerator) Generate(ctx context.Context, primary stylegen.InputImage, prompt string, style *stylegen.InputImage) (*stylegen.ImageArtifact, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts(buildGenerateParts(primary, prompt, style), genai.RoleUser),
	}

	genConfig := g.buildGenerateContentConfig([]string{
		string(genai.ModalityImage),
		string(genai.ModalityText),
	})

	result, err := g.models.GenerateContent(ctx, g.imageModel, contents, genConfig)
	if err == nil {
		var artifact *stylegen.ImageArtifact
		artifact, err = parseImageResult(result)
		if err == nil {
			return artifact, nil
		}
	}

	g.getLogger().Error("error calling Gemini API",
		"operation", "generate",
		"model", g.imageModel,
		"error", err,
	)
	return nil, stylegen.GenerationFailed(err)
}

// AnalyzeStyle asks the analysis model for a concise description of the
// style image and returns it trimmed. Any failure is logged and returned as
// a *stylegen.FailedError of kind stylegen.ErrAnalysisFailed.
func (g *GeminiGenerator) AnalyzeStyle(ctx context.Context, style stylegen.InputImage) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts(buildAnalyzeParts(style), genai.RoleUser),
	}

	result, err := g.models.GenerateContent(ctx, g.analysisModel, contents, g.buildGenerateContentConfig(nil))
	if err == nil {
		var description string
		description, err = parseTextResult(result)
		if err == nil {
			return description, nil
		}
	}

	g.getLogger().Error("error analyzing style image",
		"operation", "analyze_style",
		"model", g.analysisModel,
		"error", err,
	)
	return "", stylegen.AnalysisFailed(err)
}

// Models returns the model definitions used by this provider.
// The generation model comes first.
func (g *GeminiGenerator) Models() []stylegen.ModelInfo {
	return []stylegen.ModelInfo{
		imageModelInfo(g.imageModel),
		analysisModelInfo(g.analysisModel),
	}
}

// Close releases any resources held by the generator.
func (g *GeminiGenerator) Close() error {
	// The genai.Client doesn't require explicit closing in the current SDK
	return nil
}

func (g *GeminiGenerator) getLogger() *slog.Logger {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.logger
}

// buildGenerateContentConfig returns the request config. A nil modalities
// slice leaves the model's default (text) output in place.
func (g *GeminiGenerator) buildGenerateContentConfig(modalities []string) *genai.GenerateContentConfig {
	g.mu.RLock()
	defer g.mu.RUnlock()

	genConfig := &genai.GenerateContentConfig{
		ResponseModalities: modalities,
	}
	if len(g.safetySettings) > 0 {
		genConfig.SafetySettings = g.safetySettings
	}
	return genConfig
}

func buildGenerateParts(primary stylegen.InputImage, prompt string, style *stylegen.InputImage) []*genai.Part {
	parts := make([]*genai.Part, 0, 3)
	parts = append(parts,
		inlinePart(primary),
		genai.NewPartFromText(prompt),
	)
	if style != nil {
		parts = append(parts, inlinePart(*style))
	}
	return parts
}

func buildAnalyzeParts(style stylegen.InputImage) []*genai.Part {
	return []*genai.Part{
		inlinePart(style),
		genai.NewPartFromText(styleAnalysisInstruction),
	}
}

func inlinePart(img stylegen.InputImage) *genai.Part {
	return &genai.Part{
		InlineData: &genai.Blob{
			Data:     img.Data,
			MIMEType: img.MIMEType,
		},
	}
}

// parseImageResult returns the first inline image of the first candidate.
// Without one, a reported finish reason (any value, including STOP) is a
// safety block; otherwise no image was produced.
func parseImageResult(result *genai.GenerateContentResponse) (*stylegen.ImageArtifact, error) {
	candidate := firstCandidate(result)
	if candidate == nil {
		return nil, stylegen.ErrNoImageProduced
	}

	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			return &stylegen.ImageArtifact{
				Data:     part.InlineData.Data,
				MIMEType: part.InlineData.MIMEType,
				Name:     stylegen.GeneratedImageName,
			}, nil
		}
	}

	if candidate.FinishReason != "" {
		return nil, &stylegen.SafetyBlockedError{Reason: string(candidate.FinishReason)}
	}
	return nil, stylegen.ErrNoImageProduced
}

// parseTextResult returns the aggregated response text, trimmed. Without
// text, a finish reason other than STOP is a safety block.
func parseTextResult(result *genai.GenerateContentResponse) (string, error) {
	if result == nil {
		return "", stylegen.ErrNoTextProduced
	}

	if text := strings.TrimSpace(result.Text()); text != "" {
		return text, nil
	}

	if candidate := firstCandidate(result); candidate != nil {
		reason := candidate.FinishReason
		if reason != "" && reason != genai.FinishReasonStop {
			return "", &stylegen.SafetyBlockedError{Reason: string(reason)}
		}
	}
	return "", stylegen.ErrNoTextProduced
}

func firstCandidate(result *genai.GenerateContentResponse) *genai.Candidate {
	if result == nil || len(result.Candidates) == 0 {
		return nil
	}
	return result.Candidates[0]
}

// convertSafetySettings converts our SafetySettings to Gemini's format.
func convertSafetySettings(settings []stylegen.SafetySetting) []*genai.SafetySetting {
	result := make([]*genai.SafetySetting, 0, len(settings))
	for _, s := range settings {
		result = append(result, &genai.SafetySetting{
			Category:  genai.HarmCategory(s.Category),
			Threshold: genai.HarmBlockThreshold(s.Threshold),
		})
	}
	return result
}
