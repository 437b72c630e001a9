package stylegen

import (
	"context"
)

// MockStyleGenerator is a mock implementation of StyleGenerator.
type MockStyleGenerator struct {
	GenerateFunc     func(ctx context.Context, primary InputImage, prompt string, style *InputImage) (*ImageArtifact, error)
	AnalyzeStyleFunc func(ctx context.Context, style InputImage) (string, error)
	ModelsFunc       func() []ModelInfo
	CloseFunc        func() error
}

func (m *MockStyleGenerator) Generate(ctx context.Context, primary InputImage, prompt string, style *InputImage) (*ImageArtifact, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, primary, prompt, style)
	}
	return &ImageArtifact{}, nil
}

func (m *MockStyleGenerator) AnalyzeStyle(ctx context.Context, style InputImage) (string, error) {
	if m.AnalyzeStyleFunc != nil {
		return m.AnalyzeStyleFunc(ctx, style)
	}
	return "", nil
}

func (m *MockStyleGenerator) Models() []ModelInfo {
	if m.ModelsFunc != nil {
		return m.ModelsFunc()
	}
	return []ModelInfo{}
}

func (m *MockStyleGenerator) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// mockStorage records saved files.
type mockStorage struct {
	saved map[string][]byte
	err   error
}

func (s *mockStorage) SaveFile(ctx context.Context, data []byte, path string, contentType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.saved == nil {
		s.saved = make(map[string][]byte)
	}
	s.saved[path] = data
	return "https://storage.example.com/" + path, nil
}
