package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mhpenta/stylegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wireRequest struct {
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text       string `json:"text"`
			InlineData *struct {
				MIMEType string `json:"mimeType"`
				Data     []byte `json:"data"`
			} `json:"inlineData"`
		} `json:"parts"`
	} `json:"contents"`
}

func newWireGenerator(t *testing.T, handler http.HandlerFunc) *GeminiGenerator {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := New(context.Background(), &stylegen.Config{
		APIKey:        "test-key",
		ImageModel:    stylegen.ModelImageDefault,
		AnalysisModel: stylegen.ModelAnalysisDefault,
		BaseURL:       srv.URL,
	})
	require.NoError(t, err)
	return g
}

func TestGenerate_OverHTTP(t *testing.T) {
	var got wireRequest
	var path, apiKey string

	g := newWireGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		apiKey = r.Header.Get("x-goog-api-key")
		_ = json.NewDecoder(r.Body).Decode(&got)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{
				"content": {"role": "model", "parts": [
					{"text": "Here you go"},
					{"inlineData": {"mimeType": "image/png", "data": "aW1hZ2U="}}
				]},
				"finishReason": "STOP"
			}]
		}`))
	})

	artifact, err := g.Generate(context.Background(), productImage, "studio lighting", &styleImage)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(path, "models/"+APIModelFlashImage+":generateContent"), path)
	assert.Equal(t, "test-key", apiKey)

	require.Len(t, got.Contents, 1)
	parts := got.Contents[0].Parts
	require.Len(t, parts, 3)
	require.NotNil(t, parts[0].InlineData)
	assert.Equal(t, productImage.Data, parts[0].InlineData.Data)
	assert.Equal(t, "studio lighting", parts[1].Text)
	require.NotNil(t, parts[2].InlineData)
	assert.Equal(t, styleImage.MIMEType, parts[2].InlineData.MIMEType)

	assert.Equal(t, []byte("image"), artifact.Data)
	assert.Equal(t, "image/png", artifact.MIMEType)
	assert.Equal(t, stylegen.GeneratedImageName, artifact.Name)
}

func TestAnalyzeStyle_OverHTTPServerError(t *testing.T) {
	g := newWireGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"code": 500, "message": "internal", "status": "INTERNAL"}}`))
	})

	description, err := g.AnalyzeStyle(context.Background(), styleImage)
	require.Error(t, err)
	assert.Empty(t, description)
	assert.ErrorIs(t, err, stylegen.ErrAnalysisFailed)
	assert.Equal(t, stylegen.MessageAnalysisFailed, stylegen.UserMessage(err))
}
