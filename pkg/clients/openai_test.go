package client

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sh5080/vectify-go/pkg/apperrors"
	"github.com/sh5080/vectify-go/pkg/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAI(baseURL, key string) *OpenAIClient {
	return NewOpenAIClient(configs.ProviderConfig{
		OpenAIAPIKey:     key,
		OpenAIBaseURL:    baseURL,
		OpenAIImageModel: "dall-e-3",
	}, nil)
}

func TestOpenAIMissingKeyMakesNoCall(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	_, err := newTestOpenAI(server.URL, "").GenerateImage(t.Context(), "prompt")
	assert.True(t, apperrors.Is(err, apperrors.KindConfiguration))
	assert.False(t, called)
}

func TestOpenAIProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	_, err := newTestOpenAI(server.URL, "sk-test").GenerateImage(t.Context(), "prompt")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindProvider))
	assert.Contains(t, err.Error(), "429")
}

func TestOpenAIGenerateImage(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\nfake")
	encoded := base64.StdEncoding.EncodeToString(png)

	t.Run("b64 payload", func(t *testing.T) {
		var captured map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/images/generations", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			_, _ = w.Write([]byte(`{"data":[{"b64_json":"` + encoded + `"}]}`))
		}))
		defer server.Close()

		out, err := newTestOpenAI(server.URL, "sk-test").GenerateImage(t.Context(), "prompt")
		require.NoError(t, err)
		assert.Equal(t, "data:image/png;base64,"+encoded, out)
		assert.Equal(t, "dall-e-3", captured["model"])
		assert.EqualValues(t, 1, captured["n"])
		assert.Equal(t, "1024x1024", captured["size"])
		assert.Equal(t, "hd", captured["quality"])
		assert.Equal(t, "natural", captured["style"])
	})

	t.Run("url payload is downloaded", func(t *testing.T) {
		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		defer server.Close()

		mux.HandleFunc("/images/generations", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":[{"url":"` + server.URL + `/files/out.png"}]}`))
		})
		mux.HandleFunc("/files/out.png", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(png)
		})

		out, err := newTestOpenAI(server.URL, "sk-test").GenerateImage(t.Context(), "prompt")
		require.NoError(t, err)
		assert.Equal(t, "data:image/png;base64,"+encoded, out)
	})

	t.Run("empty data", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		_, err := newTestOpenAI(server.URL, "sk-test").GenerateImage(t.Context(), "prompt")
		assert.True(t, apperrors.Is(err, apperrors.KindProvider))
	})
}
