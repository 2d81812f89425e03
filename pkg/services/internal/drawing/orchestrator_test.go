package drawing

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	client "github.com/sh5080/vectify-go/pkg/clients"
	"github.com/sh5080/vectify-go/pkg/configs"
	constants "github.com/sh5080/vectify-go/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name    string
	payload string
	err     error
	delay   time.Duration
	calls   int32
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Attempt(ctx context.Context, _ string) (string, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.payload, s.err
}

func (s *stubProvider) called() int { return int(atomic.LoadInt32(&s.calls)) }

const (
	generated = "data:image/png;base64,R0VO"
	enhanced  = "data:image/png;base64,RU5I"
	dalle     = "data:image/png;base64,REFM"
	source    = "https://host/bucket/user123/1700000000.png"
)

func TestOrchestratorFirstSuccessWins(t *testing.T) {
	generate := &stubProvider{name: constants.SOURCE_HF_GENERATE, payload: generated}
	enhance := &stubProvider{name: constants.SOURCE_HF_ENHANCE, payload: enhanced}
	openai := &stubProvider{name: constants.SOURCE_DALLE, payload: dalle}

	out := NewOrchestrator(time.Second, generate, enhance, openai).Process(t.Context(), source)

	assert.Equal(t, generated, out.Vector)
	assert.Equal(t, out.Vector, out.Raster)
	assert.Equal(t, constants.SOURCE_HF_GENERATE, out.Source)
	assert.Equal(t, 0, enhance.called())
	assert.Equal(t, 0, openai.called())
	require.Len(t, out.Attempts, 1)
	assert.Equal(t, constants.OUTCOME_SUCCESS, out.Attempts[0].Outcome)
}

func TestOrchestratorEnhanceAfterGenerateFails(t *testing.T) {
	tests := []struct {
		name     string
		generate *stubProvider
	}{
		{"error", &stubProvider{name: constants.SOURCE_HF_GENERATE, err: errors.New("503")}},
		{"empty payload", &stubProvider{name: constants.SOURCE_HF_GENERATE}},
		{"not a data url", &stubProvider{name: constants.SOURCE_HF_GENERATE, payload: "https://cdn/x.png"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			enhance := &stubProvider{name: constants.SOURCE_HF_ENHANCE, payload: enhanced}
			openai := &stubProvider{name: constants.SOURCE_DALLE, payload: dalle}

			out := NewOrchestrator(time.Second, tc.generate, enhance, openai).Process(t.Context(), source)

			assert.Equal(t, enhanced, out.Vector)
			assert.Equal(t, enhanced, out.Raster)
			assert.Equal(t, constants.SOURCE_HF_ENHANCE, out.Source)
			assert.Equal(t, 0, openai.called())
			require.Len(t, out.Attempts, 2)
			assert.Equal(t, constants.OUTCOME_FAILURE, out.Attempts[0].Outcome)
		})
	}
}

func TestOrchestratorFallsBackToDalle(t *testing.T) {
	generate := &stubProvider{name: constants.SOURCE_HF_GENERATE, err: errors.New("boom")}
	enhance := &stubProvider{name: constants.SOURCE_HF_ENHANCE, err: errors.New("boom")}
	openai := &stubProvider{name: constants.SOURCE_DALLE, payload: dalle}

	out := NewOrchestrator(time.Second, generate, enhance, openai).Process(t.Context(), source)

	assert.Equal(t, dalle, out.Vector)
	assert.Equal(t, constants.SOURCE_DALLE, out.Source)
	assert.Equal(t, 1, generate.called())
	assert.Equal(t, 1, enhance.called())
}

func TestOrchestratorPlaceholderWhenAllFail(t *testing.T) {
	newChain := func() *Orchestrator {
		return NewOrchestrator(time.Second,
			&stubProvider{name: constants.SOURCE_HF_GENERATE, err: errors.New("a")},
			&stubProvider{name: constants.SOURCE_HF_ENHANCE, err: errors.New("b")},
			&stubProvider{name: constants.SOURCE_DALLE, err: errors.New("c")},
		)
	}

	first := newChain().Process(t.Context(), source)
	second := newChain().Process(t.Context(), source)

	assert.Equal(t, constants.SOURCE_PLACEHOLDER, first.Source)
	assert.Equal(t, first.Vector, second.Vector)
	assert.Equal(t, first.Raster, second.Raster)
	assert.Len(t, first.Attempts, 3)
}

func TestOrchestratorWithoutProviders(t *testing.T) {
	t.Run("placeholder carries file name", func(t *testing.T) {
		out := NewOrchestrator(time.Second).Process(t.Context(), source)

		assert.Equal(t, constants.SOURCE_PLACEHOLDER, out.Source)
		for _, slot := range []string{out.Vector, out.Raster} {
			require.True(t, strings.HasPrefix(slot, svgDataPrefix))
			raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(slot, svgDataPrefix))
			require.NoError(t, err)
			assert.Contains(t, string(raw), "1700000000")
		}
	})

	t.Run("echo when no base name", func(t *testing.T) {
		ref := "https://host/bucket/"
		out := NewOrchestrator(time.Second).Process(t.Context(), ref)

		assert.Equal(t, constants.SOURCE_ECHO, out.Source)
		assert.Equal(t, ref, out.Vector)
		assert.Equal(t, ref, out.Raster)
	})
}

func TestOrchestratorPerProviderTimeout(t *testing.T) {
	slow := &stubProvider{name: constants.SOURCE_HF_GENERATE, payload: generated, delay: time.Second}
	enhance := &stubProvider{name: constants.SOURCE_HF_ENHANCE, payload: enhanced}

	out := NewOrchestrator(20*time.Millisecond, slow, enhance).Process(t.Context(), source)

	assert.Equal(t, constants.SOURCE_HF_ENHANCE, out.Source)
	assert.ErrorIs(t, out.Attempts[0].Err, context.DeadlineExceeded)
}

func TestOrchestratorStopsOnCancelledCaller(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	generate := &stubProvider{name: constants.SOURCE_HF_GENERATE, payload: generated}
	out := NewOrchestrator(time.Second, generate).Process(ctx, source)

	assert.Equal(t, 0, generate.called())
	assert.Equal(t, constants.SOURCE_PLACEHOLDER, out.Source)
	assert.NotEmpty(t, out.Vector)
}

func TestBuildChainOnlyConfiguredProviders(t *testing.T) {
	var hfCalls, openaiCalls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/images/") {
			atomic.AddInt32(&openaiCalls, 1)
		} else {
			atomic.AddInt32(&hfCalls, 1)
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := configs.ProviderConfig{
		HuggingFaceBaseURL:       server.URL,
		HuggingFaceGenerateModel: "gen",
		HuggingFaceEnhanceModel:  "enh",
		OpenAIBaseURL:            server.URL,
	}

	t.Run("none configured", func(t *testing.T) {
		chain := BuildChain(client.NewHuggingFaceClient(cfg, nil), client.NewOpenAIClient(cfg, nil))
		assert.Empty(t, chain)
	})

	t.Run("only openai", func(t *testing.T) {
		withKey := cfg
		withKey.OpenAIAPIKey = "sk"
		chain := BuildChain(client.NewHuggingFaceClient(withKey, nil), client.NewOpenAIClient(withKey, nil))
		require.Len(t, chain, 1)
		assert.Equal(t, constants.SOURCE_DALLE, chain[0].Name())
	})

	t.Run("all configured, failures fall through in order", func(t *testing.T) {
		full := cfg
		full.OpenAIAPIKey = "sk"
		full.HuggingFaceToken = "hf"
		chain := BuildChain(client.NewHuggingFaceClient(full, nil), client.NewOpenAIClient(full, nil))
		require.Len(t, chain, 3)
		assert.Equal(t, constants.SOURCE_HF_GENERATE, chain[0].Name())
		assert.Equal(t, constants.SOURCE_HF_ENHANCE, chain[1].Name())
		assert.Equal(t, constants.SOURCE_DALLE, chain[2].Name())

		out := NewOrchestrator(time.Second, chain...).Process(t.Context(), source)
		assert.Equal(t, constants.SOURCE_PLACEHOLDER, out.Source)
		assert.EqualValues(t, 2, atomic.LoadInt32(&hfCalls))
		assert.EqualValues(t, 1, atomic.LoadInt32(&openaiCalls))
	})
}
