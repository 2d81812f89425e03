package service

import (
	"testing"

	"github.com/sh5080/vectify-go/pkg/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceContainerMemory(t *testing.T) {
	config := &configs.EnvConfig{}
	config.Storage.Driver = "memory"
	config.Providers.TextEngine = "openai"
	config.Providers.OpenAIBaseURL = "https://api.openai.com/v1"

	container, err := NewServiceContainer(t.Context(), config)
	require.NoError(t, err)
	defer container.Close()

	assert.NotNil(t, container.ProcessingService)
	assert.NotNil(t, container.DigitalizationService)
	assert.NotNil(t, container.PaymentService)
	assert.NotNil(t, container.ServerStatusService)
	assert.Nil(t, container.IdentityProvider, "SUPABASE_URL이 없으면 인증 공급자가 없습니다")
	assert.Same(t, config, container.Config)
}

func TestNewServiceContainerWithSupabase(t *testing.T) {
	config := &configs.EnvConfig{}
	config.Storage.Driver = "memory"
	config.Auth.SupabaseURL = "https://project.supabase.co"
	config.Auth.SupabaseAnonKey = "anon"

	container, err := NewServiceContainer(t.Context(), config)
	require.NoError(t, err)
	defer container.Close()

	assert.NotNil(t, container.IdentityProvider)
}

func TestRenderPlaceholder(t *testing.T) {
	vector, raster, ok := RenderPlaceholder("https://host/bucket/user123/1700000000.png")
	require.True(t, ok)
	assert.NotEqual(t, vector, raster)
	assert.Contains(t, vector, "data:image/svg+xml;base64,")

	_, _, ok = RenderPlaceholder("https://host/")
	assert.False(t, ok)
}
