package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sh5080/vectify-go/pkg/apperrors"
	"github.com/sh5080/vectify-go/pkg/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupabaseVerifyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "anon", r.Header.Get("apikey"))

		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"msg":"invalid JWT"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"user-1","email":"ana@example.com"}`))
	}))
	defer server.Close()

	client := NewSupabaseAuthClient(configs.AuthConfig{SupabaseURL: server.URL + "/", SupabaseAnonKey: "anon"}, nil)
	require.NotNil(t, client)

	identity, err := client.VerifyToken(t.Context(), "good")
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UserID)
	assert.Equal(t, "ana@example.com", identity.Email)

	_, err = client.VerifyToken(t.Context(), "bad")
	assert.True(t, apperrors.Is(err, apperrors.KindUnauthorized))

	_, err = client.VerifyToken(t.Context(), "")
	assert.True(t, apperrors.Is(err, apperrors.KindUnauthorized))
}

func TestSupabaseNotConfigured(t *testing.T) {
	assert.Nil(t, NewSupabaseAuthClient(configs.AuthConfig{}, nil))
}
