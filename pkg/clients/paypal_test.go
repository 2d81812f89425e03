package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sh5080/vectify-go/pkg/configs"
	structure "github.com/sh5080/vectify-go/pkg/types/structures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPayPalServer(t *testing.T, status string, tokenCalls *int32) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(tokenCalls, 1)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client", user)
		assert.Equal(t, "secret", pass)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		_, _ = w.Write([]byte(`{"access_token":"token-1","expires_in":32400}`))
	})
	mux.HandleFunc("/v1/notifications/verify-webhook-signature", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "WH-1", body["webhook_id"])
		assert.Equal(t, "sig", body["transmission_sig"])
		assert.Equal(t, "PAYMENT.CAPTURE.COMPLETED", body["webhook_event"].(map[string]any)["event_type"])

		_, _ = w.Write([]byte(`{"verification_status":"` + status + `"}`))
	})
	return httptest.NewServer(mux)
}

func newTestPayPal(baseURL string) *PayPalClient {
	client := NewPayPalClient(configs.PayPalConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		WebhookID:    "WH-1",
	}, nil)
	client.BaseURL = baseURL
	return client
}

var testHeaders = structure.PayPalSignatureHeaders{
	TransmissionSig:  "sig",
	CertURL:          "https://api.paypal.com/cert.pem",
	TransmissionID:   "tid",
	TransmissionTime: "2024-01-01T00:00:00Z",
	AuthAlgo:         "SHA256withRSA",
}

func TestPayPalVerifyWebhookSignature(t *testing.T) {
	var tokenCalls int32
	server := newPayPalServer(t, "SUCCESS", &tokenCalls)
	defer server.Close()

	client := newTestPayPal(server.URL)
	body := []byte(`{"id":"WH-EVT","event_type":"PAYMENT.CAPTURE.COMPLETED"}`)

	ok, err := client.VerifyWebhookSignature(t.Context(), testHeaders, body)
	require.NoError(t, err)
	assert.True(t, ok)

	// 두 번째 호출은 캐시된 토큰 사용
	ok, err = client.VerifyWebhookSignature(t.Context(), testHeaders, body)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.EqualValues(t, 1, atomic.LoadInt32(&tokenCalls))
}

func TestPayPalVerifyWebhookSignatureFailure(t *testing.T) {
	var tokenCalls int32
	server := newPayPalServer(t, "FAILURE", &tokenCalls)
	defer server.Close()

	ok, err := newTestPayPal(server.URL).VerifyWebhookSignature(t.Context(), testHeaders, []byte(`{"event_type":"PAYMENT.CAPTURE.COMPLETED"}`))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPayPalCanVerify(t *testing.T) {
	assert.False(t, NewPayPalClient(configs.PayPalConfig{ClientID: "a", ClientSecret: "b"}, nil).CanVerify())
	assert.True(t, NewPayPalClient(configs.PayPalConfig{ClientID: "a", ClientSecret: "b", WebhookID: "c"}, nil).CanVerify())
}
