package route

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/vectify-go/pkg/apperrors"
	"github.com/sh5080/vectify-go/pkg/configs"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	repository "github.com/sh5080/vectify-go/pkg/repositories"
	"github.com/sh5080/vectify-go/pkg/services/api"
	constants "github.com/sh5080/vectify-go/pkg/types"
	model "github.com/sh5080/vectify-go/pkg/types/models"
	structure "github.com/sh5080/vectify-go/pkg/types/structures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcessing struct {
	result structure.ProcessingResult
	err    error
	last   structure.ProcessingRequest
}

func (f *fakeProcessing) ProcessDigitalization(ctx context.Context, req structure.ProcessingRequest) (structure.ProcessingResult, error) {
	f.last = req
	if err := api.ValidateRequest(req); err != nil {
		return structure.ProcessingResult{}, err
	}
	return f.result, f.err
}

type fakeStatus struct{}

func (fakeStatus) GetServerStatus() *model.ServerStatus {
	return &model.ServerStatus{AppName: "vectify", IsHealthy: true, CpuUsage: 0.25, MemoryUsage: 0.5}
}

type fakeIdentity struct{}

func (fakeIdentity) VerifyToken(ctx context.Context, token string) (*structure.Identity, error) {
	if token == "good" {
		return &structure.Identity{UserID: "user-from-token"}, nil
	}
	return nil, apperrors.Unauthorized("invalid token")
}

type testApp struct {
	app        *fiber.App
	processing *fakeProcessing
	subs       *repository.InMemorySubscriptionImpl
}

func newTestApp(t *testing.T, appEnv string, identity _interface.IdentityProvider) *testApp {
	t.Helper()

	config := &configs.EnvConfig{}
	config.Server.AppName = "vectify-test"
	config.Server.AppEnv = appEnv

	processing := &fakeProcessing{result: structure.ProcessingResult{
		VectorOutput:  "data:image/png;base64,QUJD",
		RasterOutput:  "data:image/png;base64,QUJD",
		DrawingSource: constants.SOURCE_HF_GENERATE,
	}}
	subs := repository.NewInMemorySubscriptionRepository()

	services := &_interface.ServiceContainer{
		Service:               _interface.Service{Config: config, Client: http.DefaultClient},
		ProcessingService:     processing,
		DigitalizationService: api.NewDigitalizationService(processing, repository.NewInMemoryDigitalizationRepository(), nil),
		PaymentService:        api.NewPaymentService(config.PayPal, subs, nil),
		ServerStatusService:   fakeStatus{},
		IdentityProvider:      identity,
		Close:                 func() {},
	}

	return &testApp{app: NewApp(services, true), processing: processing, subs: subs}
}

func (a *testApp) do(t *testing.T, method, path, body string, headers map[string]string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := a.app.Test(req, int((5 * time.Second).Milliseconds()))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded), string(raw))
	}
	return resp.StatusCode, decoded
}

func TestHealth(t *testing.T) {
	a := newTestApp(t, "production", nil)

	status, body := a.do(t, "GET", "/health", "", nil)
	assert.Equal(t, 200, status)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, 0.25, body["cpuUsage"])
	assert.Equal(t, 0.5, body["memoryUsage"])
}

func TestProcessDigitalizationRequiresAuth(t *testing.T) {
	a := newTestApp(t, "production", nil)

	status, body := a.do(t, "POST", "/api/process-digitalization", `{"imageUrl":"https://h/a.png","type":"drawing"}`, nil)
	assert.Equal(t, 401, status)
	assert.Equal(t, "인증이 필요합니다", body["error"])
}

func TestProcessDigitalizationWithToken(t *testing.T) {
	a := newTestApp(t, "production", fakeIdentity{})
	body := `{"imageUrl":"https://h/a.png","type":"drawing"}`

	status, _ := a.do(t, "POST", "/api/process-digitalization", body, map[string]string{"Authorization": "Bearer bad"})
	assert.Equal(t, 401, status)

	status, resp := a.do(t, "POST", "/api/process-digitalization", body, map[string]string{"Authorization": "Bearer good"})
	assert.Equal(t, 200, status)
	assert.Equal(t, "data:image/png;base64,QUJD", resp["vectorUrl"])
	assert.Equal(t, "data:image/png;base64,QUJD", resp["pngUrl"])
	assert.NotContains(t, resp, "textContent")
	assert.Equal(t, "https://h/a.png", a.processing.last.SourceReference)
}

func TestProcessDigitalizationErrors(t *testing.T) {
	dev := map[string]string{"X-User-ID": "dev-user"}

	t.Run("필수 값 누락", func(t *testing.T) {
		a := newTestApp(t, "dev", nil)
		status, body := a.do(t, "POST", "/api/process-digitalization", `{"type":"text"}`, dev)
		assert.Equal(t, 400, status)
		assert.NotEmpty(t, body["error"])
	})

	t.Run("잘못된 JSON", func(t *testing.T) {
		a := newTestApp(t, "dev", nil)
		status, _ := a.do(t, "POST", "/api/process-digitalization", `{`, dev)
		assert.Equal(t, 400, status)
	})

	t.Run("구성 오류", func(t *testing.T) {
		a := newTestApp(t, "dev", nil)
		a.processing.result = structure.ProcessingResult{}
		a.processing.err = apperrors.Configuration("OPENAI_API_KEY가 설정되지 않았습니다")

		status, body := a.do(t, "POST", "/api/process-digitalization", `{"imageUrl":"https://h/a.png","type":"text"}`, dev)
		assert.Equal(t, 500, status)
		assert.Equal(t, "OPENAI_API_KEY가 설정되지 않았습니다", body["error"])
	})

	t.Run("mixed 부분 성공", func(t *testing.T) {
		a := newTestApp(t, "dev", nil)
		a.processing.err = apperrors.Provider("openai 503", nil)

		status, body := a.do(t, "POST", "/api/process-digitalization", `{"imageUrl":"https://h/a.png","type":"mixed"}`, dev)
		assert.Equal(t, 502, status)
		assert.Equal(t, "openai 503", body["error"])
		partial, ok := body["partialResult"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "data:image/png;base64,QUJD", partial["vectorUrl"])
	})
}

func TestDigitalizationHistory(t *testing.T) {
	a := newTestApp(t, "dev", nil)
	owner := map[string]string{"X-User-ID": "owner"}

	status, created := a.do(t, "POST", "/api/v1/digitalizations",
		`{"imageUrl":"https://h/u/sketch.png","type":"drawing","fileSize":10}`, owner)
	require.Equal(t, 201, status)
	assert.Equal(t, "completed", created["status"])
	assert.Equal(t, "sketch", created["originalFilename"])
	id := created["id"].(string)

	status, _ = a.do(t, "POST", "/api/v1/digitalizations", `{"imageUrl":"https://h/a.png","type":"audio"}`, owner)
	assert.Equal(t, 400, status)

	status, list := a.do(t, "GET", "/api/v1/digitalizations?limit=5", "", owner)
	assert.Equal(t, 200, status)
	assert.Len(t, list["items"], 1)
	assert.Equal(t, float64(5), list["limit"])

	status, _ = a.do(t, "GET", "/api/v1/digitalizations?limit=500", "", owner)
	assert.Equal(t, 400, status)

	status, got := a.do(t, "GET", "/api/v1/digitalizations/"+id, "", owner)
	assert.Equal(t, 200, status)
	assert.Equal(t, id, got["id"])

	status, _ = a.do(t, "GET", "/api/v1/digitalizations/"+id, "", map[string]string{"X-User-ID": "stranger"})
	assert.Equal(t, 404, status)

	status, stats := a.do(t, "GET", "/api/v1/stats", "", owner)
	assert.Equal(t, 200, status)
	assert.Equal(t, float64(1), stats["totalDigitalizations"])
	assert.Equal(t, float64(1), stats["drawingsVectorized"])
}

func TestDevHeaderDefaultsToLocalUser(t *testing.T) {
	a := newTestApp(t, "local", nil)

	status, _ := a.do(t, "POST", "/api/v1/digitalizations", `{"imageUrl":"https://h/a.png","type":"drawing"}`, nil)
	require.Equal(t, 201, status)

	status, list := a.do(t, "GET", "/api/v1/digitalizations", "", map[string]string{"X-User-ID": constants.LOCAL_USER_ID})
	assert.Equal(t, 200, status)
	assert.Len(t, list["items"], 1)
}

func TestPlansArePublic(t *testing.T) {
	a := newTestApp(t, "production", nil)

	status, body := a.do(t, "GET", "/api/v1/plans", "", nil)
	assert.Equal(t, 200, status)
	assert.Len(t, body["plans"], 2)

	status, _ = a.do(t, "GET", "/api/v1/subscription", "", nil)
	assert.Equal(t, 401, status)
}

func signatureHeaders() map[string]string {
	return map[string]string{
		"paypal-transmission-sig":  "sig",
		"paypal-cert-url":          "https://api.paypal.com/cert",
		"paypal-transmission-id":   "tid",
		"paypal-transmission-time": "2025-01-01T00:00:00Z",
		"paypal-auth-algo":         "SHA256withRSA",
	}
}

func TestPayPalWebhook(t *testing.T) {
	a := newTestApp(t, "dev", nil)
	created := `{"event_type":"BILLING.SUBSCRIPTION.CREATED","resource":{"id":"I-1","plan_id":"P-X","custom_id":"owner"}}`

	t.Run("서명 헤더 누락", func(t *testing.T) {
		headers := signatureHeaders()
		delete(headers, "paypal-auth-algo")
		status, body := a.do(t, "POST", "/api/webhooks/paypal", created, headers)
		assert.Equal(t, 400, status)
		assert.Contains(t, body["error"], "paypal-auth-algo")
	})

	t.Run("잘못된 JSON", func(t *testing.T) {
		status, _ := a.do(t, "POST", "/api/webhooks/paypal", `not-json`, signatureHeaders())
		assert.Equal(t, 400, status)
	})

	t.Run("구독 생성", func(t *testing.T) {
		status, body := a.do(t, "POST", "/api/webhooks/paypal", created, signatureHeaders())
		assert.Equal(t, 200, status)
		assert.Equal(t, true, body["received"])

		status, sub := a.do(t, "GET", "/api/v1/subscription", "", map[string]string{"X-User-ID": "owner"})
		assert.Equal(t, 200, status)
		assert.Equal(t, constants.PLAN_PRO, sub["plan"])
		assert.Equal(t, constants.SUBSCRIPTION_ACTIVE, sub["status"])
	})
}
