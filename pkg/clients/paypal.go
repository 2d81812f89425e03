package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sh5080/vectify-go/pkg/apperrors"
	"github.com/sh5080/vectify-go/pkg/configs"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	structure "github.com/sh5080/vectify-go/pkg/types/structures"
	"github.com/sh5080/vectify-go/pkg/utils"
)

// PayPalClient는 PayPal REST API(OAuth, 웹훅 서명 검증)를 호출하는 클라이언트입니다.
type PayPalClient struct {
	ClientID     string
	ClientSecret string
	WebhookID    string
	BaseURL      string
	httpc        *http.Client

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

// 인터페이스 구현 확인
var _ _interface.WebhookVerifier = (*PayPalClient)(nil)

// NewPayPalClient는 새로운 PayPal 클라이언트를 생성합니다.
func NewPayPalClient(cfg configs.PayPalConfig, httpc *http.Client) *PayPalClient {
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	return &PayPalClient{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		WebhookID:    cfg.WebhookID,
		BaseURL:      cfg.APIBaseURL(),
		httpc:        httpc,
	}
}

// CanVerify는 서명 검증에 필요한 값이 모두 설정되어 있는지 확인합니다
func (c *PayPalClient) CanVerify() bool {
	return c != nil && c.ClientID != "" && c.ClientSecret != "" && c.WebhookID != ""
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// AccessToken은 client credentials 방식으로 액세스 토큰을 발급받습니다.
// 만료 전까지는 캐시된 토큰을 재사용합니다.
func (c *PayPalClient) AccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.expiresAt) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", apperrors.Internal("paypal 토큰 요청 생성 실패", err)
	}
	req.SetBasicAuth(c.ClientID, c.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", apperrors.Provider("paypal 토큰 요청 실패", err)
	}

	raw, err := utils.ReadPayload(resp)
	if err != nil {
		return "", apperrors.Provider("paypal 토큰 응답 읽기 실패", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", apperrors.Provider(fmt.Sprintf("paypal oauth2 %d", resp.StatusCode), errors.New(truncate(raw, 512)))
	}

	var out tokenResponse
	if err := json.Unmarshal(raw, &out); err != nil || out.AccessToken == "" {
		return "", apperrors.Provider("paypal 토큰 응답 파싱 실패", err)
	}

	c.accessToken = out.AccessToken
	// 만료 1분 전에 갱신
	c.expiresAt = time.Now().Add(time.Duration(out.ExpiresIn)*time.Second - time.Minute)
	return c.accessToken, nil
}

type verifySignatureResponse struct {
	VerificationStatus string `json:"verification_status"`
}

// VerifyWebhookSignature는 PayPal verify-webhook-signature API로 웹훅 서명을 검증합니다
func (c *PayPalClient) VerifyWebhookSignature(ctx context.Context, headers structure.PayPalSignatureHeaders, body []byte) (bool, error) {
	if !c.CanVerify() {
		return false, apperrors.Configuration("PayPal 웹훅 검증 설정이 없습니다")
	}

	token, err := c.AccessToken(ctx)
	if err != nil {
		return false, err
	}

	payload, err := json.Marshal(map[string]any{
		"auth_algo":         headers.AuthAlgo,
		"cert_url":          headers.CertURL,
		"transmission_id":   headers.TransmissionID,
		"transmission_sig":  headers.TransmissionSig,
		"transmission_time": headers.TransmissionTime,
		"webhook_id":        c.WebhookID,
		"webhook_event":     json.RawMessage(body),
	})
	if err != nil {
		return false, apperrors.InvalidRequest("웹훅 본문이 올바른 JSON이 아닙니다")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/notifications/verify-webhook-signature", bytes.NewReader(payload))
	if err != nil {
		return false, apperrors.Internal("paypal 검증 요청 생성 실패", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return false, apperrors.Provider("paypal 검증 요청 실패", err)
	}

	raw, err := utils.ReadPayload(resp)
	if err != nil {
		return false, apperrors.Provider("paypal 검증 응답 읽기 실패", err)
	}
	if resp.StatusCode != http.StatusOK {
		return false, apperrors.Provider(fmt.Sprintf("paypal verify-webhook-signature %d", resp.StatusCode), errors.New(truncate(raw, 512)))
	}

	var out verifySignatureResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return false, apperrors.Provider("paypal 검증 응답 파싱 실패", err)
	}
	return out.VerificationStatus == "SUCCESS", nil
}
