package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sh5080/vectify-go/pkg/apperrors"
	"github.com/sh5080/vectify-go/pkg/configs"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	structure "github.com/sh5080/vectify-go/pkg/types/structures"
	"github.com/sh5080/vectify-go/pkg/utils"
)

// SupabaseAuthClient는 Supabase GoTrue로 액세스 토큰을 검증하는 클라이언트입니다.
type SupabaseAuthClient struct {
	BaseURL string
	AnonKey string
	httpc   *http.Client
}

// 인터페이스 구현 확인
var _ _interface.IdentityProvider = (*SupabaseAuthClient)(nil)

// NewSupabaseAuthClient는 새로운 Supabase 인증 클라이언트를 생성합니다.
// SUPABASE_URL이 없으면 nil을 반환합니다.
func NewSupabaseAuthClient(cfg configs.AuthConfig, httpc *http.Client) *SupabaseAuthClient {
	if cfg.SupabaseURL == "" {
		return nil
	}
	if httpc == nil {
		httpc = &http.Client{Timeout: 10 * time.Second}
	}
	return &SupabaseAuthClient{
		BaseURL: strings.TrimRight(cfg.SupabaseURL, "/"),
		AnonKey: cfg.SupabaseAnonKey,
		httpc:   httpc,
	}
}

type supabaseUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// VerifyToken은 토큰의 소유 사용자를 조회합니다
func (c *SupabaseAuthClient) VerifyToken(ctx context.Context, token string) (*structure.Identity, error) {
	if token == "" {
		return nil, apperrors.Unauthorized("인증이 필요합니다")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, apperrors.Internal("supabase 요청 생성 실패", err)
	}
	req.Header.Set("apikey", c.AnonKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, apperrors.Provider("supabase 인증 요청 실패", err)
	}

	raw, err := utils.ReadPayload(resp)
	if err != nil {
		return nil, apperrors.Provider("supabase 응답 읽기 실패", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, apperrors.Unauthorized("인증이 필요합니다")
	case resp.StatusCode != http.StatusOK:
		return nil, apperrors.Provider(fmt.Sprintf("supabase auth %d", resp.StatusCode), errors.New(truncate(raw, 256)))
	}

	var user supabaseUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, apperrors.Provider("supabase 응답 파싱 실패", err)
	}
	if user.ID == "" {
		return nil, apperrors.Unauthorized("인증이 필요합니다")
	}

	return &structure.Identity{UserID: user.ID, Email: user.Email}, nil
}
