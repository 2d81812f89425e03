package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sh5080/vectify-go/pkg/apperrors"
	"github.com/sh5080/vectify-go/pkg/configs"
	constants "github.com/sh5080/vectify-go/pkg/types"
	"github.com/sh5080/vectify-go/pkg/utils"
)

// OpenAIClient는 OpenAI 이미지 생성 API를 호출하는 클라이언트입니다.
type OpenAIClient struct {
	APIKey     string
	BaseURL    string
	ImageModel string
	httpc      *http.Client
}

// NewOpenAIClient는 새로운 OpenAI 클라이언트를 생성합니다.
// 호출 시간 제한은 호출자의 context가 결정합니다.
func NewOpenAIClient(cfg configs.ProviderConfig, httpc *http.Client) *OpenAIClient {
	if httpc == nil {
		httpc = &http.Client{}
	}
	return &OpenAIClient{
		APIKey:     strings.TrimSpace(cfg.OpenAIAPIKey),
		BaseURL:    strings.TrimRight(cfg.OpenAIBaseURL, "/"),
		ImageModel: cfg.OpenAIImageModel,
		httpc:      httpc,
	}
}

// Configured는 API 키가 설정되어 있는지 확인합니다
func (c *OpenAIClient) Configured() bool {
	return c != nil && c.APIKey != ""
}

type imageGenerationResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
		URL     string `json:"url"`
	} `json:"data"`
}

// GenerateImage는 프롬프트로 이미지를 생성하고 base64 data URL을 반환합니다.
// 응답이 URL만 담고 있으면 내려받아 data URL로 변환합니다.
func (c *OpenAIClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", apperrors.Configuration("OPENAI_API_KEY가 설정되지 않았습니다")
	}

	body := map[string]any{
		"model":           c.ImageModel,
		"prompt":          prompt,
		"n":               constants.DALLE_COUNT,
		"size":            constants.DALLE_SIZE,
		"quality":         constants.DALLE_QUALITY,
		"style":           constants.DALLE_STYLE,
		"response_format": "b64_json",
	}

	raw, err := c.post(ctx, "/images/generations", body)
	if err != nil {
		return "", err
	}

	var out imageGenerationResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", apperrors.Provider("openai 이미지 응답 파싱 실패", err)
	}
	if len(out.Data) == 0 {
		return "", apperrors.Provider("openai 이미지 응답이 비어 있습니다", nil)
	}

	image := out.Data[0]
	switch {
	case image.B64JSON != "":
		return "data:" + utils.DefaultImageMIME + ";base64," + image.B64JSON, nil
	case image.URL != "":
		data, contentType, err := FetchImage(ctx, c.httpc, image.URL)
		if err != nil {
			return "", err
		}
		return utils.EncodeDataURL(data, contentType), nil
	default:
		return "", apperrors.Provider("openai 이미지 응답에 데이터가 없습니다", nil)
	}
}

func (c *OpenAIClient) post(ctx context.Context, path string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, apperrors.Internal("openai 요청 직렬화 실패", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, apperrors.Internal("openai 요청 생성 실패", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, apperrors.Provider("openai 요청 실패", err)
	}

	raw, err := utils.ReadPayload(resp)
	if err != nil {
		return nil, apperrors.Provider("openai 응답 읽기 실패", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Provider(
			fmt.Sprintf("openai %s %d", strings.TrimPrefix(path, "/"), resp.StatusCode),
			errors.New(truncate(raw, 512)),
		)
	}
	return raw, nil
}
