package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/sh5080/vectify-go/pkg/apperrors"
	"github.com/sh5080/vectify-go/pkg/configs"
	constants "github.com/sh5080/vectify-go/pkg/types"
	"github.com/sh5080/vectify-go/pkg/utils"
)

// HuggingFaceClient는 Hugging Face 추론 API를 호출하는 클라이언트입니다.
type HuggingFaceClient struct {
	Token         string
	BaseURL       string
	GenerateModel string
	EnhanceModel  string
	httpc         *http.Client
}

// NewHuggingFaceClient는 새로운 Hugging Face 클라이언트를 생성합니다.
func NewHuggingFaceClient(cfg configs.ProviderConfig, httpc *http.Client) *HuggingFaceClient {
	if httpc == nil {
		httpc = &http.Client{}
	}
	return &HuggingFaceClient{
		Token:         strings.TrimSpace(cfg.HuggingFaceToken),
		BaseURL:       strings.TrimRight(cfg.HuggingFaceBaseURL, "/"),
		GenerateModel: cfg.HuggingFaceGenerateModel,
		EnhanceModel:  cfg.HuggingFaceEnhanceModel,
		httpc:         httpc,
	}
}

// Configured는 API 토큰이 설정되어 있는지 확인합니다
func (c *HuggingFaceClient) Configured() bool {
	return c != nil && c.Token != ""
}

// Generate는 텍스트 프롬프트로 이미지를 생성하고 base64 data URL을 반환합니다
func (c *HuggingFaceClient) Generate(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"inputs": prompt,
		"parameters": map[string]any{
			"num_inference_steps": constants.HF_INFERENCE_STEPS,
			"guidance_scale":      constants.HF_GUIDANCE_SCALE,
		},
	}
	return c.infer(ctx, c.GenerateModel, body)
}

// Enhance는 기존 이미지를 초해상도 모델로 개선하고 base64 data URL을 반환합니다
func (c *HuggingFaceClient) Enhance(ctx context.Context, imageURL string) (string, error) {
	body := map[string]any{
		"inputs": imageURL,
	}
	return c.infer(ctx, c.EnhanceModel, body)
}

// infer는 모델을 호출하고 바이너리 응답을 data URL로 변환합니다
func (c *HuggingFaceClient) infer(ctx context.Context, model string, body any) (string, error) {
	if !c.Configured() {
		return "", apperrors.Configuration("HUGGINGFACE_API_TOKEN이 설정되지 않았습니다")
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", apperrors.Internal("huggingface 요청 직렬화 실패", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/"+model, bytes.NewReader(payload))
	if err != nil {
		return "", apperrors.Internal("huggingface 요청 생성 실패", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", apperrors.Provider("huggingface 요청 실패", err)
	}

	data, err := utils.ReadPayload(resp)
	if err != nil {
		return "", apperrors.Provider("huggingface 응답 읽기 실패", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apperrors.Provider(
			fmt.Sprintf("huggingface %s %d", model, resp.StatusCode),
			errors.New(truncate(data, 512)),
		)
	}
	if len(data) == 0 {
		return "", apperrors.Provider(fmt.Sprintf("huggingface %s 응답이 비어 있습니다", model), nil)
	}

	contentType := resp.Header.Get("Content-Type")
	if mediaType, _, _ := mime.ParseMediaType(contentType); mediaType == "application/json" {
		// 모델 로딩 중 등 이미지 대신 JSON 상태가 오는 경우
		return "", apperrors.Provider(
			fmt.Sprintf("huggingface %s 이미지가 아닌 응답", model),
			errors.New(truncate(data, 512)),
		)
	}

	return utils.EncodeDataURL(data, contentType), nil
}
