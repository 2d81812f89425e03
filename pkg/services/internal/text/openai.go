package text

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sh5080/vectify-go/pkg/apperrors"
	"github.com/sh5080/vectify-go/pkg/configs"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	constants "github.com/sh5080/vectify-go/pkg/types"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const defaultVisionModel = "gpt-4o"

// OpenAIExtractor는 OpenAI 비전 모델로 텍스트를 추출합니다
type OpenAIExtractor struct {
	llm       llms.Model
	initErr   error
	maxTokens int
}

// 인터페이스 구현 확인
var _ _interface.TextExtractor = (*OpenAIExtractor)(nil)

// NewOpenAIExtractor는 새로운 OpenAI 텍스트 추출기를 생성합니다.
// API 키가 없으면 모델을 만들지 않고 호출 시 설정 오류를 반환합니다.
func NewOpenAIExtractor(cfg configs.ProviderConfig, httpc *http.Client) *OpenAIExtractor {
	maxTokens := cfg.TextMaxTokens
	if maxTokens <= 0 {
		maxTokens = constants.TEXT_MAX_TOKENS
	}
	e := &OpenAIExtractor{maxTokens: maxTokens}

	apiKey := strings.TrimSpace(cfg.OpenAIAPIKey)
	if apiKey == "" {
		return e
	}
	if httpc == nil {
		httpc = &http.Client{}
	}

	model := cfg.OpenAIVisionModel
	if model == "" {
		model = defaultVisionModel
	}
	opts := []openai.Option{
		openai.WithModel(model),
		openai.WithToken(apiKey),
		openai.WithHTTPClient(httpc),
	}
	if baseURL := strings.TrimRight(cfg.OpenAIBaseURL, "/"); baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	e.llm, e.initErr = openai.New(opts...)
	return e
}

// ExtractText는 이미지의 텍스트(손글씨 포함)를 추출합니다.
// 모델이 내용을 주지 않으면 빈 문자열을 반환합니다.
func (e *OpenAIExtractor) ExtractText(ctx context.Context, sourceReference string) (string, error) {
	if e.llm == nil {
		if e.initErr != nil {
			return "", apperrors.Configuration(fmt.Sprintf("openai 클라이언트 생성 실패: %v", e.initErr))
		}
		return "", apperrors.Configuration("OPENAI_API_KEY가 설정되지 않았습니다")
	}

	resp, err := e.llm.GenerateContent(ctx, []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(constants.TEXT_EXTRACTION_PROMPT),
				llms.ImageURLPart(sourceReference),
			},
		},
	}, llms.WithMaxTokens(e.maxTokens))
	if errors.Is(err, openai.ErrEmptyResponse) {
		return "", nil
	}
	if err != nil {
		return "", apperrors.Provider("openai 텍스트 추출 실패", err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Content, nil
}
