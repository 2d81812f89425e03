package text

import (
	"context"
	"mime"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sh5080/vectify-go/pkg/apperrors"
	client "github.com/sh5080/vectify-go/pkg/clients"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	constants "github.com/sh5080/vectify-go/pkg/types"
	"google.golang.org/api/option"
)

// GeminiExtractor는 Gemini 멀티모달 모델로 텍스트를 추출합니다
type GeminiExtractor struct {
	APIKey    string
	Model     string
	maxTokens int
	httpc     *http.Client
}

// 인터페이스 구현 확인
var _ _interface.TextExtractor = (*GeminiExtractor)(nil)

// NewGeminiExtractor는 새로운 Gemini 텍스트 추출기를 생성합니다
func NewGeminiExtractor(apiKey, model string, maxTokens int, httpc *http.Client) *GeminiExtractor {
	if maxTokens <= 0 {
		maxTokens = constants.TEXT_MAX_TOKENS
	}
	if httpc == nil {
		httpc = &http.Client{}
	}
	return &GeminiExtractor{
		APIKey:    strings.TrimSpace(apiKey),
		Model:     strings.TrimSpace(model),
		maxTokens: maxTokens,
		httpc:     httpc,
	}
}

// ExtractText는 원본 이미지를 내려받아 Gemini에 전달하고 텍스트를 반환합니다
func (e *GeminiExtractor) ExtractText(ctx context.Context, sourceReference string) (string, error) {
	if e.APIKey == "" {
		return "", apperrors.Configuration("GEMINI_API_KEY가 설정되지 않았습니다")
	}

	// 원본 다운로드 실패는 공급자 오류
	imgBytes, contentType, err := client.FetchImage(ctx, e.httpc, sourceReference)
	if err != nil {
		return "", apperrors.Provider("gemini 원본 이미지 다운로드 실패", err)
	}
	mimeType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mimeType, "image/") {
		mimeType = http.DetectContentType(imgBytes)
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", apperrors.Provider("gemini 클라이언트 생성 실패", err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	m.SetMaxOutputTokens(int32(e.maxTokens))
	m.SetTemperature(0)

	resp, err := m.GenerateContent(ctx,
		genai.Text(constants.TEXT_EXTRACTION_PROMPT),
		&genai.Blob{MIMEType: mimeType, Data: imgBytes},
	)
	if err != nil {
		return "", apperrors.Provider("gemini 텍스트 추출 실패", err)
	}

	return firstText(resp), nil
}

// firstText는 첫 후보의 텍스트 파트를 이어 붙입니다
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return strings.TrimSpace(sb.String())
}
