package text

import (
	"net/http"
	"strings"

	"github.com/sh5080/vectify-go/pkg/configs"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	"github.com/sh5080/vectify-go/pkg/utils"
)

// NewExtractor는 TEXT_ENGINE 설정에 맞는 텍스트 추출기를 생성합니다.
// 알 수 없는 값이면 openai를 사용합니다.
func NewExtractor(cfg configs.ProviderConfig, httpc *http.Client) _interface.TextExtractor {
	switch strings.ToLower(cfg.TextEngine) {
	case "gemini":
		return NewGeminiExtractor(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.TextMaxTokens, httpc)
	case "openai", "":
	default:
		utils.Warn("text", "알 수 없는 TEXT_ENGINE(%s), openai 사용", cfg.TextEngine)
	}
	return NewOpenAIExtractor(cfg, httpc)
}
