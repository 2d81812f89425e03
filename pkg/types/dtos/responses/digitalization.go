package response

import (
	model "github.com/sh5080/vectify-go/pkg/types/models"
	structure "github.com/sh5080/vectify-go/pkg/types/structures"
)

// ProcessDigitalizationResponse는 처리 결과 응답입니다
type ProcessDigitalizationResponse struct {
	TextContent *string `json:"textContent,omitempty"`
	VectorURL   string  `json:"vectorUrl,omitempty"`
	PngURL      string  `json:"pngUrl,omitempty"`
}

// PartialResultResponse는 mixed 모드에서 텍스트만 실패했을 때의 응답입니다
type PartialResultResponse struct {
	Error         string                        `json:"error"`
	PartialResult ProcessDigitalizationResponse `json:"partialResult"`
}

// NewProcessDigitalizationResponse는 처리 결과를 응답 형태로 변환합니다
func NewProcessDigitalizationResponse(result structure.ProcessingResult) ProcessDigitalizationResponse {
	return ProcessDigitalizationResponse{
		TextContent: result.TextContent,
		VectorURL:   result.VectorOutput,
		PngURL:      result.RasterOutput,
	}
}

// DigitalizationListResponse는 이력 목록 응답입니다
type DigitalizationListResponse struct {
	Items  []model.Digitalization `json:"items"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}

// StatsResponse는 대시보드 통계 응답입니다
type StatsResponse struct {
	TotalDigitalizations  int                    `json:"totalDigitalizations"`
	TextProcessed         int                    `json:"textProcessed"`
	DrawingsVectorized    int                    `json:"drawingsVectorized"`
	AverageProcessingTime int64                  `json:"averageProcessingTime"`
	RecentDigitalizations []model.Digitalization `json:"recentDigitalizations"`
}
